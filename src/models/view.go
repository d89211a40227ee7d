package models

// ViewModel is everything the three designer views need, derived from a DesignerState.
type ViewModel struct {
	CurrentView string        `json:"currentView"`
	SessionChip string        `json:"sessionChip"`
	LoginEmail  string        `json:"loginEmail"`
	LoginStatus string        `json:"loginStatus"`
	Flash       string        `json:"flash,omitempty"`
	Accent      AccentPalette `json:"accent"`
	Editor      EditorView    `json:"editor"`
	Preview     FormView      `json:"preview"`
	Public      FormView      `json:"public"`
	Log         SubmissionLog `json:"submissions"`
}

type AccentPalette struct {
	Accent string `json:"accent"`
	Soft   string `json:"soft"`
}

// EditorView is the admin configuration panel.
type EditorView struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	AccentColor  string          `json:"accentColor"`
	HeroEmoji    string          `json:"heroEmoji"`
	Fields       []FieldRow      `json:"fields"`
	EmptyMessage string          `json:"emptyMessage,omitempty"`
	Weekdays     []WeekdayToggle `json:"weekdays"`
}

type FieldRow struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	CanMoveUp   bool   `json:"canMoveUp"`
	CanMoveDown bool   `json:"canMoveDown"`
}

type WeekdayToggle struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// FormView is a rendered booking form (admin preview or public page).
type FormView struct {
	HeroEmoji      string        `json:"heroEmoji"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Weekdays       []string      `json:"weekdays"`
	WeekdaysEmpty  string        `json:"weekdaysEmpty,omitempty"`
	Controls       []FormControl `json:"controls"`
	EmptyMessage   string        `json:"emptyMessage,omitempty"`
	SubmitLabel    string        `json:"submitLabel,omitempty"`
	SubmitEndpoint string        `json:"submitEndpoint"`
}

// Control kinds.
const (
	ControlInput    = "input"
	ControlSelect   = "select"
	ControlTextarea = "textarea"
)

type FormControl struct {
	Kind        string         `json:"kind"`
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	InputType   string         `json:"inputType,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Required    bool           `json:"required"`
	Options     []SelectOption `json:"options,omitempty"`
}

type SelectOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

type SubmissionLog struct {
	Entries      []LogEntry `json:"entries"`
	EmptyMessage string     `json:"emptyMessage,omitempty"`
}

type LogEntry struct {
	ID        string `json:"id"`
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
}
