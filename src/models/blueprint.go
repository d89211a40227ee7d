package models

// Field types accepted by the add-field form. Anything else renders as a text input.
const (
	FieldText     = "text"
	FieldEmail    = "email"
	FieldTel      = "tel"
	FieldNumber   = "number"
	FieldDate     = "date"
	FieldTime     = "time"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
)

const (
	DefaultAccentColor = "#7f5dff"
	DefaultHeroEmoji   = "🎯"
	FallbackHeroEmoji  = "✨"
)

// Blueprint แบบฟอร์มจองที่ผู้ดูแลออกแบบเอง
type Blueprint struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AccentColor string   `json:"accentColor"`
	HeroEmoji   string   `json:"heroEmoji"`
	Fields      []Field  `json:"fields"`
	Weekdays    []string `json:"weekdays"`
}

// Field หนึ่งช่องกรอกในแบบฟอร์ม
type Field struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Placeholder string   `json:"placeholder"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`
}

// Weekday is one entry of the fixed Monday..Sunday enumeration.
type Weekday struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var Weekdays = []Weekday{
	{Key: "seg", Label: "Seg"},
	{Key: "ter", Label: "Ter"},
	{Key: "qua", Label: "Qua"},
	{Key: "qui", Label: "Qui"},
	{Key: "sex", Label: "Sex"},
	{Key: "sab", Label: "Sáb"},
	{Key: "dom", Label: "Dom"},
}

// WeekdayKeys returns the canonical key order.
func WeekdayKeys() []string {
	keys := make([]string, 0, len(Weekdays))
	for _, day := range Weekdays {
		keys = append(keys, day.Key)
	}
	return keys
}

// IsWeekday reports whether key belongs to the enumeration.
func IsWeekday(key string) bool {
	for _, day := range Weekdays {
		if day.Key == key {
			return true
		}
	}
	return false
}

// NormalizeWeekdays drops unknown and repeated keys, keeping the given order.
func NormalizeWeekdays(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, key := range list {
		if IsWeekday(key) && !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

// DefaultBlueprint returns a fresh copy of the starter booking form.
func DefaultBlueprint() Blueprint {
	return Blueprint{
		Title:       "Mentoria Estratégica",
		Description: "Escolha um horário e preencha os dados para que possamos preparar o melhor encontro para você.",
		AccentColor: DefaultAccentColor,
		HeroEmoji:   DefaultHeroEmoji,
		Fields: []Field{
			{
				ID:          "field-name",
				Label:       "Nome completo",
				Type:        FieldText,
				Placeholder: "Ex.: Ana Costa",
				Required:    true,
				Options:     []string{},
			},
			{
				ID:          "field-email",
				Label:       "Email",
				Type:        FieldEmail,
				Placeholder: "nome@email.com",
				Required:    true,
				Options:     []string{},
			},
			{
				ID:          "field-formato",
				Label:       "Formato do encontro",
				Type:        FieldSelect,
				Placeholder: "Escolha uma opção",
				Required:    true,
				Options:     []string{"Google Meet", "Zoom", "Presencial"},
			},
			{
				ID:       "field-data",
				Label:    "Data ideal",
				Type:     FieldDate,
				Required: true,
				Options:  []string{},
			},
			{
				ID:       "field-hora",
				Label:    "Horário",
				Type:     FieldTime,
				Required: true,
				Options:  []string{},
			},
		},
		Weekdays: WeekdayKeys(),
	}
}

// Clone deep-copies the blueprint so callers can mutate freely.
func (b Blueprint) Clone() Blueprint {
	out := b
	out.Fields = make([]Field, len(b.Fields))
	for i, f := range b.Fields {
		f.Options = append([]string{}, f.Options...)
		out.Fields[i] = f
	}
	out.Weekdays = append([]string{}, b.Weekdays...)
	return out
}

// FieldInput ข้อมูลจากฟอร์ม "เพิ่มช่องกรอก"
type FieldInput struct {
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
	Options     string `json:"options"` // comma separated
}

// BlueprintPatch carries the header edits; nil means unchanged.
type BlueprintPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	AccentColor *string `json:"accentColor,omitempty"`
	HeroEmoji   *string `json:"heroEmoji,omitempty"`
}
