package designer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"

	"Backend-Booking-Designer/src/models"
)

const (
	titleFallback              = "Título do agendamento"
	previewDescriptionFallback = "Descreva seu fluxo para o convidado."
	publicDescriptionFallback  = "Adicione detalhes para orientar o convidado."
	emptyFormMessage           = "Adicione campos no painel para visualizar aqui."
	emptyFieldListMessage      = "Nenhum campo configurado ainda."
	emptyWeekdaysMessage       = "Nenhum dia selecionado"
	emptyLogMessage            = "Sem simulações ainda."
	logEntryFallback           = "Nova simulação"
	visitorChip                = "Visitante"
	previewSubmitLabel         = "Simular agendamento"
	publicSubmitLabel          = "Confirmar agendamento"

	PreviewSubmitEndpoint = "/designer/preview/submissions"
	PublicSubmitEndpoint  = "/designer/public/submissions"

	TimestampLayout  = "02/01/2006 15:04"
	invalidTimestamp = "Data inválida"
)

var supportedInputTypes = map[string]bool{
	models.FieldText:   true,
	models.FieldEmail:  true,
	models.FieldTel:    true,
	models.FieldNumber: true,
	models.FieldDate:   true,
	models.FieldTime:   true,
}

// Render projects a designer state onto its views. It has no side effects, so it is
// simply called again after every change.
func Render(state models.DesignerState) models.ViewModel {
	b := state.Blueprint

	vm := models.ViewModel{
		CurrentView: state.CurrentView,
		SessionChip: visitorChip,
		LoginStatus: state.LoginStatus,
		Flash:       state.Flash,
		Accent:      AccentPaletteFor(b.AccentColor),
		Editor:      renderEditor(b),
		Preview: renderForm(b, formOptions{
			descriptionFallback: previewDescriptionFallback,
			submitLabel:         previewSubmitLabel,
			endpoint:            PreviewSubmitEndpoint,
		}),
		Public: renderForm(b, formOptions{
			descriptionFallback: publicDescriptionFallback,
			submitLabel:         publicSubmitLabel,
			endpoint:            PublicSubmitEndpoint,
		}),
		Log: renderLog(state.Submissions),
	}
	if state.User != nil && state.User.Email != "" {
		vm.SessionChip = state.User.Email
		vm.LoginEmail = state.User.Email
	}
	return vm
}

func renderEditor(b models.Blueprint) models.EditorView {
	ev := models.EditorView{
		Title:       b.Title,
		Description: b.Description,
		AccentColor: b.AccentColor,
		HeroEmoji:   b.HeroEmoji,
		Fields:      make([]models.FieldRow, 0, len(b.Fields)),
		Weekdays:    make([]models.WeekdayToggle, 0, len(models.Weekdays)),
	}
	if ev.AccentColor == "" {
		ev.AccentColor = models.DefaultAccentColor
	}
	if ev.HeroEmoji == "" {
		ev.HeroEmoji = models.FallbackHeroEmoji
	}

	if len(b.Fields) == 0 {
		ev.EmptyMessage = emptyFieldListMessage
	}
	last := len(b.Fields) - 1
	for i, f := range b.Fields {
		ev.Fields = append(ev.Fields, models.FieldRow{
			Index:       i,
			ID:          f.ID,
			Label:       f.Label,
			Type:        f.Type,
			CanMoveUp:   i > 0,
			CanMoveDown: i < last,
		})
	}

	selected := weekdaySet(b.Weekdays)
	for _, day := range models.Weekdays {
		ev.Weekdays = append(ev.Weekdays, models.WeekdayToggle{
			Key:    day.Key,
			Label:  day.Label,
			Active: selected[day.Key],
		})
	}
	return ev
}

type formOptions struct {
	descriptionFallback string
	submitLabel         string
	endpoint            string
}

func renderForm(b models.Blueprint, opts formOptions) models.FormView {
	fv := models.FormView{
		HeroEmoji:      DisplayEmoji(b.HeroEmoji),
		Title:          orDefault(b.Title, titleFallback),
		Description:    orDefault(b.Description, opts.descriptionFallback),
		Weekdays:       weekdayBadges(b.Weekdays),
		Controls:       make([]models.FormControl, 0, len(b.Fields)),
		SubmitEndpoint: opts.endpoint,
	}
	if len(fv.Weekdays) == 0 {
		fv.WeekdaysEmpty = emptyWeekdaysMessage
	}

	if len(b.Fields) == 0 {
		fv.EmptyMessage = emptyFormMessage
		return fv
	}
	for _, f := range b.Fields {
		fv.Controls = append(fv.Controls, RenderControl(f))
	}
	fv.SubmitLabel = opts.submitLabel
	return fv
}

// RenderControl builds the form control of one field.
func RenderControl(f models.Field) models.FormControl {
	label := f.Label
	if f.Required {
		label = f.Label + " *"
	}
	ctrl := models.FormControl{
		Name:     f.ID,
		Label:    label,
		Required: f.Required,
	}

	switch f.Type {
	case models.FieldTextarea:
		ctrl.Kind = models.ControlTextarea
		ctrl.Placeholder = f.Placeholder
	case models.FieldSelect:
		ctrl.Kind = models.ControlSelect
		ctrl.Options = make([]models.SelectOption, 0, len(f.Options)+1)
		if f.Placeholder != "" {
			ctrl.Options = append(ctrl.Options, models.SelectOption{
				Value:    "",
				Label:    f.Placeholder,
				Disabled: true,
				Selected: true,
			})
		}
		for _, opt := range f.Options {
			ctrl.Options = append(ctrl.Options, models.SelectOption{Value: opt, Label: opt})
		}
	default:
		ctrl.Kind = models.ControlInput
		ctrl.InputType = InputType(f.Type)
		ctrl.Placeholder = f.Placeholder
	}
	return ctrl
}

// InputType maps a field type onto an HTML input type, defaulting to text.
func InputType(fieldType string) string {
	if supportedInputTypes[fieldType] {
		return fieldType
	}
	return models.FieldText
}

func renderLog(subs []models.Submission) models.SubmissionLog {
	log := models.SubmissionLog{Entries: []models.LogEntry{}}
	if len(subs) == 0 {
		log.EmptyMessage = emptyLogMessage
		return log
	}

	start := len(subs) - models.MaxDisplayedSubmissions
	if start < 0 {
		start = 0
	}
	for i := len(subs) - 1; i >= start; i-- {
		entry := subs[i]
		label := entry.Summary
		if label == "" && len(entry.Values) > 0 {
			label = entry.Values[0]
		}
		if label == "" {
			label = logEntryFallback
		}
		timestamp := invalidTimestamp
		if !entry.At.IsZero() {
			timestamp = entry.At.Local().Format(TimestampLayout)
		}
		log.Entries = append(log.Entries, models.LogEntry{
			ID:        entry.ID,
			Summary:   label,
			Timestamp: timestamp,
		})
	}
	return log
}

func weekdayBadges(keys []string) []string {
	selected := weekdaySet(keys)
	out := make([]string, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		if selected[day.Key] {
			out = append(out, day.Label)
		}
	}
	return out
}

func weekdaySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, key := range models.NormalizeWeekdays(keys) {
		set[key] = true
	}
	return set
}

// DisplayEmoji keeps at most two UTF-16 code units, which is one emoji outside the BMP.
func DisplayEmoji(emoji string) string {
	if emoji == "" {
		emoji = models.FallbackHeroEmoji
	}
	units := utf16.Encode([]rune(emoji))
	if len(units) > 2 {
		units = units[:2]
	}
	return string(utf16.Decode(units))
}

var hexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// SanitizeHex returns the color with a leading '#', or "" when it is not a 6-digit hex.
func SanitizeHex(value string) string {
	hex := strings.TrimSpace(value)
	if !hexColor.MatchString(hex) {
		return ""
	}
	if strings.HasPrefix(hex, "#") {
		return hex
	}
	return "#" + hex
}

// AccentPaletteFor returns the accent and its 40% lighter companion.
func AccentPaletteFor(color string) models.AccentPalette {
	accent := SanitizeHex(color)
	if accent == "" {
		accent = models.DefaultAccentColor
	}
	return models.AccentPalette{Accent: accent, Soft: LightenColor(accent, 0.4)}
}

// LightenColor mixes the color towards white by ratio.
func LightenColor(hex string, ratio float64) string {
	r, g, b := hexToRGB(hex)
	mix := func(channel int) int {
		return int(math.Round(float64(channel) + float64(255-channel)*ratio))
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(r), mix(g), mix(b))
}

func hexToRGB(hex string) (int, int, int) {
	value := SanitizeHex(hex)
	if value == "" {
		value = "#000000"
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(value, "#"), 16, 64)
	if err != nil {
		return 0, 0, 0
	}
	return int(n>>16) & 255, int(n>>8) & 255, int(n) & 255
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
