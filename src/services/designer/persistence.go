package designer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"Backend-Booking-Designer/src/models"
	"Backend-Booking-Designer/src/storage"
)

// Record names, one JSON document each per session.
const (
	BlueprintKey  = "bookingDesignerConfig"
	SubmissionKey = "bookingSubmissions"
	UserKey       = "bookingDesignerUser"
)

// Persistence reads and writes the three session records. Read failures fall back to
// defaults and write failures are only logged.
type Persistence struct {
	store  storage.Store
	logger *slog.Logger
	newID  func() string
}

func NewPersistence(store storage.Store, logger *slog.Logger, newID func() string) *Persistence {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persistence{store: store, logger: logger, newID: newID}
}

// Key builds the storage key of a session record.
func Key(sessionID, record string) string {
	return "designer:" + sessionID + ":" + record
}

// LoadBlueprint reads the stored blueprint. Field ids that had to be generated are
// written back so later reads agree on them.
func (p *Persistence) LoadBlueprint(ctx context.Context, sessionID string) models.Blueprint {
	raw, found, err := p.store.Get(ctx, Key(sessionID, BlueprintKey))
	if err != nil {
		p.logger.Warn("⚠️ Erro ao ler configuração, usando padrão.", slog.String("session", sessionID), slog.Any("error", err))
		return models.DefaultBlueprint()
	}
	if !found || raw == "" {
		return models.DefaultBlueprint()
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil || data == nil {
		p.logger.Warn("⚠️ Erro ao ler configuração, usando padrão.", slog.String("session", sessionID), slog.Any("error", err))
		return models.DefaultBlueprint()
	}
	b, repaired := p.normalizeBlueprint(data)
	if repaired {
		p.SaveBlueprint(ctx, sessionID, b)
	}
	return b
}

// normalizeBlueprint fills whatever the stored document lacks from the defaults.
// The flag reports whether any field id had to be generated.
func (p *Persistence) normalizeBlueprint(data map[string]any) (models.Blueprint, bool) {
	def := models.DefaultBlueprint()
	repaired := false

	out := models.Blueprint{
		Title:       stringOr(data["title"], def.Title),
		Description: stringOr(data["description"], def.Description),
		AccentColor: stringOr(data["accentColor"], def.AccentColor),
		HeroEmoji:   stringOr(data["heroEmoji"], def.HeroEmoji),
	}

	rawFields, ok := data["fields"].([]any)
	if !ok {
		out.Fields = def.Fields
	} else {
		out.Fields = make([]models.Field, 0, len(rawFields))
		for i, item := range rawFields {
			f, _ := item.(map[string]any)
			id := stringOr(f["id"], "")
			if id == "" {
				id = fmt.Sprintf("field-%d-%s", i, p.newID())
				repaired = true
			}
			out.Fields = append(out.Fields, models.Field{
				ID:          id,
				Label:       stringOr(f["label"], fmt.Sprintf("Campo %d", i+1)),
				Type:        stringOr(f["type"], models.FieldText),
				Placeholder: stringOr(f["placeholder"], ""),
				Options:     stringList(f["options"]),
				Required:    truthy(f["required"]),
			})
		}
	}

	if weekdays, present := data["weekdays"]; present && weekdays != nil {
		out.Weekdays = models.NormalizeWeekdays(stringList(weekdays))
	} else {
		out.Weekdays = models.NormalizeWeekdays(def.Weekdays)
	}
	return out, repaired
}

func (p *Persistence) SaveBlueprint(ctx context.Context, sessionID string, b models.Blueprint) {
	p.save(ctx, sessionID, BlueprintKey, b)
}

// LoadSubmissions keeps every entry that decodes; one bad entry does not cost the log.
func (p *Persistence) LoadSubmissions(ctx context.Context, sessionID string) []models.Submission {
	raw, found, err := p.store.Get(ctx, Key(sessionID, SubmissionKey))
	if err != nil {
		p.logger.Warn("⚠️ Falha ao ler histórico de simulações.", slog.String("session", sessionID), slog.Any("error", err))
		return []models.Submission{}
	}
	if !found || raw == "" {
		return []models.Submission{}
	}
	var items []map[string]any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		p.logger.Warn("⚠️ Falha ao ler histórico de simulações.", slog.String("session", sessionID), slog.Any("error", err))
		return []models.Submission{}
	}

	subs := make([]models.Submission, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		subs = append(subs, models.Submission{
			ID:      stringOr(item["id"], ""),
			At:      parseTimestamp(item["at"]),
			Values:  stringList(item["values"]),
			Summary: stringOr(item["summary"], ""),
		})
	}
	return subs
}

func (p *Persistence) SaveSubmissions(ctx context.Context, sessionID string, subs []models.Submission) {
	p.save(ctx, sessionID, SubmissionKey, subs)
}

// LoadUser returns nil when no usable user is stored (including a stored null).
func (p *Persistence) LoadUser(ctx context.Context, sessionID string) *models.SessionUser {
	raw, found, err := p.store.Get(ctx, Key(sessionID, UserKey))
	if err != nil || !found || raw == "" {
		return nil
	}
	var user *models.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		p.logger.Warn("⚠️ stored user is unreadable, ignoring", slog.String("session", sessionID), slog.Any("error", err))
		return nil
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		return nil
	}
	return user
}

func (p *Persistence) SaveUser(ctx context.Context, sessionID string, user models.SessionUser) {
	p.save(ctx, sessionID, UserKey, user)
}

func (p *Persistence) RemoveUser(ctx context.Context, sessionID string) {
	if err := p.store.Delete(ctx, Key(sessionID, UserKey)); err != nil {
		p.logger.Warn("❌ failed to remove stored user", slog.String("session", sessionID), slog.Any("error", err))
	}
}

func (p *Persistence) save(ctx context.Context, sessionID, record string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		p.logger.Warn("❌ failed to encode record", slog.String("record", record), slog.Any("error", err))
		return
	}
	if err := p.store.Set(ctx, Key(sessionID, record), string(b)); err != nil {
		p.logger.Warn("❌ failed to persist record", slog.String("session", sessionID), slog.String("record", record), slog.Any("error", err))
	}
}

func stringOr(v any, fallback string) string {
	switch t := v.(type) {
	case nil:
		return fallback
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, stringOr(item, ""))
	}
	return out
}

// parseTimestamp accepts an ISO-8601 string or epoch milliseconds; anything else is the zero time.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts
		}
	case float64:
		return time.UnixMilli(int64(t)).UTC()
	}
	return time.Time{}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}
