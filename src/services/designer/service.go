package designer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"Backend-Booking-Designer/src/errorz"
	"Backend-Booking-Designer/src/models"
	"Backend-Booking-Designer/src/storage"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	previewSummaryFallback = "Simulação"
	publicSummaryFallback  = "Novo agendamento"
	newFieldLabel          = "Novo campo"

	flashPreviewSubmitted = "Simulação armazenada com sucesso!"
	flashPublicSubmitted  = "Agendamento enviado! Você receberá uma confirmação."
	flashLoggedIn         = "Login efetuado. Personalize seu fluxo!"

	minPasswordLength = 4

	defaultCacheSize = 10000
	defaultCacheTTL  = 24 * time.Hour
)

var ErrUnknownSource = errors.New("unknown submission source")

// Archiver receives every public submission, e.g. to hand it to a background job.
type Archiver interface {
	Archive(ctx context.Context, sessionID string, blueprint models.Blueprint, sub models.Submission) error
}

// Service serves designer sessions. Records are read from storage on every call so that
// several processes can share one store; only page-lifetime state stays in memory.
type Service struct {
	persistence *Persistence
	archiver    Archiver
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
	cacheSize   int
	cacheTTL    time.Duration

	mu    sync.Mutex
	pages *expirable.LRU[string, pageState]
}

// pageState is what the browser keeps until the page reloads: the active view, the
// status lines and a user who logged in without "remember".
type pageState struct {
	View        string
	LoginStatus string
	Flash       string
	User        *models.SessionUser
}

type Option func(*Service)

func WithArchiver(a Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithSessionCache bounds the page states kept in memory: at most size sessions,
// each dropped ttl after its last change.
func WithSessionCache(size int, ttl time.Duration) Option {
	return func(s *Service) {
		s.cacheSize = size
		s.cacheTTL = ttl
	}
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		logger:    slog.Default(),
		now:       time.Now,
		newID:     shortID,
		cacheSize: defaultCacheSize,
		cacheTTL:  defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cacheSize <= 0 {
		s.cacheSize = defaultCacheSize
	}
	s.persistence = NewPersistence(store, s.logger, s.newID)
	s.pages = expirable.NewLRU[string, pageState](s.cacheSize, nil, s.cacheTTL)
	return s
}

func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// load hydrates the session from storage and lays its page state on top. Callers hold s.mu.
func (s *Service) load(ctx context.Context, sessionID string) *models.DesignerState {
	st := &models.DesignerState{
		Blueprint:   s.persistence.LoadBlueprint(ctx, sessionID),
		Submissions: s.persistence.LoadSubmissions(ctx, sessionID),
		User:        s.persistence.LoadUser(ctx, sessionID),
		CurrentView: models.ViewLogin,
	}

	page, ok := s.pages.Get(sessionID)
	if !ok {
		if st.User != nil {
			st.CurrentView = models.ViewAdmin
		}
		return st
	}
	if page.User != nil {
		u := *page.User
		st.User = &u
	}
	st.CurrentView = page.View
	st.LoginStatus = page.LoginStatus
	st.Flash = page.Flash
	return st
}

// mutate runs fn against freshly loaded state and returns the re-rendered views.
// Only mutations create page state; reads never grow the cache.
func (s *Service) mutate(ctx context.Context, sessionID string, fn func(st *models.DesignerState) error) (models.ViewModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, sessionID)
	st.Flash = ""
	err := fn(st)
	s.pages.Add(sessionID, pageState{
		View:        st.CurrentView,
		LoginStatus: st.LoginStatus,
		Flash:       st.Flash,
		User:        st.User,
	})
	return Render(*st), err
}

// State returns the current session state.
func (s *Service) State(ctx context.Context, sessionID string) models.DesignerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.load(ctx, sessionID)
}

// View renders the session without changing it.
func (s *Service) View(ctx context.Context, sessionID string) models.ViewModel {
	return Render(s.State(ctx, sessionID))
}

// UpdateBlueprint applies header edits (title, description, accent color, emoji).
func (s *Service) UpdateBlueprint(ctx context.Context, sessionID string, patch models.BlueprintPatch) (models.ViewModel, error) {
	return s.mutate(ctx, sessionID, func(st *models.DesignerState) error {
		if patch.Title != nil {
			st.Blueprint.Title = *patch.Title
		}
		if patch.Description != nil {
			st.Blueprint.Description = *patch.Description
		}
		if patch.AccentColor != nil {
			st.Blueprint.AccentColor = *patch.AccentColor
		}
		if patch.HeroEmoji != nil {
			emoji := strings.TrimSpace(*patch.HeroEmoji)
			if emoji == "" {
				emoji = models.FallbackHeroEmoji
			}
			st.Blueprint.HeroEmoji = emoji
		}
		s.persistence.SaveBlueprint(ctx, sessionID, st.Blueprint)
		return nil
	})
}

// ResetBlueprint restores the starter blueprint.
func (s *Service) ResetBlueprint(ctx context.Context, sessionID string) (models.ViewModel, error) {
	return s.mutate(ctx, sessionID, func(st *models.DesignerState) error {
		st.Blueprint = models.DefaultBlueprint()
		s.persistence.SaveBlueprint(ctx, sessionID, st.Blueprint)
		return nil
	})
}

// AddField appends a field built from the add-field form.
func (s *Service) AddField(ctx context.Context, sessionID string, in models.FieldInput) (models.ViewModel, error) {
	return s.mutate(ctx, sessionID, func(st *models.DesignerState) error {
		st.Blueprint.Fields = append(st.Blueprint.Fields, s.buildField(in))
		s.persistence.SaveBlueprint(ctx, sessionID, st.Blueprint)
		return nil
	})
}

func (s *Service) buildField(in models.FieldInput) models.Field {
	fieldType := in.Type
	if fieldType == "" {
		fieldType = models.FieldText
	}
	label := in.Label
	if label == "" {
		label = newFieldLabel
	}
	options := []string{}
	for _, opt := range strings.Split(in.Options, ",") {
		if opt = strings.TrimSpace(opt); opt != "" {
			options = append(options, opt)
		}
	}
	return models.Field{
		ID:          "field-" + s.newID(),
		Label:       label,
		Type:        fieldType,
		Placeholder: in.Placeholder,
		Required:    in.Required,
		Options:     options,
	}
}

// MoveField moves the field at from to position to. Out-of-range indexes are a no-op.
func (s *Service) MoveField(ctx context.Context, sessionID string, from, to int) (models.ViewModel, error) {
	return s.mutate(ctx, sessionID, func(st *models.DesignerState) error {
		fields := st.Blueprint.Fields
		if from < 0 || from >= len(fields) || to < 0 || to >= len(fields) || from == to {
			return nil
		}
		item := fields[from]
		fields = append(fields[:from], fields[from+1:]...)
		fields = append(fields[:to], append([]models.Field{item}, fields[to:]...)...)
		st.Blueprint.Fields = fields
		s.persistence.SaveBlueprint(ctx, sessionID, st.Blueprint)
		return nil
	})
}

// DeleteField removes the field at index. Out-of-range indexes are a no-op.
func (s *Service) DeleteField(ctx context.Context, sessionID string, index int) (models.ViewModel, error) {
	return s.mutate(ctx, sessionID, func(st *models.DesignerState) error {
		fields := st.Blueprint.Fields
		if index < 0 || index >= len(fields) {
			return nil
		}
		st.Blueprint.Fields = append(fields[:index], fields[index+1:]...)
		s.persistence.SaveBlueprint(ctx, sessionID, st.Blueprint)
		return nil
	})
}

// ToggleWeekday flips one weekday and rebuilds the list in Monday..Sunday order.
func (s *Service) ToggleWeekday(ctx context.Context, sessionID, day string) (models.ViewModel, error) {
	return s.mutate(ctx, sessionID, func(st *models.DesignerState) error {
		if !models.IsWeekday(day) {
			return nil
		}
		current := weekdaySet(st.Blueprint.Weekdays)
		current[day] = !current[day]

		next := make([]string, 0, len(models.Weekdays))
		for _, key := range models.WeekdayKeys() {
			if current[key] {
				next = append(next, key)
			}
		}
		st.Blueprint.Weekdays = next
		s.persistence.SaveBlueprint(ctx, sessionID, st.Blueprint)
		return nil
	})
}

// RecordSubmission stores the values of a preview or public form, read by field id.
func (s *Service) RecordSubmission(ctx context.Context, sessionID, source string, values map[string]string) (models.ViewModel, error) {
	var fallback, flash string
	switch source {
	case models.SourcePreview:
		fallback, flash = previewSummaryFallback, flashPreviewSubmitted
	case models.SourcePublic:
		fallback, flash = publicSummaryFallback, flashPublicSubmitted
	default:
		return models.ViewModel{}, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}

	var (
		archived  models.Submission
		blueprint models.Blueprint
	)
	vm, err := s.mutate(ctx, sessionID, func(st *models.DesignerState) error {
		ordered := make([]string, 0, len(st.Blueprint.Fields))
		for _, f := range st.Blueprint.Fields {
			ordered = append(ordered, values[f.ID])
		}

		summary := fallback
		for _, v := range ordered {
			if strings.TrimSpace(v) != "" {
				summary = v
				break
			}
		}

		entry := models.Submission{
			ID:      uuid.NewString(),
			At:      s.now().UTC(),
			Values:  ordered,
			Summary: summary,
		}
		st.Submissions = append(st.Submissions, entry)
		s.persistence.SaveSubmissions(ctx, sessionID, st.Submissions)
		st.Flash = flash

		archived = entry
		blueprint = st.Blueprint.Clone()
		return nil
	})
	if err != nil {
		return vm, err
	}

	if source == models.SourcePublic && s.archiver != nil {
		if err := s.archiver.Archive(ctx, sessionID, blueprint, archived); err != nil {
			s.logger.Warn("⚠️ failed to archive booking", slog.String("session", sessionID), slog.String("submission", archived.ID), slog.Any("error", err))
		}
	}
	return vm, nil
}

// ClearSubmissions empties the submission log.
func (s *Service) ClearSubmissions(ctx context.Context, sessionID string) (models.ViewModel, error) {
	return s.mutate(ctx, sessionID, func(st *models.DesignerState) error {
		st.Submissions = []models.Submission{}
		s.persistence.SaveSubmissions(ctx, sessionID, st.Submissions)
		return nil
	})
}

// Login is a stub: any non-empty email with a 4+ character password is accepted.
// The user is persisted only when Remember is set.
func (s *Service) Login(ctx context.Context, sessionID string, in models.LoginInput) (models.ViewModel, error) {
	return s.mutate(ctx, sessionID, func(st *models.DesignerState) error {
		email := strings.TrimSpace(in.Email)
		password := strings.TrimSpace(in.Password)
		if email == "" || len([]rune(password)) < minPasswordLength {
			st.LoginStatus = errorz.ErrInvalidCredentials.Error()
			return errorz.ErrInvalidCredentials
		}

		user := models.SessionUser{
			Email: email,
			Name:  strings.SplitN(email, "@", 2)[0],
		}
		st.User = &user
		if in.Remember {
			s.persistence.SaveUser(ctx, sessionID, user)
		} else {
			s.persistence.RemoveUser(ctx, sessionID)
		}

		st.LoginStatus = fmt.Sprintf("Bem-vindo, %s!", user.Name)
		st.CurrentView = models.ViewAdmin
		st.Flash = flashLoggedIn
		return nil
	})
}

// SwitchView changes the active view; unknown targets land on the login view.
func (s *Service) SwitchView(ctx context.Context, sessionID, target string) (models.ViewModel, error) {
	return s.mutate(ctx, sessionID, func(st *models.DesignerState) error {
		switch target {
		case models.ViewAdmin, models.ViewPublic, models.ViewLogin:
			st.CurrentView = target
		default:
			st.CurrentView = models.ViewLogin
		}
		return nil
	})
}

// Reload drops the page state and hydrates the session again from storage.
func (s *Service) Reload(ctx context.Context, sessionID string) models.ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages.Remove(sessionID)
	return Render(*s.load(ctx, sessionID))
}
