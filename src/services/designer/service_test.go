package designer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"Backend-Booking-Designer/src/errorz"
	"Backend-Booking-Designer/src/models"
	"Backend-Booking-Designer/src/storage"
	"Backend-Booking-Designer/test"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sid = "sess-1"

// Wednesday
var fixedNow = time.Date(2024, time.January, 3, 9, 30, 0, 0, time.UTC)

type archivedCall struct {
	sessionID string
	title     string
	sub       models.Submission
}

type fakeArchiver struct {
	mu    sync.Mutex
	calls []archivedCall
	err   error
}

func (f *fakeArchiver) Archive(_ context.Context, sessionID string, b models.Blueprint, sub models.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, archivedCall{sessionID: sessionID, title: b.Title, sub: sub})
	return f.err
}

// brokenStore fails every write and read.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (brokenStore) Set(context.Context, string, string) error { return errors.New("disk on fire") }
func (brokenStore) Delete(context.Context, string) error      { return errors.New("disk on fire") }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(store storage.Store, opts ...Option) *Service {
	seq := 0
	base := []Option{
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id%d", seq)
		}),
	}
	return NewService(store, append(base, opts...)...)
}

func fieldIDs(b models.Blueprint) []string {
	ids := make([]string, 0, len(b.Fields))
	for _, f := range b.Fields {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestDesignerBlueprint(t *testing.T) {
	suite := test.NewTestSuiteResult("Designer Blueprint Tests")
	defer suite.PrintSummary()
	ctx := context.Background()

	suite.Run(t, "FreshStorageLoadsDefaults", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		st := svc.State(ctx, sid)

		assert.Equal(t, "Mentoria Estratégica", st.Blueprint.Title)
		assert.Len(t, st.Blueprint.Fields, 5)
		assert.Equal(t, models.WeekdayKeys(), st.Blueprint.Weekdays)
		assert.Equal(t, models.ViewLogin, st.CurrentView)
		assert.Nil(t, st.User)
		assert.Empty(t, st.Submissions)
	})

	suite.Run(t, "ToggleWeekdayTwiceRestoresOrder", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())

		_, err := svc.ToggleWeekday(ctx, sid, "qua")
		require.NoError(t, err)
		assert.Equal(t, []string{"seg", "ter", "qui", "sex", "sab", "dom"}, svc.State(ctx, sid).Blueprint.Weekdays)

		vm, err := svc.ToggleWeekday(ctx, sid, "qua")
		require.NoError(t, err)
		assert.Equal(t, models.WeekdayKeys(), svc.State(ctx, sid).Blueprint.Weekdays)
		assert.Equal(t, []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}, vm.Preview.Weekdays)
	})

	suite.Run(t, "ToggleUnknownWeekdayIsIgnored", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.ToggleWeekday(ctx, sid, "xyz")
		require.NoError(t, err)
		assert.Equal(t, models.WeekdayKeys(), svc.State(ctx, sid).Blueprint.Weekdays)
	})

	suite.Run(t, "AddThenMovePersists", func(t *testing.T) {
		store := storage.NewMemoryStore()
		svc := newTestService(store)

		vm, err := svc.AddField(ctx, sid, models.FieldInput{
			Label:   "Empresa",
			Type:    models.FieldSelect,
			Options: " ACME, , Globex ",
		})
		require.NoError(t, err)
		require.Len(t, vm.Editor.Fields, 6)

		added := svc.State(ctx, sid).Blueprint.Fields[5]
		assert.Equal(t, "field-id1", added.ID)
		assert.Equal(t, []string{"ACME", "Globex"}, added.Options)

		_, err = svc.MoveField(ctx, sid, 5, 0)
		require.NoError(t, err)

		want := []string{"field-id1", "field-name", "field-email", "field-formato", "field-data", "field-hora"}
		assert.Equal(t, want, fieldIDs(svc.State(ctx, sid).Blueprint))

		// a fresh service over the same storage sees the new order
		other := newTestService(store)
		assert.Equal(t, want, fieldIDs(other.State(ctx, sid).Blueprint))
	})

	suite.Run(t, "MoveOutOfBoundsIsNoop", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		before := fieldIDs(svc.State(ctx, sid).Blueprint)

		_, err := svc.MoveField(ctx, sid, 0, -1)
		require.NoError(t, err)
		_, err = svc.MoveField(ctx, sid, 4, 5)
		require.NoError(t, err)
		_, err = svc.MoveField(ctx, sid, 9, 0)
		require.NoError(t, err)

		assert.Equal(t, before, fieldIDs(svc.State(ctx, sid).Blueprint))
	})

	suite.Run(t, "MoveDown", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.MoveField(ctx, sid, 0, 1)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"field-email", "field-name", "field-formato", "field-data", "field-hora"},
			fieldIDs(svc.State(ctx, sid).Blueprint))
	})

	suite.Run(t, "DeleteField", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.DeleteField(ctx, sid, 2)
		require.NoError(t, err)
		_, err = svc.DeleteField(ctx, sid, 42)
		require.NoError(t, err)

		assert.Equal(t, []string{"field-name", "field-email", "field-data", "field-hora"}, fieldIDs(svc.State(ctx, sid).Blueprint))
	})

	suite.Run(t, "DeletingEveryFieldShowsEmptyStates", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		var vm models.ViewModel
		for i := 0; i < 5; i++ {
			var err error
			vm, err = svc.DeleteField(ctx, sid, 0)
			require.NoError(t, err)
		}
		assert.Equal(t, emptyFieldListMessage, vm.Editor.EmptyMessage)
		assert.Equal(t, emptyFormMessage, vm.Preview.EmptyMessage)
		assert.Empty(t, vm.Public.SubmitLabel)
	})

	suite.Run(t, "UpdateHeaderAndBlankEmoji", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		title, emoji, accent := "Consultoria", "   ", "#112233"

		vm, err := svc.UpdateBlueprint(ctx, sid, models.BlueprintPatch{Title: &title, HeroEmoji: &emoji, AccentColor: &accent})
		require.NoError(t, err)

		st := svc.State(ctx, sid)
		assert.Equal(t, "Consultoria", st.Blueprint.Title)
		assert.Equal(t, models.FallbackHeroEmoji, st.Blueprint.HeroEmoji)
		assert.Equal(t, "#112233", vm.Accent.Accent)
		// description untouched
		assert.Equal(t, models.DefaultBlueprint().Description, st.Blueprint.Description)
	})

	suite.Run(t, "ResetRestoresDefaults", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		title := "Outro"
		_, err := svc.UpdateBlueprint(ctx, sid, models.BlueprintPatch{Title: &title})
		require.NoError(t, err)
		_, err = svc.DeleteField(ctx, sid, 0)
		require.NoError(t, err)

		_, err = svc.ResetBlueprint(ctx, sid)
		require.NoError(t, err)
		svc.Reload(ctx, sid)
		assert.Equal(t, models.DefaultBlueprint(), svc.State(ctx, sid).Blueprint)
	})

	suite.Run(t, "CorruptStoredBlueprintFallsBack", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, Key(sid, BlueprintKey), "{not json"))
		require.NoError(t, store.Set(ctx, Key(sid, SubmissionKey), "[[["))

		svc := newTestService(store)
		st := svc.State(ctx, sid)
		assert.Equal(t, models.DefaultBlueprint(), st.Blueprint)
		assert.Empty(t, st.Submissions)
	})

	suite.Run(t, "PartialStoredBlueprintIsNormalized", func(t *testing.T) {
		store := storage.NewMemoryStore()
		doc := `{"title":"Aula","fields":[{"type":"tel"},{"id":"x","label":"X","required":true}],"weekdays":["dom","bogus","seg","dom"]}`
		require.NoError(t, store.Set(ctx, Key(sid, BlueprintKey), doc))

		b := newTestService(store).State(ctx, sid).Blueprint
		assert.Equal(t, "Aula", b.Title)
		assert.Equal(t, models.DefaultAccentColor, b.AccentColor)
		require.Len(t, b.Fields, 2)
		assert.Equal(t, "field-0-id1", b.Fields[0].ID)
		assert.Equal(t, "Campo 1", b.Fields[0].Label)
		assert.Equal(t, models.FieldTel, b.Fields[0].Type)
		assert.Equal(t, models.FieldText, b.Fields[1].Type)
		assert.True(t, b.Fields[1].Required)
		assert.Equal(t, []string{"dom", "seg"}, b.Weekdays)

		// generated ids are written back, so a fresh instance agrees on them
		again := newTestService(store).State(ctx, sid).Blueprint
		assert.Equal(t, "field-0-id1", again.Fields[0].ID)
	})

	suite.Run(t, "MalformedSubmissionEntryKeepsTheRest", func(t *testing.T) {
		store := storage.NewMemoryStore()
		doc := `[{"id":"a","at":"2024-01-01T10:00:00.000Z","values":["Ana"],"summary":"Ana"},` +
			`{"id":"b","at":"ontem","values":["Bia"],"summary":"Bia"},null,` +
			`{"id":"c","at":1704103200000,"values":[],"summary":"Caio"}]`
		require.NoError(t, store.Set(ctx, Key(sid, SubmissionKey), doc))

		subs := newTestService(store).State(ctx, sid).Submissions
		require.Len(t, subs, 3)
		assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), subs[0].At.UTC())
		assert.Equal(t, "Bia", subs[1].Summary)
		assert.True(t, subs[1].At.IsZero())
		assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), subs[2].At)
	})

	suite.Run(t, "StorageFailuresAreNotSurfaced", func(t *testing.T) {
		svc := newTestService(brokenStore{})
		vm, err := svc.ToggleWeekday(ctx, sid, "seg")
		require.NoError(t, err)
		assert.Len(t, vm.Preview.Weekdays, 6)
	})
}

func TestDesignerSubmissions(t *testing.T) {
	suite := test.NewTestSuiteResult("Designer Submission Tests")
	defer suite.PrintSummary()
	ctx := context.Background()

	values := map[string]string{
		"field-name":    "Ana",
		"field-email":   "ana@x.com",
		"field-formato": "Zoom",
		"field-data":    "2024-01-01",
		"field-hora":    "10:00",
	}

	suite.Run(t, "PublicSubmitIsRecordedAndArchived", func(t *testing.T) {
		archiver := &fakeArchiver{}
		svc := newTestService(storage.NewMemoryStore(), WithArchiver(archiver))

		vm, err := svc.RecordSubmission(ctx, sid, models.SourcePublic, values)
		require.NoError(t, err)

		st := svc.State(ctx, sid)
		require.Len(t, st.Submissions, 1)
		assert.Equal(t, "Ana", st.Submissions[0].Summary)
		assert.Equal(t, []string{"Ana", "ana@x.com", "Zoom", "2024-01-01", "10:00"}, st.Submissions[0].Values)
		assert.Equal(t, fixedNow, st.Submissions[0].At)
		assert.Equal(t, flashPublicSubmitted, vm.Flash)

		require.Len(t, archiver.calls, 1)
		assert.Equal(t, sid, archiver.calls[0].sessionID)
		assert.Equal(t, "Mentoria Estratégica", archiver.calls[0].title)
	})

	suite.Run(t, "PreviewSubmitIsNotArchived", func(t *testing.T) {
		archiver := &fakeArchiver{}
		svc := newTestService(storage.NewMemoryStore(), WithArchiver(archiver))

		vm, err := svc.RecordSubmission(ctx, sid, models.SourcePreview, map[string]string{"field-email": "  "})
		require.NoError(t, err)
		assert.Empty(t, archiver.calls)
		assert.Equal(t, flashPreviewSubmitted, vm.Flash)
		require.Len(t, vm.Log.Entries, 1)
		assert.Equal(t, "Simulação", vm.Log.Entries[0].Summary)
	})

	suite.Run(t, "BlankPublicSubmitUsesFallback", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.RecordSubmission(ctx, sid, models.SourcePublic, nil)
		require.NoError(t, err)
		st := svc.State(ctx, sid)
		assert.Equal(t, "Novo agendamento", st.Submissions[0].Summary)
		assert.Equal(t, []string{"", "", "", "", ""}, st.Submissions[0].Values)
	})

	suite.Run(t, "ArchiverFailureIsLoggedOnly", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore(), WithArchiver(&fakeArchiver{err: errors.New("queue down")}))
		_, err := svc.RecordSubmission(ctx, sid, models.SourcePublic, values)
		require.NoError(t, err)
		assert.Len(t, svc.State(ctx, sid).Submissions, 1)
	})

	suite.Run(t, "UnknownSourceIsRejected", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.RecordSubmission(ctx, sid, "admin", values)
		assert.ErrorIs(t, err, ErrUnknownSource)
	})

	suite.Run(t, "ClearThenReloadShowsEmptyState", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.RecordSubmission(ctx, sid, models.SourcePreview, values)
		require.NoError(t, err)

		_, err = svc.ClearSubmissions(ctx, sid)
		require.NoError(t, err)

		vm := svc.Reload(ctx, sid)
		assert.Empty(t, vm.Log.Entries)
		assert.Equal(t, "Sem simulações ainda.", vm.Log.EmptyMessage)
	})

	suite.Run(t, "LogShowsLastFiveNewestFirst", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		var vm models.ViewModel
		for i := 1; i <= 7; i++ {
			var err error
			vm, err = svc.RecordSubmission(ctx, sid, models.SourcePreview, map[string]string{"field-name": fmt.Sprintf("n%d", i)})
			require.NoError(t, err)
		}
		assert.Len(t, svc.State(ctx, sid).Submissions, 7)
		require.Len(t, vm.Log.Entries, 5)
		assert.Equal(t, "n7", vm.Log.Entries[0].Summary)
		assert.Equal(t, "n3", vm.Log.Entries[4].Summary)
	})

	suite.Run(t, "FlashClearsOnNextChange", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.RecordSubmission(ctx, sid, models.SourcePreview, values)
		require.NoError(t, err)
		vm, err := svc.ToggleWeekday(ctx, sid, "dom")
		require.NoError(t, err)
		assert.Empty(t, vm.Flash)
	})
}

func TestDesignerSession(t *testing.T) {
	suite := test.NewTestSuiteResult("Designer Session Tests")
	defer suite.PrintSummary()
	ctx := context.Background()

	suite.Run(t, "LoginAcceptsFourCharacterPassword", func(t *testing.T) {
		store := storage.NewMemoryStore()
		svc := newTestService(store)

		vm, err := svc.Login(ctx, sid, models.LoginInput{Email: " ana@x.com ", Password: "1234", Remember: true})
		require.NoError(t, err)

		st := svc.State(ctx, sid)
		require.NotNil(t, st.User)
		assert.Equal(t, "ana", st.User.Name)
		assert.Equal(t, "ana@x.com", st.User.Email)
		assert.Equal(t, models.ViewAdmin, vm.CurrentView)
		assert.Equal(t, "Bem-vindo, ana!", vm.LoginStatus)
		assert.Equal(t, "ana@x.com", vm.SessionChip)

		// remembered user opens straight into the admin view
		other := newTestService(store)
		assert.Equal(t, models.ViewAdmin, other.State(ctx, sid).CurrentView)
	})

	suite.Run(t, "LoginRejectsShortPassword", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())

		vm, err := svc.Login(ctx, sid, models.LoginInput{Email: "ana@x.com", Password: "123"})
		assert.ErrorIs(t, err, errorz.ErrInvalidCredentials)
		assert.Equal(t, "Informe email e uma senha com ao menos 4 caracteres.", vm.LoginStatus)
		assert.Equal(t, models.ViewLogin, vm.CurrentView)
		assert.Equal(t, "Visitante", vm.SessionChip)
		assert.Nil(t, svc.State(ctx, sid).User)
	})

	suite.Run(t, "LoginRejectsBlankEmail", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.Login(ctx, sid, models.LoginInput{Email: "   ", Password: "12345"})
		assert.ErrorIs(t, err, errorz.ErrInvalidCredentials)
	})

	suite.Run(t, "LoginWithoutRememberRemovesStoredUser", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, Key(sid, UserKey), `{"email":"old@x.com","name":"old"}`))
		svc := newTestService(store)
		require.Equal(t, models.ViewAdmin, svc.State(ctx, sid).CurrentView)

		_, err := svc.Login(ctx, sid, models.LoginInput{Email: "bia@x.com", Password: "abcd"})
		require.NoError(t, err)

		_, found, err := store.Get(ctx, Key(sid, UserKey))
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, "bia", svc.State(ctx, sid).User.Name)

		// gone after a reload
		vm := svc.Reload(ctx, sid)
		assert.Equal(t, models.ViewLogin, vm.CurrentView)
	})

	suite.Run(t, "SwitchView", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		vm, err := svc.SwitchView(ctx, sid, models.ViewPublic)
		require.NoError(t, err)
		assert.Equal(t, models.ViewPublic, vm.CurrentView)

		vm, err = svc.SwitchView(ctx, sid, "settings")
		require.NoError(t, err)
		assert.Equal(t, models.ViewLogin, vm.CurrentView)
	})

	suite.Run(t, "StoredNullUserIsAbsent", func(t *testing.T) {
		for _, raw := range []string{"null", "{}", `{"email":"  ","name":"x"}`} {
			store := storage.NewMemoryStore()
			require.NoError(t, store.Set(ctx, Key(sid, UserKey), raw))

			vm := newTestService(store).View(ctx, sid)
			assert.Equal(t, models.ViewLogin, vm.CurrentView, raw)
			assert.Equal(t, "Visitante", vm.SessionChip, raw)
		}
	})

	suite.Run(t, "ReadOnlyViewsDoNotCacheSessions", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		for i := 0; i < 1000; i++ {
			svc.View(ctx, fmt.Sprintf("sid-%d", i))
		}
		assert.Equal(t, 0, svc.pages.Len())
	})

	suite.Run(t, "PageCacheIsBounded", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore(), WithSessionCache(3, time.Hour))
		for i := 0; i < 10; i++ {
			_, err := svc.SwitchView(ctx, fmt.Sprintf("sid-%d", i), models.ViewPublic)
			require.NoError(t, err)
		}
		assert.Equal(t, 3, svc.pages.Len())

		// the oldest session lost its page state, the newest kept it
		assert.Equal(t, models.ViewLogin, svc.State(ctx, "sid-0").CurrentView)
		assert.Equal(t, models.ViewPublic, svc.State(ctx, "sid-9").CurrentView)
	})

	suite.Run(t, "PageStateExpires", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore(), WithSessionCache(10, 50*time.Millisecond))
		_, err := svc.SwitchView(ctx, sid, models.ViewPublic)
		require.NoError(t, err)
		require.Equal(t, models.ViewPublic, svc.State(ctx, sid).CurrentView)

		assert.Eventually(t, func() bool {
			return svc.State(ctx, sid).CurrentView == models.ViewLogin
		}, 2*time.Second, 20*time.Millisecond)
	})

	suite.Run(t, "WritesFromAnotherInstanceAreVisible", func(t *testing.T) {
		store := storage.NewMemoryStore()
		a := newTestService(store)
		b := newTestService(store)

		_, err := a.SwitchView(ctx, sid, models.ViewAdmin)
		require.NoError(t, err)
		require.Len(t, a.State(ctx, sid).Blueprint.Fields, 5)

		_, err = b.DeleteField(ctx, sid, 0)
		require.NoError(t, err)
		assert.Len(t, a.State(ctx, sid).Blueprint.Fields, 4)

		// a later edit on a does not write back the stale field list
		_, err = a.ToggleWeekday(ctx, sid, "dom")
		require.NoError(t, err)
		st := b.State(ctx, sid)
		assert.Len(t, st.Blueprint.Fields, 4)
		assert.NotContains(t, st.Blueprint.Weekdays, "dom")
	})

	suite.Run(t, "SessionsAreIsolated", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		_, err := svc.DeleteField(ctx, "a", 0)
		require.NoError(t, err)
		assert.Len(t, svc.State(ctx, "a").Blueprint.Fields, 4)
		assert.Len(t, svc.State(ctx, "b").Blueprint.Fields, 5)
	})
}

func TestAvailabilityCalendar(t *testing.T) {
	suite := test.NewTestSuiteResult("Availability Calendar Tests")
	defer suite.PrintSummary()
	ctx := context.Background()

	suite.Run(t, "OnlyEnabledWeekdaysAreExported", func(t *testing.T) {
		svc := newTestService(storage.NewMemoryStore())
		for _, day := range []string{"ter", "qua", "qui", "sex", "sab"} {
			_, err := svc.ToggleWeekday(ctx, sid, day)
			require.NoError(t, err)
		}

		var buf bytes.Buffer
		require.NoError(t, svc.ExportAvailability(ctx, sid, &buf))
		body := buf.String()
		assert.Contains(t, body, "BYDAY=MO")
		assert.Contains(t, body, "BYDAY=SU")
		assert.NotContains(t, body, "BYDAY=TU")
		assert.Contains(t, body, "Mentoria Estratégica")

		cal, err := ical.NewDecoder(strings.NewReader(body)).Decode()
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 2)

		start, err := events[0].DateTimeStart(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), start)
	})

	suite.Run(t, "NoWeekdays", func(t *testing.T) {
		b := models.DefaultBlueprint()
		b.Weekdays = nil
		_, err := AvailabilityCalendar(sid, b, fixedNow)
		assert.ErrorIs(t, err, ErrNoAvailability)
	})

	suite.Run(t, "NextWeekdayIncludesToday", func(t *testing.T) {
		assert.Equal(t, time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), nextWeekday(fixedNow, time.Wednesday))
		assert.Equal(t, time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC), nextWeekday(fixedNow, time.Tuesday))
	})
}
