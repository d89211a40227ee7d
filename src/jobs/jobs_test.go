package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"Backend-Booking-Designer/src/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	return nil, args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueArchiverEnqueuesPayload(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	enq := new(MockEnqueuer)

	var sent ArchiveBookingPayload
	enq.On("EnqueueContext", mock.Anything, mock.MatchedBy(func(task *asynq.Task) bool {
		return task.Type() == TypeArchiveBooking && json.Unmarshal(task.Payload(), &sent) == nil
	})).Return(nil, nil)

	sub := models.Submission{ID: "sub-1", At: at, Values: []string{"Ana", "ana@x.com"}, Summary: "Ana"}
	err := NewQueueArchiver(enq).Archive(context.Background(), "sess", models.DefaultBlueprint(), sub)
	require.NoError(t, err)

	enq.AssertExpectations(t)
	assert.Equal(t, "sess", sent.SessionID)
	assert.Equal(t, "Mentoria Estratégica", sent.BlueprintTitle)
	assert.Equal(t, []string{"Nome completo", "Email", "Formato do encontro", "Data ideal", "Horário"}, sent.Labels)
	assert.True(t, at.Equal(sent.SubmittedAt))
}

func TestQueueArchiverEnqueueError(t *testing.T) {
	enq := new(MockEnqueuer)
	enq.On("EnqueueContext", mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))

	err := NewQueueArchiver(enq).Archive(context.Background(), "sess", models.DefaultBlueprint(), models.Submission{})
	assert.ErrorContains(t, err, "redis down")
}

func TestArchiveBookingHandler(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.SubmissionID == "sub-1" && b.Summary == "Ana" && !b.ArchivedAt.IsZero()
	})).Return(nil)

	task, err := NewArchiveBookingTask(ArchiveBookingPayload{SessionID: "sess", SubmissionID: "sub-1", Summary: "Ana"})
	require.NoError(t, err)

	require.NoError(t, NewArchiveBookingHandler(repo, quietLogger()).ProcessTask(context.Background(), task))
	repo.AssertExpectations(t)
}

func TestArchiveBookingHandlerBadPayloadSkipsRetry(t *testing.T) {
	repo := new(MockBookingRepository)
	task := asynq.NewTask(TypeArchiveBooking, []byte("{"))

	err := NewArchiveBookingHandler(repo, quietLogger()).ProcessTask(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestArchiveBookingHandlerRepositoryError(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	task, err := NewArchiveBookingTask(ArchiveBookingPayload{SubmissionID: "x"})
	require.NoError(t, err)
	assert.Error(t, NewArchiveBookingHandler(repo, quietLogger()).ProcessTask(context.Background(), task))
}
