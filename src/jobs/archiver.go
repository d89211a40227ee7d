package jobs

import (
	"context"
	"fmt"

	"Backend-Booking-Designer/src/models"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client the archiver needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueArchiver hands public submissions to the worker through asynq.
type QueueArchiver struct {
	client Enqueuer
}

func NewQueueArchiver(client Enqueuer) *QueueArchiver {
	return &QueueArchiver{client: client}
}

func (a *QueueArchiver) Archive(ctx context.Context, sessionID string, b models.Blueprint, sub models.Submission) error {
	labels := make([]string, 0, len(b.Fields))
	for _, f := range b.Fields {
		labels = append(labels, f.Label)
	}

	task, err := NewArchiveBookingTask(ArchiveBookingPayload{
		SessionID:      sessionID,
		SubmissionID:   sub.ID,
		BlueprintTitle: b.Title,
		Labels:         labels,
		Values:         sub.Values,
		Summary:        sub.Summary,
		SubmittedAt:    sub.At,
	})
	if err != nil {
		return fmt.Errorf("build archive task: %w", err)
	}
	if _, err := a.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue archive task: %w", err)
	}
	return nil
}
