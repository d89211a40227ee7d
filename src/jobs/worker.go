package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"Backend-Booking-Designer/src/models"
	"Backend-Booking-Designer/src/repositories"

	"github.com/hibiken/asynq"
)

// ArchiveBookingHandler stores archived submissions in the bookings collection.
type ArchiveBookingHandler struct {
	repo   repositories.BookingRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewArchiveBookingHandler(repo repositories.BookingRepository, logger *slog.Logger) *ArchiveBookingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArchiveBookingHandler{repo: repo, logger: logger, now: time.Now}
}

func (h *ArchiveBookingHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload ArchiveBookingPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("❌ Payload decode error", slog.Any("error", err))
		// ไม่ต้อง retry payload ที่เสีย
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	booking := &models.Booking{
		SessionID:      payload.SessionID,
		SubmissionID:   payload.SubmissionID,
		BlueprintTitle: payload.BlueprintTitle,
		Labels:         payload.Labels,
		Values:         payload.Values,
		Summary:        payload.Summary,
		SubmittedAt:    payload.SubmittedAt,
		ArchivedAt:     h.now().UTC(),
	}
	if err := h.repo.Save(ctx, booking); err != nil {
		h.logger.Error("❌ Failed to archive booking", slog.String("submission", payload.SubmissionID), slog.Any("error", err))
		return err
	}

	h.logger.Info("✅ Booking archived", slog.String("submission", payload.SubmissionID), slog.String("summary", payload.Summary))
	return nil
}

// NewServeMux wires every task handler of the worker.
func NewServeMux(bookings repositories.BookingRepository, logger *slog.Logger, mws ...asynq.MiddlewareFunc) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Use(mws...)
	mux.Handle(TypeArchiveBooking, NewArchiveBookingHandler(bookings, logger))
	return mux
}
