package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeArchiveBooking = "designer:archive-submission"

// ArchiveBookingPayload carries one public submission with the field labels of its blueprint.
type ArchiveBookingPayload struct {
	SessionID      string    `json:"session_id"`
	SubmissionID   string    `json:"submission_id"`
	BlueprintTitle string    `json:"blueprint_title"`
	Labels         []string  `json:"labels"`
	Values         []string  `json:"values"`
	Summary        string    `json:"summary"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

func NewArchiveBookingTask(p ArchiveBookingPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeArchiveBooking, payload, asynq.MaxRetry(5)), nil
}
