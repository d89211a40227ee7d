package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission คำตอบหนึ่งชุดที่กรอกตาม blueprint ณ เวลานั้น
type Submission struct {
	ID      string    `json:"id"`
	At      time.Time `json:"at"`
	Values  []string  `json:"values"`
	Summary string    `json:"summary"`
}

// Submission sources; each has its own fallback summary.
const (
	SourcePreview = "preview"
	SourcePublic  = "public"
)

const MaxDisplayedSubmissions = 5

// SubmissionInput values keyed by field id.
type SubmissionInput struct {
	Values map[string]string `json:"values"`
}

// Booking is a public submission archived into MongoDB by the worker.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID      string             `bson:"sessionId" json:"sessionId"`
	SubmissionID   string             `bson:"submissionId" json:"submissionId"`
	BlueprintTitle string             `bson:"blueprintTitle" json:"blueprintTitle"`
	Labels         []string           `bson:"labels" json:"labels"`
	Values         []string           `bson:"values" json:"values"`
	Summary        string             `bson:"summary" json:"summary"`
	SubmittedAt    time.Time          `bson:"submittedAt" json:"submittedAt"`
	ArchivedAt     time.Time          `bson:"archivedAt" json:"archivedAt"`
}
