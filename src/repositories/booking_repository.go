package repositories

import (
	"context"
	"fmt"

	"Backend-Booking-Designer/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository archives public designer submissions.
type BookingRepository interface {
	Save(ctx context.Context, booking *models.Booking) error
}

type mongoBookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(collection *mongo.Collection) BookingRepository {
	return &mongoBookingRepository{collection: collection}
}

// Save upserts by submission id so a retried task does not archive twice.
func (r *mongoBookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	filter := bson.M{"submissionId": booking.SubmissionID}
	set := bson.M{
		"sessionId":      booking.SessionID,
		"blueprintTitle": booking.BlueprintTitle,
		"labels":         booking.Labels,
		"values":         booking.Values,
		"summary":        booking.Summary,
		"submittedAt":    booking.SubmittedAt,
		"archivedAt":     booking.ArchivedAt,
	}
	update := bson.M{"$set": set, "$setOnInsert": bson.M{"_id": primitive.NewObjectID()}}
	if _, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("archive booking %s: %w", booking.SubmissionID, err)
	}
	return nil
}
