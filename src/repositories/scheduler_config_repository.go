package repositories

import (
	"context"
	"fmt"

	"Backend-Booking-Designer/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SchedulerConfigRepository persists scheduler configuration documents.
// Create may return (nil, nil) when nothing was stored.
type SchedulerConfigRepository interface {
	Create(ctx context.Context, cfg *models.SchedulerConfig) (*models.SchedulerConfig, error)
}

type mongoSchedulerConfigRepository struct {
	collection *mongo.Collection
}

func NewSchedulerConfigRepository(collection *mongo.Collection) SchedulerConfigRepository {
	return &mongoSchedulerConfigRepository{collection: collection}
}

func (r *mongoSchedulerConfigRepository) Create(ctx context.Context, cfg *models.SchedulerConfig) (*models.SchedulerConfig, error) {
	cfg.ID = primitive.NewObjectID()
	res, err := r.collection.InsertOne(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("insert scheduler config: %w", err)
	}
	if res == nil || res.InsertedID == nil {
		return nil, nil
	}
	return cfg, nil
}
