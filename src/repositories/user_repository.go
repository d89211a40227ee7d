package repositories

import (
	"context"
	"errors"
	"fmt"

	"Backend-Booking-Designer/src/errorz"
	"Backend-Booking-Designer/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository is the storage behind the users resource.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, fields bson.M) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}

type mongoUserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(collection *mongo.Collection) UserRepository {
	return &mongoUserRepository{collection: collection}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID() // กำหนด ID อัตโนมัติ
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *mongoUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		return nil, notFound(err, "user "+id)
	}
	return &user, nil
}

func (r *mongoUserRepository) Update(ctx context.Context, id string, fields bson.M) (*models.User, error) {
	objID, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": fields}, opts).Decode(&user)
	if err != nil {
		return nil, notFound(err, "user "+id)
	}
	return &user, nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	objID, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		return nil, notFound(err, "user "+id)
	}
	return &user, nil
}

// ParseObjectID แปลง hex string เป็น ObjectID
func ParseObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", errorz.ErrInvalidID, id)
	}
	return objID, nil
}

func notFound(err error, what string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", what, errorz.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}
