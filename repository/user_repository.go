package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/mongo"
)

type userRepository struct {
	db         mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) domain.UserRepository {
	return &userRepository{
		db:         db,
		collection: collection,
	}
}

// Upsert keys on the provider-assigned external id, so replaying the
// identity callback never creates a duplicate profile.
func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	coll := r.db.Collection(r.collection)

	now := time.Now()
	filter := bson.M{"external_id": user.ExternalID}
	update := bson.M{
		"$set": bson.M{
			"full_name":  user.FullName,
			"image_url":  user.ImageURL,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"external_id": user.ExternalID,
			"created_at":  now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", user.ExternalID, err)
	}
	return nil
}

func (r *userRepository) GetAllExcept(ctx context.Context, externalID string) ([]domain.User, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"external_id": bson.M{"$ne": externalID}})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]domain.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	coll := r.db.Collection(r.collection)

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
