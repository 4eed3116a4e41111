package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/mongo"
)

type albumRepository struct {
	db         mongo.Database
	collection string
}

func NewAlbumRepository(db mongo.Database, collection string) domain.AlbumRepository {
	return &albumRepository{
		db:         db,
		collection: collection,
	}
}

func (r *albumRepository) Create(ctx context.Context, album *domain.Album) error {
	coll := r.db.Collection(r.collection)

	now := time.Now()
	album.CreatedAt = now
	album.UpdatedAt = now
	if album.Songs == nil {
		album.Songs = []primitive.ObjectID{}
	}

	resultID, err := coll.InsertOne(ctx, album)
	if err != nil {
		return fmt.Errorf("failed to create album: %w", err)
	}
	if oid, ok := resultID.(primitive.ObjectID); ok {
		album.ID = oid
	}
	return nil
}

func (r *albumRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Album, error) {
	coll := r.db.Collection(r.collection)

	var album domain.Album
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&album)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get album %s: %w", id.Hex(), err)
	}
	return &album, nil
}

func (r *albumRepository) GetAll(ctx context.Context) ([]domain.Album, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	defer cursor.Close(ctx)

	albums := make([]domain.Album, 0)
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, fmt.Errorf("failed to decode albums: %w", err)
	}
	return albums, nil
}

// AddSong is a set-like append: $addToSet keeps the relationship list
// duplicate-free no matter how many times the same id is added.
func (r *albumRepository) AddSong(ctx context.Context, albumID, songID primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	update := bson.M{
		"$addToSet": bson.M{"songs": songID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	result, err := coll.UpdateOne(ctx, bson.M{"_id": albumID}, update)
	if err != nil {
		return fmt.Errorf("failed to add song %s to album %s: %w", songID.Hex(), albumID.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveSong drops the id if present; removing an absent id is a no-op.
func (r *albumRepository) RemoveSong(ctx context.Context, albumID, songID primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	update := bson.M{
		"$pull": bson.M{"songs": songID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := coll.UpdateOne(ctx, bson.M{"_id": albumID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove song %s from album %s: %w", songID.Hex(), albumID.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *albumRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	deleted, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete album %s: %w", id.Hex(), err)
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *albumRepository) Count(ctx context.Context) (int64, error) {
	coll := r.db.Collection(r.collection)

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count albums: %w", err)
	}
	return count, nil
}
