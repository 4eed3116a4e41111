package repository

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/mongo"
)

type songRepository struct {
	db         mongo.Database
	collection string
}

func NewSongRepository(db mongo.Database, collection string) domain.SongRepository {
	return &songRepository{
		db:         db,
		collection: collection,
	}
}

var songPreviewProjection = bson.M{
	"_id":       1,
	"title":     1,
	"artist":    1,
	"image_url": 1,
	"audio_url": 1,
}

func (r *songRepository) Create(ctx context.Context, song *domain.Song) error {
	coll := r.db.Collection(r.collection)

	now := time.Now()
	song.CreatedAt = now
	song.UpdatedAt = now

	resultID, err := coll.InsertOne(ctx, song)
	if err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}
	if oid, ok := resultID.(primitive.ObjectID); ok {
		song.ID = oid
	}
	return nil
}

func (r *songRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Song, error) {
	coll := r.db.Collection(r.collection)

	var song domain.Song
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&song)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get song %s: %w", id.Hex(), err)
	}
	return &song, nil
}

func (r *songRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Song, error) {
	songs := make([]domain.Song, 0)
	if len(ids) == 0 {
		return songs, nil
	}
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to list songs by ids: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("failed to decode songs: %w", err)
	}
	return songs, nil
}

func (r *songRepository) GetAll(ctx context.Context) ([]domain.Song, error) {
	coll := r.db.Collection(r.collection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	defer cursor.Close(ctx)

	songs := make([]domain.Song, 0)
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("failed to decode songs: %w", err)
	}
	return songs, nil
}

// SampleRandom returns n songs chosen uniformly at random, without
// replacement. Rather than a store-native $sample, it picks n distinct
// indices into the _id-ordered collection and fetches each one, so the
// selection carries no bias toward recently inserted documents. When n
// is at least the collection size the whole collection is returned.
func (r *songRepository) SampleRandom(ctx context.Context, n int) ([]domain.SongPreview, error) {
	coll := r.db.Collection(r.collection)

	previews := make([]domain.SongPreview, 0, n)
	if n <= 0 {
		return previews, nil
	}

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count songs: %w", err)
	}
	if total == 0 {
		return previews, nil
	}

	if int64(n) >= total {
		opts := options.Find().SetProjection(songPreviewProjection)
		cursor, err := coll.Find(ctx, bson.M{}, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to sample songs: %w", err)
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &previews); err != nil {
			return nil, fmt.Errorf("failed to decode songs: %w", err)
		}
		return previews, nil
	}

	for _, idx := range rand.Perm(int(total))[:n] {
		opts := options.Find().
			SetSort(bson.D{{Key: "_id", Value: 1}}).
			SetSkip(int64(idx)).
			SetLimit(1).
			SetProjection(songPreviewProjection)
		cursor, err := coll.Find(ctx, bson.M{}, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to sample songs: %w", err)
		}
		var page []domain.SongPreview
		if err := cursor.All(ctx, &page); err != nil {
			return nil, fmt.Errorf("failed to decode songs: %w", err)
		}
		// A concurrent delete can shrink the collection mid-sample.
		if len(page) > 0 {
			previews = append(previews, page[0])
		}
	}
	return previews, nil
}

func (r *songRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	deleted, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete song %s: %w", id.Hex(), err)
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByAlbumID bulk-deletes every song parented to the album. Used
// for the cascade when the album itself is about to disappear.
func (r *songRepository) DeleteByAlbumID(ctx context.Context, albumID primitive.ObjectID) (int64, error) {
	coll := r.db.Collection(r.collection)

	deleted, err := coll.DeleteMany(ctx, bson.M{"album_id": albumID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete songs of album %s: %w", albumID.Hex(), err)
	}
	return deleted, nil
}

func (r *songRepository) Count(ctx context.Context) (int64, error) {
	coll := r.db.Collection(r.collection)

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}
	return count, nil
}

// CountDistinctArtists groups the union of songs and albums by exact
// artist string and counts the groups. Zero artists is a valid zero.
func (r *songRepository) CountDistinctArtists(ctx context.Context) (int64, error) {
	coll := r.db.Collection(r.collection)

	pipeline := []bson.D{
		{{Key: "$unionWith", Value: bson.D{
			{Key: "coll", Value: domain.CollectionAlbum},
			{Key: "pipeline", Value: bson.A{}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$artist"},
		}}},
		{{Key: "$count", Value: "count"}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct artists: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode artist count: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Count, nil
}
