package mongo

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/echosphere/echosphere-backend/domain"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	albumCollection := db.Collection(domain.CollectionAlbum)
	createIndex(ctx, albumCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at", false)
	createIndex(ctx, albumCollection, bson.D{{Key: "artist", Value: 1}}, "artist", false)

	songCollection := db.Collection(domain.CollectionSong)
	createIndex(ctx, songCollection, bson.D{{Key: "album_id", Value: 1}}, "album_id", false)
	createIndex(ctx, songCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at", false)
	createIndex(ctx, songCollection, bson.D{{Key: "artist", Value: 1}}, "artist", false)

	userCollection := db.Collection(domain.CollectionUser)
	createIndex(ctx, userCollection, bson.D{{Key: "external_id", Value: 1}}, "external_id_unique", true)
}

func createIndex(ctx context.Context, coll Collection, keys bson.D, name string, unique bool) {
	opts := options.Index().SetName(name)
	if unique {
		opts.SetUnique(true)
	}
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil {
		log.Warn().Err(err).Str("index", name).Msg("failed to create index")
	}
}
