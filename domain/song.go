package domain

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var audioURLPattern = regexp.MustCompile(`^https?://.+\.(mp3|wav|flac)$`)

// Song is an individual audio track. AlbumID is a soft reference: a
// nil value means the song is independent, and a set value is accepted
// optimistically (the store enforces no foreign-key constraint).
type Song struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Title     string              `bson:"title" json:"title"`
	Artist    string              `bson:"artist" json:"artist"`
	ImageURL  string              `bson:"image_url" json:"imageUrl"`
	AudioURL  string              `bson:"audio_url" json:"audioUrl"`
	Duration  int                 `bson:"duration" json:"duration"`
	AlbumID   *primitive.ObjectID `bson:"album_id,omitempty" json:"albumId,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updatedAt"`
}

// SongPreview is the reduced projection served by the featured,
// made-for-you and trending listings.
type SongPreview struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Title    string             `bson:"title" json:"title"`
	Artist   string             `bson:"artist" json:"artist"`
	ImageURL string             `bson:"image_url" json:"imageUrl"`
	AudioURL string             `bson:"audio_url" json:"audioUrl"`
}

// Validate enforces the song field constraints.
func (s *Song) Validate() error {
	var fields []string

	if strings.TrimSpace(s.Title) == "" {
		fields = append(fields, "title")
	}
	if strings.TrimSpace(s.Artist) == "" {
		fields = append(fields, "artist")
	}
	if !imageURLPattern.MatchString(s.ImageURL) {
		fields = append(fields, "imageUrl")
	}
	if !audioURLPattern.MatchString(s.AudioURL) {
		fields = append(fields, "audioUrl")
	}
	if s.Duration < 1 {
		fields = append(fields, "duration")
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}

type CreateSongRequest struct {
	Title    string
	Artist   string
	Duration int
	AlbumID  string
	Audio    *MediaPayload
	Image    *MediaPayload
}

type SongRepository interface {
	Create(ctx context.Context, song *Song) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Song, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Song, error)
	GetAll(ctx context.Context) ([]Song, error)
	SampleRandom(ctx context.Context, n int) ([]SongPreview, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByAlbumID(ctx context.Context, albumID primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountDistinctArtists(ctx context.Context) (int64, error)
}

type SongUsecase interface {
	Create(ctx context.Context, req *CreateSongRequest) (*Song, error)
	GetAll(ctx context.Context) ([]Song, error)
	Sample(ctx context.Context, n int) ([]SongPreview, error)
	Delete(ctx context.Context, id string) error
}
