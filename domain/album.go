package domain

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var imageURLPattern = regexp.MustCompile(`^https?://.+\.(jpg|jpeg|png|gif)$`)

// Album is a named collection of songs with its own cover art and
// release year. Songs holds the ordered, duplicate-free relationship
// list; every id in it must reference a song whose AlbumID points back
// here.
type Album struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title       string               `bson:"title" json:"title"`
	Artist      string               `bson:"artist" json:"artist"`
	ImageURL    string               `bson:"image_url" json:"imageUrl"`
	ReleaseYear int                  `bson:"release_year" json:"releaseYear"`
	Songs       []primitive.ObjectID `bson:"songs" json:"songs"`
	CreatedAt   time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updatedAt"`
}

// AlbumDetail is an album with its relationship list expanded into
// full song records, for display purposes.
type AlbumDetail struct {
	ID          primitive.ObjectID `json:"_id"`
	Title       string             `json:"title"`
	Artist      string             `json:"artist"`
	ImageURL    string             `json:"imageUrl"`
	ReleaseYear int                `json:"releaseYear"`
	Songs       []Song             `json:"songs"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// Validate enforces the album field constraints. Title and artist are
// expected to be trimmed and title-cased before this runs.
func (a *Album) Validate() error {
	var fields []string

	title := strings.TrimSpace(a.Title)
	if len(title) < 1 || len(title) > 200 {
		fields = append(fields, "title")
	}
	artist := strings.TrimSpace(a.Artist)
	if len(artist) < 1 || len(artist) > 100 {
		fields = append(fields, "artist")
	}
	if !imageURLPattern.MatchString(a.ImageURL) {
		fields = append(fields, "imageUrl")
	}
	if a.ReleaseYear < 1900 || a.ReleaseYear > time.Now().Year() {
		fields = append(fields, "releaseYear")
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}

type CreateAlbumRequest struct {
	Title       string
	Artist      string
	ReleaseYear int
	Image       *MediaPayload
}

type AlbumRepository interface {
	Create(ctx context.Context, album *Album) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Album, error)
	GetAll(ctx context.Context) ([]Album, error)
	AddSong(ctx context.Context, albumID, songID primitive.ObjectID) error
	RemoveSong(ctx context.Context, albumID, songID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type AlbumUsecase interface {
	Create(ctx context.Context, req *CreateAlbumRequest) (*Album, error)
	GetAll(ctx context.Context) ([]Album, error)
	GetByID(ctx context.Context, id string) (*AlbumDetail, error)
	AddSong(ctx context.Context, albumID, songID string) error
	RemoveSong(ctx context.Context, albumID, songID string) error
	Delete(ctx context.Context, id string) error
}
