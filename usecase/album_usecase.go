package usecase

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/internal/titlecase"
)

type albumUsecase struct {
	albumRepo domain.AlbumRepository
	songRepo  domain.SongRepository
	uploader  *MediaUploadUsecase
	timeout   time.Duration
}

func NewAlbumUsecase(albumRepo domain.AlbumRepository, songRepo domain.SongRepository, uploader *MediaUploadUsecase, timeout time.Duration) domain.AlbumUsecase {
	return &albumUsecase{
		albumRepo: albumRepo,
		songRepo:  songRepo,
		uploader:  uploader,
		timeout:   timeout,
	}
}

func (uc *albumUsecase) Create(ctx context.Context, req *domain.CreateAlbumRequest) (*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := validateAlbumRequest(req); err != nil {
		return nil, err
	}

	uploads, err := uc.uploader.UploadAll(ctx, []*domain.MediaPayload{req.Image})
	if err != nil {
		return nil, err
	}

	album := &domain.Album{
		Title:       titlecase.Normalize(req.Title),
		Artist:      strings.TrimSpace(req.Artist),
		ImageURL:    uploads[domain.PayloadImage].URL,
		ReleaseYear: req.ReleaseYear,
		Songs:       []primitive.ObjectID{},
	}
	if err := album.Validate(); err != nil {
		return nil, err
	}

	if err := uc.albumRepo.Create(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

func validateAlbumRequest(req *domain.CreateAlbumRequest) error {
	var fields []string

	title := strings.TrimSpace(req.Title)
	if len(title) < 1 || len(title) > 200 {
		fields = append(fields, "title")
	}
	artist := strings.TrimSpace(req.Artist)
	if len(artist) < 1 || len(artist) > 100 {
		fields = append(fields, "artist")
	}
	if req.ReleaseYear < 1900 || req.ReleaseYear > time.Now().Year() {
		fields = append(fields, "releaseYear")
	}
	if req.Image == nil || req.Image.Data == nil {
		fields = append(fields, domain.PayloadImage)
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

func (uc *albumUsecase) GetAll(ctx context.Context) ([]domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.albumRepo.GetAll(ctx)
}

// GetByID resolves the album's relationship list into full song
// records, preserving the list's order.
func (uc *albumUsecase) GetByID(ctx context.Context, id string) (*domain.AlbumDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	album, err := uc.albumRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	songs, err := uc.songRepo.GetByIDs(ctx, album.Songs)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]domain.Song, len(songs))
	for _, s := range songs {
		byID[s.ID] = s
	}
	ordered := make([]domain.Song, 0, len(album.Songs))
	for _, sid := range album.Songs {
		if s, ok := byID[sid]; ok {
			ordered = append(ordered, s)
		}
	}

	return &domain.AlbumDetail{
		ID:          album.ID,
		Title:       album.Title,
		Artist:      album.Artist,
		ImageURL:    album.ImageURL,
		ReleaseYear: album.ReleaseYear,
		Songs:       ordered,
		CreatedAt:   album.CreatedAt,
		UpdatedAt:   album.UpdatedAt,
	}, nil
}

func (uc *albumUsecase) AddSong(ctx context.Context, albumID, songID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	aid, err := primitive.ObjectIDFromHex(albumID)
	if err != nil {
		return domain.ErrNotFound
	}
	sid, err := primitive.ObjectIDFromHex(songID)
	if err != nil {
		return domain.ErrNotFound
	}
	return uc.albumRepo.AddSong(ctx, aid, sid)
}

func (uc *albumUsecase) RemoveSong(ctx context.Context, albumID, songID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	aid, err := primitive.ObjectIDFromHex(albumID)
	if err != nil {
		return domain.ErrNotFound
	}
	sid, err := primitive.ObjectIDFromHex(songID)
	if err != nil {
		return domain.ErrNotFound
	}
	return uc.albumRepo.RemoveSong(ctx, aid, sid)
}

// Delete cascades before it removes the root: every song parented to
// the album is bulk-deleted first, so an interruption midway can leave
// an album with stale song ids but never songs pointing at a missing
// album.
func (uc *albumUsecase) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	if _, err := uc.albumRepo.GetByID(ctx, oid); err != nil {
		return err
	}

	if _, err := uc.songRepo.DeleteByAlbumID(ctx, oid); err != nil {
		return err
	}

	return uc.albumRepo.Delete(ctx, oid)
}
