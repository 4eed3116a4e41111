package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/internal/titlecase"
)

type songUsecase struct {
	songRepo  domain.SongRepository
	albumRepo domain.AlbumRepository
	uploader  *MediaUploadUsecase
	timeout   time.Duration
}

func NewSongUsecase(songRepo domain.SongRepository, albumRepo domain.AlbumRepository, uploader *MediaUploadUsecase, timeout time.Duration) domain.SongUsecase {
	return &songUsecase{
		songRepo:  songRepo,
		albumRepo: albumRepo,
		uploader:  uploader,
		timeout:   timeout,
	}
}

// Create ingests a song: both payloads are uploaded (concurrently, all
// or nothing), the record is persisted, and only then is it linked to
// its parent album. The album reference is accepted optimistically; a
// reference that resolves to no album leaves an independent song with
// a dangling soft reference rather than failing the create.
func (uc *songUsecase) Create(ctx context.Context, req *domain.CreateSongRequest) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	fillFromAudioTags(req)

	albumID, err := parseSongRequest(req)
	if err != nil {
		return nil, err
	}

	uploads, err := uc.uploader.UploadAll(ctx, []*domain.MediaPayload{req.Audio, req.Image})
	if err != nil {
		return nil, err
	}

	song := &domain.Song{
		Title:    titlecase.Normalize(req.Title),
		Artist:   strings.TrimSpace(req.Artist),
		AudioURL: uploads[domain.PayloadAudio].URL,
		ImageURL: uploads[domain.PayloadImage].URL,
		Duration: req.Duration,
		AlbumID:  albumID,
	}
	if err := song.Validate(); err != nil {
		return nil, err
	}

	if err := uc.songRepo.Create(ctx, song); err != nil {
		return nil, err
	}

	if albumID != nil {
		if err := uc.albumRepo.AddSong(ctx, *albumID, song.ID); err != nil {
			// The song exists either way; a missing album is the
			// documented soft-reference gap, anything else gets logged
			// for the operator.
			if errors.Is(err, domain.ErrNotFound) {
				log.Warn().
					Str("song_id", song.ID.Hex()).
					Str("album_id", albumID.Hex()).
					Msg("song references a missing album")
			} else {
				log.Error().Err(err).
					Str("song_id", song.ID.Hex()).
					Str("album_id", albumID.Hex()).
					Msg("failed to link song to album")
			}
		}
	}

	return song, nil
}

// parseSongRequest enforces every precondition that can be checked
// before a single byte goes over the network.
func parseSongRequest(req *domain.CreateSongRequest) (*primitive.ObjectID, error) {
	var fields []string
	if strings.TrimSpace(req.Title) == "" {
		fields = append(fields, "title")
	}
	if strings.TrimSpace(req.Artist) == "" {
		fields = append(fields, "artist")
	}
	if req.Duration < 1 {
		fields = append(fields, "duration")
	}
	if req.Audio == nil || req.Audio.Data == nil {
		fields = append(fields, domain.PayloadAudio)
	}
	if req.Image == nil || req.Image.Data == nil {
		fields = append(fields, domain.PayloadImage)
	}

	var albumID *primitive.ObjectID
	if req.AlbumID != "" {
		oid, err := primitive.ObjectIDFromHex(req.AlbumID)
		if err != nil {
			fields = append(fields, "albumId")
		} else {
			albumID = &oid
		}
	}

	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}
	return albumID, nil
}

// fillFromAudioTags backfills a missing title or artist from the tags
// embedded in the uploaded audio, when it carries any.
func fillFromAudioTags(req *domain.CreateSongRequest) {
	if req.Title != "" && req.Artist != "" {
		return
	}
	if req.Audio == nil || req.Audio.Data == nil {
		return
	}

	meta, err := tag.ReadFrom(req.Audio.Data)
	if _, serr := req.Audio.Data.Seek(0, io.SeekStart); serr != nil {
		return
	}
	if err != nil {
		return
	}
	if req.Title == "" {
		req.Title = meta.Title()
	}
	if req.Artist == "" {
		req.Artist = meta.Artist()
	}
}

// Delete unlinks the song from its parent album before removing the
// record. A failing unlink is logged and the deletion still proceeds:
// removing the requested entity wins over perfecting the parent's
// relationship list.
func (uc *songUsecase) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	song, err := uc.songRepo.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	if song.AlbumID != nil {
		if err := uc.albumRepo.RemoveSong(ctx, *song.AlbumID, song.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			log.Error().Err(err).
				Str("song_id", song.ID.Hex()).
				Str("album_id", song.AlbumID.Hex()).
				Msg("failed to unlink song from album, deleting song anyway")
		}
	}

	return uc.songRepo.Delete(ctx, oid)
}

func (uc *songUsecase) GetAll(ctx context.Context) ([]domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.songRepo.GetAll(ctx)
}

func (uc *songUsecase) Sample(ctx context.Context, n int) ([]domain.SongPreview, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.songRepo.SampleRandom(ctx, n)
}
