package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/domain/mocks"
)

func newSongTestStorage() *mocks.BlobStorage {
	storage := new(mocks.BlobStorage)
	storage.On("Upload", mock.Anything, mock.Anything, domain.MediaKindAudio).
		Return(&domain.BlobUpload{PublicID: "pub-audio", URL: "https://cdn.test/track.mp3"}, nil).Maybe()
	storage.On("Upload", mock.Anything, mock.Anything, domain.MediaKindImage).
		Return(&domain.BlobUpload{PublicID: "pub-image", URL: "https://cdn.test/cover.jpg"}, nil).Maybe()
	return storage
}

func validSongRequest() *domain.CreateSongRequest {
	return &domain.CreateSongRequest{
		Title:    "midnight drive",
		Artist:   "Night Shift",
		Duration: 214,
		Audio:    audioPayload(),
		Image:    imagePayload(),
	}
}

func TestSongUsecase_Create(t *testing.T) {
	timeout := time.Second * 2

	t.Run("persists with normalized title", func(t *testing.T) {
		songRepo := new(mocks.SongRepository)
		albumRepo := new(mocks.AlbumRepository)
		uploader := NewMediaUploadUsecase(newSongTestStorage(), timeout)

		songRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Song")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Song).ID = primitive.NewObjectID()
			}).
			Return(nil)

		uc := NewSongUsecase(songRepo, albumRepo, uploader, timeout)

		song, err := uc.Create(context.Background(), validSongRequest())

		require.NoError(t, err)
		assert.Equal(t, "Midnight Drive", song.Title)
		assert.Equal(t, "Night Shift", song.Artist)
		assert.Equal(t, "https://cdn.test/track.mp3", song.AudioURL)
		assert.Equal(t, "https://cdn.test/cover.jpg", song.ImageURL)
		assert.Nil(t, song.AlbumID)
		albumRepo.AssertNotCalled(t, "AddSong", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("links the parent album after persisting", func(t *testing.T) {
		songRepo := new(mocks.SongRepository)
		albumRepo := new(mocks.AlbumRepository)
		uploader := NewMediaUploadUsecase(newSongTestStorage(), timeout)

		albumID := primitive.NewObjectID()
		songID := primitive.NewObjectID()

		songRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Song")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Song).ID = songID
			}).
			Return(nil)
		albumRepo.On("AddSong", mock.Anything, albumID, songID).Return(nil)

		uc := NewSongUsecase(songRepo, albumRepo, uploader, timeout)

		req := validSongRequest()
		req.AlbumID = albumID.Hex()

		song, err := uc.Create(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, song.AlbumID)
		assert.Equal(t, albumID, *song.AlbumID)
		albumRepo.AssertExpectations(t)
	})

	t.Run("missing album leaves a dangling soft reference", func(t *testing.T) {
		songRepo := new(mocks.SongRepository)
		albumRepo := new(mocks.AlbumRepository)
		uploader := NewMediaUploadUsecase(newSongTestStorage(), timeout)

		songRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Song")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Song).ID = primitive.NewObjectID()
			}).
			Return(nil)
		albumRepo.On("AddSong", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrNotFound)

		uc := NewSongUsecase(songRepo, albumRepo, uploader, timeout)

		req := validSongRequest()
		req.AlbumID = primitive.NewObjectID().Hex()

		song, err := uc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.NotNil(t, song.AlbumID)
	})

	t.Run("rejects before uploading when fields are invalid", func(t *testing.T) {
		songRepo := new(mocks.SongRepository)
		albumRepo := new(mocks.AlbumRepository)
		storage := new(mocks.BlobStorage)
		uploader := NewMediaUploadUsecase(storage, timeout)

		uc := NewSongUsecase(songRepo, albumRepo, uploader, timeout)

		req := validSongRequest()
		req.Title = "   "
		req.Duration = 0
		req.AlbumID = "not-a-hex-id"

		song, err := uc.Create(context.Background(), req)

		assert.Nil(t, song)
		assert.True(t, domain.IsValidationError(err))
		assert.ErrorContains(t, err, "title")
		assert.ErrorContains(t, err, "duration")
		assert.ErrorContains(t, err, "albumId")
		storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
		songRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("upload failure aborts persistence", func(t *testing.T) {
		songRepo := new(mocks.SongRepository)
		albumRepo := new(mocks.AlbumRepository)
		storage := new(mocks.BlobStorage)
		storage.On("Upload", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("bucket unavailable"))
		uploader := NewMediaUploadUsecase(storage, timeout)

		uc := NewSongUsecase(songRepo, albumRepo, uploader, timeout)

		song, err := uc.Create(context.Background(), validSongRequest())

		assert.Nil(t, song)
		assert.ErrorIs(t, err, domain.ErrMediaUploadFailed)
		songRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSongUsecase_Delete(t *testing.T) {
	timeout := time.Second * 2

	t.Run("unlinks from the parent album first", func(t *testing.T) {
		songRepo := new(mocks.SongRepository)
		albumRepo := new(mocks.AlbumRepository)

		albumID := primitive.NewObjectID()
		songID := primitive.NewObjectID()

		songRepo.On("GetByID", mock.Anything, songID).
			Return(&domain.Song{ID: songID, AlbumID: &albumID}, nil)
		albumRepo.On("RemoveSong", mock.Anything, albumID, songID).Return(nil)
		songRepo.On("Delete", mock.Anything, songID).Return(nil)

		uc := NewSongUsecase(songRepo, albumRepo, nil, timeout)

		err := uc.Delete(context.Background(), songID.Hex())

		require.NoError(t, err)
		albumRepo.AssertExpectations(t)
		songRepo.AssertExpectations(t)
	})

	t.Run("failing unlink does not block the deletion", func(t *testing.T) {
		songRepo := new(mocks.SongRepository)
		albumRepo := new(mocks.AlbumRepository)

		albumID := primitive.NewObjectID()
		songID := primitive.NewObjectID()

		songRepo.On("GetByID", mock.Anything, songID).
			Return(&domain.Song{ID: songID, AlbumID: &albumID}, nil)
		albumRepo.On("RemoveSong", mock.Anything, albumID, songID).Return(errors.New("write conflict"))
		songRepo.On("Delete", mock.Anything, songID).Return(nil)

		uc := NewSongUsecase(songRepo, albumRepo, nil, timeout)

		err := uc.Delete(context.Background(), songID.Hex())

		require.NoError(t, err)
		songRepo.AssertCalled(t, "Delete", mock.Anything, songID)
	})

	t.Run("independent song skips the unlink", func(t *testing.T) {
		songRepo := new(mocks.SongRepository)
		albumRepo := new(mocks.AlbumRepository)

		songID := primitive.NewObjectID()

		songRepo.On("GetByID", mock.Anything, songID).
			Return(&domain.Song{ID: songID}, nil)
		songRepo.On("Delete", mock.Anything, songID).Return(nil)

		uc := NewSongUsecase(songRepo, albumRepo, nil, timeout)

		err := uc.Delete(context.Background(), songID.Hex())

		require.NoError(t, err)
		albumRepo.AssertNotCalled(t, "RemoveSong", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("absent song yields not found", func(t *testing.T) {
		songRepo := new(mocks.SongRepository)
		albumRepo := new(mocks.AlbumRepository)

		songID := primitive.NewObjectID()
		songRepo.On("GetByID", mock.Anything, songID).Return(nil, domain.ErrNotFound)

		uc := NewSongUsecase(songRepo, albumRepo, nil, timeout)

		err := uc.Delete(context.Background(), songID.Hex())

		assert.ErrorIs(t, err, domain.ErrNotFound)
		songRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("malformed id yields not found", func(t *testing.T) {
		uc := NewSongUsecase(new(mocks.SongRepository), new(mocks.AlbumRepository), nil, timeout)

		err := uc.Delete(context.Background(), "nope")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
