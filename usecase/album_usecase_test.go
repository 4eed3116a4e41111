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

func validAlbumRequest() *domain.CreateAlbumRequest {
	return &domain.CreateAlbumRequest{
		Title:       "neon skyline",
		Artist:      "Night Shift",
		ReleaseYear: 2021,
		Image:       imagePayload(),
	}
}

func TestAlbumUsecase_Create(t *testing.T) {
	timeout := time.Second * 2

	t.Run("persists with normalized title and empty song list", func(t *testing.T) {
		albumRepo := new(mocks.AlbumRepository)
		songRepo := new(mocks.SongRepository)
		storage := new(mocks.BlobStorage)
		storage.On("Upload", mock.Anything, mock.Anything, domain.MediaKindImage).
			Return(&domain.BlobUpload{PublicID: "pub-image", URL: "https://cdn.test/cover.jpg"}, nil)
		uploader := NewMediaUploadUsecase(storage, timeout)

		albumRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Album")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Album).ID = primitive.NewObjectID()
			}).
			Return(nil)

		uc := NewAlbumUsecase(albumRepo, songRepo, uploader, timeout)

		album, err := uc.Create(context.Background(), validAlbumRequest())

		require.NoError(t, err)
		assert.Equal(t, "Neon Skyline", album.Title)
		assert.Equal(t, "https://cdn.test/cover.jpg", album.ImageURL)
		require.NotNil(t, album.Songs)
		assert.Empty(t, album.Songs)
	})

	t.Run("rejects before uploading when fields are invalid", func(t *testing.T) {
		albumRepo := new(mocks.AlbumRepository)
		songRepo := new(mocks.SongRepository)
		storage := new(mocks.BlobStorage)
		uploader := NewMediaUploadUsecase(storage, timeout)

		uc := NewAlbumUsecase(albumRepo, songRepo, uploader, timeout)

		req := validAlbumRequest()
		req.ReleaseYear = 1850
		req.Image = nil

		album, err := uc.Create(context.Background(), req)

		assert.Nil(t, album)
		assert.True(t, domain.IsValidationError(err))
		assert.ErrorContains(t, err, "releaseYear")
		assert.ErrorContains(t, err, domain.PayloadImage)
		storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
		albumRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("upload failure aborts persistence", func(t *testing.T) {
		albumRepo := new(mocks.AlbumRepository)
		songRepo := new(mocks.SongRepository)
		storage := new(mocks.BlobStorage)
		storage.On("Upload", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("bucket unavailable"))
		uploader := NewMediaUploadUsecase(storage, timeout)

		uc := NewAlbumUsecase(albumRepo, songRepo, uploader, timeout)

		album, err := uc.Create(context.Background(), validAlbumRequest())

		assert.Nil(t, album)
		assert.ErrorIs(t, err, domain.ErrMediaUploadFailed)
		albumRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAlbumUsecase_GetByID(t *testing.T) {
	timeout := time.Second * 2

	t.Run("expands songs in relationship order", func(t *testing.T) {
		albumRepo := new(mocks.AlbumRepository)
		songRepo := new(mocks.SongRepository)

		albumID := primitive.NewObjectID()
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()

		albumRepo.On("GetByID", mock.Anything, albumID).Return(&domain.Album{
			ID:    albumID,
			Title: "Neon Skyline",
			Songs: []primitive.ObjectID{first, second},
		}, nil)
		// Store returns them in the opposite order.
		songRepo.On("GetByIDs", mock.Anything, []primitive.ObjectID{first, second}).Return([]domain.Song{
			{ID: second, Title: "Closer"},
			{ID: first, Title: "Opener"},
		}, nil)

		uc := NewAlbumUsecase(albumRepo, songRepo, nil, timeout)

		detail, err := uc.GetByID(context.Background(), albumID.Hex())

		require.NoError(t, err)
		require.Len(t, detail.Songs, 2)
		assert.Equal(t, "Opener", detail.Songs[0].Title)
		assert.Equal(t, "Closer", detail.Songs[1].Title)
	})

	t.Run("malformed id yields not found", func(t *testing.T) {
		uc := NewAlbumUsecase(new(mocks.AlbumRepository), new(mocks.SongRepository), nil, timeout)

		detail, err := uc.GetByID(context.Background(), "nope")

		assert.Nil(t, detail)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAlbumUsecase_Delete(t *testing.T) {
	timeout := time.Second * 2

	t.Run("cascades to songs before removing the album", func(t *testing.T) {
		albumRepo := new(mocks.AlbumRepository)
		songRepo := new(mocks.SongRepository)

		albumID := primitive.NewObjectID()

		albumRepo.On("GetByID", mock.Anything, albumID).Return(&domain.Album{ID: albumID}, nil)
		songRepo.On("DeleteByAlbumID", mock.Anything, albumID).Return(int64(3), nil)
		albumRepo.On("Delete", mock.Anything, albumID).Return(nil)

		uc := NewAlbumUsecase(albumRepo, songRepo, nil, timeout)

		err := uc.Delete(context.Background(), albumID.Hex())

		require.NoError(t, err)
		songRepo.AssertExpectations(t)
		albumRepo.AssertExpectations(t)
	})

	t.Run("failed cascade leaves the album in place", func(t *testing.T) {
		albumRepo := new(mocks.AlbumRepository)
		songRepo := new(mocks.SongRepository)

		albumID := primitive.NewObjectID()

		albumRepo.On("GetByID", mock.Anything, albumID).Return(&domain.Album{ID: albumID}, nil)
		songRepo.On("DeleteByAlbumID", mock.Anything, albumID).Return(int64(0), errors.New("write conflict"))

		uc := NewAlbumUsecase(albumRepo, songRepo, nil, timeout)

		err := uc.Delete(context.Background(), albumID.Hex())

		assert.Error(t, err)
		albumRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("absent album yields not found", func(t *testing.T) {
		albumRepo := new(mocks.AlbumRepository)
		songRepo := new(mocks.SongRepository)

		albumID := primitive.NewObjectID()
		albumRepo.On("GetByID", mock.Anything, albumID).Return(nil, domain.ErrNotFound)

		uc := NewAlbumUsecase(albumRepo, songRepo, nil, timeout)

		err := uc.Delete(context.Background(), albumID.Hex())

		assert.ErrorIs(t, err, domain.ErrNotFound)
		songRepo.AssertNotCalled(t, "DeleteByAlbumID", mock.Anything, mock.Anything)
	})
}

func TestAlbumUsecase_SongLinks(t *testing.T) {
	timeout := time.Second * 2

	t.Run("add song passes through", func(t *testing.T) {
		albumRepo := new(mocks.AlbumRepository)
		albumID := primitive.NewObjectID()
		songID := primitive.NewObjectID()
		albumRepo.On("AddSong", mock.Anything, albumID, songID).Return(nil)

		uc := NewAlbumUsecase(albumRepo, new(mocks.SongRepository), nil, timeout)

		require.NoError(t, uc.AddSong(context.Background(), albumID.Hex(), songID.Hex()))
		albumRepo.AssertExpectations(t)
	})

	t.Run("malformed ids yield not found", func(t *testing.T) {
		uc := NewAlbumUsecase(new(mocks.AlbumRepository), new(mocks.SongRepository), nil, timeout)

		assert.ErrorIs(t, uc.AddSong(context.Background(), "nope", primitive.NewObjectID().Hex()), domain.ErrNotFound)
		assert.ErrorIs(t, uc.RemoveSong(context.Background(), primitive.NewObjectID().Hex(), "nope"), domain.ErrNotFound)
	})
}
