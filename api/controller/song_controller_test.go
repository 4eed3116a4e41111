package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/domain/mocks"
)

func newSongEngine(ctrl *SongController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/songs", ctrl.List)
	engine.GET("/songs/featured", ctrl.Featured)
	engine.GET("/songs/made-for-you", ctrl.MadeForYou)
	engine.GET("/songs/trending", ctrl.Trending)
	return engine
}

func TestSongController_DiscoveryListings(t *testing.T) {
	preview := []domain.SongPreview{{
		ID:       primitive.NewObjectID(),
		Title:    "Midnight Drive",
		Artist:   "Night Shift",
		ImageURL: "https://cdn.test/cover.jpg",
		AudioURL: "https://cdn.test/track.mp3",
	}}

	cases := []struct {
		path string
		size int
	}{
		{"/songs/featured", 6},
		{"/songs/made-for-you", 4},
		{"/songs/trending", 4},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			songUC := new(mocks.SongUsecase)
			songUC.On("Sample", mock.Anything, c.size).Return(preview, nil)

			ctrl := &SongController{SongUsecase: songUC, Env: testEnv()}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, c.path, nil)
			newSongEngine(ctrl).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "Midnight Drive")
			songUC.AssertExpectations(t)
		})
	}
}

func TestSongController_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		songUC := new(mocks.SongUsecase)
		songUC.On("GetAll", mock.Anything).Return([]domain.Song{{Title: "Midnight Drive"}}, nil)

		ctrl := &SongController{SongUsecase: songUC, Env: testEnv()}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/songs", nil)
		newSongEngine(ctrl).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Midnight Drive")
	})

	t.Run("store failure is generic outside development", func(t *testing.T) {
		songUC := new(mocks.SongUsecase)
		songUC.On("GetAll", mock.Anything).Return(nil, errors.New("connection reset"))

		ctrl := &SongController{SongUsecase: songUC, Env: testEnv()}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/songs", nil)
		newSongEngine(ctrl).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal server error")
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}
