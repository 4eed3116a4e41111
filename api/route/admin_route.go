package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/api/controller"
	"github.com/echosphere/echosphere-backend/api/middleware"
	"github.com/echosphere/echosphere-backend/bootstrap"
	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/mongo"
	"github.com/echosphere/echosphere-backend/repository"
	"github.com/echosphere/echosphere-backend/usecase"
)

func NewAdminRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, uploader *usecase.MediaUploadUsecase, group *gin.RouterGroup) {
	songRepo := repository.NewSongRepository(db, domain.CollectionSong)
	albumRepo := repository.NewAlbumRepository(db, domain.CollectionAlbum)

	ctrl := &controller.AdminController{
		SongUsecase:  usecase.NewSongUsecase(songRepo, albumRepo, uploader, timeout),
		AlbumUsecase: usecase.NewAlbumUsecase(albumRepo, songRepo, uploader, timeout),
		Env:          env,
	}

	adminGroup := group.Group("/admin")
	adminGroup.Use(middleware.LoggedIn(env.AccessTokenSecret), middleware.RequireAdmin(env.AdminEmail))
	{
		adminGroup.GET("/check", ctrl.Check)
		adminGroup.POST("/songs", ctrl.CreateSong)
		adminGroup.DELETE("/songs/:id", ctrl.DeleteSong)
		adminGroup.POST("/albums", ctrl.CreateAlbum)
		adminGroup.DELETE("/albums/:id", ctrl.DeleteAlbum)
	}
}
