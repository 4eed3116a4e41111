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

func NewSongRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, uploader *usecase.MediaUploadUsecase, group *gin.RouterGroup) {
	songRepo := repository.NewSongRepository(db, domain.CollectionSong)
	albumRepo := repository.NewAlbumRepository(db, domain.CollectionAlbum)

	ctrl := &controller.SongController{
		SongUsecase: usecase.NewSongUsecase(songRepo, albumRepo, uploader, timeout),
		Env:         env,
	}

	songGroup := group.Group("/songs")
	{
		songGroup.GET("", middleware.LoggedIn(env.AccessTokenSecret), middleware.RequireAdmin(env.AdminEmail), ctrl.List)
		songGroup.GET("/featured", ctrl.Featured)
		songGroup.GET("/made-for-you", ctrl.MadeForYou)
		songGroup.GET("/trending", ctrl.Trending)
	}
}
