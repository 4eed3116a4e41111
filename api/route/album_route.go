package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/api/controller"
	"github.com/echosphere/echosphere-backend/bootstrap"
	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/mongo"
	"github.com/echosphere/echosphere-backend/repository"
	"github.com/echosphere/echosphere-backend/usecase"
)

func NewAlbumRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, uploader *usecase.MediaUploadUsecase, group *gin.RouterGroup) {
	albumRepo := repository.NewAlbumRepository(db, domain.CollectionAlbum)
	songRepo := repository.NewSongRepository(db, domain.CollectionSong)

	ctrl := &controller.AlbumController{
		AlbumUsecase: usecase.NewAlbumUsecase(albumRepo, songRepo, uploader, timeout),
		Env:          env,
	}

	albumGroup := group.Group("/albums")
	{
		albumGroup.GET("", ctrl.List)
		albumGroup.GET("/:id", ctrl.GetByID)
	}
}
