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

func NewStatsRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	songRepo := repository.NewSongRepository(db, domain.CollectionSong)
	albumRepo := repository.NewAlbumRepository(db, domain.CollectionAlbum)
	userRepo := repository.NewUserRepository(db, domain.CollectionUser)

	ctrl := &controller.StatsController{
		StatsUsecase: usecase.NewStatsUsecase(songRepo, albumRepo, userRepo, timeout),
		Env:          env,
	}

	statsGroup := group.Group("/stats")
	statsGroup.Use(middleware.LoggedIn(env.AccessTokenSecret), middleware.RequireAdmin(env.AdminEmail))
	{
		statsGroup.GET("", ctrl.Get)
	}
}
