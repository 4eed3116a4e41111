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

func NewAuthRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	userRepo := repository.NewUserRepository(db, domain.CollectionUser)

	ctrl := &controller.AuthController{
		UserUsecase: usecase.NewUserUsecase(userRepo, timeout),
		Env:         env,
	}

	authGroup := group.Group("/auth")
	authGroup.Use(middleware.LoggedIn(env.AccessTokenSecret))
	{
		authGroup.POST("/callback", ctrl.Callback)
	}
}
