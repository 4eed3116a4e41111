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

func NewUserRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	userRepo := repository.NewUserRepository(db, domain.CollectionUser)

	ctrl := &controller.UserController{
		UserUsecase: usecase.NewUserUsecase(userRepo, timeout),
		Env:         env,
	}

	userGroup := group.Group("/users")
	userGroup.Use(middleware.LoggedIn(env.AccessTokenSecret))
	{
		userGroup.GET("", ctrl.List)
	}
}
