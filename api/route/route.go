package route

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/bootstrap"
	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/mongo"
	"github.com/echosphere/echosphere-backend/usecase"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, storage domain.BlobStorage, engine *gin.Engine) {
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	uploader := usecase.NewMediaUploadUsecase(storage, timeout)

	api := engine.Group("/api")
	NewAlbumRouter(env, timeout, db, uploader, api)
	NewSongRouter(env, timeout, db, uploader, api)
	NewAdminRouter(env, timeout, db, uploader, api)
	NewStatsRouter(env, timeout, db, api)
	NewUserRouter(env, timeout, db, api)
	NewAuthRouter(env, timeout, db, api)
}
