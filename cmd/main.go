package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/api/route"
	"github.com/echosphere/echosphere-backend/bootstrap"
	"github.com/echosphere/echosphere-backend/mongo"
)

func main() {
	app := bootstrap.App()
	env := app.Env
	defer app.CloseDBConnection()

	db := app.Mongo.Database(env.DBName)
	mongo.CreateIndexes(db)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	if env.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	route.Setup(env, timeout, db, app.BlobStorage, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		panic(err)
	}
}
