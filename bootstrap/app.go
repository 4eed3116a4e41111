package bootstrap

import (
	"github.com/rs/zerolog/log"

	"github.com/echosphere/echosphere-backend/blobstore"
	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/mongo"
)

type Application struct {
	Env         *Env
	Mongo       mongo.Client
	BlobStorage domain.BlobStorage
}

func App() Application {
	app := Application{}
	app.Env = NewEnv()
	SetupLogger(app.Env.AppEnv)
	app.Mongo = NewMongoDatabase(app.Env)

	storage, err := blobstore.NewCloudinaryStorage(app.Env.CloudinaryURL, app.Env.CloudinaryFolder)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize blob storage")
	}
	app.BlobStorage = storage

	return app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
