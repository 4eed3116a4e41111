package bootstrap

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Env struct {
	AppEnv            string `mapstructure:"APP_ENV"`
	ServerAddress     string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout    int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBUri             string `mapstructure:"DB_URI"`
	DBName            string `mapstructure:"DB_NAME"`
	AdminEmail        string `mapstructure:"ADMIN_EMAIL"`
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
	CloudinaryURL     string `mapstructure:"CLOUDINARY_URL"`
	CloudinaryFolder  string `mapstructure:"CLOUDINARY_FOLDER"`
}

var envKeys = []string{
	"APP_ENV",
	"SERVER_ADDRESS",
	"CONTEXT_TIMEOUT",
	"DB_URI",
	"DB_NAME",
	"ADMIN_EMAIL",
	"ACCESS_TOKEN_SECRET",
	"CLOUDINARY_URL",
	"CLOUDINARY_FOLDER",
}

func NewEnv() *Env {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("CONTEXT_TIMEOUT", 10)
	viper.SetDefault("CLOUDINARY_FOLDER", "echosphere")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Msg("no .env file found, relying on the environment")
	}
	for _, key := range envKeys {
		if err := viper.BindEnv(key); err != nil {
			log.Fatal().Err(err).Str("key", key).Msg("failed to bind environment variable")
		}
	}

	env := Env{}
	if err := viper.Unmarshal(&env); err != nil {
		log.Fatal().Err(err).Msg("failed to load environment")
	}

	if env.AppEnv == "development" {
		log.Info().Msg("running in development mode")
	}
	return &env
}
