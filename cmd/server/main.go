package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sakinah-tech/minbar/internal/db"
	"github.com/sakinah-tech/minbar/internal/redis"
	"github.com/sakinah-tech/minbar/internal/reminder"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	env := LoadEnvironment()

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	store := db.NewStore(nil)

	// reminder checker publishes over MQTT when a broker is configured
	if env.MQTTBrokerURL != "" {
		pub, err := reminder.NewMQTTPublisher(env.MQTTBrokerURL, env.MQTTClientID)
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt connect")
		}
		defer pub.Close()

		checker := reminder.NewChecker(store, pub)
		go checker.Start(context.Background())
	} else {
		log.Warn().Msg("MQTT_BROKER_URL not set, reminders disabled")
	}

	r := gin.Default()
	RegisterRoutes(r, env, store)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
