package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	SecretKey      string
	DatabaseURL    string
	MigrationsPath string
	RedisAddress   string
	RedisUsername  string
	RedisPassword  string
	MQTTBrokerURL  string
	MQTTClientID   string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	env := Environment{
		Environment:   os.Getenv("APP_ENV"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SecretKey:     os.Getenv("JWT_SECRET"),
		ServerAddress: os.Getenv("SERVER_ADDRESS"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:  os.Getenv("MQTT_CLIENT_ID"),
	}

	if env.MigrationsPath == "" {
		env.MigrationsPath = "migrations"
	}
	if env.MQTTClientID == "" {
		env.MQTTClientID = "minbar-server"
	}

	// Basic validation
	if env.DatabaseURL == "" || env.SecretKey == "" || env.ServerAddress == "" {
		log.Fatal().Msg("Missing required environment variables")
	}

	return env
}
