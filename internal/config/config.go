package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvRedisURL    = "REDIS_URL"
	EnvPort        = "PORT"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	Port        string
}

// Load собирает конфигурацию один раз при старте процесса
func Load() (*Config, error) {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg := &Config{
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		RedisURL:    os.Getenv(EnvRedisURL),
		Port:        os.Getenv(EnvPort),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
