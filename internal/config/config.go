package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"propman"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Data struct {
		// Directory holding one JSON file per collection.
		Dir string `envconfig:"DATA_DIR" default:"./data"`
	}

	Storage struct {
		// Directory for uploaded documents, served under BaseURL.
		Dir     string `envconfig:"STORAGE_DIR" default:"./storage"`
		BaseURL string `envconfig:"STORAGE_BASE_URL" default:"http://localhost:8080/files"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
