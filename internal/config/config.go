package config

import (
	"fmt"
	"os"
)

// Config holds runtime configuration. The service recognizes a single
// required variable, DATABASE_URL; APP_ENV only switches logger output.
type Config struct {
	Env         string
	DatabaseURL string

	// Connection pool tuning
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // seconds
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	return &Config{
		Env:             env,
		DatabaseURL:     dbURL,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 300,
	}, nil
}
