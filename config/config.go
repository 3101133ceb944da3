// Package config loads the runtime configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBase     = "http://localhost:3001"
	defaultHTTPTimeout = 15 * time.Second
)

type Config struct {
	APIBase     string
	StateDir    string
	HTTPTimeout time.Duration
	LogLevel    string
}

// Load reads PARK_* variables, falling back to defaults. A missing .env file
// is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIBase:     envOr("PARK_API_BASE", defaultAPIBase),
		HTTPTimeout: defaultHTTPTimeout,
		LogLevel:    envOr("PARK_LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("PARK_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.HTTPTimeout = d
	}

	cfg.StateDir = os.Getenv("PARK_STATE_DIR")
	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, err
		}
		cfg.StateDir = filepath.Join(base, "safaribook")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
