// Package config loads runtime settings from .env files and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the dashboard configuration.
type Config struct {
	Port        int           `envconfig:"CLOUDBILL_PORT" default:"8080"`
	DatasetPath string        `envconfig:"CLOUDBILL_DATASET"`
	PreviewRows int           `envconfig:"CLOUDBILL_PREVIEW_ROWS" default:"200"`
	SessionTTL  time.Duration `envconfig:"CLOUDBILL_SESSION_TTL" default:"30m"`

	Database Database `ignored:"true"`
	Log      Log      `ignored:"true"`
	Otel     Otel     `ignored:"true"`
}

// Database selects a libsql table as the dataset source when URL is set.
type Database struct {
	URL       string `envconfig:"CLOUDBILL_DATABASE_URL"`
	AuthToken string `envconfig:"CLOUDBILL_AUTH_TOKEN"`
}

type Log struct {
	Level  string `envconfig:"CLOUDBILL_LOG_LEVEL" default:"info"`
	Format string `envconfig:"CLOUDBILL_LOG_FORMAT" default:"text"`
}

// Otel configures the OTLP metrics exporter.
type Otel struct {
	Enabled  bool   `envconfig:"CLOUDBILL_OTEL_ENABLED" default:"false"`
	Endpoint string `envconfig:"CLOUDBILL_OTEL_ENDPOINT"`
	Insecure bool   `envconfig:"CLOUDBILL_OTEL_INSECURE" default:"false"`
}

// Load reads the first .env found in the search path, then the environment.
// Variables already set in the environment win over .env values.
func Load() (*Config, error) {
	for _, path := range envPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
			break
		}
	}

	var cfg Config
	for _, spec := range []any{&cfg, &cfg.Database, &cfg.Log, &cfg.Otel} {
		if err := envconfig.Process("", spec); err != nil {
			return nil, fmt.Errorf("processing environment: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot express.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("CLOUDBILL_PORT out of range: %d", c.Port)
	}
	if c.PreviewRows <= 0 {
		return fmt.Errorf("CLOUDBILL_PREVIEW_ROWS must be positive, got %d", c.PreviewRows)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("CLOUDBILL_SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.Otel.Enabled && c.Otel.Endpoint == "" {
		return fmt.Errorf("CLOUDBILL_OTEL_ENDPOINT is required when CLOUDBILL_OTEL_ENABLED is set")
	}
	return nil
}

// envPaths lists candidate .env files, most specific first.
func envPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "cloudbill", ".env"))
	}
	return paths
}
