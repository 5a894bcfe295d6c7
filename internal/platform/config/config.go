package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	SourceCSV      = "csv"
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port            string
	DatasetSource   string
	DatasetPath     string
	DatasetSheet    string
	PostgresDSN     string
	DatasetTable    string
	ShutdownTimeout time.Duration
}

// Load reads environment variables into a Config with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		DatasetPath:  getEnv("DATASET_PATH", "data/fuel_consumption.csv"),
		DatasetSheet: strings.TrimSpace(os.Getenv("DATASET_SHEET")),
		PostgresDSN:  strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		DatasetTable: getEnv("DATASET_TABLE", "vehicles"),
	}

	cfg.DatasetSource = strings.ToLower(strings.TrimSpace(os.Getenv("DATASET_SOURCE")))
	if cfg.DatasetSource == "" {
		cfg.DatasetSource = inferSource(cfg.DatasetPath)
	}

	timeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures the selected source has what it needs.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	switch c.DatasetSource {
	case SourceCSV, SourceXLSX:
		if c.DatasetPath == "" {
			return errors.New("DATASET_PATH is required for file sources")
		}
	case SourcePostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when DATASET_SOURCE=postgres")
		}
		if c.DatasetTable == "" {
			return errors.New("DATASET_TABLE is required when DATASET_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.DatasetSource)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func inferSource(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return SourceXLSX
	default:
		return SourceCSV
	}
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func parseDurationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(val)
}
