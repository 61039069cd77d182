// Package config loads application configuration from environment variables.
// Every value has a sensible default so the client and the stub backend run
// against each other with no configuration at all.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the client's runtime configuration.
type Config struct {
	// APIBase is the backend base URL including the /api prefix.
	APIBase string
	// HTTPTimeout bounds each backend request. Zero means no client-side
	// timeout at all; the platform default applies, as in the original
	// client which never set one.
	HTTPTimeout time.Duration
}

// Load reads the client configuration from the environment.
func Load() Config {
	return Config{
		APIBase:     getenv("SHUTTLE_API_BASE", "http://localhost:8080/api"),
		HTTPTimeout: parseDur(getenv("SHUTTLE_HTTP_TIMEOUT", "")),
	}
}

// StubConfig holds the stub backend's runtime configuration.
type StubConfig struct {
	Port     string
	SeedDays int
}

// LoadStub reads the stub backend configuration from the environment.
func LoadStub() StubConfig {
	return StubConfig{
		Port:     getenv("APP_PORT", "8080"),
		SeedDays: atoi(getenv("STUB_SEED_DAYS", "30")),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

// parseDur parses a duration, treating empty or invalid values as zero.
func parseDur(s string) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
