// Package config centralises configuration parsing for the activities signup service.
package config

import (
	"os"
	"time"
)

// Config captures runtime configuration values for the service.
type Config struct {
	HTTPAddress     string
	AllowedOrigin   string        // Origin permitted by the CORS middleware (the static frontend).
	ShutdownTimeout time.Duration // Grace period for in-flight requests during shutdown.
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
