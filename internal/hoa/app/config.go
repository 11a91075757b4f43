package app

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer               string        // Token issuer claim (default: hoaboard)
	DatabaseFile         string        // Path to SQLite database file (default: ./hoaboard.db)
	PepperFile           string        // Path to the password pepper file (default: ./pepper)
	NumKeys              int           // Number of signing keys generated at startup (default: 3, max: 10)
	TokenTTL             time.Duration // Access token lifetime (default: 7 days)
	ResetTokenTTL        time.Duration // Password reset link lifetime (default: 1h)
	PublicURL            string        // Base URL used in emailed links (default: http://localhost:8080)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired reset token sweep interval (default: 1h)
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first; variables already set in the environment win.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return Config{
		Issuer:               getEnvOrDefault("HOA_ISSUER", "hoaboard"),
		DatabaseFile:         getEnvOrDefault("HOA_DATABASE_FILE", "hoaboard.db"),
		PepperFile:           getEnvOrDefault("HOA_PEPPER_FILE", "pepper"),
		NumKeys:              getEnvIntOrDefault("HOA_NUM_KEYS", 0), // 0 lets the key manager pick
		TokenTTL:             getEnvDurationOrDefault("HOA_TOKEN_TTL", 7*24*time.Hour),
		ResetTokenTTL:        getEnvDurationOrDefault("HOA_RESET_TOKEN_TTL", time.Hour),
		PublicURL:            getEnvOrDefault("HOA_PUBLIC_URL", "http://localhost:8080"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
