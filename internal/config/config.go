// Package config provides functionality for loading environment variables and
// the logging setup that precedes the configuration file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fjacquet/csv-ofx/internal/logging"

	"github.com/joho/godotenv"
)

// Environment variables read before the configuration file.
const (
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

var envOnce sync.Once

// ConfigureLogging builds a logger from LOG_LEVEL and LOG_FORMAT, defaulting
// to info level and text output.
func ConfigureLogging() logging.Logger {
	level := GetEnv(EnvLogLevel, "info")
	format := GetEnv(EnvLogFormat, "text")
	return logging.NewLogrusAdapter(strings.ToLower(level), strings.ToLower(format))
}

// LoadEnv loads environment variables from a .env file in the current or
// parent directory. Variables already set in the environment win. It runs at
// most once per process.
func LoadEnv(logger logging.Logger) {
	envOnce.Do(func() {
		loadEnvFile(logger)
	})
}

func loadEnvFile(logger logging.Logger) {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			logger.Debug("No .env file found, using environment variables")
			return
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.WithError(err).Warn("Error loading .env file")
		return
	}
	logger.Debug("Loaded environment variables", logging.Field{Key: logging.FieldConfigFile, Value: envFile})
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}
