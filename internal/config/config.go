package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DBPath is the database file, created in the working directory on first
// run. It is not configurable.
const DBPath = "splitwise.db"

type Config struct {
	// Logging
	LogLevel string
	LogFile  string
}

// Load reads .env if present, then the environment.
func Load() *Config {
	_ = godotenv.Load() // ok if missing

	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", "splitwise.log"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if strings.EqualFold(c.LogLevel, level) {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	if c.LogFile == "" {
		errors = append(errors, "log file path cannot be empty")
	} else if c.LogFile == DBPath {
		errors = append(errors, fmt.Sprintf("log file cannot be the database file '%s'", DBPath))
	} else {
		dir := filepath.Dir(c.LogFile)
		if dir != "." && dir != "" {
			if info, err := os.Stat(dir); err != nil {
				errors = append(errors, fmt.Sprintf("log file directory '%s' is not accessible: %v", dir, err))
			} else if !info.IsDir() {
				errors = append(errors, fmt.Sprintf("log file directory '%s' is not a directory", dir))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
