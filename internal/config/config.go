package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Summary settings
	SummaryWordLimit int `json:"summary_word_limit"`

	// Heartbeat settings
	HeartbeatSchedule string `json:"heartbeat_schedule"` // cron expression, empty disables
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		Host:              getEnvOrDefault("HOST", "0.0.0.0"),
		SummaryWordLimit:  getEnvOrDefaultInt("SUMMARY_WORD_LIMIT", 10),
		HeartbeatSchedule: os.Getenv("HEARTBEAT_SCHEDULE"),
	}

	if _, ok := os.LookupEnv("HEARTBEAT_SCHEDULE"); !ok {
		config.HeartbeatSchedule = "@every 1m"
	}

	return config, config.validate()
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.Port == "" {
		return &ConfigError{Field: "PORT", Message: "port is required"}
	}
	if c.SummaryWordLimit <= 0 {
		return &ConfigError{Field: "SUMMARY_WORD_LIMIT", Message: "word limit must be positive"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
