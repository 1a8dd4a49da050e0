package config

import (
	"os"
	"strconv"
	"time"

	"cropsense/internal/errors"
	"cropsense/internal/suitability"
)

// Config represents the complete application configuration.
type Config struct {
	Server      ServerConfig
	Model       ModelConfig
	Batch       BatchConfig
	Suitability suitability.Thresholds
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Port    string
	GinMode string
}

// ModelConfig holds settings for the external prediction model service.
type ModelConfig struct {
	URL       string
	Timeout   time.Duration
	LabelPath string
}

// BatchConfig holds batch prediction settings.
type BatchConfig struct {
	Concurrency int
	MaxRows     int
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8000"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Model: ModelConfig{
			URL:       os.Getenv("MODEL_URL"),
			Timeout:   getEnvDurationOrDefault("MODEL_TIMEOUT", 10*time.Second),
			LabelPath: getEnvOrDefault("MODEL_LABEL_PATH", "recommended_crop"),
		},
		Batch: BatchConfig{
			Concurrency: getEnvIntOrDefault("BATCH_CONCURRENCY", 4),
			MaxRows:     getEnvIntOrDefault("BATCH_MAX_ROWS", 5000),
		},
		Suitability: suitability.Thresholds{
			Optimal: getEnvFloatOrDefault("SUITABILITY_OPTIMAL", suitability.DefaultThresholds().Optimal),
			Good:    getEnvFloatOrDefault("SUITABILITY_GOOD", suitability.DefaultThresholds().Good),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Model.URL == "" {
		return errors.ConfigInvalid("MODEL_URL is required")
	}
	if config.Model.Timeout <= 0 {
		return errors.ConfigInvalid("MODEL_TIMEOUT must be positive")
	}
	if config.Batch.Concurrency < 1 {
		return errors.ConfigInvalid("BATCH_CONCURRENCY must be at least 1")
	}
	if config.Batch.MaxRows < 1 {
		return errors.ConfigInvalid("BATCH_MAX_ROWS must be at least 1")
	}
	if err := config.Suitability.Validate(); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
