package config

import (
	"os"
	"strconv"

	"rushd/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	AI       AIConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AIConfig holds settings for the optional external AI recommender.
// An empty endpoint means the deterministic engine is the only source.
type AIConfig struct {
	Endpoint  string
	APIKey    string
	TimeoutMs int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	db, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}

	config := &Config{
		Database: *db,
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		AI: AIConfig{
			Endpoint:  getEnvOrDefault("AI_RECOMMENDER_URL", ""),
			APIKey:    getEnvOrDefault("AI_RECOMMENDER_KEY", ""),
			TimeoutMs: getEnvIntOrDefault("AI_RECOMMENDER_TIMEOUT_MS", 5000),
		},
	}
	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}
	return &DatabaseConfig{
		URL:     url,
		SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
	}, nil
}

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
