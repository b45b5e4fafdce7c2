package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront
type Config struct {
	APIBaseURL    string
	Port          string
	SessionSecret string
	JWTSecret     string
	Env           string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is fine in deployed environments where the
	// variables are injected directly.
	_ = godotenv.Load()

	config := &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		Port:          os.Getenv("PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Env:           os.Getenv("ENV"),
	}

	if config.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	if config.Port == "" {
		config.Port = "8080"
	}
	if config.SessionSecret == "" {
		config.SessionSecret = "dev-session-secret"
	}

	return config, nil
}
