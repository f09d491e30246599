package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	APIToken    string // bearer token for administrator-scoped calls
	Environment string
	HTTPTimeout time.Duration
}

func Load() (*Config, error) {
	// Load .env when present; plain environment variables otherwise.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		APIToken:    os.Getenv("API_TOKEN"),
		Environment: os.Getenv("ENV"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.HTTPTimeout = 10 * time.Second
	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required but not set")
	}

	return cfg, nil
}

// HasAdminToken reports whether administrator-scoped calls can be made.
// The token lifecycle itself is owned by the authentication collaborator.
func (c *Config) HasAdminToken() bool {
	return c.APIToken != ""
}
