// config/config.go
package config

import (
	"log"
	"os"
	"time"
)

// Config holds the handful of knobs the console reads from the environment.
type Config struct {
	Port          string
	APIBaseURL    string
	CookieSecure  bool
	SessionMaxAge time.Duration
}

// Load reads the configuration from environment variables, applying defaults
// for anything unset.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:9000/api"
		log.Printf("API_BASE_URL not set, defaulting to %s", baseURL)
	}

	return &Config{
		Port:          port,
		APIBaseURL:    baseURL,
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		SessionMaxAge: 24 * time.Hour,
	}
}
