package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Breaker holds circuit breaker settings for the outbound provider calls.
type Breaker struct {
	MaxRequests uint32        `envconfig:"BREAKER_MAX_REQUESTS" default:"5"`
	Interval    time.Duration `envconfig:"BREAKER_INTERVAL" default:"1m"`
	Timeout     time.Duration `envconfig:"BREAKER_TIMEOUT" default:"2m"`
}

// AppConfig is built once at startup and passed into collaborators; nothing
// reads the environment after Load returns.
type AppConfig struct {
	// OpenWeatherAPIKey may be empty. The client then calls out with a
	// placeholder key and the resulting upstream failure surfaces naturally;
	// response metadata reports that no real key was used.
	OpenWeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY"`

	Port string `envconfig:"PORT" default:"8080"`

	// HTTPTimeout is the outbound transport default; no per-stage deadline
	// exists beyond it.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	Breaker Breaker
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// HasRealKey reports whether a provider API key was actually configured.
func (c *AppConfig) HasRealKey() bool {
	return c.OpenWeatherAPIKey != ""
}
