package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider exposes the configuration values the rest of the application reads.
type Provider interface {
	GetProfilesAPIURL() string
	GetAppAddr() string
	GetSessionSecret() string
	GetViewTTL() time.Duration
	GetMutationsPerMinute() float64
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	ProfilesAPIURL     string        `env:"PROFILES_API_URL" envDefault:"http://localhost:8080"`
	AppAddr            string        `env:"APP_ADDR" envDefault:":8081"`
	SessionSecret      string        `env:"SESSION_SECRET,notEmpty"`
	ViewTTL            time.Duration `env:"VIEW_TTL" envDefault:"30m"`
	MutationsPerMinute float64       `env:"MUTATIONS_PER_MINUTE" envDefault:"60"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"debug"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet at this point.
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// New loads the configuration and exits the process when it is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func (c *Config) GetProfilesAPIURL() string      { return c.ProfilesAPIURL }
func (c *Config) GetAppAddr() string             { return c.AppAddr }
func (c *Config) GetSessionSecret() string       { return c.SessionSecret }
func (c *Config) GetViewTTL() time.Duration      { return c.ViewTTL }
func (c *Config) GetMutationsPerMinute() float64 { return c.MutationsPerMinute }
func (c *Config) GetLogFormat() string           { return c.LogFormat }
func (c *Config) GetLogLevel() string            { return c.LogLevel }
