// Package config loads server settings from the environment and the
// terminal client's theme file.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server configuration, populated from environment
// variables after an optional .env file is loaded.
type Config struct {
	// Addr is the listen address for the HTTP server
	Addr string `env:"TABLERO_ADDR" envDefault:":8080"`

	// DBPath is the SQLite database file; ':memory:' works for throwaway runs
	DBPath string `env:"TABLERO_DB" envDefault:"tablero.db"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"TABLERO_LOG_LEVEL" envDefault:"info"`

	// LogFile receives logs instead of stderr when set
	LogFile string `env:"TABLERO_LOG_FILE"`

	// CORSOrigins lists the origins allowed to call the API
	CORSOrigins []string `env:"TABLERO_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Release switches gin out of debug mode
	Release bool `env:"TABLERO_RELEASE" envDefault:"false"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
