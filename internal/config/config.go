// Package config loads runtime settings from a .env file and the
// environment.
package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds settings shared by the CLI and the API server.
type Config struct {
	Addr      string    // API listen address
	OutputDir string    // directory for generated CSVs; empty = next to the input
	LogLevel  log.Level
}

// Load reads .env when present, then the environment. Missing values fall
// back to defaults; a bad LOG_LEVEL is ignored rather than fatal.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:     ":8080",
		LogLevel: log.InfoLevel,
	}
	if v := os.Getenv("STATEMENTS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("STATEMENTS_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if lvl, err := log.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	return cfg
}
