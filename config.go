package main

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the rule evaluation server.
type Config struct {
	// Address the HTTP server listens on
	Addr string `env:"ADDR" envDefault:":8080"`

	// Directory holding ".rule" preset files; empty disables presets
	RulesDir string `env:"RULES_DIR" envDefault:""`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR is required")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}

	return false
}
