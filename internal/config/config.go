// Package config loads tool settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by every command.
type Config struct {
	StorePath string `env:"MHQ_STORE_PATH" envDefault:"."`
	LogLevel  string `env:"MHQ_LOG_LEVEL" envDefault:"info"`
	Campaign  string `env:"MHQ_CAMPAIGN" envDefault:"default"`
}

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
