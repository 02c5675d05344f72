package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// BaseURL is the API root; the health probe hits its sibling /health.
	BaseURL string `env:"SEEDER_BASE_URL" envDefault:"http://localhost:3000/api"`
	// FixturePath points at a scenario file. Empty means the embedded default.
	FixturePath string `env:"SEEDER_FIXTURE"`
	Verbose     bool   `env:"SEEDER_VERBOSE"`
}

func ProcessEnvironmentVariables() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return &cfg, nil
}
