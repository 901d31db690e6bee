// Package config loads runtime settings for the jsonrescue CLI from the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds the runtime settings. All fields have working defaults, so an
// empty environment is valid.
type Config struct {
	// LogLevel is the minimum diagnostic level: debug, info, warn or error.
	LogLevel string `env:"RESCUE_LOG_LEVEL" envDefault:"info"`
	// LogFormat selects console or json output.
	LogFormat string `env:"RESCUE_LOG_FORMAT" envDefault:"console"`
	// LogColors enables ANSI colors for the console format.
	LogColors bool `env:"RESCUE_LOG_COLORS" envDefault:"true"`
	// ErrorWindow is the number of context bytes logged around a parse error.
	ErrorWindow int `env:"RESCUE_ERROR_WINDOW" envDefault:"100"`
	// MetricsAddr, when set (e.g. ":9109"), serves Prometheus metrics on
	// /metrics for the lifetime of the process.
	MetricsAddr string `env:"RESCUE_METRICS_ADDR"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
