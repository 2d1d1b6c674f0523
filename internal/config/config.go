// SPDX-License-Identifier: MIT
// Package config loads settings for the kinematrix command from the environment.
package config

import (
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. KINEMATRIX_LOG_LEVEL.
const Prefix = "kinematrix"

// Config holds all command configuration. The sections are embedded so the
// variable names stay flat (KINEMATRIX_LOG_LEVEL, not KINEMATRIX_LOGCONFIG_LOG_LEVEL).
type Config struct {
	LogConfig
	NumericConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// NumericConfig holds the tolerance handed to transform.WithEpsilon.
type NumericConfig struct {
	Epsilon float64 `envconfig:"EPSILON" default:"1e-9"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := ValidateEpsilon(cfg.Epsilon); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// ValidateEpsilon rejects tolerances transform.WithEpsilon would panic on:
// negative, NaN or infinite values.
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("epsilon must be finite and non-negative, got %g", eps)
	}
	return nil
}
