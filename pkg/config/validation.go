// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/cicd-ai-toolkit/memo/pkg/errors"
)

const (
	// MaxDelay is the maximum allowed value for Workout.Delay
	MaxDelay = time.Minute
	// MaxConcurrency is the maximum allowed value for Batch.Concurrency
	MaxConcurrency = 64
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c == nil {
		return errors.ConfigError("config is nil", nil)
	}

	if err := c.Workout.Validate(); err != nil {
		return errors.ConfigError("workout config", err)
	}
	if err := c.Batch.Validate(); err != nil {
		return errors.ConfigError("batch config", err)
	}
	if err := c.Global.Validate(); err != nil {
		return errors.ConfigError("global config", err)
	}

	return nil
}

// Validate validates the workout configuration
func (w *WorkoutConfig) Validate() error {
	if w.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", w.Delay)
	}
	if w.Delay > MaxDelay {
		return fmt.Errorf("delay must be at most %s, got %s", MaxDelay, w.Delay)
	}
	if w.LowIntensityLimit == 0 {
		return fmt.Errorf("low_intensity_limit must be positive")
	}
	return nil
}

// Validate validates the batch configuration
func (b *BatchConfig) Validate() error {
	if b.Concurrency < 1 || b.Concurrency > MaxConcurrency {
		return fmt.Errorf("concurrency must be between 1 and %d, got %d", MaxConcurrency, b.Concurrency)
	}
	return nil
}

// Validate validates the global configuration
func (g *GlobalConfig) Validate() error {
	level := strings.ToLower(g.LogLevel)
	if !validLogLevels[level] {
		return fmt.Errorf("invalid log_level %q (valid: debug, info, warn, error)", g.LogLevel)
	}
	g.LogLevel = level

	if g.Metrics && g.MetricsNamespace == "" {
		return fmt.Errorf("metrics_namespace is required when metrics are enabled")
	}
	return nil
}
