// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	memoerrors "github.com/cicd-ai-toolkit/memo/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "MEMO"
	// EnvLogLevel is a shorthand for MEMO_GLOBAL__LOG_LEVEL.
	EnvLogLevel = "MEMO_LOG"
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = ".memo.yaml"
	// GlobalConfigDir is the global config directory name.
	GlobalConfigDir = ".memo"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Loader loads configuration from files and environment.
type Loader struct {
	projectRoot string
	homeDir     string
	skipGlobal  bool
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithProjectRoot sets the project root directory.
func (l *Loader) WithProjectRoot(root string) *Loader {
	l.projectRoot = root
	return l
}

// WithHomeDir overrides the directory searched for the global config.
func (l *Loader) WithHomeDir(dir string) *Loader {
	l.homeDir = dir
	return l
}

// SkipGlobal skips loading global config.
func (l *Loader) SkipGlobal() *Loader {
	l.skipGlobal = true
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Global Config ($HOME/.memo/config.yaml)
// 3. Project Config (./.memo.yaml)
// 4. Environment Variables (MEMO_*)
//
// Missing files are skipped; unreadable or malformed files are errors.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if !l.skipGlobal {
		if path, err := GetDefaultConfigPath(l.homeDir); err == nil {
			if err := mergeFile(cfg, path, true); err != nil {
				return nil, wrap(err)
			}
		}
	}

	if err := mergeFile(cfg, GetProjectConfigPath(l.projectRoot), true); err != nil {
		return nil, wrap(err)
	}

	return l.finish(cfg)
}

// LoadFromPath loads defaults, then the file at path, then the environment.
// Unlike Load, the file must exist.
func (l *Loader) LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := mergeFile(cfg, path, false); err != nil {
		return nil, wrap(err)
	}

	return l.finish(cfg)
}

func (l *Loader) finish(cfg *Config) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile decodes the YAML file at path over cfg. Keys absent from the
// file keep their current value.
func mergeFile(cfg *Config, path string, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &ConfigError{Path: path, Err: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Format: MEMO_SECTION__KEY=value
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MEMO_WORKOUT__DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &ConfigError{Field: "workout.delay", Err: err}
		}
		cfg.Workout.Delay = d
	}
	if v := os.Getenv("MEMO_WORKOUT__LOW_INTENSITY_LIMIT"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return &ConfigError{Field: "workout.low_intensity_limit", Err: err}
		}
		cfg.Workout.LowIntensityLimit = uint32(n)
	}
	if v := os.Getenv("MEMO_WORKOUT__REST_NUMBER"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return &ConfigError{Field: "workout.rest_number", Err: err}
		}
		cfg.Workout.RestNumber = uint32(n)
	}
	if v := os.Getenv("MEMO_BATCH__CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Field: "batch.concurrency", Err: err}
		}
		cfg.Batch.Concurrency = n
	}

	// MEMO_GLOBAL__LOG_LEVEL wins over the MEMO_LOG shorthand.
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Global.LogLevel = v
	}
	if v := os.Getenv("MEMO_GLOBAL__LOG_LEVEL"); v != "" {
		cfg.Global.LogLevel = v
	}
	if v := os.Getenv("MEMO_GLOBAL__METRICS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ConfigError{Field: "global.metrics", Err: err}
		}
		cfg.Global.Metrics = b
	}

	return nil
}

func wrap(err error) error {
	return memoerrors.ConfigError("failed to load config", err)
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return "config error in " + e.Path + ": " + e.Err.Error()
	}
	if e.Field != "" {
		return "config error for " + e.Field + ": " + e.Err.Error()
	}
	return "config error: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GetEnvConfig returns all environment variables that start with MEMO_.
func GetEnvConfig() map[string]string {
	result := make(map[string]string)

	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix+"_") {
			kv := strings.SplitN(env, "=", 2)
			if len(kv) == 2 {
				result[kv[0]] = kv[1]
			}
		}
	}

	return result
}
