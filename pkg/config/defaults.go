// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Workout: DefaultWorkoutConfig(),
		Batch:   DefaultBatchConfig(),
		Global:  DefaultGlobalConfig(),
	}
}

// DefaultWorkoutConfig returns default workout configuration.
func DefaultWorkoutConfig() WorkoutConfig {
	return WorkoutConfig{
		Delay:             2 * time.Second,
		LowIntensityLimit: 25,
		RestNumber:        3,
	}
}

// DefaultBatchConfig returns default batch configuration.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Concurrency: 4,
	}
}

// DefaultGlobalConfig returns default global configuration.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		LogLevel:         "info",
		MetricsNamespace: "memo",
	}
}

// GetDefaultConfigPath returns the global config file path under homeDir,
// or under the user's home directory when homeDir is empty.
func GetDefaultConfigPath(homeDir string) (string, error) {
	if homeDir == "" {
		var err error
		if homeDir, err = os.UserHomeDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile), nil
}

// GetProjectConfigPath returns the project config file path.
func GetProjectConfigPath(projectRoot string) string {
	if projectRoot == "" {
		projectRoot = "."
	}
	return filepath.Join(projectRoot, ProjectConfigFile)
}
