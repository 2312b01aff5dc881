// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for memo.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.memo/config.yaml
// 3. Project Config: ./.memo.yaml
// 4. Environment Variables: MEMO_*
package config

import (
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Workout WorkoutConfig `yaml:"workout"`
	Batch   BatchConfig   `yaml:"batch"`
	Global  GlobalConfig  `yaml:"global"`
}

// WorkoutConfig contains the workout planner settings.
type WorkoutConfig struct {
	Delay             time.Duration `yaml:"delay"`               // cost of the expensive calculation
	LowIntensityLimit uint32        `yaml:"low_intensity_limit"` // below this: pushups and situps
	RestNumber        uint32        `yaml:"rest_number"`         // random number that means a rest day
}

// BatchConfig contains settings for planning many workouts at once.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel         string `yaml:"log_level"` // debug, info, warn, error
	Metrics          bool   `yaml:"metrics"`   // print cache metrics after a command
	MetricsNamespace string `yaml:"metrics_namespace"`
}
