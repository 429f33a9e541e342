// Package config handles simulator configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/globe/pkg/units"
)

// Config holds all simulator settings.
type Config struct {
	System     SystemConfig     `yaml:"system"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SystemConfig points at the orbital system definition.
type SystemConfig struct {
	// File is the path to the YAML system definition.
	File string `yaml:"file"`
}

// SimulationConfig holds time-stepping settings.
type SimulationConfig struct {
	// Step is the simulated time between two reported states.
	Step units.Period `yaml:"step"`
	// Duration is the total simulated time span.
	Duration units.Period `yaml:"duration"`
	// TrailSegments is the number of segments an orbit trail is sampled
	// into for debug output.
	TrailSegments int `yaml:"trail_segments"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		System: SystemConfig{
			File: "system.yaml",
		},
		Simulation: SimulationConfig{
			Step:          units.Period(time.Hour),
			Duration:      units.Period(24 * time.Hour),
			TrailSegments: 64,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
