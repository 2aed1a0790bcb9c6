// Package config handles simulator configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/domesim/internal/engine"
	"github.com/Faultbox/domesim/internal/engine/alignment"
	"github.com/Faultbox/domesim/internal/engine/orbit"
	"github.com/Faultbox/domesim/internal/scan"
	"github.com/Faultbox/domesim/internal/world"
)

// Config holds all simulator settings.
type Config struct {
	World     world.Constants      `yaml:"world"`
	Time      orbit.Domain         `yaml:"time"`
	Alignment alignment.Thresholds `yaml:"alignment"`
	Scan      scan.Options         `yaml:"scan"`
	Logging   LoggingConfig        `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the reference dome and calendar.
func Default() *Config {
	return &Config{
		World:     world.Default(),
		Time:      orbit.DefaultDomain(),
		Alignment: alignment.DefaultThresholds(),
		Scan:      scan.DefaultOptions(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Engine returns the engine portion of the config.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		World:      c.World,
		Domain:     c.Time,
		Thresholds: c.Alignment,
	}
}

// Validate checks every section the engine depends on.
func (c *Config) Validate() error {
	if err := c.World.Validate(); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	if err := c.Time.Validate(); err != nil {
		return fmt.Errorf("time: %w", err)
	}
	if err := c.Alignment.Validate(); err != nil {
		return fmt.Errorf("alignment: %w", err)
	}
	if c.Scan.HourStep <= 0 {
		return fmt.Errorf("scan: hour step must be positive, got %v", c.Scan.HourStep)
	}
	if c.Scan.MoonStep < 0 {
		return fmt.Errorf("scan: moon step must not be negative, got %v", c.Scan.MoonStep)
	}
	if c.Scan.CacheSize <= 0 {
		return fmt.Errorf("scan: cache size must be positive, got %d", c.Scan.CacheSize)
	}
	return nil
}
