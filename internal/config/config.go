// Package config loads runtime settings from EMPIRE_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by every empire command
type Config struct {
	DataDir   string `env:"EMPIRE_DATA_DIR"`                       // balance table overrides; empty uses defaults
	StatePath string `env:"EMPIRE_STATE" envDefault:"empire.yaml"` // empire snapshot
	DBPath    string `env:"EMPIRE_DB_PATH"`                        // sqlite store; empty disables persistence
	Seed      int64  `env:"EMPIRE_SEED"`                           // 0 draws a random seed
	LogLevel  string `env:"EMPIRE_LOG_LEVEL" envDefault:"info"`    // debug, info, warn, error
	LogFormat string `env:"EMPIRE_LOG_FORMAT" envDefault:"text"`   // text or json

	TickInterval      time.Duration `env:"EMPIRE_TICK_INTERVAL" envDefault:"1s"`
	HoursPerTick      float64       `env:"EMPIRE_HOURS_PER_TICK" envDefault:"1"`
	RaidChance        float64       `env:"EMPIRE_RAID_CHANCE" envDefault:"0.08"`  // per elapsed hour
	EventChance       float64       `env:"EMPIRE_EVENT_CHANCE" envDefault:"0.05"` // per elapsed hour
	DiscoveryChance   float64       `env:"EMPIRE_DISCOVERY_CHANCE" envDefault:"0.02"`
	ResearchThreshold int           `env:"EMPIRE_RESEARCH_THRESHOLD" envDefault:"5000"`
	Territories       int           `env:"EMPIRE_TERRITORIES" envDefault:"36"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	for name, p := range map[string]float64{
		"raid chance":      c.RaidChance,
		"event chance":     c.EventChance,
		"discovery chance": c.DiscoveryChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s %v out of [0, 1]", name, p)
		}
	}
	if c.HoursPerTick <= 0 {
		return fmt.Errorf("hours per tick must be positive, got %v", c.HoursPerTick)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	if c.ResearchThreshold < 0 {
		return fmt.Errorf("research threshold must not be negative, got %d", c.ResearchThreshold)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level for LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
