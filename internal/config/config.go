// Package config provides configuration types, defaults, and
// normalization for breathe.
package config

import (
	"math"

	"github.com/almery/breathe/internal/breath"
)

// Session length and animation-speed bounds. The source UI iterations
// disagreed on these, so one set is fixed here: speed in [0.5,2.0],
// sessions up to an hour.
const (
	DefaultSessionSeconds = 600
	MaxSessionSeconds     = 3600

	MinAnimationSpeed     = 0.5
	MaxAnimationSpeed     = 2.0
	DefaultAnimationSpeed = 1.0
)

// Config holds all configuration for breathe.
type Config struct {
	Session     SessionConfig     `yaml:"session" mapstructure:"session"`
	Breathing   BreathingConfig   `yaml:"breathing" mapstructure:"breathing"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// SessionConfig holds the session-level settings.
type SessionConfig struct {
	DurationSeconds int     `yaml:"duration_seconds" mapstructure:"duration_seconds"`
	Pattern         string  `yaml:"pattern" mapstructure:"pattern"`                  // Preset ID, or "custom" for hand-tuned durations
	AnimationSpeed  float64 `yaml:"animation_speed" mapstructure:"animation_speed"` // Breathing-animation speed multiplier
}

// BreathingConfig holds the four phase durations in seconds. These are
// the source of truth for the active pattern; selecting a preset copies
// its durations here.
type BreathingConfig struct {
	Inhale int `yaml:"inhale" mapstructure:"inhale"`
	Hold   int `yaml:"hold" mapstructure:"hold"`
	Exhale int `yaml:"exhale" mapstructure:"exhale"`
	Rest   int `yaml:"rest" mapstructure:"rest"`
}

// PathsConfig holds file paths for the settings record and debug log.
// Empty values resolve to XDG defaults at startup.
type PathsConfig struct {
	Settings string `yaml:"settings" mapstructure:"settings"`
	LogDir   string `yaml:"log_dir" mapstructure:"log_dir"`
}

// LogRotationConfig holds settings for debug log rotation.
// Used for the TUI debug log (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns the configuration used when nothing is stored.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			DurationSeconds: DefaultSessionSeconds,
			Pattern:         breath.DefaultID,
			AnimationSpeed:  DefaultAnimationSpeed,
		},
		Breathing: BreathingConfig{
			Inhale: 4,
			Hold:   4,
			Exhale: 4,
			Rest:   2,
		},
		Paths: PathsConfig{
			Settings: "",
			LogDir:   "",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Normalize forces every user-tunable field into its declared bound and
// resolves the pattern ID against the breathing durations. Non-finite
// animation speeds fall back to the default. Normalize is idempotent:
// applying it to already-normalized config changes nothing.
func (c *Config) Normalize() {
	p := breath.Pattern{
		Inhale: c.Breathing.Inhale,
		Hold:   c.Breathing.Hold,
		Exhale: c.Breathing.Exhale,
		Rest:   c.Breathing.Rest,
	}.Clamped()
	c.Breathing = BreathingConfig{Inhale: p.Inhale, Hold: p.Hold, Exhale: p.Exhale, Rest: p.Rest}

	if math.IsNaN(c.Session.AnimationSpeed) || math.IsInf(c.Session.AnimationSpeed, 0) {
		c.Session.AnimationSpeed = DefaultAnimationSpeed
	}
	if c.Session.AnimationSpeed < MinAnimationSpeed {
		c.Session.AnimationSpeed = MinAnimationSpeed
	}
	if c.Session.AnimationSpeed > MaxAnimationSpeed {
		c.Session.AnimationSpeed = MaxAnimationSpeed
	}

	if c.Session.DurationSeconds < 0 {
		c.Session.DurationSeconds = 0
	}
	if c.Session.DurationSeconds > MaxSessionSeconds {
		c.Session.DurationSeconds = MaxSessionSeconds
	}

	c.Session.Pattern = breath.Match(c.Pattern())
}

// Pattern builds the active breath pattern from the configured durations.
func (c *Config) Pattern() breath.Pattern {
	id := c.Session.Pattern
	name := "Custom"
	if preset, ok := breath.ByID(id); ok {
		name = preset.Name
	}
	return breath.Pattern{
		ID:     id,
		Name:   name,
		Inhale: c.Breathing.Inhale,
		Hold:   c.Breathing.Hold,
		Exhale: c.Breathing.Exhale,
		Rest:   c.Breathing.Rest,
	}
}

// SetPattern copies a preset's durations into the config and records
// its ID as the selected pattern.
func (c *Config) SetPattern(p breath.Pattern) {
	c.Session.Pattern = p.ID
	c.Breathing = BreathingConfig{Inhale: p.Inhale, Hold: p.Hold, Exhale: p.Exhale, Rest: p.Rest}
}
