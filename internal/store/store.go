// Package store persists user settings as a single flat JSON record.
//
// The record lives at one well-known path and is the only thing this
// package knows about. Malformed or wrong-shaped records are never
// surfaced as errors: they are moved aside so they are not retried, and
// the caller falls back to defaults.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/almery/breathe/internal/breath"
	"github.com/almery/breathe/internal/config"
)

// Settings is the persisted settings record.
type Settings struct {
	SessionDurationSeconds int       `json:"sessionDurationSeconds"`
	Breathing              Durations `json:"breathing"`
	AnimationSpeed         float64   `json:"animationSpeed"`
	Pattern                string    `json:"pattern,omitempty"`
}

// Durations holds the four breathing phase durations in seconds.
type Durations struct {
	Inhale int `json:"inhale"`
	Hold   int `json:"hold"`
	Exhale int `json:"exhale"`
	Rest   int `json:"rest"`
}

// DefaultSettings returns the record written when nothing was ever saved.
func DefaultSettings() *Settings {
	return FromConfig(config.Default())
}

// FromConfig projects the persistable fields out of a config.
func FromConfig(c *config.Config) *Settings {
	return &Settings{
		SessionDurationSeconds: c.Session.DurationSeconds,
		Breathing: Durations{
			Inhale: c.Breathing.Inhale,
			Hold:   c.Breathing.Hold,
			Exhale: c.Breathing.Exhale,
			Rest:   c.Breathing.Rest,
		},
		AnimationSpeed: c.Session.AnimationSpeed,
		Pattern:        c.Session.Pattern,
	}
}

// ApplyTo copies the stored values onto a config. The config should be
// normalized afterwards; stored values are not trusted to be in bounds.
func (s *Settings) ApplyTo(c *config.Config) {
	c.Session.DurationSeconds = s.SessionDurationSeconds
	c.Session.AnimationSpeed = s.AnimationSpeed
	c.Breathing.Inhale = s.Breathing.Inhale
	c.Breathing.Hold = s.Breathing.Hold
	c.Breathing.Exhale = s.Breathing.Exhale
	c.Breathing.Rest = s.Breathing.Rest
	if s.Pattern != "" {
		c.Session.Pattern = s.Pattern
	} else {
		c.Session.Pattern = breath.Match(c.Pattern())
	}
}

// Store reads and writes the settings record at a fixed path.
type Store struct {
	path string
}

// New creates a Store for the given settings file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the settings file path.
func (s *Store) Path() string { return s.path }

// Load reads the settings record. A missing file returns (nil, nil).
// A record that does not parse as a JSON object of the expected shape
// is moved to a .corrupt backup, so it is never retried, and (nil, nil)
// is returned; the caller should treat nil as "use defaults". Fields
// absent from a well-formed record keep their default values.
func (s *Store) Load() (*Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		s.discardCorrupt(err)
		return nil, nil
	}
	return settings, nil
}

// LoadOrDefault reads the settings record, substituting the default
// record when none is stored or the stored one was discarded.
func (s *Store) LoadOrDefault() (*Settings, error) {
	settings, err := s.Load()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return DefaultSettings(), nil
	}
	return settings, nil
}

// Save writes the record atomically (temp file + rename), creating the
// parent directory if needed.
func (s *Store) Save(settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("rename settings: %w", err)
	}
	return nil
}

// Reset removes the stored record. Removing a record that does not
// exist is not an error.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove settings: %w", err)
	}
	return nil
}

// discardCorrupt moves an unreadable record out of the way so the next
// load starts clean.
func (s *Store) discardCorrupt(parseErr error) {
	backupPath := s.path + ".corrupt"
	if err := os.Rename(s.path, backupPath); err != nil {
		slog.Warn("settings file corrupted, failed to move aside",
			"path", s.path,
			"error", parseErr,
			"backup_error", err)
		_ = os.Remove(s.path)
		return
	}
	slog.Warn("settings file corrupted, moved aside and using defaults",
		"path", s.path,
		"backup", backupPath,
		"error", parseErr)
}
