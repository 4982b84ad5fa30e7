package store

import (
	"os"
	"path/filepath"
)

// stateDirName is the per-app directory under the XDG state home.
const stateDirName = "breathe"

// SettingsFileName is the name of the persisted settings record.
const SettingsFileName = "settings.json"

// DefaultPath returns the default settings file path, honoring
// XDG_STATE_HOME and falling back to ~/.local/state.
func DefaultPath() (string, error) {
	dir, err := stateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// DefaultLogDir returns the default directory for debug logs.
func DefaultLogDir() (string, error) {
	return stateDir()
}

func stateDir() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, stateDirName), nil
}
