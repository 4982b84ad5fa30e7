package tui

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/almery/breathe/internal/config"
	"github.com/almery/breathe/internal/session"
)

// Screen identifies which screen the TUI is showing.
type Screen int

const (
	// ScreenSession is the breathing session screen (default).
	ScreenSession Screen = iota
	// ScreenSettings is the settings overlay.
	ScreenSettings
)

// Layout size constants.
const (
	// progressWidth is the width of the session progress bar.
	progressWidth = 30
	// minWidth is the minimum terminal width for the full layout.
	minWidth = 40
	// minHeight is the minimum terminal height for the full layout.
	minHeight = 18
)

// model is the bubbletea model for the TUI.
type model struct {
	// Configuration (shared, written only by the settings screen)
	cfg *config.Config

	// Session state
	timer    *session.Timer
	progress progress.Model

	// Eased breathing-circle scale; chases the timer's target scale at
	// a rate multiplied by the configured animation speed.
	scale float64

	// UI state
	screen        Screen
	form          settingsForm
	resumeOnClose bool
	width         int
	height        int

	// Callbacks
	saver  SettingsSaver
	onQuit func()
}

// newModel creates the initial TUI model with a freshly started timer.
func newModel(cfg *config.Config, saver SettingsSaver, onQuit func()) model {
	timer := session.New(cfg.Pattern(), cfg.Session.DurationSeconds)

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = progressWidth

	return model{
		cfg:      cfg,
		timer:    timer,
		progress: prog,
		scale:    timer.VisualScale(),
		screen:   ScreenSession,
		saver:    saver,
		onQuit:   onQuit,
	}
}
