// Package tui provides the terminal UI for breathe using bubbletea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/almery/breathe/internal/config"
)

// SettingsSaver persists settings when the settings screen closes with
// a save. Save errors are logged, never shown as dialogs.
type SettingsSaver interface {
	Save(cfg *config.Config) error
}

// TUI is the interactive breathing-session screen.
type TUI struct {
	cfg    *config.Config
	saver  SettingsSaver
	onQuit func()
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a new TUI for the given configuration and options.
func New(cfg *config.Config, opts ...Option) *TUI {
	t := &TUI{cfg: cfg}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithSaver sets the collaborator that persists settings on save.
func WithSaver(s SettingsSaver) Option {
	return func(t *TUI) {
		t.saver = s
	}
}

// WithOnQuit sets the callback invoked when the user quits.
func WithOnQuit(fn func()) Option {
	return func(t *TUI) {
		t.onQuit = fn
	}
}

// Run starts the TUI and blocks until it exits.
func (t *TUI) Run() error {
	m := newModel(t.cfg, t.saver, t.onQuit)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
