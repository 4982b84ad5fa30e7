package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/almery/breathe/internal/session"
)

const (
	// tickInterval is the fixed cadence that drives the timer.
	tickInterval = session.TickInterval
	// easingPerTick is the base fraction of the remaining scale distance
	// covered each tick, before the animation-speed multiplier.
	easingPerTick = 0.12
)

// tickMsg signals one tick of the session timer.
type tickMsg time.Time

// doTick creates a command that waits for the tick interval and sends a tickMsg.
func doTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model. It schedules the first tick.
func (m model) Init() tea.Cmd {
	return doTick()
}

// Update implements tea.Model. It handles all message types and updates the model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.handleTick()
		return m, doTick()

	default:
		return m, nil
	}
}

// handleTick advances the timer by one tick and eases the breathing
// circle toward the current phase's target scale.
func (m *model) handleTick() {
	wasCompleted := m.timer.Completed()

	m.timer.Advance(tickInterval)

	if m.timer.Completed() && !wasCompleted {
		slog.Info("session complete",
			"pattern", m.cfg.Session.Pattern,
			"duration_seconds", m.cfg.Session.DurationSeconds)
	}

	if m.timer.Running() {
		target := m.timer.VisualScale()
		rate := easingPerTick * m.cfg.Session.AnimationSpeed
		m.scale += (target - m.scale) * rate
	}
}

// handleKey processes keyboard input for the active screen.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == ScreenSettings {
		return m.handleSettingsKey(msg)
	}
	return m.handleSessionKey(msg)
}

// handleSessionKey processes keyboard input on the session screen.
func (m model) handleSessionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.onQuit != nil {
			m.onQuit()
		}
		return m, tea.Quit

	case " ":
		m.timer.Toggle()
		return m, nil

	case "r":
		m.timer.Restart(m.cfg.Session.DurationSeconds)
		m.scale = m.timer.VisualScale()
		return m, nil

	case "s":
		m.openSettings()
		return m, nil
	}

	return m, nil
}

// handleSettingsKey processes keyboard input on the settings screen.
func (m model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.onQuit != nil {
			m.onQuit()
		}
		return m, tea.Quit

	case "esc", "q":
		m.closeSettings(false)
		return m, nil

	case "enter":
		m.closeSettings(true)
		return m, nil

	case "up", "k":
		m.form.prev()
		return m, nil

	case "down", "j":
		m.form.next()
		return m, nil

	case "left", "h":
		m.form.adjust(-1)
		return m, nil

	case "right", "l":
		m.form.adjust(1)
		return m, nil

	case "tab":
		m.form.cyclePattern(1)
		return m, nil
	}

	return m, nil
}

// openSettings pauses the session and shows the settings overlay with a
// draft copy of the live config.
func (m *model) openSettings() {
	m.resumeOnClose = m.timer.Running()
	m.timer.Pause()
	m.form = newSettingsForm(*m.cfg)
	m.screen = ScreenSettings
}

// closeSettings leaves the settings screen. On save the draft becomes
// the live config, is persisted, and the timer restarts with the new
// values; this is the one point where the timer re-reads configuration.
// On cancel the session resumes exactly where it paused.
func (m *model) closeSettings(save bool) {
	m.screen = ScreenSession

	if !save {
		if m.resumeOnClose {
			m.timer.Resume()
		}
		return
	}

	m.form.draft.Normalize()
	*m.cfg = m.form.draft

	if m.saver != nil {
		if err := m.saver.Save(m.cfg); err != nil {
			slog.Warn("failed to save settings", "error", err)
		}
	}

	m.timer.Apply(m.cfg.Pattern(), m.cfg.Session.DurationSeconds)
	m.scale = m.timer.VisualScale()
}
