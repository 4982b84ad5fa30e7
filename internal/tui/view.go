package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/almery/breathe/internal/breath"
)

// circleRadius is the breathing circle's radius in rows at full scale.
// Columns are doubled to compensate for terminal cell aspect ratio.
const circleRadius = 5

// View implements tea.Model. This renders the full TUI display.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		return m.renderTooSmall()
	}

	var content string
	if m.screen == ScreenSettings {
		content = m.renderSettings()
	} else {
		content = m.renderSession()
	}

	rendered := styles.Container.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, rendered)
}

// renderSession renders the breathing session screen.
func (m model) renderSession() string {
	snap := m.timer.Snapshot()

	var sections []string
	sections = append(sections, styles.Title.Render(m.cfg.Pattern().Name))
	sections = append(sections, "")
	sections = append(sections, m.renderCircle())
	sections = append(sections, "")
	sections = append(sections, m.renderPhaseLine())
	sections = append(sections, "")
	sections = append(sections, m.progress.ViewAs(snap.Progress))
	sections = append(sections, styles.Clock.Render(snap.Clock)+styles.Footer.Render(" remaining"))
	sections = append(sections, "")
	sections = append(sections, m.renderFooter())

	joined := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return joined
}

// renderPhaseLine renders the phase label and per-phase countdown, or
// the session status when the countdown is not advancing.
func (m model) renderPhaseLine() string {
	snap := m.timer.Snapshot()

	if snap.Completed {
		return styles.StatusComplete.Render("Session complete — press r to begin again")
	}
	if !snap.Running {
		return styles.StatusPaused.Render("Paused — press space to resume")
	}

	label := styles.Phase.Render(snap.Phase.String())
	count := styles.PhaseCount.Render(fmt.Sprintf(" %d", snap.PhaseSecondsLeft))
	return label + count
}

// renderCircle draws the breathing circle at the current eased scale.
// The canvas size is fixed so the surrounding layout never shifts.
func (m model) renderCircle() string {
	style := styles.Circle
	if !m.timer.Phase().Expanded() {
		style = styles.CircleDim
	}
	if m.timer.Completed() {
		style = styles.StatusComplete
	}

	r := m.scale * circleRadius
	var lines []string
	for y := -circleRadius; y <= circleRadius; y++ {
		var b strings.Builder
		for x := -2 * circleRadius; x <= 2*circleRadius; x++ {
			dx := float64(x) / 2
			dy := float64(y)
			if dx*dx+dy*dy <= r*r {
				b.WriteRune('•')
			} else {
				b.WriteRune(' ')
			}
		}
		lines = append(lines, b.String())
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderSettings renders the settings overlay.
func (m model) renderSettings() string {
	var sections []string
	sections = append(sections, styles.Title.Render("Settings"))
	sections = append(sections, "")

	for f := settingsField(0); f < fieldCount; f++ {
		sections = append(sections, m.renderField(f))
	}

	sections = append(sections, "")
	sections = append(sections, styles.Footer.Render("↑/↓ select · ←/→ adjust · enter save · esc cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderField renders one settings row with its current draft value.
func (m model) renderField(f settingsField) string {
	cursor := "  "
	labelStyle := styles.FieldLabel
	if f == m.form.field {
		cursor = styles.Cursor.Render("❯ ")
		labelStyle = styles.FieldSelected
	}

	label := labelStyle.Render(fmt.Sprintf("%-16s", fieldLabel(f)))
	value := styles.FieldValue.Render(m.fieldValue(f))
	return cursor + label + value
}

// fieldValue returns the display value for a settings field.
func (m model) fieldValue(f settingsField) string {
	d := m.form.draft
	switch f {
	case fieldPattern:
		if preset, ok := breath.ByID(d.Session.Pattern); ok {
			return preset.Name
		}
		return "Custom"
	case fieldInhale:
		return formatSeconds(d.Breathing.Inhale)
	case fieldHold:
		return formatSeconds(d.Breathing.Hold)
	case fieldExhale:
		return formatSeconds(d.Breathing.Exhale)
	case fieldRest:
		return formatSeconds(d.Breathing.Rest)
	case fieldSession:
		return formatMinutes(d.Session.DurationSeconds)
	case fieldSpeed:
		return formatSpeed(d.Session.AnimationSpeed)
	default:
		return ""
	}
}

// renderFooter renders the session screen key hints.
func (m model) renderFooter() string {
	return styles.Footer.Render("space pause · r restart · s settings · q quit")
}

// renderTooSmall renders a message when the terminal is too small.
func (m model) renderTooSmall() string {
	msg := fmt.Sprintf("Terminal too small\nNeed at least %dx%d", minWidth, minHeight)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}
