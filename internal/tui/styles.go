package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	// Layout styles
	Container lipgloss.Style
	Title     lipgloss.Style
	Footer    lipgloss.Style

	// Session screen styles
	Phase      lipgloss.Style
	PhaseCount lipgloss.Style
	Clock      lipgloss.Style
	Circle     lipgloss.Style
	CircleDim  lipgloss.Style

	// Status styles
	StatusRunning  lipgloss.Style
	StatusPaused   lipgloss.Style
	StatusComplete lipgloss.Style

	// Settings screen styles
	FieldLabel    lipgloss.Style
	FieldValue    lipgloss.Style
	FieldSelected lipgloss.Style
	Cursor        lipgloss.Style
}{
	// Layout styles
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	// Session screen styles
	Phase: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("117")),

	PhaseCount: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	Clock: lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")),

	Circle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("45")),

	CircleDim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("24")),

	// Status styles
	StatusRunning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")),

	StatusPaused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")),

	StatusComplete: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("114")),

	// Settings screen styles
	FieldLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	FieldValue: lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")),

	FieldSelected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")),
}
