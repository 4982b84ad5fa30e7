package tui

import "fmt"

// formatSeconds renders a whole-second duration for the settings screen.
func formatSeconds(seconds int) string {
	return fmt.Sprintf("%d s", seconds)
}

// formatMinutes renders a session length as whole and half minutes.
func formatMinutes(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d s", seconds)
	}
	if seconds%60 == 0 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	return fmt.Sprintf("%.1f min", float64(seconds)/60)
}

// formatSpeed renders the animation speed multiplier, e.g. "1.0x".
func formatSpeed(speed float64) string {
	return fmt.Sprintf("%.1fx", speed)
}

// fieldLabel returns the display label for a settings field.
func fieldLabel(f settingsField) string {
	switch f {
	case fieldPattern:
		return "Pattern"
	case fieldInhale:
		return "Inhale"
	case fieldHold:
		return "Hold"
	case fieldExhale:
		return "Exhale"
	case fieldRest:
		return "Rest"
	case fieldSession:
		return "Session length"
	case fieldSpeed:
		return "Animation speed"
	default:
		return ""
	}
}
