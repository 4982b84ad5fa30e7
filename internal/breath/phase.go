// Package breath defines the breath phases and named breathing patterns.
package breath

// Phase is one step of the four-part breathing cycle.
type Phase int

const (
	// Inhale is the active breathing-in phase.
	Inhale Phase = iota
	// Hold is the pause with full lungs after inhaling.
	Hold
	// Exhale is the active breathing-out phase.
	Exhale
	// Rest is the pause with empty lungs after exhaling.
	Rest
)

// PhaseCount is the number of phases in one cycle.
const PhaseCount = 4

// Next returns the phase that follows p, wrapping from Rest back to Inhale.
func (p Phase) Next() Phase {
	return (p + 1) % PhaseCount
}

// Expanded reports whether the lungs are full during p.
// Inhale and Hold map to the expanded visual state, Exhale and Rest
// to the contracted one.
func (p Phase) Expanded() bool {
	return p == Inhale || p == Hold
}

// String returns the display label for the phase.
func (p Phase) String() string {
	switch p {
	case Inhale:
		return "Inhale"
	case Hold:
		return "Hold"
	case Exhale:
		return "Exhale"
	case Rest:
		return "Rest"
	default:
		return "Unknown"
	}
}
