package breath

// Duration bounds in seconds for each phase. The active phases
// (inhale, exhale) must be at least one second; the pauses may be zero.
const (
	MinActiveSeconds = 1
	MaxPhaseSeconds  = 10
	MinPauseSeconds  = 0
	MaxRestSeconds   = 5
)

// Pattern is a named set of four phase durations in whole seconds.
type Pattern struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Inhale int    `json:"inhale"`
	Hold   int    `json:"hold"`
	Exhale int    `json:"exhale"`
	Rest   int    `json:"rest"`
}

// Duration returns the configured duration of the given phase in seconds.
func (p Pattern) Duration(phase Phase) int {
	switch phase {
	case Inhale:
		return p.Inhale
	case Hold:
		return p.Hold
	case Exhale:
		return p.Exhale
	case Rest:
		return p.Rest
	default:
		return 0
	}
}

// CycleSeconds returns the total length of one full cycle in seconds.
func (p Pattern) CycleSeconds() int {
	return p.Inhale + p.Hold + p.Exhale + p.Rest
}

// Clamped returns a copy of p with every duration forced into its
// declared bound: inhale/exhale [1,10], hold [0,10], rest [0,5].
// Clamping is idempotent.
func (p Pattern) Clamped() Pattern {
	p.Inhale = clampInt(p.Inhale, MinActiveSeconds, MaxPhaseSeconds)
	p.Hold = clampInt(p.Hold, MinPauseSeconds, MaxPhaseSeconds)
	p.Exhale = clampInt(p.Exhale, MinActiveSeconds, MaxPhaseSeconds)
	p.Rest = clampInt(p.Rest, MinPauseSeconds, MaxRestSeconds)
	return p
}

// SameDurations reports whether two patterns share all four durations,
// ignoring ID and name.
func (p Pattern) SameDurations(other Pattern) bool {
	return p.Inhale == other.Inhale &&
		p.Hold == other.Hold &&
		p.Exhale == other.Exhale &&
		p.Rest == other.Rest
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
