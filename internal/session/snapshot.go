package session

import (
	"fmt"

	"github.com/almery/breathe/internal/breath"
)

// Snapshot is the full set of display values the presentation layer
// needs for one frame. It is a pure projection of timer state and
// carries no behavior.
type Snapshot struct {
	Phase            breath.Phase
	PhaseSecondsLeft int
	Clock            string
	Progress         float64
	Scale            float64
	Running          bool
	Completed        bool
}

// Snapshot returns the current display values.
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		Phase:            t.phase,
		PhaseSecondsLeft: t.PhaseSecondsLeft(),
		Clock:            t.Clock(),
		Progress:         t.Progress(),
		Scale:            t.VisualScale(),
		Running:          t.running,
		Completed:        t.completed,
	}
}

// Clock returns the session time remaining as mm:ss, seconds rounded up.
func (t *Timer) Clock() string {
	return FormatClock(ceilSeconds(t.sessionLeftMS))
}

// FormatClock renders a second count as mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
