// Package session implements the breath-session countdown state machine.
//
// A Timer owns the current breath phase, the per-phase countdown, and
// the overall session countdown. It has no notion of wall-clock time:
// the caller advances it with a fixed tick (TickInterval) and reads
// derived display values from Snapshot. All durations are tracked in
// whole milliseconds, so repeated ticks never drift.
package session

import (
	"time"

	"github.com/almery/breathe/internal/breath"
)

// TickInterval is the cadence at which the timer expects to be advanced.
// 100ms keeps the visible seconds smooth without excessive redraws.
const TickInterval = 100 * time.Millisecond

// Visual scale constants for the breathing animation. Inhale and Hold
// map to the expanded scale, Exhale and Rest to the contracted one.
const (
	ScaleExpanded   = 1.0
	ScaleContracted = 0.55
)

// Timer is the breath-session state machine. It assumes pre-validated
// durations (inhale and exhale at least one second, see breath.Pattern);
// it has no error path of its own.
//
// Timer is not safe for concurrent use. All mutation is expected to
// happen on a single execution context (the TUI update loop).
type Timer struct {
	pattern        breath.Pattern
	sessionSeconds int // configured length, re-read only at reset points

	phase         breath.Phase
	phaseLeftMS   int
	sessionLeftMS int
	totalMS       int
	running       bool
	completed     bool
}

// New creates a Timer at its initial state: phase Inhale, the full
// inhale duration remaining, the full session remaining, running.
func New(p breath.Pattern, sessionSeconds int) *Timer {
	t := &Timer{}
	t.Apply(p, sessionSeconds)
	return t
}

// Advance moves the countdown forward by one tick of duration d.
// Session completion takes priority over a phase advance that would
// land on the same tick. Zero-length phases (hold or rest at 0) are
// skipped within the same call so the display never freezes on them.
func (t *Timer) Advance(d time.Duration) {
	if !t.running {
		return
	}

	step := int(d / time.Millisecond)

	t.sessionLeftMS -= step
	if t.sessionLeftMS <= 0 {
		t.sessionLeftMS = 0
		t.running = false
		t.completed = true
		return
	}

	t.phaseLeftMS -= step
	for i := 0; i < breath.PhaseCount && t.phaseLeftMS <= 0; i++ {
		carry := -t.phaseLeftMS
		t.phase = t.phase.Next()
		t.phaseLeftMS = t.pattern.Duration(t.phase)*1000 - carry
	}
}

// Pause stops the countdown without resetting it. No-op once completed.
func (t *Timer) Pause() {
	if t.completed {
		return
	}
	t.running = false
}

// Resume continues a paused countdown from where it stopped.
// No-op once completed; only Restart leaves the completed state.
func (t *Timer) Resume() {
	if t.completed {
		return
	}
	t.running = true
}

// Toggle flips between running and paused and reports the new running
// state. No-op once completed.
func (t *Timer) Toggle() bool {
	if t.running {
		t.Pause()
	} else {
		t.Resume()
	}
	return t.running
}

// Restart resets the session to the given length and starts it running.
// Available from any state, including completed.
func (t *Timer) Restart(sessionSeconds int) {
	t.Apply(t.pattern, sessionSeconds)
}

// SetPattern swaps the active pattern. Mid-cycle swaps are not
// interpolated: the phase resets to Inhale and both countdowns restart.
func (t *Timer) SetPattern(p breath.Pattern) {
	t.Apply(p, t.sessionSeconds)
}

// Apply installs a new pattern and session length and resets the timer
// to its initial running state. This is the single reset point at which
// configuration is re-read.
func (t *Timer) Apply(p breath.Pattern, sessionSeconds int) {
	t.pattern = p
	t.sessionSeconds = sessionSeconds
	t.phase = breath.Inhale
	t.phaseLeftMS = p.Inhale * 1000
	t.sessionLeftMS = sessionSeconds * 1000
	t.totalMS = sessionSeconds * 1000
	t.running = true
	t.completed = false

	if sessionSeconds <= 0 {
		// An empty session is complete before its first tick.
		t.running = false
		t.completed = true
	}
}

// Pattern returns the active pattern.
func (t *Timer) Pattern() breath.Pattern { return t.pattern }

// SessionSeconds returns the configured session length.
func (t *Timer) SessionSeconds() int { return t.sessionSeconds }

// Phase returns the current breath phase.
func (t *Timer) Phase() breath.Phase { return t.phase }

// Running reports whether the countdown is advancing.
func (t *Timer) Running() bool { return t.running }

// Completed reports whether the session has run to its end.
func (t *Timer) Completed() bool { return t.completed }

// PhaseSecondsLeft returns the seconds remaining in the current phase,
// rounded up and floored at zero.
func (t *Timer) PhaseSecondsLeft() int {
	return ceilSeconds(t.phaseLeftMS)
}

// Progress returns the fraction of the session elapsed, in [0,1].
func (t *Timer) Progress() float64 {
	total := t.totalMS
	if total < 1 {
		total = 1
	}
	frac := 1 - float64(t.sessionLeftMS)/float64(total)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// VisualScale returns the animation target scale for the current phase:
// expanded while breath is held in, contracted while it is let out.
func (t *Timer) VisualScale() float64 {
	if t.phase.Expanded() {
		return ScaleExpanded
	}
	return ScaleContracted
}

// ceilSeconds converts milliseconds remaining to display seconds,
// rounding partial seconds up so the countdown never shows 0 early.
func ceilSeconds(ms int) int {
	if ms <= 0 {
		return 0
	}
	return (ms + 999) / 1000
}
