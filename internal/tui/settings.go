package tui

import (
	"math"

	"github.com/almery/breathe/internal/breath"
	"github.com/almery/breathe/internal/config"
)

// settingsField identifies one adjustable row on the settings screen.
type settingsField int

const (
	fieldPattern settingsField = iota
	fieldInhale
	fieldHold
	fieldExhale
	fieldRest
	fieldSession
	fieldSpeed
	fieldCount
)

// Adjustment step sizes.
const (
	sessionStepSeconds = 30
	speedStep          = 0.1
)

// settingsForm is the editable draft shown on the settings screen.
// It works on a copy of the config; nothing is applied or persisted
// until the user confirms.
type settingsForm struct {
	draft config.Config
	field settingsField
}

func newSettingsForm(cfg config.Config) settingsForm {
	return settingsForm{draft: cfg}
}

func (f *settingsForm) next() {
	f.field = (f.field + 1) % fieldCount
}

func (f *settingsForm) prev() {
	f.field = (f.field - 1 + fieldCount) % fieldCount
}

// adjust changes the selected field by delta steps, clamping to the
// field's bound. Out-of-range values never enter the draft.
func (f *settingsForm) adjust(delta int) {
	switch f.field {
	case fieldPattern:
		f.cyclePattern(delta)
		return
	case fieldInhale:
		f.draft.Breathing.Inhale += delta
	case fieldHold:
		f.draft.Breathing.Hold += delta
	case fieldExhale:
		f.draft.Breathing.Exhale += delta
	case fieldRest:
		f.draft.Breathing.Rest += delta
	case fieldSession:
		f.draft.Session.DurationSeconds += delta * sessionStepSeconds
	case fieldSpeed:
		speed := f.draft.Session.AnimationSpeed + float64(delta)*speedStep
		// Keep one decimal so repeated steps don't accumulate float error
		f.draft.Session.AnimationSpeed = math.Round(speed*10) / 10
	}
	f.draft.Normalize()
}

// cyclePattern steps through the built-in presets, copying the selected
// preset's durations into the draft.
func (f *settingsForm) cyclePattern(delta int) {
	presets := breath.Presets()
	idx := -1
	for i, p := range presets {
		if p.ID == f.draft.Session.Pattern {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(presets)) % len(presets)
	f.draft.SetPattern(presets[idx])
	f.draft.Normalize()
}
