package tui

import (
	"testing"

	"github.com/almery/breathe/internal/breath"
	"github.com/almery/breathe/internal/config"
)

func TestSettingsForm_NextPrevWrap(t *testing.T) {
	f := newSettingsForm(*config.Default())

	if f.field != fieldPattern {
		t.Errorf("initial field = %v, want fieldPattern", f.field)
	}

	f.prev()
	if f.field != fieldSpeed {
		t.Errorf("prev from first field = %v, want fieldSpeed", f.field)
	}

	f.next()
	if f.field != fieldPattern {
		t.Errorf("next from last field = %v, want fieldPattern", f.field)
	}
}

func TestSettingsForm_AdjustDurationClamps(t *testing.T) {
	f := newSettingsForm(*config.Default())
	f.field = fieldInhale

	// Step up past the max: the draft never exceeds the bound.
	for i := 0; i < 20; i++ {
		f.adjust(1)
	}
	if f.draft.Breathing.Inhale != 10 {
		t.Errorf("Inhale after stepping past max = %d, want 10", f.draft.Breathing.Inhale)
	}

	// And back down past the min.
	for i := 0; i < 20; i++ {
		f.adjust(-1)
	}
	if f.draft.Breathing.Inhale != 1 {
		t.Errorf("Inhale after stepping past min = %d, want 1", f.draft.Breathing.Inhale)
	}
}

func TestSettingsForm_AdjustRestAllowsZero(t *testing.T) {
	f := newSettingsForm(*config.Default())
	f.field = fieldRest

	for i := 0; i < 10; i++ {
		f.adjust(-1)
	}
	if f.draft.Breathing.Rest != 0 {
		t.Errorf("Rest after stepping past min = %d, want 0", f.draft.Breathing.Rest)
	}
}

func TestSettingsForm_AdjustSpeedStepsAndClamps(t *testing.T) {
	f := newSettingsForm(*config.Default())
	f.field = fieldSpeed

	f.adjust(1)
	if f.draft.Session.AnimationSpeed != 1.1 {
		t.Errorf("speed after one step = %v, want 1.1", f.draft.Session.AnimationSpeed)
	}

	for i := 0; i < 30; i++ {
		f.adjust(1)
	}
	if f.draft.Session.AnimationSpeed != config.MaxAnimationSpeed {
		t.Errorf("speed after stepping past max = %v, want %v",
			f.draft.Session.AnimationSpeed, config.MaxAnimationSpeed)
	}

	for i := 0; i < 30; i++ {
		f.adjust(-1)
	}
	if f.draft.Session.AnimationSpeed != config.MinAnimationSpeed {
		t.Errorf("speed after stepping past min = %v, want %v",
			f.draft.Session.AnimationSpeed, config.MinAnimationSpeed)
	}
}

func TestSettingsForm_AdjustSessionLength(t *testing.T) {
	f := newSettingsForm(*config.Default())
	f.field = fieldSession

	f.adjust(1)
	if f.draft.Session.DurationSeconds != 630 {
		t.Errorf("session after one step = %d, want 630", f.draft.Session.DurationSeconds)
	}

	for i := 0; i < 200; i++ {
		f.adjust(1)
	}
	if f.draft.Session.DurationSeconds != config.MaxSessionSeconds {
		t.Errorf("session after stepping past max = %d, want %d",
			f.draft.Session.DurationSeconds, config.MaxSessionSeconds)
	}
}

func TestSettingsForm_AdjustDurationUpdatesPatternID(t *testing.T) {
	f := newSettingsForm(*config.Default())
	f.field = fieldRest

	// Default calm is 4/4/4/2; raising rest makes it no preset at all,
	// then 4/4/4/4 which is box.
	f.adjust(1)
	if f.draft.Session.Pattern != breath.CustomID {
		t.Errorf("pattern after 4/4/4/3 = %q, want %q", f.draft.Session.Pattern, breath.CustomID)
	}

	f.adjust(1)
	if f.draft.Session.Pattern != "box" {
		t.Errorf("pattern after 4/4/4/4 = %q, want box", f.draft.Session.Pattern)
	}
}

func TestSettingsForm_CyclePattern(t *testing.T) {
	f := newSettingsForm(*config.Default())
	presets := breath.Presets()

	f.cyclePattern(1)
	if f.draft.Session.Pattern != presets[1].ID {
		t.Errorf("pattern after cycle = %q, want %q", f.draft.Session.Pattern, presets[1].ID)
	}
	want := config.BreathingConfig{
		Inhale: presets[1].Inhale,
		Hold:   presets[1].Hold,
		Exhale: presets[1].Exhale,
		Rest:   presets[1].Rest,
	}
	if f.draft.Breathing != want {
		t.Errorf("durations after cycle = %+v, want %+v", f.draft.Breathing, want)
	}

	// Cycling through every preset wraps back to the start.
	for i := 0; i < len(presets)-1; i++ {
		f.cyclePattern(1)
	}
	if f.draft.Session.Pattern != presets[0].ID {
		t.Errorf("pattern after full cycle = %q, want %q", f.draft.Session.Pattern, presets[0].ID)
	}
}

func TestSettingsForm_CyclePatternFromCustom(t *testing.T) {
	cfg := config.Default()
	cfg.Breathing = config.BreathingConfig{Inhale: 3, Hold: 3, Exhale: 3, Rest: 3}
	cfg.Normalize()

	f := newSettingsForm(*cfg)
	f.cyclePattern(1)

	presets := breath.Presets()
	if f.draft.Session.Pattern != presets[0].ID {
		t.Errorf("pattern after cycle from custom = %q, want %q",
			f.draft.Session.Pattern, presets[0].ID)
	}
}
