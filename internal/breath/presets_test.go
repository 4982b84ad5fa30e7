package breath

import "testing"

func TestByID_KnownPreset(t *testing.T) {
	p, ok := ByID("box")
	if !ok {
		t.Fatal("ByID(box) should find the preset")
	}
	if p.Inhale != 4 || p.Hold != 4 || p.Exhale != 4 || p.Rest != 4 {
		t.Errorf("box preset = %+v, want 4/4/4/4", p)
	}
}

func TestByID_UnknownFallsBackToDefault(t *testing.T) {
	p, ok := ByID("does-not-exist")
	if ok {
		t.Error("ByID should report an unknown ID")
	}
	if p.ID != DefaultID {
		t.Errorf("fallback preset ID = %q, want %q", p.ID, DefaultID)
	}
}

func TestDefault(t *testing.T) {
	p := Default()
	if p.ID != DefaultID {
		t.Errorf("Default().ID = %q, want %q", p.ID, DefaultID)
	}
	if clamped := p.Clamped(); !clamped.SameDurations(p) {
		t.Errorf("default preset %+v is out of bounds", p)
	}
}

func TestPresets_AllWithinBounds(t *testing.T) {
	for _, p := range Presets() {
		if clamped := p.Clamped(); !clamped.SameDurations(p) {
			t.Errorf("preset %q = %+v changes under clamping, want durations in bounds", p.ID, p)
		}
	}
}

func TestPresets_ReturnsCopy(t *testing.T) {
	first := Presets()
	first[0].Inhale = 99

	second := Presets()
	if second[0].Inhale == 99 {
		t.Error("mutating the returned slice should not affect the presets")
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		p    Pattern
		want string
	}{
		{"box durations", Pattern{Inhale: 4, Hold: 4, Exhale: 4, Rest: 4}, "box"},
		{"relax durations", Pattern{Inhale: 4, Hold: 7, Exhale: 8, Rest: 0}, "relax"},
		{"unmatched durations", Pattern{Inhale: 3, Hold: 3, Exhale: 3, Rest: 3}, CustomID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.p); got != tt.want {
				t.Errorf("Match(%+v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}
