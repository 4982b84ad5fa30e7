package breath

// CustomID is the pattern ID reported when durations match no preset.
const CustomID = "custom"

// DefaultID is the preset selected when no stored choice exists.
const DefaultID = "calm"

// presets holds the built-in patterns in menu order.
var presets = []Pattern{
	{ID: "calm", Name: "Calm", Inhale: 4, Hold: 4, Exhale: 4, Rest: 2},
	{ID: "box", Name: "Box Breathing", Inhale: 4, Hold: 4, Exhale: 4, Rest: 4},
	{ID: "relax", Name: "Relaxing 4-7-8", Inhale: 4, Hold: 7, Exhale: 8, Rest: 0},
	{ID: "coherent", Name: "Coherent", Inhale: 5, Hold: 0, Exhale: 5, Rest: 0},
}

// Presets returns the built-in patterns in menu order.
// The returned slice is a copy and safe to modify.
func Presets() []Pattern {
	out := make([]Pattern, len(presets))
	copy(out, presets)
	return out
}

// ByID returns the preset with the given ID. Unknown IDs fall back to
// the default preset, so the second return reports whether the ID matched.
func ByID(id string) (Pattern, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Default(), false
}

// Default returns the default preset.
func Default() Pattern {
	p, _ := ByID(DefaultID)
	return p
}

// Match returns the ID of the preset whose durations equal p, or
// CustomID when none do.
func Match(p Pattern) string {
	for _, preset := range presets {
		if preset.SameDurations(p) {
			return preset.ID
		}
	}
	return CustomID
}
