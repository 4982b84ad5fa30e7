package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/almery/breathe/internal/config"
)

func sizedModel(t *testing.T) model {
	t.Helper()
	m := newTestModel(nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(model)
}

func TestView_LoadingBeforeFirstWindowSize(t *testing.T) {
	m := newTestModel(nil)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before sizing = %q, want Loading...", got)
	}
}

func TestView_TooSmall(t *testing.T) {
	m := newTestModel(nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = updated.(model)

	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("View should warn about a too-small terminal")
	}
}

func TestView_SessionScreen(t *testing.T) {
	m := sizedModel(t)
	out := m.View()

	for _, want := range []string{"Calm", "Inhale", "10:00", "remaining", "s settings"} {
		if !strings.Contains(out, want) {
			t.Errorf("session view missing %q", want)
		}
	}
}

func TestView_PausedStatus(t *testing.T) {
	m := sizedModel(t)
	m.timer.Pause()

	if !strings.Contains(m.View(), "Paused") {
		t.Error("view should show the paused status")
	}
}

func TestView_CompletedStatus(t *testing.T) {
	cfg := config.Default()
	cfg.Session.DurationSeconds = 1
	m := newModel(cfg, nil, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(model)
	for i := 0; i < 10; i++ {
		m.handleTick()
	}

	if !strings.Contains(m.View(), "Session complete") {
		t.Error("view should show the completed status")
	}
}

func TestView_SettingsScreen(t *testing.T) {
	m := sizedModel(t)
	m = press(t, m, "s")
	out := m.View()

	for _, want := range []string{"Settings", "Pattern", "Inhale", "Session length", "Animation speed", "enter save"} {
		if !strings.Contains(out, want) {
			t.Errorf("settings view missing %q", want)
		}
	}
}

func TestRenderCircle_ScalesWithPhase(t *testing.T) {
	m := sizedModel(t)

	m.scale = 1.0
	expanded := strings.Count(m.renderCircle(), "•")

	m.scale = 0.55
	contracted := strings.Count(m.renderCircle(), "•")

	if contracted >= expanded {
		t.Errorf("contracted circle (%d dots) should be smaller than expanded (%d dots)",
			contracted, expanded)
	}
	if contracted == 0 {
		t.Error("contracted circle should still be visible")
	}
}

func TestRenderCircle_FixedCanvasSize(t *testing.T) {
	m := sizedModel(t)

	m.scale = 1.0
	large := len(strings.Split(m.renderCircle(), "\n"))
	m.scale = 0.55
	small := len(strings.Split(m.renderCircle(), "\n"))

	if large != small {
		t.Errorf("circle canvas height changed with scale: %d vs %d lines", large, small)
	}
}
