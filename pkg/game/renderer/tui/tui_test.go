package tui

import (
	"testing"

	"ringfall/pkg/engine/tube"
)

func TestRequiredSizeCoversFrameAndHUD(t *testing.T) {
	g := tube.NewGrid(12, 20)
	hud := []string{"Score: 0", "Level: 0", "Rings: 0", "Combo: 0"}

	width, height := requiredSize(g, hud)

	// 2 indent + 2 border runes + 24 cell runes + 3 gap + 8 for the
	// widest HUD line.
	if want := 39; width != want {
		t.Errorf("width = %d, want %d", width, want)
	}
	// 20 rows plus title, two frame rows and the control hints.
	if want := 24; height != want {
		t.Errorf("height = %d, want %d", height, want)
	}
}

func TestRequiredSizeTracksWidestHUDLine(t *testing.T) {
	g := tube.NewGrid(8, 10)

	narrow, _ := requiredSize(g, []string{"Score: 0"})
	wide, _ := requiredSize(g, []string{"Score: 0", "Score: 123456789"})

	if wide-narrow != len("Score: 123456789")-len("Score: 0") {
		t.Errorf("width grew by %d, want %d", wide-narrow,
			len("Score: 123456789")-len("Score: 0"))
	}
}
