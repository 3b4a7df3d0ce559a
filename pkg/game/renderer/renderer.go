// Package renderer selects and drives the active rendering backend.
package renderer

import (
	"github.com/leonelquinteros/gotext"

	"ringfall/pkg/game/session"
)

// Renderer defines the interface for rendering backends. A backend owns
// its host loop: Run reads input, advances the session and draws frames
// until the player quits or the backend fails.
//
// Implementations include TUI (terminal) and Ebiten (windowed).
type Renderer interface {
	// Init prepares the backend (colors, fonts, window, etc.)
	Init() error

	// Run drives the session until exit. It blocks.
	Run(s *session.Session) error
}

// Current holds the active renderer instance.
var Current Renderer

// SetRenderer sets the active renderer.
func SetRenderer(r Renderer) {
	Current = r
}

// Run initializes the current renderer and drives the session with it.
func Run(s *session.Session) error {
	if Current == nil {
		return nil
	}
	if err := Current.Init(); err != nil {
		return err
	}
	return Current.Run(s)
}

// HUDLines returns the stat lines both backends display beside the tube.
func HUDLines(st session.State) []string {
	return []string{
		gotext.Get("Score: %d", st.Score),
		gotext.Get("Level: %d", st.Level),
		gotext.Get("Rings: %d", st.LinesCleared),
		gotext.Get("Combo: %d", st.Combo),
	}
}
