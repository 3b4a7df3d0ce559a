// Package ebiten provides the windowed, hardware-accelerated renderer.
// The tube is drawn in perspective: cells are projected through the
// session's coordinate mapper and painted back to front.
package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/zyedidia/generic/mapset"

	engineinput "ringfall/pkg/engine/input"
	"ringfall/pkg/game/menu"
	"ringfall/pkg/game/session"
)

const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 720

	baseFontSize  = 18.0
	titleFontSize = 28.0

	// Wall-clock frames can stall (window drag, suspend); anything
	// longer than this is treated as a single long frame.
	maxFrameDelta = 100 * time.Millisecond
)

// EbitenRenderer is the Ebiten-based graphical renderer.
type EbitenRenderer struct {
	session *session.Session

	// Window dimensions, updated by Layout.
	windowWidth  int
	windowHeight int

	// Tube geometry recovered from the session's mapper.
	tubeRadius float64
	tubeHeight float64

	// Font sources for text rendering.
	uiFontSource    *text.GoTextFaceSource
	boldFontSource  *text.GoTextFaceSource
	monoFontSource  *text.GoTextFaceSource
	cachedUIFace    *text.GoTextFace
	cachedBoldFace  *text.GoTextFace
	cachedTitleFace *text.GoTextFace
	cachedMonoFace  *text.GoTextFace

	// Repeat timers for held directional keys, one per action.
	repeat map[engineinput.Action]*engineinput.RepeatTimer

	// Actions gathered this frame; the set deduplicates aliased keys.
	frameActions mapset.Set[engineinput.Action]

	// Menu overlay state.
	currentMenu *menu.Model
	lastStatus  session.Status

	lastUpdate time.Time
	quitting   bool
}
