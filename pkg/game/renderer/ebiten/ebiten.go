package ebiten

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	engineinput "ringfall/pkg/engine/input"
	"ringfall/pkg/game/session"
)

// New creates a new Ebiten renderer. lastStatus starts off every valid
// status so the first refreshMenu always builds an overlay.
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		lastStatus:   session.Status(-1),
	}
}

// Init loads fonts and builds the repeat timers for held keys.
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}

	e.repeat = newRepeatTimers()
	e.frameActions = mapset.New[engineinput.Action]()
	return nil
}

// prepare binds the session and builds the initial menu overlay, so a key
// pressed on the very first frame already reaches a menu.
func (e *EbitenRenderer) prepare(s *session.Session) {
	e.session = s

	// The mapper has no geometry accessors; recover radius and height
	// from known projections instead of duplicating the configuration.
	x, y, _ := s.Mapper().TubeToWorld(0, 0)
	e.tubeRadius = x
	e.tubeHeight = -2 * y

	e.lastUpdate = time.Now()
	e.refreshMenu()
}

// Run opens the window and drives the session until the player quits.
func (e *EbitenRenderer) Run(s *session.Session) error {
	e.prepare(s)

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Ringfall"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Layout returns the game's logical screen size (Ebiten interface).
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
