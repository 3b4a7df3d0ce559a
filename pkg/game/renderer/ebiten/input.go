package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/zyedidia/generic/mapset"

	engineinput "ringfall/pkg/engine/input"
	"ringfall/pkg/game/menu"
	"ringfall/pkg/game/session"
)

// keyBindings maps actions to their keys. Whether an action is
// repeat-filtered while held or fires once per press is decided by
// input.IsDirectional, not duplicated here.
var keyBindings = map[engineinput.Action][]ebiten.Key{
	engineinput.ActionRotateTubeLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH},
	engineinput.ActionRotateTubeRight: {ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL},
	engineinput.ActionSoftDrop:        {ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ},
	engineinput.ActionHardDrop:        {ebiten.KeySpace},
	engineinput.ActionRotatePiece:     {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK, ebiten.KeyX},
	engineinput.ActionPause:           {ebiten.KeyP, ebiten.KeyEscape},
	engineinput.ActionRestart:         {ebiten.KeyR},
	engineinput.ActionConfirm:         {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	engineinput.ActionQuit:            {ebiten.KeyQ},
}

// newRepeatTimers builds one timer per repeat-filtered action in the
// bindings.
func newRepeatTimers() map[engineinput.Action]*engineinput.RepeatTimer {
	timers := map[engineinput.Action]*engineinput.RepeatTimer{}
	for act := range keyBindings {
		if engineinput.IsDirectional(act) {
			timers[act] = &engineinput.RepeatTimer{}
		}
	}
	return timers
}

// Update gathers input, advances the session by wall-clock time and
// swaps menu overlays on status transitions (Ebiten interface).
func (e *EbitenRenderer) Update() error {
	now := time.Now()
	dt := now.Sub(e.lastUpdate)
	e.lastUpdate = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	e.collectActions(dt)

	var quit bool
	e.frameActions.Each(func(act engineinput.Action) {
		if e.dispatch(act) {
			quit = true
		}
	})
	if quit || e.quitting {
		return ebiten.Termination
	}

	e.session.Update(dt)
	e.refreshMenu()
	return nil
}

// collectActions fills frameActions with this frame's triggers. The set
// deduplicates aliased keys pressed together.
func (e *EbitenRenderer) collectActions(dt time.Duration) {
	e.frameActions = mapset.New[engineinput.Action]()

	for act, keys := range keyBindings {
		if engineinput.IsDirectional(act) {
			if e.repeat[act].Update(dt, anyKeyPressed(keys)) {
				e.frameActions.Put(act)
			}
		} else if anyKeyJustPressed(keys) {
			e.frameActions.Put(act)
		}
	}
}

// dispatch routes one action based on the session status. Returns true
// when the player asked to leave the program.
func (e *EbitenRenderer) dispatch(act engineinput.Action) bool {
	if e.session.Status() == session.StatusPlaying {
		if act == engineinput.ActionQuit {
			return true
		}
		e.session.Apply(session.CommandForAction(act))
		e.refreshMenu()
		return false
	}

	if e.currentMenu == nil {
		return act == engineinput.ActionQuit
	}
	switch e.currentMenu.HandleAction(act) {
	case menu.ActionNewGame:
		e.session.Start()
	case menu.ActionResume:
		e.session.Apply(session.CommandPause)
	case menu.ActionRestart:
		e.session.Apply(session.CommandRestart)
	case menu.ActionToMenu:
		e.session.ToMenu()
	case menu.ActionQuit:
		return true
	}
	e.refreshMenu()
	return false
}

// refreshMenu rebuilds the menu overlay when the session status changes.
func (e *EbitenRenderer) refreshMenu() {
	st := e.session.Status()
	if st == e.lastStatus {
		return
	}
	e.lastStatus = st

	switch st {
	case session.StatusMenu:
		e.currentMenu = menu.MainMenu()
	case session.StatusPaused:
		e.currentMenu = menu.PauseMenu()
	case session.StatusGameOver:
		e.currentMenu = menu.GameOverMenu(e.session.State().Score)
	default:
		e.currentMenu = nil
	}

	// Held keys must not leak triggers across a status change.
	for _, t := range e.repeat {
		t.Reset()
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
