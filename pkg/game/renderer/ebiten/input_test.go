package ebiten

import (
	"testing"

	engineinput "ringfall/pkg/engine/input"
	"ringfall/pkg/game/session"
)

func TestRepeatTimersMatchDirectionalBindings(t *testing.T) {
	timers := newRepeatTimers()

	for act := range keyBindings {
		_, hasTimer := timers[act]
		if hasTimer != engineinput.IsDirectional(act) {
			t.Errorf("action %v: timer presence %v, directional %v",
				act, hasTimer, engineinput.IsDirectional(act))
		}
	}
	for act := range timers {
		if _, ok := keyBindings[act]; !ok {
			t.Errorf("timer for unbound action %v", act)
		}
	}
}

func TestMenuOverlayReadyBeforeFirstFrame(t *testing.T) {
	e := New()
	e.repeat = newRepeatTimers()
	s := session.New(session.Config{})

	e.prepare(s)
	if e.currentMenu == nil {
		t.Fatal("no menu overlay after prepare")
	}

	// Confirm on the first frame must land on the main menu's default
	// item and start the game.
	if e.dispatch(engineinput.ActionConfirm) {
		t.Fatal("confirm should not quit")
	}
	if got := s.Status(); got != session.StatusPlaying {
		t.Errorf("status after confirm = %v, want %v", got, session.StatusPlaying)
	}
}
