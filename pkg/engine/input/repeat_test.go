package input

import (
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

func TestRepeatTimerFirstPressTriggersImmediately(t *testing.T) {
	var rt RepeatTimer
	if !rt.Update(frame, true) {
		t.Error("first press should trigger immediately")
	}
	if rt.Update(frame, true) {
		t.Error("second frame of a hold should not trigger inside the initial delay")
	}
}

func TestRepeatTimerHonorsInitialDelay(t *testing.T) {
	var rt RepeatTimer
	rt.Update(frame, true) // press

	held := time.Duration(0)
	for held < RepeatInitialDelay {
		if rt.Update(frame, true) {
			t.Fatalf("triggered %v into the hold, before the %v initial delay", held, RepeatInitialDelay)
		}
		held += frame
	}
}

func TestRepeatTimerRepeatsAtInterval(t *testing.T) {
	var rt RepeatTimer
	rt.Update(frame, true) // press

	// Hold through the initial delay.
	for held := time.Duration(0); held < RepeatInitialDelay; held += frame {
		rt.Update(frame, true)
	}

	// Over one second of further holding, triggers should arrive at the
	// repeat interval regardless of the frame size.
	triggers := 0
	frames := int(time.Second / frame)
	for i := 0; i < frames; i++ {
		if rt.Update(frame, true) {
			triggers++
		}
	}
	want := int(time.Second / RepeatInterval)
	if triggers < want-1 || triggers > want+1 {
		t.Errorf("got %d triggers over one second, want about %d", triggers, want)
	}
}

func TestRepeatTimerReleaseResets(t *testing.T) {
	var rt RepeatTimer
	rt.Update(frame, true)
	for held := time.Duration(0); held < 2*RepeatInitialDelay; held += frame {
		rt.Update(frame, true)
	}

	if rt.Update(frame, false) {
		t.Error("release must not trigger")
	}
	if !rt.Update(frame, true) {
		t.Error("press after release should trigger immediately again")
	}
	if rt.Update(frame, true) {
		t.Error("hold timer should have been reset by the release")
	}
}

func TestMapToIntent(t *testing.T) {
	cases := []struct {
		code string
		want Action
	}{
		{"arrow_left", ActionRotateTubeLeft},
		{"d", ActionRotateTubeRight},
		{"space", ActionHardDrop},
		{"x", ActionRotatePiece},
		{"p", ActionPause},
		{"unbound", ActionNone},
	}
	for _, c := range cases {
		got := MapToIntent(DebouncedInput{Device: DeviceKeyboard, Code: c.code})
		if got.Action != c.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", c.code, got.Action, c.want)
		}
	}
}

func TestIsDirectional(t *testing.T) {
	for _, a := range []Action{ActionRotateTubeLeft, ActionRotateTubeRight, ActionSoftDrop} {
		if !IsDirectional(a) {
			t.Errorf("action %v should be repeat-filtered", a)
		}
	}
	for _, a := range []Action{ActionHardDrop, ActionRotatePiece, ActionPause} {
		if IsDirectional(a) {
			t.Errorf("action %v should fire once per press", a)
		}
	}
}
