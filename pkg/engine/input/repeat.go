package input

import "time"

// Delayed-auto-shift timing for held directional input. The first press
// triggers immediately; after RepeatInitialDelay of continuous holding,
// triggers fire every RepeatInterval.
const (
	RepeatInitialDelay = 167 * time.Millisecond
	RepeatInterval     = 33 * time.Millisecond
)

// RepeatTimer turns raw key-held polling into repeat-filtered triggers.
// One timer tracks one directional action. It is pure state driven by
// Update, so the trigger rate is independent of the host's frame rate.
type RepeatTimer struct {
	holding     bool
	holdTime    time.Duration
	repeatAccum time.Duration
}

// Update advances the timer by dt with the current held state of the key
// and reports whether the action should trigger this frame. Releasing the
// key resets both the hold timer and the repeat accumulator.
func (t *RepeatTimer) Update(dt time.Duration, held bool) bool {
	if !held {
		t.holding = false
		t.holdTime = 0
		t.repeatAccum = 0
		return false
	}

	if !t.holding {
		// First press triggers immediately.
		t.holding = true
		t.holdTime = 0
		t.repeatAccum = 0
		return true
	}

	t.holdTime += dt
	if t.holdTime < RepeatInitialDelay {
		return false
	}

	t.repeatAccum += dt
	if t.repeatAccum >= RepeatInterval {
		// Subtract rather than zero so the repeat rate does not drift
		// when frames do not line up with the interval.
		t.repeatAccum -= RepeatInterval
		return true
	}
	return false
}

// Reset returns the timer to its released state.
func (t *RepeatTimer) Reset() {
	t.holding = false
	t.holdTime = 0
	t.repeatAccum = 0
}
