package timing

import (
	"testing"
	"time"
)

func TestClockTicksAtFixedStep(t *testing.T) {
	c := NewClock(16 * time.Millisecond)
	ticks := 0
	tick := func() { ticks++ }

	c.Update(8*time.Millisecond, tick)
	if ticks != 0 {
		t.Fatalf("ticked %d times before a full step accumulated", ticks)
	}

	c.Update(8*time.Millisecond, tick)
	if ticks != 1 {
		t.Fatalf("got %d ticks after exactly one step, want 1", ticks)
	}

	// A large frame releases several steps and banks the remainder.
	c.Update(50*time.Millisecond, tick)
	if ticks != 4 {
		t.Fatalf("got %d ticks, want 4", ticks)
	}
	c.Update(14*time.Millisecond, tick)
	if ticks != 5 {
		t.Fatalf("remainder not carried: got %d ticks, want 5", ticks)
	}
}

func TestClockBoundsCatchUp(t *testing.T) {
	c := NewClock(time.Millisecond)
	ticks := 0
	c.Update(10*time.Second, func() { ticks++ })
	if ticks > 8 {
		t.Errorf("a host stall ran %d catch-up ticks", ticks)
	}
}

func TestClockDeterministicForSplitFrames(t *testing.T) {
	a := NewClock(16 * time.Millisecond)
	b := NewClock(16 * time.Millisecond)
	aTicks, bTicks := 0, 0

	// The same total time in different frame sizes yields the same ticks.
	for i := 0; i < 100; i++ {
		a.Update(10*time.Millisecond, func() { aTicks++ })
	}
	for i := 0; i < 40; i++ {
		b.Update(25*time.Millisecond, func() { bTicks++ })
	}
	if aTicks != bTicks {
		t.Errorf("frame-size dependent: %d vs %d ticks for the same total time", aTicks, bTicks)
	}
}

func TestLockDelayNeverLocksEarly(t *testing.T) {
	var l LockDelayController
	elapsed := time.Duration(0)
	for elapsed+16*time.Millisecond < LockDelay {
		if l.Update(16*time.Millisecond, false) {
			t.Fatalf("locked at %v, before %v of continuous non-movement", elapsed, LockDelay)
		}
		elapsed += 16 * time.Millisecond
	}
	if !l.Update(LockDelay, false) {
		t.Error("did not lock after the full delay elapsed")
	}
}

func TestLockDelayMovementRestartsTimer(t *testing.T) {
	var l LockDelayController
	l.Update(400*time.Millisecond, false)
	if l.Update(200*time.Millisecond, true) {
		t.Fatal("a move inside the reset budget must not lock")
	}
	if l.Update(400*time.Millisecond, false) {
		t.Error("timer was not restarted by the move")
	}
}

func TestLockDelayResetCap(t *testing.T) {
	var l LockDelayController

	// Movement can restart the timer at most MaxLockResets times.
	for i := 0; i < MaxLockResets; i++ {
		if l.Update(499*time.Millisecond, true) {
			t.Fatalf("locked during reset %d", i)
		}
	}
	if l.Resets() != MaxLockResets {
		t.Fatalf("counted %d resets, want %d", l.Resets(), MaxLockResets)
	}

	// With the budget exhausted, movement no longer delays the lock.
	if !l.Update(LockDelay, true) {
		t.Error("movement past the reset cap kept stalling the lock")
	}
}

func TestLockDelayResetOnSpawn(t *testing.T) {
	var l LockDelayController
	for i := 0; i < MaxLockResets; i++ {
		l.Update(time.Millisecond, true)
	}
	l.Reset()
	if l.Resets() != 0 {
		t.Error("spawn reset did not clear the reset count")
	}
	if l.Update(16*time.Millisecond, false) {
		t.Error("spawn reset did not clear the timer")
	}
}
