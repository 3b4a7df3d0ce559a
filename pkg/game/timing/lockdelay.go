package timing

import "time"

const (
	// LockDelay is the grace period after a piece can no longer fall
	// before it settles.
	LockDelay = 500 * time.Millisecond

	// MaxLockResets bounds how often movement may restart the grace
	// period for one piece, so the piece can be maneuvered at the last
	// moment but not stalled indefinitely.
	MaxLockResets = 15
)

// LockDelayController times one piece's settling. Reset it on every spawn.
type LockDelayController struct {
	timer      time.Duration
	resetCount int
}

// Update advances the controller by dt and reports whether the piece must
// lock. A move this tick restarts the timer while resets remain; otherwise
// the timer accumulates and locking is reported once it reaches LockDelay.
func (l *LockDelayController) Update(dt time.Duration, pieceMoved bool) bool {
	if pieceMoved && l.resetCount < MaxLockResets {
		l.timer = 0
		l.resetCount++
		return false
	}
	l.timer += dt
	return l.timer >= LockDelay
}

// Resets returns how many times movement has restarted the timer.
func (l *LockDelayController) Resets() int {
	return l.resetCount
}

// Reset clears the timer and the reset budget for a newly spawned piece.
func (l *LockDelayController) Reset() {
	l.timer = 0
	l.resetCount = 0
}
