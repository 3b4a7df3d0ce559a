// Package timing provides the frame-rate independent timing pieces of the
// simulation: the fixed-timestep clock and the per-piece lock delay.
package timing

import "time"

// maxTicksPerUpdate bounds the catch-up work in a single Update call so a
// long host stall cannot wedge the frame loop; excess simulation time is
// dropped.
const maxTicksPerUpdate = 8

// Clock accumulates variable host frame time and releases it in fixed
// simulation steps, so a deterministic input sequence yields a
// deterministic simulation regardless of the host's frame rate.
type Clock struct {
	interval    time.Duration
	accumulator time.Duration
}

// NewClock creates a clock that ticks every interval of simulated time.
func NewClock(interval time.Duration) Clock {
	if interval <= 0 {
		panic("timing: clock interval must be positive")
	}
	return Clock{interval: interval}
}

// Interval returns the fixed simulation step.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Update adds real elapsed time and invokes tick once per elapsed fixed
// step. Non-blocking; iteration is bounded per call.
func (c *Clock) Update(dt time.Duration, tick func()) {
	c.accumulator += dt
	for i := 0; c.accumulator >= c.interval; i++ {
		if i >= maxTicksPerUpdate {
			c.accumulator = 0
			return
		}
		tick()
		c.accumulator -= c.interval
	}
}

// Reset discards any accumulated time.
func (c *Clock) Reset() {
	c.accumulator = 0
}
