package animation

import "time"

// maxTicksPerAdvance bounds catch-up after a stall (window drag, breakpoint).
const maxTicksPerAdvance = 4

// Clock turns the fixed-rate update loop into ticks at an adjustable interval.
type Clock struct {
	interval time.Duration
	elapsed  time.Duration
}

func NewClock(intervalMillis int) *Clock {
	c := &Clock{}
	c.SetInterval(intervalMillis)
	return c
}

// SetInterval changes the tick interval. Time already accumulated toward the
// next tick is kept but capped at the new interval.
func (c *Clock) SetInterval(intervalMillis int) {
	if intervalMillis < 1 {
		intervalMillis = 1
	}
	c.interval = time.Duration(intervalMillis) * time.Millisecond
	if c.elapsed > c.interval {
		c.elapsed = c.interval
	}
}

func (c *Clock) Interval() time.Duration { return c.interval }

// Advance adds dt and returns how many ticks are due.
func (c *Clock) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	c.elapsed += dt
	n := 0
	for c.elapsed >= c.interval {
		c.elapsed -= c.interval
		n++
		if n == maxTicksPerAdvance {
			c.elapsed = 0
			break
		}
	}
	return n
}

// Reset drops any partial progress toward the next tick.
func (c *Clock) Reset() {
	c.elapsed = 0
}
