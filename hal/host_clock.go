package hal

import "time"

// hostClock measures wall time between steps, or steps by exactly 1/fixedHz
// seconds when fixedHz is positive.
type hostClock struct {
	now     func() time.Time
	fixedHz int

	last    time.Time
	delta   float64
	elapsed float64
	steps   uint64
}

func newHostClock(now func() time.Time, fixedHz int) *hostClock {
	if now == nil {
		now = time.Now
	}
	return &hostClock{now: now, fixedHz: fixedHz}
}

func (c *hostClock) Delta() float64   { return c.delta }
func (c *hostClock) Elapsed() float64 { return c.elapsed }
func (c *hostClock) Steps() uint64    { return c.steps }

func (c *hostClock) step() {
	c.steps++
	if c.fixedHz > 0 {
		c.delta = 1 / float64(c.fixedHz)
		c.elapsed = float64(c.steps) / float64(c.fixedHz)
		return
	}

	now := c.now()
	if c.last.IsZero() {
		c.last = now
		c.delta = 0
		return
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		d = 0
	}
	c.delta = d.Seconds()
	c.elapsed += c.delta
}
