package engine

// Cooldown answers "has at least D milliseconds passed since the last reset".
//
// With a non-zero variance every Reset redraws the duration uniformly in
// [base-variance, base+variance]. A cooldown that was never reset is finished.
type Cooldown struct {
	clock    Clock
	rng      Rand
	base     int
	variance int
	duration int
	last     int64
	armed    bool
}

// NewCooldown creates a fixed-duration cooldown.
func NewCooldown(clock Clock, ms int) *Cooldown {
	return &Cooldown{
		clock:    clock,
		base:     ms,
		duration: ms,
	}
}

// NewVariableCooldown creates a cooldown whose duration is redrawn on every
// reset. A nil rng or zero variance behaves like NewCooldown.
func NewVariableCooldown(clock Clock, rng Rand, ms, variance int) *Cooldown {
	c := NewCooldown(clock, ms)
	if rng != nil && variance > 0 {
		c.rng = rng
		c.variance = variance
	}
	return c
}

// Reset starts a new interval at the current time.
func (c *Cooldown) Reset() {
	c.last = c.clock.NowMillis()
	c.armed = true
	if c.variance != 0 {
		c.duration = c.base - c.variance + c.rng.Intn(2*c.variance+1)
	}
}

// IsFinished reports whether the cooldown was never reset or its
// current duration has elapsed.
func (c *Cooldown) IsFinished() bool {
	if !c.armed {
		return true
	}
	return c.clock.NowMillis() >= c.last+int64(c.duration)
}

// Pause shifts the start of the interval forward so a paused stretch of
// pausedMs does not count as elapsed time.
func (c *Cooldown) Pause(pausedMs int64) {
	if !c.armed {
		return
	}
	c.last += pausedMs
}

// ElapsedSeconds returns whole seconds since the last reset.
func (c *Cooldown) ElapsedSeconds() int {
	if !c.armed {
		return 0
	}
	return int((c.clock.NowMillis() - c.last) / 1000)
}

// DurationSeconds returns the current duration in whole seconds.
func (c *Cooldown) DurationSeconds() int {
	return c.duration / 1000
}

// DurationMillis returns the current duration in milliseconds.
func (c *Cooldown) DurationMillis() int {
	return c.duration
}

// RemainingSeconds returns the whole seconds left until the cooldown
// finishes, rounded up. Zero once finished.
func (c *Cooldown) RemainingSeconds() int {
	if c.IsFinished() {
		return 0
	}
	left := c.last + int64(c.duration) - c.clock.NowMillis()
	return int((left + 999) / 1000)
}
