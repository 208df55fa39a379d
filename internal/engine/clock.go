package engine

import "time"

// Clock reports the current time in milliseconds.
type Clock interface {
	NowMillis() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// NowMillis returns milliseconds since the Unix epoch.
func (SystemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ManualClock is a Clock advanced explicitly. Used by tests and replays.
type ManualClock struct {
	now int64
}

// NewManualClock creates a clock starting at the given millisecond.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// NowMillis returns the current manual time.
func (c *ManualClock) NowMillis() int64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}

// Set jumps the clock to an absolute millisecond.
func (c *ManualClock) Set(ms int64) {
	c.now = ms
}
