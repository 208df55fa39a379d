package engine

import "testing"

func TestCooldownNeverResetIsFinished(t *testing.T) {
	clock := NewManualClock(0)
	c := NewCooldown(clock, 500)

	if !c.IsFinished() {
		t.Error("a cooldown that was never reset should be finished")
	}
	if c.ElapsedSeconds() != 0 {
		t.Errorf("ElapsedSeconds() = %d before reset, expected 0", c.ElapsedSeconds())
	}
}

func TestCooldownFixedDuration(t *testing.T) {
	// Start at zero on purpose: a reset at timestamp 0 still counts as a reset.
	clock := NewManualClock(0)
	c := NewCooldown(clock, 500)
	c.Reset()

	if c.IsFinished() {
		t.Fatal("cooldown should not be finished right after Reset")
	}

	clock.Advance(499)
	if c.IsFinished() {
		t.Error("cooldown finished 1ms early")
	}

	clock.Advance(1)
	if !c.IsFinished() {
		t.Error("cooldown should be finished once elapsed == duration")
	}

	c.Reset()
	if c.IsFinished() {
		t.Error("Reset should start a new interval")
	}
}

func TestCooldownVarianceStaysInRange(t *testing.T) {
	clock := NewManualClock(1000)
	rng := NewSimpleRNG(42)
	c := NewVariableCooldown(clock, rng, 1000, 100)

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		c.Reset()
		d := c.DurationMillis()
		if d < 900 || d > 1100 {
			t.Fatalf("reset %d: duration %d outside [900, 1100]", i, d)
		}
		seen[d] = true
	}
	if len(seen) < 50 {
		t.Errorf("only %d distinct durations drawn, expected jitter", len(seen))
	}
}

func TestCooldownZeroVarianceIsFixed(t *testing.T) {
	clock := NewManualClock(0)
	c := NewVariableCooldown(clock, NewSimpleRNG(1), 750, 0)
	for i := 0; i < 10; i++ {
		c.Reset()
		if c.DurationMillis() != 750 {
			t.Fatalf("DurationMillis() = %d, expected 750", c.DurationMillis())
		}
	}
}

func TestCooldownPause(t *testing.T) {
	clock := NewManualClock(10_000)
	c := NewCooldown(clock, 1000)
	c.Reset()

	clock.Advance(600) // 600ms of play
	clock.Advance(5000)
	c.Pause(5000) // 5s paused

	if c.IsFinished() {
		t.Error("paused time must not count toward the cooldown")
	}
	if c.ElapsedSeconds() != 0 {
		t.Errorf("ElapsedSeconds() = %d, expected 0", c.ElapsedSeconds())
	}

	clock.Advance(400)
	if !c.IsFinished() {
		t.Error("cooldown should finish after 1000ms of unpaused time")
	}
}

func TestCooldownSecondsAccessors(t *testing.T) {
	clock := NewManualClock(0)
	c := NewCooldown(clock, 15_000)
	c.Reset()
	clock.Advance(3_500)

	if got := c.ElapsedSeconds(); got != 3 {
		t.Errorf("ElapsedSeconds() = %d, expected 3", got)
	}
	if got := c.DurationSeconds(); got != 15 {
		t.Errorf("DurationSeconds() = %d, expected 15", got)
	}
	if got := c.RemainingSeconds(); got != 12 {
		t.Errorf("RemainingSeconds() = %d, expected 12", got)
	}

	clock.Advance(20_000)
	if got := c.RemainingSeconds(); got != 0 {
		t.Errorf("RemainingSeconds() = %d after finishing, expected 0", got)
	}
}
