package entity

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
)

// Player ship tuning.
const (
	ShipWidth         = 26
	ShipHeight        = 16
	ShipSpeed         = 2
	ShipFireInterval  = 750
	ShipBulletSpeed   = -6
	ShipDestructionMs = 1000
)

// Ship is the player's ship. While the destruction timer runs the ship is
// shown exploded and ignores input and hits.
type Ship struct {
	Entity
	shooting    *engine.Cooldown
	destruction *engine.Cooldown
}

// NewShip places the player ship with its top-left corner at (x, y).
func NewShip(clock engine.Clock, x, y int) *Ship {
	return &Ship{
		Entity: Entity{
			X:      x,
			Y:      y,
			Width:  ShipWidth,
			Height: ShipHeight,
			Sprite: SpriteShip,
			Color:  core.ColorPlayer,
		},
		shooting:    engine.NewCooldown(clock, ShipFireInterval),
		destruction: engine.NewCooldown(clock, ShipDestructionMs),
	}
}

// MoveLeft moves the ship one step left, stopping at minX.
func (s *Ship) MoveLeft(minX int) {
	if s.X-ShipSpeed < minX {
		return
	}
	s.X -= ShipSpeed
}

// MoveRight moves the ship one step right, stopping at maxX.
func (s *Ship) MoveRight(maxX int) {
	if s.X+s.Width+ShipSpeed > maxX {
		return
	}
	s.X += ShipSpeed
}

// Shoot fires one bullet from the nose if the fire cooldown allows it.
func (s *Ship) Shoot(pool *BulletPool, out []Handle) ([]Handle, bool) {
	if !s.shooting.IsFinished() {
		return out, false
	}
	s.shooting.Reset()
	return append(out, pool.Acquire(s.X+s.Width/2, s.Y, 0, ShipBulletSpeed)), true
}

// Destroy starts the explosion timer.
func (s *Ship) Destroy() {
	s.destruction.Reset()
}

// IsDestroyed reports whether the ship is still exploding.
func (s *Ship) IsDestroyed() bool {
	return !s.destruction.IsFinished()
}

// Update picks the sprite for the current state.
func (s *Ship) Update(FrameContext) {
	if s.IsDestroyed() {
		s.Sprite = SpriteShipDestroyed
	} else {
		s.Sprite = SpriteShip
	}
}

// Cooldowns returns the ship timers so a paused level can shift them.
func (s *Ship) Cooldowns() []*engine.Cooldown {
	return []*engine.Cooldown{s.shooting, s.destruction}
}
