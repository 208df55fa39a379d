package entity

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
)

// ExplosionMs is how long an explosion stays on screen.
const ExplosionMs = 300

// Explosion is a short-lived cosmetic left where an enemy died.
type Explosion struct {
	Entity
	life *engine.Cooldown
}

// NewExplosion covers the given entity's box with an explosion.
func NewExplosion(clock engine.Clock, at Entity) *Explosion {
	e := &Explosion{
		Entity: Entity{
			X:      at.X,
			Y:      at.Y,
			Width:  at.Width,
			Height: at.Height,
			Sprite: SpriteExplosion,
			Color:  core.ColorExplosion,
		},
		life: engine.NewCooldown(clock, ExplosionMs),
	}
	e.life.Reset()
	return e
}

// Done reports whether the explosion should be removed.
func (e *Explosion) Done() bool {
	return e.life.IsFinished()
}

// Cooldown returns the lifetime timer.
func (e *Explosion) Cooldown() *engine.Cooldown {
	return e.life
}
