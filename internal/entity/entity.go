// Package entity holds everything that lives on the playfield: the shared
// Entity base, pooled bullets and items, the player ship, the enemy
// formation, and the boss.
package entity

import (
	"errors"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrNoTarget is returned when an aimed shot is requested without a target.
var ErrNoTarget = errors.New("entity: targeting shot needs a target")

// FrameContext carries per-frame data into Update calls.
type FrameContext struct {
	Frame       uint64
	WorldWidth  int
	WorldHeight int
}

// Entity is the drawable, collidable base shared by every game object.
// Positions and sizes are in world units; (X, Y) is the top-left corner.
type Entity struct {
	X, Y          int
	Width, Height int
	Sprite        SpriteTag
	Color         core.Color
}

// Bounds returns the axis-aligned bounding box at the current position.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Collides reports whether two entities' bounding boxes overlap.
func (e *Entity) Collides(other *Entity) bool {
	return e.Bounds().Intersects(other.Bounds())
}

// CenterX returns the horizontal center.
func (e *Entity) CenterX() int {
	return e.X + e.Width/2
}

// Draw returns the draw request for the entity's current state.
func (e *Entity) Draw() DrawRequest {
	return DrawRequest{
		Sprite: e.Sprite,
		X:      e.X,
		Y:      e.Y,
		Width:  e.Width,
		Height: e.Height,
		Color:  e.Color,
	}
}

// Updater is implemented by every entity advanced once per frame.
// Update mutates only the entity's own position and sprite.
type Updater interface {
	Update(ctx FrameContext)
}

// DrawRequest is one sprite to render this frame, in world units.
type DrawRequest struct {
	Sprite SpriteTag
	X, Y   int
	Width  int
	Height int
	Color  core.Color
}
