package entity

import "github.com/vovakirdan/tui-invaders/internal/core"

// Bullet size in world units.
const (
	BulletWidth  = 6
	BulletHeight = 10
)

// Bullet is a pooled projectile moving by a fixed velocity every frame.
type Bullet struct {
	Entity
	VX, VY int
}

// Update advances the bullet by its velocity.
func (b *Bullet) Update(FrameContext) {
	b.X += b.VX
	b.Y += b.VY
}

// Friendly reports whether the bullet was fired upward by the player.
func (b *Bullet) Friendly() bool {
	return b.VY < 0
}

// OffField reports whether the bullet left the world.
func (b *Bullet) OffField(ctx FrameContext) bool {
	return b.Y+b.Height < 0 || b.Y > ctx.WorldHeight ||
		b.X+b.Width < 0 || b.X > ctx.WorldWidth
}

// BulletPool recycles bullets to avoid per-shot allocation.
type BulletPool struct {
	*Pool[Bullet]
}

// NewBulletPool creates an empty bullet pool.
func NewBulletPool(capacity int) *BulletPool {
	return &BulletPool{Pool: NewPool[Bullet](capacity)}
}

// Acquire hands out a bullet initialized at (x, y) with the given velocity.
// Upward bullets belong to the player.
func (p *BulletPool) Acquire(x, y, vx, vy int) Handle {
	h, b := p.Alloc()
	sprite, color := SpriteEnemyBullet, core.ColorEnemyShot
	if vy < 0 {
		sprite, color = SpriteBullet, core.ColorPlayerShot
	}
	*b = Bullet{
		Entity: Entity{
			X:      x,
			Y:      y,
			Width:  BulletWidth,
			Height: BulletHeight,
			Sprite: sprite,
			Color:  color,
		},
		VX: vx,
		VY: vy,
	}
	return h
}
