package entity

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
)

// Boss tuning, in world units, frames and milliseconds.
const (
	BossHealth        = 10
	BossPoints        = 300
	BossSize          = 100
	BossStartX        = 265
	BossStartY        = 200
	BossSideMargin    = 20
	BossBottomMargin  = 450
	BossTopMargin     = 150
	BossXSpeed        = 2
	BossYSpeed        = 1
	BossBulletSpeed   = 4
	BossShootInterval = 1200
	BossAnimInterval  = 500
	BossTurnFrames    = 50
)

// Direction is one of the eight patrol headings.
type Direction int

const (
	DirRight Direction = iota
	DirRightDown
	DirRightUp
	DirLeft
	DirLeftDown
	DirLeftUp
	DirDown
	DirUp
)

// Delta returns the per-axis signs of the heading.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirRightDown:
		return 1, 1
	case DirRightUp:
		return 1, -1
	case DirLeft:
		return -1, 0
	case DirLeftDown:
		return -1, 1
	case DirLeftUp:
		return -1, -1
	case DirDown:
		return 0, 1
	default:
		return 0, -1
	}
}

// turnTable maps a uniform draw in [0, 8) to a heading.
var turnTable = [8]Direction{
	DirLeftDown, DirRightDown, DirRightUp, DirLeft,
	DirRight, DirLeftUp, DirUp, DirDown,
}

// spreadSpeeds are the horizontal speeds the random volley samples from.
// Draws index only the first 8 entries.
var spreadSpeeds = [...]int{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5}

const (
	spreadDraws  = 8
	spreadVolley = 7
)

// Boss is the multi-phase enemy: a random-walk patrol, a four-frame
// animation, health-tier sprites and three cooldown-gated attacks.
type Boss struct {
	Entity

	health     int
	destroyed  bool
	direction  Direction
	moveFrames int
	started    bool

	animation *engine.Cooldown
	shooting  *engine.Cooldown
	rng       engine.Rand
}

// NewBoss creates a boss at its start position heading up.
func NewBoss(clock engine.Clock, rng engine.Rand) *Boss {
	return &Boss{
		Entity: Entity{
			X:      BossStartX,
			Y:      BossStartY,
			Width:  BossSize,
			Height: BossSize,
			Sprite: SpriteBoss1,
			Color:  core.ColorBoss,
		},
		health:    BossHealth,
		direction: DirUp,
		animation: engine.NewCooldown(clock, BossAnimInterval),
		shooting:  engine.NewCooldown(clock, BossShootInterval),
		rng:       rng,
	}
}

// Health returns the remaining hit points.
func (b *Boss) Health() int {
	return b.health
}

// IsDestroyed reports whether health reached zero.
func (b *Boss) IsDestroyed() bool {
	return b.destroyed
}

// PointValue returns the score for destroying the boss.
func (b *Boss) PointValue() int {
	return BossPoints
}

// Heading returns the current patrol direction.
func (b *Boss) Heading() Direction {
	return b.direction
}

// Cooldowns returns the boss timers so a paused level can shift them.
func (b *Boss) Cooldowns() []*engine.Cooldown {
	return []*engine.Cooldown{b.animation, b.shooting}
}

// Update runs one frame: animation, patrol turn, displacement and the
// edge nudge. A destroyed boss is frozen.
func (b *Boss) Update(ctx FrameContext) {
	if b.destroyed {
		return
	}

	if b.animation.IsFinished() {
		b.animation.Reset()
		b.Sprite = NextFrame(b.Sprite)
	}

	// The first volley waits one full interval after the boss appears.
	if !b.started {
		b.started = true
		b.shooting.Reset()
	}

	b.moveFrames++
	if b.moveFrames >= BossTurnFrames {
		b.moveFrames = 0
		b.direction = turnTable[b.rng.Intn(len(turnTable))]
	}

	dx, dy := b.direction.Delta()
	b.X += dx * BossXSpeed
	b.Y += dy * BossYSpeed

	// Nudge back by one speed step per side; never snap to the edge.
	if b.Y+b.Height >= ctx.WorldHeight-BossBottomMargin {
		b.Y -= BossYSpeed
	}
	if b.Y <= BossTopMargin {
		b.Y += BossYSpeed
	}
	if b.X+b.Width >= ctx.WorldWidth-BossSideMargin {
		b.X -= BossXSpeed
	}
	if b.X <= BossSideMargin {
		b.X += BossXSpeed
	}
}

// Destroy takes one hit point. Health-tier sprites apply at 5, 2 and 0;
// at 0 the boss is destroyed and further hits are ignored.
func (b *Boss) Destroy() {
	if b.destroyed {
		return
	}
	b.health--
	if tag, ok := TierFor(b.health); ok {
		b.Sprite = tag
	}
	if b.health == 0 {
		b.destroyed = true
	}
}

// ready consumes the shooting gate.
func (b *Boss) ready() bool {
	if b.destroyed || !b.shooting.IsFinished() {
		return false
	}
	b.shooting.Reset()
	return true
}

// TargetingShoot fires one bullet roughly aimed at target and appends its
// handle to out. Far targets get a larger divisor so the bullet speed stays
// bounded.
func (b *Boss) TargetingShoot(pool *BulletPool, out []Handle, target *Entity) ([]Handle, error) {
	if target == nil {
		return out, ErrNoTarget
	}
	if !b.ready() {
		return out, nil
	}

	difX := target.X + target.Width/2 - b.X - b.Width/2
	difY := target.Y - b.Y
	div := 200
	if difX > 200 {
		div = int(float64(difX) * 0.95)
	} else if difX < -200 {
		div = int(float64(difX) * -0.95)
	}

	h := pool.Acquire(b.X+b.Width/2, b.Y, difX*BossBulletSpeed/div, difY*BossBulletSpeed/div)
	return append(out, h), nil
}

// PinwheelShoot fires a radial burst: three speed rings times nine angles
// from 30 to 150 degrees.
func (b *Boss) PinwheelShoot(pool *BulletPool, out []Handle) []Handle {
	if !b.ready() {
		return out
	}

	x := b.X + 40 + b.Width/2 + BossXSpeed
	y := b.Y + b.Height/2
	for ring := 0; ring >= -2; ring-- {
		speed := float64(BossBulletSpeed + ring)
		for deg := 30; deg <= 150; deg += 15 {
			rad := float64(deg) * math.Pi / 180
			out = append(out, pool.Acquire(x, y, roundHalfUp(speed*math.Cos(rad)), roundHalfUp(speed*math.Sin(rad))))
		}
	}
	return out
}

// RandomShoot fires seven falling bullets with distinct horizontal speeds.
func (b *Boss) RandomShoot(pool *BulletPool, out []Handle) []Handle {
	if !b.ready() {
		return out
	}

	var picked [spreadDraws]bool
	speeds := make([]int, 0, spreadVolley)
	for len(speeds) < spreadVolley {
		i := b.rng.Intn(spreadDraws)
		if picked[i] {
			continue
		}
		picked[i] = true
		speeds = append(speeds, spreadSpeeds[i])
	}
	slices.Sort(speeds)

	x := b.X + 40 + b.Width/2
	y := b.Y + b.Height/2
	for _, vx := range speeds {
		out = append(out, pool.Acquire(x, y, vx, BossBulletSpeed))
	}
	return out
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
