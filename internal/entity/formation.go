package entity

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
)

// Formation tuning.
const (
	EnemyWidth            = 24
	EnemyHeight           = 16
	FormationStartX       = 20
	FormationStartY       = 100
	FormationSeparation   = 40
	FormationSideMargin   = 20
	FormationBottomMargin = 80
	FormationXSpeed       = 8
	FormationYSpeed       = 4
	FormationDescent      = 20
	FormationMinSpeed     = 10
	EnemyAnimInterval     = 500
	EnemyBulletSpeed      = 4

	// EnemyShotVariance is the shot interval jitter in percent.
	EnemyShotVariance = 10
)

// EnemyKind selects the look and value of a formation ship. C sits on
// the top rows and is worth the most.
type EnemyKind int

const (
	EnemyA EnemyKind = iota
	EnemyB
	EnemyC
)

// Points returns the score for destroying an enemy of this kind.
func (k EnemyKind) Points() int {
	switch k {
	case EnemyC:
		return 30
	case EnemyB:
		return 20
	default:
		return 10
	}
}

func (k EnemyKind) sprite() (SpriteTag, core.Color) {
	switch k {
	case EnemyC:
		return SpriteEnemyC1, core.ColorEnemyC
	case EnemyB:
		return SpriteEnemyB1, core.ColorEnemyB
	default:
		return SpriteEnemyA1, core.ColorEnemyA
	}
}

// EnemyShip is one member of the formation.
type EnemyShip struct {
	Entity
	Kind EnemyKind
}

// FormationSpec sizes and paces a formation.
type FormationSpec struct {
	Columns    int
	Rows       int
	BaseSpeed  int // frames between steps with the full formation alive
	ShootingMs int
}

type sweep int

const (
	sweepRight sweep = iota
	sweepLeft
	sweepDown
)

// EnemyFormation moves a grid of enemies as one block: sideways sweeps,
// a short descent at each side, faster as ships die. A random ship from
// the bottom of a column fires whenever the shot cooldown allows.
type EnemyFormation struct {
	columns [][]*EnemyShip
	total   int
	alive   int

	baseSpeed  int
	moveSpeed  int
	moveFrames int
	dir        sweep
	prevDir    sweep
	descended  int

	animation *engine.Cooldown
	shooting  *engine.Cooldown
	rng       engine.Rand
}

// NewEnemyFormation lays out spec.Columns x spec.Rows ships. The top fifth
// of the rows are kind C, the next two fifths B, the rest A.
func NewEnemyFormation(clock engine.Clock, rng engine.Rand, spec FormationSpec) *EnemyFormation {
	variance := spec.ShootingMs * EnemyShotVariance / 100
	f := &EnemyFormation{
		columns:   make([][]*EnemyShip, spec.Columns),
		baseSpeed: spec.BaseSpeed,
		dir:       sweepRight,
		prevDir:   sweepRight,
		animation: engine.NewCooldown(clock, EnemyAnimInterval),
		shooting:  engine.NewVariableCooldown(clock, rng, spec.ShootingMs, variance),
		rng:       rng,
	}

	for c := range f.columns {
		for r := 0; r < spec.Rows; r++ {
			kind := EnemyA
			switch share := float64(r) / float64(spec.Rows); {
			case share < 0.2:
				kind = EnemyC
			case share < 0.6:
				kind = EnemyB
			}
			sprite, color := kind.sprite()
			f.columns[c] = append(f.columns[c], &EnemyShip{
				Entity: Entity{
					X:      FormationStartX + c*FormationSeparation,
					Y:      FormationStartY + r*FormationSeparation,
					Width:  EnemyWidth,
					Height: EnemyHeight,
					Sprite: sprite,
					Color:  color,
				},
				Kind: kind,
			})
		}
	}
	f.total = spec.Columns * spec.Rows
	f.alive = f.total
	f.updateSpeed()
	f.shooting.Reset()
	return f
}

// Alive returns the number of ships left.
func (f *EnemyFormation) Alive() int {
	return f.alive
}

// IsEmpty reports whether every ship was destroyed.
func (f *EnemyFormation) IsEmpty() bool {
	return f.alive == 0
}

// Each calls fn for every living ship, column by column.
func (f *EnemyFormation) Each(fn func(*EnemyShip)) {
	for _, col := range f.columns {
		for _, s := range col {
			fn(s)
		}
	}
}

// Cooldowns returns the formation timers so a paused level can shift them.
func (f *EnemyFormation) Cooldowns() []*engine.Cooldown {
	return []*engine.Cooldown{f.animation, f.shooting}
}

// Update animates the formation and steps it every moveSpeed frames.
func (f *EnemyFormation) Update(ctx FrameContext) {
	if f.alive == 0 {
		return
	}

	if f.animation.IsFinished() {
		f.animation.Reset()
		f.Each(func(s *EnemyShip) { s.Sprite = NextFrame(s.Sprite) })
	}

	f.moveFrames++
	if f.moveFrames < f.moveSpeed {
		return
	}
	f.moveFrames = 0

	box := f.bounds()
	atBottom := box.Bottom() > ctx.WorldHeight-FormationBottomMargin
	atRight := box.Right() >= ctx.WorldWidth-FormationSideMargin
	atLeft := box.X <= FormationSideMargin

	switch f.dir {
	case sweepDown:
		if f.descended >= FormationDescent {
			f.descended = 0
			if f.prevDir == sweepRight {
				f.dir = sweepLeft
			} else {
				f.dir = sweepRight
			}
		}
	case sweepLeft:
		if atLeft {
			if atBottom {
				f.dir = sweepRight
			} else {
				f.prevDir, f.dir = sweepLeft, sweepDown
			}
		}
	case sweepRight:
		if atRight {
			if atBottom {
				f.dir = sweepLeft
			} else {
				f.prevDir, f.dir = sweepRight, sweepDown
			}
		}
	}

	dx, dy := 0, 0
	switch f.dir {
	case sweepRight:
		dx = FormationXSpeed
	case sweepLeft:
		dx = -FormationXSpeed
	case sweepDown:
		dy = FormationYSpeed
		f.descended += FormationYSpeed
	}
	f.Each(func(s *EnemyShip) {
		s.X += dx
		s.Y += dy
	})
}

// Shoot fires from a random bottom ship when the shot cooldown allows it.
func (f *EnemyFormation) Shoot(pool *BulletPool, out []Handle) []Handle {
	if f.alive == 0 || !f.shooting.IsFinished() {
		return out
	}
	f.shooting.Reset()

	shooters := make([]*EnemyShip, 0, len(f.columns))
	for _, col := range f.columns {
		if n := len(col); n > 0 {
			shooters = append(shooters, col[n-1])
		}
	}
	s := shooters[f.rng.Intn(len(shooters))]
	return append(out, pool.Acquire(s.X+s.Width/2, s.Y, 0, EnemyBulletSpeed))
}

// Destroy removes a ship from the formation and returns its points.
// Ships not in the formation are worth nothing.
func (f *EnemyFormation) Destroy(target *EnemyShip) int {
	for c, col := range f.columns {
		for r, s := range col {
			if s != target {
				continue
			}
			f.columns[c] = append(col[:r], col[r+1:]...)
			f.alive--
			f.updateSpeed()
			return s.Kind.Points()
		}
	}
	return 0
}

// Draw appends a draw request per living ship.
func (f *EnemyFormation) Draw(out []DrawRequest) []DrawRequest {
	f.Each(func(s *EnemyShip) { out = append(out, s.Draw()) })
	return out
}

// updateSpeed slows the step interval quadratically with the share of
// ships still alive.
func (f *EnemyFormation) updateSpeed() {
	if f.total == 0 {
		f.moveSpeed = FormationMinSpeed
		return
	}
	share := float64(f.alive) / float64(f.total)
	f.moveSpeed = int(share*share*float64(f.baseSpeed)) + FormationMinSpeed
}

func (f *EnemyFormation) bounds() core.Rect {
	first := true
	var minX, minY, maxX, maxY int
	f.Each(func(s *EnemyShip) {
		if first {
			minX, minY = s.X, s.Y
			maxX, maxY = s.X+s.Width, s.Y+s.Height
			first = false
			return
		}
		minX = min(minX, s.X)
		minY = min(minY, s.Y)
		maxX = max(maxX, s.X+s.Width)
		maxY = max(maxY, s.Y+s.Height)
	})
	return core.NewRect(minX, minY, maxX-minX, maxY-minY)
}
