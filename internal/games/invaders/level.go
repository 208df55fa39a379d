// Package invaders runs one level of the shooter: the player ship, the
// enemy formation, the boss, falling items, bombs, the ultimate skill and
// the pause menu. It is pure simulation; the platform feeds it one input
// frame per tick and draws the requests it produces.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
	"github.com/vovakirdan/tui-invaders/internal/entity"
	"github.com/vovakirdan/tui-invaders/internal/run"
)

// Level tuning, in world units and milliseconds.
const (
	ShipBottomOffset = 30   // ship Y measured from the bottom of the world
	ShipMinX         = 1    // leftmost ship position
	EndDelayMs       = 1000 // pause between clearing a level and leaving it
	BombRange        = 100  // horizontal reach of a bomb from the ship center

	// One drop in ItemDropOdds kills, one in BonusItemDropOdds on bonus levels.
	ItemDropOdds      = 10
	BonusItemDropOdds = 2

	// Boss attack tiers by remaining health.
	bossAimHealth      = 5 // above: aimed shots
	bossPinwheelHealth = 3 // at or above: pinwheel; below: random spread
)

// Phase is the level's own state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseEnding // cleared, waiting for the screen change
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseEnding:
		return "ending"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Env holds the collaborators a level runs against.
type Env struct {
	Clock       engine.Clock
	Rand        engine.Rand
	Audio       audio.Player
	WorldWidth  int
	WorldHeight int
}

// Level is one level in progress. It works on its own copy of the run
// state; the driver reads it back through Result once the level is done.
type Level struct {
	env      Env
	settings config.GameSettings
	state    run.GameState

	frame    uint64
	phase    Phase
	resumeTo Phase
	pausedAt int64
	signal   run.Signal

	ship      *entity.Ship
	formation *entity.EnemyFormation
	boss      *entity.Boss

	bullets    *entity.BulletPool
	items      *entity.ItemPool
	shots      []entity.Handle
	drops      []entity.Handle
	explosions []*entity.Explosion

	ultimate *engine.Cooldown
	ending   *engine.Cooldown
}

// New builds a level for the given snapshot and settings.
// Missing collaborators fall back to the wall clock, a time-seeded RNG and
// silence.
func New(state run.GameState, settings config.GameSettings, env Env) *Level {
	if env.Clock == nil {
		env.Clock = engine.SystemClock{}
	}
	if env.Rand == nil {
		env.Rand = engine.NewSimpleRNG(env.Clock.NowMillis())
	}
	if env.Audio == nil {
		env.Audio = audio.Nop{}
	}

	l := &Level{
		env:      env,
		settings: settings,
		state:    state,
		bullets:  entity.NewBulletPool(64),
		items:    entity.NewItemPool(8),
		ultimate: engine.NewCooldown(env.Clock, state.SkillCooldowns[0]*1000),
		ending:   engine.NewCooldown(env.Clock, EndDelayMs),
	}
	l.ship = entity.NewShip(env.Clock,
		env.WorldWidth/2-entity.ShipWidth/2,
		env.WorldHeight-ShipBottomOffset)
	l.formation = entity.NewEnemyFormation(env.Clock, env.Rand, entity.FormationSpec{
		Columns:    settings.FormationWidth,
		Rows:       settings.FormationHeight,
		BaseSpeed:  settings.BaseSpeed,
		ShootingMs: settings.ShootingFrequencyMs,
	})
	return l
}

// Step advances the level by one frame and reports whether it is over.
func (l *Level) Step(in core.InputFrame) bool {
	switch l.phase {
	case PhaseDone:
		return true
	case PhasePaused:
		l.stepPaused(in)
		return l.phase == PhaseDone
	}

	if in.Pressed(core.ActionPause) {
		l.pause()
		return false
	}

	l.frame++
	ctx := l.frameContext()

	if l.phase == PhasePlaying {
		l.handleInput(in)
	}

	l.ship.Update(ctx)
	l.formation.Update(ctx)
	if l.boss != nil {
		l.boss.Update(ctx)
	}
	l.updateShots(ctx)
	l.updateDrops(ctx)
	l.updateExplosions()

	if l.phase == PhasePlaying {
		l.enemyFire()
	}
	l.collide()
	l.checkEnd()

	return l.phase == PhaseDone
}

func (l *Level) frameContext() entity.FrameContext {
	return entity.FrameContext{
		Frame:       l.frame,
		WorldWidth:  l.env.WorldWidth,
		WorldHeight: l.env.WorldHeight,
	}
}

func (l *Level) handleInput(in core.InputFrame) {
	if l.ship.IsDestroyed() {
		return
	}

	if in.Down(core.ActionLeft) {
		l.ship.MoveLeft(ShipMinX)
	}
	if in.Down(core.ActionRight) {
		l.ship.MoveRight(l.env.WorldWidth - 1)
	}
	if in.Down(core.ActionFire) {
		var fired bool
		if l.shots, fired = l.ship.Shoot(l.bullets, l.shots); fired {
			l.state.BulletsShot++
			l.env.Audio.Play(audio.EffectShoot)
		}
	}
	if in.Pressed(core.ActionBomb) {
		l.bomb()
	}
	if in.Pressed(core.ActionUltimate) {
		l.useUltimate()
	}
}

// enemyFire lets the formation and the boss shoot. The boss picks its
// attack from its remaining health.
func (l *Level) enemyFire() {
	l.shots = l.formation.Shoot(l.bullets, l.shots)

	if l.boss == nil || l.boss.IsDestroyed() {
		return
	}
	switch h := l.boss.Health(); {
	case h > bossAimHealth:
		if shots, err := l.boss.TargetingShoot(l.bullets, l.shots, &l.ship.Entity); err == nil {
			l.shots = shots
		}
	case h >= bossPinwheelHealth:
		l.shots = l.boss.PinwheelShoot(l.bullets, l.shots)
	default:
		l.shots = l.boss.RandomShoot(l.bullets, l.shots)
	}
}

// checkEnd moves the level on: no lives ends it at once, an empty
// formation brings in the boss on boss levels, and a cleared field starts
// the end delay.
func (l *Level) checkEnd() {
	if l.state.LivesRemaining <= 0 {
		l.phase = PhaseDone
		return
	}

	switch l.phase {
	case PhasePlaying:
		if !l.formation.IsEmpty() {
			return
		}
		if l.settings.Boss && l.boss == nil {
			l.boss = entity.NewBoss(l.env.Clock, l.env.Rand)
			return
		}
		if l.boss == nil || l.boss.IsDestroyed() {
			l.phase = PhaseEnding
			l.ending.Reset()
		}
	case PhaseEnding:
		if l.ending.IsFinished() {
			l.phase = PhaseDone
		}
	}
}

func (l *Level) pause() {
	l.resumeTo = l.phase
	l.phase = PhasePaused
	l.pausedAt = l.env.Clock.NowMillis()
}

func (l *Level) stepPaused(in core.InputFrame) {
	switch {
	case in.Pressed(core.ActionPause):
		l.resume()
	case in.Pressed(core.ActionBack):
		l.finish(run.SignalReturnToMain)
	case in.Pressed(core.ActionRestart):
		l.finish(run.SignalRestartLevel)
	}
}

// resume shifts every timer by the paused stretch.
func (l *Level) resume() {
	paused := l.env.Clock.NowMillis() - l.pausedAt
	for _, c := range l.cooldowns() {
		c.Pause(paused)
	}
	l.phase = l.resumeTo
}

func (l *Level) finish(sig run.Signal) {
	l.signal = sig
	l.phase = PhaseDone
}

func (l *Level) cooldowns() []*engine.Cooldown {
	cds := []*engine.Cooldown{l.ultimate, l.ending}
	cds = append(cds, l.ship.Cooldowns()...)
	cds = append(cds, l.formation.Cooldowns()...)
	if l.boss != nil {
		cds = append(cds, l.boss.Cooldowns()...)
	}
	for _, e := range l.explosions {
		cds = append(cds, e.Cooldown())
	}
	return cds
}

// Result returns the level's final snapshot and the signal it raised.
func (l *Level) Result() run.LevelResult {
	return run.LevelResult{State: l.state, Signal: l.signal}
}

// State returns the level's working copy of the run state.
func (l *Level) State() run.GameState {
	return l.state
}

// Phase returns the current phase.
func (l *Level) Phase() Phase {
	return l.phase
}

// Frame returns the number of simulated frames.
func (l *Level) Frame() uint64 {
	return l.frame
}

// Settings returns the level tuning.
func (l *Level) Settings() config.GameSettings {
	return l.settings
}

// World returns the world size in world units.
func (l *Level) World() (width, height int) {
	return l.env.WorldWidth, l.env.WorldHeight
}

// EnemiesLeft returns the number of formation ships still alive.
func (l *Level) EnemiesLeft() int {
	return l.formation.Alive()
}

// BossHealth returns the boss's health; ok is false before the boss appears.
func (l *Level) BossHealth() (health int, ok bool) {
	if l.boss == nil {
		return 0, false
	}
	return l.boss.Health(), true
}

// UltimateRemaining returns the seconds until the ultimate is ready.
func (l *Level) UltimateRemaining() int {
	return l.ultimate.RemainingSeconds()
}

// Ship returns the player ship.
func (l *Level) Ship() *entity.Ship {
	return l.ship
}

// Draw appends this frame's draw requests, back to front.
func (l *Level) Draw(out []entity.DrawRequest) []entity.DrawRequest {
	out = l.formation.Draw(out)
	if l.boss != nil {
		out = append(out, l.boss.Draw())
	}
	for _, e := range l.explosions {
		out = append(out, e.Draw())
	}
	for _, h := range l.drops {
		if it := l.items.Get(h); it != nil {
			out = append(out, it.Draw())
		}
	}
	for _, h := range l.shots {
		if b := l.bullets.Get(h); b != nil {
			out = append(out, b.Draw())
		}
	}
	return append(out, l.ship.Draw())
}
