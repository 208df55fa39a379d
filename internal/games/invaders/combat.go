package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// updateShots moves every live bullet and releases the ones that left the
// world.
func (l *Level) updateShots(ctx entity.FrameContext) {
	live := l.shots[:0]
	for _, h := range l.shots {
		b := l.bullets.Get(h)
		if b == nil {
			continue
		}
		b.Update(ctx)
		if b.OffField(ctx) {
			l.bullets.Release(h)
			continue
		}
		live = append(live, h)
	}
	l.shots = live
}

// updateDrops moves falling items and releases the ones below the world.
func (l *Level) updateDrops(ctx entity.FrameContext) {
	live := l.drops[:0]
	for _, h := range l.drops {
		it := l.items.Get(h)
		if it == nil {
			continue
		}
		it.Update(ctx)
		if it.Y > ctx.WorldHeight {
			l.items.Release(h)
			continue
		}
		live = append(live, h)
	}
	l.drops = live
}

func (l *Level) updateExplosions() {
	live := l.explosions[:0]
	for _, e := range l.explosions {
		if !e.Done() {
			live = append(live, e)
		}
	}
	clear(l.explosions[len(live):])
	l.explosions = live
}

// collide resolves bullet hits and item pickups for this frame.
func (l *Level) collide() {
	live := l.shots[:0]
	for _, h := range l.shots {
		if l.hit(l.bullets.Get(h)) {
			l.bullets.Release(h)
			continue
		}
		live = append(live, h)
	}
	l.shots = live

	kept := l.drops[:0]
	for _, h := range l.drops {
		it := l.items.Get(h)
		if !l.ship.IsDestroyed() && it.Collides(&l.ship.Entity) {
			l.state.Score += it.PointValue()
			l.env.Audio.Play(audio.EffectItem)
			l.items.Release(h)
			continue
		}
		kept = append(kept, h)
	}
	l.drops = kept
}

// hit applies a bullet to whatever it touches and reports whether the
// bullet was spent. Enemy bullets only hit the ship; player bullets hit
// formation ships first, then the boss.
func (l *Level) hit(b *entity.Bullet) bool {
	if !b.Friendly() {
		if l.ship.IsDestroyed() || !b.Collides(&l.ship.Entity) {
			return false
		}
		l.ship.Destroy()
		l.state.LivesRemaining--
		l.env.Audio.Play(audio.EffectShipHit)
		return true
	}

	if target := l.enemyAt(&b.Entity); target != nil {
		l.destroyEnemy(target)
		return true
	}
	if l.bossAlive() && b.Collides(&l.boss.Entity) {
		l.hitBoss()
		return true
	}
	return false
}

func (l *Level) enemyAt(e *entity.Entity) *entity.EnemyShip {
	var found *entity.EnemyShip
	l.formation.Each(func(s *entity.EnemyShip) {
		if found == nil && e.Collides(&s.Entity) {
			found = s
		}
	})
	return found
}

func (l *Level) bossAlive() bool {
	return l.boss != nil && !l.boss.IsDestroyed()
}

func (l *Level) destroyEnemy(s *entity.EnemyShip) {
	l.state.Score += l.formation.Destroy(s)
	l.state.ShipsDestroyed++
	l.explosions = append(l.explosions, entity.NewExplosion(l.env.Clock, s.Entity))
	l.env.Audio.Play(audio.EffectEnemyHit)
	l.maybeDrop(s.Entity)
}

func (l *Level) hitBoss() {
	l.boss.Destroy()
	l.env.Audio.Play(audio.EffectBossHit)
	if l.boss.IsDestroyed() {
		l.state.Score += l.boss.PointValue()
		l.state.ShipsDestroyed++
	}
}

// maybeDrop rolls for an item where an enemy died.
func (l *Level) maybeDrop(at entity.Entity) {
	odds := ItemDropOdds
	if l.settings.Bonus {
		odds = BonusItemDropOdds
	}
	if l.env.Rand.Intn(odds) != 0 {
		return
	}
	tag := entity.ItemTier(l.env.Rand.Intn(3) + 1)
	l.drops = append(l.drops, l.items.Acquire(at.CenterX()-entity.ItemWidth/2, at.Y, tag))
}

// clearEnemyShots releases every bullet not fired by the player.
func (l *Level) clearEnemyShots() {
	live := l.shots[:0]
	for _, h := range l.shots {
		if b := l.bullets.Get(h); b != nil && b.Friendly() {
			live = append(live, h)
			continue
		}
		l.bullets.Release(h)
	}
	l.shots = live
}

// bomb spends one bomb: enemy fire is wiped and every enemy within
// BombRange of the ship's center is destroyed. The boss takes one hit.
func (l *Level) bomb() {
	if l.state.BombsRemaining <= 0 {
		return
	}
	l.state.BombsRemaining--
	l.clearEnemyShots()

	cx := l.ship.CenterX()
	var caught []*entity.EnemyShip
	l.formation.Each(func(s *entity.EnemyShip) {
		if core.Abs(s.CenterX()-cx) <= BombRange {
			caught = append(caught, s)
		}
	})
	for _, s := range caught {
		l.destroyEnemy(s)
	}
	if l.bossAlive() && core.Abs(l.boss.CenterX()-cx) <= BombRange {
		l.hitBoss()
	}
	l.env.Audio.Play(audio.EffectBomb)
}

// useUltimate wipes enemy fire when the skill cooldown allows it.
func (l *Level) useUltimate() {
	if !l.ultimate.IsFinished() {
		return
	}
	l.ultimate.Reset()
	l.clearEnemyShots()
	l.state.UltimateUses++
	l.env.Audio.Play(audio.EffectUltimate)
}
