package entity

// SpriteTag identifies what to draw for an entity. It drives both the
// cosmetic animation loop and the boss health tiers.
type SpriteTag int

const (
	SpriteNone SpriteTag = iota
	SpriteShip
	SpriteShipDestroyed
	SpriteBullet
	SpriteEnemyBullet
	SpriteEnemyA1
	SpriteEnemyA2
	SpriteEnemyB1
	SpriteEnemyB2
	SpriteEnemyC1
	SpriteEnemyC2
	SpriteExplosion
	SpriteBoss1
	SpriteBoss2
	SpriteBoss3
	SpriteBoss4
	SpriteBossHpLow1
	SpriteBossHpLow2
	SpriteBossDestroyed
	SpriteItem1
	SpriteItem2
	SpriteItem3
	SpriteItemNeutral
)

var spriteNames = map[SpriteTag]string{
	SpriteNone:          "None",
	SpriteShip:          "Ship",
	SpriteShipDestroyed: "ShipDestroyed",
	SpriteBullet:        "Bullet",
	SpriteEnemyBullet:   "EnemyBullet",
	SpriteEnemyA1:       "EnemyA1",
	SpriteEnemyA2:       "EnemyA2",
	SpriteEnemyB1:       "EnemyB1",
	SpriteEnemyB2:       "EnemyB2",
	SpriteEnemyC1:       "EnemyC1",
	SpriteEnemyC2:       "EnemyC2",
	SpriteExplosion:     "Explosion",
	SpriteBoss1:         "Boss1",
	SpriteBoss2:         "Boss2",
	SpriteBoss3:         "Boss3",
	SpriteBoss4:         "Boss4",
	SpriteBossHpLow1:    "BossHpLow1",
	SpriteBossHpLow2:    "BossHpLow2",
	SpriteBossDestroyed: "BossDestroyed",
	SpriteItem1:         "Item1",
	SpriteItem2:         "Item2",
	SpriteItem3:         "Item3",
	SpriteItemNeutral:   "ItemNeutral",
}

// String returns the sprite name.
func (t SpriteTag) String() string {
	if name, ok := spriteNames[t]; ok {
		return name
	}
	return "Unknown"
}

// NextFrame returns the next frame of an animation loop.
// Tags outside a loop map to themselves, so a boss showing a health-tier
// sprite stops animating.
func NextFrame(t SpriteTag) SpriteTag {
	switch t {
	case SpriteBoss1:
		return SpriteBoss2
	case SpriteBoss2:
		return SpriteBoss3
	case SpriteBoss3:
		return SpriteBoss4
	case SpriteBoss4:
		return SpriteBoss1
	case SpriteEnemyA1:
		return SpriteEnemyA2
	case SpriteEnemyA2:
		return SpriteEnemyA1
	case SpriteEnemyB1:
		return SpriteEnemyB2
	case SpriteEnemyB2:
		return SpriteEnemyB1
	case SpriteEnemyC1:
		return SpriteEnemyC2
	case SpriteEnemyC2:
		return SpriteEnemyC1
	default:
		return t
	}
}

// TierFor maps boss health to its health-tier sprite override.
// ok is false when that health value has no override.
func TierFor(health int) (tag SpriteTag, ok bool) {
	switch health {
	case 5:
		return SpriteBossHpLow1, true
	case 2:
		return SpriteBossHpLow2, true
	case 0:
		return SpriteBossDestroyed, true
	default:
		return SpriteNone, false
	}
}

// ItemTier returns the item sprite for tier 1..3. Other tiers give the
// neutral drop.
func ItemTier(tier int) SpriteTag {
	switch tier {
	case 1:
		return SpriteItem1
	case 2:
		return SpriteItem2
	case 3:
		return SpriteItem3
	default:
		return SpriteItemNeutral
	}
}
