// Package audio names the sound effects and background loops of the game.
// Callers fire and forget: nothing behind Player blocks the frame loop.
// The device-backed Player lives in audio/beepaudio.
package audio

// Effect identifies a one-shot sound.
type Effect int

const (
	EffectShoot Effect = iota
	EffectEnemyHit
	EffectShipHit
	EffectBossHit
	EffectItem
	EffectBomb
	EffectUltimate
	EffectRoundEnd
)

// Track identifies a looping background track.
type Track int

const (
	TrackTitle Track = iota
	TrackLevel
	TrackBoss
)

// Player is the fire-and-forget audio contract.
type Player interface {
	Play(e Effect)
	StartLoop(t Track)
	Stop()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Play(Effect)     {}
func (Nop) StartLoop(Track) {}
func (Nop) Stop()           {}
