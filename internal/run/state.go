// Package run drives a whole game session: the title screen, the level
// loop with lives and score carried between levels, and the score and
// high-score screens.
package run

import "github.com/vovakirdan/tui-invaders/internal/config"

// NumSkills is the number of skill cooldown slots carried in a run.
const NumSkills = 4

// GameState is the progress snapshot carried across levels.
// It is a plain value: copying it copies everything, SkillCooldowns included.
type GameState struct {
	Level          int
	Score          int
	LivesRemaining int
	BulletsShot    int
	ShipsDestroyed int
	BombsRemaining int
	SkillCooldowns [NumSkills]int // seconds
	UltimateUses   int
}

// Rules are the run-wide constants derived from configuration.
type Rules struct {
	MaxLives           int
	ExtraLifeFrequency int
	NumLevels          int
	Bombs              int
	SkillCooldowns     [NumSkills]int
}

// RulesFrom derives run rules from a configuration.
func RulesFrom(cfg config.Config) Rules {
	r := Rules{
		MaxLives:           cfg.Run.MaxLives,
		ExtraLifeFrequency: cfg.Run.ExtraLifeFrequency,
		NumLevels:          len(cfg.Levels),
		Bombs:              cfg.Run.Bombs,
	}
	copy(r.SkillCooldowns[:], cfg.Run.SkillCooldowns)
	return r
}

// Fresh returns the state of a new run.
func Fresh(r Rules) GameState {
	return GameState{
		Level:          1,
		LivesRemaining: r.MaxLives,
		BombsRemaining: r.Bombs,
		SkillCooldowns: r.SkillCooldowns,
	}
}

// EnterLevel returns the snapshot handed to the level about to start.
// Every ExtraLifeFrequency-th level grants one life, never above MaxLives.
func EnterLevel(s GameState, r Rules) GameState {
	if r.ExtraLifeFrequency > 0 && s.Level%r.ExtraLifeFrequency == 0 && s.LivesRemaining < r.MaxLives {
		s.LivesRemaining++
	}
	return s
}

// Advance returns the snapshot after a finished level: everything carries
// forward and the level number moves on if the player survived.
func Advance(s GameState) GameState {
	if s.LivesRemaining > 0 {
		s.Level++
	}
	return s
}

// Over reports whether the level loop is finished.
func (s GameState) Over(r Rules) bool {
	return s.LivesRemaining <= 0 || s.Level > r.NumLevels
}

// Resumable reports whether a loaded snapshot can continue a run.
func (s GameState) Resumable(r Rules) bool {
	return s.Level >= 1 && s.Level <= r.NumLevels &&
		s.LivesRemaining > 0 && s.LivesRemaining <= r.MaxLives &&
		s.Score >= 0 && s.BombsRemaining >= 0
}
