package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultConfig returns the built-in configuration, matching the embedded
// invaders.yaml.
func DefaultConfig() Config {
	return Config{
		Run: RunConfig{
			MaxLives:           3,
			ExtraLifeFrequency: 3,
			WorldWidth:         690,
			WorldHeight:        820,
			FPS:                60,
			Bombs:              3,
			SkillCooldowns:     []int{15, 15, 15, 15},
		},
		Levels: []GameSettings{
			{FormationWidth: 5, FormationHeight: 5, BaseSpeed: 2, ShootingFrequencyMs: 1000},
			{FormationWidth: 5, FormationHeight: 5, BaseSpeed: 50, ShootingFrequencyMs: 2500},
			{FormationWidth: 6, FormationHeight: 5, BaseSpeed: 40, ShootingFrequencyMs: 1500},
			{FormationWidth: 6, FormationHeight: 6, BaseSpeed: 30, ShootingFrequencyMs: 1500},
			{FormationWidth: 7, FormationHeight: 6, BaseSpeed: 20, ShootingFrequencyMs: 1000},
			{FormationWidth: 16, FormationHeight: 7, BaseSpeed: 50, ShootingFrequencyMs: 2100000, Bonus: true},
			{FormationWidth: 7, FormationHeight: 7, BaseSpeed: 10, ShootingFrequencyMs: 1000},
			{FormationWidth: 8, FormationHeight: 7, BaseSpeed: 2, ShootingFrequencyMs: 500, Boss: true},
			{FormationWidth: 8, FormationHeight: 7, BaseSpeed: 2, ShootingFrequencyMs: 500},
		},
	}
}

// DefaultYAML returns the embedded default invaders.yaml.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
