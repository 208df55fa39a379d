// Package config provides YAML-based configuration loading for the game:
// run-wide rules, the per-level difficulty table and difficulty presets.
package config

// Config is the full contents of invaders.yaml.
type Config struct {
	Run    RunConfig      `yaml:"run"`
	Levels []GameSettings `yaml:"levels"`
}

// RunConfig holds the rules that apply to a whole run.
type RunConfig struct {
	MaxLives           int   `yaml:"max_lives"`
	ExtraLifeFrequency int   `yaml:"extra_life_frequency"` // bonus life on every Nth level
	WorldWidth         int   `yaml:"world_width"`
	WorldHeight        int   `yaml:"world_height"`
	FPS                int   `yaml:"fps"`
	Bombs              int   `yaml:"bombs"`
	SkillCooldowns     []int `yaml:"skill_cooldowns"` // seconds, one per skill slot
}

// GameSettings is the immutable tuning for one level.
type GameSettings struct {
	FormationWidth      int  `yaml:"formation_width"`
	FormationHeight     int  `yaml:"formation_height"`
	BaseSpeed           int  `yaml:"base_speed"`            // frames between formation steps
	ShootingFrequencyMs int  `yaml:"shooting_frequency_ms"` // mean enemy shot interval
	Bonus               bool `yaml:"bonus,omitempty"`       // generous item drops
	Boss                bool `yaml:"boss,omitempty"`        // boss fight after the formation
}

// Table returns the difficulty table view of the configured levels.
func (c Config) Table() Table {
	return NewTable(c.Levels)
}
