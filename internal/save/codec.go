// Package save checkpoints a run between levels. Snapshots are encoded as a
// small YAML document and kept in the per-user data directory via gdata.
package save

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/run"
)

// Persistence errors. The run driver recovers from both by starting fresh.
var (
	ErrNoSave  = errors.New("save: no saved run")
	ErrCorrupt = errors.New("save: corrupt saved run")
)

// formatVersion is bumped whenever snapshot fields change meaning.
const formatVersion = 1

type snapshot struct {
	Version        int   `yaml:"version"`
	Level          int   `yaml:"level"`
	Score          int   `yaml:"score"`
	LivesRemaining int   `yaml:"lives_remaining"`
	BulletsShot    int   `yaml:"bullets_shot"`
	ShipsDestroyed int   `yaml:"ships_destroyed"`
	BombsRemaining int   `yaml:"bombs_remaining"`
	SkillCooldowns []int `yaml:"skill_cooldowns"`
	UltimateUses   int   `yaml:"ultimate_uses"`
}

// Encode serializes a run snapshot.
func Encode(s run.GameState) ([]byte, error) {
	snap := snapshot{
		Version:        formatVersion,
		Level:          s.Level,
		Score:          s.Score,
		LivesRemaining: s.LivesRemaining,
		BulletsShot:    s.BulletsShot,
		ShipsDestroyed: s.ShipsDestroyed,
		BombsRemaining: s.BombsRemaining,
		SkillCooldowns: s.SkillCooldowns[:],
		UltimateUses:   s.UltimateUses,
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("save: encode: %w", err)
	}
	return data, nil
}

// Decode parses a blob written by Encode. An empty blob is ErrNoSave.
func Decode(data []byte) (run.GameState, error) {
	if len(data) == 0 {
		return run.GameState{}, ErrNoSave
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return run.GameState{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if snap.Version != formatVersion {
		return run.GameState{}, fmt.Errorf("%w: format version %d", ErrCorrupt, snap.Version)
	}
	if len(snap.SkillCooldowns) > run.NumSkills {
		return run.GameState{}, fmt.Errorf("%w: %d skill cooldowns", ErrCorrupt, len(snap.SkillCooldowns))
	}

	s := run.GameState{
		Level:          snap.Level,
		Score:          snap.Score,
		LivesRemaining: snap.LivesRemaining,
		BulletsShot:    snap.BulletsShot,
		ShipsDestroyed: snap.ShipsDestroyed,
		BombsRemaining: snap.BombsRemaining,
		UltimateUses:   snap.UltimateUses,
	}
	copy(s.SkillCooldowns[:], snap.SkillCooldowns)
	return s, nil
}
