package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidSettings, name)
	}
}

// ShotScaleForPreset returns the enemy shot interval multiplier in percent.
func ShotScaleForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 150
	case DifficultyHard:
		return 70
	default:
		return 100
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the file values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Run.MaxLives = 5
	case DifficultyHard:
		cfg.Run.MaxLives = 2
	default:
		return
	}

	scale := ShotScaleForPreset(preset)
	levels := make([]GameSettings, len(cfg.Levels))
	for i, s := range cfg.Levels {
		s.ShootingFrequencyMs = max(1, s.ShootingFrequencyMs*scale/100)
		levels[i] = s
	}
	cfg.Levels = levels
}
