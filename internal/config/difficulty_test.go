package config

import (
	"errors"
	"testing"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) err = %v", tt.in, err)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidSettings) {
			t.Errorf("ParsePreset(%q) err = %v, expected ErrInvalidSettings", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Run.MaxLives != 2 {
		t.Errorf("hard MaxLives = %d, expected 2", cfg.Run.MaxLives)
	}
	if cfg.Levels[0].ShootingFrequencyMs != 700 {
		t.Errorf("hard level 1 shot interval = %d, expected 700", cfg.Levels[0].ShootingFrequencyMs)
	}

	normal := DefaultConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal.Run.MaxLives != 3 || normal.Levels[0].ShootingFrequencyMs != 1000 {
		t.Error("normal preset should not change the config")
	}
}

func TestApplyPresetDoesNotAliasLevels(t *testing.T) {
	base := DefaultConfig()
	cfg := base
	ApplyPreset(&cfg, DifficultyEasy)
	if base.Levels[0].ShootingFrequencyMs != 1000 {
		t.Error("ApplyPreset must not write through to a shared levels slice")
	}
}
