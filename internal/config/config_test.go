package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default): %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded invaders.yaml drifted from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("run:\n  max_lives: 5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Run.MaxLives != 5 {
		t.Errorf("MaxLives = %d, expected 5", cfg.Run.MaxLives)
	}
	if cfg.Run.ExtraLifeFrequency != 3 || len(cfg.Levels) != 9 {
		t.Error("fields missing from the file should keep their defaults")
	}
}

func TestParseLevelsReplaceTable(t *testing.T) {
	cfg, err := Parse([]byte(`
levels:
  - formation_width: 2
    formation_height: 1
    base_speed: 5
    shooting_frequency_ms: 800
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Levels) != 1 {
		t.Fatalf("got %d levels, expected the file's single level", len(cfg.Levels))
	}
	if cfg.Levels[0].FormationWidth != 2 {
		t.Errorf("FormationWidth = %d, expected 2", cfg.Levels[0].FormationWidth)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("run:\n  fps: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Run.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", cfg.Run.FPS)
	}
	if Resolve(path) != path {
		t.Error("Resolve should return an explicit path unchanged")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("run: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}
}

func TestTableSettingsFor(t *testing.T) {
	table := DefaultConfig().Table()

	tests := []struct {
		level int
		want  GameSettings
	}{
		{1, GameSettings{FormationWidth: 5, FormationHeight: 5, BaseSpeed: 2, ShootingFrequencyMs: 1000}},
		{6, GameSettings{FormationWidth: 16, FormationHeight: 7, BaseSpeed: 50, ShootingFrequencyMs: 2100000, Bonus: true}},
		{8, GameSettings{FormationWidth: 8, FormationHeight: 7, BaseSpeed: 2, ShootingFrequencyMs: 500, Boss: true}},
	}
	for _, tt := range tests {
		got, err := table.SettingsFor(tt.level)
		if err != nil {
			t.Fatalf("SettingsFor(%d): %v", tt.level, err)
		}
		if got != tt.want {
			t.Errorf("SettingsFor(%d) = %+v, expected %+v", tt.level, got, tt.want)
		}
	}

	for _, level := range []int{0, 10, -1} {
		if _, err := table.SettingsFor(level); !errors.Is(err, ErrLevelOutOfRange) {
			t.Errorf("SettingsFor(%d) err = %v, expected ErrLevelOutOfRange", level, err)
		}
	}
}

func TestTableIsACopy(t *testing.T) {
	levels := DefaultConfig().Levels
	table := NewTable(levels)
	levels[0].FormationWidth = 99

	got, _ := table.SettingsFor(1)
	if got.FormationWidth == 99 {
		t.Error("table must not alias the caller's slice")
	}
}

func TestTableValidate(t *testing.T) {
	if err := NewTable(nil).Validate(9); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("empty table err = %v, expected ErrEmptyTable", err)
	}

	short := NewTable(DefaultConfig().Levels[:4])
	if err := short.Validate(9); !errors.Is(err, ErrLevelOutOfRange) {
		t.Errorf("short table err = %v, expected ErrLevelOutOfRange", err)
	}

	levels := DefaultConfig().Levels
	levels[2].ShootingFrequencyMs = 0
	if err := NewTable(levels).Validate(9); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("zero shot interval err = %v, expected ErrInvalidSettings", err)
	}
}

func TestConfigValidateRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Run.ExtraLifeFrequency = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("err = %v, expected ErrInvalidSettings", err)
	}
}
