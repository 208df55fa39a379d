package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func TestPortOf(t *testing.T) {
	tests := []struct{ addr, want string }{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"localhost", "localhost"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestPrintLevels(t *testing.T) {
	var buf bytes.Buffer
	printLevels(&buf, config.DefaultConfig())
	out := buf.String()

	for _, want := range []string{"Lives: 3", "World: 690x820 at 60 fps", "bonus", "boss"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// header + 9 levels
	if rows := strings.Count(out[strings.Index(out, "Level"):], "\n"); rows != 10 {
		t.Errorf("table has %d lines, want 10", rows)
	}
}

func TestLoadGameConfigPreset(t *testing.T) {
	oldConfig, oldDifficulty, oldFPS := flagConfig, flagDifficulty, flagFPS
	t.Cleanup(func() { flagConfig, flagDifficulty, flagFPS = oldConfig, oldDifficulty, oldFPS })

	flagConfig = ""
	flagDifficulty = "hard"
	flagFPS = 30

	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() error = %v", err)
	}
	if cfg.Run.MaxLives != 2 {
		t.Errorf("MaxLives = %d, want 2 on hard", cfg.Run.MaxLives)
	}
	if cfg.Run.FPS != 30 {
		t.Errorf("FPS = %d, want the --fps override", cfg.Run.FPS)
	}

	flagDifficulty = "nightmare"
	if _, err := loadGameConfig(); err == nil {
		t.Error("unknown preset should be rejected")
	}
}
