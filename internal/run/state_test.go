package run

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func testRules() Rules {
	return RulesFrom(config.DefaultConfig())
}

func TestFresh(t *testing.T) {
	got := Fresh(testRules())
	want := GameState{
		Level:          1,
		LivesRemaining: 3,
		BombsRemaining: 3,
		SkillCooldowns: [NumSkills]int{15, 15, 15, 15},
	}
	if got != want {
		t.Errorf("Fresh() = %+v, expected %+v", got, want)
	}
}

func TestEnterLevelBonusLife(t *testing.T) {
	r := testRules()
	tests := []struct {
		name      string
		in        GameState
		wantLives int
	}{
		{"divisible level below max", GameState{Level: 3, LivesRemaining: 2}, 3},
		{"divisible level at max", GameState{Level: 6, LivesRemaining: 3}, 3},
		{"other level", GameState{Level: 4, LivesRemaining: 1}, 1},
		{"level 9", GameState{Level: 9, LivesRemaining: 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnterLevel(tt.in, r)
			if got.LivesRemaining != tt.wantLives {
				t.Errorf("lives = %d, expected %d", got.LivesRemaining, tt.wantLives)
			}
			if got.Level != tt.in.Level {
				t.Errorf("level changed to %d on entry", got.Level)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	in := GameState{Level: 4, Score: 120, LivesRemaining: 2, BulletsShot: 30, ShipsDestroyed: 12, UltimateUses: 1}
	got := Advance(in)

	want := in
	want.Level = 5
	if got != want {
		t.Errorf("Advance() = %+v, expected %+v", got, want)
	}

	lost := Advance(GameState{Level: 1, LivesRemaining: 0, Score: 40})
	if lost.Level != 1 {
		t.Errorf("lost run advanced to level %d", lost.Level)
	}
}

func TestGameStateCopyIsDeep(t *testing.T) {
	a := Fresh(testRules())
	b := a
	b.SkillCooldowns[0] = 1
	b.Score = 100

	if a.SkillCooldowns[0] != 15 || a.Score != 0 {
		t.Error("mutating a copy leaked into the original snapshot")
	}
}

func TestOverAndResumable(t *testing.T) {
	r := testRules()
	tests := []struct {
		s             GameState
		wantOver      bool
		wantResumable bool
	}{
		{GameState{Level: 1, LivesRemaining: 3}, false, true},
		{GameState{Level: 9, LivesRemaining: 1}, false, true},
		{GameState{Level: 10, LivesRemaining: 1}, true, false},
		{GameState{Level: 4, LivesRemaining: 0}, true, false},
		{GameState{Level: 0, LivesRemaining: 2}, false, false},
		{GameState{Level: 2, LivesRemaining: 7}, false, false},
	}
	for _, tt := range tests {
		if got := tt.s.Over(r); got != tt.wantOver {
			t.Errorf("%+v Over() = %v, expected %v", tt.s, got, tt.wantOver)
		}
		if got := tt.s.Resumable(r); got != tt.wantResumable {
			t.Errorf("%+v Resumable() = %v, expected %v", tt.s, got, tt.wantResumable)
		}
	}
}

func TestReturnCodeValues(t *testing.T) {
	codes := map[ReturnCode]int{Exit: 0, Custom: 1, HighScores: 2, Load: 3, Play: 4, MainMenu: 5, Restart: 8}
	for c, v := range codes {
		if int(c) != v {
			t.Errorf("%s = %d, expected %d", c, int(c), v)
		}
	}
	if ReturnCode(42).String() != "code(42)" {
		t.Errorf("unknown code String() = %q", ReturnCode(42).String())
	}
}
