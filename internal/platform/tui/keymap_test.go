package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space fires", runeKey(" "), core.ActionFire, false},
		{"bomb", runeKey("x"), core.ActionBomb, false},
		{"ultimate", runeKey("u"), core.ActionUltimate, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"back", runeKey("b"), core.ActionBack, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey("b"), MenuActionBack},
		{runeKey("r"), MenuActionRestart},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionLeft, 10)

	for frame := uint64(10); frame <= 13; frame++ {
		in := core.NewInputFrame()
		h.Apply(frame, &in)
		if !in.Down(core.ActionLeft) {
			t.Errorf("frame %d: left should still be held", frame)
		}
		if in.Pressed(core.ActionLeft) {
			t.Errorf("frame %d: a held key must not count as a fresh press", frame)
		}
	}

	in := core.NewInputFrame()
	h.Apply(14, &in)
	if in.Down(core.ActionLeft) {
		t.Error("left should be released after the window")
	}
}

func TestHoldTrackerOppositeDirection(t *testing.T) {
	h := NewHoldTracker(5)
	h.Press(core.ActionLeft, 0)
	h.Press(core.ActionFire, 0)
	h.Press(core.ActionRight, 1)

	in := core.NewInputFrame()
	h.Apply(1, &in)
	if in.Down(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !in.Down(core.ActionRight) || !in.Down(core.ActionFire) {
		t.Error("right and fire should be held")
	}
}

func TestHoldTrackerIgnoresOneShots(t *testing.T) {
	h := NewHoldTracker(5)
	for _, a := range []core.Action{core.ActionBomb, core.ActionUltimate, core.ActionPause} {
		h.Press(a, 0)
	}

	in := core.NewInputFrame()
	h.Apply(1, &in)
	for _, a := range []core.Action{core.ActionBomb, core.ActionUltimate, core.ActionPause} {
		if in.Down(a) {
			t.Errorf("%v must not be held", a)
		}
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(5)
	h.Press(core.ActionFire, 0)
	h.Release()

	in := core.NewInputFrame()
	h.Apply(1, &in)
	if in.Down(core.ActionFire) {
		t.Error("Release should drop every held action")
	}
}
