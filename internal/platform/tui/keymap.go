package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldFrames is how long a movement or fire key counts as held after
// its last key event. Terminals report key repeats but never key releases.
const DefaultHoldFrames = 9

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "w", "up", "k":
		return core.ActionFire, false
	case "x":
		return core.ActionBomb, false
	case "u":
		return core.ActionUltimate, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// holdable reports whether an action is continuous rather than a one-off.
func holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionFire
}

// HoldTracker turns discrete key events into held actions. Every event for a
// holdable action keeps it down for a window of frames; pressing one
// direction releases the other.
type HoldTracker struct {
	window int
	until  map[core.Action]uint64
}

// NewHoldTracker creates a tracker with the given hold window in frames.
func NewHoldTracker(window int) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldFrames
	}
	return &HoldTracker{
		window: window,
		until:  make(map[core.Action]uint64),
	}
}

// Press records a key event for a at the given frame.
func (h *HoldTracker) Press(a core.Action, frame uint64) {
	if !holdable(a) {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = frame + uint64(h.window) //#nosec G115 -- window is positive
}

// Apply marks every action still inside its window as held in dst.
func (h *HoldTracker) Apply(frame uint64, dst *core.InputFrame) {
	for a, until := range h.until {
		if frame > until {
			delete(h.until, a)
			continue
		}
		dst.Hold(a)
	}
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.until)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRestart
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "r":
		return MenuActionRestart
	}

	return MenuActionNone
}
