package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move ship left
	ActionRight           // D, Right arrow - move ship right
	ActionFire            // Space - fire
	ActionBomb            // X - drop a bomb
	ActionUltimate        // U - ultimate skill
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - back / return to main menu
	ActionRestart         // R - restart level (while paused)
	ActionQuit            // Q, Ctrl+C - exit
	ActionPause           // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionBomb:
		return "Bomb"
	case ActionUltimate:
		return "Ultimate"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state polled once per simulation tick.
//
// Terminals deliver key presses but no key releases, so two views are kept:
// pressed holds actions whose key event arrived during this frame (edge),
// held holds actions the platform still considers down (level).
type InputFrame struct {
	pressed map[Action]bool
	held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		pressed: make(map[Action]bool),
		held:    make(map[Action]bool),
	}
}

// Set marks an action as just pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
}

// Hold marks an action as held down for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Pressed reports whether the action was just pressed this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Down reports whether the action is held or was pressed this frame.
func (f InputFrame) Down(a Action) bool {
	return f.held[a] || f.pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.pressed)
	clear(f.held)
}
