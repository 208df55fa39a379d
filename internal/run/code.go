package run

import "fmt"

// ReturnCode is what a screen hands back to the top-level dispatch loop.
type ReturnCode int

const (
	Exit       ReturnCode = 0
	Custom     ReturnCode = 1
	HighScores ReturnCode = 2
	Load       ReturnCode = 3
	Play       ReturnCode = 4
	MainMenu   ReturnCode = 5
	Restart    ReturnCode = 8 // play again from the score screen
)

// String returns the code name.
func (c ReturnCode) String() string {
	switch c {
	case Exit:
		return "exit"
	case Custom:
		return "custom"
	case HighScores:
		return "high-scores"
	case Load:
		return "load"
	case Play:
		return "play"
	case MainMenu:
		return "main-menu"
	case Restart:
		return "restart"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Signal is raised by a level to change the flow of the level loop.
type Signal int

const (
	SignalNone Signal = iota
	SignalReturnToMain
	SignalRestartLevel
)

// String returns the signal name.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalReturnToMain:
		return "return-to-main"
	case SignalRestartLevel:
		return "restart-level"
	default:
		return fmt.Sprintf("signal(%d)", int(s))
	}
}
