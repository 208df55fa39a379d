// Package tui provides the Bubble Tea front end of the game: the title,
// level, score, high-score and settings screens, input mapping, and the SSH
// server that runs the same screens for remote players.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a level simulation tick.
type TickMsg time.Time

// tickInterval is the time between level frames. Rates below one frame
// per second are treated as one.
func tickInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(max(tickRate, 1))
}

// tickCmd schedules the next level frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
