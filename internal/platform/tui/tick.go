// Package tui runs WideBird in the terminal with Bubble Tea. It maps keys
// and mouse clicks to engine commands, drives the engine on a fixed tick
// and draws the world into a character grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation step. Gen identifies the loop that
// scheduled it; ticks from a loop that has since stopped are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
