// Package tui runs Obstacle Outrun in a terminal through Bubble Tea.
// It maps keys to held actions, projects the world into a cell buffer and
// drives the game session from display refresh messages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one display refresh. It carries the time the refresh fired.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a TickMsg after one
// refresh interval at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
