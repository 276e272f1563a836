// Package tui runs parlor games and menus as Bubble Tea programs: the game
// loop, key and mouse mapping, the status bar and the menu screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickRate caps the simulation rate; faster ticks only burn CPU.
const maxTickRate = 240

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the delay between ticks. Non-positive rates fall
// back to 60 per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(min(tickRate, maxTickRate))
}

// tickCmd schedules the next tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
