// Package tui runs the skirmish game inside Bubble Tea. It turns terminal
// messages into behavior events, drives the game at a fixed tick rate and
// renders the screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the match by one frame.
type TickMsg time.Time

// tickCmd schedules one frame 1/fps seconds from now. Model rearms it after
// every TickMsg.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(at time.Time) tea.Msg {
		return TickMsg(at)
	})
}
