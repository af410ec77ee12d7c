// Package tui provides the Bubble Tea presentation layer for the game.
// It maps key presses to engine calls, draws the board into a core.Screen
// and styles it with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// messageTTL is how long an advisory message stays on screen.
const messageTTL = 2 * time.Second

// clearMessageMsg expires the status message it was scheduled for.
// Newer messages bump the id so stale timers are ignored.
type clearMessageMsg struct {
	id int
}

// clearMessageCmd returns a command that expires message id after ttl.
func clearMessageCmd(id int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return clearMessageMsg{id: id}
	})
}
