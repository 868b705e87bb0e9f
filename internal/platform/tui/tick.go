// Package tui provides the Bubble Tea integration for live program
// playback: watching a render progress in the terminal and the SSH
// playground served via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cfrs-studio/internal/export"
)

// TickMsg is sent to trigger the next batch of interpreter steps.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that ticks once per pause
// quantum, the same 20ms an S command is worth.
func tickCmd() tea.Cmd {
	return tea.Tick(export.PauseQuantum, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
