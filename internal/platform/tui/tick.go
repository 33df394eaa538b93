// Package tui provides the Bubble Tea integration for Hue Hunt.
// It handles the terminal UI loop, input mapping, and the game clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/huehunt/internal/hue"
)

// TickMsg advances the game clock by one step. Epoch identifies which
// run armed the clock: a tick scheduled before a run ended still arrives
// after it, and the stale epoch lets the model drop it instead of
// counting down the next run.
type TickMsg struct {
	When  time.Time
	Epoch int
}

// tickCmd returns a Bubble Tea command that sends the next clock tick.
func tickCmd(epoch int) tea.Cmd {
	return tea.Tick(hue.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{When: t, Epoch: epoch}
	})
}
