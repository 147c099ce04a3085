// Package tui provides the Bubble Tea host for Tree of Realms.
// It runs the tick loop, maps keys and mouse to input, and serves
// menus and the scoreboard locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tree-of-realms/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next simulation tick, one step from now.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.StepDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
