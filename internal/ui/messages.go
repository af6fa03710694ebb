package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives the UI refresh loop reading store snapshots.
type tickMsg time.Time

// actionMsg reports a dispatched command. Ran is false when the dispatcher
// dropped the trigger because another action was still pending; per the
// single-flight contract that is not an error and nothing is shown.
type actionMsg struct {
	name string
	ran  bool
}

func tickCmd() tea.Cmd {
	return tea.Tick(uiRefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
