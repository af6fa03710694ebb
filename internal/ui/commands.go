package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"seodeck/internal/api"
)

// The dispatcher methods block through the settle delay and the post-action
// re-fetch, so each runs inside a tea.Cmd goroutine and reports back with an
// actionMsg once the store has been re-synced.

func (m Model) scanCmd() tea.Cmd {
	return func() tea.Msg {
		return actionMsg{name: "scan", ran: m.dispatcher.Scan(m.ctx)}
	}
}

func (m Model) processQueueCmd() tea.Cmd {
	return func() tea.Msg {
		return actionMsg{name: "process-queue", ran: m.dispatcher.ProcessQueue(m.ctx)}
	}
}

func (m Model) togglePauseCmd() tea.Cmd {
	return func() tea.Msg {
		return actionMsg{name: "toggle-pause", ran: m.dispatcher.TogglePause(m.ctx)}
	}
}

func (m Model) regenerateCmd(itemID, itemType string) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{name: "regenerate", ran: m.dispatcher.Regenerate(m.ctx, itemID, itemType)}
	}
}

func (m Model) addManualCmd(req api.ManualQueueRequest) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{name: "manual-add", ran: m.dispatcher.AddManualItem(m.ctx, req)}
	}
}

func (m Model) removeManualCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{name: "manual-remove", ran: m.dispatcher.RemoveManualItem(m.ctx, id)}
	}
}

func (m Model) testConnectionCmd() tea.Cmd {
	return func() tea.Msg {
		return actionMsg{name: "test-connection", ran: m.dispatcher.TestConnection(m.ctx)}
	}
}
