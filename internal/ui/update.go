package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"seodeck/internal/prefs"
	"seodeck/internal/state"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.snapshot = m.store.Snapshot()
		m.clampCursors()
		return m, tickCmd()

	case actionMsg:
		// Dropped triggers stay silent; completed actions already re-synced
		// the store, so just pull the fresh snapshot.
		if msg.ran {
			m.snapshot = m.store.Snapshot()
			m.clampCursors()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open form captures everything except ctrl+c.
	if m.form != nil {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		done, req, cmd := m.form.update(msg)
		if done {
			m.form = nil
			if req != nil {
				return m, m.addManualCmd(*req)
			}
			return m, nil
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		theme := nextTheme(m.theme.Name)
		m.theme = theme
		m.styles = theme.Styles()
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: theme.Name, DefaultView: viewName(m.view)})
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.cycleView(false)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleView(true)
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.setView(state.ViewDashboard)
		return m, nil

	case key.Matches(msg, m.keys.ViewDashboard):
		m.setView(state.ViewDashboard)
		return m, nil
	case key.Matches(msg, m.keys.ViewLogs):
		m.setView(state.ViewLogs)
		return m, nil
	case key.Matches(msg, m.keys.ViewQueue):
		m.setView(state.ViewManualQueue)
		return m, nil
	case key.Matches(msg, m.keys.ViewSystem):
		m.setView(state.ViewSystemLogs)
		return m, nil

	case key.Matches(msg, m.keys.Scan):
		return m, m.scanCmd()
	case key.Matches(msg, m.keys.ProcessQueue):
		return m, m.processQueueCmd()
	case key.Matches(msg, m.keys.TogglePause):
		return m, m.togglePauseCmd()
	case key.Matches(msg, m.keys.TestConn):
		return m, m.testConnectionCmd()
	case key.Matches(msg, m.keys.DismissNote):
		m.store.ClearNotice()
		m.snapshot.Notice = ""
		return m, nil

	case key.Matches(msg, m.keys.AddItem):
		m.form = newManualForm()
		return m, nil

	case key.Matches(msg, m.keys.RemoveItem):
		if m.view == state.ViewManualQueue {
			if item, ok := m.selectedQueueItem(); ok {
				return m, m.removeManualCmd(item.ID)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Regenerate):
		switch m.view {
		case state.ViewManualQueue:
			if item, ok := m.selectedQueueItem(); ok {
				return m, m.regenerateCmd(item.ItemID, item.ItemType)
			}
		case state.ViewDashboard:
			if entry, ok := m.selectedActivity(); ok {
				return m, m.regenerateCmd(entry.ID, entry.Type)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.view {
	case state.ViewDashboard:
		m.activityCursor = clamp(m.activityCursor+delta, len(m.snapshot.Dashboard.RecentActivity))
	case state.ViewManualQueue:
		m.queueCursor = clamp(m.queueCursor+delta, len(m.snapshot.ManualQueue))
	}
}

func clamp(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func viewName(v state.View) string {
	switch v {
	case state.ViewLogs:
		return "logs"
	case state.ViewManualQueue:
		return "queue"
	case state.ViewSystemLogs:
		return "system"
	default:
		return "dashboard"
	}
}
