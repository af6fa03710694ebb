package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"seodeck/internal/state"
)

const uiRefreshInterval = time.Second

// Model is the bubbletea model for the whole application.
type Model struct {
	ctx        context.Context
	store      *state.Store
	dispatcher Dispatcher
	prefsPath  string

	keys   keyMap
	theme  Theme
	styles Styles

	width  int
	height int

	view     state.View
	snapshot state.Snapshot

	activityCursor int
	queueCursor    int

	spin     spinner.Model
	form     *manualForm
	showHelp bool
}

// NewModel builds the initial model from runtime options.
func NewModel(ctx context.Context, opts Options) Model {
	theme := themeByName(opts.ThemeName)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:        ctx,
		store:      opts.Store,
		dispatcher: opts.Dispatcher,
		prefsPath:  opts.PrefsPath,
		keys:       DefaultKeyMap(),
		theme:      theme,
		styles:     theme.Styles(),
		view:       opts.Store.View(),
		snapshot:   opts.Store.Snapshot(),
		spin:       sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.spin.Tick)
}

// setView switches the active view and tells the store, so the poller
// starts fetching the matching endpoint on its next tick.
func (m *Model) setView(v state.View) {
	m.view = v
	m.store.SetView(v)
}

// cycleView moves to the next (or previous) view in display order.
func (m *Model) cycleView(reverse bool) {
	order := []state.View{state.ViewDashboard, state.ViewLogs, state.ViewManualQueue, state.ViewSystemLogs}
	for i, v := range order {
		if v != m.view {
			continue
		}
		if reverse {
			m.setView(order[(i+len(order)-1)%len(order)])
		} else {
			m.setView(order[(i+1)%len(order)])
		}
		return
	}
	m.setView(state.ViewDashboard)
}

// clampCursors keeps list cursors inside the freshly polled data.
func (m *Model) clampCursors() {
	if n := len(m.snapshot.Dashboard.RecentActivity); m.activityCursor >= n {
		m.activityCursor = max(0, n-1)
	}
	if n := len(m.snapshot.ManualQueue); m.queueCursor >= n {
		m.queueCursor = max(0, n-1)
	}
}
