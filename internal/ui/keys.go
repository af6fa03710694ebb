package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// View switching
	ViewDashboard key.Binding
	ViewLogs      key.Binding
	ViewQueue     key.Binding
	ViewSystem    key.Binding

	// Commands
	Scan         key.Binding
	ProcessQueue key.Binding
	TogglePause  key.Binding
	Regenerate   key.Binding
	AddItem      key.Binding
	RemoveItem   key.Binding
	TestConn     key.Binding
	DismissNote  key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle views"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Cycle views (reverse)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Return to dashboard"),
		),

		ViewDashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Dashboard"),
		),
		ViewLogs: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Generation logs"),
		),
		ViewQueue: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Manual queue"),
		),
		ViewSystem: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "System logs"),
		),

		Scan: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Scan store"),
		),
		ProcessQueue: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Process queue"),
		),
		TogglePause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Pause/resume"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Regenerate selected"),
		),
		AddItem: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Queue item manually"),
		),
		RemoveItem: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Remove from queue"),
		),
		TestConn: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Test connection"),
		),
		DismissNote: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Dismiss notice"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
	}
}
