package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"seodeck/internal/api"
	"seodeck/internal/state"
)

// Dispatcher is the command gate the UI triggers actions through. All
// methods block until the action (and its post-action re-sync) finished, or
// return false immediately when another action was already pending.
type Dispatcher interface {
	Scan(ctx context.Context) bool
	ProcessQueue(ctx context.Context) bool
	TogglePause(ctx context.Context) bool
	Regenerate(ctx context.Context, itemID, itemType string) bool
	AddManualItem(ctx context.Context, req api.ManualQueueRequest) bool
	RemoveManualItem(ctx context.Context, id string) bool
	TestConnection(ctx context.Context) bool
	Pending() bool
}

// Options configure the UI runtime.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Dispatcher Dispatcher
	ThemeName  string
	PrefsPath  string
}

// ViewByName maps a preference string to a view, defaulting to the dashboard.
func ViewByName(name string) state.View {
	switch name {
	case "logs":
		return state.ViewLogs
	case "queue", "manual-queue":
		return state.ViewManualQueue
	case "system", "system-logs":
		return state.ViewSystemLogs
	default:
		return state.ViewDashboard
	}
}

// Run starts the TUI and blocks until the user quits or the context is
// cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Dispatcher == nil {
		return fmt.Errorf("ui requires a dispatcher")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	model := NewModel(ctx, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		// Context cancellation is a clean shutdown, not a failure.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
