package state

import (
	"fmt"
	"sync"
	"time"

	"seodeck/internal/api"
)

// View identifies which dashboard surface is currently on screen. The
// poller uses it to skip fetches for data nobody is looking at.
type View int

const (
	ViewDashboard View = iota
	ViewLogs
	ViewManualQueue
	ViewSystemLogs
)

// Snapshot represents the latest data available to the UI. It is always
// either empty (nothing loaded yet) or a complete, self-consistent copy;
// sections are replaced wholesale, never patched in place.
type Snapshot struct {
	Dashboard    api.DashboardResponse
	HasDashboard bool
	Logs         []api.GenerationLog
	ManualQueue  []api.ManualQueueItem
	SystemLogs   []api.SystemLogEntry

	LastUpdated         time.Time
	LastError           error
	Notice              string
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	view     View
	snapshot Snapshot
}

// SetView records which view the UI is showing.
func (s *Store) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

// View returns the currently displayed view.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// ApplyDashboard replaces the dashboard section. Like every successful
// apply, it clears the retained error and the failure counter.
func (s *Store) ApplyDashboard(d *api.DashboardResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d != nil {
		s.snapshot.Dashboard = *d
		s.snapshot.HasDashboard = true
	}
	s.markSuccess()
}

// ApplyLogs replaces the generation-history section.
func (s *Store) ApplyLogs(logs []api.GenerationLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Logs = cloneSlice(logs)
	s.markSuccess()
}

// ApplyManualQueue replaces the manual-queue section.
func (s *Store) ApplyManualQueue(items []api.ManualQueueItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.ManualQueue = cloneSlice(items)
	s.markSuccess()
}

// ApplySystemLogs replaces the raw backend log tail.
func (s *Store) ApplySystemLogs(lines []api.SystemLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SystemLogs = cloneSlice(lines)
	s.markSuccess()
}

// Fail records a failed request. Previous data is kept so the UI keeps
// showing the last good snapshot; only the most recent error is retained.
func (s *Store) Fail(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
}

// SetNotice records an informational line (e.g. the backend auto-paused
// after a scan). Notices are not errors and survive successful fetches
// until cleared.
func (s *Store) SetNotice(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Notice = msg
}

// ClearNotice dismisses the informational line.
func (s *Store) ClearNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Notice = ""
}

// Snapshot returns an independent copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Logs = cloneSlice(s.snapshot.Logs)
	snap.ManualQueue = cloneSlice(s.snapshot.ManualQueue)
	snap.SystemLogs = cloneSlice(s.snapshot.SystemLogs)
	snap.Dashboard.RecentActivity = cloneSlice(s.snapshot.Dashboard.RecentActivity)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// markSuccess is called with the lock held after any successful apply.
func (s *Store) markSuccess() {
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
