package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"seodeck/internal/state"
)

func TestRefreshVisible_FetchesOnlyActiveView(t *testing.T) {
	tests := []struct {
		name       string
		view       state.View
		wantLogs   int
		wantQueue  int
		wantSystem int
	}{
		{name: "dashboard only", view: state.ViewDashboard},
		{name: "logs view", view: state.ViewLogs, wantLogs: 1},
		{name: "queue view", view: state.ViewManualQueue, wantQueue: 1},
		{name: "system view", view: state.ViewSystemLogs, wantSystem: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeService{}
			store := &state.Store{}
			store.SetView(tt.view)

			refreshVisible(context.Background(), store, fake, newLogger(""))

			if got := fake.calls(func(f *fakeService) int { return f.dashboardCalls }); got != 1 {
				t.Fatalf("dashboard calls = %d, want 1 on every tick", got)
			}
			if got := fake.calls(func(f *fakeService) int { return f.logsCalls }); got != tt.wantLogs {
				t.Errorf("logs calls = %d, want %d", got, tt.wantLogs)
			}
			if got := fake.calls(func(f *fakeService) int { return f.manualQueueCalls }); got != tt.wantQueue {
				t.Errorf("manual queue calls = %d, want %d", got, tt.wantQueue)
			}
			if got := fake.calls(func(f *fakeService) int { return f.systemLogsCalls }); got != tt.wantSystem {
				t.Errorf("system log calls = %d, want %d", got, tt.wantSystem)
			}
		})
	}
}

func TestRefreshVisible_RecordsFailure(t *testing.T) {
	fake := &fakeService{dashboardErr: errors.New("backend down")}
	store := &state.Store{}

	refreshVisible(context.Background(), store, fake, newLogger(""))

	snap := store.Snapshot()
	if snap.LastError == nil {
		t.Fatal("LastError = nil, want poll failure recorded")
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}

func TestRefreshVisible_DiscardsResultsAfterCancel(t *testing.T) {
	fake := &fakeService{dashboardErr: errors.New("backend down")}
	store := &state.Store{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	refreshVisible(ctx, store, fake, newLogger(""))

	// Teardown already ran; nothing may be written, not even the error.
	snap := store.Snapshot()
	if snap.LastError != nil || snap.ConsecutiveFailures != 0 {
		t.Fatalf("state written after cancel: err=%v failures=%d", snap.LastError, snap.ConsecutiveFailures)
	}
	if got := fake.calls(func(f *fakeService) int { return f.dashboardCalls }); got != 0 {
		t.Fatalf("dashboard calls = %d, want 0 after cancel", got)
	}
}

func TestStartPoller_TicksUntilCancelled(t *testing.T) {
	fake := &fakeService{}
	store := &state.Store{}

	ctx, cancel := context.WithCancel(context.Background())
	StartPoller(ctx, store, fake, newLogger(""), 5*time.Millisecond)

	deadline := time.After(2 * time.Second)
	for fake.calls(func(f *fakeService) int { return f.dashboardCalls }) < 3 {
		select {
		case <-deadline:
			t.Fatal("poller never reached 3 refreshes")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	// Allow the loop to observe cancellation, then verify it stopped.
	time.Sleep(20 * time.Millisecond)
	settled := fake.calls(func(f *fakeService) int { return f.dashboardCalls })
	time.Sleep(30 * time.Millisecond)
	if got := fake.calls(func(f *fakeService) int { return f.dashboardCalls }); got != settled {
		t.Fatalf("poller still refreshing after cancel: %d -> %d", settled, got)
	}
}
