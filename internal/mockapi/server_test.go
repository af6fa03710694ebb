package mockapi

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"seodeck/internal/api"
)

func newTestClient(t *testing.T, server *Server) *api.Client {
	t.Helper()
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	client, err := api.NewClient(ts.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client
}

func TestManualQueueRoundTrip(t *testing.T) {
	client := newTestClient(t, New())
	ctx := context.Background()

	err := client.SubmitManualItem(ctx, api.ManualQueueRequest{
		ItemID:   "789",
		ItemType: "collection",
		Title:    "Summer Sale",
		Reason:   "missing_seo",
	})
	if err != nil {
		t.Fatalf("SubmitManualItem returned error: %v", err)
	}

	items, err := client.FetchManualQueue(ctx)
	if err != nil {
		t.Fatalf("FetchManualQueue returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("queue length = %d, want 1", len(items))
	}
	got := items[0]
	if got.ItemID != "789" || got.ItemType != "collection" || got.Title != "Summer Sale" || got.Reason != "missing_seo" {
		t.Fatalf("round-tripped item = %+v, want submitted fields back", got)
	}
	if got.ID == "" || got.CreatedAt == "" {
		t.Fatalf("item = %+v, want server-assigned id and timestamp", got)
	}

	if err := client.RemoveManualItem(ctx, got.ID); err != nil {
		t.Fatalf("RemoveManualItem returned error: %v", err)
	}
	items, err = client.FetchManualQueue(ctx)
	if err != nil {
		t.Fatalf("FetchManualQueue returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("queue length after remove = %d, want 0", len(items))
	}
}

func TestRemoveUnknownItemReturns404Detail(t *testing.T) {
	client := newTestClient(t, New())

	err := client.RemoveManualItem(context.Background(), "does-not-exist")
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *api.Error", err)
	}
	if apiErr.StatusCode != 404 || !strings.Contains(apiErr.Message, "not found") {
		t.Fatalf("error = %+v, want 404 with detail message", apiErr)
	}
}

func TestScanAutoPauseFlowsToDashboard(t *testing.T) {
	server := New()
	server.SetAutoPause(true)
	client := newTestClient(t, server)
	ctx := context.Background()

	scan, err := client.TriggerScan(ctx)
	if err != nil {
		t.Fatalf("TriggerScan returned error: %v", err)
	}
	if !scan.AutoPaused {
		t.Fatal("AutoPaused = false, want true with auto-pause enabled")
	}

	dashboard, err := client.FetchDashboard(ctx)
	if err != nil {
		t.Fatalf("FetchDashboard returned error: %v", err)
	}
	if !dashboard.System.IsPaused {
		t.Fatal("IsPaused = false, want the auto-pause reflected in the snapshot")
	}
	if dashboard.System.LastScan == "" {
		t.Fatal("LastScan empty, want scan timestamp recorded")
	}
}

func TestPauseToggleRoundTrip(t *testing.T) {
	client := newTestClient(t, New())
	ctx := context.Background()

	if err := client.TogglePause(ctx); err != nil {
		t.Fatalf("TogglePause returned error: %v", err)
	}
	d, err := client.FetchDashboard(ctx)
	if err != nil {
		t.Fatalf("FetchDashboard returned error: %v", err)
	}
	if !d.System.IsPaused {
		t.Fatal("IsPaused = false after toggle, want true")
	}

	if err := client.TogglePause(ctx); err != nil {
		t.Fatalf("TogglePause returned error: %v", err)
	}
	d, err = client.FetchDashboard(ctx)
	if err != nil {
		t.Fatalf("FetchDashboard returned error: %v", err)
	}
	if d.System.IsPaused {
		t.Fatal("IsPaused = true after second toggle, want false")
	}
}

func TestProcessQueueAdvancesCounters(t *testing.T) {
	client := newTestClient(t, New())
	ctx := context.Background()

	before, err := client.FetchDashboard(ctx)
	if err != nil {
		t.Fatalf("FetchDashboard returned error: %v", err)
	}
	if err := client.TriggerProcessQueue(ctx); err != nil {
		t.Fatalf("TriggerProcessQueue returned error: %v", err)
	}
	after, err := client.FetchDashboard(ctx)
	if err != nil {
		t.Fatalf("FetchDashboard returned error: %v", err)
	}

	if after.Stats.Products.Completed != before.Stats.Products.Completed+1 {
		t.Fatalf("completed %d -> %d, want +1", before.Stats.Products.Completed, after.Stats.Products.Completed)
	}
	if after.Stats.Products.Pending != before.Stats.Products.Pending-1 {
		t.Fatalf("pending %d -> %d, want -1", before.Stats.Products.Pending, after.Stats.Products.Pending)
	}
}

func TestRegenerateValidatesAndLogs(t *testing.T) {
	client := newTestClient(t, New())
	ctx := context.Background()

	if err := client.RegenerateItem(ctx, "1001", "product"); err != nil {
		t.Fatalf("RegenerateItem returned error: %v", err)
	}
	logs, err := client.FetchLogs(ctx)
	if err != nil {
		t.Fatalf("FetchLogs returned error: %v", err)
	}
	found := false
	for _, entry := range logs {
		if entry.ItemID == "1001" && entry.Status == "queued" {
			found = true
		}
	}
	if !found {
		t.Fatalf("logs = %+v, want queued entry for 1001", logs)
	}
}

func TestHealthAndSystemLogs(t *testing.T) {
	client := newTestClient(t, New())
	ctx := context.Background()

	health, err := client.FetchHealth(ctx)
	if err != nil {
		t.Fatalf("FetchHealth returned error: %v", err)
	}
	if len(health.Services) == 0 {
		t.Fatal("Services empty, want per-service statuses")
	}

	lines, err := client.FetchSystemLogs(ctx)
	if err != nil {
		t.Fatalf("FetchSystemLogs returned error: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("system logs empty, want seeded startup line")
	}

	// live-logs serves the same tail
	live, err := client.FetchLiveLogs(ctx)
	if err != nil {
		t.Fatalf("FetchLiveLogs returned error: %v", err)
	}
	if len(live) != len(lines) {
		t.Fatalf("live logs = %d lines, want %d", len(live), len(lines))
	}
}
