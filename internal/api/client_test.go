package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("example.com:1234")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:1234" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("http://example.com/api/v1///")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/api/v1" {
		t.Fatalf("trailing slashes kept: %q", u.Path)
	}
}

func TestClient_FetchDashboardParsesSnapshot(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		if r.URL.Path != "/api/dashboard" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"system": {"is_paused": false},
			"stats": {"products": {"total": 10, "completed": 4, "pending": 6}},
			"recent_activity": []
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	dashboard, err := c.FetchDashboard(ctx)
	if err != nil {
		t.Fatalf("FetchDashboard returned error: %v", err)
	}
	if dashboard.System.IsPaused {
		t.Fatal("IsPaused = true, want false")
	}
	p := dashboard.Stats.Products
	if p.Total != 10 || p.Completed != 4 || p.Pending != 6 {
		t.Fatalf("products = %+v, want total=10 completed=4 pending=6", p)
	}
	if len(dashboard.RecentActivity) != 0 {
		t.Fatalf("activity = %v, want empty", dashboard.RecentActivity)
	}
	if !strings.HasPrefix(gotUserAgent, "seodeck/") {
		t.Fatalf("User-Agent = %q, want seodeck/*", gotUserAgent)
	}
}

func TestClient_MutationsEncodeBodies(t *testing.T) {
	t.Parallel()

	var gotManualBody map[string]any
	var gotRegenBody map[string]any
	var gotDeletePath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/manual-queue":
			_ = json.NewDecoder(r.Body).Decode(&gotManualBody)
			_, _ = w.Write([]byte(`{}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/generate-content":
			_ = json.NewDecoder(r.Body).Decode(&gotRegenBody)
			_, _ = w.Write([]byte(`{}`))
		case r.Method == http.MethodDelete:
			gotDeletePath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPost && r.URL.Path == "/api/scan":
			_ = json.NewEncoder(w).Encode(ScanResponse{Message: "ok", AutoPaused: true})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	err = c.SubmitManualItem(ctx, ManualQueueRequest{
		ItemID: "123", ItemType: "product", Title: "Desk", Reason: "refresh",
	})
	if err != nil {
		t.Fatalf("SubmitManualItem returned error: %v", err)
	}
	if gotManualBody["item_id"] != "123" ||
		gotManualBody["item_type"] != "product" ||
		gotManualBody["title"] != "Desk" ||
		gotManualBody["reason"] != "refresh" {
		t.Fatalf("manual queue body = %v, want submitted fields", gotManualBody)
	}
	if _, present := gotManualBody["url"]; present {
		t.Fatalf("empty url should be omitted, body = %v", gotManualBody)
	}

	if err := c.RegenerateItem(ctx, "456", "collection"); err != nil {
		t.Fatalf("RegenerateItem returned error: %v", err)
	}
	if gotRegenBody["item_id"] != "456" || gotRegenBody["item_type"] != "collection" || gotRegenBody["regenerate"] != true {
		t.Fatalf("regenerate body = %v, want item with regenerate=true", gotRegenBody)
	}

	if err := c.RemoveManualItem(ctx, "abc def"); err != nil {
		t.Fatalf("RemoveManualItem returned error: %v", err)
	}
	if gotDeletePath != "/api/manual-queue/abc%20def" && gotDeletePath != "/api/manual-queue/abc def" {
		t.Fatalf("delete path = %q, want escaped id under /api/manual-queue/", gotDeletePath)
	}

	scan, err := c.TriggerScan(ctx)
	if err != nil {
		t.Fatalf("TriggerScan returned error: %v", err)
	}
	if !scan.AutoPaused || scan.Message != "ok" {
		t.Fatalf("scan = %+v, want auto_paused message=ok", scan)
	}
}

func TestClient_RemoveManualItemRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.RemoveManualItem(context.Background(), "  "); err == nil {
		t.Fatal("RemoveManualItem returned nil error, want error")
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/dashboard":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"boom"}`))
		case "/api/logs":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream fell over"))
		case "/api/health":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	// HTTP error with a structured detail field.
	_, err = c.FetchDashboard(ctx)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("FetchDashboard error = %T, want *Error", err)
	}
	if apiErr.StatusCode != 500 || apiErr.Message != "boom" {
		t.Fatalf("error = %+v, want 500/boom", apiErr)
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("error text = %q, want both status and message", err.Error())
	}

	// HTTP error with a plain text body.
	_, err = c.FetchLogs(ctx)
	if !errors.As(err, &apiErr) {
		t.Fatalf("FetchLogs error = %T, want *Error", err)
	}
	if apiErr.StatusCode != 502 || apiErr.Message != "upstream fell over" {
		t.Fatalf("error = %+v, want 502 with raw body", apiErr)
	}

	// Decode failure on a 200 is not an *Error; the request itself worked.
	_, err = c.FetchHealth(ctx)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchHealth error = %v, want decode response error", err)
	}
}

func TestClient_TransportFailureReportsNetwork(t *testing.T) {
	// Nothing listens here; the connection is refused immediately.
	c, err := NewClient("127.0.0.1:1", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchDashboard(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if apiErr.StatusCode != 0 {
		t.Fatalf("StatusCode = %d, want 0 for transport failure", apiErr.StatusCode)
	}
	if !strings.HasPrefix(err.Error(), "network:") {
		t.Fatalf("error text = %q, want network prefix", err.Error())
	}
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"fastapi detail", `{"detail":"boom"}`, "boom"},
		{"error field", `{"error":"nope"}`, "nope"},
		{"message field", `{"message":"sorry"}`, "sorry"},
		{"detail wins", `{"detail":"a","error":"b"}`, "a"},
		{"raw body", "plain text failure", "plain text failure"},
		{"empty body", "", "Internal Server Error"},
		{"empty json", `{}`, "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractMessage([]byte(tt.body), 500)
			if got != tt.want {
				t.Errorf("extractMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}
