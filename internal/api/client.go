package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Service defines the backend surface the dashboard consumes. It is
// implemented by *Client and can be faked for testing.
type Service interface {
	FetchDashboard(ctx context.Context) (*DashboardResponse, error)
	FetchLogs(ctx context.Context) ([]GenerationLog, error)
	FetchManualQueue(ctx context.Context) ([]ManualQueueItem, error)
	FetchSystemLogs(ctx context.Context) ([]SystemLogEntry, error)
	FetchLiveLogs(ctx context.Context) ([]SystemLogEntry, error)
	FetchHealth(ctx context.Context) (*HealthResponse, error)
	TriggerScan(ctx context.Context) (*ScanResponse, error)
	TriggerProcessQueue(ctx context.Context) error
	TogglePause(ctx context.Context) error
	RegenerateItem(ctx context.Context, itemID, itemType string) error
	SubmitManualItem(ctx context.Context, req ManualQueueRequest) error
	RemoveManualItem(ctx context.Context, id string) error
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client talks to the SEO agent HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://localhost:8000"
	defaultUserAgent = "seodeck/0.1"
	defaultTimeout   = 30 * time.Second
)

// NewClient builds a Client for the given base URL. An empty rawURL falls
// back to the default local backend; trailing slashes are stripped so path
// concatenation stays predictable. timeout <= 0 uses the default.
func NewClient(rawURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchDashboard retrieves the full status snapshot.
func (c *Client) FetchDashboard(ctx context.Context) (*DashboardResponse, error) {
	var payload DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchLogs retrieves the generation history.
func (c *Client) FetchLogs(ctx context.Context) ([]GenerationLog, error) {
	var payload LogsResponse
	if err := c.do(ctx, http.MethodGet, "/api/logs", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Logs, nil
}

// FetchManualQueue retrieves pending manual re-processing requests.
func (c *Client) FetchManualQueue(ctx context.Context) ([]ManualQueueItem, error) {
	var payload ManualQueueResponse
	if err := c.do(ctx, http.MethodGet, "/api/manual-queue", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// FetchSystemLogs retrieves the backend's raw log tail.
func (c *Client) FetchSystemLogs(ctx context.Context) ([]SystemLogEntry, error) {
	var payload SystemLogsResponse
	if err := c.do(ctx, http.MethodGet, "/api/system-logs", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Logs, nil
}

// FetchLiveLogs retrieves the streaming log tail endpoint.
func (c *Client) FetchLiveLogs(ctx context.Context) ([]SystemLogEntry, error) {
	var payload SystemLogsResponse
	if err := c.do(ctx, http.MethodGet, "/api/live-logs", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Logs, nil
}

// FetchHealth checks backend connectivity and per-service liveness.
func (c *Client) FetchHealth(ctx context.Context) (*HealthResponse, error) {
	var payload HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TriggerScan asks the backend to run a full Shopify scan.
func (c *Client) TriggerScan(ctx context.Context) (*ScanResponse, error) {
	var payload ScanResponse
	if err := c.do(ctx, http.MethodPost, "/api/scan", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TriggerProcessQueue asks the backend to drain its generation queue.
func (c *Client) TriggerProcessQueue(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/process-queue", nil, nil)
}

// TogglePause flips the backend pause state.
func (c *Client) TogglePause(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/pause", nil, nil)
}

// RegenerateItem forces content regeneration for one item.
func (c *Client) RegenerateItem(ctx context.Context, itemID, itemType string) error {
	body := regenerateRequest{ItemID: itemID, ItemType: itemType, Regenerate: true}
	return c.do(ctx, http.MethodPost, "/api/generate-content", body, nil)
}

// SubmitManualItem enqueues a manual re-processing request.
func (c *Client) SubmitManualItem(ctx context.Context, req ManualQueueRequest) error {
	return c.do(ctx, http.MethodPost, "/api/manual-queue", req, nil)
}

// RemoveManualItem deletes one manual-queue entry by its backend id.
func (c *Client) RemoveManualItem(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("manual queue id required")
	}
	return c.do(ctx, http.MethodDelete, "/api/manual-queue/"+url.PathEscape(id), nil, nil)
}

// do performs one request. path must already be escaped; it is concatenated
// onto the normalized base URL (no trailing slash). Failures of any kind come
// back as *Error so the UI can show a single status line; success with a nil
// dest discards the body.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.String() + path

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return responseError(resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", rawURL, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
