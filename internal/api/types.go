package api

import "time"

// DashboardResponse mirrors the payload returned by /api/dashboard.
type DashboardResponse struct {
	System         SystemStatus    `json:"system"`
	Stats          Stats           `json:"stats"`
	RecentActivity []ActivityEntry `json:"recent_activity"`
}

// SystemStatus carries the agent's global flags.
type SystemStatus struct {
	IsPaused    bool   `json:"is_paused"`
	LastScan    string `json:"last_scan"`
	LastProcess string `json:"last_process"`
	Uptime      string `json:"uptime"`
}

// Stats aggregates generation progress counters.
type Stats struct {
	Products       ItemStats `json:"products"`
	Collections    ItemStats `json:"collections"`
	ManualQueue    int       `json:"manual_queue"`
	ProcessedToday int       `json:"processed_today"`
	TotalCompleted int       `json:"total_completed"`
}

// ItemStats counts one item kind (products or collections).
type ItemStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// ActivityEntry describes one row of the recent-activity list.
type ActivityEntry struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Updated string `json:"updated"`
}

// ParsedUpdated returns the entry timestamp as time.Time when possible.
func (a ActivityEntry) ParsedUpdated() time.Time {
	return parseTime(a.Updated)
}

// LogsResponse mirrors /api/logs.
type LogsResponse struct {
	Logs []GenerationLog `json:"logs"`
}

// GenerationLog is one completed generation record.
type GenerationLog struct {
	ItemID      string `json:"item_id"`
	ItemType    string `json:"item_type"`
	ItemTitle   string `json:"item_title"`
	Status      string `json:"status"`
	Model       string `json:"model"`
	GeneratedAt string `json:"generated_at"`
}

// ParsedGeneratedAt returns the parsed GeneratedAt timestamp.
func (g GenerationLog) ParsedGeneratedAt() time.Time {
	return parseTime(g.GeneratedAt)
}

// ManualQueueResponse mirrors GET /api/manual-queue.
type ManualQueueResponse struct {
	Items []ManualQueueItem `json:"items"`
}

// ManualQueueItem is a user-requested re-processing job held by the backend.
type ManualQueueItem struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	ItemType  string `json:"item_type"`
	Title     string `json:"title"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (m ManualQueueItem) ParsedCreatedAt() time.Time {
	return parseTime(m.CreatedAt)
}

// ManualQueueRequest is the body for POST /api/manual-queue.
type ManualQueueRequest struct {
	ItemID   string `json:"item_id"`
	ItemType string `json:"item_type"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Reason   string `json:"reason"`
}

// ScanResponse mirrors POST /api/scan. AutoPaused signals the backend
// paused generation on its own after the scan; it is informational, not
// an error.
type ScanResponse struct {
	Message    string `json:"message"`
	AutoPaused bool   `json:"auto_paused"`
}

// HealthResponse mirrors /api/health.
type HealthResponse struct {
	Services map[string]string `json:"services"`
}

// SystemLogsResponse mirrors /api/system-logs and /api/live-logs.
type SystemLogsResponse struct {
	Logs []SystemLogEntry `json:"logs"`
}

// SystemLogEntry is one raw backend log line.
type SystemLogEntry struct {
	Timestamp string `json:"timestamp"`
	Service   string `json:"service,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
}

// regenerateRequest is the body for POST /api/generate-content.
type regenerateRequest struct {
	ItemID     string `json:"item_id"`
	ItemType   string `json:"item_type"`
	Regenerate bool   `json:"regenerate"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
