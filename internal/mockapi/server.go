package mockapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"seodeck/internal/api"
)

// Server is an in-memory stand-in for the SEO agent backend. It implements
// the full REST surface the dashboard consumes, which makes it useful both
// as a local development target and as an integration-test fixture.
type Server struct {
	mu sync.Mutex

	paused      bool
	lastScan    time.Time
	products    api.ItemStats
	collections api.ItemStats

	processedToday int
	totalCompleted int

	activity []api.ActivityEntry
	genLogs  []api.GenerationLog
	queue    []api.ManualQueueItem
	sysLogs  []api.SystemLogEntry

	autoPauseOnScan bool
}

// New returns a Server seeded with a small plausible store.
func New() *Server {
	now := time.Now().UTC()
	return &Server{
		products:       api.ItemStats{Total: 24, Completed: 9, Pending: 15},
		collections:    api.ItemStats{Total: 6, Completed: 2, Pending: 4},
		processedToday: 3,
		totalCompleted: 11,
		activity: []api.ActivityEntry{
			{ID: "1001", Type: "product", Title: "Walnut Desk Organizer", Status: "completed", Updated: now.Add(-10 * time.Minute).Format(time.RFC3339)},
			{ID: "2001", Type: "collection", Title: "Home Office", Status: "processing", Updated: now.Add(-2 * time.Minute).Format(time.RFC3339)},
		},
		genLogs: []api.GenerationLog{
			{ItemID: "1001", ItemType: "product", ItemTitle: "Walnut Desk Organizer", Status: "completed", GeneratedAt: now.Add(-10 * time.Minute).Format(time.RFC3339)},
		},
		sysLogs: []api.SystemLogEntry{
			{Timestamp: now.Format(time.RFC3339), Level: "info", Message: "backend started"},
		},
	}
}

// SetAutoPause makes the next scan report auto_paused, which the dashboard
// surfaces as a notice.
func (s *Server) SetAutoPause(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoPauseOnScan = v
}

// Handler returns the router serving the REST surface.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/dashboard", s.handleDashboard).Methods(http.MethodGet)
	r.HandleFunc("/api/logs", s.handleLogs).Methods(http.MethodGet)
	r.HandleFunc("/api/manual-queue", s.handleManualQueueList).Methods(http.MethodGet)
	r.HandleFunc("/api/manual-queue", s.handleManualQueueAdd).Methods(http.MethodPost)
	r.HandleFunc("/api/manual-queue/{id}", s.handleManualQueueRemove).Methods(http.MethodDelete)
	r.HandleFunc("/api/scan", s.handleScan).Methods(http.MethodPost)
	r.HandleFunc("/api/process-queue", s.handleProcessQueue).Methods(http.MethodPost)
	r.HandleFunc("/api/pause", s.handlePause).Methods(http.MethodPost)
	r.HandleFunc("/api/generate-content", s.handleGenerate).Methods(http.MethodPost)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/system-logs", s.handleSystemLogs).Methods(http.MethodGet)
	r.HandleFunc("/api/live-logs", s.handleSystemLogs).Methods(http.MethodGet)
	return r
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	lastScan := ""
	if !s.lastScan.IsZero() {
		lastScan = s.lastScan.Format(time.RFC3339)
	}
	resp := api.DashboardResponse{
		System: api.SystemStatus{IsPaused: s.paused, LastScan: lastScan},
		Stats: api.Stats{
			Products:       s.products,
			Collections:    s.collections,
			ManualQueue:    len(s.queue),
			ProcessedToday: s.processedToday,
			TotalCompleted: s.totalCompleted,
		},
		RecentActivity: append([]api.ActivityEntry(nil), s.activity...),
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogs(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := api.LogsResponse{Logs: append([]api.GenerationLog(nil), s.genLogs...)}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleManualQueueList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := api.ManualQueueResponse{Items: append([]api.ManualQueueItem(nil), s.queue...)}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleManualQueueAdd(w http.ResponseWriter, r *http.Request) {
	var req api.ManualQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.ItemID == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "item_id required")
		return
	}
	itemType := req.ItemType
	if itemType == "" {
		itemType = "product"
	}
	item := api.ManualQueueItem{
		ID:        uuid.NewString(),
		ItemID:    req.ItemID,
		ItemType:  itemType,
		Title:     req.Title,
		Reason:    req.Reason,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.mu.Lock()
	s.queue = append(s.queue, item)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleManualQueueRemove(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.queue {
		if item.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "manual queue item not found")
}

func (s *Server) handleScan(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.lastScan = time.Now().UTC()
	s.appendLogLocked("info", "scan started")
	resp := api.ScanResponse{Message: "Scan initiated"}
	if s.autoPauseOnScan {
		s.paused = true
		resp.AutoPaused = true
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProcessQueue(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	// Pretend one pending product finished.
	if s.products.Pending > 0 {
		s.products.Pending--
		s.products.Completed++
		s.processedToday++
		s.totalCompleted++
	}
	s.appendLogLocked("info", "queue processing started")
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Processing initiated"})
}

func (s *Server) handlePause(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.paused = !s.paused
	state := "resumed"
	if s.paused {
		state = "paused"
	}
	s.appendLogLocked("info", "generation "+state)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"message": state})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID   string `json:"item_id"`
		ItemType string `json:"item_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "item_id required")
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)
	s.mu.Lock()
	s.genLogs = append(s.genLogs, api.GenerationLog{
		ItemID: req.ItemID, ItemType: req.ItemType, Status: "queued", GeneratedAt: now,
	})
	s.appendLogLocked("info", "regeneration queued for "+req.ItemID)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Queued for processing", "item_id": req.ItemID})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{Services: map[string]string{
		"database": "ok",
		"shopify":  "ok",
		"llm":      "ok",
	}})
}

func (s *Server) handleSystemLogs(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := api.SystemLogsResponse{Logs: append([]api.SystemLogEntry(nil), s.sysLogs...)}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

// appendLogLocked records one system log line; callers hold s.mu.
func (s *Server) appendLogLocked(level, msg string) {
	s.sysLogs = append(s.sysLogs, api.SystemLogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Message:   msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
