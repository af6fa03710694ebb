// Package api implements the typed HTTP client for the SEO agent backend.
//
// # Overview
//
// The backend exposes a small JSON REST surface: read-only snapshots
// (/api/dashboard, /api/logs, /api/manual-queue, /api/system-logs,
// /api/live-logs, /api/health) and control commands (/api/scan,
// /api/process-queue, /api/pause, /api/generate-content, plus POST/DELETE on
// /api/manual-queue). Every endpoint gets an explicit response record here;
// payload shape is validated at this boundary so the rest of the program
// never touches untyped JSON.
//
// # Error Model
//
// Any failed request surfaces as *Error carrying the HTTP status code and a
// best-effort message. Transport failures (timeout, refused connection, DNS)
// carry status code zero and render as "network: ...". Structured FastAPI
// error bodies ({"detail": ...}) are preferred over raw bodies when
// extracting the message.
//
// # Timeouts
//
// The embedded http.Client carries a fixed per-request timeout (default 30s).
// Callers additionally pass a context; either cancels the request.
package api
