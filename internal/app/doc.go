// Package app provides the orchestration layer for seodeck.
//
// # Overview
//
// This package wires together configuration, polling, the command
// dispatcher, state management, and the UI. It is the composition root where
// all dependencies are initialized and connected.
//
// # Components
//
//   - app.go: Run function connecting config, client, store, poller, UI
//   - poller.go: background goroutine refreshing the store on a fixed cadence
//   - dispatcher.go: single-flight gate around mutating backend commands
//   - logging.go: file-backed logrus logger (discarded when unconfigured)
//
// # Polling Behavior
//
// The poller fires at a configurable interval (default 10s). Each tick
// refreshes the dashboard snapshot plus the endpoint backing the view the UI
// currently shows; endpoints for hidden views are skipped. Ticks are not
// coordinated with each other: when a fetch is still in flight as the next
// tick fires both proceed, and whichever response resolves last overwrites
// the store. Teardown cancels future ticks only; in-flight requests finish
// and their results are discarded once the context is done.
//
// # Command Dispatch
//
// User actions (scan, process queue, pause toggle, manual queue add/remove,
// regenerate, connectivity test) run through Dispatcher.run: at most one
// action is in flight, extra triggers are dropped without error, and every
// attempt (failed or not) is followed by a settle delay and a full refresh
// of the visible endpoints. Action errors never escape; they land in the
// store as the single retained error line.
//
// # Error Handling
//
// Fatal errors (returned from Run): unreadable config, invalid API URL.
// Everything else is recoverable: poll and action failures are logged,
// recorded in the store, and polling continues. This lets seodeck survive
// backend restarts without crashing the view.
package app
