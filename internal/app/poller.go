package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"seodeck/internal/api"
	"seodeck/internal/state"
)

const defaultPollInterval = 10 * time.Second

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence. It returns immediately; the goroutine stops when ctx is
// cancelled.
func StartPoller(ctx context.Context, store *state.Store, client api.Service, log *logrus.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			// Ticks are fire-and-forget: a slow fetch from one tick may
			// still be in flight when the next fires, and the last response
			// to resolve wins. Accepted inconsistency window.
			go refreshVisible(ctx, store, client, log)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// refreshVisible fetches the dashboard snapshot plus whatever extra endpoint
// backs the view currently on screen. Inactive views skip their fetch to
// keep backend load down.
func refreshVisible(ctx context.Context, store *state.Store, client api.Service, log *logrus.Logger) {
	if ctx.Err() != nil {
		return
	}

	if dashboard, err := client.FetchDashboard(ctx); err != nil {
		recordFailure(ctx, store, log, "dashboard", err)
	} else {
		store.ApplyDashboard(dashboard)
	}

	switch store.View() {
	case state.ViewLogs:
		if logs, err := client.FetchLogs(ctx); err != nil {
			recordFailure(ctx, store, log, "logs", err)
		} else {
			store.ApplyLogs(logs)
		}
	case state.ViewManualQueue:
		if items, err := client.FetchManualQueue(ctx); err != nil {
			recordFailure(ctx, store, log, "manual-queue", err)
		} else {
			store.ApplyManualQueue(items)
		}
	case state.ViewSystemLogs:
		if lines, err := client.FetchSystemLogs(ctx); err != nil {
			recordFailure(ctx, store, log, "system-logs", err)
		} else {
			store.ApplySystemLogs(lines)
		}
	}
}

// recordFailure stores a poll error unless the program is shutting down, in
// which case the result is simply discarded.
func recordFailure(ctx context.Context, store *state.Store, log *logrus.Logger, endpoint string, err error) {
	if ctx.Err() != nil {
		return
	}
	store.Fail(err)
	log.WithField("endpoint", endpoint).WithError(err).Warn("poll failed")
}
