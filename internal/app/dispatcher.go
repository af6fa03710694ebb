package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"seodeck/internal/api"
	"seodeck/internal/state"
)

const defaultSettleDelay = 1500 * time.Millisecond

// Dispatcher executes user-triggered mutating actions one at a time. While
// an action is outstanding every further trigger is dropped silently; after
// the action finishes (success or failure) the dispatcher waits the settle
// delay and re-fetches every visible endpoint so the UI shows current truth.
type Dispatcher struct {
	client  api.Service
	store   *state.Store
	log     *logrus.Logger
	settle  time.Duration
	pending atomic.Bool
}

// NewDispatcher builds a Dispatcher. settle <= 0 uses the default delay.
func NewDispatcher(client api.Service, store *state.Store, log *logrus.Logger, settle time.Duration) *Dispatcher {
	if settle <= 0 {
		settle = defaultSettleDelay
	}
	return &Dispatcher{client: client, store: store, log: log, settle: settle}
}

// Pending reports whether an action is currently in flight.
func (d *Dispatcher) Pending() bool {
	return d.pending.Load()
}

// Scan triggers a full Shopify scan. A backend that auto-paused generation
// after the scan reports it inside a successful response; that is surfaced
// as a notice, not an error.
func (d *Dispatcher) Scan(ctx context.Context) bool {
	return d.run(ctx, "scan", func(ctx context.Context) error {
		resp, err := d.client.TriggerScan(ctx)
		if err != nil {
			return err
		}
		if resp.AutoPaused {
			msg := resp.Message
			if msg == "" {
				msg = "scan started"
			}
			d.store.SetNotice(msg + " (generation auto-paused)")
		}
		return nil
	})
}

// ProcessQueue triggers a queue drain on the backend.
func (d *Dispatcher) ProcessQueue(ctx context.Context) bool {
	return d.run(ctx, "process-queue", d.client.TriggerProcessQueue)
}

// TogglePause flips the backend pause state.
func (d *Dispatcher) TogglePause(ctx context.Context) bool {
	return d.run(ctx, "toggle-pause", d.client.TogglePause)
}

// Regenerate forces content regeneration for one item.
func (d *Dispatcher) Regenerate(ctx context.Context, itemID, itemType string) bool {
	return d.run(ctx, "regenerate", func(ctx context.Context) error {
		return d.client.RegenerateItem(ctx, itemID, itemType)
	})
}

// AddManualItem submits a manual re-processing request.
func (d *Dispatcher) AddManualItem(ctx context.Context, req api.ManualQueueRequest) bool {
	return d.run(ctx, "manual-add", func(ctx context.Context) error {
		return d.client.SubmitManualItem(ctx, req)
	})
}

// RemoveManualItem deletes one manual-queue entry.
func (d *Dispatcher) RemoveManualItem(ctx context.Context, id string) bool {
	return d.run(ctx, "manual-remove", func(ctx context.Context) error {
		return d.client.RemoveManualItem(ctx, id)
	})
}

// TestConnection checks backend reachability. It mutates nothing, but flows
// through the same gate so a double-click cannot fire twice.
func (d *Dispatcher) TestConnection(ctx context.Context) bool {
	return d.run(ctx, "test-connection", func(ctx context.Context) error {
		health, err := d.client.FetchHealth(ctx)
		if err != nil {
			return err
		}
		d.store.SetNotice(fmt.Sprintf("backend reachable (%d services)", len(health.Services)))
		return nil
	})
}

// run is the single-flight gate. It returns false when another action was
// already pending and this trigger was dropped. The pending flag is a
// check-and-set; CompareAndSwap keeps it race-free across goroutines.
func (d *Dispatcher) run(ctx context.Context, name string, action func(context.Context) error) bool {
	if !d.pending.CompareAndSwap(false, true) {
		return false
	}
	defer d.pending.Store(false)

	if err := action(ctx); err != nil {
		// Caught here and surfaced via the store; the re-fetch below still
		// runs so the UI re-syncs after any attempt.
		d.store.Fail(err)
		d.log.WithField("action", name).WithError(err).Warn("action failed")
	} else {
		d.log.WithField("action", name).Info("action completed")
	}

	select {
	case <-ctx.Done():
		return true
	case <-time.After(d.settle):
	}
	refreshVisible(ctx, d.store, d.client, d.log)
	return true
}
