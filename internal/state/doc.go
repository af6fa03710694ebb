// Package state provides the thread-safe snapshot store shared by the
// background poller, the command dispatcher, and the UI.
//
// # Overview
//
// The Store is the single coordination point: the poller and dispatcher
// write sections into it, the UI reads immutable copies out of it at its
// own refresh rate.
//
//	Producers (poller, dispatcher):      Consumer (UI):
//	┌──────────────────────┐            ┌──────────────────┐
//	│ FetchDashboard() ... │            │                  │
//	│        ↓             │            │                  │
//	│ store.ApplyX() /     │───────────→│ store.Snapshot() │
//	│ store.Fail()         │  (mutex)   │        ↓         │
//	└──────────────────────┘            │   render views   │
//	                                    └──────────────────┘
//
// # Update Semantics
//
// Each Apply replaces its section wholesale; there are no partial merges, so
// a Snapshot is always self-consistent. A failed request records only the
// error and keeps the previous data on screen:
//
//	store.ApplyDashboard(d)   // section replaced, error cleared
//	store.Fail(err)           // data untouched, error retained
//
// Exactly one error is retained at a time (the most recent) and any
// successful apply of any section clears it. Notices are a separate
// informational channel: they describe soft conditions reported inside
// successful responses (backend auto-pause) and are only cleared explicitly.
//
// # Concurrency
//
// A sync.RWMutex guards the snapshot; Apply/Fail take the write lock,
// Snapshot the read lock. Snapshot returns defensive copies of every slice
// and a cloned error value, so callers can never mutate shared state. The
// zero Store is ready to use.
package state
