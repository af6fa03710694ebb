// Package ui implements the seodeck terminal interface on bubbletea.
//
// The model reads immutable snapshots out of the shared state store on a
// one-second tick and never talks to the backend directly: reads arrive via
// the background poller, mutations leave through the Dispatcher interface,
// each wrapped in a tea.Cmd so the event loop stays responsive. Views are
// dashboard, generation logs, manual queue, and system logs; the store is
// told which one is active so the poller can skip the rest.
package ui
