package ui

import (
	"fmt"
	"strings"
	"time"

	"seodeck/internal/api"
)

func (m Model) selectedQueueItem() (api.ManualQueueItem, bool) {
	items := m.snapshot.ManualQueue
	if len(items) == 0 || m.queueCursor >= len(items) {
		return api.ManualQueueItem{}, false
	}
	return items[m.queueCursor], true
}

func (m Model) selectedActivity() (api.ActivityEntry, bool) {
	entries := m.snapshot.Dashboard.RecentActivity
	if len(entries) == 0 || m.activityCursor >= len(entries) {
		return api.ActivityEntry{}, false
	}
	return entries[m.activityCursor], true
}

// truncate shortens s to width runes, appending an ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// relativeTime renders a short "ago" string for list rows.
func relativeTime(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// progressRatio formats "completed/total (pct%)" for a counter pair.
func progressRatio(completed, total int) string {
	if total <= 0 {
		return "0/0"
	}
	pct := float64(completed) / float64(total) * 100
	return fmt.Sprintf("%d/%d (%.0f%%)", completed, total, pct)
}

// statusStyle picks a text style for an item status.
func (m Model) statusStyle(status string) func(...string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed", "done", "success":
		return m.styles.SuccessText.Render
	case "failed", "error":
		return m.styles.DangerText.Render
	case "processing", "generating":
		return m.styles.InfoText.Render
	default:
		return m.styles.MutedText.Render
	}
}
