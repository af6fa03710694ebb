package ui

import (
	"fmt"
	"strings"
	"time"

	"seodeck/internal/state"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.snapshot.LastError != nil {
		b.WriteString(m.styles.Banner.Render("ERROR " + m.snapshot.LastError.Error()))
		b.WriteString("\n")
	}
	if m.snapshot.Notice != "" {
		b.WriteString(m.styles.Notice.Render("NOTICE " + m.snapshot.Notice + "  (n to dismiss)"))
		b.WriteString("\n")
	}

	if m.form != nil {
		b.WriteString(m.styles.Panel.Render(m.form.view(m.styles)))
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
		return b.String()
	}

	switch m.view {
	case state.ViewLogs:
		b.WriteString(m.renderLogs())
	case state.ViewManualQueue:
		b.WriteString(m.renderManualQueue())
	case state.ViewSystemLogs:
		b.WriteString(m.renderSystemLogs())
	default:
		b.WriteString(m.renderDashboard())
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.renderHelp())
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	parts := []string{m.styles.Title.Render("seodeck")}

	switch {
	case !m.snapshot.HasDashboard && m.snapshot.LastError != nil:
		parts = append(parts, m.styles.DangerText.Render("BACKEND UNREACHABLE"))
	case !m.snapshot.HasDashboard:
		parts = append(parts, m.styles.MutedText.Render("connecting..."))
	case m.snapshot.IsOffline():
		parts = append(parts, m.styles.DangerText.Render("OFFLINE"), m.styles.WarningText.Render("retrying..."))
	case m.snapshot.Dashboard.System.IsPaused:
		parts = append(parts, m.styles.WarningText.Render("PAUSED"))
	default:
		parts = append(parts, m.styles.SuccessText.Render("RUNNING"))
	}

	if m.dispatcher.Pending() {
		parts = append(parts, m.spin.View()+m.styles.AccentText.Render("working"))
	}
	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, m.styles.MutedText.Render("updated "+m.snapshot.LastUpdated.Format("15:04:05")))
	}

	parts = append(parts, m.styles.MutedText.Render(viewTabs(m.view)))
	return strings.Join(parts, "  ")
}

func viewTabs(active state.View) string {
	names := []string{"1:dashboard", "2:logs", "3:queue", "4:system"}
	order := []state.View{state.ViewDashboard, state.ViewLogs, state.ViewManualQueue, state.ViewSystemLogs}
	for i, v := range order {
		if v == active {
			names[i] = "[" + names[i] + "]"
		}
	}
	return strings.Join(names, " ")
}

func (m Model) renderDashboard() string {
	if !m.snapshot.HasDashboard {
		return m.styles.MutedText.Render("  waiting for first snapshot...")
	}
	d := m.snapshot.Dashboard
	now := time.Now()

	var b strings.Builder
	stats := fmt.Sprintf(
		"Products    %s pending %d\nCollections %s pending %d\n\nManual queue %d · Processed today %d · Total completed %d",
		progressRatio(d.Stats.Products.Completed, d.Stats.Products.Total), d.Stats.Products.Pending,
		progressRatio(d.Stats.Collections.Completed, d.Stats.Collections.Total), d.Stats.Collections.Pending,
		d.Stats.ManualQueue, d.Stats.ProcessedToday, d.Stats.TotalCompleted,
	)
	if d.System.LastScan != "" {
		stats += "\nLast scan " + d.System.LastScan
	}
	b.WriteString(m.styles.Panel.Render(stats))
	b.WriteString("\n")

	b.WriteString(m.styles.AccentText.Render(" Recent activity"))
	b.WriteString("\n")
	if len(d.RecentActivity) == 0 {
		b.WriteString(m.styles.MutedText.Render("  nothing generated yet"))
		return b.String()
	}
	for i, entry := range d.RecentActivity {
		line := fmt.Sprintf(" %-10s %-12s %-40s %s",
			entry.Type,
			m.statusStyle(entry.Status)(entry.Status),
			truncate(entry.Title, 40),
			relativeTime(entry.ParsedUpdated(), now),
		)
		if i == m.activityCursor {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderLogs() string {
	if len(m.snapshot.Logs) == 0 {
		return m.styles.MutedText.Render("  no generation history yet")
	}
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(" Generation history"))
	b.WriteString("\n")
	for _, entry := range m.snapshot.Logs {
		ts := entry.ParsedGeneratedAt()
		stamp := "-"
		if !ts.IsZero() {
			stamp = ts.Format("01-02 15:04")
		}
		b.WriteString(fmt.Sprintf(" %s %-10s %-14s %s\n",
			m.styles.MutedText.Render(stamp),
			entry.ItemType,
			m.statusStyle(entry.Status)(entry.Status),
			truncate(entry.ItemTitle, 48),
		))
	}
	return b.String()
}

func (m Model) renderManualQueue() string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(" Manual queue"))
	b.WriteString("\n")
	if len(m.snapshot.ManualQueue) == 0 {
		b.WriteString(m.styles.MutedText.Render("  empty · press a to queue an item"))
		return b.String()
	}
	now := time.Now()
	for i, item := range m.snapshot.ManualQueue {
		line := fmt.Sprintf(" %-10s %-14s %-36s %-16s %s",
			item.ItemType,
			item.ItemID,
			truncate(item.Title, 36),
			truncate(item.Reason, 16),
			relativeTime(item.ParsedCreatedAt(), now),
		)
		if i == m.queueCursor {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSystemLogs() string {
	if len(m.snapshot.SystemLogs) == 0 {
		return m.styles.MutedText.Render("  no system logs")
	}
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(" System logs"))
	b.WriteString("\n")
	for _, entry := range m.snapshot.SystemLogs {
		label := entry.Level
		if label == "" {
			label = entry.Service
		}
		b.WriteString(fmt.Sprintf(" %s %-8s %s\n",
			m.styles.MutedText.Render(entry.Timestamp),
			m.styles.InfoText.Render(label),
			truncate(entry.Message, 90),
		))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	rows := []string{
		"s scan store · g process queue · space pause/resume · t test connection",
		"a queue item manually · x remove selected · r regenerate selected",
		"tab/1-4 switch views · T cycle theme · n dismiss notice · q quit",
	}
	return m.styles.Panel.Render(strings.Join(rows, "\n"))
}

func (m Model) renderFooter() string {
	return m.styles.Footer.Render("? help · tab views · s scan · g process · space pause · q quit")
}
