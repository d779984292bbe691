package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Aqsa-Memon/TODO-APP/domain/task"
)

// Column widths for the task table. The title and description columns
// are truncated with an ellipsis when a value exceeds them.
const (
	columnWidthID      = 4
	columnWidthTitle   = 24
	columnWidthDesc    = 32
	columnWidthStatus  = 8
	columnWidthCreated = 16
)

type theme struct {
	accent  lipgloss.Color
	normal  lipgloss.Color
	faint   lipgloss.Color
	done    lipgloss.Color
	pending lipgloss.Color
	failure lipgloss.Color
}

func defaultTheme() theme {
	return theme{
		accent:  lipgloss.Color("14"),
		normal:  lipgloss.Color("15"),
		faint:   lipgloss.Color("242"),
		done:    lipgloss.Color("10"),
		pending: lipgloss.Color("11"),
		failure: lipgloss.Color("9"),
	}
}

// renderer produces all styled output for the console app.
type renderer struct {
	panel   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	dim     lipgloss.Style
	done    lipgloss.Style
	pending lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
}

func newRenderer(th theme) *renderer {
	return &renderer{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.accent).
			Padding(0, 1),
		header:  lipgloss.NewStyle().Foreground(th.accent).Bold(true),
		cell:    lipgloss.NewStyle().Foreground(th.normal),
		dim:     lipgloss.NewStyle().Foreground(th.faint),
		done:    lipgloss.NewStyle().Foreground(th.done).Bold(true),
		pending: lipgloss.NewStyle().Foreground(th.pending),
		ok:      lipgloss.NewStyle().Foreground(th.done).Bold(true),
		fail:    lipgloss.NewStyle().Foreground(th.failure).Bold(true),
	}
}

func (r *renderer) welcome() string {
	return r.panel.Render(r.header.Render("Welcome to the Todo Console App!"))
}

func (r *renderer) menu() string {
	items := []string{
		"[1] Add Task",
		"[2] View Tasks",
		"[3] Update Task",
		"[4] Toggle Complete",
		"[5] Delete Task",
		"[6] Exit",
	}
	body := r.header.Render("Todo App - Menu") + "\n" + strings.Join(items, "\n")
	return r.panel.Render(body)
}

func (r *renderer) success(format string, args ...any) string {
	return r.ok.Render("✓ " + fmt.Sprintf(format, args...))
}

func (r *renderer) failure(format string, args ...any) string {
	return r.fail.Render("✗ " + fmt.Sprintf(format, args...))
}

func (r *renderer) notice(text string) string {
	return r.pending.Render(text)
}

// taskTable renders tasks as a fixed-width table. An empty slice
// renders a hint to add a task instead of an empty table.
func (r *renderer) taskTable(tasks []*task.Task) string {
	if len(tasks) == 0 {
		return r.notice("No tasks yet. Add one!")
	}

	var b strings.Builder
	b.WriteString(r.header.Render("Your Tasks"))
	b.WriteByte('\n')
	b.WriteString(r.header.Render(tableRow("ID", "Title", "Description", "Status", "Created")))
	b.WriteByte('\n')
	b.WriteString(r.dim.Render(strings.Repeat("─", columnWidthID+columnWidthTitle+columnWidthDesc+columnWidthStatus+columnWidthCreated+8)))

	for _, t := range tasks {
		desc := t.Description
		if desc == "" {
			desc = "-"
		}
		status := "Pending"
		statusStyle := r.pending
		if t.Completed {
			status = "Done"
			statusStyle = r.done
		}
		b.WriteByte('\n')
		b.WriteString(r.cell.Render(tableCell(fmt.Sprintf("%d", t.ID), columnWidthID)))
		b.WriteString("  ")
		b.WriteString(r.cell.Render(tableCell(t.Title, columnWidthTitle)))
		b.WriteString("  ")
		b.WriteString(r.dim.Render(tableCell(desc, columnWidthDesc)))
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(tableCell(status, columnWidthStatus)))
		b.WriteString("  ")
		b.WriteString(r.dim.Render(t.CreatedAt.Format("2006-01-02 15:04")))
	}
	return b.String()
}

func tableRow(cells ...string) string {
	widths := []int{columnWidthID, columnWidthTitle, columnWidthDesc, columnWidthStatus, columnWidthCreated}
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = tableCell(c, widths[i])
	}
	return strings.Join(parts, "  ")
}

// tableCell pads or truncates s to exactly width runes. Truncation
// keeps width-1 runes and appends an ellipsis.
func tableCell(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
