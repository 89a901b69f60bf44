package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/biorhythm/models"
)

const chartHeight = 11

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📈 Biorhythm"))
	b.WriteString("\n\n")
	b.WriteString(m.fieldsView())
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.tableView()))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.chartView()))
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(helpView())
	return b.String()
}

func (m Model) fieldsView() string {
	birth := models.FormatDate(m.state.BirthDate)
	viewed := models.FormatDate(m.state.ViewedDate)
	switch m.mode {
	case modeEditBirth:
		birth = m.input.View()
	case modeEditViewed:
		viewed = m.input.View()
	}
	if birth == "" {
		birth = mutedStyle.Render("(required)")
	}
	return fmt.Sprintf("%s %s    %s %s",
		headerStyle.Render("Birth date:"), birth,
		headerStyle.Render("Date to view:"), viewed)
}

func (m Model) tableView() string {
	header := fmt.Sprintf("%-10s  %12s  %13s  %16s  %11s",
		"Date", "Physical (%)", "Emotional (%)", "Intellectual (%)", "Average (%)")
	row, ok := m.state.Row()
	if !ok {
		return headerStyle.Render(header) + "\n" + mutedStyle.Render("No data for this date")
	}
	line := fmt.Sprintf("%-10s  %12d  %13d  %16d  %11d",
		models.FormatDate(row.Date), row.Physical, row.Emotional, row.Intellectual, row.Average)
	return headerStyle.Render(header) + "\n" + line
}

// chartView plots every cycle as colored dots, two columns per day. Later
// cycles overwrite earlier ones where they meet.
func (m Model) chartView() string {
	w := m.state.Dataset
	if len(w) == 0 {
		return mutedStyle.Render("No data.")
	}

	grid := make([][]string, chartHeight)
	for y := range grid {
		grid[y] = make([]string, len(w))
		for x := range grid[y] {
			grid[y][x] = "  "
		}
	}
	for _, c := range models.Cycles {
		style := seriesStyle(c.Color)
		for x, v := range w.Values(c) {
			y := chartRow(v)
			grid[y][x] = style.Render("● ")
		}
	}

	var b strings.Builder
	for y := 0; y < chartHeight; y++ {
		label := "   "
		switch y {
		case 0:
			label = "100"
		case chartHeight / 2:
			label = " 50"
		case chartHeight - 1:
			label = "  0"
		}
		b.WriteString(mutedStyle.Render(label + " │"))
		b.WriteString(strings.Join(grid[y], ""))
		b.WriteString("\n")
	}

	selected := w.Index(m.state.SelectedDate)
	var marks strings.Builder
	for x := range w {
		switch {
		case x == m.cursor:
			marks.WriteString(cursorStyle.Render("^ "))
		case x == selected:
			marks.WriteString(keyStyle.Render("| "))
		default:
			marks.WriteString("  ")
		}
	}
	b.WriteString("     " + marks.String() + "\n")
	b.WriteString(fmt.Sprintf("     %s … %s   cursor: %s\n",
		models.FormatDate(w[0].Date), models.FormatDate(w[len(w)-1].Date),
		cursorStyle.Render(models.FormatDate(w[m.cursor].Date))))
	b.WriteString("     " + legend())
	return b.String()
}

// chartRow maps a 0-100 score to a grid row, 100 on top.
func chartRow(v int) int {
	r := int(math.Round(float64(v) / 100 * float64(chartHeight-1)))
	return chartHeight - 1 - r
}

func legend() string {
	parts := make([]string, 0, len(models.Cycles))
	for _, c := range models.Cycles {
		parts = append(parts, seriesStyle(c.Color).Render("● "+c.Name))
	}
	return strings.Join(parts, "  ")
}

func (m Model) statusView() string {
	if m.err != nil {
		return errStyle.Render("✗ " + m.err.Error())
	}
	return mutedStyle.Render(m.status)
}

func helpView() string {
	keys := []struct{ key, desc string }{
		{"H/h", "-7/-1 day"},
		{"t", "today"},
		{"l/L", "+1/+7 day"},
		{"[ ]", "move cursor"},
		{"enter", "select point"},
		{"b/v", "edit birth/viewed date"},
		{"s", "recalculate"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, keyStyle.Render(k.key)+" "+mutedStyle.Render(k.desc))
	}
	return strings.Join(parts, "  ")
}
