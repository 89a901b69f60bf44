// Package export renders biorhythm windows outside the browser: a PNG
// chart, JSON, and a text table.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/biorhythm/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var seriesColors = map[string]drawing.Color{
	"red":    drawing.ColorRed,
	"blue":   drawing.ColorBlue,
	"green":  drawing.ColorGreen,
	"purple": drawing.ColorFromHex("800080"),
}

func seriesStyle(color string) chart.Style {
	c, ok := seriesColors[color]
	if !ok {
		c = chart.ColorAlternateGray
	}
	return chart.Style{
		StrokeColor: c,
		StrokeWidth: 2,
	}
}

// WritePNG draws the chart data as a PNG line chart.
func WritePNG(w io.Writer, data models.ChartData) error {
	dates := make([]time.Time, 0, len(data.XAxis))
	for _, category := range data.XAxis {
		d, err := models.ParseDate(category)
		if err != nil {
			return fmt.Errorf("chart category: %w", err)
		}
		dates = append(dates, d)
	}

	series := make([]chart.Series, 0, len(data.Series))
	for _, s := range data.Series {
		ys := make([]float64, len(s.Values))
		for i, v := range s.Values {
			ys[i] = float64(v)
		}
		series = append(series, chart.TimeSeries{
			Name:    s.Name,
			XValues: dates,
			YValues: ys,
			Style:   seriesStyle(s.Color),
		})
	}

	graph := chart.Chart{
		Title:      data.Title + " - " + data.Subtitle,
		Width:      1024,
		Height:     480,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:  "Percent (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

// WriteJSON writes the window as a JSON array of daily records.
func WriteJSON(w io.Writer, window models.Window) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(window)
}

// WriteTable writes the window as a bordered text table, marking the
// selected day.
func WriteTable(w io.Writer, window models.Window, selected time.Time) error {
	rows := make([][]string, 0, len(window))
	for _, r := range window {
		marker := ""
		if models.SameDay(r.Date, selected) {
			marker = "*"
		}
		rows = append(rows, []string{
			marker,
			models.FormatDate(r.Date),
			strconv.Itoa(r.Physical),
			strconv.Itoa(r.Emotional),
			strconv.Itoa(r.Intellectual),
			strconv.Itoa(r.Average),
		})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "Date", "Physical (%)", "Emotional (%)", "Intellectual (%)", "Average (%)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col >= 2 {
				return cell.Align(lipgloss.Right)
			}
			return cell
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// WriteRow writes the single selected-day row, or the no-data line.
func WriteRow(w io.Writer, row models.Record, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(w, "No data for this date")
		return err
	}
	_, err := fmt.Fprintf(w, "%s  physical %d%%  emotional %d%%  intellectual %d%%  average %d%%\n",
		models.FormatDate(row.Date), row.Physical, row.Emotional, row.Intellectual, row.Average)
	return err
}
