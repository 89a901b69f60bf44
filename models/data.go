package models

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SeriesData is one named line of a chart.
type SeriesData struct {
	Name   string
	Color  string
	Values []int
}

// ChartData is the renderer-neutral description of a window chart, shared
// by the web chart and the PNG export.
type ChartData struct {
	Title    string
	Subtitle string
	XAxis    []string
	Series   []SeriesData
	// Selected is the category to highlight, empty when the selected date
	// is outside the window.
	Selected string
}

// ChartData converts the window into chart series, one per cycle.
func (w Window) ChartData(birth, selected time.Time) ChartData {
	title := cases.Title(language.English)
	chart := ChartData{
		Title:    "Biorhythm Chart",
		Subtitle: fmt.Sprintf("Born %s", FormatDate(birth)),
		XAxis:    w.Categories(),
		Series:   make([]SeriesData, 0, len(Cycles)),
	}
	for _, c := range Cycles {
		chart.Series = append(chart.Series, SeriesData{
			Name:   title.String(c.Name),
			Color:  c.Color,
			Values: w.Values(c),
		})
	}
	if r, ok := w.Find(selected); ok {
		chart.Selected = FormatDate(r.Date)
	}
	return chart
}
