package server

import (
	"html/template"

	"github.com/biorhythm/models"
	"github.com/biorhythm/templates"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/event"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// selectPointJS is the chart click handler. params.name is the x-axis
// category of the clicked point, whichever series it belongs to.
// selectBiorhythmDate is defined in static/app.js.
const selectPointJS = `function (params) { selectBiorhythmDate(params.name); }`

func generateLineChart(data models.ChartData) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  "macarons",
			Width:  "100%",
			Height: "460px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    data.Title,
			Subtitle: data.Subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         "Percent (%)",
			NameLocation: "middle",
			NameGap:      40,
			Min:          0,
			Max:          100,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "0",
		}),
		charts.WithGridOpts(opts.Grid{
			Bottom: "20%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:            opts.Bool(true),
			Trigger:         "item",
			BackgroundColor: "#f5f5f5",
			BorderColor:     "#ccc",
		}),
		charts.WithEventListeners(event.Listener{
			EventName: "click",
			Handler:   opts.FuncOpts(selectPointJS),
		}),
	)

	line.SetXAxis(data.XAxis)

	for i, s := range data.Series {
		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color, Width: 2}),
		}
		// One mark line is enough; it spans the whole plot.
		if i == 0 && data.Selected != "" {
			seriesOpts = append(seriesOpts, charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
				Name:  "Selected",
				XAxis: data.Selected,
			}))
		}
		line.AddSeries(s.Name, generateLineItems(s.Values), seriesOpts...)
	}

	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}),
	)

	return line
}

// generateLineItems converts int slice to LineData slice
func generateLineItems(data []int) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, v := range data {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}

// renderChart renders the chart as a page fragment: the chart element, its
// init script and the script assets the page must load first.
func renderChart(data models.ChartData) templates.Chart {
	line := generateLineChart(data)
	snippet := line.RenderSnippet()
	return templates.Chart{
		Element: template.HTML(snippet.Element),
		Script:  template.HTML(snippet.Script),
		Assets:  line.JSAssets.Values,
	}
}
