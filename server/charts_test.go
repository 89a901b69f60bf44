package server

import (
	"strings"
	"testing"

	"github.com/biorhythm/models"
)

func testChartData(t *testing.T, selected string) models.ChartData {
	t.Helper()
	birth, err := models.ParseDate(models.DefaultBirthDate)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	center, err := models.ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	sel, err := models.ParseDate(selected)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	return models.Calculate(birth, center).ChartData(birth, sel)
}

func TestRenderChart_ClickListener(t *testing.T) {
	chart := renderChart(testChartData(t, "2024-01-15"))

	want := `.on("click", function (params) { selectBiorhythmDate(params.name); })`
	if !strings.Contains(string(chart.Script), want) {
		t.Errorf("script missing click listener %q:\n%s", want, chart.Script)
	}
}

func TestRenderChart_MarksSelectedDay(t *testing.T) {
	chart := renderChart(testChartData(t, "2024-01-20"))

	script := string(chart.Script)
	if !strings.Contains(script, `"markLine"`) {
		t.Fatalf("script has no mark line:\n%s", script)
	}
	if !strings.Contains(script, `"xAxis":"2024-01-20"`) {
		t.Errorf("mark line is not on the selected day:\n%s", script)
	}
}

func TestRenderChart_Fragment(t *testing.T) {
	chart := renderChart(testChartData(t, "2024-01-15"))

	for _, part := range []string{string(chart.Element), string(chart.Script)} {
		if strings.Contains(part, "<html") || strings.Contains(part, "<style") {
			t.Errorf("fragment carries page markup:\n%s", part)
		}
	}
	if !strings.Contains(string(chart.Element), `height:460px`) {
		t.Errorf("element missing chart size: %s", chart.Element)
	}

	var sawECharts, sawTheme bool
	for _, src := range chart.Assets {
		sawECharts = sawECharts || strings.HasSuffix(src, "echarts.min.js")
		sawTheme = sawTheme || strings.HasSuffix(src, "themes/macarons.js")
	}
	if !sawECharts || !sawTheme {
		t.Errorf("assets: got %v", chart.Assets)
	}
}
