package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/biorhythm/models"
)

func testWindow(t *testing.T) (models.Window, models.ChartData) {
	t.Helper()
	birth, _ := models.ParseDate("1961-09-26")
	center, _ := models.ParseDate("2024-01-15")
	w := models.Calculate(birth, center)
	return w, w.ChartData(birth, center)
}

func TestWritePNG(t *testing.T) {
	_, data := testWindow(t)

	var buf bytes.Buffer
	if err := WritePNG(&buf, data); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestWritePNGRejectsBadCategory(t *testing.T) {
	_, data := testWindow(t)
	data.XAxis[3] = "Mon 01-04"

	if err := WritePNG(&bytes.Buffer{}, data); err == nil {
		t.Error("expected an error for a non-date category")
	}
}

func TestWriteJSON(t *testing.T) {
	w, _ := testWindow(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, w); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != models.WindowDays {
		t.Fatalf("expected %d records, got %d", models.WindowDays, len(decoded))
	}
	if decoded[15]["date"] != "2024-01-15" || decoded[15]["physical"] != float64(82) {
		t.Errorf("center record: %v", decoded[15])
	}
}

func TestWriteTableMarksSelected(t *testing.T) {
	w, _ := testWindow(t)
	selected, _ := models.ParseDate("2024-01-20")

	var buf bytes.Buffer
	if err := WriteTable(&buf, w, selected); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Intellectual (%)") {
		t.Errorf("missing header:\n%s", out)
	}
	days, marked := 0, 0
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "2023-12-") && !strings.Contains(line, "2024-01-") {
			continue
		}
		days++
		if strings.Contains(line, "*") {
			marked++
			if !strings.Contains(line, "2024-01-20") {
				t.Errorf("wrong line marked: %q", line)
			}
		}
	}
	if days != models.WindowDays {
		t.Errorf("expected %d day rows, got %d", models.WindowDays, days)
	}
	if marked != 1 {
		t.Errorf("expected one marked line, got %d", marked)
	}
}

func TestWriteRow(t *testing.T) {
	w, _ := testWindow(t)
	d, _ := models.ParseDate("2024-01-15")
	row, ok := w.Find(d)

	var buf bytes.Buffer
	if err := WriteRow(&buf, row, ok); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if got := buf.String(); got != "2024-01-15  physical 82%  emotional 1%  intellectual 27%  average 37%\n" {
		t.Errorf("got %q", got)
	}

	buf.Reset()
	if err := WriteRow(&buf, models.Record{}, false); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if got := buf.String(); got != "No data for this date\n" {
		t.Errorf("got %q", got)
	}
}
