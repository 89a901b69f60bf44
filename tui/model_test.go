package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/biorhythm/models"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, today string) Model {
	t.Helper()
	now, err := models.ParseDate(today)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	birth, _ := models.ParseDate(models.DefaultBirthDate)
	return New(birth, func() time.Time { return now })
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "pgdown":
			msg = tea.KeyMsg{Type: tea.KeyPgDown}
		case "ctrl+u":
			msg = tea.KeyMsg{Type: tea.KeyCtrlU}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, string(r))
	}
	return m
}

func dates(s models.ViewState) (selected, viewed, center string) {
	return models.FormatDate(s.SelectedDate), models.FormatDate(s.ViewedDate), models.FormatDate(s.CenterDate)
}

func TestNavigationKeys(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"l"}, "2024-01-16"},
		{[]string{"h"}, "2024-01-14"},
		{[]string{"left"}, "2024-01-14"},
		{[]string{"L"}, "2024-01-22"},
		{[]string{"pgdown"}, "2024-01-22"},
		{[]string{"H"}, "2024-01-08"},
		{[]string{"L", "l", "t"}, "2024-01-15"},
	}
	for _, tt := range tests {
		m := press(t, newTestModel(t, "2024-01-15"), tt.keys...)
		selected, viewed, center := dates(m.State())
		if selected != tt.want || viewed != tt.want || center != tt.want {
			t.Errorf("%v: selected %s viewed %s center %s, want %s", tt.keys, selected, viewed, center, tt.want)
		}
	}
}

func TestCursorSelectsPoint(t *testing.T) {
	m := newTestModel(t, "2024-01-15")
	if m.cursor != models.WindowLead {
		t.Fatalf("cursor should start on today, got %d", m.cursor)
	}

	m = press(t, m, "]", "]", "]", "enter")
	selected, viewed, center := dates(m.State())
	if selected != "2024-01-18" || viewed != "2024-01-18" || center != "2024-01-18" {
		t.Errorf("selected %s viewed %s center %s", selected, viewed, center)
	}
	if m.cursor != models.WindowLead {
		t.Errorf("cursor should follow the recentered selection, got %d", m.cursor)
	}
}

func TestCursorStaysInWindow(t *testing.T) {
	m := newTestModel(t, "2024-01-15")
	for i := 0; i < 40; i++ {
		m = press(t, m, "[")
	}
	if m.cursor != 0 {
		t.Errorf("cursor: got %d, want 0", m.cursor)
	}
	for i := 0; i < 40; i++ {
		m = press(t, m, "]")
	}
	if m.cursor != models.WindowDays-1 {
		t.Errorf("cursor: got %d, want %d", m.cursor, models.WindowDays-1)
	}
}

func TestEditViewedDateSubmits(t *testing.T) {
	m := newTestModel(t, "2024-01-15")
	m = press(t, m, "v", "ctrl+u")
	m = typeText(t, m, "2024-06-01")
	m = press(t, m, "enter")

	selected, viewed, center := dates(m.State())
	if selected != "2024-01-15" || viewed != "2024-06-01" || center != "2024-06-01" {
		t.Errorf("selected %s viewed %s center %s", selected, viewed, center)
	}
	if !strings.Contains(m.View(), "No data for this date") {
		t.Error("expected the no-data placeholder once the selection left the window")
	}
}

func TestEditBirthDateRequired(t *testing.T) {
	m := newTestModel(t, "2024-01-15")
	before := m.State().Dataset

	m = press(t, m, "b", "ctrl+u", "enter")
	if !errors.Is(m.err, models.ErrBirthDateRequired) {
		t.Fatalf("expected ErrBirthDateRequired, got %v", m.err)
	}
	if m.mode != modeEditBirth {
		t.Error("empty birth date closed the field")
	}
	if models.FormatDate(m.State().BirthDate) != models.DefaultBirthDate {
		t.Errorf("empty edit was stored: birth = %q", models.FormatDate(m.State().BirthDate))
	}
	if models.FormatDate(m.State().CenterDate) != "2024-01-15" || len(before) != len(m.State().Dataset) {
		t.Error("blocked submit recomputed the window")
	}

	m = press(t, m, "esc", "l")
	if m.err != nil {
		t.Errorf("navigation after cancelling the edit: %v", m.err)
	}
	if selected, _, _ := dates(m.State()); selected != "2024-01-16" {
		t.Errorf("selected: got %s, want 2024-01-16", selected)
	}
}

func TestEditRejectsBadDate(t *testing.T) {
	m := newTestModel(t, "2024-01-15")
	m = press(t, m, "b", "ctrl+u")
	m = typeText(t, m, "1961/09/26")
	m = press(t, m, "enter")

	if !errors.Is(m.err, models.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", m.err)
	}
	if m.mode != modeEditBirth {
		t.Error("field should stay open after a bad value")
	}

	m = press(t, m, "esc")
	if m.mode != modeBrowse || m.err != nil {
		t.Error("esc should close the field and clear the error")
	}
	if models.FormatDate(m.State().BirthDate) != models.DefaultBirthDate {
		t.Errorf("birth date changed to %s", models.FormatDate(m.State().BirthDate))
	}
}

func TestEditBirthDateRecalculates(t *testing.T) {
	m := newTestModel(t, "2024-01-15")
	m = press(t, m, "b", "ctrl+u")
	m = typeText(t, m, "2024-01-10")
	m = press(t, m, "enter")

	row, ok := m.State().Row()
	if !ok {
		t.Fatal("expected a row for the selected date")
	}
	want := models.NewRecord(row.Date, 5)
	if row != want {
		t.Errorf("row: got %+v, want %+v", row, want)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, "2024-01-15")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewShowsRowAndLegend(t *testing.T) {
	out := newTestModel(t, "2024-01-15").View()
	for _, want := range []string{"2024-01-15", "82", "physical", "intellectual", "2023-12-31 … 2024-01-29"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestChartRow(t *testing.T) {
	if chartRow(100) != 0 || chartRow(0) != chartHeight-1 || chartRow(50) != chartHeight/2 {
		t.Errorf("chartRow: 100->%d 0->%d 50->%d", chartRow(100), chartRow(0), chartRow(50))
	}
}
