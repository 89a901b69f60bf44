package models

import (
	"errors"
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2024-01-15", "2024-01-15", 0},
		{"2024-01-15", "2024-01-22", 7},
		{"2024-01-22", "2024-01-15", -7},
		{"2024-02-28", "2024-03-01", 2},
		{"1961-09-26", "2024-01-15", 22756},
		{"0001-01-01", "2024-01-01", 738885},
	}
	for _, tt := range tests {
		if got := DaysBetween(mustDate(t, tt.from), mustDate(t, tt.to)); got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDaysBetweenIgnoresClock(t *testing.T) {
	from := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 16, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(from, to); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestAddDaysAndSameDay(t *testing.T) {
	d := mustDate(t, "2024-01-15")
	if got := FormatDate(AddDays(d, 7)); got != "2024-01-22" {
		t.Errorf("AddDays +7: got %s", got)
	}
	if got := FormatDate(AddDays(d, -15)); got != "2023-12-31" {
		t.Errorf("AddDays -15: got %s", got)
	}
	if !SameDay(d, time.Date(2024, 1, 15, 18, 45, 0, 0, time.UTC)) {
		t.Error("SameDay should ignore time of day")
	}
	if SameDay(d, AddDays(d, 1)) {
		t.Error("SameDay matched different days")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-01 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if FormatDate(d) != "2024-02-01" {
		t.Errorf("round trip: got %s", FormatDate(d))
	}

	for _, bad := range []string{"", "2024/02/01", "01-02-2024", "2024-02-30"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", bad, err)
		}
	}
}

func TestFormatDateZero(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
