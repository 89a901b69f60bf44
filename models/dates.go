package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the YYYY-MM-DD form used for chart categories, form
// fields and session snapshots.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// CalendarDay drops the time of day, keeping the calendar date as read in
// t's own location, and returns it at midnight UTC.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of calendar days from "from" to "to".
func DaysBetween(from, to time.Time) int {
	// Unix seconds rather than Duration: birth dates centuries away overflow time.Duration.
	return int((CalendarDay(to).Unix() - CalendarDay(from).Unix()) / secondsPerDay)
}

func AddDays(t time.Time, n int) time.Time {
	return CalendarDay(t).AddDate(0, 0, n)
}

func SameDay(a, b time.Time) bool {
	return CalendarDay(a).Equal(CalendarDay(b))
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}

// parseOptionalDate treats an empty string as the zero date.
func parseOptionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return ParseDate(s)
}
