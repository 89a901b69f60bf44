package models

import (
	"encoding/json"
	"math"
	"time"
)

const (
	// WindowDays is the number of daily records in every calculated window.
	WindowDays = 30
	// WindowLead is how many days before the center date a window starts.
	WindowLead = 15
)

// Record holds the biorhythm scores for one calendar day. Scores are
// percentages in [0, 100].
type Record struct {
	Date         time.Time `json:"-"`
	Physical     int       `json:"physical"`
	Emotional    int       `json:"emotional"`
	Intellectual int       `json:"intellectual"`
	Average      int       `json:"average"`
}

// MarshalJSON writes the date as YYYY-MM-DD alongside the scores.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	return json.Marshal(struct {
		Date string `json:"date"`
		plain
	}{FormatDate(r.Date), plain(r)})
}

// Cycle describes one sine wave of the model.
type Cycle struct {
	Name   string
	Period float64
	Color  string
	Value  func(Record) int
}

var (
	Physical     = Cycle{Name: "physical", Period: 23, Color: "red", Value: func(r Record) int { return r.Physical }}
	Emotional    = Cycle{Name: "emotional", Period: 28, Color: "blue", Value: func(r Record) int { return r.Emotional }}
	Intellectual = Cycle{Name: "intellectual", Period: 33, Color: "green", Value: func(r Record) int { return r.Intellectual }}
	Average      = Cycle{Name: "average", Color: "purple", Value: func(r Record) int { return r.Average }}
)

// Cycles lists the series in display order. Average has no period; it is
// derived from the other three.
var Cycles = []Cycle{Physical, Emotional, Intellectual, Average}

// Score maps a day offset from birth to a 0-100 value for a cycle period.
// math.Round rounds half away from zero; the scaled value is never
// negative, so this is plain round-half-up.
func Score(offset int, period float64) int {
	return int(math.Round((math.Sin(2*math.Pi*float64(offset)/period) + 1) / 2 * 100))
}

// NewRecord builds the record for date, which lies offset days after birth.
func NewRecord(date time.Time, offset int) Record {
	r := Record{
		Date:         CalendarDay(date),
		Physical:     Score(offset, Physical.Period),
		Emotional:    Score(offset, Emotional.Period),
		Intellectual: Score(offset, Intellectual.Period),
	}
	r.Average = int(math.Round(float64(r.Physical+r.Emotional+r.Intellectual) / 3))
	return r
}

// Calculate returns the 30-day window running from center-15 to center+14
// inclusive. Only the calendar days of birth and center are used.
func Calculate(birth, center time.Time) Window {
	start := AddDays(center, -WindowLead)
	w := make(Window, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		day := AddDays(start, i)
		w = append(w, NewRecord(day, DaysBetween(birth, day)))
	}
	return w
}

// Calculator is the signature shared by Calculate and WindowCache.Get.
type Calculator func(birth, center time.Time) Window

// Window is an ascending run of consecutive daily records.
type Window []Record

// Find returns the record for date's calendar day.
func (w Window) Find(date time.Time) (Record, bool) {
	for _, r := range w {
		if SameDay(r.Date, date) {
			return r, true
		}
	}
	return Record{}, false
}

// Categories returns the window's dates formatted for chart axes.
func (w Window) Categories() []string {
	out := make([]string, len(w))
	for i, r := range w {
		out[i] = FormatDate(r.Date)
	}
	return out
}

// Values returns one cycle's scores aligned with Categories.
func (w Window) Values(c Cycle) []int {
	out := make([]int, len(w))
	for i, r := range w {
		out[i] = c.Value(r)
	}
	return out
}

// Index returns the position of date in the window, or -1.
func (w Window) Index(date time.Time) int {
	for i, r := range w {
		if SameDay(r.Date, date) {
			return i
		}
	}
	return -1
}

func (w Window) Clone() Window {
	if w == nil {
		return nil
	}
	out := make(Window, len(w))
	copy(out, w)
	return out
}
