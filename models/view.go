package models

import (
	"fmt"
	"time"
)

// DefaultBirthDate is the birth date a fresh view starts with.
const DefaultBirthDate = "1961-09-26"

// ViewState is everything a biorhythm view shows. Dataset is always the
// window calculated for (BirthDate, CenterDate); edits to BirthDate or
// ViewedDate do not touch it until a recompute action runs.
type ViewState struct {
	BirthDate    time.Time
	SelectedDate time.Time
	ViewedDate   time.Time
	CenterDate   time.Time
	Dataset      Window
}

// NewViewState returns the startup state: everything on today, with the
// window already calculated.
func NewViewState(birth, today time.Time, calc Calculator) ViewState {
	today = CalendarDay(today)
	s := ViewState{
		BirthDate:    CalendarDay(birth),
		SelectedDate: today,
		ViewedDate:   today,
	}
	return s.recompute(today, calc)
}

// Row returns the dataset record for the selected date. ok is false when
// the selected date is outside the current window.
func (s ViewState) Row() (Record, bool) {
	return s.Dataset.Find(s.SelectedDate)
}

func (s ViewState) recompute(center time.Time, calc Calculator) ViewState {
	s.CenterDate = CalendarDay(center)
	s.Dataset = calc(s.BirthDate, s.CenterDate)
	return s
}

// Action is one user event. Actions run to completion against a state and
// either return the next state or an error with the state untouched.
type Action interface {
	apply(s ViewState, today time.Time, calc Calculator) (ViewState, error)
}

// Apply runs a against s using Calculate.
func Apply(s ViewState, a Action, today time.Time) (ViewState, error) {
	return ApplyWith(Calculate, s, a, today)
}

// ApplyWith runs a against s, using calc for any recompute.
func ApplyWith(calc Calculator, s ViewState, a Action, today time.Time) (ViewState, error) {
	next, err := a.apply(s, CalendarDay(today), calc)
	if err != nil {
		return s, err
	}
	return next, nil
}

// SetBirthDate records a birth-date field edit. A zero Date means the
// field was cleared.
type SetBirthDate struct{ Date time.Time }

func (a SetBirthDate) apply(s ViewState, _ time.Time, _ Calculator) (ViewState, error) {
	if a.Date.IsZero() {
		s.BirthDate = time.Time{}
	} else {
		s.BirthDate = CalendarDay(a.Date)
	}
	return s, nil
}

// SetViewedDate records a date-picker edit.
type SetViewedDate struct{ Date time.Time }

func (a SetViewedDate) apply(s ViewState, _ time.Time, _ Calculator) (ViewState, error) {
	if a.Date.IsZero() {
		s.ViewedDate = time.Time{}
	} else {
		s.ViewedDate = CalendarDay(a.Date)
	}
	return s, nil
}

// Submit recalculates the window around the viewed date. The selected
// date is left alone, so the table may fall outside the new window.
type Submit struct{}

func (Submit) apply(s ViewState, _ time.Time, calc Calculator) (ViewState, error) {
	if s.BirthDate.IsZero() {
		return s, ErrBirthDateRequired
	}
	if s.ViewedDate.IsZero() {
		s.ViewedDate = s.SelectedDate
	}
	return s.recompute(s.ViewedDate, calc), nil
}

// Navigate moves the selection by Days and recenters on it.
type Navigate struct{ Days int }

// NavigationSteps are the offsets offered by the navigation buttons.
var NavigationSteps = []int{-7, -1, 1, 7}

func validStep(n int) bool {
	for _, step := range NavigationSteps {
		if n == step {
			return true
		}
	}
	return false
}

func (a Navigate) apply(s ViewState, _ time.Time, calc Calculator) (ViewState, error) {
	if !validStep(a.Days) {
		return s, fmt.Errorf("%w: got %d", ErrInvalidStep, a.Days)
	}
	if len(s.Dataset) == 0 {
		return s, ErrNoDataset
	}
	return s.selectAndRecompute(AddDays(s.SelectedDate, a.Days), calc), nil
}

// Today jumps selection and window to the current day. It is always
// available.
type Today struct{}

func (Today) apply(s ViewState, today time.Time, calc Calculator) (ViewState, error) {
	return s.selectAndRecompute(today, calc), nil
}

// SelectPoint is a click on a chart point. Date is the point's category,
// whichever series was clicked.
type SelectPoint struct{ Date time.Time }

func (a SelectPoint) apply(s ViewState, _ time.Time, calc Calculator) (ViewState, error) {
	if len(s.Dataset) == 0 {
		return s, ErrNoDataset
	}
	if a.Date.IsZero() {
		return s, fmt.Errorf("%w: empty chart category", ErrInvalidDate)
	}
	return s.selectAndRecompute(a.Date, calc), nil
}

// SelectCategory builds a SelectPoint from a chart category string.
func SelectCategory(category string) (SelectPoint, error) {
	d, err := ParseDate(category)
	if err != nil {
		return SelectPoint{}, err
	}
	return SelectPoint{Date: d}, nil
}

func (s ViewState) selectAndRecompute(date time.Time, calc Calculator) ViewState {
	s.SelectedDate = CalendarDay(date)
	s.ViewedDate = s.SelectedDate
	return s.recompute(s.SelectedDate, calc)
}

// Snapshot is the serialisable part of a ViewState. The dataset is left
// out; Restore rebuilds it from the birth and center dates.
type Snapshot struct {
	BirthDate    string `json:"birth_date"`
	SelectedDate string `json:"selected_date"`
	ViewedDate   string `json:"viewed_date"`
	CenterDate   string `json:"center_date"`
}

func (s ViewState) Snapshot() Snapshot {
	return Snapshot{
		BirthDate:    FormatDate(s.BirthDate),
		SelectedDate: FormatDate(s.SelectedDate),
		ViewedDate:   FormatDate(s.ViewedDate),
		CenterDate:   FormatDate(s.CenterDate),
	}
}

// Restore turns a snapshot back into a ViewState. Selected and center
// dates are required; birth and viewed dates may be empty.
func (snap Snapshot) Restore(calc Calculator) (ViewState, error) {
	var s ViewState
	var err error
	if s.BirthDate, err = parseOptionalDate(snap.BirthDate); err != nil {
		return ViewState{}, fmt.Errorf("restore birth date: %w", err)
	}
	if s.ViewedDate, err = parseOptionalDate(snap.ViewedDate); err != nil {
		return ViewState{}, fmt.Errorf("restore viewed date: %w", err)
	}
	if s.SelectedDate, err = ParseDate(snap.SelectedDate); err != nil {
		return ViewState{}, fmt.Errorf("restore selected date: %w", err)
	}
	center, err := ParseDate(snap.CenterDate)
	if err != nil {
		return ViewState{}, fmt.Errorf("restore center date: %w", err)
	}
	return s.recompute(center, calc), nil
}
