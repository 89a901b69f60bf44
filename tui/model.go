package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/biorhythm/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeBrowse mode = iota
	modeEditBirth
	modeEditViewed
)

// Model is the bubbletea front-end for a biorhythm view. Every key press
// maps to at most one ViewState action.
type Model struct {
	state models.ViewState
	now   func() time.Time

	// cursor is the dataset index highlighted on the chart; enter selects it.
	cursor int
	mode   mode
	input  textinput.Model

	status string
	err    error
}

// New starts a view on today for the given birth date.
func New(birth time.Time, now func() time.Time) Model {
	in := textinput.New()
	in.Placeholder = "YYYY-MM-DD"
	in.CharLimit = len(models.DateLayout)
	in.Width = len(models.DateLayout) + 1

	m := Model{
		state:  models.NewViewState(birth, now(), models.Calculate),
		now:    now,
		input:  in,
		status: "Ready.",
	}
	m.syncCursor()
	return m
}

// State returns the current view state.
func (m Model) State() models.ViewState { return m.state }

// Run starts the program on the alternate screen and blocks until quit.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode != modeBrowse {
		return m.updateEdit(key)
	}
	return m.updateBrowse(key)
}

func (m Model) updateBrowse(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "h", "left":
		return m.dispatch(models.Navigate{Days: -1}), nil
	case "l", "right":
		return m.dispatch(models.Navigate{Days: 1}), nil
	case "H", "pgup":
		return m.dispatch(models.Navigate{Days: -7}), nil
	case "L", "pgdown":
		return m.dispatch(models.Navigate{Days: 7}), nil
	case "t":
		return m.dispatch(models.Today{}), nil
	case "s":
		return m.dispatch(models.Submit{}), nil
	case "[":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "]":
		if m.cursor < len(m.state.Dataset)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if m.cursor < 0 || m.cursor >= len(m.state.Dataset) {
			return m.dispatch(models.SelectPoint{}), nil
		}
		return m.dispatch(models.SelectPoint{Date: m.state.Dataset[m.cursor].Date}), nil
	case "b":
		return m.startEdit(modeEditBirth, m.state.BirthDate), textinput.Blink
	case "v":
		return m.startEdit(modeEditViewed, m.state.ViewedDate), textinput.Blink
	}
	return m, nil
}

func (m Model) startEdit(md mode, current time.Time) Model {
	m.mode = md
	m.input.SetValue(models.FormatDate(current))
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m Model) updateEdit(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		m.status = "Edit cancelled."
		m.err = nil
		return m, nil
	case "enter":
		return m.commitEdit(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// commitEdit applies the field edit and then submits, as the web form
// does. An unparseable value or an empty birth date leaves the field open.
func (m Model) commitEdit() Model {
	value := strings.TrimSpace(m.input.Value())
	if value == "" && m.mode == modeEditBirth {
		m.err = models.ErrBirthDateRequired
		m.status = "A birth date is required."
		return m
	}
	var date time.Time
	if value != "" {
		d, err := models.ParseDate(value)
		if err != nil {
			m.err = err
			return m
		}
		date = d
	}

	var edit models.Action = models.SetViewedDate{Date: date}
	if m.mode == modeEditBirth {
		edit = models.SetBirthDate{Date: date}
	}
	m.mode = modeBrowse
	m.input.Blur()

	m = m.dispatch(edit)
	if m.err != nil {
		return m
	}
	return m.dispatch(models.Submit{})
}

func (m Model) dispatch(a models.Action) Model {
	next, err := models.Apply(m.state, a, m.now())
	if err != nil {
		m.err = err
		if errors.Is(err, models.ErrBirthDateRequired) {
			m.status = "Enter a birth date (b) before recalculating."
		}
		return m
	}
	m.state = next
	m.err = nil
	m.status = describe(a, next)
	m.syncCursor()
	return m
}

// syncCursor puts the chart cursor on the selected day, or the window's
// center when the selected day is outside it.
func (m *Model) syncCursor() {
	if i := m.state.Dataset.Index(m.state.SelectedDate); i >= 0 {
		m.cursor = i
		return
	}
	if i := m.state.Dataset.Index(m.state.CenterDate); i >= 0 {
		m.cursor = i
		return
	}
	m.cursor = 0
}

func describe(a models.Action, s models.ViewState) string {
	switch a := a.(type) {
	case models.SetBirthDate:
		return "Birth date set to " + models.FormatDate(a.Date) + "."
	case models.SetViewedDate:
		return "Viewed date set to " + models.FormatDate(a.Date) + "."
	case models.Submit:
		return "Recalculated around " + models.FormatDate(s.CenterDate) + "."
	case models.Today:
		return "Jumped to today."
	default:
		return "Selected " + models.FormatDate(s.SelectedDate) + "."
	}
}
