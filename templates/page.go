package templates

import (
	"html/template"

	"github.com/biorhythm/models"
)

const Title = "Biorhythm"

// NoDataText is shown in place of a row when the selected date is not in
// the current window.
const NoDataText = "No data for this date"

// Chart is a rendered chart split for placement inside a page: the
// container element, its init script and the script assets it needs.
type Chart struct {
	Element template.HTML
	Script  template.HTML
	Assets  []string
}

// PageData is everything the index page shows.
type PageData struct {
	BirthDate  string
	ViewedDate string
	Row        models.Record
	HasRow     bool
	Chart      Chart
	Error      string
}

type navButton struct {
	days  int
	week  bool
	label string
	title string
}

var (
	backButtons = []navButton{
		{-7, true, "«", "Back 7 days"},
		{-1, false, "←", "Back 1 day"},
	}
	forwardButtons = []navButton{
		{1, false, "→", "Forward 1 day"},
		{7, true, "»", "Forward 7 days"},
	}
)

func scores(r models.Record) []int {
	return []int{r.Physical, r.Emotional, r.Intellectual, r.Average}
}
