package tui

import "github.com/charmbracelet/lipgloss"

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

// seriesColors maps cycle colors to terminal colors.
var seriesColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("9"),
	"blue":   lipgloss.Color("12"),
	"green":  lipgloss.Color("10"),
	"purple": lipgloss.Color("13"),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	mutedStyle  = lipgloss.NewStyle().Foreground(cMuted)
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	panelStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

func seriesStyle(color string) lipgloss.Style {
	c, ok := seriesColors[color]
	if !ok {
		c = cMuted
	}
	return lipgloss.NewStyle().Foreground(c)
}
