// Package theme holds the quiz-show palette and the shared text styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: bright show colors on a dark stage.
var (
	Primary   = lipgloss.Color("#6366F1") // stage indigo
	Secondary = lipgloss.Color("#06B6D4")
	Accent    = lipgloss.Color("#F59E0B")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#EF4444")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0B1120")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	ArcadeYellow = lipgloss.Color("#FACC15") // buzzer
	ArcadeCyan   = lipgloss.Color("#22D3EE") // scoreboard
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Body  = lipgloss.NewStyle().Foreground(Text)
	Hint  = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Correct   = lipgloss.NewStyle().Bold(true).Foreground(Success)
	Incorrect = lipgloss.NewStyle().Bold(true).Foreground(Error)
	Warning   = lipgloss.NewStyle().Bold(true).Foreground(Accent)

	ButtonActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(BgDark).
			Background(ArcadeYellow).
			Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// CountdownColor styles the countdown bar fill for the share of time left:
// calm above half, amber down to a fifth, red after that.
func CountdownColor(fraction float64) lipgloss.Style {
	fill := Secondary
	switch {
	case fraction <= 0.2:
		fill = Error
	case fraction <= 0.5:
		fill = Accent
	}
	return lipgloss.NewStyle().Background(fill)
}
