package console

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

type styles struct {
	title     lipgloss.Style
	heading   lipgloss.Style
	question  lipgloss.Style
	hint      lipgloss.Style
	correct   lipgloss.Style
	incorrect lipgloss.Style
	warn      lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{
		title:     theme.Title.UnsetAlign(),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		question:  lipgloss.NewStyle().Bold(true).Foreground(theme.Text),
		hint:      theme.Hint,
		correct:   theme.Correct,
		incorrect: theme.Incorrect,
		warn:      lipgloss.NewStyle().Foreground(theme.Accent),
	}
}
