package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// MultiChoice renders a question with numbered options. Once revealed it
// marks the correct option and the player's pick.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Revealed     bool
	ChosenIndex  int
}

// NewMultiChoice creates an unrevealed multiple-choice display.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Reveal marks chosen (-1 for none) and shows the correct option.
func (m *MultiChoice) Reveal(chosen int) {
	m.Revealed = true
	m.ChosenIndex = chosen
}

// IsCorrect returns true if the revealed pick is the correct option.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.ChosenIndex >= 0 && m.ChosenIndex == m.CorrectIndex
}

// View renders the question and its options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(min(width, 70)).
		Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		line := fmt.Sprintf("  %d)  %s", i+1, opt)
		style := lipgloss.NewStyle().Foreground(theme.Text)

		if m.Revealed {
			switch {
			case i == m.CorrectIndex:
				style = theme.Correct
				line += "  ✓"
			case i == m.ChosenIndex:
				style = theme.Incorrect
				line += "  ✗"
			default:
				style = lipgloss.NewStyle().Foreground(theme.TextDim)
			}
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
