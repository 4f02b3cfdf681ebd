package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// SummaryScreen displays the results of a finished game and offers a replay.
type SummaryScreen struct {
	summary *session.SessionSummary
	replay  func() screen.Screen
	buttons components.ButtonRow
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. replay builds the screen for a new game; a nil
// replay hides the option.
func New(summary *session.SessionSummary, replay func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{summary: summary, replay: replay}

	var buttons []components.Button
	if replay != nil {
		buttons = append(buttons, components.NewButton("PLAY AGAIN", false, s.playAgain))
	}
	buttons = append(buttons, components.NewButton("MAIN MENU", false, mainMenu))
	s.buttons = components.NewButtonRow(buttons...)
	return s
}

func (s *SummaryScreen) playAgain() tea.Cmd {
	next := s.replay()
	return router.Swap(next)
}

func mainMenu() tea.Cmd {
	return router.Back()
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←/→", Description: "Choose"}, {Key: "Enter", Description: "Select"}}
	if s.replay != nil {
		hints = append(hints, layout.KeyHint{Key: "Y", Description: "Play again"})
	}
	return append(hints, layout.KeyHint{Key: "N", Description: "Main menu"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "y", "Y":
			if s.replay != nil {
				return s, s.playAgain()
			}
			return s, nil
		case "n", "N", "q":
			return s, mainMenu()
		}
	}

	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)
	inner := cw - components.CardInset

	var b strings.Builder

	title := "Game over"
	if sum.QuitEarly {
		title = "Game over (ended early)"
	}
	b.WriteString(centered(theme.Title, inner, title))
	b.WriteString("\n\n")

	mascot := components.Mascot(components.MascotForGrade(sum.Grade))
	grade := lipgloss.NewStyle().
		Foreground(gradeColor(sum.Grade)).
		Bold(true).
		Render("Grade " + sum.Grade)
	b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, mascot, "   ", grade)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Score", sum.Percentage/100, inner)
	bar.Suffix = fmt.Sprintf("%d/%d  %.1f%%", sum.Score, sum.TotalPossible, sum.Percentage)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(centered(theme.Body, inner, fmt.Sprintf("Questions answered: %d of %d", sum.QuestionsAnswered, sum.TotalQuestions)))
	b.WriteString("\n")
	b.WriteString(centered(theme.Body, inner, fmt.Sprintf("Correct: %d   Skipped: %d   Timed out: %d", sum.Correct, sum.Skipped, sum.TimedOut)))
	b.WriteString("\n")
	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.TextDim), inner,
		fmt.Sprintf("Total time: %.1fs   Average: %.1fs", sum.TotalElapsed.Seconds(), sum.AverageSeconds())))
	b.WriteString("\n\n")

	if len(sum.Categories) > 0 {
		b.WriteString(renderCategories(sum.Categories, inner))
		b.WriteString("\n")
	}

	b.WriteString(centered(theme.Warning, inner, sum.Feedback))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.buttons.View()))

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderCategories(stats []session.CategoryStat, width int) string {
	var b strings.Builder
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-8, 8)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("By category")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	name := 0
	for _, c := range stats {
		name = max(name, lipgloss.Width(c.Category))
	}
	for _, c := range stats {
		count := fmt.Sprintf("%d question", c.Count)
		if c.Count != 1 {
			count += "s"
		}
		line := fmt.Sprintf("%-*s  %-12s %3d pts", name, c.Category, count, c.Points)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func gradeColor(grade string) color.Color {
	switch grade {
	case "A+", "A":
		return theme.Success
	case "B", "C":
		return theme.ArcadeYellow
	default:
		return theme.Error
	}
}

func centered(style lipgloss.Style, width int, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}
