package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.phase == phaseChooseTime {
		return s.renderChooseTime(width, height)
	}
	return s.renderQuestionView(width)
}

// renderChooseTime renders the time limit prompt shown before a game.
func (s *SessionScreen) renderChooseTime(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - components.CardInset).Render("New game"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Seconds per question, 0 for no limit"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Press Enter for %d", s.opts.DefaultTime)))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render(s.notice))
	}

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderQuestionView renders the current question, or the one just resolved
// while its feedback is up.
func (s *SessionScreen) renderQuestionView(width int) string {
	q := s.current

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + categoryLabel(q.Category))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d points  %s %d",
			q.Points,
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			s.state.Score,
		))

	infoLine := infoLeft
	if rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.state.TimerEnabled() && s.phase != phaseFeedback {
		bar := components.NewCountdownBar(s.remaining, s.state.TimePerQuestion, min(width-8, 60))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View(width-8)))
	b.WriteString("\n")

	switch s.phase {
	case phaseFeedback:
		b.WriteString(s.renderFeedback(width))

	case phaseQuitConfirm:
		b.WriteString(s.renderQuitConfirm(width))

	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
		if s.notice != "" {
			b.WriteString("\n\n")
			b.WriteString(centered(theme.Warning, width, s.notice))
		}
	}

	return b.String()
}

// renderFeedback renders the verdict on the last resolved question.
func (s *SessionScreen) renderFeedback(width int) string {
	res := s.last
	if res == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	headline, style := verdict(res)
	b.WriteString(centered(style, width, headline))

	if !(res.Outcome.Kind == sess.OutcomeAnswered && res.Result.Correct) && res.Question.HasValidAnswer() {
		b.WriteString("\n")
		b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
			fmt.Sprintf("The correct answer was %d. %s", res.Question.CorrectIndex+1, res.Question.CorrectOption())))
	}
	return b.String()
}

func (s *SessionScreen) renderQuitConfirm(width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 3).
		Render(theme.Warning.Render("End this game?") + "\n\n" +
			theme.Body.Render("Y to end and see your results, N to keep playing"))
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func verdict(res *sess.Resolution) (string, lipgloss.Style) {
	switch res.Outcome.Kind {
	case sess.OutcomeTimedOut:
		return "Time's up!", theme.Incorrect
	case sess.OutcomeSkipped:
		return "Skipped", theme.Warning
	}
	if !res.Result.Correct {
		return "Wrong", theme.Incorrect
	}
	msg := fmt.Sprintf("Correct! +%d points", res.Result.PointsEarned)
	if res.Result.Bonus > 0 {
		msg += fmt.Sprintf(" (includes a %d point speed bonus)", res.Result.Bonus)
	}
	return msg, theme.Correct
}

func categoryLabel(category string) string {
	if category == "" {
		return sess.UncategorizedLabel
	}
	return category
}

func centered(style lipgloss.Style, width int, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}
