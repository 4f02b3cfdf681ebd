package console

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/question"
	"github.com/abhisek/trivia/internal/session"
)

func (r *Runner) printQuestion(state *session.SessionState, q *question.Question) {
	r.println()
	header := fmt.Sprintf("Question %d of %d", state.CurrentIndex+1, len(state.Questions))
	if q.Category != "" {
		header += " | " + q.Category
	}
	header += fmt.Sprintf(" | %d points | Score: %d", q.Points, state.Score)
	r.println(r.styles.heading.Render(header))
	r.println(r.styles.question.Render(q.Text))
	for i, opt := range q.Options {
		r.printf("  %d. %s\n", i+1, opt)
	}
	if state.TimerEnabled() {
		r.println(r.styles.hint.Render(fmt.Sprintf("You have %d seconds. Type \"skip\" or \"quit\" at any time.", state.TimePerQuestion)))
	} else {
		r.println(r.styles.hint.Render(`No time limit. Type "skip" or "quit" at any time.`))
	}
}

func (r *Runner) printPrompt() {
	r.printf("Your answer: ")
}

func (r *Runner) printResolution(state *session.SessionState, res *session.Resolution) {
	q := res.Question
	answer := ""
	if q.HasValidAnswer() {
		answer = fmt.Sprintf(" The correct answer was %d. %s.", q.CorrectIndex+1, q.CorrectOption())
	}

	switch res.Outcome.Kind {
	case session.OutcomeAnswered:
		if res.Result.Correct {
			msg := fmt.Sprintf("Correct! +%d points", res.Result.PointsEarned)
			if res.Result.Bonus > 0 {
				msg += fmt.Sprintf(" (includes a %d point speed bonus)", res.Result.Bonus)
			}
			r.println(r.styles.correct.Render(msg))
		} else {
			r.println(r.styles.incorrect.Render("Wrong." + answer))
		}
	case session.OutcomeTimedOut:
		r.println(r.styles.incorrect.Render("Time's up!" + answer))
	case session.OutcomeSkipped:
		r.println(r.styles.warn.Render("Skipped." + answer))
	case session.OutcomeQuit:
		r.println(r.styles.warn.Render("Ending the game early."))
		return
	}
	r.printf("Score: %d\n", state.Score)
}

func (r *Runner) printReport(sum *session.SessionSummary) {
	r.println()
	r.println(r.styles.title.Render("Game over"))
	r.printf("Score: %d / %d (%.1f%%)  Grade: %s\n", sum.Score, sum.TotalPossible, sum.Percentage, sum.Grade)

	answered := fmt.Sprintf("Questions answered: %d of %d", sum.QuestionsAnswered, sum.TotalQuestions)
	if sum.QuitEarly {
		answered += " (ended early)"
	}
	r.println(answered)
	r.printf("Correct: %d  Skipped: %d  Timed out: %d\n", sum.Correct, sum.Skipped, sum.TimedOut)
	r.printf("Total time: %.1fs  Average per question: %.1fs\n", sum.TotalElapsed.Seconds(), sum.AverageSeconds())

	if len(sum.Categories) > 0 {
		r.println()
		r.println(r.styles.heading.Render("By category"))
		for _, l := range categoryLines(sum.Categories) {
			r.println(l)
		}
	}

	r.println()
	r.println(r.styles.title.Render(sum.Feedback))
}

// categoryLines lays the category breakdown out in columns. Names are
// padded by display width so wide characters line up.
func categoryLines(cats []session.CategoryStat) []string {
	width := 0
	for _, c := range cats {
		width = max(width, lipgloss.Width(c.Category))
	}
	out := make([]string, len(cats))
	for i, c := range cats {
		pad := strings.Repeat(" ", width-lipgloss.Width(c.Category))
		out[i] = fmt.Sprintf("  %s%s  %s  %d points", c.Category, pad, plural(c.Count, "question"), c.Points)
	}
	return out
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
