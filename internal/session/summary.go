package session

import (
	"time"

	"github.com/abhisek/trivia/internal/question"
)

// UncategorizedLabel groups questions that have no category.
const UncategorizedLabel = "General"

// CategoryStat counts the reached questions of one category and the points
// they were worth (possible points, not points earned).
type CategoryStat struct {
	Category string
	Count    int
	Points   int
}

// SessionSummary holds the data displayed on the results screen.
type SessionSummary struct {
	SessionID string

	// QuestionsAnswered is the number of questions reached (CurrentIndex at the end).
	QuestionsAnswered int
	TotalQuestions    int

	Score         int
	TotalPossible int
	Percentage    float64
	Grade         string
	Feedback      string

	Correct  int
	Skipped  int
	TimedOut int

	TotalElapsed time.Duration
	AverageTime  time.Duration

	Categories []CategoryStat

	QuitEarly bool
	Duration  time.Duration
}

// BuildSummary creates a SessionSummary from the session state. It does not
// modify state.
func BuildSummary(state *SessionState) *SessionSummary {
	answered := state.CurrentIndex
	if answered > len(state.Questions) {
		answered = len(state.Questions)
	}

	sum := &SessionSummary{
		SessionID:         state.ID,
		QuestionsAnswered: answered,
		TotalQuestions:    len(state.Questions),
		Score:             state.Score,
		TotalPossible:     question.TotalPoints(state.Questions),
		TotalElapsed:      state.TotalElapsed,
		QuitEarly:         state.QuitEarly,
	}

	if answered > 0 {
		sum.AverageTime = state.TotalElapsed / time.Duration(answered)
	}
	if sum.TotalPossible > 0 {
		sum.Percentage = float64(sum.Score) / float64(sum.TotalPossible) * 100
	}
	sum.Grade = GradeFor(sum.Percentage)
	sum.Feedback = FeedbackFor(sum.Percentage)

	for _, r := range state.Results {
		switch {
		case r.Kind == OutcomeSkipped:
			sum.Skipped++
		case r.Kind == OutcomeTimedOut:
			sum.TimedOut++
		case r.Correct:
			sum.Correct++
		}
	}

	sum.Categories = categoryStats(state.Questions[:answered])

	if !state.StartTime.IsZero() {
		end := state.EndTime
		if end.IsZero() {
			end = time.Now()
		}
		sum.Duration = end.Sub(state.StartTime)
	}

	return sum
}

// AverageSeconds returns the average time per answered question in seconds.
func (s *SessionSummary) AverageSeconds() float64 {
	return s.AverageTime.Seconds()
}

// categoryStats groups questions by category in order of first appearance.
func categoryStats(questions []question.Question) []CategoryStat {
	var stats []CategoryStat
	index := make(map[string]int)
	for _, q := range questions {
		name := q.Category
		if name == "" {
			name = UncategorizedLabel
		}
		i, ok := index[name]
		if !ok {
			i = len(stats)
			index[name] = i
			stats = append(stats, CategoryStat{Category: name})
		}
		stats[i].Count++
		stats[i].Points += q.Points
	}
	return stats
}

// GradeFor maps a percentage to a letter grade.
func GradeFor(pct float64) string {
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B"
	case pct >= 60:
		return "C"
	case pct >= 50:
		return "D"
	default:
		return "F"
	}
}

// FeedbackFor returns a short comment on a percentage.
func FeedbackFor(pct float64) string {
	switch {
	case pct >= 80:
		return "Outstanding! You really know your trivia."
	case pct >= 60:
		return "Good job! That was a solid performance."
	case pct >= 40:
		return "Not bad. Keep practicing!"
	default:
		return "Keep learning and try again!"
	}
}
