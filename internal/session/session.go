package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/trivia/internal/question"
	"github.com/abhisek/trivia/internal/scoring"
)

var (
	// ErrSessionEnded is returned when an outcome arrives after the session ended.
	ErrSessionEnded = errors.New("session has ended")
	// ErrNotStarted is returned when an outcome arrives before Start.
	ErrNotStarted = errors.New("session has not started")
)

// Resolution describes what HandleOutcome did with an outcome.
type Resolution struct {
	Outcome  Outcome
	Question question.Question

	// Result is the evaluator verdict (OutcomeAnswered only).
	Result scoring.Result

	// Advanced is true when the question was resolved and the index moved on.
	// It is false for rejected input (re-prompt) and for quit.
	Advanced bool

	// Ended is true when this outcome ended the session.
	Ended bool
}

// Start moves a new session into play, resetting its counters. A session
// without questions ends immediately.
func Start(state *SessionState) {
	state.CurrentIndex = 0
	state.Score = 0
	state.TotalElapsed = 0
	state.QuitEarly = false
	state.Results = nil
	state.StartTime = time.Now()
	state.EndTime = time.Time{}
	state.Phase = PhaseInProgress

	if len(state.Questions) == 0 {
		end(state)
	}
}

// CurrentQuestion returns the question awaiting an answer, or nil when the
// session is not active.
func CurrentQuestion(state *SessionState) *question.Question {
	if !state.Active() {
		return nil
	}
	return &state.Questions[state.CurrentIndex]
}

// HandleOutcome applies the outcome of the current question to state.
//
// Answered input that is not an option number in range is rejected without
// advancing: the caller re-prompts and the question's clock keeps running.
func HandleOutcome(state *SessionState, o Outcome) (*Resolution, error) {
	switch state.Phase {
	case PhaseNotStarted:
		return nil, ErrNotStarted
	case PhaseEnded:
		return nil, ErrSessionEnded
	}

	q := CurrentQuestion(state)
	if q == nil {
		return nil, ErrSessionEnded
	}

	res := &Resolution{Outcome: o, Question: *q}
	entry := QuestionResult{Index: state.CurrentIndex, Kind: o.Kind, Choice: -1, Elapsed: o.Elapsed}

	switch o.Kind {
	case OutcomeQuit:
		state.QuitEarly = true
		end(state)
		res.Ended = true
		return res, nil

	case OutcomeTimedOut:
		entry.Elapsed = time.Duration(state.TimePerQuestion) * time.Second
		res.Outcome.Elapsed = entry.Elapsed

	case OutcomeSkipped:

	case OutcomeAnswered:
		res.Result = scoring.Evaluate(*q, o.Input, o.Elapsed, state.TimePerQuestion)
		if !res.Result.Accepted {
			return res, nil
		}
		entry.Choice = res.Result.Choice
		entry.Correct = res.Result.Correct
		entry.Points = res.Result.PointsEarned
		entry.Bonus = res.Result.Bonus
		state.Score += res.Result.PointsEarned

	default:
		return nil, fmt.Errorf("unknown outcome kind %d", o.Kind)
	}

	state.TotalElapsed += entry.Elapsed
	state.Results = append(state.Results, entry)
	res.Advanced = true
	res.Ended = advance(state)
	return res, nil
}

// ParseOutcome turns a line of player input into an outcome for q. It
// reports false for input that is neither a command nor an option number in
// range, which the caller re-prompts for.
func ParseOutcome(q question.Question, line string, elapsed time.Duration) (Outcome, bool) {
	switch scoring.ParseCommand(line) {
	case scoring.CommandSkip:
		return Outcome{Kind: OutcomeSkipped, Elapsed: elapsed}, true
	case scoring.CommandQuit:
		return Outcome{Kind: OutcomeQuit, Elapsed: elapsed}, true
	}
	if _, ok := scoring.ParseChoice(line, len(q.Options)); !ok {
		return Outcome{}, false
	}
	return Outcome{Kind: OutcomeAnswered, Input: line, Elapsed: elapsed}, true
}

// End stops the session where it is, e.g. on a process interrupt. The current
// question stays unresolved. It is a no-op on an ended session.
func End(state *SessionState) {
	if state.Phase == PhaseEnded {
		return
	}
	if state.Phase == PhaseInProgress && state.CurrentIndex < len(state.Questions) {
		state.QuitEarly = true
	}
	end(state)
}

// advance moves to the next question and reports whether the session ended.
func advance(state *SessionState) bool {
	state.CurrentIndex++
	if state.CurrentIndex >= len(state.Questions) {
		state.CurrentIndex = len(state.Questions)
		end(state)
		return true
	}
	return false
}

func end(state *SessionState) {
	state.Phase = PhaseEnded
	state.EndTime = time.Now()
}
