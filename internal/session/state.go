package session

import (
	"time"

	"github.com/abhisek/trivia/internal/question"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseNotStarted SessionPhase = iota // Created, no question presented yet
	PhaseInProgress                     // Serving questions
	PhaseEnded                          // Questions exhausted or player quit
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// OutcomeKind tags how a question was resolved.
type OutcomeKind int

const (
	OutcomeAnswered OutcomeKind = iota
	OutcomeTimedOut
	OutcomeSkipped
	OutcomeQuit
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAnswered:
		return "answered"
	case OutcomeTimedOut:
		return "timed-out"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is the first event observed while awaiting input on a question.
type Outcome struct {
	Kind OutcomeKind

	// Input is the raw answer text (OutcomeAnswered only).
	Input string

	// Elapsed is the wall-clock time since the question started awaiting input.
	// Ignored for OutcomeTimedOut, which always counts the full budget.
	Elapsed time.Duration
}

// QuestionResult records how one resolved question went.
type QuestionResult struct {
	Index   int
	Kind    OutcomeKind
	Choice  int // 0-based option picked, -1 when no answer was given
	Correct bool
	Points  int // includes Bonus
	Bonus   int
	Elapsed time.Duration
}

// SessionState tracks the runtime state of one play-through. A new game
// always gets a new SessionState.
type SessionState struct {
	// ID is the UUID for this session.
	ID string

	// Questions is fixed for the whole session.
	Questions []question.Question

	// CurrentIndex points at the question being played; it equals
	// len(Questions) once every question is resolved.
	CurrentIndex int

	// Score is the cumulative points earned.
	Score int

	// TotalElapsed sums per-question response times. Timeouts count the full budget.
	TotalElapsed time.Duration

	// TimePerQuestion is the per-question budget in seconds; 0 disables the timer.
	TimePerQuestion int

	// Phase is the current session phase.
	Phase SessionPhase

	// QuitEarly is set when the player ended the session before the last question.
	QuitEarly bool

	// StartTime is when the session began.
	StartTime time.Time

	// EndTime is when the session ended (zero while running).
	EndTime time.Time

	// Results holds one entry per resolved question, in order.
	Results []QuestionResult
}

// NewSessionState creates a session over questions that has not started yet.
func NewSessionState(questions []question.Question, timePerQuestion int, sessionID string) *SessionState {
	if timePerQuestion < 0 {
		timePerQuestion = 0
	}
	return &SessionState{
		ID:              sessionID,
		Questions:       questions,
		TimePerQuestion: timePerQuestion,
		Phase:           PhaseNotStarted,
	}
}

// Active reports whether the session is accepting input.
func (s *SessionState) Active() bool {
	return s.Phase == PhaseInProgress && s.CurrentIndex < len(s.Questions)
}

// TimerEnabled reports whether questions are timed.
func (s *SessionState) TimerEnabled() bool {
	return s.TimePerQuestion > 0
}

// TotalElapsedSeconds returns TotalElapsed in seconds.
func (s *SessionState) TotalElapsedSeconds() float64 {
	return s.TotalElapsed.Seconds()
}

// Remaining returns how many questions are left, including the current one.
func (s *SessionState) Remaining() int {
	return len(s.Questions) - s.CurrentIndex
}
