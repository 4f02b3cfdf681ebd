package session

import (
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/trivia/internal/logging"
	"github.com/abhisek/trivia/internal/question"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/screens/summary"
	sess "github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
)

const (
	DefaultTickInterval  = time.Second
	DefaultFeedbackDelay = 1500 * time.Millisecond
	DefaultTimeoutDelay  = 2 * time.Second
)

// Options configures the games started from a SessionScreen.
type Options struct {
	Questions   []question.Question
	DefaultTime int // seconds per question offered when the player just hits Enter

	TickInterval  time.Duration // one countdown second
	FeedbackDelay time.Duration // how long a verdict stays up
	TimeoutDelay  time.Duration // how long "Time's up!" stays up

	NewID  func() string
	Now    func() time.Time
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.FeedbackDelay <= 0 {
		o.FeedbackDelay = DefaultFeedbackDelay
	}
	if o.TimeoutDelay <= 0 {
		o.TimeoutDelay = DefaultTimeoutDelay
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.DefaultTime < 0 {
		o.DefaultTime = 0
	}
	return o
}

type phase int

const (
	phaseChooseTime phase = iota
	phaseQuestion
	phaseQuitConfirm
	phaseFeedback
)

// SessionScreen plays one game: it asks for the time limit, serves every
// question and hands the summary to the results screen.
type SessionScreen struct {
	opts  Options
	phase phase
	state *sess.SessionState

	input   components.TextInput
	choices components.MultiChoice

	// current stays on screen through its feedback, after the session has
	// moved its index on.
	current question.Question

	// seq identifies the current question phase for scheduled messages.
	seq       int
	remaining int
	asked     time.Time

	last   *sess.Resolution
	notice string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a SessionScreen waiting for the player to pick a time limit.
func New(opts Options) *SessionScreen {
	opts = opts.withDefaults()
	return &SessionScreen{
		opts:  opts,
		phase: phaseChooseTime,
		input: components.NewTextInput(fmt.Sprintf("%d", opts.DefaultTime), 4, components.Digits),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SessionScreen) Title() string {
	return "Game"
}

// HandlesEscape is always true: Esc goes back from the time prompt and asks
// before ending a running game.
func (s *SessionScreen) HandlesEscape() bool {
	return true
}

// Status shows the question number and running score.
func (s *SessionScreen) Status() string {
	if s.state == nil {
		return ""
	}
	n := min(s.state.CurrentIndex+1, len(s.state.Questions))
	if s.phase == phaseFeedback {
		// The index has already moved past the question on display.
		n = len(s.state.Results)
	}
	return fmt.Sprintf("Q %d/%d  Score %d", n, len(s.state.Questions), s.state.Score)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseChooseTime:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep playing"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(msg)

	case feedbackDoneMsg:
		if msg.seq != s.seq || s.phase != phaseFeedback {
			return s, nil
		}
		return s.next()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseChooseTime:
		switch key {
		case "enter":
			return s.startGame()
		case "esc":
			return s, router.Back()
		}

	case phaseQuestion:
		switch key {
		case "enter":
			return s.submit()
		case "esc":
			s.phase = phaseQuitConfirm
			return s, nil
		}

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return s.resolve(sess.Outcome{Kind: sess.OutcomeQuit, Elapsed: s.elapsed()})
		case "n", "N", "esc":
			s.phase = phaseQuestion
		}
		return s, nil

	case phaseFeedback:
		// The verdict stays up for the full delay; feedbackDoneMsg advances.
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) startGame() (screen.Screen, tea.Cmd) {
	budget := s.opts.DefaultTime
	if s.input.Value() != "" {
		n, err := s.input.NumericValue()
		if err != nil || n < 0 {
			s.notice = "Please enter a whole number of seconds, or 0 for no limit."
			s.input.Clear()
			return s, nil
		}
		budget = n
	}

	s.state = sess.NewSessionState(s.opts.Questions, budget, s.opts.NewID())
	sess.Start(s.state)
	s.opts.Logger.Debug("session started",
		"session_id", s.state.ID,
		"questions", len(s.state.Questions),
		"time_per_question", s.state.TimePerQuestion)

	if !s.state.Active() {
		return s.finish()
	}
	return s.present()
}

// present shows the current question and starts its countdown.
func (s *SessionScreen) present() (screen.Screen, tea.Cmd) {
	q := sess.CurrentQuestion(s.state)

	s.seq++
	s.phase = phaseQuestion
	s.remaining = s.state.TimePerQuestion
	s.asked = s.opts.Now()
	s.last = nil
	s.notice = ""
	s.current = *q
	s.choices = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
	s.input = components.NewTextInput(fmt.Sprintf("1-%d, skip or quit", len(q.Options)), 12, components.AnswerChars)

	cmds := []tea.Cmd{s.input.Init()}
	if s.state.TimerEnabled() {
		cmds = append(cmds, s.tick())
	}
	return s, tea.Batch(cmds...)
}

func (s *SessionScreen) tick() tea.Cmd {
	seq := s.seq
	return tea.Tick(s.opts.TickInterval, func(time.Time) tea.Msg {
		return timerTickMsg{seq: seq}
	})
}

// handleTick counts down. The quit prompt does not pause the clock.
func (s *SessionScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.seq != s.seq || (s.phase != phaseQuestion && s.phase != phaseQuitConfirm) {
		return s, nil
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		return s.resolve(sess.Outcome{Kind: sess.OutcomeTimedOut})
	}
	return s, s.tick()
}

func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	line := s.input.Value()
	if line == "" {
		return s, nil
	}

	q := sess.CurrentQuestion(s.state)
	o, ok := sess.ParseOutcome(*q, line, s.elapsed())
	if !ok {
		s.notice = fmt.Sprintf("Invalid answer. Enter a number from 1 to %d, \"skip\" or \"quit\".", len(q.Options))
		s.input.Clear()
		return s, nil
	}
	return s.resolve(o)
}

func (s *SessionScreen) resolve(o sess.Outcome) (screen.Screen, tea.Cmd) {
	res, err := sess.HandleOutcome(s.state, o)
	if err != nil {
		s.opts.Logger.Error("resolving question", "session_id", s.state.ID, "error", err)
		sess.End(s.state)
		return s.finish()
	}

	// Any tick still in flight belongs to the resolved question.
	s.seq++
	s.last = res
	s.notice = ""
	s.opts.Logger.Debug("question resolved",
		"session_id", s.state.ID,
		"outcome", res.Outcome.Kind.String(),
		"correct", res.Result.Correct,
		"points", res.Result.PointsEarned,
		"score", s.state.Score)

	if o.Kind == sess.OutcomeQuit {
		return s.finish()
	}

	chosen := -1
	if o.Kind == sess.OutcomeAnswered {
		chosen = res.Result.Choice
	}
	s.choices.Reveal(chosen)
	s.phase = phaseFeedback

	delay := s.opts.FeedbackDelay
	if o.Kind == sess.OutcomeTimedOut {
		delay = s.opts.TimeoutDelay
	}
	seq := s.seq
	return s, tea.Tick(delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}

func (s *SessionScreen) next() (screen.Screen, tea.Cmd) {
	if s.state.Active() {
		return s.present()
	}
	return s.finish()
}

// finish swaps this screen for the results of the game.
func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	s.seq++
	sum := sess.BuildSummary(s.state)
	s.opts.Logger.Debug("session ended",
		"session_id", s.state.ID,
		"score", s.state.Score,
		"quit_early", s.state.QuitEarly)

	opts := s.opts
	results := summary.New(sum, func() screen.Screen { return New(opts) })
	return s, router.Swap(results)
}

func (s *SessionScreen) elapsed() time.Duration {
	return s.opts.Now().Sub(s.asked)
}
