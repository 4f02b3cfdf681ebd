// Package console runs the line-oriented trivia game on a plain terminal.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/trivia/internal/logging"
	"github.com/abhisek/trivia/internal/question"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/timer"
)

const (
	// DefaultTimeoutDelay is how long the "time's up" message stays before the
	// next question.
	DefaultTimeoutDelay = 1500 * time.Millisecond

	// DefaultPacingDelay separates a resolved question from the next one.
	DefaultPacingDelay = time.Second

	// Farewell is printed whenever the program exits normally.
	Farewell = "Thanks for playing trivia. Goodbye!"
)

// ErrUnexpected wraps a panic recovered from the game loop.
var ErrUnexpected = errors.New("unexpected failure")

// errInputClosed ends the game when stdin reaches EOF.
var errInputClosed = errors.New("input closed")

// Runner plays trivia games over an input and output stream.
type Runner struct {
	in        io.Reader
	out       io.Writer
	questions []question.Question

	defaultTime  int
	countdown    *timer.Countdown
	timeoutDelay time.Duration
	pacingDelay  time.Duration
	logger       *slog.Logger
	newID        func() string
	styles       styles
}

// Option configures a Runner.
type Option func(*Runner)

// WithDefaultTime sets the per-question budget offered at game start.
func WithDefaultTime(seconds int) Option {
	return func(r *Runner) {
		if seconds >= 0 {
			r.defaultTime = seconds
		}
	}
}

// WithCountdown replaces the countdown used for timed questions.
func WithCountdown(c *timer.Countdown) Option {
	return func(r *Runner) { r.countdown = c }
}

// WithDelays overrides the pause after a timeout and between questions.
func WithDelays(timeout, pacing time.Duration) Option {
	return func(r *Runner) {
		r.timeoutDelay = timeout
		r.pacingDelay = pacing
	}
}

// WithLogger sets the logger for session lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithIDGenerator replaces the session ID source.
func WithIDGenerator(f func() string) Option {
	return func(r *Runner) { r.newID = f }
}

// WithColor turns ANSI styling on or off.
func WithColor(on bool) Option {
	return func(r *Runner) { r.styles = newStyles(on) }
}

// New creates a Runner that plays questions, reading answers from in and
// writing prompts to out.
func New(in io.Reader, out io.Writer, questions []question.Question, opts ...Option) *Runner {
	r := &Runner{
		in:           in,
		out:          out,
		questions:    questions,
		defaultTime:  30,
		countdown:    timer.New(),
		timeoutDelay: DefaultTimeoutDelay,
		pacingDelay:  DefaultPacingDelay,
		logger:       logging.Discard(),
		newID:        uuid.NewString,
		styles:       newStyles(false),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run shows the main menu and plays games until the player exits, input
// ends, or ctx is cancelled. Exit, EOF and cancellation all print a farewell
// and return nil. A panic in the game loop is reported to the player and
// returned as an error wrapping ErrUnexpected.
func (r *Runner) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		if p := recover(); p != nil {
			r.logger.ErrorContext(ctx, "console: game loop panic", "panic", p, "stack", string(debug.Stack()))
			r.println(r.styles.incorrect.Render("Something went wrong and the game had to stop."))
			err = fmt.Errorf("%w: %v", ErrUnexpected, p)
		}
	}()

	in := readLines(ctx, r.in)
	err = r.menu(ctx, in)
	if err == nil || errors.Is(err, errInputClosed) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		r.println()
		r.println(r.styles.title.Render(Farewell))
		return nil
	}

	r.println(r.styles.incorrect.Render("Something went wrong and the game had to stop."))
	return err
}

func (r *Runner) menu(ctx context.Context, in *input) error {
	r.println(r.styles.title.Render("Welcome to Trivia!"))
	r.printf("%d questions loaded.\n", len(r.questions))

	for {
		r.println()
		r.println(r.styles.heading.Render("Main menu"))
		r.println("  1. Start a new game")
		r.println("  2. Rules")
		r.println("  3. Exit")
		r.printf("Choose an option: ")

		line, err := in.next(ctx)
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "1":
			if err := r.playGames(ctx, in); err != nil {
				return err
			}
		case "2":
			r.printRules()
		case "3":
			return nil
		default:
			r.println(r.styles.warn.Render("Please choose 1, 2 or 3."))
		}
	}
}

func (r *Runner) printRules() {
	r.println()
	r.println(r.styles.heading.Render("Rules"))
	for _, line := range session.Rules(r.defaultTime) {
		r.printf("  - %s\n", line)
	}
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) println(args ...any) {
	fmt.Fprintln(r.out, args...)
}
