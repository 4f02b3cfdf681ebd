package console

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/trivia/internal/session"
)

// playGames plays one game, then keeps playing while the player asks to
// replay. Each game gets a fresh SessionState.
func (r *Runner) playGames(ctx context.Context, in *input) error {
	for {
		budget, err := r.chooseTime(ctx, in)
		if err != nil {
			return err
		}

		state := session.NewSessionState(r.questions, budget, r.newID())
		if err := r.play(ctx, in, state); err != nil {
			return err
		}
		r.printReport(session.BuildSummary(state))

		again, err := r.askReplay(ctx, in)
		if err != nil || !again {
			return err
		}
	}
}

func (r *Runner) chooseTime(ctx context.Context, in *input) (int, error) {
	for {
		r.println()
		r.printf("Seconds per question, 0 for no limit [%d]: ", r.defaultTime)
		line, err := in.next(ctx)
		if err != nil {
			return 0, err
		}

		s := strings.TrimSpace(line)
		if s == "" {
			return r.defaultTime, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			r.println(r.styles.warn.Render("Please enter a whole number of seconds, or 0 for no limit."))
			continue
		}
		return n, nil
	}
}

func (r *Runner) askReplay(ctx context.Context, in *input) (bool, error) {
	for {
		r.println()
		r.printf("Play again? (y/n): ")
		line, err := in.next(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			r.println(r.styles.warn.Render(`Please answer "y" or "n".`))
		}
	}
}

// play runs the question loop of one session. On error the session is ended
// where it stands.
func (r *Runner) play(ctx context.Context, in *input, state *session.SessionState) error {
	session.Start(state)
	r.logger.DebugContext(ctx, "session started",
		"session_id", state.ID,
		"questions", len(state.Questions),
		"time_per_question", state.TimePerQuestion)

	for state.Active() {
		res, err := r.askQuestion(ctx, in, state)
		if err != nil {
			session.End(state)
			r.logger.DebugContext(ctx, "session interrupted", "session_id", state.ID, "error", err)
			return err
		}

		r.logger.DebugContext(ctx, "question resolved",
			"session_id", state.ID,
			"outcome", res.Outcome.Kind.String(),
			"correct", res.Result.Correct,
			"points", res.Result.PointsEarned,
			"score", state.Score)

		if res.Ended || res.Outcome.Kind == session.OutcomeTimedOut {
			continue
		}
		if err := pause(ctx, r.pacingDelay); err != nil {
			session.End(state)
			return err
		}
	}

	r.logger.DebugContext(ctx, "session ended",
		"session_id", state.ID,
		"score", state.Score,
		"quit_early", state.QuitEarly)
	return nil
}

// askQuestion presents the current question and waits for the first event:
// an accepted answer or command, or the countdown running out. Rejected
// input re-prompts while the countdown keeps going.
func (r *Runner) askQuestion(ctx context.Context, in *input, state *session.SessionState) (*session.Resolution, error) {
	q := session.CurrentQuestion(state)
	r.printQuestion(state, q)

	budget := state.TimePerQuestion
	ticks := make(chan int, max(budget, 1))
	timeout := make(chan struct{}, 1)

	started := time.Now()
	h := r.countdown.Start(budget,
		func(remaining int) {
			select {
			case ticks <- remaining:
			default:
			}
		},
		func() { timeout <- struct{}{} },
	)
	defer h.Cancel()

	r.printPrompt()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case remaining := <-ticks:
			if showTick(remaining) {
				r.println()
				r.println(r.styles.warn.Render(secondsLeft(remaining)))
				r.printPrompt()
			}

		case <-timeout:
			return r.timedOut(ctx, in, state)

		case l, ok := <-in.lines:
			if !ok {
				return nil, errInputClosed
			}
			if in.stale(l) {
				continue
			}

			o, valid := session.ParseOutcome(*q, l.text, time.Since(started))
			if !valid {
				r.printf("%s Enter a number from 1 to %d, \"skip\" or \"quit\".\n",
					r.styles.warn.Render("Invalid answer."), len(q.Options))
				r.printPrompt()
				continue
			}

			// The countdown reached zero before this line was handled.
			if !h.Cancel() {
				return r.timedOut(ctx, in, state)
			}

			res, err := session.HandleOutcome(state, o)
			if err != nil {
				return nil, err
			}
			r.printResolution(state, res)
			return res, nil
		}
	}
}

func (r *Runner) timedOut(ctx context.Context, in *input, state *session.SessionState) (*session.Resolution, error) {
	res, err := session.HandleOutcome(state, session.Outcome{Kind: session.OutcomeTimedOut})
	if err != nil {
		return nil, err
	}
	r.println()
	r.printResolution(state, res)

	// Whatever the player types while "time's up" shows belongs to the
	// expired question, not the next one.
	if err := in.discardFor(ctx, r.timeoutDelay); err != nil {
		return nil, err
	}
	return res, nil
}

// showTick limits countdown output to every ten seconds and the final five.
func showTick(remaining int) bool {
	return remaining <= 5 || remaining%10 == 0
}

func secondsLeft(n int) string {
	if n == 1 {
		return "1 second left!"
	}
	return strconv.Itoa(n) + " seconds left"
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
