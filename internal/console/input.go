package console

import (
	"bufio"
	"context"
	"io"
	"time"
)

// line is one line of input and the moment the reader got it.
type line struct {
	text string
	at   time.Time
}

// input is the player's line stream. Lines read before the cutoff set by
// ignoreUntil are dropped.
type input struct {
	lines <-chan line
	since time.Time
}

// readLines reads lines from r on a goroutine until EOF or ctx is done. The
// channel is closed at EOF.
func readLines(ctx context.Context, r io.Reader) *input {
	ch := make(chan line)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- line{text: sc.Text(), at: time.Now()}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return &input{lines: ch}
}

func (in *input) stale(l line) bool {
	return l.at.Before(in.since)
}

// ignoreUntil drops every line read before t.
func (in *input) ignoreUntil(t time.Time) {
	in.since = t
}

// next waits for the next line that is not stale.
func (in *input) next(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case l, ok := <-in.lines:
			if !ok {
				return "", errInputClosed
			}
			if in.stale(l) {
				continue
			}
			return l.text, nil
		}
	}
}

// discardFor waits d while throwing away whatever the player types, so the
// reader goroutine is never left holding a line from that window. An EOF
// during the wait is left for the next read to report.
func (in *input) discardFor(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	lines := in.lines
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			in.ignoreUntil(time.Now())
			return nil
		case _, ok := <-lines:
			if !ok {
				lines = nil
			}
		}
	}
}
