// Package timer implements the optional per-question countdown.
//
// A countdown races the player's input. Whichever side resolves first wins:
// the timeout callback only runs if the countdown reaches zero before Cancel
// is called, and Cancel reports whether the caller got there first.
package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the length of one countdown step.
const DefaultInterval = time.Second

const (
	stateRunning int32 = iota
	stateCancelled
	stateFired
)

// Countdown starts per-question timers.
type Countdown struct {
	interval time.Duration
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithInterval overrides the length of one countdown step (one "second").
func WithInterval(d time.Duration) Option {
	return func(c *Countdown) {
		if d > 0 {
			c.interval = d
		}
	}
}

// New creates a Countdown.
func New(opts ...Option) *Countdown {
	c := &Countdown{interval: DefaultInterval}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Interval returns the length of one countdown step.
func (c *Countdown) Interval() time.Duration {
	return c.interval
}

// Handle controls one running countdown.
type Handle struct {
	state    atomic.Int32
	done     chan struct{}
	stopOnce sync.Once
	inert    bool
}

// Start begins a countdown of budget steps. onTick is called once per elapsed
// step with the steps remaining (budget-1 down to 1). onTimeout is called
// exactly once when the budget runs out, unless the handle is cancelled first.
// Either callback may be nil. A budget <= 0 returns an inert handle that never
// fires.
func (c *Countdown) Start(budget int, onTick func(remaining int), onTimeout func()) *Handle {
	h := &Handle{done: make(chan struct{})}
	if budget <= 0 {
		h.inert = true
		h.state.Store(stateCancelled)
		h.stop()
		return h
	}

	go h.run(c.interval, budget, onTick, onTimeout)
	return h
}

func (h *Handle) run(interval time.Duration, budget int, onTick func(int), onTimeout func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	remaining := budget
	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
		}

		remaining--
		if remaining > 0 {
			if h.state.Load() != stateRunning {
				return
			}
			if onTick != nil {
				onTick(remaining)
			}
			continue
		}

		if h.state.CompareAndSwap(stateRunning, stateFired) {
			h.stop()
			if onTimeout != nil {
				onTimeout()
			}
		}
		return
	}
}

// Cancel stops the countdown. It reports whether the caller won the race,
// i.e. the timeout has not fired and never will. Calling Cancel more than
// once, or after the timeout fired, has no further effect.
func (h *Handle) Cancel() bool {
	if h.state.CompareAndSwap(stateRunning, stateCancelled) {
		h.stop()
		return true
	}
	return h.state.Load() != stateFired
}

// Fired reports whether the timeout won the race.
func (h *Handle) Fired() bool {
	return h.state.Load() == stateFired
}

// Inert reports whether the handle came from a disabled (zero budget) timer.
func (h *Handle) Inert() bool {
	return h.inert
}

func (h *Handle) stop() {
	h.stopOnce.Do(func() { close(h.done) })
}
