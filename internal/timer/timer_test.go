package timer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = 5 * time.Millisecond

func TestStart_TicksThenTimesOut(t *testing.T) {
	c := New(WithInterval(step))

	var (
		mu    sync.Mutex
		ticks []int
	)
	fired := make(chan struct{}, 2)

	h := c.Start(4, func(remaining int) {
		mu.Lock()
		ticks = append(ticks, remaining)
		mu.Unlock()
	}, func() {
		fired <- struct{}{}
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timeout never fired")
	}

	mu.Lock()
	assert.Equal(t, []int{3, 2, 1}, ticks)
	mu.Unlock()

	assert.True(t, h.Fired())
	assert.False(t, h.Cancel(), "cancel after timeout must report the loss")
	assert.False(t, h.Cancel(), "repeated cancel is a no-op")

	// Give a rogue second firing a chance to show up.
	time.Sleep(10 * step)
	assert.Len(t, fired, 0, "timeout must fire exactly once")
}

func TestCancel_BeforeTimeout(t *testing.T) {
	c := New(WithInterval(step))

	var timeouts atomic.Int32
	h := c.Start(20, nil, func() { timeouts.Add(1) })

	require.True(t, h.Cancel())
	assert.True(t, h.Cancel(), "second cancel keeps reporting the win")
	assert.False(t, h.Fired())

	time.Sleep(30 * step)
	assert.Equal(t, int32(0), timeouts.Load())
}

func TestCancel_StopsTicks(t *testing.T) {
	c := New(WithInterval(step))

	var ticks atomic.Int32
	h := c.Start(100, func(int) { ticks.Add(1) }, nil)

	time.Sleep(3 * step)
	require.True(t, h.Cancel())
	seen := ticks.Load()

	time.Sleep(10 * step)
	assert.Equal(t, seen, ticks.Load(), "no ticks after cancel")
}

func TestStart_DisabledBudget(t *testing.T) {
	c := New(WithInterval(step))

	for _, budget := range []int{0, -5} {
		var calls atomic.Int32
		h := c.Start(budget, func(int) { calls.Add(1) }, func() { calls.Add(1) })

		assert.True(t, h.Inert())
		assert.True(t, h.Cancel(), "input always wins against a disabled timer")
		assert.False(t, h.Fired())

		time.Sleep(5 * step)
		assert.Equal(t, int32(0), calls.Load())
	}
}

func TestStart_SingleStepBudget(t *testing.T) {
	c := New(WithInterval(step))

	var ticks atomic.Int32
	fired := make(chan struct{}, 1)
	c.Start(1, func(int) { ticks.Add(1) }, func() { fired <- struct{}{} })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timeout never fired")
	}
	assert.Equal(t, int32(0), ticks.Load())
}

func TestRace_ExactlyOneWinner(t *testing.T) {
	c := New(WithInterval(time.Microsecond))

	for i := 0; i < 200; i++ {
		var timeoutRan atomic.Bool
		h := c.Start(1, nil, func() { timeoutRan.Store(true) })
		time.Sleep(time.Microsecond)

		inputWon := h.Cancel()
		// Let a timeout that won finish its callback.
		time.Sleep(50 * time.Microsecond)
		if inputWon {
			assert.False(t, timeoutRan.Load(), "iteration %d: both sides won", i)
		} else {
			assert.True(t, h.Fired(), "iteration %d: nobody won", i)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	assert.Equal(t, DefaultInterval, New().Interval())
	assert.Equal(t, DefaultInterval, New(WithInterval(0)).Interval())
	assert.Equal(t, step, New(WithInterval(step)).Interval())
}
