package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trivia/internal/screen"
)

type fakeScreen struct {
	name  string
	inits int
	seen  []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd { f.inits++; return nil }
func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.seen = append(f.seen, msg)
	return f, nil
}
func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

// send runs a navigation command and feeds its message back to the router.
func send(r *Router, cmd tea.Cmd) {
	r.Update(cmd())
}

func TestOpenAndBack(t *testing.T) {
	home := &fakeScreen{name: "home"}
	game := &fakeScreen{name: "game"}
	r := New(home)

	send(r, Open(game))
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, game, r.Active())
	assert.Equal(t, 1, game.inits)

	send(r, Back())
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, home, r.Active())
}

func TestBackKeepsRoot(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	send(r, Back())
	send(r, Back())

	assert.Equal(t, 1, r.Depth())
	assert.Same(t, home, r.Active())
}

func TestSwapKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	send(r, Open(&fakeScreen{name: "game"}))

	results := &fakeScreen{name: "results"}
	send(r, Swap(results))

	assert.Equal(t, 2, r.Depth())
	assert.Same(t, results, r.Active())
	assert.Equal(t, 1, results.inits)

	send(r, Back())
	assert.Equal(t, "home", r.Active().Title(), "the game is gone once replaced")
}

func TestSwapRoot(t *testing.T) {
	r := New(&fakeScreen{name: "welcome"})
	home := &fakeScreen{name: "home"}

	send(r, Swap(home))

	assert.Equal(t, 1, r.Depth())
	assert.Same(t, home, r.Active())
}

func TestHome(t *testing.T) {
	root := &fakeScreen{name: "home"}
	r := New(root)
	send(r, Open(&fakeScreen{name: "game"}))
	send(r, Open(&fakeScreen{name: "results"}))

	send(r, Home())

	assert.Equal(t, 1, r.Depth())
	assert.Same(t, root, r.Active())
}

func TestUpdateReachesActiveOnly(t *testing.T) {
	home := &fakeScreen{name: "home"}
	rules := &fakeScreen{name: "rules"}
	r := New(home)
	send(r, Open(rules))

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	assert.Empty(t, home.seen)
	require.Len(t, rules.seen, 1)
	assert.Equal(t, "rules", r.View(80, 24))
}

func TestNavigationNotForwarded(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	send(r, Open(&fakeScreen{name: "rules"}))
	send(r, Back())
	send(r, Home())

	assert.Empty(t, home.seen)
}

func TestEmptyRouter(t *testing.T) {
	r := &Router{}
	assert.Nil(t, r.Active())
	assert.Nil(t, r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}))
	assert.Equal(t, "", r.View(80, 24))
}
