package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	next := func() screen.Screen {
		calls++
		return &stubScreen{}
	}
	return New(next, 5), &calls
}

func sendFrames(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(frameMsg{})
	}
	return cmd
}

func TestRevealThenTagline(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(100, 30), "How much do you really know?") {
		t.Error("tagline should not be visible at start")
	}

	sendFrames(w, 3)
	if w.revealed() != 3*revealStep {
		t.Errorf("revealed = %d, want %d", w.revealed(), 3*revealStep)
	}
	if w.ready(100) {
		t.Fatal("banner should still be uncovering")
	}

	sendFrames(w, bannerColumns(100)/revealStep+1)
	if !w.ready(100) {
		t.Fatal("banner should be fully shown")
	}
	view := w.View(100, 30)
	if !strings.Contains(view, "How much do you really know?") {
		t.Error("tagline should be visible once the banner is shown")
	}
	if !strings.Contains(view, "5 questions ready") {
		t.Error("expected the loaded question count")
	}
}

func TestKeypressLeaves(t *testing.T) {
	w, calls := newTestWelcome()
	sendFrames(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during the animation should leave")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if replace.Screen == nil || *calls != 1 {
		t.Errorf("screen = %v, factory calls = %d", replace.Screen, *calls)
	}
}

func TestNoAutoLeave(t *testing.T) {
	w, calls := newTestWelcome()
	if cmd := sendFrames(w, 200); cmd == nil {
		t.Error("frames should keep coming for the blinking prompt")
	}
	if *calls != 0 {
		t.Errorf("factory should not be called without a keypress, got %d", *calls)
	}
}

func TestLeaveOnce(t *testing.T) {
	w, calls := newTestWelcome()

	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"}); cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("factory should be called exactly once, got %d", *calls)
	}
	if _, cmd := w.Update(frameMsg{}); cmd != nil {
		t.Error("expected no further frames after leaving")
	}
}

func TestRenderBanner(t *testing.T) {
	if got := RenderBanner(30, 100); !strings.Contains(got, bannerCompact) {
		t.Errorf("expected the compact banner for narrow terminals, got %q", got)
	}
	if got := RenderBanner(80, 100); strings.Contains(got, bannerCompact) {
		t.Error("expected the block banner for wide terminals")
	}
	if got := RenderBanner(30, 3); !strings.Contains(got, "T R") || strings.Contains(got, "I V") {
		t.Errorf("partial reveal = %q", got)
	}
}

func TestBannerColumns(t *testing.T) {
	if got := bannerColumns(30); got != len(bannerCompact) {
		t.Errorf("compact columns = %d, want %d", got, len(bannerCompact))
	}
	if got := bannerColumns(100); got < compactBelow-5 {
		t.Errorf("block banner columns = %d", got)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
