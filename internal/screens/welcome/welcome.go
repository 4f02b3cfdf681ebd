// Package welcome is the splash screen: the banner is uncovered left to right,
// then the player presses any key to reach the main menu.
package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/theme"
)

const (
	frameInterval = 50 * time.Millisecond

	// revealStep is how many banner columns each frame uncovers.
	revealStep = 2

	// blinkFrames is the half period of the "press any key" blink.
	blinkFrames = 10
)

type frameMsg struct{}

// WelcomeScreen animates the banner until a key press replaces it with the
// screen built by next.
type WelcomeScreen struct {
	next      func() screen.Screen
	questions int

	frame int
	done  bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen leading to the screen produced by next.
// questions is the size of the loaded question set.
func New(next func() screen.Screen, questions int) *WelcomeScreen {
	return &WelcomeScreen{next: next, questions: questions}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.frame++
		return w, nextFrame()

	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

// leave builds the next screen once; later key presses are ignored.
func (w *WelcomeScreen) leave() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	next := w.next()
	return router.Swap(next)
}

// revealed reports how many banner columns are showing.
func (w *WelcomeScreen) revealed() int {
	return w.frame * revealStep
}

func (w *WelcomeScreen) ready(width int) bool {
	return w.revealed() >= bannerColumns(width)
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Render(components.Mascot(components.MascotIdle)),
		"",
		RenderBanner(width, w.revealed()),
	}

	if w.ready(width) {
		sections = append(sections,
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("How much do you really know?"),
			lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(fmt.Sprintf("%d questions ready", w.questions)),
			"",
		)
		prompt := "press any key to continue"
		if (w.frame/blinkFrames)%2 == 1 {
			prompt = strings.Repeat(" ", len(prompt))
		}
		sections = append(sections, theme.Hint.Render(prompt))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
