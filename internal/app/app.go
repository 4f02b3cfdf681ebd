// Package app is the root Bubble Tea model of the full-screen interface. It
// frames the router's active screen with a header and footer and owns the
// keys that work everywhere.
package app

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/screens/home"
	sessionscreen "github.com/abhisek/trivia/internal/screens/session"
	"github.com/abhisek/trivia/internal/screens/welcome"
	"github.com/abhisek/trivia/internal/ui/layout"
)

var (
	backHints = []layout.KeyHint{{Key: "Esc", Description: "Back"}, {Key: "Ctrl+C", Description: "Quit"}}
	rootHints = []layout.KeyHint{{Key: "Enter", Description: "Continue"}, {Key: "Ctrl+C", Description: "Quit"}}
)

// Model holds the screen stack and the terminal size.
type Model struct {
	screens       *router.Router
	width, height int
}

// newModel opens on the welcome screen, which hands over to the main menu.
func newModel(opts sessionscreen.Options) Model {
	menu := func() screen.Screen { return home.New(opts) }
	return Model{screens: router.New(welcome.New(menu, len(opts.Questions)))}
}

func (m Model) Init() tea.Cmd {
	if top := m.screens.Active(); top != nil {
		return top.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if cmd, handled := m.globalKey(msg.String()); handled {
			return m, cmd
		}
	}
	return m, m.screens.Update(msg)
}

// globalKey handles ctrl+c and esc. Esc pops the active screen unless that
// screen asked to see it.
func (m Model) globalKey(key string) (tea.Cmd, bool) {
	switch key {
	case "ctrl+c":
		return tea.Quit, true
	case "esc":
		if h, ok := m.screens.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
			return nil, false
		}
		if m.screens.Depth() > 1 {
			return router.Back(), true
		}
		return nil, true
	}
	return nil, false
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	switch {
	case m.width == 0 || m.height == 0:
		return ""
	case layout.IsTooSmall(m.width, m.height):
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header, footer := m.chrome(m.screens.Active())
	body := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return layout.RenderFrame(header, m.screens.View(m.width, body), footer, m.width, m.height)
}

// chrome renders the header and footer for top.
func (m Model) chrome(top screen.Screen) (header, footer string) {
	var title, status string
	hints := rootHints
	if m.screens.Depth() > 1 {
		hints = backHints
	}
	if top != nil {
		title = top.Title()
		if sp, ok := top.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := top.(screen.KeyHintProvider); ok && len(kp.KeyHints()) > 0 {
			hints = kp.KeyHints()
		}
	}
	return layout.RenderHeader(title, status, m.width), layout.RenderFooter(hints, m.width)
}

// Run starts the full-screen interface and blocks until the player exits or
// ctx is cancelled. Cancellation is a normal exit.
func Run(ctx context.Context, opts sessionscreen.Options) error {
	_, err := tea.NewProgram(newModel(opts), tea.WithContext(ctx)).Run()
	if err != nil && (ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled)) {
		return nil
	}
	return err
}
