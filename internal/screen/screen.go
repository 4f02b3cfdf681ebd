// Package screen defines what the router stacks: a page of the
// full-screen interface plus the optional hooks the app frame looks for.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/ui/layout"
)

// Screen is one page. View draws only the content area; the app frame adds
// the header and footer around it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider puts live status, such as the running score, on the right
// of the header.
type StatusProvider interface {
	Status() string
}

// EscapeHandler screens receive Esc themselves instead of being popped.
type EscapeHandler interface {
	HandlesEscape() bool
}
