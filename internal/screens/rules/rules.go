package rules

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// RulesScreen lists the game rules.
type RulesScreen struct {
	lines []string
}

var _ screen.Screen = (*RulesScreen)(nil)
var _ screen.KeyHintProvider = (*RulesScreen)(nil)

// New creates a RulesScreen for the given default time per question.
func New(defaultTime int) *RulesScreen {
	return &RulesScreen{lines: session.Rules(defaultTime)}
}

func (r *RulesScreen) Init() tea.Cmd {
	return nil
}

func (r *RulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q", "backspace":
			return r, router.Back()
		}
	}
	return r, nil
}

func (r *RulesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("How to play"))
	b.WriteString("\n\n")
	for i, line := range r.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		bullet := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("• ")
		b.WriteString(bullet + lipgloss.NewStyle().Foreground(theme.Text).Width(cw-components.CardInset-2).Render(line))
	}

	card := components.Card(b.String(), cw)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (r *RulesScreen) Title() string {
	return "Rules"
}

func (r *RulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
