package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/question"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/screens/rules"
	sessionscreen "github.com/abhisek/trivia/internal/screens/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
)

// HomeScreen is the main menu: start a game, read the rules, or exit.
type HomeScreen struct {
	menu components.Menu
	info setInfo
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen whose games are configured by opts.
func New(opts sessionscreen.Options) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START GAME", Action: func() tea.Cmd {
			return router.Open(sessionscreen.New(opts))
		}},
		{Label: "RULES", Action: func() tea.Cmd {
			return router.Open(rules.New(opts.DefaultTime))
		}},
		{Label: "EXIT GAME", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		info: setInfo{
			questions:   len(opts.Questions),
			points:      question.TotalPoints(opts.Questions),
			categories:  countCategories(opts.Questions),
			defaultTime: opts.DefaultTime,
		},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := components.ContentWidth(width)

	sections := []string{renderLogo(cw, compact)}
	if !compact {
		sections = append(sections, components.Centered(components.Mascot(components.MascotIdle), cw))
	}
	sections = append(sections,
		renderScoreboard(h.info, cw, compact),
		renderMenu(h.menu.Labels(), h.menu.Selected, cw, compact),
	)

	content := strings.Join(sections, "\n\n")
	return components.Stage(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-3", Description: "Pick"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// countCategories returns the number of distinct categories, counting
// uncategorized questions as one.
func countCategories(questions []question.Question) int {
	seen := make(map[string]bool)
	for _, q := range questions {
		seen[q.Category] = true
	}
	return len(seen)
}
