package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/theme"
)

const (
	logo        = "╔╦╗╦═╗╦╦  ╦╦╔═╗\n ║ ╠╦╝║╚╗╔╝║╠═╣\n ╩ ╩╚═╩ ╚╝ ╩╩ ╩"
	logoCompact = "T · R · I · V · I · A"

	// buttonWidth is the width of a bordered menu entry.
	buttonWidth = 22
)

var (
	logoStyle   = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	countStyle  = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	pointsStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	clockStyle  = lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
)

func renderLogo(cw int, compact bool) string {
	art := logo
	if compact {
		art = logoCompact
	}
	return components.Centered(logoStyle.Render(art), cw)
}

// setInfo describes the loaded question set and the default clock.
type setInfo struct {
	questions   int
	points      int
	categories  int
	defaultTime int
}

func (s setInfo) clock() string {
	if s.defaultTime <= 0 {
		return "UNTIMED"
	}
	return fmt.Sprintf("%dS", s.defaultTime)
}

func renderScoreboard(info setInfo, cw int, compact bool) string {
	var line string
	if compact {
		line = strings.Join([]string{
			countStyle.Render(fmt.Sprintf("?%d", info.questions)),
			pointsStyle.Render(fmt.Sprintf("◆%d", info.points)),
			clockStyle.Render("⏱" + info.clock()),
		}, " ")
	} else {
		line = strings.Join([]string{
			countStyle.Render(fmt.Sprintf("? %d QUESTIONS / %d TOPICS", info.questions, info.categories)),
			pointsStyle.Render(fmt.Sprintf("◆ %d PTS", info.points)),
			clockStyle.Render("⏱ " + info.clock()),
		}, "  ")
	}
	return components.Scoreboard(line, cw)
}

// renderMenu draws the numbered entries, as bordered buttons or, when
// compact, as plain lines that fit short terminals.
func renderMenu(labels []string, selected, cw int, compact bool) string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow)
	idle := lipgloss.NewStyle().Foreground(theme.Text)

	if !compact {
		button := lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
		active = button.BorderForeground(theme.ArcadeYellow).Inherit(active)
		idle = button.BorderForeground(theme.Border).Inherit(idle)
	}

	entries := make([]string, len(labels))
	for i, label := range labels {
		text := fmt.Sprintf("%d  %s", i+1, label)
		switch {
		case i == selected:
			entries[i] = active.Render(" ▸ " + text + " ")
		default:
			entries[i] = idle.Render("   " + text)
		}
	}
	return components.Centered(lipgloss.JoinVertical(lipgloss.Center, entries...), cw)
}
