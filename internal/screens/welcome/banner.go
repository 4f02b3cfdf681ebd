package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

const bannerArt = `████████╗██████╗ ██╗██╗   ██╗██╗ █████╗
╚══██╔══╝██╔══██╗██║██║   ██║██║██╔══██╗
   ██║   ██████╔╝██║██║   ██║██║███████║
   ██║   ██╔══██╗██║╚██╗ ██╔╝██║██╔══██║
   ██║   ██║  ██║██║ ╚████╔╝ ██║██║  ██║
   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "T R I V I A"

// compactBelow is the terminal width under which the block banner does not fit.
const compactBelow = 44

// bannerColumns returns the width of the banner used at the given terminal width.
func bannerColumns(width int) int {
	art := bannerFor(width)
	n := 0
	for _, line := range strings.Split(art, "\n") {
		n = max(n, len([]rune(line)))
	}
	return n
}

func bannerFor(width int) string {
	if width < compactBelow {
		return bannerCompact
	}
	return bannerArt
}

// RenderBanner returns the TRIVIA banner with only its first columns shown;
// the rest is blanked so the banner keeps its size while it is uncovered.
func RenderBanner(width, columns int) string {
	lines := strings.Split(bannerFor(width), "\n")
	for i, line := range lines {
		runes := []rune(line)
		if columns < len(runes) {
			lines[i] = string(runes[:max(columns, 0)]) + strings.Repeat(" ", len(runes)-max(columns, 0))
		}
	}

	return lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(strings.Join(lines, "\n"))
}
