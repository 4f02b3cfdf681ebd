package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// Column widths shared by every screen so stacked panels line up.
const (
	minContentWidth = 20
	maxContentWidth = 64

	// stageChrome is the stage border plus its inner padding.
	stageChrome = 6
)

// ContentWidth returns the width of the panels drawn inside a stage of
// frameWidth columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-stageChrome, minContentWidth), maxContentWidth)
}

// Stage draws the double-bordered show stage filling width x height with
// content centered in it.
func Stage(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card draws a rounded panel cw columns wide. Its border and padding use
// CardInset columns.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// CardInset is the number of columns a Card takes for its border and padding.
const CardInset = 6

// Scoreboard draws a one-line double-bordered strip, used for stats.
func Scoreboard(line string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// Centered centers s within width.
func Centered(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
