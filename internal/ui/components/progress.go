package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64 // 0..1
	Suffix  string
	Width   int

	// Fill styles the filled part. Zero value uses the secondary color.
	Fill lipgloss.Style
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Width:   width,
		Fill:    lipgloss.NewStyle().Background(theme.Secondary),
	}
}

// NewCountdownBar creates a bar showing remaining of total seconds, colored
// by how much time is left.
func NewCountdownBar(remaining, total, width int) ProgressBar {
	frac := 0.0
	if total > 0 {
		frac = float64(remaining) / float64(total)
	}
	bar := NewProgressBar("Time", frac, width)
	bar.Suffix = fmt.Sprintf("%2ds", remaining)
	bar.Fill = theme.CountdownColor(frac)
	return bar
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := p.Suffix
	if suffix != "" {
		suffix = "  " + suffix
	}

	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(suffix), 4)

	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	empty := barWidth - filled

	result += p.Fill.Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))

	if suffix != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
	}

	return result
}
