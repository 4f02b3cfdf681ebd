package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Waiting for a game
	MascotCelebrating                      // Top grade
	MascotThinking                         // Low score, try again
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ? ? │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ A + │
└─╥═╥─┘
  ╚═╝`

const mascotThinking = `┌─────┐
│ ◔ ◔ │ ?
│  ~  │
│ ? ? │
└─────┘`

// Mascot returns the quiz host art for the given variant.
func Mascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotThinking:
		art = mascotThinking
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// MascotForGrade picks the mascot shown next to a letter grade.
func MascotForGrade(grade string) MascotVariant {
	switch grade {
	case "A+", "A":
		return MascotCelebrating
	case "D", "F":
		return MascotThinking
	default:
		return MascotIdle
	}
}
