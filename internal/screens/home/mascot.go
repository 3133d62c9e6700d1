package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hirabolta/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default
	MascotCelebrating                      // A syllabary is complete
	MascotGuest                            // No learner, nothing is saved
)

const mascotIdle = `┌──────┐
│ ◉  ◉ │
│  ▽▽  │
│ あア │
└──────┘`

const mascotCelebrating = `┌──────┐
│ ★  ★ │
│  ▿▿  │
│ あア │
└─╥══╥─┘
  ╚══╝`

const mascotGuest = `┌──────┐
│ ◉  ◉ │ ?
│  ──  │
│ あア │
└──────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotGuest:
		art = mascotGuest
		fg = theme.TextDim
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
