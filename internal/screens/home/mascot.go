package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimquiz/internal/session"
	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // No result yet, or a good one
	MascotCelebrating                      // Last run perfect or excellent
	MascotAlert                            // Last run needs review
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ :wq │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ :wq │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ :q! │
└─────┘`

// VariantFor picks the mascot for the tier of the last finished run.
func VariantFor(tier string) MascotVariant {
	switch session.Tier(tier) {
	case session.TierPerfect, session.TierExcellent:
		return MascotCelebrating
	case session.TierNeedsReview:
		return MascotAlert
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotAlert:
		art = mascotAlert
		fg = theme.Error
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
