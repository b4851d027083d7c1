package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// ProgressBar is a one-line gauge: optional label, bar, optional trailer.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..1
	ShowPercent bool
	Suffix      string // replaces the percentage when set
	Width       int
}

const minBarCells = 4

// NewProgressBar returns a bar filled to percent of width.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) trailer() string {
	if p.Suffix != "" {
		return p.Suffix
	}
	if p.ShowPercent {
		return fmt.Sprintf("%d%%", int(p.Percent*100))
	}
	return ""
}

// View renders the bar.
func (p ProgressBar) View() string {
	parts := make([]string, 0, 3)
	if p.Label != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
	}
	tail := p.trailer()

	used := 0
	for _, s := range parts {
		used += lipgloss.Width(s) + 2
	}
	if tail != "" {
		used += lipgloss.Width(tail) + 2
	}
	cells := max(p.Width-used, minBarCells)
	filled := min(max(int(float64(cells)*p.Percent), 0), cells)

	parts = append(parts,
		theme.ProgressFilled.Render(strings.Repeat(" ", filled))+
			theme.ProgressEmpty.Render(strings.Repeat(" ", cells-filled)))
	if tail != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(tail))
	}
	return strings.Join(parts, "  ")
}
