package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// Terminal bounds below which only the resize notice is drawn.
const (
	MinWidth  = 60
	MinHeight = 20
)

// Rows taken by the boxed header and footer bars.
const barRows = 3

// AppName is shown on the left of the header.
const AppName = "Vim Quiz"

// KeyHint is one footer entry, e.g. {"Esc", "back"}.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal cannot hold the frame.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight is what remains between the header and footer bars.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-2*barRows, 0)
}

// RenderMinSizeMessage is drawn instead of the frame on tiny terminals.
func RenderMinSizeMessage(width, height int) string {
	lines := []string{
		theme.Incorrect.Render("E36: Not enough room"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("need %dx%d, have %dx%d", MinWidth, MinHeight, width, height)),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// RenderHeader draws the app name, the screen title in the middle and a
// status string (language, running score) on the right.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)
	side := inner / 4

	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Width(side).Render(" " + AppName)
	right := lipgloss.NewStyle().Foreground(theme.Accent).
		Width(max(side, lipgloss.Width(status))).Align(lipgloss.Right).Render(status)
	middle := lipgloss.NewStyle().Foreground(theme.Text).
		Width(max(inner-lipgloss.Width(name)-lipgloss.Width(right), 0)).
		Align(lipgloss.Center).Render(title)

	return theme.Bar.Width(width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, name, middle, right))
}

// RenderFooter draws the key hints as key caps followed by their labels.
func RenderFooter(hints []KeyHint, width int) string {
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(" ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(theme.KeyCap.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(desc.Render(h.Description))
	}
	return theme.Bar.Width(width).Render(b.String())
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Centered renders text with style, centered across width.
func Centered(text string, width int, style lipgloss.Style) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}
