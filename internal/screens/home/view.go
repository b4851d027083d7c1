package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// Block-letter title.
const titleFull = `██╗   ██╗██╗███╗   ███╗     ██████╗ ██╗   ██╗██╗███████╗
██║   ██║██║████╗ ████║    ██╔═══██╗██║   ██║██║╚══███╔╝
██║   ██║██║██╔████╔██║    ██║   ██║██║   ██║██║  ███╔╝
╚██╗ ██╔╝██║██║╚██╔╝██║    ██║▄▄ ██║██║   ██║██║ ███╔╝
 ╚████╔╝ ██║██║ ╚═╝ ██║    ╚██████╔╝╚██████╔╝██║███████╗
  ╚═══╝  ╚═╝╚═╝     ╚═╝     ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const titleCompact = "V · I · M   Q · U · I · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact || cw < lipgloss.Width(titleFull) {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the current settings and corpus size in a
// bordered box matching content width.
func renderStatsBar(parts []string, cw int) string {
	styles := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true),
		lipgloss.NewStyle().Foreground(theme.TextDim),
	}
	rendered := make([]string, len(parts))
	for i, p := range parts {
		rendered[i] = styles[i%len(styles)].Render(p)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(rendered, "  ·  "))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each menu item as a fixed-width button, or as plain
// lines when compact.
func renderMenu(items []string, selected int, cw int, compact bool) string {
	if compact {
		return renderMenuCompact(items, selected, cw)
	}

	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
