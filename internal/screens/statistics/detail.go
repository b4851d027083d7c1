package statistics

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimquiz/internal/catalog"
	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/ui/components"
	"github.com/abhisek/vimquiz/internal/ui/layout"
	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// CategoryDetailScreen lists the commands of one category with their
// descriptions in the active language.
type CategoryDetailScreen struct {
	env          *screen.Env
	category     string
	scrollOffset int
}

var _ screen.Screen = (*CategoryDetailScreen)(nil)
var _ screen.KeyHintProvider = (*CategoryDetailScreen)(nil)

func newCategoryDetail(env *screen.Env, category string) *CategoryDetailScreen {
	return &CategoryDetailScreen{env: env, category: category}
}

func (d *CategoryDetailScreen) Init() tea.Cmd { return nil }

func (d *CategoryDetailScreen) Title() string {
	return d.env.T("statistics.commands", i18n.Params{"category": d.env.CategoryName(d.category)})
}

func (d *CategoryDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		d.env.Hint("↑↓", "navigate"),
		d.env.Hint("Esc", "back"),
	}
}

func (d *CategoryDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if d.scrollOffset > 0 {
			d.scrollOffset--
		}
	case "down", "j":
		d.scrollOffset++
	case "q", "esc":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

func (d *CategoryDetailScreen) questions() []catalog.Question {
	// Descriptions are localized on every call so a language switch shows
	// up without rebuilding the screen.
	return d.env.Session.Catalog().ByCategory(d.category)
}

func (d *CategoryDetailScreen) View(width, height int) string {
	qs := d.questions()
	contentWidth := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + d.env.CategoryName(d.category)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  " + d.env.T("statistics.questions_count", i18n.Params{"count": len(qs)})))
	b.WriteString("\n\n")

	visible := max(height-3, 1)
	if d.scrollOffset > len(qs)-visible {
		d.scrollOffset = max(len(qs)-visible, 0)
	}
	end := min(d.scrollOffset+visible, len(qs))

	cmdWidth := 0
	for _, q := range qs {
		cmdWidth = max(cmdWidth, lipgloss.Width(q.Command))
	}
	descStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		MaxWidth(max(contentWidth-cmdWidth-6, 10))

	for _, q := range qs[d.scrollOffset:end] {
		b.WriteString(fmt.Sprintf("    %s  %s\n",
			theme.Command.Render(fmt.Sprintf("%-*s", cmdWidth, q.Command)),
			descStyle.Render(q.Description),
		))
	}
	return b.String()
}
