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

// StatisticsScreen shows the size of the corpus per category and
// difficulty. Each category row opens the list of its commands.
type StatisticsScreen struct {
	env          *screen.Env
	stats        catalog.Stats
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*StatisticsScreen)(nil)
var _ screen.KeyHintProvider = (*StatisticsScreen)(nil)

// New creates a new StatisticsScreen.
func New(env *screen.Env) *StatisticsScreen {
	return &StatisticsScreen{
		env:   env,
		stats: env.Session.Catalog().Statistics(),
	}
}

func (s *StatisticsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatisticsScreen) Title() string {
	return s.env.T("statistics.title", nil)
}

// KeyHints returns the key binding hints for the footer.
func (s *StatisticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		s.env.Hint("↑↓", "navigate"),
		s.env.Hint("Enter", "select"),
		s.env.Hint("Esc", "back"),
	}
}

func (s *StatisticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.stats.Categories)-1 {
			s.cursor++
		}
	case "home", "g":
		s.cursor = 0
	case "end", "G":
		s.cursor = max(len(s.stats.Categories)-1, 0)
	case "enter":
		return s, s.selectCategory()
	case "q", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// Selected returns the category under the cursor, or "" when the corpus
// is empty.
func (s *StatisticsScreen) Selected() string {
	if s.cursor < 0 || s.cursor >= len(s.stats.Categories) {
		return ""
	}
	return s.stats.Categories[s.cursor]
}

func (s *StatisticsScreen) selectCategory() tea.Cmd {
	category := s.Selected()
	if category == "" {
		return nil
	}
	detail := newCategoryDetail(s.env, category)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *StatisticsScreen) View(width, height int) string {
	contentWidth := components.ContentWidth(width)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var top []string
	top = append(top,
		dim.Render("  "+s.env.T("statistics.total_questions", nil)+" ")+val.Render(fmt.Sprint(s.stats.TotalQuestions)),
		dim.Render("  "+s.env.T("statistics.total_categories", nil)+" ")+val.Render(fmt.Sprint(s.stats.TotalCategories)),
		"",
		s.renderSectionHeader(s.env.T("statistics.questions_by_category", nil), width),
	)

	bottom := []string{"", s.renderSectionHeader(s.env.T("statistics.questions_by_difficulty", nil), width)}
	for _, d := range s.stats.Difficulties {
		n := s.stats.QuestionsByDifficulty[d]
		bottom = append(bottom, fmt.Sprintf("    %s  %s",
			lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%-16s", s.env.DifficultyName(d))),
			dim.Render(s.env.T("statistics.questions_count", i18n.Params{"count": n})),
		))
	}

	rowsHeight := height - len(top) - len(bottom)
	if rowsHeight < 3 {
		rowsHeight = 3
	}
	s.adjustScroll(rowsHeight)

	lines := top
	end := min(s.scrollOffset+rowsHeight, len(s.stats.Categories))
	for i := s.scrollOffset; i < end; i++ {
		lines = append(lines, s.renderCategoryRow(i, contentWidth))
	}
	lines = append(lines, bottom...)

	return strings.Join(lines, "\n")
}

// adjustScroll keeps the cursor inside a viewport of height rows.
func (s *StatisticsScreen) adjustScroll(height int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *StatisticsScreen) renderSectionHeader(title string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		PaddingLeft(2).
		Render(strings.ToUpper(title))
}

func (s *StatisticsScreen) renderCategoryRow(i, width int) string {
	category := s.stats.Categories[i]
	n := s.stats.QuestionsByCategory[category]
	share := 0.0
	if s.stats.TotalQuestions > 0 {
		share = float64(n) / float64(s.stats.TotalQuestions)
	}

	name := s.env.CategoryName(category)
	nameWidth := 22
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	cursor := "  "
	if i == s.cursor {
		cursor = "▸ "
	}
	bar := components.ProgressBar{
		Label:   fmt.Sprintf("%-*s", nameWidth, name),
		Percent: share,
		Suffix:  s.env.T("statistics.questions_count", i18n.Params{"count": n}),
		Width:   width - 4,
	}
	line := "  " + cursor + bar.View()
	if i == s.cursor {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
	}
	return line
}
