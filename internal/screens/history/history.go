package history

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/catalog"
	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/store"
	"github.com/abhisek/vimquiz/internal/ui/layout"
	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// recentLimit caps how many results the screen lists.
const recentLimit = 50

type historyLoadedMsg struct {
	Results []store.Result
	Totals  store.Totals
	Err     error
}

type detailLoadedMsg struct {
	ID     string
	Result *store.Result
	Err    error
}

// HistoryScreen lists finished quizzes, newest first. Enter expands a row
// into the commands that were missed.
type HistoryScreen struct {
	env      *screen.Env
	results  []store.Result
	totals   store.Totals
	details  map[string]*store.Result
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. env.Results must be set.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		details:  make(map[string]*store.Result),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.env.Results
	return func() tea.Msg {
		ctx := context.Background()

		results, err := repo.Recent(ctx, recentLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		totals, err := repo.Totals(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Results: results, Totals: totals}
	}
}

func (s *HistoryScreen) Title() string {
	return s.env.T("history.title", nil)
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T("history.details", nil)},
		s.env.Hint("↑↓", "navigate"),
		s.env.Hint("Esc", "back"),
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.env.Log().Error("load history", zap.Error(msg.Err))
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
			s.totals = msg.Totals
		}
		s.loaded = true
		return s, nil

	case detailLoadedMsg:
		if msg.Err != nil {
			s.env.Log().Error("load result", zap.String("id", msg.ID), zap.Error(msg.Err))
			return s, nil
		}
		if msg.Result != nil {
			s.details[msg.ID] = msg.Result
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			return s, s.toggle()
		}
	}
	return s, nil
}

// toggle expands or collapses the selected row, fetching its wrong answers
// the first time it opens.
func (s *HistoryScreen) toggle() tea.Cmd {
	if s.selected >= len(s.results) {
		return nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]
	id := s.results[s.selected].ID
	if !s.expanded[s.selected] || s.details[id] != nil {
		return nil
	}
	repo := s.env.Results
	return func() tea.Msg {
		res, err := repo.Get(context.Background(), id)
		return detailLoadedMsg{ID: id, Result: res, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  …")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  " + s.env.T("history.empty", nil))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.totalsLine())))
	b.WriteString("\n\n")

	for i, res := range s.results {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		line := prefix + s.env.T("history.row", i18n.Params{
			"date":       res.CreatedAt.Local().Format("2006-01-02 15:04"),
			"score":      res.Score,
			"total":      res.Total,
			"percentage": res.Percentage,
			"category":   s.categoryLabel(res.Category),
		})

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderWrong(res.ID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) totalsLine() string {
	t := s.totals
	return s.env.T("history.totals", i18n.Params{
		"quizzes":   t.Quizzes,
		"correct":   t.Correct,
		"questions": t.Questions,
		"best":      t.BestPercentage,
	})
}

func (s *HistoryScreen) categoryLabel(category string) string {
	if category == "" || category == catalog.FilterAll {
		return s.env.T("quiz.all_categories", nil)
	}
	return s.env.CategoryName(category)
}

func (s *HistoryScreen) renderWrong(id string, width int) string {
	res := s.details[id]
	if res == nil {
		return ""
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if len(res.Wrong) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Render(s.env.T("messages.perfect_score", nil))) + "\n"
	}

	var b strings.Builder
	for _, w := range res.Wrong {
		line := "    " + s.env.T("messages.wrong_item", i18n.Params{
			"question":    w.Ordinal,
			"selected":    w.Selected,
			"correct":     w.Correct,
			"description": s.describe(w),
		})
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

// describe shows the stored description in the active language when the
// command is still in the catalog.
func (s *HistoryScreen) describe(w store.WrongAnswerData) string {
	if q, ok := s.env.Session.Catalog().FindByToken(w.Correct); ok {
		return q.Description
	}
	return w.Description
}
