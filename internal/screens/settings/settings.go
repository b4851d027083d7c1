package settings

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/catalog"
	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/ui/components"
	"github.com/abhisek/vimquiz/internal/ui/layout"
	"github.com/abhisek/vimquiz/internal/ui/theme"
)

const (
	fieldCategory = iota
	fieldDifficulty
	fieldLimit
	fieldCount
)

// SettingsScreen edits the filters and size of the next run.
type SettingsScreen struct {
	env          *screen.Env
	categories   []string // FilterAll first
	difficulties []string // FilterAll first
	category     int
	difficulty   int
	limit        components.TextInput
	focus        int
	notice       string
	noticeErr    bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen seeded with the session's settings.
func New(env *screen.Env) *SettingsScreen {
	cat := env.Session.Catalog()
	st := env.Session.Settings()

	s := &SettingsScreen{
		env:          env,
		categories:   append([]string{catalog.FilterAll}, cat.Categories()...),
		difficulties: []string{catalog.FilterAll},
		limit:        components.NewTextInput("", true, 3),
	}
	for _, d := range cat.Difficulties() {
		s.difficulties = append(s.difficulties, string(d))
	}
	s.category = max(indexOf(s.categories, st.Category), 0)
	s.difficulty = max(indexOf(s.difficulties, st.Difficulty), 0)
	s.limit.SetValue(strconv.Itoa(st.Limit))
	s.limit.Focus(false)
	return s
}

func indexOf(list []string, v string) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return s.env.T("settings.title", nil)
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		s.env.Hint("↑↓", "navigate"),
		s.env.Hint("←→", "change"),
		s.env.Hint("Enter", "save"),
		s.env.Hint("Esc", "back"),
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.focus == fieldLimit {
			var cmd tea.Cmd
			s.limit, cmd = s.limit.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k", "shift+tab":
		return s, s.moveFocus(-1)
	case "down", "j", "tab":
		return s, s.moveFocus(1)
	case "enter":
		s.save()
		return s, nil
	}

	switch s.focus {
	case fieldCategory:
		s.category = cycle(s.category, len(s.categories), kmsg.String())
	case fieldDifficulty:
		s.difficulty = cycle(s.difficulty, len(s.difficulties), kmsg.String())
	case fieldLimit:
		var cmd tea.Cmd
		s.limit, cmd = s.limit.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SettingsScreen) moveFocus(delta int) tea.Cmd {
	s.focus = (s.focus + delta + fieldCount) % fieldCount
	return s.limit.Focus(s.focus == fieldLimit)
}

func cycle(i, n int, key string) int {
	switch key {
	case "left", "h":
		return (i - 1 + n) % n
	case "right", "l", "space":
		return (i + 1) % n
	}
	return i
}

// save validates the limit and applies the settings to the session.
func (s *SettingsScreen) save() {
	lo, hi := s.env.Session.Limits()
	n, err := s.limit.NumericValue()
	if err != nil || n < lo || n > hi {
		s.limit.Submit(false)
		s.notice = s.env.T("settings.invalid_limit", i18n.Params{"min": lo, "max": hi})
		s.noticeErr = true
		return
	}

	st := s.env.Session.Configure(s.categories[s.category], s.difficulties[s.difficulty], n)
	s.limit.Submit(true)
	s.notice = s.env.T("settings.saved", nil)
	s.noticeErr = false
	s.env.Log().Info("settings updated",
		zap.String("category", st.Category),
		zap.String("difficulty", st.Difficulty),
		zap.Int("limit", st.Limit))
}

func (s *SettingsScreen) View(width, height int) string {
	e := s.env
	lo, hi := e.Session.Limits()

	category := e.T("quiz.all_categories", nil)
	if c := s.categories[s.category]; c != catalog.FilterAll {
		category = e.CategoryName(c)
	}
	difficulty := e.T("quiz.all_difficulties", nil)
	if d := s.difficulties[s.difficulty]; d != catalog.FilterAll {
		difficulty = e.DifficultyName(d)
	}

	rows := []struct{ label, value string }{
		{e.T("settings.category", nil), "◂ " + category + " ▸"},
		{e.T("settings.difficulty", nil), "◂ " + difficulty + " ▸"},
		{e.T("settings.limit_label", i18n.Params{"min": lo, "max": hi}), s.limit.View()},
	}

	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r.label))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(s.Title(), width, theme.Title))
	b.WriteString("\n\n")

	var block strings.Builder
	for i, r := range rows {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(labelW)
		valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if i == s.focus {
			prefix = "▸ "
			labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
			valueStyle = valueStyle.Bold(true)
		}
		fmt.Fprintf(&block, "%s%s   %s\n\n", prefix, labelStyle.Render(r.label), valueStyle.Render(r.value))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block.String()))

	if s.notice != "" {
		style := theme.Correct
		if s.noticeErr {
			style = theme.Incorrect
		}
		b.WriteString(layout.Centered(s.notice, width, style))
	}
	return b.String()
}
