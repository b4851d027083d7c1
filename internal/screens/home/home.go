package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/catalog"
	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/screens/history"
	"github.com/abhisek/vimquiz/internal/screens/language"
	"github.com/abhisek/vimquiz/internal/screens/placeholder"
	"github.com/abhisek/vimquiz/internal/screens/quiz"
	"github.com/abhisek/vimquiz/internal/screens/settings"
	"github.com/abhisek/vimquiz/internal/screens/statistics"
	"github.com/abhisek/vimquiz/internal/ui/components"
	"github.com/abhisek/vimquiz/internal/ui/layout"
)

// menuKeys are the translation keys of the menu items, in order.
var menuKeys = []string{
	"menu.start",
	"menu.settings",
	"menu.language",
	"menu.statistics",
	"menu.history",
	"menu.exit",
}

type lastResultMsg struct {
	Tier string
	Err  error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	env    *screen.Env
	menu   components.Menu
	mascot MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{Action: push(func() screen.Screen { return quiz.New(env) })},
		{Action: push(func() screen.Screen { return settings.New(env) })},
		{Action: push(func() screen.Screen { return language.New(env) })},
		{Action: push(func() screen.Screen { return statistics.New(env) })},
		{Action: push(func() screen.Screen {
			if env.Results == nil {
				return placeholder.New(env.T("history.title", nil), env.T("history.disabled", nil))
			}
			return history.New(env)
		})},
		{Action: func() tea.Cmd { return tea.Quit }},
	}

	h := &HomeScreen{env: env, menu: components.NewMenu(items)}
	h.relabel()
	return h
}

// relabel resolves the menu labels in the active language.
func (h *HomeScreen) relabel() {
	labels := make([]string, len(menuKeys))
	for i, k := range menuKeys {
		labels[i] = h.env.T(k, nil)
	}
	h.menu.SetLabels(labels)
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLastResult()
}

// loadLastResult fetches the most recent result to pick the mascot.
func (h *HomeScreen) loadLastResult() tea.Cmd {
	repo := h.env.Results
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		recent, err := repo.Recent(context.Background(), 1)
		if err != nil || len(recent) == 0 {
			return lastResultMsg{Err: err}
		}
		return lastResultMsg{Tier: recent[0].Tier}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lastResultMsg:
		if msg.Err != nil {
			h.env.Log().Warn("failed to load last result", zap.Error(msg.Err))
		}
		h.mascot = VariantFor(msg.Tier)
		return h, nil

	case router.ResumedMsg:
		h.relabel()
		return h, h.loadLastResult()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		h.env.Hint("↑↓", "navigate"),
		h.env.Hint("Enter", "select"),
	}
}

func (h *HomeScreen) View(width, height int) string {
	h.relabel()

	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 90

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.statsParts(), cw))

	labels := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		labels[i] = item.Label
	}
	sections = append(sections, renderMenu(labels, h.menu.Selected, cw, compact))

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

// statsParts describes the next run: category, difficulty and size.
func (h *HomeScreen) statsParts() []string {
	e := h.env
	st := e.Session.Settings()

	category := e.T("quiz.all_categories", nil)
	if st.Category != catalog.FilterAll {
		category = e.CategoryName(st.Category)
	}
	difficulty := e.T("quiz.all_difficulties", nil)
	if st.Difficulty != catalog.FilterAll {
		difficulty = e.DifficultyName(st.Difficulty)
	}
	return []string{
		category,
		difficulty,
		fmt.Sprintf("%s %d", e.T("quiz.questions_label", nil), st.Limit),
	}
}

func (h *HomeScreen) Title() string {
	return h.env.T("app.title", nil)
}
