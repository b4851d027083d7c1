package language

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/ui/components"
	"github.com/abhisek/vimquiz/internal/ui/layout"
	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// LanguageScreen switches the active interface language.
type LanguageScreen struct {
	env    *screen.Env
	codes  []string
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*LanguageScreen)(nil)
var _ screen.KeyHintProvider = (*LanguageScreen)(nil)

// New creates a LanguageScreen listing every supported language.
func New(env *screen.Env) *LanguageScreen {
	s := &LanguageScreen{env: env, codes: env.Text.SupportedLanguages()}

	items := make([]components.MenuItem, len(s.codes))
	for i, code := range s.codes {
		items[i] = components.MenuItem{
			Label:  env.Text.DisplayName(code),
			Action: func() tea.Cmd { s.choose(code); return nil },
		}
	}
	s.menu = components.NewMenu(items)
	for i, code := range s.codes {
		if code == env.Text.ActiveLanguage() {
			s.menu.Selected = i
		}
	}
	return s
}

func (s *LanguageScreen) choose(code string) {
	if !s.env.Text.SetActiveLanguage(code) {
		return
	}
	name := s.env.Text.DisplayName(code)
	s.notice = s.env.T("language.changed", i18n.Params{"name": name})
	s.env.Log().Info("language changed", zap.String("language", code))
}

func (s *LanguageScreen) Init() tea.Cmd {
	return nil
}

func (s *LanguageScreen) Title() string {
	return s.env.T("language.title", nil)
}

func (s *LanguageScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		s.env.Hint("↑↓", "navigate"),
		s.env.Hint("Enter", "select"),
		s.env.Hint("Esc", "back"),
	}
}

func (s *LanguageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LanguageScreen) View(width, height int) string {
	e := s.env
	active := e.Text.ActiveLanguage()

	labels := make([]string, len(s.codes))
	for i, code := range s.codes {
		labels[i] = e.Text.DisplayName(code)
		if code == active {
			labels[i] += "  ✓"
		}
	}
	s.menu.SetLabels(labels)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(s.Title(), width, theme.Title))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(
		e.T("language.current", i18n.Params{"name": e.Text.DisplayName(active)}), width,
		lipgloss.NewStyle().Foreground(theme.TextDim)))
	b.WriteString("\n")
	if sys := e.Text.SystemLanguage(); sys != "" {
		b.WriteString(layout.Centered(
			e.T("language.system", i18n.Params{"name": e.Text.DisplayName(sys)}), width,
			lipgloss.NewStyle().Foreground(theme.TextDim)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(s.notice, width, theme.Correct))
	}
	return b.String()
}
