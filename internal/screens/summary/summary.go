package summary

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/session"
	"github.com/abhisek/vimquiz/internal/store"
	"github.com/abhisek/vimquiz/internal/ui/components"
	"github.com/abhisek/vimquiz/internal/ui/layout"
	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// resultSavedMsg reports the outcome of persisting the run.
type resultSavedMsg struct {
	ID  string
	Err error
}

// SummaryScreen displays the result of a finished run.
type SummaryScreen struct {
	env     *screen.Env
	restart func() screen.Screen
	summary session.Summary
	err     error
	saved   string
	buttons components.ButtonRow
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the session's completed run. restart
// builds the screen that replaces this one when the user plays again.
func New(env *screen.Env, restart func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{env: env, restart: restart}
	s.summary, s.err = env.Session.FinalSummary()
	s.buttons = components.NewButtonRow(
		components.NewButton(env.T("quiz.restart_button", nil), false, s.playAgain),
		components.NewButton(env.T("hints.menu", nil), false, home),
	)
	return s
}

func home() tea.Cmd {
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *SummaryScreen) playAgain() tea.Cmd {
	if s.restart == nil {
		return home()
	}
	next := s.restart()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// Init stores the run in the result history when one is configured.
func (s *SummaryScreen) Init() tea.Cmd {
	if s.err != nil || s.env.Results == nil {
		return nil
	}
	res := s.result()
	repo := s.env.Results
	return func() tea.Msg {
		err := repo.Save(context.Background(), res)
		return resultSavedMsg{ID: res.ID, Err: err}
	}
}

func (s *SummaryScreen) result() *store.Result {
	st := s.env.Session.Settings()
	res := &store.Result{
		Language:   s.env.Text.ActiveLanguage(),
		Category:   st.Category,
		Difficulty: st.Difficulty,
		Score:      s.summary.Score,
		Total:      s.summary.Total,
		Percentage: s.summary.Percentage,
		Tier:       string(s.summary.Tier),
	}
	for _, w := range s.summary.Wrong {
		res.Wrong = append(res.Wrong, store.WrongAnswerData{
			Ordinal:     w.Ordinal,
			Correct:     w.Correct,
			Selected:    w.Selected,
			Description: w.Description,
			Category:    w.Category,
			Difficulty:  w.Difficulty,
		})
	}
	return res
}

func (s *SummaryScreen) Title() string {
	return s.env.T("messages.quiz_completed", nil)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		s.env.Hint("←→", "navigate"),
		s.env.Hint("Enter", "select"),
		s.env.Hint("Esc", "menu"),
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultSavedMsg:
		if msg.Err != nil {
			s.env.Log().Error("failed to save quiz result", zap.Error(msg.Err))
			return s, nil
		}
		s.saved = msg.ID
		s.env.Log().Info("quiz result saved",
			zap.String("id", msg.ID),
			zap.Int("score", s.summary.Score),
			zap.Int("total", s.summary.Total))
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, home()
		case "r", "R":
			return s, s.playAgain()
		}
		var cmd tea.Cmd
		s.buttons, cmd = s.buttons.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.err != nil {
		return layout.Centered("\n\n"+s.err.Error(), width, lipgloss.NewStyle().Foreground(theme.Error))
	}
	e := s.env
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(e.T("messages.quiz_completed", nil), width, theme.Title))
	b.WriteString("\n\n")

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	statsLine := dim.Render(e.T("messages.final_score", nil)) + " " +
		val.Render(fmt.Sprintf("%d/%d", sum.Score, sum.Total)) + "        " +
		dim.Render(e.T("messages.percentage", nil)) + " " +
		val.Render(fmt.Sprintf("%.1f%%", sum.Percentage))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, statsLine))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(e.T(sum.Tier.MessageKey(), nil), width,
		lipgloss.NewStyle().Foreground(tierColor(sum.Tier)).Bold(true)))
	b.WriteString("\n\n")

	if len(sum.Wrong) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(e.T("messages.wrong_answers", nil))))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")

		for _, w := range sum.Wrong {
			line := e.T("messages.wrong_item", i18n.Params{
				"question":    w.Ordinal,
				"selected":    w.Selected,
				"correct":     w.Correct,
				"description": w.Description,
			})
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-8, 70)).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.buttons.View()))
	return b.String()
}

func tierColor(t session.Tier) color.Color {
	switch t {
	case session.TierPerfect:
		return theme.Accent
	case session.TierExcellent:
		return theme.Success
	case session.TierGood:
		return theme.Secondary
	default:
		return theme.Error
	}
}
