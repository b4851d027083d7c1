package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/ui/components"
	"github.com/abhisek/vimquiz/internal/ui/layout"
	"github.com/abhisek/vimquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return s.renderQuitConfirm(width)
	}
	if s.empty {
		return layout.Centered("\n\n\n"+s.env.T("quiz.no_questions", nil), width,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true))
	}
	if s.prompt.Total == 0 {
		return layout.Centered("\n\n\n  ...", width, lipgloss.NewStyle().Foreground(theme.TextDim))
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the active question with its options and, once
// answered, the feedback.
func (s *QuizScreen) renderQuestion(width int) string {
	e := s.env
	p := s.prompt

	var b strings.Builder

	// Info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", e.CategoryName(p.Category), e.DifficultyName(string(p.Difficulty))))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(e.T("quiz.question_label", i18n.Params{"current": p.Ordinal, "total": p.Total}))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	answered := p.Ordinal - 1
	if s.outcome != nil {
		answered = p.Ordinal
	}
	bar := components.NewProgressBar("", float64(answered)/float64(p.Total), false, width-4)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	// Prompt and description.
	b.WriteString(layout.Centered(e.T("quiz.prompt", nil), width,
		lipgloss.NewStyle().Foreground(theme.TextDim)))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(p.Description, width,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if s.outcome != nil {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(s.notice, width, lipgloss.NewStyle().Foreground(theme.Accent)))
	}

	return b.String()
}

// renderFeedback renders the verdict for the last submission.
func (s *QuizScreen) renderFeedback(width int) string {
	out := s.outcome
	q := s.env.Session.Catalog().Localize(out.Question)
	params := i18n.Params{"command": out.Token, "description": q.Description}

	var b strings.Builder
	if out.Correct {
		b.WriteString(layout.Centered(s.env.T("messages.correct_answer", params), width, theme.Correct))
	} else {
		b.WriteString(layout.Centered(s.env.T("messages.wrong_answer", params), width, theme.Incorrect))
	}
	b.WriteString("\n")

	if q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render(q.Explanation)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func (s *QuizScreen) renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(layout.Centered(s.env.T("quiz.quit_confirm", nil), width,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true)))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered("[Y] "+s.env.T("hints.quit", nil), width,
		lipgloss.NewStyle().Foreground(theme.Error)))
	b.WriteString("\n")
	b.WriteString(layout.Centered("[N] "+s.env.T("hints.back", nil), width,
		lipgloss.NewStyle().Foreground(theme.Primary)))

	return b.String()
}
