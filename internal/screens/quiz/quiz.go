package quiz

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/screens/summary"
	"github.com/abhisek/vimquiz/internal/session"
	"github.com/abhisek/vimquiz/internal/ui/components"
	"github.com/abhisek/vimquiz/internal/ui/layout"
)

// QuizScreen implements screen.Screen for an active quiz run.
type QuizScreen struct {
	env         *screen.Env
	prompt      session.Prompt
	choice      components.MultiChoice
	outcome     *session.Outcome
	confirmQuit bool
	empty       bool
	notice      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. The run starts on Init with the session's
// current settings.
func New(env *screen.Env) *QuizScreen {
	return &QuizScreen{env: env}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.env.Session.Start()
	st := s.env.Session.Settings()
	s.env.Log().Info("quiz started",
		zap.String("category", st.Category),
		zap.String("difficulty", st.Difficulty),
		zap.Int("questions", s.env.Session.Total()),
		zap.String("language", s.env.Text.ActiveLanguage()))
	return func() tea.Msg { return quizStartedMsg{} }
}

func (s *QuizScreen) Title() string {
	return s.env.T("app.title", nil)
}

func (s *QuizScreen) Status() string {
	if s.empty {
		return ""
	}
	return s.env.T("quiz.score_label", i18n.Params{"score": s.env.Session.Score()})
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	e := s.env
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{{Key: "Y", Description: e.T("hints.quit", nil)}, e.Hint("N", "back")}
	case s.empty:
		return []layout.KeyHint{e.Hint("Esc", "back")}
	case s.outcome != nil:
		return []layout.KeyHint{
			e.Hint("Enter", "next"),
			e.Hint("S", "shuffle"),
			e.Hint("R", "restart"),
			e.Hint("Esc", "quit"),
		}
	}
	return []layout.KeyHint{
		e.Hint("1-4", "select"),
		e.Hint("↑↓", "navigate"),
		e.Hint("Enter", "answer"),
		e.Hint("S", "shuffle"),
		e.Hint("R", "restart"),
		e.Hint("Esc", "quit"),
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizStartedMsg:
		return s, s.load()

	case quizEndMsg:
		return s.handleEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// load shows the active question, or ends the run when none is left.
func (s *QuizScreen) load() tea.Cmd {
	s.outcome = nil
	s.notice = ""

	p, err := s.env.Session.CurrentQuestion()
	if err != nil {
		if s.env.Session.Phase() == session.PhaseCompleted {
			if s.env.Session.Total() == 0 {
				s.empty = true
				return nil
			}
			return func() tea.Msg { return quizEndMsg{} }
		}
		s.notice = err.Error()
		return nil
	}
	s.empty = false
	s.prompt = p
	s.choice = components.NewMultiChoice(p.Options)
	return nil
}

func (s *QuizScreen) handleEnd() (screen.Screen, tea.Cmd) {
	env := s.env
	restart := func() screen.Screen { return New(env) }
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(env, restart)}
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.empty {
		if key == "esc" || key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "s", "S":
		s.env.Session.Reshuffle()
		return s, s.load()
	case "r", "R":
		s.env.Session.Start()
		return s, s.load()
	}

	if s.outcome != nil {
		switch key {
		case "enter", "space", "n", "right", "l":
			return s.advance()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		return s.submit()
	}
	return s, cmd
}

// submit scores the chosen option and reveals the answer.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	out, err := s.env.Session.SubmitAnswer(s.choice.Value())
	if errors.Is(err, session.ErrNoSelection) {
		s.choice = components.NewMultiChoice(s.prompt.Options)
		s.notice = s.env.T("messages.select_answer", nil)
		return s, nil
	}
	if err != nil {
		s.notice = err.Error()
		return s, nil
	}

	s.outcome = &out
	s.notice = ""
	s.choice.Reveal(out.Token)
	s.env.Log().Debug("answer submitted",
		zap.String("selected", out.Selected),
		zap.String("correct", out.Token),
		zap.Bool("is_correct", out.Correct))
	return s, nil
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.env.Session.Advance(); err != nil {
		s.notice = err.Error()
		return s, nil
	}
	return s, s.load()
}
