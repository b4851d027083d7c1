package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/screen/screentest"
	"github.com/abhisek/vimquiz/internal/screens/summary"
	"github.com/abhisek/vimquiz/internal/session"
)

func startedScreen(t *testing.T, category string, limit int) (*QuizScreen, *screen.Env) {
	t.Helper()
	env := screentest.NewEnv(t, false)
	env.Session.Configure(category, "", limit)
	s := New(env)
	msg := screentest.Run(s.Init())
	s.Update(msg)
	return s, env
}

// pressOption presses the number key of the option equal to token.
func pressOption(t *testing.T, s *QuizScreen, token string) tea.Cmd {
	t.Helper()
	for i, o := range s.prompt.Options {
		if o == token {
			_, cmd := s.Update(screentest.Key(rune('1' + i)))
			return cmd
		}
	}
	t.Fatalf("token %q not among options %v", token, s.prompt.Options)
	return nil
}

func TestQuizScreen_StartsRun(t *testing.T) {
	s, env := startedScreen(t, "Basic Movement", 3)

	if env.Session.Phase() != session.PhaseInProgress {
		t.Fatalf("phase = %v, want in progress", env.Session.Phase())
	}
	if s.prompt.Ordinal != 1 || s.prompt.Total != 3 {
		t.Errorf("prompt = %d of %d", s.prompt.Ordinal, s.prompt.Total)
	}
	if len(s.prompt.Options) != 4 {
		t.Errorf("options = %v", s.prompt.Options)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Question 1 of 3") || !strings.Contains(view, "Which command does this?") {
		t.Errorf("view:\n%s", view)
	}
}

func TestQuizScreen_CorrectAnswer(t *testing.T) {
	s, env := startedScreen(t, "Basic Movement", 3)

	pressOption(t, s, s.prompt.Command)
	if s.outcome == nil || !s.outcome.Correct {
		t.Fatal("expected a correct outcome")
	}
	if env.Session.Score() != 1 {
		t.Errorf("score = %d, want 1", env.Session.Score())
	}
	if !strings.Contains(s.View(80, 24), "Correct!") {
		t.Error("expected correct feedback in view")
	}
	if s.Status() != "Score: 1" {
		t.Errorf("Status = %q", s.Status())
	}

	// Further number keys are ignored until Next.
	s.Update(screentest.Key('1'))
	if env.Session.Index() != 0 {
		t.Error("answer keys must not advance the run")
	}

	s.Update(screentest.Special(tea.KeyEnter))
	if s.outcome != nil || s.prompt.Ordinal != 2 {
		t.Errorf("expected question 2, got %d (outcome %v)", s.prompt.Ordinal, s.outcome)
	}
}

func TestQuizScreen_WrongAnswer(t *testing.T) {
	s, env := startedScreen(t, "Basic Movement", 3)

	var wrong string
	for _, o := range s.prompt.Options {
		if o != s.prompt.Command {
			wrong = o
			break
		}
	}
	pressOption(t, s, wrong)

	if s.outcome == nil || s.outcome.Correct {
		t.Fatal("expected an incorrect outcome")
	}
	if len(env.Session.WrongAnswers()) != 1 {
		t.Errorf("wrong answers = %v", env.Session.WrongAnswers())
	}
	if !strings.Contains(s.View(80, 24), "Wrong!") {
		t.Error("expected wrong-answer feedback in view")
	}
}

func TestQuizScreen_ArrowsAndEnter(t *testing.T) {
	s, _ := startedScreen(t, "Basic Movement", 3)

	s.Update(screentest.Special(tea.KeyDown))
	if s.choice.Selected != 1 {
		t.Errorf("Selected = %d, want 1", s.choice.Selected)
	}
	s.Update(screentest.Special(tea.KeyEnter))
	if s.outcome == nil {
		t.Fatal("Enter should submit the highlighted option")
	}
	if s.outcome.Selected != s.prompt.Options[1] {
		t.Errorf("selected = %q, want %q", s.outcome.Selected, s.prompt.Options[1])
	}
}

func TestQuizScreen_CompletesToSummary(t *testing.T) {
	s, env := startedScreen(t, "Basic Movement", 2)

	var cmd tea.Cmd
	for i := 0; i < 2; i++ {
		pressOption(t, s, s.prompt.Command)
		_, cmd = s.Update(screentest.Special(tea.KeyEnter))
	}
	if env.Session.Phase() != session.PhaseCompleted {
		t.Fatalf("phase = %v, want completed", env.Session.Phase())
	}

	msg := screentest.Run(cmd)
	if _, ok := msg.(quizEndMsg); !ok {
		t.Fatalf("expected quizEndMsg, got %T", msg)
	}
	_, cmd = s.Update(msg)
	replace, ok := screentest.Run(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("replacement = %T, want summary screen", replace.Screen)
	}
}

func TestQuizScreen_ReshuffleAndRestart(t *testing.T) {
	s, env := startedScreen(t, "Basic Movement", 3)

	pressOption(t, s, s.prompt.Command)
	s.Update(screentest.Special(tea.KeyEnter))

	s.Update(screentest.Key('s'))
	if env.Session.Index() != 0 || env.Session.Score() != 0 {
		t.Errorf("after shuffle: index=%d score=%d", env.Session.Index(), env.Session.Score())
	}
	if env.Session.Total() != 3 {
		t.Errorf("shuffle changed the run size: %d", env.Session.Total())
	}

	pressOption(t, s, s.prompt.Command)
	s.Update(screentest.Key('r'))
	if s.outcome != nil || env.Session.Score() != 0 || s.prompt.Ordinal != 1 {
		t.Error("restart should begin a fresh run")
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s, _ := startedScreen(t, "", 5)

	s.Update(screentest.Special(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	s.Update(screentest.Key('n'))
	if s.confirmQuit {
		t.Fatal("expected confirmation to be dismissed")
	}

	s.Update(screentest.Special(tea.KeyEscape))
	_, cmd := s.Update(screentest.Key('y'))
	if _, ok := screentest.Run(cmd).(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirming")
	}
}

func TestQuizScreen_EmptyPool(t *testing.T) {
	s, _ := startedScreen(t, "Macros", 5)

	if !s.empty {
		t.Fatal("expected empty state for a filter with no questions")
	}
	if !strings.Contains(s.View(80, 24), "No questions match.") {
		t.Error("expected no-questions message")
	}
	_, cmd := s.Update(screentest.Special(tea.KeyEscape))
	if _, ok := screentest.Run(cmd).(router.PopScreenMsg); !ok {
		t.Error("Esc should leave the empty quiz")
	}
}

func TestQuizScreen_LanguageAffectsDescription(t *testing.T) {
	env := screentest.NewEnv(t, false)
	env.Session.Configure("Basic Movement", "", 4)
	s := New(env)
	s.Update(screentest.Run(s.Init()))

	// Walk to the question for "h".
	for s.prompt.Command != "h" {
		pressOption(t, s, s.prompt.Command)
		s.Update(screentest.Special(tea.KeyEnter))
	}
	if s.prompt.Description != "Move left" {
		t.Fatalf("en description = %q", s.prompt.Description)
	}

	env.Text.SetActiveLanguage("it")
	s.load()
	if s.prompt.Description != "Sposta a sinistra" {
		t.Errorf("it description = %q", s.prompt.Description)
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s, _ := startedScreen(t, "", 5)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
