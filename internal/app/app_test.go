package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vimquiz/internal/screen/screentest"
	"github.com/abhisek/vimquiz/internal/screens/home"
	"github.com/abhisek/vimquiz/internal/screens/quiz"
	"github.com/abhisek/vimquiz/internal/screens/welcome"
)

func TestNewAppModel_StartsAtWelcome(t *testing.T) {
	m := newAppModel(screentest.NewEnv(t, false), Options{})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("active = %T, want welcome", m.router.Active())
	}
}

func TestNewAppModel_SkipWelcome(t *testing.T) {
	m := newAppModel(screentest.NewEnv(t, false), Options{SkipWelcome: true})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("active = %T, want home", m.router.Active())
	}
}

func TestNewAppModel_StartQuiz(t *testing.T) {
	m := newAppModel(screentest.NewEnv(t, false), Options{StartQuiz: true})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if _, ok := m.router.Active().(*quiz.QuizScreen); !ok {
		t.Fatalf("active = %T, want quiz", m.router.Active())
	}
}

func TestStatus_ShowsLanguage(t *testing.T) {
	env := screentest.NewEnv(t, false)
	m := newAppModel(env, Options{SkipWelcome: true})

	if got := m.status(m.router.Active()); got != "EN" {
		t.Errorf("status = %q", got)
	}
	env.Text.SetActiveLanguage("it")
	if got := m.status(m.router.Active()); !strings.HasPrefix(got, "IT") {
		t.Errorf("status = %q", got)
	}
}

func TestFooterHints_EndWithQuit(t *testing.T) {
	m := newAppModel(screentest.NewEnv(t, false), Options{SkipWelcome: true})
	hints := m.footerHints(m.router.Active())
	if len(hints) == 0 || hints[len(hints)-1].Key != "Ctrl+C" {
		t.Errorf("hints = %+v", hints)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(screentest.NewEnv(t, false), Options{SkipWelcome: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if _, ok := screentest.Run(cmd).(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg on ctrl+c")
	}
}

func TestWindowSize(t *testing.T) {
	m := newAppModel(screentest.NewEnv(t, false), Options{SkipWelcome: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	am := updated.(AppModel)
	if am.width != 100 || am.height != 40 {
		t.Errorf("size = %dx%d", am.width, am.height)
	}
}
