package language

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen/screentest"
)

func TestLanguageScreen_ListsSupported(t *testing.T) {
	env := screentest.NewEnv(t, false)
	s := New(env)

	if len(s.codes) != 2 || s.codes[0] != "en" || s.codes[1] != "it" {
		t.Fatalf("codes = %v", s.codes)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "English") || !strings.Contains(view, "Italiano") {
		t.Errorf("view missing language names:\n%s", view)
	}
}

func TestLanguageScreen_Switch(t *testing.T) {
	env := screentest.NewEnv(t, false)
	s := New(env)

	s.Update(screentest.Special(tea.KeyDown))
	s.Update(screentest.Special(tea.KeyEnter))

	if env.Text.ActiveLanguage() != "it" {
		t.Fatalf("active = %q, want it", env.Text.ActiveLanguage())
	}
	if got := env.T("menu.start", nil); got != "Inizia quiz" {
		t.Errorf("menu.start = %q", got)
	}
	// Missing Italian keys fall back to English.
	if got := env.T("menu.settings", nil); got != "Settings" {
		t.Errorf("menu.settings = %q", got)
	}
	if s.notice == "" {
		t.Error("expected a confirmation notice")
	}
}

func TestLanguageScreen_Esc(t *testing.T) {
	env := screentest.NewEnv(t, false)
	_, cmd := New(env).Update(screentest.Special(tea.KeyEscape))
	if _, ok := screentest.Run(cmd).(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}
