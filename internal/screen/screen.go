package screen

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/session"
	"github.com/abhisek/vimquiz/internal/store"
	"github.com/abhisek/vimquiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Env carries the collaborators every screen shares.
type Env struct {
	Session *session.Session
	Text    *i18n.Store
	Results store.ResultRepo // nil disables history
	Logger  *zap.Logger
}

// T resolves a translation key in the active language.
func (e *Env) T(key string, params i18n.Params) string {
	return e.Text.Resolve(key, params)
}

// Hint builds a footer hint whose description is a hints.* key.
func (e *Env) Hint(key, hint string) layout.KeyHint {
	return layout.KeyHint{Key: key, Description: e.T("hints."+hint, nil)}
}

// CategoryName returns the translated display name of a category, or the
// label itself when no translation exists.
func (e *Env) CategoryName(category string) string {
	ns := e.Session.Catalog().Namespace(category)
	key := "categories." + ns
	if name := e.Text.ResolveQuestion(key, nil); name != "questions."+key {
		return name
	}
	return category
}

// DifficultyName returns the translated display name of a difficulty.
func (e *Env) DifficultyName(d string) string {
	key := "difficulties." + d
	if name := e.Text.ResolveQuestion(key, nil); name != "questions."+key {
		return name
	}
	return d
}

// Log returns the logger, never nil.
func (e *Env) Log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// StatusProvider is an optional interface for screens that show a status
// (such as the running score) on the right of the header.
type StatusProvider interface {
	Status() string
}
