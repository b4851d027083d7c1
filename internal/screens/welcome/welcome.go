package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// The splash mascot is an editor window whose command line gets typed
// out during the second phase.
const editorTop = `┌──────────────────────┐
│ ~                    │
│ ~                    │
│ ~                    │
├──────────────────────┤`

const editorBottom = `└──────────────────────┘`

const typedCommand = ":q!"

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	env          *screen.Env
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(env *screen.Env, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		env:         env,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// commandLine returns the editor's bottom line: the command typed so far
// followed by a blinking cursor.
func (w *WelcomeScreen) commandLine() string {
	typed := ""
	if w.elapsed >= phase1End {
		n := int((w.elapsed - phase1End) / (2 * tickInterval))
		typed = typedCommand[:min(n+1, len(typedCommand))]
	}
	cursor := "█"
	if w.tickCount%6 >= 3 {
		cursor = " "
	}
	return "│ " + typed + cursor + strings.Repeat(" ", 20-len(typed)) + "│"
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	editorStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	sections = append(sections, editorStyle.Render(editorTop+"\n"+w.commandLine()+"\n"+editorBottom))

	// Phase 3+: banner + tagline + hint
	if w.elapsed >= phase2End {
		sections = append(sections, RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(w.env.T("app.subtitle", nil))
		sections = append(sections, tagline, "")

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(w.env.T("app.continue", nil))
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
