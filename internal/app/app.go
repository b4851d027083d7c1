package app

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vimquiz/internal/router"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/screens/home"
	"github.com/abhisek/vimquiz/internal/screens/quiz"
	"github.com/abhisek/vimquiz/internal/screens/welcome"
	"github.com/abhisek/vimquiz/internal/ui/layout"
)

// Options control how the program starts.
type Options struct {
	// SkipWelcome opens the home screen directly.
	SkipWelcome bool
	// StartQuiz opens a quiz on top of the home screen. It implies
	// SkipWelcome.
	StartQuiz bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env      *screen.Env
	router   *router.Router
	initCmds []tea.Cmd
	width    int
	height   int
}

// newAppModel creates a new AppModel starting at the welcome splash, or at
// the home screen when SkipWelcome is set.
func newAppModel(env *screen.Env, opts Options) AppModel {
	homeFactory := func() screen.Screen { return home.New(env) }

	var first screen.Screen
	if opts.SkipWelcome || opts.StartQuiz {
		first = homeFactory()
	} else {
		first = welcome.New(env, homeFactory)
	}
	m := AppModel{
		env:      env,
		router:   router.New(first),
		initCmds: []tea.Cmd{first.Init()},
	}
	if opts.StartQuiz {
		m.initCmds = append(m.initCmds, m.router.Push(quiz.New(env)))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.initCmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc belongs to the screens: the quiz asks before leaving.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status returns the right side of the header: the active language and
// whatever the active screen reports.
func (m AppModel) status(active screen.Screen) string {
	parts := []string{strings.ToUpper(m.env.Text.ActiveLanguage())}
	if sp, ok := active.(screen.StatusProvider); ok {
		if s := sp.Status(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "  ")
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), m.env.Hint("Ctrl+C", "quit"))
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			m.env.Hint("Esc", "back"),
			m.env.Hint("Ctrl+C", "quit"),
		}
	}
	return []layout.KeyHint{
		m.env.Hint("↑↓", "navigate"),
		m.env.Hint("Enter", "select"),
		m.env.Hint("Ctrl+C", "quit"),
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	// The splash owns the whole terminal.
	if _, ok := active.(*welcome.WelcomeScreen); ok {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(active.Title(), m.status(active), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(env *screen.Env, opts Options) error {
	env.Log().Info("starting tui",
		zap.String("language", env.Text.ActiveLanguage()),
		zap.Bool("history", env.Results != nil))

	p := tea.NewProgram(newAppModel(env, opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
