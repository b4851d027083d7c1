package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector over command tokens. Options
// are chosen with the arrows, j/k or the number keys 1-4.
type MultiChoice struct {
	Options   []string
	Selected  int
	Submitted bool
	Chosen    int
	Correct   int // -1 until revealed
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. A number key selects
// and submits in one step.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted || len(m.Options) == 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.Chosen = m.Selected
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(m.Options) {
			m.Selected = i
			m.Submitted = true
			m.Chosen = i
		}
	}

	return m, nil
}

// Value returns the chosen option, or "" before submission.
func (m MultiChoice) Value() string {
	if !m.Submitted || m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}

// Reveal marks the option equal to correct.
func (m *MultiChoice) Reveal(correct string) {
	m.Correct = -1
	for i, opt := range m.Options {
		if opt == correct {
			m.Correct = i
			break
		}
	}
}

// View renders the options.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if m.Correct >= 0 {
			switch i {
			case m.Correct:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line+"  ✓") + "\n"
			case m.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line+"  ✗") + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		if i == m.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// IsCorrect returns true if the chosen option was revealed as correct.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Correct >= 0 && m.Chosen == m.Correct
}
