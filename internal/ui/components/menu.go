package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Disabled items are drawn dimmed and
// skipped by the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list moved with j/k or the arrows.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu places the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if next, ok := m.step(-1, 1); ok {
		m.Selected = next
	}
	return m
}

// step walks from index from in direction dir to the next enabled item.
func (m Menu) step(from, dir int) (int, bool) {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i, true
		}
	}
	return from, false
}

// Init implements the component contract.
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and runs the selected action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected, _ = m.step(m.Selected, -1)
	case "down", "j":
		m.Selected, _ = m.step(m.Selected, 1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if it := m.Items[m.Selected]; !it.Disabled && it.Action != nil {
			return m, it.Action()
		}
	}
	return m, nil
}

// SetLabels relabels the items in order, e.g. after a language change.
func (m *Menu) SetLabels(labels []string) {
	for i := range min(len(labels), len(m.Items)) {
		m.Items[i].Label = labels[i]
	}
}

// View renders one line per item with a cursor on the selected one.
func (m Menu) View() string {
	var (
		cursor   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		normal   = lipgloss.NewStyle().Foreground(theme.Text)
		disabled = lipgloss.NewStyle().Foreground(theme.TextDim)
	)

	var b strings.Builder
	for i, it := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(cursor.Render("  ▸ " + it.Label))
		case it.Disabled:
			b.WriteString(disabled.Render("    " + it.Label))
		default:
			b.WriteString(normal.Render("    " + it.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
