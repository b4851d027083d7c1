package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow is a horizontal group of buttons with one active at a time.
type ButtonRow struct {
	Buttons []Button
	Active  int
}

// NewButtonRow creates a row with the first button active.
func NewButtonRow(buttons ...Button) ButtonRow {
	r := ButtonRow{Buttons: buttons}
	r.sync()
	return r
}

func (r *ButtonRow) sync() {
	for i := range r.Buttons {
		r.Buttons[i].Active = i == r.Active
	}
}

// Update moves focus with left/right (h/l, tab) and presses the active
// button on enter.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(r.Buttons) == 0 {
		return r, nil
	}
	switch kmsg.String() {
	case "left", "h", "shift+tab":
		if r.Active > 0 {
			r.Active--
		}
	case "right", "l", "tab":
		if r.Active < len(r.Buttons)-1 {
			r.Active++
		}
	case "enter":
		var cmd tea.Cmd
		r.Buttons[r.Active], cmd = r.Buttons[r.Active].Update(msg)
		return r, cmd
	}
	r.sync()
	return r, nil
}

// View renders the buttons side by side.
func (r ButtonRow) View() string {
	parts := make([]string, len(r.Buttons))
	for i, b := range r.Buttons {
		parts[i] = b.View()
	}
	return strings.Join(parts, "  ")
}
