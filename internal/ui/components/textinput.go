package components

import (
	"strconv"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vimquiz/internal/ui/theme"
)

// validation is the mark drawn after a submitted input.
type validation int

const (
	unchecked validation = iota
	accepted
	rejected
)

// TextInput is a bubbles textinput that can be limited to digits and
// shows a ✓ or ✗ once submitted.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	state       validation
}

// NewTextInput returns a focused input. maxWidth caps the number of
// characters when positive.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.CharLimit = max(maxWidth, 0)
	m.Focus()
	return TextInput{Model: m, NumericOnly: numericOnly, MaxWidth: maxWidth}
}

// Init starts the cursor blink.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Update forwards msg to the model. Typing clears the validation mark;
// printable non-digits are swallowed in numeric mode.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && t.NumericOnly && k.Text != "" && !digitsOnly(k.Text) {
		return t, nil
	}
	t.state = unchecked
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input and its validation mark.
func (t TextInput) View() string {
	switch t.state {
	case accepted:
		return t.Model.View() + " " + theme.Correct.Render("✓")
	case rejected:
		return t.Model.View() + " " + theme.Incorrect.Render("✗")
	}
	return t.Model.View()
}

// Value is the current text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the text.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// NumericValue parses the text as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit records whether the submitted value was accepted.
func (t *TextInput) Submit(valid bool) {
	t.state = rejected
	if valid {
		t.state = accepted
	}
}

// Focus gives or takes keyboard focus.
func (t *TextInput) Focus(on bool) tea.Cmd {
	if !on {
		t.Model.Blur()
		return nil
	}
	return t.Model.Focus()
}
