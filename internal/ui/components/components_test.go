package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	m := NewMultiChoice([]string{"h", "j", "k", "l"})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(keyPress('j'))
	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
	if m.Value() != "" {
		t.Errorf("Value before submit = %q, want empty", m.Value())
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.Submitted || m.Value() != "j" {
		t.Errorf("after enter: submitted=%v value=%q", m.Submitted, m.Value())
	}

	// Input is ignored once submitted.
	m, _ = m.Update(keyPress('1'))
	if m.Value() != "j" {
		t.Errorf("value changed after submit: %q", m.Value())
	}
}

func TestMultiChoice_NumberKeys(t *testing.T) {
	m := NewMultiChoice([]string{"dd", "yy"})

	m, _ = m.Update(keyPress('4'))
	if m.Submitted {
		t.Error("out-of-range number key should not submit")
	}

	m, _ = m.Update(keyPress('2'))
	if !m.Submitted || m.Value() != "yy" {
		t.Errorf("submitted=%v value=%q", m.Submitted, m.Value())
	}
}

func TestMultiChoice_Reveal(t *testing.T) {
	m := NewMultiChoice([]string{"w", "b", "e"})
	m, _ = m.Update(keyPress('1'))
	m.Reveal("e")

	if m.Correct != 2 {
		t.Errorf("Correct = %d, want 2", m.Correct)
	}
	if m.IsCorrect() {
		t.Error("chose w, answer e: IsCorrect should be false")
	}
	view := m.View()
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Errorf("revealed view should mark both options:\n%s", view)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b", Action: func() tea.Cmd { pressed = "b"; return nil }},
		{Label: "c", Disabled: true},
		{Label: "d", Action: func() tea.Cmd { pressed = "d"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("Selected = %d, want 3", m.Selected)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != "d" {
		t.Errorf("pressed = %q, want d", pressed)
	}

	m.SetLabels([]string{"A", "B"})
	if m.Items[1].Label != "B" || m.Items[3].Label != "d" {
		t.Errorf("labels = %+v", m.Items)
	}
}

func TestButtonRow(t *testing.T) {
	pressed := ""
	r := NewButtonRow(
		NewButton("Restart", false, func() tea.Cmd { pressed = "restart"; return nil }),
		NewButton("Menu", false, func() tea.Cmd { pressed = "menu"; return nil }),
	)
	if !r.Buttons[0].Active || r.Buttons[1].Active {
		t.Fatal("first button should start active")
	}

	r, _ = r.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	r, _ = r.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if r.Active != 1 {
		t.Errorf("Active = %d, want 1", r.Active)
	}
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != "menu" {
		t.Errorf("pressed = %q, want menu", pressed)
	}
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("Editing", 0.5, true, 40)
	view := p.View()
	if !strings.Contains(view, "Editing") || !strings.Contains(view, "50%") {
		t.Errorf("view = %q", view)
	}

	p.Suffix = "7 questions"
	if !strings.Contains(p.View(), "7 questions") {
		t.Error("suffix should replace the percentage")
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	in := NewTextInput("", true, 3)
	for _, r := range "1x2" {
		in, _ = in.Update(keyPress(r))
	}
	if in.Value() != "12" {
		t.Fatalf("Value = %q, want 12", in.Value())
	}
	if n, err := in.NumericValue(); err != nil || n != 12 {
		t.Errorf("NumericValue = %d, %v", n, err)
	}

	in.Submit(false)
	if !strings.Contains(in.View(), "✗") {
		t.Errorf("rejected view = %q", in.View())
	}
	in, _ = in.Update(keyPress('3'))
	if strings.Contains(in.View(), "✗") {
		t.Error("typing should clear the validation mark")
	}
}
