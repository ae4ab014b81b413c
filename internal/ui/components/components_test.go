package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "empty", Disabled: true},
		{Label: "animals"},
		{Label: "gone", Disabled: true},
		{Label: "verbs"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("down at bottom = %d, want 3", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("after up = %d, want 1", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(key(tea.KeyEnter))
	if !ran {
		t.Error("expected action to run on enter")
	}
}

func TestMenu_View(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "animals", Detail: "12 words"}, {Label: "verbs"}})
	v := m.View()
	if !strings.Contains(v, "▸ animals") || !strings.Contains(v, "12 words") {
		t.Errorf("unexpected view:\n%s", v)
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	for _, pct := range []float64{-1, 0, 0.5, 1, 2} {
		v := NewProgressBar("", pct, true, 20).View()
		if v == "" {
			t.Errorf("empty view for %v", pct)
		}
	}
}

func TestTextInput_Reset(t *testing.T) {
	ti := NewTextInput("answer", 0)
	ti.Model.SetValue("feline")
	if ti.Value() != "feline" {
		t.Fatalf("Value = %q", ti.Value())
	}
	ti.Reset()
	if ti.Value() != "" {
		t.Errorf("Value after reset = %q", ti.Value())
	}
}
