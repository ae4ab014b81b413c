package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{CorrectCount: 4, TotalAsked: 5, Accuracy: 0.8}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New("animals", testSummary(), 2)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New("animals", testSummary(), 2)
	view := s.View(80, 24)
	for _, want := range []string{"Session complete!", "animals", "Asked: 5", "Correct: 4", "80%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New("animals", testSummary(), 2)
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Fatalf("expected a command for key %v", code)
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Errorf("expected PopToRootMsg for key %v", code)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New("animals", testSummary(), 2)
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		sum  session.Summary
		want string
	}{
		{session.Summary{CorrectCount: 2, TotalAsked: 2, Accuracy: 1}, "Flawless"},
		{session.Summary{CorrectCount: 4, TotalAsked: 5, Accuracy: 0.8}, "Strong"},
		{session.Summary{CorrectCount: 1, TotalAsked: 2, Accuracy: 0.5}, "Getting there"},
		{session.Summary{CorrectCount: 1, TotalAsked: 5, Accuracy: 0.2}, "Tough"},
	}
	for _, tt := range tests {
		if got := verdict(tt.sum); !strings.HasPrefix(got, tt.want) {
			t.Errorf("verdict(%+v) = %q, want prefix %q", tt.sum, got, tt.want)
		}
	}
}
