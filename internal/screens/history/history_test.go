package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/store"
)

type fakeHistory struct {
	sessions    []store.SessionRecord
	answers     map[string][]store.AnswerRecord
	answerCalls int
	err         error
}

func (f *fakeHistory) Start(context.Context, int64, string, int) (string, error) { return "", nil }
func (f *fakeHistory) RecordAnswer(context.Context, store.AnswerRecord) error   { return nil }
func (f *fakeHistory) Finish(context.Context, string, session.Summary, bool) error {
	return nil
}

func (f *fakeHistory) Recent(_ context.Context, limit int) ([]store.SessionRecord, error) {
	return f.sessions, f.err
}

func (f *fakeHistory) Answers(_ context.Context, id string) ([]store.AnswerRecord, error) {
	f.answerCalls++
	return f.answers[id], nil
}

func testRepo() *fakeHistory {
	return &fakeHistory{
		sessions: []store.SessionRecord{
			{ID: "a", ListTitle: "animals", StartedAt: time.Now(), Completed: true,
				Summary: session.Summary{CorrectCount: 2, TotalAsked: 2, Accuracy: 1}},
			{ID: "b", ListTitle: "verbs", StartedAt: time.Now(),
				Summary: session.Summary{CorrectCount: 1, TotalAsked: 3, Accuracy: 1.0 / 3}},
		},
		answers: map[string][]store.AnswerRecord{
			"a": {
				{Prompt: "cat", Answer: "feline", Correct: true},
				{Prompt: "feline", Answer: "cat", Correct: true, Direction: session.DefinitionToTerm},
			},
		},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	s.Update(s.Init()())
}

func TestHistoryScreen_Loads(t *testing.T) {
	s := New(testRepo())
	if !strings.Contains(s.View(80, 24), "Loading") {
		t.Error("expected loading view before data arrives")
	}
	load(t, s)

	view := s.View(100, 24)
	for _, want := range []string{"animals", "verbs", "2/2 correct", "complete", "abandoned"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&fakeHistory{})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "No sessions yet") {
		t.Error("expected empty message")
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(&fakeHistory{err: errors.New("disk on fire")})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "disk on fire") {
		t.Error("expected error message")
	}
}

func TestHistoryScreen_ExpandLoadsAnswersOnce(t *testing.T) {
	repo := testRepo()
	s := New(repo)
	load(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected answers to load")
	}
	s.Update(cmd())
	if !strings.Contains(s.View(100, 24), "✓") {
		t.Error("expected answer marks after expanding")
	}

	// Collapse and expand again: answers are cached.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected cached answers")
	}
	if repo.answerCalls != 1 {
		t.Errorf("Answers called %d times, want 1", repo.answerCalls)
	}
}

func TestHistoryScreen_Navigation(t *testing.T) {
	s := New(testRepo())
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("feline", 10); got != "feline" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("hippopotamus", 6); got != "hippo…" {
		t.Errorf("truncate = %q", got)
	}
}
