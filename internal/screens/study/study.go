// Package study is the interactive quiz screen: one prompt at a time, an
// answer box, and the accept-anyway choice after a mismatch.
package study

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/summary"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/wordlist"
)

// StudyScreen implements screen.Screen for an active session.
type StudyScreen struct {
	list     *wordlist.List
	history  store.HistoryRepo
	log      logrus.FieldLogger
	sess     *session.Session
	recorder *store.Recorder

	input       components.TextInput
	started     bool
	pending     *session.Outcome // mismatch waiting for Enter or I
	last        *session.Outcome // previous resolved answer, shown once
	quitConfirm bool
	leaving     bool // Esc pressed before the history entry was opened
	errMsg      string
}

var (
	_ screen.Screen          = (*StudyScreen)(nil)
	_ screen.KeyHintProvider = (*StudyScreen)(nil)
	_ screen.StatusProvider  = (*StudyScreen)(nil)
)

// New creates a study screen over the list's study set. history may be nil,
// in which case nothing is recorded.
func New(list *wordlist.List, history store.HistoryRepo, log logrus.FieldLogger, opts ...session.Option) *StudyScreen {
	s := &StudyScreen{
		list:    list,
		history: history,
		log:     log,
		input:   components.NewTextInput("Type your answer...", 0),
	}
	opts = append(opts, session.WithObserver(s.observe))
	s.sess = session.New(list.StudyItems(), opts...)
	return s
}

func (s *StudyScreen) observe(ev session.Event) {
	if s.recorder != nil {
		s.recorder.Observe(ev)
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return tea.Batch(s.openHistory(), s.input.Init())
}

func (s *StudyScreen) Title() string {
	return s.list.Title
}

func (s *StudyScreen) Status() string {
	if !s.started {
		return ""
	}
	p := s.sess.Progress()
	return pluralize(p.Remaining, "item") + " left"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.pending != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Mark wrong"},
			{Key: "I", Description: "I was right"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.started && s.pending == nil && !s.quitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// openHistory opens the history entry off the UI goroutine.
func (s *StudyScreen) openHistory() tea.Cmd {
	list, history, log := s.list, s.history, s.log
	count := len(list.StudyWords())
	if history == nil || count == 0 {
		return func() tea.Msg { return startedMsg{} }
	}
	return func() tea.Msg {
		rec, err := store.StartRecording(context.Background(), history, log, list.ID, list.Title, count)
		return startedMsg{Recorder: rec, Err: err}
	}
}

func (s *StudyScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Studying still works without history.
		s.log.WithError(msg.Err).Warn("open session history")
	}
	s.recorder = msg.Recorder
	if s.leaving {
		s.Close()
		return s, popCmd
	}

	if err := s.sess.Start(); err != nil {
		if errors.Is(err, session.ErrEmptySession) {
			s.errMsg = "This list has no words to study."
		} else {
			s.errMsg = err.Error()
		}
		return s, nil
	}
	s.started = true
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		s.Close()
		return s, popCmd
	}
	if !s.started {
		// Leave once the history entry exists so it can be closed.
		if key == "esc" {
			s.leaving = true
		}
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.Close()
			return s, popCmd
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.pending != nil {
		switch key {
		case "enter":
			return s.resolve(false)
		case "i", "I":
			return s.resolve(true)
		}
		return s, nil
	}

	if key == "enter" {
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *StudyScreen) submit() (screen.Screen, tea.Cmd) {
	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}

	out, err := s.sess.SubmitAnswer(answer)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.input.Reset()

	if out.Kind == session.PendingOverride {
		s.pending = &out
		s.last = nil
		return s, nil
	}
	return s.afterResolved(out)
}

func (s *StudyScreen) resolve(accept bool) (screen.Screen, tea.Cmd) {
	out, err := s.sess.ResolveOverride(accept)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.pending = nil
	return s.afterResolved(out)
}

func (s *StudyScreen) afterResolved(out session.Outcome) (screen.Screen, tea.Cmd) {
	s.last = &out
	if s.sess.Phase() != session.PhaseComplete {
		return s, nil
	}

	sum := s.sess.Summary()
	next := summary.New(s.list.Title, sum, s.sess.Progress().Total)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// Close records an unfinished session as abandoned. It is safe to call
// after the session completed.
func (s *StudyScreen) Close() {
	if s.recorder != nil {
		s.recorder.Abandon(s.sess.Summary())
	}
}

func popCmd() tea.Msg { return router.PopScreenMsg{} }
