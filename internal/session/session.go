package session

import (
	"math/rand/v2"
)

// Rand is the random source used to draw prompts. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used to draw prompts.
func WithRand(r Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed draws prompts from a deterministic PCG source.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithObserver registers fn to receive every event the session emits.
func WithObserver(fn Observer) Option {
	return func(s *Session) {
		s.observers = append(s.observers, fn)
	}
}

// OutcomeKind says whether an answer is fully graded.
type OutcomeKind int

const (
	// Resolved means the answer was graded and the next prompt drawn.
	Resolved OutcomeKind = iota
	// PendingOverride means the answer mismatched and ResolveOverride must be called.
	PendingOverride
)

// Outcome is returned by SubmitAnswer and ResolveOverride.
type Outcome struct {
	Kind          OutcomeKind
	Correct       bool
	Overridden    bool
	Answer        string
	CorrectAnswer string
	Notes         string

	// Level is the item's level after grading. For a pending outcome it
	// is the level the answer was given at.
	Level int

	// Mastered is true when the item reached MasteredLevel and left the set.
	Mastered bool
}

// Session is one quiz run over a fixed set of items.
//
// A Session is not safe for concurrent use.
type Session struct {
	candidates []Item
	working    []entry
	current    int
	direction  Direction
	phase      Phase

	correctCount int
	totalAsked   int
	pending      string

	rng       Rand
	observers []Observer
}

// New creates a session over a copy of items. Call Start to begin.
func New(items []Item, opts ...Option) *Session {
	s := &Session{
		candidates: append([]Item(nil), items...),
		current:    -1,
		rng:        globalRand{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start resets all levels and statistics and draws the first prompt.
// It may be called again once the session is complete.
func (s *Session) Start() error {
	if len(s.candidates) == 0 {
		return ErrEmptySession
	}
	if s.phase == PhaseActive || s.phase == PhaseAwaitingOverride {
		return &InvalidStateError{Op: "start", Phase: s.phase}
	}

	s.working = make([]entry, len(s.candidates))
	for i, it := range s.candidates {
		s.working[i] = entry{item: it}
	}
	s.correctCount = 0
	s.totalAsked = 0
	s.pending = ""
	s.phase = PhaseActive
	s.drawNext()
	return nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Prompt returns the current prompt. ok is false when no item is current.
func (s *Session) Prompt() (PromptReady, bool) {
	if s.current < 0 {
		return PromptReady{}, false
	}
	return PromptReady{
		Text:      s.working[s.current].cue(s.direction),
		Direction: s.direction,
	}, true
}

// SubmitAnswer grades answer against the current prompt.
//
// A match is resolved immediately. A mismatch moves the session to
// PhaseAwaitingOverride and the caller must call ResolveOverride.
func (s *Session) SubmitAnswer(answer string) (Outcome, error) {
	if s.phase != PhaseActive || s.current < 0 {
		return Outcome{}, &InvalidStateError{Op: "submit answer", Phase: s.phase}
	}

	e := s.working[s.current]
	target := e.target(s.direction)
	if CheckAnswer(answer, target) {
		return s.onCorrect(answer, false), nil
	}

	s.pending = answer
	s.phase = PhaseAwaitingOverride
	s.emit(AnswerOutcome{
		Correct:       false,
		Answer:        answer,
		CorrectAnswer: target,
		Notes:         e.item.Notes,
		Direction:     s.direction,
	})
	return Outcome{
		Kind:          PendingOverride,
		Answer:        answer,
		CorrectAnswer: target,
		Notes:         e.item.Notes,
		Level:         e.level,
	}, nil
}

// ResolveOverride completes a pending incorrect answer. accept treats the
// answer as correct; otherwise the item is demoted.
func (s *Session) ResolveOverride(accept bool) (Outcome, error) {
	if s.phase != PhaseAwaitingOverride {
		return Outcome{}, &InvalidStateError{Op: "resolve override", Phase: s.phase}
	}

	answer := s.pending
	s.pending = ""
	s.phase = PhaseActive
	if accept {
		return s.onCorrect(answer, true), nil
	}

	e := &s.working[s.current]
	e.level = Demote(e.level)
	out := Outcome{
		Kind:          Resolved,
		Answer:        answer,
		CorrectAnswer: e.target(s.direction),
		Notes:         e.item.Notes,
		Level:         e.level,
	}
	s.drawNext()
	return out, nil
}

func (s *Session) onCorrect(answer string, overridden bool) Outcome {
	s.correctCount++

	e := &s.working[s.current]
	e.level = Promote(e.level)
	out := Outcome{
		Kind:          Resolved,
		Correct:       true,
		Overridden:    overridden,
		Answer:        answer,
		CorrectAnswer: e.target(s.direction),
		Notes:         e.item.Notes,
		Level:         e.level,
		Mastered:      e.level == MasteredLevel,
	}
	s.emit(AnswerOutcome{
		Correct:       true,
		Overridden:    overridden,
		Answer:        answer,
		CorrectAnswer: out.CorrectAnswer,
		Notes:         out.Notes,
		Direction:     s.direction,
		Mastered:      out.Mastered,
	})

	if out.Mastered {
		s.working = append(s.working[:s.current], s.working[s.current+1:]...)
	}
	s.drawNext()
	return out
}

func (s *Session) drawNext() {
	if len(s.working) == 0 {
		s.current = -1
		s.phase = PhaseComplete
		sum := s.Summary()
		s.emit(SessionComplete{
			CorrectCount: sum.CorrectCount,
			TotalAsked:   sum.TotalAsked,
			Accuracy:     sum.Accuracy,
		})
		return
	}

	s.current = s.rng.IntN(len(s.working))
	s.direction = DirectionForLevel(s.working[s.current].level)
	s.totalAsked++
	p, _ := s.Prompt()
	s.emit(p)
}

func (s *Session) emit(ev Event) {
	for _, fn := range s.observers {
		fn(ev)
	}
}
