package session

import "fmt"

// Event is emitted by a session to its observer.
type Event interface {
	event()
}

// PromptReady announces a newly drawn prompt.
type PromptReady struct {
	Text      string
	Direction Direction
}

// Question renders the prompt as shown to the learner.
func (p PromptReady) Question() string {
	if p.Direction == DefinitionToTerm {
		return fmt.Sprintf("What is the term for: %s", p.Text)
	}
	return fmt.Sprintf("Define: %s", p.Text)
}

// AnswerOutcome reports how an answer was graded.
type AnswerOutcome struct {
	Correct       bool
	Overridden    bool
	Answer        string
	CorrectAnswer string
	Notes         string
	Direction     Direction
	Mastered      bool
}

// SessionComplete is emitted once the working set is empty.
type SessionComplete struct {
	CorrectCount int
	TotalAsked   int
	Accuracy     float64
}

func (PromptReady) event()     {}
func (AnswerOutcome) event()   {}
func (SessionComplete) event() {}

// Observer receives session events synchronously, in order.
type Observer func(Event)
