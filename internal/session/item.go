package session

// Item is a single flashcard handed to a session.
type Item struct {
	Term       string
	Definition string
	Notes      string
}

// Direction is which side of an item the learner must supply.
type Direction int

const (
	// TermToDefinition shows the term and expects the definition.
	TermToDefinition Direction = iota
	// DefinitionToTerm shows the definition and expects the term.
	DefinitionToTerm
)

// String returns a short label for the direction.
func (d Direction) String() string {
	if d == DefinitionToTerm {
		return "definition→term"
	}
	return "term→definition"
}

// entry is an item in the working set together with its session-scoped level.
type entry struct {
	item  Item
	level int
}

// cue returns the text shown to the learner for the given direction.
func (e entry) cue(d Direction) string {
	if d == DefinitionToTerm {
		return e.item.Definition
	}
	return e.item.Term
}

// target returns the expected answer for the given direction.
func (e entry) target(d Direction) string {
	if d == DefinitionToTerm {
		return e.item.Term
	}
	return e.item.Definition
}
