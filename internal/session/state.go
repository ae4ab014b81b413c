package session

// Phase represents the lifecycle phase of a session.
type Phase int

const (
	PhaseNotStarted       Phase = iota // Created, Start not yet called
	PhaseActive                        // Waiting for an answer to the current prompt
	PhaseAwaitingOverride              // Last answer mismatched, waiting for ResolveOverride
	PhaseComplete                      // Working set is empty
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseActive:
		return "active"
	case PhaseAwaitingOverride:
		return "awaiting override"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}
