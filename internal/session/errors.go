package session

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySession is returned by Start when there are no items to study.
	ErrEmptySession = errors.New("session has no items")

	// ErrInvalidState matches every *InvalidStateError via errors.Is.
	ErrInvalidState = errors.New("invalid session state")
)

// InvalidStateError is returned when an operation is called in a phase
// that does not allow it.
type InvalidStateError struct {
	Op    string
	Phase Phase
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("session: cannot %s while %s", e.Op, e.Phase)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}
