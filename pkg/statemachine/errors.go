package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition: from, to, or event cannot be nil")
	ErrInvalidEvent      = errors.New("invalid event: event cannot be nil")
	ErrNilInitialState   = errors.New("initial state cannot be nil")

	// Reasons carried by TransitionError.
	ErrNoTransition = errors.New("no transition registered")
	ErrRejected     = errors.New("rejected by guards")
)

// TransitionError reports an event that could not move the machine.
// Reason is ErrNoTransition or ErrRejected.
type TransitionError struct {
	State  string
	Event  string
	Reason error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("state %q, event %q: %v", e.State, e.Event, e.Reason)
}

func (e *TransitionError) Unwrap() error {
	return e.Reason
}
