package statemachine

import "context"

// State is a named lifecycle state.
type State interface {
	Name() string
}

// Event is a named trigger for a state change.
type Event interface {
	Name() string
}

// Hook observes a transition before it is applied. Returning an error
// aborts the transition.
type Hook func(ctx context.Context, from, to State, event Event, data any) error

// Guard decides whether a transition may fire for the given payload.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition moves the machine from From to To when Event fires and every
// guard passes.
type Transition struct {
	From   State
	To     State
	Event  Event
	Guards []Guard
}

// StringState is a State identified by its string value.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is an Event identified by its string value.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }
