package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Machine is a concurrency-safe finite state machine. Transitions are
// registered at construction and looked up by [state][event].
type Machine struct {
	mu          sync.RWMutex
	current     State
	transitions map[string]map[string][]Transition
	hooks       []Hook
}

// Option configures a Machine during construction.
type Option func(*Machine) error

// New creates a machine starting in initial.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, ErrNilInitialState
	}

	m := &Machine{
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error. Intended for lifecycles that are
// fixed at compile time.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransitions registers transitions. For the same state and event the
// first transition whose guards pass wins.
func WithTransitions(transitions ...Transition) Option {
	return func(m *Machine) error {
		for i, t := range transitions {
			if t.From == nil || t.To == nil || t.Event == nil {
				return fmt.Errorf("transition[%d]: %w", i, ErrInvalidTransition)
			}
			byEvent, ok := m.transitions[t.From.Name()]
			if !ok {
				byEvent = make(map[string][]Transition)
				m.transitions[t.From.Name()] = byEvent
			}
			byEvent[t.Event.Name()] = append(byEvent[t.Event.Name()], t)
		}
		return nil
	}
}

// WithHook registers a hook that runs on every transition. Nil hooks are ignored.
func WithHook(hook Hook) Option {
	return func(m *Machine) error {
		if hook != nil {
			m.hooks = append(m.hooks, hook)
		}
		return nil
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the current state matches any of states by name.
func (m *Machine) Is(states ...State) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range states {
		if s != nil && s.Name() == m.current.Name() {
			return true
		}
	}
	return false
}

// Fire applies event. Lookup, guards, hooks and the state change happen
// under one lock, so concurrent callers racing for the same transition see
// exactly one winner. Hooks must not call back into the machine.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.current
	candidates := m.transitions[from.Name()][event.Name()]
	if len(candidates) == 0 {
		return &TransitionError{State: from.Name(), Event: event.Name(), Reason: ErrNoTransition}
	}

	for _, t := range candidates {
		if !guardsPass(ctx, t.Guards, from, event, data) {
			continue
		}
		for _, hook := range m.hooks {
			if err := hook(ctx, from, t.To, event, data); err != nil {
				return fmt.Errorf("hook failed: %w", err)
			}
		}
		m.current = t.To
		return nil
	}

	return &TransitionError{State: from.Name(), Event: event.Name(), Reason: ErrRejected}
}

func guardsPass(ctx context.Context, guards []Guard, from State, event Event, data any) bool {
	for _, guard := range guards {
		if guard != nil && !guard(ctx, from, event, data) {
			return false
		}
	}
	return true
}
