// Package statemachine tracks the lifecycle of long-running operations such
// as a cracking run (idle, running, found, exhausted, canceled).
//
// Transitions are declared once at construction with WithTransitions. A
// transition may carry guards that inspect the event payload; hooks added
// with WithHook observe every transition, which is where logging goes.
//
//	const (
//	    Idle    = statemachine.StringState("idle")
//	    Running = statemachine.StringState("running")
//	    Start   = statemachine.StringEvent("start")
//	)
//
//	machine := statemachine.MustNew(Idle,
//	    statemachine.WithTransitions(
//	        statemachine.Transition{From: Idle, To: Running, Event: Start},
//	    ),
//	)
//	_ = machine.Fire(ctx, Start, nil)
//
// Fire failures are *TransitionError values wrapping ErrNoTransition (the
// event is not valid in the current state) or ErrRejected (a guard said no),
// so errors.Is works on both.
package statemachine
