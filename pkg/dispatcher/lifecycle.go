package dispatcher

import (
	"context"

	"github.com/dmitrymomot/jwtcrack/pkg/statemachine"
)

// Run lifecycle states.
var (
	StateIdle      = statemachine.StringState("idle")
	StateRunning   = statemachine.StringState("running")
	StateFound     = statemachine.StringState("found")
	StateExhausted = statemachine.StringState("exhausted")
	StateCanceled  = statemachine.StringState("canceled")
)

// Run lifecycle events.
var (
	EventStart   = statemachine.StringEvent("start")
	EventMatch   = statemachine.StringEvent("match")
	EventExhaust = statemachine.StringEvent("exhaust")
	EventCancel  = statemachine.StringEvent("cancel")
)

// resultFound admits a match only for a Result that carries a secret.
func resultFound(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	res, ok := data.(Result)
	return ok && res.Found
}

// resultMissed admits exhaustion only for a Result without a secret.
func resultMissed(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	res, ok := data.(Result)
	return ok && !res.Found
}

func (d *Dispatcher) newLifecycle() *statemachine.Machine {
	return statemachine.MustNew(StateIdle,
		statemachine.WithTransitions(
			statemachine.Transition{From: StateIdle, To: StateRunning, Event: EventStart},
			statemachine.Transition{From: StateFound, To: StateRunning, Event: EventStart},
			statemachine.Transition{From: StateExhausted, To: StateRunning, Event: EventStart},
			statemachine.Transition{From: StateCanceled, To: StateRunning, Event: EventStart},
			statemachine.Transition{From: StateRunning, To: StateFound, Event: EventMatch, Guards: []statemachine.Guard{resultFound}},
			statemachine.Transition{From: StateRunning, To: StateExhausted, Event: EventExhaust, Guards: []statemachine.Guard{resultMissed}},
			statemachine.Transition{From: StateRunning, To: StateCanceled, Event: EventCancel},
		),
		statemachine.WithHook(func(ctx context.Context, from, to statemachine.State, event statemachine.Event, _ any) error {
			d.logger.DebugContext(ctx, "run state changed",
				"from", from.Name(),
				"to", to.Name(),
				"event", event.Name())
			return nil
		}),
	)
}
