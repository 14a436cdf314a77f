package dispatcher

import (
	"log/slog"

	"github.com/google/uuid"
)

// DefaultWorkers is the pool size used when WithWorkers is not given.
const DefaultWorkers = 10

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithWorkers sets the number of verification goroutines.
// Values below 1 make New fail with ErrInvalidWorkerCount.
func WithWorkers(n int) Option {
	return func(d *Dispatcher) {
		d.workers = n
	}
}

// WithLogger sets the logger for run lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithOnAttempt registers a callback invoked once per tested candidate.
// It is called from worker goroutines and must be safe for concurrent use.
func WithOnAttempt(fn func()) Option {
	return func(d *Dispatcher) {
		d.onAttempt = fn
	}
}

// WithRunID pins the run identifier instead of generating one per run.
func WithRunID(id uuid.UUID) Option {
	return func(d *Dispatcher) {
		d.runID = id
	}
}
