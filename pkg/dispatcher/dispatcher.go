package dispatcher

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/jwtcrack/pkg/async"
	"github.com/dmitrymomot/jwtcrack/pkg/jwt"
	"github.com/dmitrymomot/jwtcrack/pkg/logger"
	"github.com/dmitrymomot/jwtcrack/pkg/signature"
	"github.com/dmitrymomot/jwtcrack/pkg/statemachine"
)

// Result describes the outcome of a finished run.
type Result struct {
	RunID        uuid.UUID
	Found        bool
	Secret       string
	SigningInput string
	Attempts     int64
	Elapsed      time.Duration
}

// Err returns ErrNotFound when the run exhausted its candidates without a match.
func (r Result) Err() error {
	if !r.Found {
		return ErrNotFound
	}
	return nil
}

// Dispatcher tests candidate secrets against a token's signature with a fixed
// pool of workers. A Dispatcher performs one run at a time and may be reused
// once a run has finished.
type Dispatcher struct {
	workers   int
	logger    *slog.Logger
	onAttempt func()
	runID     uuid.UUID
	lifecycle *statemachine.Machine
}

// New creates a Dispatcher. It fails with ErrInvalidWorkerCount if the
// configured pool size is below 1.
func New(opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		workers: DefaultWorkers,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.workers < 1 {
		return nil, ErrInvalidWorkerCount
	}

	d.lifecycle = d.newLifecycle()
	return d, nil
}

// Workers returns the configured pool size.
func (d *Dispatcher) Workers() int {
	return d.workers
}

// State returns the current lifecycle state.
func (d *Dispatcher) State() statemachine.State {
	return d.lifecycle.Current()
}

// Run searches candidates for the secret that produced the token's signature.
//
// A match returns a Result with Found set. Exhausting the candidates is not an
// error: the Result has Found unset and Result.Err reports ErrNotFound.
// Cancellation of ctx returns an error wrapping both ErrCanceled and the
// context error. Run returns only after every worker has stopped.
func (d *Dispatcher) Run(ctx context.Context, token *jwt.Token, candidates iter.Seq[string]) (Result, error) {
	if token == nil {
		return Result{}, ErrNilToken
	}
	if err := ctx.Err(); err != nil {
		return Result{}, errors.Join(ErrCanceled, err)
	}

	runID := d.runID
	if runID == uuid.Nil {
		runID = uuid.New()
	}
	log := d.logger.With(logger.RunID(runID), logger.Component("dispatcher"))

	if err := d.lifecycle.Fire(ctx, EventStart, runID); err != nil {
		if errors.Is(err, statemachine.ErrNoTransition) {
			return Result{}, ErrAlreadyRunning
		}
		return Result{}, err
	}

	log.InfoContext(ctx, "run started", logger.Workers(d.workers))

	start := time.Now()
	found, resolve := async.NewPromise[string]()
	attempts, err := d.search(ctx, token, candidates, found, resolve)

	res := Result{
		RunID:        runID,
		SigningInput: token.SigningInput(),
		Attempts:     attempts,
		Elapsed:      time.Since(start),
	}

	// The lifecycle must settle even when ctx is already done.
	settleCtx := context.WithoutCancel(ctx)

	switch {
	case found.IsComplete():
		res.Secret, _ = found.Await()
		res.Found = true
		d.settle(settleCtx, log, EventMatch, res)
		return res, nil
	case err != nil:
		d.settle(settleCtx, log, EventCancel, res)
		return res, errors.Join(ErrCanceled, err)
	default:
		d.settle(settleCtx, log, EventExhaust, res)
		return res, nil
	}
}

// Start runs the search in the background and returns a Future for its Result.
func (d *Dispatcher) Start(ctx context.Context, token *jwt.Token, candidates iter.Seq[string]) *async.Future[Result] {
	return async.Async(ctx, token, func(ctx context.Context, token *jwt.Token) (Result, error) {
		return d.Run(ctx, token, candidates)
	})
}

// search feeds candidates to the worker pool until one matches, the sequence
// ends, or ctx is done. It returns the number of candidates tested.
func (d *Dispatcher) search(
	ctx context.Context,
	token *jwt.Token,
	candidates iter.Seq[string],
	found *async.Future[string],
	resolve func(string, error) bool,
) (int64, error) {
	signingInput := []byte(token.SigningInput())
	expected := token.Signature

	var attempts atomic.Int64
	jobs := make(chan string)

	var g errgroup.Group

	g.Go(func() error {
		defer close(jobs)
		if candidates == nil {
			return nil
		}
		for candidate := range candidates {
			select {
			case <-found.Done():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			select {
			case jobs <- candidate:
			case <-found.Done():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range d.workers {
		g.Go(func() error {
			for candidate := range jobs {
				attempts.Add(1)
				if d.onAttempt != nil {
					d.onAttempt()
				}
				if signature.VerifyString(candidate, signingInput, expected) {
					resolve(candidate, nil)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	return attempts.Load(), err
}

func (d *Dispatcher) settle(ctx context.Context, log *slog.Logger, event statemachine.Event, res Result) {
	if err := d.lifecycle.Fire(ctx, event, res); err != nil {
		log.ErrorContext(ctx, "failed to settle run state", logger.Event(event.Name()), logger.Error(err))
	}

	log.InfoContext(ctx, "run finished",
		logger.State(d.lifecycle.Current().Name()),
		logger.Attempts(res.Attempts),
		logger.Duration(res.Elapsed),
		logger.Rate(res.Attempts, res.Elapsed))
}
