package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation.
// It is completed exactly once; later completions are ignored.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// Returns the result and error if the function completes before the timeout.
// If the timeout occurs before completion, returns a timeout error.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
// Returns true if the function has completed, false otherwise.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the future is completed,
// for use in select statements alongside other channels.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// complete stores the outcome and releases waiters. Only the first call wins.
func (f *Future[U]) complete(res U, err error) bool {
	won := false
	f.once.Do(func() {
		f.result = res
		f.err = err
		won = true
		close(f.done)
	})
	return won
}

// NewPromise returns an unresolved Future together with the function that
// resolves it. Resolve is safe to call from many goroutines; the first call
// sets the outcome and returns true, every later call returns false.
func NewPromise[U any]() (*Future[U], func(U, error) bool) {
	f := newFuture[U]()
	return f, f.complete
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		// Early exit prevents goroutine leak when context is pre-canceled
		select {
		case <-ctx.Done():
			var zero U
			f.complete(zero, ctx.Err())
			return
		default:
		}

		res, err := fn(ctx, param)
		f.complete(res, err)
	}()

	return f
}
