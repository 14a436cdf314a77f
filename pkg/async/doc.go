// Package async provides simple, generic helpers for running computations asynchronously and
// waiting for their completion.
//
// The package is centred around the generic type Future that represents the eventual result of an
// asynchronous operation. A Future can be obtained in two ways:
//
//   - Async starts the supplied function in its own goroutine and completes the Future with
//     whatever the function returns.
//   - NewPromise returns an unresolved Future and a resolve function. Any number of goroutines may
//     race to resolve it; the first one wins and the rest are told they lost. This makes a Future
//     usable as a one-shot completion signal.
//
// The caller can wait for completion with Await, block with a timeout using AwaitWithTimeout,
// poll the state with IsComplete, or select on Done.
//
// # Usage
//
//	found, resolve := async.NewPromise[string]()
//
//	go func() {
//	    if ok := check(candidate); ok {
//	        resolve(candidate, nil) // first success wins
//	    }
//	}()
//
//	select {
//	case <-found.Done():
//	    secret, _ := found.Await()
//	    fmt.Println(secret)
//	case <-ctx.Done():
//	}
//
// # Error Handling
//
// Futures carry the error produced by the user callback or passed to resolve. AwaitWithTimeout
// returns ErrTimeout when the deadline passes first, and Async completes with ctx.Err() when the
// context is already canceled before the function starts.
package async
