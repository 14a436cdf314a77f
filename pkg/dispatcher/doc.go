// Package dispatcher runs a dictionary attack against an HS256 token.
//
// A Dispatcher owns a fixed pool of workers. One producer goroutine ranges
// over the candidate sequence and hands candidates to the workers through an
// unbuffered channel, so each candidate is tested by exactly one worker. The
// first worker whose HMAC matches resolves a one-shot future; the producer
// observes it between hand-offs, stops feeding and closes the channel. Workers
// never poll a flag while hashing.
//
// Each run moves through a small lifecycle:
//
//	idle -> running -> found | exhausted | canceled
//
// and any finished state may start again.
//
// # Usage
//
//	token, err := jwt.Parse(raw)
//	if err != nil {
//	    return err
//	}
//
//	d, err := dispatcher.New(dispatcher.WithWorkers(8))
//	if err != nil {
//	    return err
//	}
//
//	res, err := d.Run(ctx, token, wordlist.Seq(words))
//	switch {
//	case err != nil:
//	    // canceled or misconfigured
//	case res.Found:
//	    fmt.Println(res.Secret)
//	default:
//	    // exhausted; res.Err() == dispatcher.ErrNotFound
//	}
//
// Exhaustion is a result, not an error. Configuration problems are reported
// by New and by jwt.Parse before any candidate is tested.
package dispatcher
