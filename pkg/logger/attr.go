package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the cracking run identifier under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Workers records the worker pool size under the key "workers".
func Workers(n int) slog.Attr {
	return slog.Int("workers", n)
}

// Attempts records how many candidates were tested under the key "attempts".
func Attempts(n int64) slog.Attr {
	return slog.Int64("attempts", n)
}

// Candidates records the dictionary size under the key "candidates".
func Candidates(n int) slog.Attr {
	return slog.Int("candidates", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Rate records throughput in hashes per second under the key "rate".
// Zero or negative durations yield an empty Attr.
func Rate(attempts int64, d time.Duration) slog.Attr {
	if d <= 0 {
		return slog.Attr{}
	}
	return slog.Float64("rate", float64(attempts)/d.Seconds())
}

// Source records where candidates or tokens came from under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// State records a lifecycle state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
