// Package progress renders a terminal progress bar for a cracking run.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
)

// DefaultTemplate shows tested/total candidates, throughput and ETA.
const DefaultTemplate pb.ProgressBarTemplate = `{{counters . }} {{bar . }} {{percent . }} {{speed . "%s/s" }} {{rtime . "ETA %s" }}`

// Option configures a Bar.
type Option func(*options)

type options struct {
	output      io.Writer
	refreshRate time.Duration
	template    pb.ProgressBarTemplate
}

// WithOutput sets where the bar is drawn. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithRefreshRate sets how often the bar is redrawn.
func WithRefreshRate(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.refreshRate = d
		}
	}
}

// WithTemplate replaces the bar layout.
func WithTemplate(tmpl pb.ProgressBarTemplate) Option {
	return func(o *options) {
		if tmpl != "" {
			o.template = tmpl
		}
	}
}

// Bar counts tested candidates. Increment is safe for concurrent use, so
// it can be passed directly as a dispatcher attempt hook.
type Bar struct {
	bar *pb.ProgressBar
}

// New creates a bar for total candidates. Call Start to begin drawing.
func New(total int, opts ...Option) *Bar {
	o := &options{
		output:      os.Stderr,
		refreshRate: 200 * time.Millisecond,
		template:    DefaultTemplate,
	}
	for _, opt := range opts {
		opt(o)
	}

	bar := o.template.New(total)
	bar.SetWriter(o.output)
	bar.SetRefreshRate(o.refreshRate)

	return &Bar{bar: bar}
}

// Start begins periodic redraws.
func (b *Bar) Start() *Bar {
	b.bar.Start()
	return b
}

// Increment records one tested candidate.
func (b *Bar) Increment() {
	b.bar.Increment()
}

// Current returns the number of recorded candidates.
func (b *Bar) Current() int64 {
	return b.bar.Current()
}

// Total returns the expected number of candidates.
func (b *Bar) Total() int64 {
	return b.bar.Total()
}

// Finish stops redrawing and prints the final state.
func (b *Bar) Finish() {
	b.bar.Finish()
}
