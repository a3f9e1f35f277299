package scheduler

import (
	"runtime"
	"sync/atomic"

	"github.com/mtrade/tradeloop/metric"
)

// Option configures a Run call.
type Option func(*Options)

// Options holds every tunable Run accepts. The zero value is not ready to
// use; construct one via newOptions(opts...) so defaults are filled in.
type Options struct {
	Iterations int
	Metric     metric.Scheme
	Workers    int
	Paused     *atomic.Bool
}

func newOptions(opts ...Option) Options {
	o := Options{
		Iterations: 1,
		Metric:     metric.ChainSizesSOS,
		Workers:    runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Iterations < 1 {
		o.Iterations = 1
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

// WithIterations sets how many independent matching attempts to run.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithMetric selects the scoring scheme used to pick the best iteration.
func WithMetric(m metric.Scheme) Option {
	return func(o *Options) { o.Metric = m }
}

// WithWorkers caps how many matching attempts run concurrently. It
// defaults to runtime.GOMAXPROCS(0), one worker per logical CPU.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithPaused wires a shared pause flag that every worker samples at round
// boundaries inside FindCycles. A nil flag (the default) never pauses.
func WithPaused(p *atomic.Bool) Option {
	return func(o *Options) { o.Paused = p }
}
