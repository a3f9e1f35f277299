package tradeloop

import (
	"context"

	"github.com/mtrade/tradeloop/builder"
	"github.com/mtrade/tradeloop/graph"
	"github.com/mtrade/tradeloop/scheduler"
)

// Options bundles the per-stage configuration Solve passes through to
// builder.Build and scheduler.Run.
type Options struct {
	BuilderOptions   []builder.Option
	SchedulerOptions []scheduler.Option
}

// Result is the outcome of a complete Solve run.
type Result struct {
	Cycles          graph.Cycles
	Score           int64
	Summary         string
	Completions     int
	Canceled        bool
	ViableRealItems int
	// ParseErrors is data.Errors as it stood after Build ran, surfaced
	// here so a caller doesn't need to hold onto the ParseData value.
	ParseErrors []string
}

// Solve runs the complete pipeline: Build, RemoveImpossibleEdges, then
// Run. It returns a non-nil error only for setup failures (a malformed
// ParseData per builder.Build's contract); a canceled or worker-failed
// search is reported through Result.Canceled, not through the error
// return, mirroring scheduler.Run's own convention.
func Solve(ctx context.Context, data *builder.ParseData, seed int64, opts Options) (*Result, error) {
	g, err := builder.Build(data, opts.BuilderOptions...)
	if err != nil {
		return nil, err
	}

	if err := g.RemoveImpossibleEdges(ctx); err != nil {
		return &Result{Canceled: true, ParseErrors: data.Errors}, nil
	}

	res, err := scheduler.Run(ctx, g, seed, opts.SchedulerOptions...)
	if err != nil {
		return nil, err
	}

	return &Result{
		Cycles:          res.Cycles,
		Score:           res.Score,
		Summary:         res.Summary,
		Completions:     res.Completions,
		Canceled:        res.Canceled,
		ViableRealItems: res.ViableRealItems,
		ParseErrors:     data.Errors,
	}, nil
}
