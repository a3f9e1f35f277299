package scheduler

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/mtrade/tradeloop/graph"
	"github.com/mtrade/tradeloop/metric"
	"github.com/mtrade/tradeloop/prng"
)

// Result is the best matching attempt Run found, scored under the
// configured metric.
type Result struct {
	Cycles      graph.Cycles
	Score       int64
	Summary     string
	Completions int
	// Canceled reports whether ctx was canceled before any attempt
	// completed. A canceled run with prior completions still reports its
	// best-so-far with Canceled left false, matching the reference's
	// treatment of a canceled run as "keep whatever was already found."
	Canceled bool
	// ViableRealItems is the template's post-prune count of non-dummy
	// items still able to trade, carried straight from the template
	// graph since pruning happens once before Run ever shuffles or
	// copies it.
	ViableRealItems int
}

type attempt struct {
	numCopies int
	cycles    graph.Cycles
	err       error
}

// Run shuffles and copies template up to Options.Iterations times — the
// first attempt uses the template's declared order unshuffled — and
// matches each copy concurrently across Options.Workers goroutines,
// returning the attempt that scores best under Options.Metric. Ties
// break toward the lower NumCopies, i.e. the earlier-spawned attempt.
//
// Run panics if template is not frozen; that is caller misuse, not a
// runtime condition. The error return is always nil: a canceled or
// fully-failed run is reported through Result.
func Run(ctx context.Context, template *graph.Graph, seed int64, opts ...Option) (*Result, error) {
	if !template.Frozen() {
		panic("scheduler: Run on an unfrozen template")
	}
	o := newOptions(opts...)
	rng := prng.NewSource(seed)

	results := make(chan attempt, o.Workers)
	sem := semaphore.NewWeighted(int64(o.Workers))
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < o.Iterations; i++ {
			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			if ctx.Err() != nil {
				sem.Release(1)
				return
			}

			if i > 0 {
				template.Shuffle(rng)
			}
			cp := template.Copy()

			go func(cp *graph.Graph) {
				defer sem.Release(1)
				cycles, err := cp.FindCycles(ctx, o.Paused)
				results <- attempt{numCopies: cp.NumCopies, cycles: cycles, err: err}
			}(cp)
		}
	}()

	go func() {
		<-done
		_ = sem.Acquire(context.Background(), int64(o.Workers))
		close(results)
	}()

	var best *Result
	var bestNumCopies int
	completions := 0
	for a := range results {
		completions++
		if a.err != nil {
			continue
		}
		score, summary := metric.Evaluate(o.Metric, a.cycles)
		if best == nil || score < best.Score || (score == best.Score && a.numCopies < bestNumCopies) {
			best = &Result{Cycles: a.cycles, Score: score, Summary: summary}
			bestNumCopies = a.numCopies
		}
	}

	if best == nil {
		return &Result{Completions: completions, Canceled: ctx.Err() != nil, ViableRealItems: template.ViableRealItems}, nil
	}
	best.Completions = completions
	best.ViableRealItems = template.ViableRealItems
	return best, nil
}
