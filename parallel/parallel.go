// Package parallel runs a function over a slice on a bounded worker
// pool, tracking completions on a single progress bar.
package parallel

import (
	"context"
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/vbauerster/iterbar"
)

type result[R any] struct {
	value R
	err   error
}

// Process calls fn for every item on a pool of workers goroutines
// (GOMAXPROCS if workers <= 0). Workers only send completions, the bar
// is driven by the calling goroutine, described "Processing items"
// unless options say otherwise.
//
// Successful results are returned in completion order. Failures don't
// stop other items; once every item has finished they are returned
// together as a *multierror.Error. If ctx is done, pending items are
// skipped and ctx.Err() is part of the returned error.
func Process[T, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error), workers int, options ...iterbar.BarOption) ([]R, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := pond.NewPool(workers, pond.WithContext(ctx))

	// buffered, so a worker never blocks on a slow consumer
	done := make(chan result[R], len(items))
	for _, item := range items {
		pool.Submit(func() {
			v, err := fn(ctx, item)
			done <- result[R]{value: v, err: err}
		})
	}
	go func() {
		pool.StopAndWait()
		close(done)
	}()

	opts := append([]iterbar.BarOption{
		iterbar.WithDescription("Processing items"),
		iterbar.WithTotal(int64(len(items))),
	}, options...)

	results := make([]R, 0, len(items))
	var errs *multierror.Error
	for r := range iterbar.FromChan(done, opts...) {
		if r.err != nil {
			errs = multierror.Append(errs, r.err)
			continue
		}
		results = append(results, r.value)
	}
	if err := ctx.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return results, errs.ErrorOrNil()
}
