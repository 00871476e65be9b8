// Package fanout runs one function over many items with a cap on how many
// run at once. The resolver uses it to write a refreshed account's records
// into the cache.
package fanout

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns the results in input order. One item failing does not stop the
// others.
//
// Items that have not started when ctx is canceled record ctx.Err() and
// skip fn; items already running finish. Run blocks until all items are
// accounted for. An empty items returns an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Errors joins the errors of all failed results, or returns nil.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
