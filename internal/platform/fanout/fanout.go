// Package fanout applies a function to many items on a bounded pool of
// workers and returns results in input order. The backend clients use it
// where the REST API only works per item (tasks of several lists, moving
// every task of a list), and project effects use it to create the default
// task lists of a new project.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result is the outcome for one item.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item on at most workers goroutines (at least one)
// and returns the outcomes in input order. Once ctx is done, items not yet
// started are skipped with ctx.Err(); calls already running are left to
// observe ctx themselves. Run returns after every started call has returned.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	workers = min(max(workers, 1), len(items))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range next {
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				v, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: v, Err: err}
			}
		})
	}
	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()
	return results
}

// All is Run that fails as a whole: it returns every value in input order,
// or the joined errors of all failed items.
func All[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := Run(ctx, workers, items, fn)

	values := make([]R, len(results))
	var errs []error
	for i, r := range results {
		values[i] = r.Value
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return values, nil
}

// Concat is All for functions returning slices, flattened in input order.
func Concat[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) ([]R, error)) ([]R, error) {
	chunks, err := All(ctx, workers, items, fn)
	if err != nil {
		return nil, err
	}
	out := make([]R, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out, nil
}
