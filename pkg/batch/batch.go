// Package batch runs a set of operations with a fan-out/join-all pattern:
// every operation is launched before any is awaited, and Run returns only
// once all of them have settled. Failures never cancel or roll back
// sibling operations; callers decide what a partial failure means.
package batch

import (
	"context"
	"sync"
)

// Result holds the outcome of a single operation in a batch.
type Result[T any] struct {
	Item T
	Err  error
}

// Run executes fn for every item concurrently and waits for all of them.
// Results are returned in input order.
func Run[T any](ctx context.Context, items []T, fn func(context.Context, T) error) []Result[T] {
	results := make([]Result[T], len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			results[i] = Result[T]{Item: item, Err: fn(ctx, item)}
		}(i, item)
	}
	wg.Wait()

	return results
}

// Failed returns the errors of the operations that did not succeed.
func Failed[T any](results []Result[T]) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
