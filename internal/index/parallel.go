package index

import (
	"context"
	"errors"
	"sync"
)

// errSkipped marks items never started because an earlier item failed.
var errSkipped = errors.New("skipped after earlier failure")

type orderedResult[R any] struct {
	Value R
	Err   error
}

// runOrdered applies fn to every item with at most concurrency goroutines
// working at once and returns the results in input order. After the first
// failure, items that have not started yet are skipped; items already running
// finish and their results are kept.
func runOrdered[T any, R any](ctx context.Context, items []T, concurrency int, fn func(context.Context, T) (R, error)) []orderedResult[R] {
	if len(items) == 0 {
		return nil
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(items) {
		concurrency = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, concurrency)
	results := make([]orderedResult[R], len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if ctx.Err() != nil {
				results[i] = orderedResult[R]{Err: errSkipped}
				return
			}
			v, err := fn(ctx, item)
			if err != nil {
				cancel()
			}
			results[i] = orderedResult[R]{Value: v, Err: err}
		}(i, item)
	}
	wg.Wait()
	return results
}

// firstError returns the failure of the lowest-indexed item, ignoring skips.
func firstError[R any](results []orderedResult[R]) error {
	for _, r := range results {
		if r.Err != nil && !errors.Is(r.Err, errSkipped) {
			return r.Err
		}
	}
	return nil
}
