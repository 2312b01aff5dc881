// Package perf provides bounded-concurrency helpers
package perf

import (
	"context"
	"fmt"
	"sync"
)

// Map applies fn to each element of items with at most concurrency calls in
// flight and returns the results in input order.
//
// The first error cancels the remaining work and is returned. If ctx ends
// before every item was started, Map returns ctx.Err().
func Map[T, R any](ctx context.Context, items []T, fn func(T) (R, error), concurrency int) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}

	if concurrency <= 0 {
		concurrency = 1
	}

	// Create a cancellable context to cancel remaining work on error
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]R, len(items))
	sem := make(chan struct{}, concurrency)

	var (
		wg       sync.WaitGroup
		failOnce sync.Once
		firstErr error
	)
	fail := func(err error) {
		failOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	started := 0
dispatch:
	for i, item := range items {
		if ctx.Err() != nil {
			break
		}
		select {
		case sem <- struct{}{}: // Acquire
		case <-ctx.Done():
			break dispatch
		}

		wg.Add(1)
		started++
		go func(idx int, it T) {
			defer wg.Done()
			defer func() { <-sem }() // Release

			result, err := fn(it)
			if err != nil {
				fail(fmt.Errorf("error at index %d: %w", idx, err))
				return
			}
			results[idx] = result
		}(i, item)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if started < len(items) {
		return nil, ctx.Err()
	}
	return results, nil
}
