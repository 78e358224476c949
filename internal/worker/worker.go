// Package worker provides a bounded worker pool for data-parallel maps over
// image rows.
//
// Rows are data-independent in both codec directions, so the pool is a plain
// fan-out/fan-in: a fixed number of goroutines drain a channel of row
// indices and a WaitGroup forms the barrier. Results are written into
// per-row slots owned by the caller, never into shared state, so the output
// order is independent of completion order.
package worker

import (
	"runtime"
	"sync"
)

// DefaultCount returns the default number of workers for row-parallel work.
func DefaultCount() int {
	return runtime.NumCPU()
}

// Rows runs fn(y) for every y in [0, n) using at most workers goroutines.
// It blocks until all rows are processed. fn must only touch state owned by
// row y.
func Rows(n, workers int, fn func(y int)) {
	if n <= 0 {
		return
	}

	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for y := 0; y < n; y++ {
			fn(y)
		}

		return
	}

	rows := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				fn(y)
			}
		}()
	}

	for y := 0; y < n; y++ {
		rows <- y
	}
	close(rows)

	wg.Wait()
}
