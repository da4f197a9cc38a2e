// Package parallel runs the embarrassingly parallel stages of the flake
// pipeline, distance field rows and relief vertices, on a small
// work-stealing pool.
package parallel

import "runtime"

// minChunk keeps tiny ranges on the calling goroutine.
const minChunk = 16

// For calls fn(lo, hi) over disjoint half-open chunks covering [0, n).
// With workers == 1, or when n is too small to split, fn runs inline once.
// Zero or negative workers uses GOMAXPROCS.
//
// fn must only write state owned by its own chunk; For returns after every
// chunk has completed.
func For(workers, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n < 2*minChunk {
		fn(0, n)
		return
	}

	chunks := min(workers*4, (n+minChunk-1)/minChunk)
	size := (n + chunks - 1) / chunks

	work := make([]func(), 0, chunks)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		work = append(work, func() { fn(lo, hi) })
	}

	pool := NewWorkerPool(workers)
	defer pool.Close()
	pool.ExecuteAll(work)
}
