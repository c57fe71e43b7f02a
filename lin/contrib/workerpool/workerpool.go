// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, bounded worker pool for the
// parallel kernels in lin/contrib. A Pool is created once and reused across
// many kernel invocations, so a GEMM over thousands of blocks dispatches
// thousands of logical tasks onto a fixed number of goroutines instead of
// spawning one goroutine per block.
//
// Usage:
//
//	pool := workerpool.New(0) // 0 means GOMAXPROCS workers
//	defer pool.Close()
//
//	gemm.GEMM(pool, a, b, c, l, m, n, 64)
//	dot.Dot(pool, v, w, &acc, 256)
//
// Pools carry no per-call state: kernels own their accumulator locks, so
// independent kernel calls may share one pool concurrently.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and persist until Close is called.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one unit of dispatched work plus the barrier it reports to.
type task struct {
	run     func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned immediately.
// If numWorkers <= 0, GOMAXPROCS workers are used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}

	for _i := 0; _i < numWorkers; _i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.run()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down after all pending work completes.
// Calling Close multiple times is safe. A closed pool degrades to
// sequential in-caller execution rather than failing.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelForAtomic executes fn(i) for every i in [0, n) and blocks until
// all calls return. Logical tasks are handed out by atomic work stealing,
// which balances load when per-task cost varies (remainder blocks, pivot
// rows of different lengths). fn must be safe to call concurrently.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for _i := 0; _i < workers; _i++ {
		p.workC <- task{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelFor executes fn(start, end) over contiguous sub-ranges covering
// [0, n) and blocks until all calls return. Each worker receives one
// range; use this when tasks are uniform and per-index dispatch overhead
// matters more than load balancing.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- task{
			run:     func() { fn(start, end) },
			barrier: &wg,
		}
	}

	wg.Wait()
}
