// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

package dot

import (
	"sync"

	"github.com/ajroetker/go-linalg/lin"
	"github.com/ajroetker/go-linalg/lin/contrib/workerpool"
)

// MinParallelLen is the minimum vector length before block tasks are
// dispatched to the pool. Below it the per-block dispatch overhead
// outweighs the parallel win and the reduction runs in the caller.
const MinParallelLen = 4096

// Dot adds the inner product of v and w into *acc.
//
// The index range [0, len(v)) is partitioned into blockSize-sized blocks
// (the final block may be a remainder). One logical task per block computes
// a local sum of elementwise products, then merges it into *acc exactly
// once under a per-call lock. Dot blocks until every task has merged.
//
// A nil pool forces sequential execution. Empty v is a no-op.
//
// Panics if blockSize < 1 or len(w) < len(v).
func Dot[T lin.Element](pool *workerpool.Pool, v, w []T, acc *T, blockSize int) {
	n := len(v)
	if n == 0 {
		return
	}
	if blockSize < 1 {
		panic("dot: block size must be positive")
	}
	if len(w) < n {
		panic("dot: w shorter than v")
	}

	if pool == nil || n < MinParallelLen {
		*acc += dotRange(v, w, 0, n)
		return
	}

	nBlk := lin.NumBlocks(n, blockSize)

	// The lock is owned by this call, never shared across calls, so
	// concurrent independent reductions do not contend.
	var mu sync.Mutex

	pool.ParallelForAtomic(nBlk, func(b int) {
		start := b * blockSize
		sum := dotRange(v, w, start, start+lin.BlockExtent(n, blockSize, b))

		mu.Lock()
		*acc += sum
		mu.Unlock()
	})
}

// dotRange sums v[i]*w[i] over [start, end) with no shared-state writes.
func dotRange[T lin.Element](v, w []T, start, end int) T {
	var sum T
	for i := start; i < end; i++ {
		sum += v[i] * w[i]
	}

	return sum
}
