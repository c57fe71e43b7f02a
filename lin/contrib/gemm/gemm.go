// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

package gemm

import (
	"sync"

	"github.com/ajroetker/go-linalg/lin"
	"github.com/ajroetker/go-linalg/lin/contrib/workerpool"
)

// MinParallelOps is the minimum number of multiply-adds (l*m*n) before
// block tasks are dispatched to the pool. Below it the multiply runs in
// the caller.
const MinParallelOps = 64 * 64 * 64

// GEMM adds the product A*B into C.
//
//   - A is l x m (row slices)
//   - B is m x n
//   - C is l x n, accumulated into, never overwritten
//
// Each of the three dimensions is partitioned into blockSize-sized blocks
// and one logical task runs per block triple. Tasks compute into private
// temporaries and merge into C under a lock owned by this call, so
// concurrent GEMM calls on disjoint outputs never contend. GEMM blocks
// until every task has merged.
//
// A nil pool forces sequential execution. Inputs A and B are read-only
// during the call.
//
// Panics if blockSize < 1 or any matrix is smaller than its stated shape.
func GEMM[T lin.Element](pool *workerpool.Pool, a, b, c [][]T, l, m, n, blockSize int) {
	if l < 1 || m < 1 || n < 1 {
		panic("gemm: dimensions must be positive")
	}
	if blockSize < 1 {
		panic("gemm: block size must be positive")
	}
	checkShape(a, l, m, "A")
	checkShape(b, m, n, "B")
	checkShape(c, l, n, "C")

	if pool == nil || l*m*n < MinParallelOps {
		multiplyRange(a, b, c, 0, l, 0, m, 0, n)
		return
	}

	lBlk := lin.NumBlocks(l, blockSize)
	mBlk := lin.NumBlocks(m, blockSize)
	nBlk := lin.NumBlocks(n, blockSize)

	// One lock per call, shared by all block merges of this call only.
	var mu sync.Mutex

	pool.ParallelForAtomic(lBlk*mBlk*nBlk, func(t int) {
		// Unflatten t into (row-block, contraction-block, column-block).
		bi := t / (mBlk * nBlk)
		bj := t % (mBlk * nBlk) / nBlk
		bk := t % nBlk

		rows := lin.BlockExtent(l, blockSize, bi)
		inner := lin.BlockExtent(m, blockSize, bj)
		cols := lin.BlockExtent(n, blockSize, bk)
		r0 := bi * blockSize
		i0 := bj * blockSize
		c0 := bk * blockSize

		// Private accumulator: all O(rows*inner*cols) work happens here
		// with no synchronization.
		tmp := lin.NewMatrix[T](rows, cols)
		for i := 0; i < rows; i++ {
			arow := a[r0+i]
			trow := tmp[i]
			for k := 0; k < inner; k++ {
				aik := arow[i0+k]
				brow := b[i0+k]
				for j := 0; j < cols; j++ {
					trow[j] += aik * brow[c0+j]
				}
			}
		}

		// Single locked merge; the temporary is discarded afterwards.
		mu.Lock()
		for i := 0; i < rows; i++ {
			crow := c[r0+i]
			trow := tmp[i]
			for j := 0; j < cols; j++ {
				crow[c0+j] += trow[j]
			}
		}
		mu.Unlock()
	})
}

// multiplyRange accumulates the sub-product of A and B over the given row,
// contraction, and column ranges directly into C. Used for the sequential
// path, where no other writer exists and no temporary is needed.
func multiplyRange[T lin.Element](a, b, c [][]T, r0, r1, i0, i1, c0, c1 int) {
	for i := r0; i < r1; i++ {
		arow := a[i]
		crow := c[i]
		for k := i0; k < i1; k++ {
			aik := arow[k]
			brow := b[k]
			for j := c0; j < c1; j++ {
				crow[j] += aik * brow[j]
			}
		}
	}
}

func checkShape[T lin.Element](a [][]T, rows, cols int, name string) {
	if len(a) < rows {
		panic("gemm: " + name + " has too few rows")
	}
	for i := 0; i < rows; i++ {
		if len(a[i]) < cols {
			panic("gemm: " + name + " has a short row")
		}
	}
}
