// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

// Package dot provides a parallel blocked inner-product reduction.
//
// Dot partitions the index range into fixed-size blocks, computes one
// block-local partial sum per block, and merges each partial into the
// caller's accumulator under a lock scoped to that call. Synchronization
// cost is O(blocks), not O(elements): the lock is taken exactly once per
// block, after the block's products have been summed lock-free.
//
// # Accumulator semantics
//
// The kernel adds into *acc and never zeroes it; callers wanting a fresh
// result must zero the accumulator first. This mirrors GEMM's C += A*B
// contract and lets callers chain reductions.
//
// # Determinism
//
// Merge order across blocks is unspecified. Integer results are exact and
// identical between runs; floating-point results may differ in low-order
// bits from run to run. This is documented nondeterminism, not a defect.
//
// # Example
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	var acc float64
//	dot.Dot(pool, v, w, &acc, 256)
package dot
