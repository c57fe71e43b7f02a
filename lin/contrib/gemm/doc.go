// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

// Package gemm provides a parallel blocked general matrix-matrix multiply,
// C += A*B, over row-addressable matrices.
//
// # Blocking
//
// All three dimensions are partitioned independently into blockSize-sized
// blocks; one logical task is dispatched per (row-block, contraction-block,
// column-block) triple. Each task computes its block product into a private
// zero-initialized temporary with no shared-state writes, then takes the
// call's lock once and adds the temporary into the matching region of C.
// The O(B^3) compute stays lock-free; only the O(B^2) merge synchronizes.
//
// Exactly one merge happens per (output-block, contraction-block) pair:
// never zero, never duplicated. That invariant is why merging requires the
// lock even though computing does not — two tasks with different
// contraction blocks target the same region of C.
//
// # Accumulator semantics
//
// C is accumulated into, never overwritten. Zero C first for a fresh
// product.
//
// # Determinism
//
// Merge order across contraction blocks is unspecified: integer results
// are exact regardless of block size; floating-point results may differ in
// low-order bits between runs or between block sizes.
package gemm
