// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

package lin

// NumBlocks returns the number of blocks of size blockSize needed to cover
// an axis of length n, i.e. ceil(n/blockSize). The final block may be a
// remainder shorter than blockSize.
//
// Callers guarantee n >= 1 and blockSize >= 1; violations panic.
func NumBlocks(n, blockSize int) int {
	if n < 1 {
		panic("lin: axis length must be positive")
	}
	if blockSize < 1 {
		panic("lin: block size must be positive")
	}

	return (n-1)/blockSize + 1
}

// BlockExtent returns the extent of block i when an axis of length n is
// partitioned into blockSize-sized blocks: min(blockSize, n - i*blockSize).
//
// For i in [0, NumBlocks(n, blockSize)), extents are positive and sum
// exactly to n; blocks never overlap.
func BlockExtent(n, blockSize, i int) int {
	return min(blockSize, n-i*blockSize)
}
