// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

package lin

// NewMatrix allocates a rows x cols matrix as a slice of row slices backed
// by a single contiguous buffer. Rows are independently addressable, so
// a[i], a[j] = a[j], a[i] swaps row ownership in constant time.
func NewMatrix[T Element](rows, cols int) [][]T {
	if rows < 1 || cols < 1 {
		panic("lin: matrix dimensions must be positive")
	}

	flat := make([]T, rows*cols)
	a := make([][]T, rows)
	for i := range a {
		a[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return a
}

// Identity returns a freshly allocated n x n identity matrix.
func Identity[T Element](n int) [][]T {
	a := NewMatrix[T](n, n)
	for i := range a {
		a[i][i] = 1
	}

	return a
}

// CloneMatrix returns a deep copy of a. The copy has freshly owned rows,
// so mutating or swapping rows of one matrix never affects the other.
// Useful when a caller wants to keep the input to an in-place factorizer.
func CloneMatrix[T Element](a [][]T) [][]T {
	out := make([][]T, len(a))
	for i, row := range a {
		out[i] = make([]T, len(row))
		copy(out[i], row)
	}

	return out
}
