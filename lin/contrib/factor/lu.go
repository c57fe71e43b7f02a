// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

package factor

import "math"

// LUPartial factors the m x n matrix a in place using Gaussian elimination
// with partial (row) pivoting. On return a holds L and U in compact form:
// the upper triangle (diagonal included) is U, the strict lower triangle
// holds the elimination multipliers of unit-lower-triangular L.
//
// p is filled with the identity and then updated by every row exchange, so
// on return p records the net row permutation: row i of the factored
// matrix came from row p[i] of the input.
//
// At each step the largest-magnitude entry of the active column is swapped
// into pivot position. A pivot with |pivot| < tol stops elimination and
// returns that step index. On success the flag is min(m, n); a final
// diagonal below tolerance returns min(m, n) - 1.
//
// Panics if a, p, or the tolerance is malformed.
func LUPartial(a [][]float64, p []int, m, n int, tol float64) int {
	checkFactorInput(a, m, n, tol)
	if len(p) < m {
		panic("factor: row permutation shorter than m")
	}

	identity(p[:m])
	l := min(m, n)

	for i := 0; i < l-1; i++ {
		pv := i
		for j := i + 1; j < m; j++ {
			if math.Abs(a[pv][i]) < math.Abs(a[j][i]) {
				pv = j
			}
		}

		if pv != i {
			p[pv], p[i] = p[i], p[pv]
			a[pv], a[i] = a[i], a[pv]
		}

		if math.Abs(a[i][i]) < tol {
			return i
		}

		eliminate(a, i, m, n)
	}

	if math.Abs(a[l-1][l-1]) < tol {
		return l - 1
	}

	return l
}

// LUComplete factors the m x n matrix a in place using Gaussian elimination
// with complete (row and column) pivoting. Compact L/U storage and the row
// permutation p behave as in LUPartial; q additionally records the net
// column permutation: column j of the factored matrix came from column
// q[j] of the input.
//
// At each step the largest-magnitude entry of the entire trailing
// submatrix [i:m, i:n] is swapped into pivot position. A fully-zero
// trailing submatrix needs no special case: its best pivot is 0, which
// fails the tolerance gate and stops elimination at the current step.
//
// Flag semantics match LUPartial.
func LUComplete(a [][]float64, p, q []int, m, n int, tol float64) int {
	checkFactorInput(a, m, n, tol)
	if len(p) < m {
		panic("factor: row permutation shorter than m")
	}
	if len(q) < n {
		panic("factor: column permutation shorter than n")
	}

	identity(p[:m])
	identity(q[:n])
	l := min(m, n)

	for i := 0; i < l-1; i++ {
		pr, pc := i, i
		for j := i; j < m; j++ {
			for k := i; k < n; k++ {
				if math.Abs(a[pr][pc]) < math.Abs(a[j][k]) {
					pr, pc = j, k
				}
			}
		}

		if pr != i {
			p[pr], p[i] = p[i], p[pr]
			a[pr], a[i] = a[i], a[pr]
		}

		if pc != i {
			q[pc], q[i] = q[i], q[pc]
			// Rows own their storage, so a column exchange copies one
			// entry per row.
			for j := 0; j < m; j++ {
				a[j][i], a[j][pc] = a[j][pc], a[j][i]
			}
		}

		if math.Abs(a[i][i]) < tol {
			return i
		}

		eliminate(a, i, m, n)
	}

	if math.Abs(a[l-1][l-1]) < tol {
		return l - 1
	}

	return l
}

// LUInt factors the n x n integer matrix a in place with row-only pivoting
// and no tolerance gate, recording the net row permutation in p. The pivot
// chosen at each step is the largest entry of the active column by signed
// comparison, and multipliers use truncating integer division, so the
// result is only meaningful for inputs whose elimination steps divide
// exactly. Callers wanting stability detection should convert to float64
// and use LUPartial.
func LUInt(a [][]int64, p []int, n int) {
	if n < 1 {
		panic("factor: dimensions must be positive")
	}
	if len(a) < n {
		panic("factor: matrix has too few rows")
	}
	if len(p) < n {
		panic("factor: row permutation shorter than n")
	}

	identity(p[:n])

	for i := 0; i < n-1; i++ {
		pv := i
		for j := i + 1; j < n; j++ {
			if a[pv][i] < a[j][i] {
				pv = j
			}
		}

		p[pv], p[i] = p[i], p[pv]
		a[pv], a[i] = a[i], a[pv]

		for j := i + 1; j < n; j++ {
			a[j][i] /= a[i][i]
			for k := i + 1; k < n; k++ {
				a[j][k] -= a[j][i] * a[i][k]
			}
		}
	}
}

// eliminate applies one Gaussian elimination step below pivot row i,
// storing multipliers in the pivot column (compact L).
func eliminate(a [][]float64, i, m, n int) {
	for j := i + 1; j < m; j++ {
		a[j][i] /= a[i][i]
		for k := i + 1; k < n; k++ {
			a[j][k] -= a[j][i] * a[i][k]
		}
	}
}

// identity fills p with the identity permutation.
func identity(p []int) {
	for i := range p {
		p[i] = i
	}
}

func checkFactorInput(a [][]float64, m, n int, tol float64) {
	if m < 1 || n < 1 {
		panic("factor: dimensions must be positive")
	}
	if tol < 0 || math.IsNaN(tol) {
		panic("factor: tolerance must be non-negative")
	}
	if len(a) < m {
		panic("factor: matrix has too few rows")
	}
	for i := 0; i < m; i++ {
		if len(a[i]) < n {
			panic("factor: matrix has a short row")
		}
	}
}
