// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

package factor

import "math"

// Cholesky factors the symmetric n x n matrix a in place into A = R'R with
// R upper triangular. Only the upper triangle of a (diagonal included) is
// read or written; the lower triangle is never touched and may hold
// anything. On success the upper triangle holds R and the flag is n.
//
// The gate at step i is the signed test a[i][i] < tol, not |a[i][i]| < tol:
// a negative diagonal means the matrix is not positive definite and must
// stop elimination, returning i.
func Cholesky(a [][]float64, n int, tol float64) int {
	checkFactorInput(a, n, n, tol)

	for i := 0; i < n; i++ {
		if a[i][i] < tol {
			return i
		}

		for j := i + 1; j < n; j++ {
			t := a[i][j] / a[i][i]
			for k := j; k < n; k++ {
				a[j][k] -= t * a[i][k]
			}
		}

		d := math.Sqrt(a[i][i])
		for j := i; j < n; j++ {
			a[i][j] /= d
		}
	}

	return n
}
