// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

package factor

import "math"

// QR factors the m x n matrix a in place via Householder reflections
// applied across rows: step i builds a reflector from the entries of row i
// over columns [i, n) and applies it to every row below. The formulation
// is row-oriented because the calling runtime hands this kernel the
// transpose of its logical matrix; reflecting across rows here is
// reflecting across columns there.
//
// On return, for each completed step i:
//
//   - a[i][i] holds -s*norm, the new diagonal entry of the triangular
//     factor (s is the sign of the original a[i][i], tie toward +1, chosen
//     to avoid cancellation);
//   - a[i][i+1:n] holds the reflector's remaining components scaled by
//     1/u1, where u1 = a[i][i] + s*norm;
//   - v[i] holds the reflector scale u1/(s*norm).
//
// The orthogonal factor is recoverable from v and the stored components;
// see the package tests for the reconstruction.
//
// A reflector norm below tol stops elimination and returns that step
// index. After the loop, a square matrix whose final diagonal magnitude is
// below tol returns n - 1; otherwise the flag is m (full column rank in
// the caller's orientation).
//
// v must have at least min(m, n-1) entries.
func QR(a [][]float64, v []float64, m, n int, tol float64) int {
	checkFactorInput(a, m, n, tol)
	l := min(m, n-1)
	if len(v) < l {
		panic("factor: reflector vector shorter than min(m, n-1)")
	}

	for i := 0; i < l; i++ {
		s := 1.0
		if a[i][i] < 0 {
			s = -1.0
		}

		norm := 0.0
		for j := i; j < n; j++ {
			norm += a[i][j] * a[i][j]
		}
		norm = math.Sqrt(norm)

		if norm < tol {
			return i
		}

		u1 := a[i][i] + s*norm
		v[i] = u1 / (s * norm)
		a[i][i] = -s * norm
		for j := i + 1; j < n; j++ {
			a[i][j] /= u1
		}

		for j := i + 1; j < m; j++ {
			t := a[j][i]
			for k := i + 1; k < n; k++ {
				t += a[i][k] * a[j][k]
			}

			a[j][i] -= t * v[i]
			for k := i + 1; k < n; k++ {
				a[j][k] -= t * v[i] * a[i][k]
			}
		}
	}

	if n == m && math.Abs(a[n-1][n-1]) < tol {
		return n - 1
	}

	return m
}
