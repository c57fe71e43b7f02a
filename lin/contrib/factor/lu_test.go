// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

package factor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-linalg/lin"
)

const tol = 1e-10

// buildLU expands the compact in-place storage into explicit L (unit lower
// trapezoid) and U (upper trapezoid) factors.
func buildLU(a [][]float64, m, n int) (lo, up [][]float64) {
	l := min(m, n)
	lo = lin.NewMatrix[float64](m, l)
	up = lin.NewMatrix[float64](l, n)

	for i := 0; i < m; i++ {
		for j := 0; j < min(i, l); j++ {
			lo[i][j] = a[i][j]
		}
		if i < l {
			lo[i][i] = 1
		}
	}
	for i := 0; i < l; i++ {
		for j := i; j < n; j++ {
			up[i][j] = a[i][j]
		}
	}

	return lo, up
}

// mulRef is a plain reference multiply for reconstruction checks.
func mulRef(x, y [][]float64, l, m, n int) [][]float64 {
	c := lin.NewMatrix[float64](l, n)
	for i := 0; i < l; i++ {
		for k := 0; k < m; k++ {
			for j := 0; j < n; j++ {
				c[i][j] += x[i][k] * y[k][j]
			}
		}
	}
	return c
}

// TestLUPartialPivotFixture is the hand-verifiable fixture: on
// [[4,3],[6,3]] the pivot scan prefers |6| over |4|, so row 1 is swapped
// ahead, the permutation records [1,0], and the stored multiplier is 4/6.
func TestLUPartialPivotFixture(t *testing.T) {
	a := [][]float64{
		{4, 3},
		{6, 3},
	}
	p := make([]int, 2)

	flag := LUPartial(a, p, 2, 2, tol)

	require.Equal(t, 2, flag)
	require.Equal(t, []int{1, 0}, p)
	require.InDelta(t, 6.0, a[0][0], 1e-15)
	require.InDelta(t, 3.0, a[0][1], 1e-15)
	require.InDelta(t, 4.0/6.0, a[1][0], 1e-15)
	require.InDelta(t, 3.0-(4.0/6.0)*3.0, a[1][1], 1e-15)
}

func TestLUPartialZeroColumn(t *testing.T) {
	a := [][]float64{
		{0, 1},
		{0, 2},
	}
	p := make([]int, 2)

	flag := LUPartial(a, p, 2, 2, tol)
	require.Equal(t, 0, flag, "no pivot reachable in a zero column")
}

func TestLUPartialReconstruction(t *testing.T) {
	orig := [][]float64{
		{2, 1, 1, 0},
		{4, 3, 3, 1},
		{8, 7, 9, 5},
		{6, 7, 9, 8},
	}
	a := lin.CloneMatrix(orig)
	p := make([]int, 4)

	flag := LUPartial(a, p, 4, 4, tol)
	require.Equal(t, 4, flag)

	lo, up := buildLU(a, 4, 4)
	lu := mulRef(lo, up, 4, 4, 4)

	// Row i of the factored matrix came from row p[i] of the input.
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.InDelta(t, orig[p[i]][j], lu[i][j], 1e-12, "at [%d][%d]", i, j)
		}
	}
}

// TestLUPartialWide exercises the m < n trapezoid path with exact values.
func TestLUPartialWide(t *testing.T) {
	a := [][]float64{
		{2, 4, 6},
		{4, 5, 6},
	}
	p := make([]int, 2)

	flag := LUPartial(a, p, 2, 3, tol)

	require.Equal(t, 2, flag)
	require.Equal(t, []int{1, 0}, p)
	require.InDelta(t, 4.0, a[0][0], 1e-15)
	require.InDelta(t, 0.5, a[1][0], 1e-15)
	require.InDelta(t, 1.5, a[1][1], 1e-15)
	require.InDelta(t, 3.0, a[1][2], 1e-15)
}

func TestLUPartialStopsMidway(t *testing.T) {
	// Rank-1 3x3: the first elimination step zeroes the whole trailing
	// submatrix, so step 1 finds no pivot above tolerance.
	a := [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{3, 6, 9},
	}
	p := make([]int, 3)

	flag := LUPartial(a, p, 3, 3, tol)
	require.Equal(t, 1, flag)

	// Completed work through the failing step stays in place: step 0's
	// multipliers are recorded.
	require.InDelta(t, 3.0, a[0][0], 1e-15)
	require.InDelta(t, 2.0/3.0, a[1][0], 1e-15)
}

func TestLUCompleteGlobalPivot(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{3, 8},
	}
	p := make([]int, 2)
	q := make([]int, 2)

	flag := LUComplete(a, p, q, 2, 2, tol)

	require.Equal(t, 2, flag)
	require.Equal(t, []int{1, 0}, p)
	require.Equal(t, []int{1, 0}, q)
	require.InDelta(t, 8.0, a[0][0], 1e-15)
	require.InDelta(t, 3.0, a[0][1], 1e-15)
	require.InDelta(t, 0.25, a[1][0], 1e-15)
	require.InDelta(t, 1.0-0.25*3.0, a[1][1], 1e-15)
}

// TestLUCompleteZeroRow: a 2x2 matrix with an all-zero row leaves no valid
// pivot for the final step.
func TestLUCompleteZeroRow(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{0, 0},
	}
	p := make([]int, 2)
	q := make([]int, 2)

	flag := LUComplete(a, p, q, 2, 2, tol)
	require.Less(t, flag, 2)
	require.Equal(t, 1, flag)
}

// TestLUCompleteZeroMatrix pins the fully-zero trailing submatrix boundary:
// the magnitude scan settles on a zero pivot, which fails the tolerance
// gate with no special-casing.
func TestLUCompleteZeroMatrix(t *testing.T) {
	a := lin.NewMatrix[float64](3, 3)
	p := make([]int, 3)
	q := make([]int, 3)

	flag := LUComplete(a, p, q, 3, 3, tol)
	require.Equal(t, 0, flag)
}

func TestLUCompleteReconstruction(t *testing.T) {
	orig := [][]float64{
		{1, 4, 2},
		{3, 9, 1},
		{2, 2, 7},
	}
	a := lin.CloneMatrix(orig)
	p := make([]int, 3)
	q := make([]int, 3)

	flag := LUComplete(a, p, q, 3, 3, tol)
	require.Equal(t, 3, flag)

	lo, up := buildLU(a, 3, 3)
	lu := mulRef(lo, up, 3, 3, 3)

	// Entry [i][j] of the factored matrix came from orig[p[i]][q[j]].
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, orig[p[i]][q[j]], lu[i][j], 1e-12, "at [%d][%d]", i, j)
		}
	}
}

// TestLUInt checks the legacy integer path: signed-maximum pivoting,
// truncating division, exact for exactly-divisible inputs.
func TestLUInt(t *testing.T) {
	a := [][]int64{
		{-4, 2},
		{2, 1},
	}
	p := make([]int, 2)

	LUInt(a, p, 2)

	// Signed scan picks 2 over -4, swapping row 1 up.
	require.Equal(t, []int{1, 0}, p)
	require.Equal(t, int64(2), a[0][0])
	require.Equal(t, int64(1), a[0][1])
	require.Equal(t, int64(-2), a[1][0]) // -4/2, exact
	require.Equal(t, int64(4), a[1][1])  // 2 - (-2)*1
}

func TestLUPartialShortPermutationPanics(t *testing.T) {
	a := lin.NewMatrix[float64](3, 3)
	require.Panics(t, func() {
		LUPartial(a, make([]int, 2), 3, 3, tol)
	})
}
