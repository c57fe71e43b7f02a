// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

// Package factor provides in-place dense matrix factorizations: LU with
// partial or complete pivoting, Cholesky, and Householder QR.
//
// All routines mutate their input matrix in place, storing the factors in
// compact form, and report their outcome through a returned flag rather
// than an error:
//
//   - flag equal to the routine's success sentinel (n, m, or min(m,n))
//     means the factorization completed;
//   - flag i below the sentinel means elimination stopped at step i because
//     a pivot, diagonal, or reflector norm fell below the tolerance. The
//     flag is the effective rank the caller can report.
//
// A factorization that stops early leaves all elimination work completed
// through the failing step in the matrix; partial mutation is permanent.
//
// The routines are single-threaded. Callers must serialize access to a
// given matrix across concurrent invocations.
//
// Row exchanges during pivoting swap row slice headers and are constant
// time; column exchanges (complete pivoting only) copy one entry per row,
// since rows are the unit of ownership.
package factor
