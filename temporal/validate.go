// SPDX-License-Identifier: MIT
// Package temporal: canonical validators shared by the constructors.
// Each validator checks exactly one structural property and returns a plain
// sentinel; constructors wrap with positional context at the call site so
// error messages name the offending snapshot or cell.

package temporal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateSquare ensures m is non-nil and square, returning its order.
func validateSquare(m *mat.Dense) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return 0, ErrNonSquare
	}

	return r, nil
}

// validateSymmetric ensures m[i][j] == m[j][i] exactly.
// Runs over the upper triangle only.
func validateSymmetric(m *mat.Dense, n int) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.At(i, j) != m.At(j, i) {
				return ErrAsymmetry
			}
		}
	}

	return nil
}

// validateZeroDiagonal ensures m[i][i] == 0 exactly.
func validateZeroDiagonal(m *mat.Dense, n int) error {
	for i := 0; i < n; i++ {
		if m.At(i, i) != 0 {
			return ErrNonzeroDiagonal
		}
	}

	return nil
}

// validateBinary ensures every entry of m is exactly 0 or 1.
func validateBinary(m *mat.Dense, n int) error {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := m.At(i, j); v != 0 && v != 1 {
				return ErrNonBinary
			}
		}
	}

	return nil
}

// validateCounts ensures every entry is a non-negative integer not
// exceeding the period count.
func validateCounts(m *mat.Dense, n, periods int) error {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			switch {
			case v != math.Trunc(v) || math.IsNaN(v) || math.IsInf(v, 0):
				return ErrNonInteger
			case v < 0:
				return ErrNegativeCount
			case v > float64(periods):
				return ErrCountRange
			}
		}
	}

	return nil
}
