// SPDX-License-Identifier: MIT
// Package solver: dense Newton/steepest-descent hybrid (Powell style).
//
// Each iteration rebuilds the finite-difference Jacobian and takes the
// Newton direction from a dense least-squares solve. When the solve breaks
// down or the Newton direction makes no headway against ‖F‖∞, the iteration
// retries along the steepest-descent direction of ½‖F‖₂², which always
// exists. Most robust back-end on small or ill-scaled systems; O(n)
// residual evaluations plus an O(n³) solve per iteration.

package solver

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

func solvePowell(f Residual, x0 []float64, o Options) ([]float64, float64, error) {
	n := len(x0)
	x := append([]float64(nil), x0...)
	r := make([]float64, n)
	f(x, r)
	norm := normInf(r)

	for it := 0; it < o.MaxIterations; it++ {
		if norm < o.Tolerance {
			return x, norm, nil
		}

		jac := fdJacobian(f, x, r)
		dir := newtonDirection(jac, r, n)
		if dir == nil {
			dir = descentDirection(jac, r, n)
		}

		xNew, rNew, normNew := backtrack(f, x, dir, r, norm)
		if normNew >= norm {
			// Newton stalled; retry along the gradient of ½‖F‖₂².
			dir = descentDirection(jac, r, n)
			xNew, rNew, normNew = backtrack(f, x, dir, r, norm)
		}
		x, r, norm = xNew, rNew, normNew
	}
	if norm < o.Tolerance {
		return x, norm, nil
	}

	return nil, norm, ErrNoConvergence
}

// newtonDirection solves J·d = −F(x) by dense least squares. Returns nil on
// a rank-deficient system or a non-finite solution.
func newtonDirection(jac *mat.Dense, fx []float64, n int) []float64 {
	var d mat.VecDense
	if err := d.SolveVec(jac, mat.NewVecDense(n, negate(fx))); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil
		}
	}
	dir := append([]float64(nil), d.RawVector().Data...)
	if !allFinite(dir) {
		return nil
	}

	return dir
}

// descentDirection returns −Jᵀ·F(x), the steepest-descent direction of the
// merit function ½‖F‖₂². Falls back to −F(x) if even that is non-finite.
func descentDirection(jac *mat.Dense, fx []float64, n int) []float64 {
	var g mat.VecDense
	g.MulVec(jac.T(), mat.NewVecDense(n, fx))
	dir := negate(g.RawVector().Data)
	if !allFinite(dir) {
		return negate(fx)
	}

	return dir
}
