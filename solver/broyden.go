// SPDX-License-Identifier: MIT
// Package solver: Broyden's good method.
//
// The inverse Jacobian approximation B ≈ J⁻¹ is seeded from one
// finite-difference Jacobian and kept current with Sherman–Morrison
// rank-one updates, so every later iteration costs O(n²) instead of the
// n extra residual evaluations a fresh Jacobian would need. A degenerate
// update (denominator collapsing) triggers a reseed from finite
// differences rather than a corrupt B.

package solver

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// broydenReseed is the update-denominator magnitude below which the
// rank-one correction is abandoned and B reseeded.
const broydenReseed = 1e-14

func solveBroyden(f Residual, x0 []float64, o Options) ([]float64, float64, error) {
	n := len(x0)
	x := append([]float64(nil), x0...)
	r := make([]float64, n)
	f(x, r)
	norm := normInf(r)

	binv, ok := invertJacobian(f, x, r, n)
	if !ok {
		binv = eye(n)
	}

	dx := make([]float64, n)
	df := make([]float64, n)
	for it := 0; it < o.MaxIterations; it++ {
		if norm < o.Tolerance {
			return x, norm, nil
		}

		// d = −B·F(x)
		var dv mat.VecDense
		dv.MulVec(binv, mat.NewVecDense(n, r))
		dir := negate(dv.RawVector().Data)
		if !allFinite(dir) {
			binv = eye(n)
			dir = negate(r)
		}

		xNew, rNew, normNew := backtrack(f, x, dir, r, norm)

		floats.SubTo(dx, xNew, x)
		floats.SubTo(df, rNew, r)
		x, r, norm = xNew, rNew, normNew

		// Sherman–Morrison: B ← B + (Δx − B·ΔF)·(Δxᵀ·B)/(Δxᵀ·B·ΔF)
		var bdf mat.VecDense
		bdf.MulVec(binv, mat.NewVecDense(n, df))
		denom := floats.Dot(dx, bdf.RawVector().Data)
		if denom > -broydenReseed && denom < broydenReseed {
			if fresh, okInv := invertJacobian(f, x, r, n); okInv {
				binv = fresh
			}

			continue
		}

		u := make([]float64, n)
		floats.SubTo(u, dx, bdf.RawVector().Data)
		var vt mat.VecDense
		vt.MulVec(binv.T(), mat.NewVecDense(n, dx))

		next := &mat.Dense{}
		next.RankOne(binv, 1/denom, mat.NewVecDense(n, u), &vt)
		binv = next
	}
	if norm < o.Tolerance {
		return x, norm, nil
	}

	return nil, norm, ErrNoConvergence
}

// invertJacobian builds the finite-difference Jacobian at x and inverts it.
// ok is false when the Jacobian is numerically singular.
func invertJacobian(f Residual, x, fx []float64, n int) (*mat.Dense, bool) {
	jac := fdJacobian(f, x, fx)
	inv := mat.NewDense(n, n, nil)
	if err := inv.Inverse(jac); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, false
		}
	}

	return inv, true
}

// eye returns the n×n identity.
func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}
