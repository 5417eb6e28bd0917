// SPDX-License-Identifier: MIT
// Package solver: matrix-free Newton–GMRES back-end.
//
// Outer loop: damped Newton. Inner loop: GMRES on the Newton system
// J(x)·d = −F(x), with Jacobian-vector products approximated by forward
// differences, so the Jacobian is never formed. The Krylov basis is built
// by Arnoldi with modified Gram–Schmidt; the small Hessenberg least-squares
// problem is solved densely.

package solver

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// maxKrylovDim caps the Krylov subspace per Newton step. Systems larger
// than this get an inexact Newton direction, which the line search absorbs.
const maxKrylovDim = 30

// arnoldiBreakdown is the basis-vector norm below which Arnoldi stops:
// the Krylov subspace is invariant and the least-squares solve is exact.
const arnoldiBreakdown = 1e-14

func solveKrylov(f Residual, x0 []float64, o Options) ([]float64, float64, error) {
	n := len(x0)
	x := append([]float64(nil), x0...)
	r := make([]float64, n)
	f(x, r)
	norm := normInf(r)

	for it := 0; it < o.MaxIterations; it++ {
		if norm < o.Tolerance {
			return x, norm, nil
		}

		dir := gmres(f, x, r, n)
		if dir == nil {
			// Krylov solve broke down; fall back to the residual direction.
			dir = negate(r)
		}
		x, r, norm = backtrack(f, x, dir, r, norm)
	}
	if norm < o.Tolerance {
		return x, norm, nil
	}

	return nil, norm, ErrNoConvergence
}

// gmres approximately solves J(x)·d = −F(x) in a Krylov subspace of
// dimension ≤ min(n, maxKrylovDim), where fx = F(x). Returns nil when the
// subspace solve fails (caller falls back to a safeguarded direction).
func gmres(f Residual, x, fx []float64, n int) []float64 {
	b := negate(fx)
	beta := floats.Norm(b, 2)
	if beta == 0 {
		return make([]float64, n)
	}

	m := n
	if m > maxKrylovDim {
		m = maxKrylovDim
	}

	// Arnoldi with modified Gram–Schmidt: basis vectors in basis,
	// Hessenberg columns in hcols (column j holds H[0..j+1][j]).
	basis := make([][]float64, 1, m+1)
	basis[0] = make([]float64, n)
	floats.AddScaled(basis[0], 1/beta, b)
	hcols := make([][]float64, 0, m)

	w := make([]float64, n)
	dim := 0
	for k := 0; k < m; k++ {
		jacVec(f, x, fx, basis[k], w)

		hcol := make([]float64, k+2)
		for i := 0; i <= k; i++ {
			hcol[i] = floats.Dot(basis[i], w)
			floats.AddScaled(w, -hcol[i], basis[i])
		}
		hcol[k+1] = floats.Norm(w, 2)
		hcols = append(hcols, hcol)
		dim = k + 1

		if hcol[k+1] < arnoldiBreakdown {
			break // invariant subspace reached; solve is exact there
		}
		next := make([]float64, n)
		floats.AddScaled(next, 1/hcol[k+1], w)
		basis = append(basis, next)
	}

	// Least squares: minimize ‖β·e₁ − H̄·y‖₂ over the built subspace.
	hbar := mat.NewDense(dim+1, dim, nil)
	for j, col := range hcols {
		for i := range col {
			hbar.Set(i, j, col[i])
		}
	}
	rhs := mat.NewDense(dim+1, 1, nil)
	rhs.Set(0, 0, beta)

	var y mat.Dense
	if err := y.Solve(hbar, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil
		}
	}

	d := make([]float64, n)
	for j := 0; j < dim; j++ {
		floats.AddScaled(d, y.At(j, 0), basis[j])
	}
	if !allFinite(d) {
		return nil
	}

	return d
}

// jacVec writes the forward-difference Jacobian-vector product
// J(x)·v ≈ (F(x+εv) − F(x))/ε into out, where fx = F(x).
func jacVec(f Residual, x, fx, v, out []float64) {
	vn := floats.Norm(v, 2)
	if vn == 0 {
		for i := range out {
			out[i] = 0
		}

		return
	}
	eps := sqrtEps * (1 + floats.Norm(x, 2)) / vn

	probe := append([]float64(nil), x...)
	floats.AddScaled(probe, eps, v)
	f(probe, out)
	for i := range out {
		out[i] = (out[i] - fx[i]) / eps
	}
}

// allFinite reports whether v contains no NaN or ±Inf.
func allFinite(v []float64) bool {
	for _, e := range v {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return false
		}
	}

	return true
}
