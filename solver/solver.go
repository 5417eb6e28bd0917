// SPDX-License-Identifier: MIT
// Package solver: entry point, dispatch and the numerics shared by all
// back-ends (finite differences, line search, norms).

package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// sqrtEps is the square root of the float64 machine epsilon, the standard
// step scale for forward-difference derivatives.
var sqrtEps = math.Sqrt(2.220446049250313e-16)

// Solve finds x with ‖F(x)‖∞ < opts.Tolerance starting from x0, using the
// selected back-end. A nil opts means DefaultOptions(). x0 is not mutated;
// the returned slice is freshly allocated.
//
// Errors: ErrNilResidual, ErrEmptyGuess, ErrBadTolerance, ErrBadBudget,
// ErrUnknownMethod, ErrNoConvergence (wrapped with the method name and the
// final residual norm).
func Solve(f Residual, x0 []float64, method Method, opts *Options) ([]float64, error) {
	if f == nil {
		return nil, ErrNilResidual
	}
	if len(x0) == 0 {
		return nil, ErrEmptyGuess
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	var (
		x    []float64
		norm float64
		err  error
	)
	switch method {
	case Krylov:
		x, norm, err = solveKrylov(f, x0, o)
	case Broyden:
		x, norm, err = solveBroyden(f, x0, o)
	case Powell:
		x, norm, err = solvePowell(f, x0, o)
	default:
		return nil, ErrUnknownMethod
	}
	if err != nil {
		return nil, fmt.Errorf("%s: residual %.3e after %d iterations: %w",
			method, norm, o.MaxIterations, err)
	}

	return x, nil
}

// normInf returns ‖v‖∞.
func normInf(v []float64) float64 {
	return floats.Norm(v, math.Inf(1))
}

// lineSearchShrink halves the step at most this many times (2⁻²⁵ ≈ 3e-8).
const lineSearchShrink = 25

// backtrack performs an Armijo-style backtracking line search on ‖F‖∞ along
// dir from x. It returns the first trial achieving sufficient decrease, or
// the best trial seen, or (x, r0, norm0) unchanged when every trial is
// non-finite. Progress is not guaranteed; stagnation is the outer loop's
// budget to burn.
func backtrack(f Residual, x, dir, r0 []float64, norm0 float64) (xNew, rNew []float64, norm float64) {
	n := len(x)
	bestX, bestR := x, r0
	bestNorm := norm0

	step := 1.0
	trialX := make([]float64, n)
	trialR := make([]float64, n)
	for k := 0; k <= lineSearchShrink; k++ {
		copy(trialX, x)
		floats.AddScaled(trialX, step, dir)
		f(trialX, trialR)

		trialNorm := normInf(trialR)
		if !math.IsNaN(trialNorm) && !math.IsInf(trialNorm, 0) {
			if trialNorm <= (1-1e-4*step)*norm0 {
				return trialX, trialR, trialNorm
			}
			if trialNorm < bestNorm {
				bestNorm = trialNorm
				bestX = append([]float64(nil), trialX...)
				bestR = append([]float64(nil), trialR...)
			}
		}
		step /= 2
	}

	return bestX, bestR, bestNorm
}

// fdJacobian builds the dense forward-difference Jacobian of f at x, given
// fx = F(x). Column j uses step h = √ε·max(|x_j|, 1).
func fdJacobian(f Residual, x, fx []float64) *mat.Dense {
	n := len(x)
	jac := mat.NewDense(n, n, nil)
	probe := append([]float64(nil), x...)
	out := make([]float64, n)
	for j := 0; j < n; j++ {
		h := sqrtEps * math.Max(math.Abs(x[j]), 1)
		probe[j] = x[j] + h
		f(probe, out)
		for i := 0; i < n; i++ {
			jac.Set(i, j, (out[i]-fx[i])/h)
		}
		probe[j] = x[j]
	}

	return jac
}

// negate returns -v in a fresh slice.
func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, e := range v {
		out[i] = -e
	}

	return out
}
