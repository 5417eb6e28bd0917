// SPDX-License-Identifier: MIT
// Package fitness: null-model calibration.
//
// The calibration system is n coupled equations in n unknowns — every θ_j
// appears in every residual — so it is solved jointly, never per-node.
// Residual for node i:
//
//	residual_i(θ) = Σ_{j≠i} T·p_ij(θ) − rowsum_i,  p_ij = θ_iθ_j/(1+θ_iθ_j)
//
// Isolated nodes are pinned to θ=0 up front and excluded from the system.
// The first guess is the configuration-model heuristic
// θ_i⁰ = rowsum_i / √(T·Σ_k rowsum_k).

package fitness

import (
	"fmt"
	"math"

	"github.com/yoshitaka-ogisu/ST-filter/solver"
	"github.com/yoshitaka-ogisu/ST-filter/temporal"
)

// Fit calibrates the null model against agg using the selected solver
// back-end. A nil opts means solver.DefaultOptions().
//
// Fit returns a Model only when the maximum calibration residual is below
// opts.Tolerance. Solver failures (including budget exhaustion,
// solver.ErrNoConvergence) pass through wrapped; a residual check failure
// after solving surfaces as ErrNotConverged. Either way no partial model
// escapes.
//
// Complexity: O(n²) per residual evaluation on the non-isolated node set.
func Fit(agg *temporal.Aggregate, method solver.Method, opts *solver.Options) (*Model, error) {
	if agg == nil {
		return nil, ErrNilAggregate
	}

	n := agg.N()
	periods := float64(agg.Periods())
	rowSums := agg.RowSums()

	// Pin isolated nodes to θ=0 and solve only over the active set.
	active := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if rowSums[i] > 0 {
			active = append(active, i)
		}
	}

	theta := make([]float64, n)
	if len(active) == 0 {
		return &Model{theta: theta, periods: agg.Periods()}, nil
	}

	residual := calibrationResidual(active, rowSums, periods)

	// Configuration-model first guess.
	total := 0.0
	for _, s := range rowSums {
		total += s
	}
	scale := math.Sqrt(periods * total)
	guess := make([]float64, len(active))
	for a, i := range active {
		guess[a] = rowSums[i] / scale
	}

	x, err := solver.Solve(residual, guess, method, opts)
	if err != nil {
		return nil, fmt.Errorf("fitness: calibration: %w", err)
	}

	// θ is identified only up to a sign flip per component (residuals see θ
	// only through pairwise products); reflect to the non-negative branch
	// and verify the residual again before accepting.
	for a := range x {
		x[a] = math.Abs(x[a])
	}
	tolerance := solver.DefaultOptions().Tolerance
	if opts != nil {
		tolerance = opts.Tolerance
	}
	check := make([]float64, len(active))
	residual(x, check)
	for _, r := range check {
		if math.Abs(r) >= tolerance || math.IsNaN(r) {
			return nil, fmt.Errorf("fitness: residual %.3e above tolerance after sign normalization: %w",
				math.Abs(r), ErrNotConverged)
		}
	}

	for a, i := range active {
		theta[i] = x[a]
	}

	return &Model{theta: theta, periods: agg.Periods()}, nil
}

// calibrationResidual builds the joint residual over the active node set.
// Isolated nodes contribute p=0 to every sum and are omitted outright.
func calibrationResidual(active []int, rowSums []float64, periods float64) solver.Residual {
	return func(x, out []float64) {
		for a, i := range active {
			expected := 0.0
			for b := range active {
				if a == b {
					continue
				}
				u := x[a] * x[b]
				expected += periods * u / (1 + u)
			}
			out[a] = expected - rowSums[i]
		}
	}
}
