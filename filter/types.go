// SPDX-License-Identifier: MIT
// Package filter: options and result types.

package filter

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yoshitaka-ogisu/ST-filter/fitness"
	"github.com/yoshitaka-ogisu/ST-filter/solver"
)

// Options configures a filtering run.
//   - Judge:         significance decision rule (default fitness.PVal).
//   - Method:        solver back-end for the calibration (default solver.Krylov).
//   - Tolerance:     calibration residual tolerance (default solver.DefaultTolerance).
//   - MaxIterations: solver iteration budget (default solver.DefaultMaxIterations).
//
// Passing nil to an entry point means DefaultOptions().
type Options struct {
	Judge         fitness.Judge
	Method        solver.Method
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Judge:         fitness.PVal,
		Method:        solver.Krylov,
		Tolerance:     solver.DefaultTolerance,
		MaxIterations: solver.DefaultMaxIterations,
	}
}

// validate rejects out-of-domain options with the owning package's
// sentinel, before any aggregation or fitting work starts.
func (o Options) validate() error {
	switch o.Judge {
	case fitness.PVal, fitness.InvBinom:
	default:
		return fitness.ErrUnknownJudge
	}
	switch o.Method {
	case solver.Krylov, solver.Broyden, solver.Powell:
	default:
		return solver.ErrUnknownMethod
	}
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance <= 0 {
		return solver.ErrBadTolerance
	}
	if o.MaxIterations < 1 {
		return solver.ErrBadBudget
	}

	return nil
}

// Result is the complete output of one filtering run. All matrices are
// n×n, symmetric, zero-diagonal (NaN diagonal for PValues) and freshly
// allocated — results from different calls share nothing.
type Result struct {
	// Significant is the 0/1 significant-tie matrix (the backbone).
	Significant *mat.Dense

	// Aggregate is the observed per-pair tie-count matrix.
	Aggregate *mat.Dense

	// PValues holds the upper-tail p-value per pair; diagonal cells are
	// NaN sentinels, never evaluated.
	PValues *mat.Dense

	// Activities holds the fitted activity parameter per node, in index
	// order. Isolated nodes carry exactly 0.
	Activities []float64

	// Nodes lists the node labels in the same order as Activities. It is
	// non-nil only on the edge-list path, when the input labels are not
	// already the canonical indices 0..n-1.
	Nodes []string
}
