// SPDX-License-Identifier: MIT
// Package filter: the three entry points and the shared pipeline.
//
// Each entry point validates parameters, normalizes its input shape through
// the temporal package, then runs the common aggregate → fit → test
// pipeline. All-or-nothing: any failure surfaces immediately and nothing
// half-computed escapes. There are no retries — an identical deterministic
// solve would fail identically; change Method or the input instead.

package filter

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yoshitaka-ogisu/ST-filter/fitness"
	"github.com/yoshitaka-ogisu/ST-filter/solver"
	"github.com/yoshitaka-ogisu/ST-filter/temporal"
)

// FromSnapshots filters significant ties from a sequence of n×n binary
// symmetric snapshot matrices; T = len(snapshots).
//
// Errors: fitness.ErrBadAlpha, fitness.ErrUnknownJudge,
// solver.ErrUnknownMethod, solver.ErrBadTolerance, solver.ErrBadBudget,
// temporal input sentinels, and convergence failures from the calibration.
func FromSnapshots(snapshots []*mat.Dense, alpha float64, opts *Options) (*Result, error) {
	o, err := resolve(alpha, opts)
	if err != nil {
		return nil, err
	}
	agg, err := temporal.FromSnapshots(snapshots)
	if err != nil {
		return nil, err
	}

	return run(agg, alpha, o)
}

// FromEdgeList filters significant ties from (snapshot, a, b) rows.
// T is the number of distinct snapshot ids; see temporal.FromEdgeList for
// the dedup and label-ordering semantics. Result.Nodes carries the label
// list in activity order when the input was labeled.
//
// Errors: as FromSnapshots, plus the edge-list sentinels
// (temporal.ErrEmptyEdgeList, temporal.ErrSelfLoop, temporal.ErrBlankLabel).
func FromEdgeList(edges []temporal.Edge, alpha float64, opts *Options) (*Result, error) {
	o, err := resolve(alpha, opts)
	if err != nil {
		return nil, err
	}
	agg, err := temporal.FromEdgeList(edges)
	if err != nil {
		return nil, err
	}

	return run(agg, alpha, o)
}

// FromAggregate filters significant ties from a precomputed aggregate
// matrix and an explicit period count. The matrix is validated
// (symmetric, zero diagonal, integer counts within [0, periods]), never
// corrected.
//
// Errors: as FromSnapshots, plus temporal.ErrBadPeriods and the aggregate
// validation sentinels.
func FromAggregate(counts *mat.Dense, periods int, alpha float64, opts *Options) (*Result, error) {
	o, err := resolve(alpha, opts)
	if err != nil {
		return nil, err
	}
	agg, err := temporal.FromCounts(counts, periods)
	if err != nil {
		return nil, err
	}

	return run(agg, alpha, o)
}

// resolve applies defaults and validates alpha and the option domains
// before any work is done.
func resolve(alpha float64, opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return o, fitness.ErrBadAlpha
	}
	if err := o.validate(); err != nil {
		return o, err
	}

	return o, nil
}

// run executes the shared pipeline on a canonical aggregate.
func run(agg *temporal.Aggregate, alpha float64, o Options) (*Result, error) {
	sopts := solver.Options{Tolerance: o.Tolerance, MaxIterations: o.MaxIterations}
	model, err := fitness.Fit(agg, o.Method, &sopts)
	if err != nil {
		return nil, err
	}

	pvals, err := model.PValues(agg)
	if err != nil {
		return nil, err
	}
	sig, err := model.Significant(agg, alpha, o.Judge)
	if err != nil {
		return nil, err
	}

	return &Result{
		Significant: sig,
		Aggregate:   agg.Dense(),
		PValues:     pvals,
		Activities:  model.Activities(),
		Nodes:       agg.Labels(),
	}, nil
}
