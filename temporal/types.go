// SPDX-License-Identifier: MIT
// Package temporal: canonical aggregate form and sentinel error set.
// This file defines ONLY the Aggregate/Edge types, their accessors and the
// package-level sentinel errors. All constructors MUST return these
// sentinels and tests MUST check them via errors.Is. Panics are reserved
// for programmer errors (out-of-range indices on accessors).

package temporal

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the temporal constructors.
var (
	// ErrNoSnapshots indicates an empty snapshot sequence.
	ErrNoSnapshots = errors.New("temporal: no snapshots provided")

	// ErrNilMatrix indicates a nil *mat.Dense input.
	ErrNilMatrix = errors.New("temporal: nil matrix")

	// ErrNonSquare indicates a non-square input matrix.
	ErrNonSquare = errors.New("temporal: matrix is not square")

	// ErrShapeMismatch indicates snapshots of differing order in one sequence.
	ErrShapeMismatch = errors.New("temporal: snapshot shapes differ")

	// ErrNonBinary indicates a snapshot entry other than 0 or 1.
	ErrNonBinary = errors.New("temporal: snapshot entry is not 0 or 1")

	// ErrAsymmetry indicates a matrix that is not exactly symmetric.
	ErrAsymmetry = errors.New("temporal: matrix is not symmetric")

	// ErrNonzeroDiagonal indicates a non-zero entry on the diagonal.
	ErrNonzeroDiagonal = errors.New("temporal: diagonal is not zero")

	// ErrNonInteger indicates a fractional entry in an aggregate matrix.
	ErrNonInteger = errors.New("temporal: count is not an integer")

	// ErrNegativeCount indicates a negative entry in an aggregate matrix.
	ErrNegativeCount = errors.New("temporal: negative count")

	// ErrCountRange indicates a pair count exceeding the period count T.
	ErrCountRange = errors.New("temporal: count exceeds period count")

	// ErrBadPeriods indicates a non-positive period count T.
	ErrBadPeriods = errors.New("temporal: period count must be >= 1")

	// ErrEmptyEdgeList indicates an edge list with no rows.
	ErrEmptyEdgeList = errors.New("temporal: empty edge list")

	// ErrSelfLoop indicates an edge-list row with identical endpoints;
	// loops cannot be represented under the zero-diagonal invariant.
	ErrSelfLoop = errors.New("temporal: self-loop edge")

	// ErrBlankLabel indicates an edge-list row with an empty snapshot id
	// or node label.
	ErrBlankLabel = errors.New("temporal: blank snapshot id or node label")
)

// Edge is one edge-list row: node A and node B were tied during the
// snapshot identified by Snapshot. Labels are free-form strings; rows whose
// node labels all parse as integers are treated as integer-keyed input
// (see FromEdgeList for the resulting index mapping).
type Edge struct {
	Snapshot string
	A, B     string
}

// Aggregate is the canonical sufficient statistic of a temporal network:
// the symmetric n×n matrix of per-pair tie counts over Periods()
// observation periods. Values are immutable after construction; every
// accessor either copies or returns a scalar.
type Aggregate struct {
	n       int
	periods int
	counts  []int    // row-major n×n, symmetric, zero diagonal
	labels  []string // index→label; nil when indices are canonical 0..n-1
}

// N returns the number of nodes.
func (a *Aggregate) N() int { return a.n }

// Periods returns the number of observation periods T.
func (a *Aggregate) Periods() int { return a.periods }

// Count returns the number of periods in which i–j was tied.
// Panics if i or j is out of range (programmer error).
func (a *Aggregate) Count(i, j int) int {
	return a.counts[i*a.n+j]
}

// RowSum returns the aggregate tie count of node i (its weighted degree in
// the aggregate network). Panics if i is out of range.
func (a *Aggregate) RowSum(i int) int {
	sum := 0
	for j := 0; j < a.n; j++ {
		sum += a.counts[i*a.n+j]
	}

	return sum
}

// RowSums returns all row sums as a fresh float64 slice, in index order.
func (a *Aggregate) RowSums() []float64 {
	sums := make([]float64, a.n)
	for i := 0; i < a.n; i++ {
		sums[i] = float64(a.RowSum(i))
	}

	return sums
}

// Labels returns a copy of the node labels in index order, or nil when the
// input was unlabeled (snapshots, precomputed counts, or an edge list whose
// integer ids already form the dense range 0..n-1).
func (a *Aggregate) Labels() []string {
	if a.labels == nil {
		return nil
	}
	out := make([]string, len(a.labels))
	copy(out, a.labels)

	return out
}

// Dense exports the counts as a fresh *mat.Dense; mutating the returned
// matrix does not affect the Aggregate.
func (a *Aggregate) Dense() *mat.Dense {
	data := make([]float64, len(a.counts))
	for k, c := range a.counts {
		data[k] = float64(c)
	}

	return mat.NewDense(a.n, a.n, data)
}
