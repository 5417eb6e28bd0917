// SPDX-License-Identifier: MIT
// Package temporal: constructors for the canonical Aggregate form.
//
// Three front ends, one output:
//   - FromSnapshots — list of n×n binary symmetric matrices, T = len(list)
//   - FromEdgeList  — (snapshot, a, b) rows, T = #distinct snapshot ids
//   - FromCounts    — precomputed aggregate matrix + explicit T, validation only
//
// All constructors are pure: they read their inputs, validate strictly and
// allocate a fresh Aggregate. Nothing is silently corrected.

package temporal

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// FromSnapshots sums a sequence of n×n binary symmetric snapshot matrices
// into an Aggregate with T = len(snapshots).
//
// Every snapshot must be square, of the same order as the first, exactly
// symmetric, zero on the diagonal, and contain only 0/1 entries.
//
// Errors: ErrNoSnapshots, ErrNilMatrix, ErrNonSquare, ErrShapeMismatch,
// ErrNonBinary, ErrAsymmetry, ErrNonzeroDiagonal.
// Complexity: O(T·n²).
func FromSnapshots(snapshots []*mat.Dense) (*Aggregate, error) {
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshots
	}

	n, err := validateSquare(snapshots[0])
	if err != nil {
		return nil, fmt.Errorf("snapshot 0: %w", err)
	}

	counts := make([]int, n*n)
	for t, snap := range snapshots {
		if err = validateSnapshot(snap, n, t); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				counts[i*n+j] += int(snap.At(i, j))
			}
		}
	}

	return &Aggregate{n: n, periods: len(snapshots), counts: counts}, nil
}

// validateSnapshot runs the per-snapshot check sequence
// (nil/square → shape → binary → symmetry → diagonal) with positional context.
func validateSnapshot(snap *mat.Dense, n, t int) error {
	order, err := validateSquare(snap)
	if err != nil {
		return fmt.Errorf("snapshot %d: %w", t, err)
	}
	if order != n {
		return fmt.Errorf("snapshot %d: %w", t, ErrShapeMismatch)
	}
	if err = validateBinary(snap, n); err != nil {
		return fmt.Errorf("snapshot %d: %w", t, err)
	}
	if err = validateSymmetric(snap, n); err != nil {
		return fmt.Errorf("snapshot %d: %w", t, err)
	}
	if err = validateZeroDiagonal(snap, n); err != nil {
		return fmt.Errorf("snapshot %d: %w", t, err)
	}

	return nil
}

// FromCounts validates a precomputed aggregate matrix against an explicit
// period count and wraps it into an Aggregate. Passthrough otherwise: the
// data is copied, never rescaled or repaired.
//
// Errors: ErrNilMatrix, ErrBadPeriods, ErrNonSquare, ErrNonInteger,
// ErrNegativeCount, ErrCountRange, ErrAsymmetry, ErrNonzeroDiagonal.
// Complexity: O(n²).
func FromCounts(counts *mat.Dense, periods int) (*Aggregate, error) {
	if periods < 1 {
		return nil, ErrBadPeriods
	}
	n, err := validateSquare(counts)
	if err != nil {
		return nil, err
	}
	if err = validateCounts(counts, n, periods); err != nil {
		return nil, err
	}
	if err = validateSymmetric(counts, n); err != nil {
		return nil, err
	}
	if err = validateZeroDiagonal(counts, n); err != nil {
		return nil, err
	}

	data := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = int(counts.At(i, j))
		}
	}

	return &Aggregate{n: n, periods: periods, counts: data}, nil
}

// FromEdgeList aggregates (snapshot, a, b) rows into an Aggregate.
//
// Semantics:
//   - T is the number of distinct snapshot ids observed — not max id + 1,
//     which would invent unobserved empty snapshots.
//   - Within one snapshot, (a,b) and (b,a) — and exact duplicates — count
//     as a single occurrence: rows are deduplicated on the unordered pair
//     before counting.
//   - The node index is stable: labels are sorted numerically when every
//     node label parses as an integer (ties on the parsed value fall back
//     to the raw string, so "01" and "1" keep distinct indices),
//     lexicographically otherwise. Labels pass through verbatim — no
//     spelling is ever rewritten.
//   - Labels() on the result is nil only when every label is byte-identical
//     to its own index ("0".."n-1", the identity mapping); any other label
//     set is returned in index order so callers can map back.
//
// Errors: ErrEmptyEdgeList, ErrBlankLabel, ErrSelfLoop.
// Complexity: O(E log E) for E rows.
func FromEdgeList(edges []Edge) (*Aggregate, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyEdgeList
	}

	// Collect distinct snapshot ids and node labels, rejecting malformed rows.
	snapIDs := make(map[string]struct{})
	labelSet := make(map[string]struct{})
	for r, e := range edges {
		if e.Snapshot == "" || e.A == "" || e.B == "" {
			return nil, fmt.Errorf("row %d: %w", r, ErrBlankLabel)
		}
		if e.A == e.B {
			return nil, fmt.Errorf("row %d (%s–%s): %w", r, e.A, e.B, ErrSelfLoop)
		}
		snapIDs[e.Snapshot] = struct{}{}
		labelSet[e.A] = struct{}{}
		labelSet[e.B] = struct{}{}
	}

	labels, canonical := orderLabels(labelSet)
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	n := len(labels)
	counts := make([]int, n*n)

	// Dedup key: snapshot id plus the unordered (min,max) index pair.
	type occurrence struct {
		snap string
		lo   int
		hi   int
	}
	seen := make(map[occurrence]struct{}, len(edges))
	for _, e := range edges {
		lo, hi := index[e.A], index[e.B]
		if lo > hi {
			lo, hi = hi, lo
		}
		occ := occurrence{snap: e.Snapshot, lo: lo, hi: hi}
		if _, dup := seen[occ]; dup {
			continue
		}
		seen[occ] = struct{}{}
		counts[lo*n+hi]++
		counts[hi*n+lo]++
	}

	agg := &Aggregate{n: n, periods: len(snapIDs), counts: counts}
	if !canonical {
		agg.labels = labels
	}

	return agg, nil
}

// orderLabels sorts the distinct node labels into the stable index order and
// reports whether the mapping is canonical (every label is byte-identical to
// its index, so no label list needs to be carried). Labels are never
// rewritten: integer-parsing ids sort by value with the raw string as
// tie-break, so distinct spellings of one value ("01" vs "1") keep distinct
// indices.
func orderLabels(set map[string]struct{}) (labels []string, canonical bool) {
	labels = make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}

	vals := make(map[string]int, len(labels))
	allInt := true
	for _, l := range labels {
		v, err := strconv.Atoi(l)
		if err != nil {
			allInt = false
			break
		}
		vals[l] = v
	}

	if !allInt {
		sort.Strings(labels)

		return labels, false
	}

	sort.Slice(labels, func(a, b int) bool {
		if vals[labels[a]] != vals[labels[b]] {
			return vals[labels[a]] < vals[labels[b]]
		}

		return labels[a] < labels[b]
	})

	canonical = true
	for k, l := range labels {
		if l != strconv.Itoa(k) {
			canonical = false
			break
		}
	}

	return labels, canonical
}
