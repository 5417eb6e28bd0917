// Package temporal normalizes temporal-network observations into one
// canonical form consumed by the fitting and testing stages.
//
// Three input shapes are accepted:
//
//   - a list of n×n binary snapshot matrices (one per observation period),
//   - an edge list of (snapshot id, node, node) rows with arbitrary labels,
//   - a precomputed aggregate matrix plus an explicit period count.
//
// All three produce an Aggregate: the n×n matrix of per-pair tie counts,
// the number of observation periods T, and (for labeled edge lists) the
// node labels in index order. The Aggregate is immutable after creation;
// `0 ≤ Count(i,j) ≤ Periods()` holds for every pair, the counts are
// symmetric, and the diagonal is zero.
//
// Validation is strict and never corrective: asymmetric input, non-zero
// diagonals, non-binary snapshot entries, counts exceeding the period
// count, and self-loop edge rows are all rejected with sentinel errors
// (match with errors.Is), not silently repaired.
//
// Entries are integer counts; all structural checks use exact comparison,
// no epsilon policy is involved.
package temporal
