// Package filter is the public entry point of ST-filter: it sequences
// input normalization → null-model calibration → significance testing and
// assembles the complete result set.
//
// ⚙️ Usage:
//
//	import "github.com/yoshitaka-ogisu/ST-filter/filter"
//
//	opts := filter.DefaultOptions()
//	opts.Judge = fitness.InvBinom        // or keep the p-value judge
//	opts.Method = solver.Powell          // or keep Newton–Krylov
//
//	res, err := filter.FromSnapshots(snaps, 0.01, &opts)
//	if err != nil {
//	    // temporal.Err* (bad input), fitness/solver errors (no convergence),
//	    // fitness.ErrBadAlpha / fitness.ErrUnknownJudge / solver.ErrUnknownMethod
//	}
//	_ = res.Significant // 0/1 backbone, symmetric, zero diagonal
//
// Three equivalent front ends feed the same pipeline:
//
//   - FromSnapshots — a list of n×n binary symmetric snapshot matrices
//   - FromEdgeList  — (snapshot id, node, node) rows with arbitrary labels;
//     the result additionally carries the node labels in parameter order
//   - FromAggregate — a precomputed aggregate matrix plus explicit T
//
// Every call is a pure function of its inputs and options: no shared state,
// no partial results. Parameters are validated up front (alpha strictly
// inside (0,1), judge and solver method from their closed sets) and inputs
// are validated, never silently corrected. Independent calls are
// embarrassingly parallel — batch analysis across many temporal networks
// may fan out calls freely.
package filter
