// Package stfilter extracts statistically significant ties from unweighted,
// undirected temporal networks.
//
// 🚀 What is ST-filter?
//
//	Given repeated snapshots of which node pairs were connected, ST-filter
//	decides which pairs connect more often than a calibrated random baseline
//	would predict (Kobayashi, Takaguchi & Barrat, "The structured backbone
//	of temporal social ties", Nat. Commun. 10, 2019):
//		• Fit a maximum-entropy null model: one activity parameter per node,
//		  calibrated so the model reproduces each node's aggregate tie count.
//		• Test every observed pair count against the null model's binomial
//		  distribution and keep the pairs the model cannot explain.
//
// ✨ Why choose ST-filter?
//
//   - All-or-nothing results – a call returns a complete result set or an error
//   - Exact tails – binomial upper tails via the regularized incomplete beta,
//     no combinatorial overflow at large observation counts
//   - Pluggable solvers – Newton–Krylov (default), Broyden, Powell hybrid,
//     all behind one contract with a hard iteration budget
//   - Stateless – independent calls share nothing and parallelize freely
//
// Everything is organized under four subpackages:
//
//	temporal/ — input normalization: snapshot lists, edge lists or precomputed
//	            aggregate matrices into one canonical Aggregate
//	solver/   — generic multivariate nonlinear-equation solver back-ends
//	fitness/  — null-model calibration and per-pair significance testing
//	filter/   — the public entry points: FromSnapshots, FromEdgeList,
//	            FromAggregate
//
// Quick example:
//
//	res, err := filter.FromAggregate(counts, 52, 0.01, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(mat.Formatted(res.Significant))
//
// See filter/example_test.go for complete runnable examples.
package stfilter
