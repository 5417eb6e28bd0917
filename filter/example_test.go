package filter_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/yoshitaka-ogisu/ST-filter/filter"
	"github.com/yoshitaka-ogisu/ST-filter/temporal"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFromAggregate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 4-node network observed over 20 periods. Pairs 0-1 and 2-3 tie in 8
//	periods each; pairs 0-2 and 1-3 tie once. Every node has the same
//	total activity, so the null model is uniform and only the repeated
//	pairs stand out.
//
// Options:
//   - alpha = 0.01 (significance level)
//   - nil options → p-value judge, Newton-Krylov calibration
//
// Use case:
//
//	Extracting the stable backbone from a repeated-contact network.
//
// ExampleFromAggregate filters a precomputed tie-count matrix.
func ExampleFromAggregate() {
	counts := mat.NewDense(4, 4, []float64{
		0, 8, 1, 0,
		8, 0, 0, 1,
		1, 0, 0, 8,
		0, 1, 8, 0,
	})

	res, err := filter.FromAggregate(counts, 20, 0.01, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if res.Significant.At(i, j) == 1 {
				fmt.Printf("%d-%d\n", i, j)
			}
		}
	}
	// Output:
	// 0-1
	// 2-3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFromEdgeList
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Labeled contact rows. alice and bob tie in both observed snapshots;
//	reversed duplicates within a snapshot collapse into one occurrence.
//
// ExampleFromEdgeList filters labeled (snapshot, a, b) rows.
func ExampleFromEdgeList() {
	res, err := filter.FromEdgeList([]temporal.Edge{
		{Snapshot: "mon", A: "alice", B: "bob"},
		{Snapshot: "mon", A: "bob", B: "alice"},
		{Snapshot: "tue", A: "alice", B: "bob"},
	}, 0.05, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("nodes:", res.Nodes)
	fmt.Println("ties:", int(res.Aggregate.At(0, 1)))
	fmt.Println("significant:", int(res.Significant.At(0, 1)))
	// Output:
	// nodes: [alice bob]
	// ties: 2
	// significant: 1
}
