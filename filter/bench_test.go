package filter_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/yoshitaka-ogisu/ST-filter/filter"
	"github.com/yoshitaka-ogisu/ST-filter/solver"
)

// ringCounts builds a deterministic n-node aggregate over 50 periods: a
// ring of strong ties (10 occurrences) plus sparse weak chords (2
// occurrences every fifth node).
func ringCounts(n int) *mat.Dense {
	counts := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		counts.Set(i, j, 10)
		counts.Set(j, i, 10)
		if i%5 == 0 {
			k := (i + n/2) % n
			if k != i && counts.At(i, k) == 0 {
				counts.Set(i, k, 2)
				counts.Set(k, i, 2)
			}
		}
	}

	return counts
}

// benchmarkFilter runs the full pipeline on an n-node ring network with
// the given solver back-end.
func benchmarkFilter(b *testing.B, n int, method solver.Method) {
	counts := ringCounts(n)
	opts := filter.DefaultOptions()
	opts.Method = method

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := filter.FromAggregate(counts, 50, 0.01, &opts); err != nil {
			b.Fatalf("filter failed: %v", err)
		}
	}
}

// BenchmarkFilter_KrylovSmall benchmarks the Newton-Krylov back-end on 50 nodes.
func BenchmarkFilter_KrylovSmall(b *testing.B) {
	benchmarkFilter(b, 50, solver.Krylov)
}

// BenchmarkFilter_KrylovMedium benchmarks the Newton-Krylov back-end on 200 nodes.
func BenchmarkFilter_KrylovMedium(b *testing.B) {
	benchmarkFilter(b, 200, solver.Krylov)
}

// BenchmarkFilter_BroydenSmall benchmarks the Broyden back-end on 50 nodes.
func BenchmarkFilter_BroydenSmall(b *testing.B) {
	benchmarkFilter(b, 50, solver.Broyden)
}

// BenchmarkFilter_PowellSmall benchmarks the Powell hybrid back-end on 50 nodes.
func BenchmarkFilter_PowellSmall(b *testing.B) {
	benchmarkFilter(b, 50, solver.Powell)
}
