package allpairs_test

import (
	"testing"

	"github.com/hristev/shortpath/allpairs"
	"github.com/hristev/shortpath/builder"
	"github.com/hristev/shortpath/core"
)

// benchGraph builds one deterministic random graph per (n, p) shape.
func benchGraph(b *testing.B, n int, p float64) *core.Graph {
	b.Helper()
	g, err := builder.RandomSparse(n, p, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkAllPairs_Sparse pits the two solvers against each other where
// Johnson should win: E ≪ V².
func BenchmarkAllPairs_Sparse(b *testing.B) {
	g := benchGraph(b, 300, 0.02)

	b.Run("floydwarshall", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _, _ = allpairs.FloydWarshall(g)
		}
	})
	b.Run("johnson", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _, _ = allpairs.Johnson(g)
		}
	})
}

// BenchmarkAllPairs_Dense flips the density to Floyd–Warshall's home turf.
func BenchmarkAllPairs_Dense(b *testing.B) {
	g := benchGraph(b, 300, 0.5)

	b.Run("floydwarshall", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _, _ = allpairs.FloydWarshall(g)
		}
	})
	b.Run("johnson", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _, _ = allpairs.Johnson(g)
		}
	})
}
