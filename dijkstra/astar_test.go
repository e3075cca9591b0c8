package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hristev/shortpath/builder"
	"github.com/hristev/shortpath/core"
	"github.com/hristev/shortpath/dijkstra"
)

// TestAStar_ZeroHeuristicEqualsDijkstra: the degenerate case must be
// behaviorally identical to Dijkstra, on every backend.
func TestAStar_ZeroHeuristicEqualsDijkstra(t *testing.T) {
	g, err := builder.RandomSparse(80, 0.1, builder.WithSeed(21))
	require.NoError(t, err)

	want, _, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)

	for name, kind := range backends {
		got, _, errX := dijkstra.AStar(g, dijkstra.Source(1), dijkstra.WithHeap(kind))
		require.NoError(t, errX, "backend %s", name)
		assert.Equal(t, want, got, "backend %s: zero-heuristic A* must equal Dijkstra", name)
	}
}

// TestAStar_AdmissibleHeuristic: a consistent non-zero heuristic changes
// the exploration order but never the distances. The graph is a line
// 1→2→...→6 with unit weights, so h(v) = (6 - v) is exact and consistent.
func TestAStar_AdmissibleHeuristic(t *testing.T) {
	const n = 6
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for v := 1; v < n; v++ {
		require.NoError(t, g.AddEdge(v, v+1, 1))
	}

	h := func(v int) int64 { return int64(n - v) }

	dist, prev, err := dijkstra.AStar(g,
		dijkstra.Source(1),
		dijkstra.WithHeuristic(h),
		dijkstra.WithReturnPath(),
	)
	require.NoError(t, err)

	for v := 1; v <= n; v++ {
		assert.Equal(t, int64(v-1), dist[v])
	}
	for v := 2; v <= n; v++ {
		assert.Equal(t, v-1, prev[v])
	}
}

// TestAStar_NegativeHeuristicRejected: an inadmissible estimator fails
// with ErrNegativeHeuristic instead of corrupting the search.
func TestAStar_NegativeHeuristicRejected(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1))

	_, _, err = dijkstra.AStar(g,
		dijkstra.Source(1),
		dijkstra.WithHeuristic(func(int) int64 { return -1 }),
	)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeHeuristic)
}

// TestAStar_NilHeuristicRestoresZero: WithHeuristic(nil) falls back to the
// zero estimator rather than crashing.
func TestAStar_NilHeuristicRestoresZero(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 4))
	require.NoError(t, g.AddEdge(2, 3, 4))

	dist, _, err := dijkstra.AStar(g, dijkstra.Source(1), dijkstra.WithHeuristic(nil))
	require.NoError(t, err)
	assert.Equal(t, []int64{core.Inf, 0, 4, 8}, dist)
}
