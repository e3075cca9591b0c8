package allpairs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hristev/shortpath/allpairs"
	"github.com/hristev/shortpath/bellmanford"
	"github.com/hristev/shortpath/builder"
	"github.com/hristev/shortpath/core"
)

// buildChain returns the 4-node reference chain: 1→2 (1), 2→3 (2),
// 1→3 (5), 3→4 (1). Shortest row from 1 is [0 1 3 4].
func buildChain(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.AddEdge(1, 3, 5))
	require.NoError(t, g.AddEdge(3, 4, 1))

	return g
}

func TestFloydWarshall_NilGraph(t *testing.T) {
	_, _, err := allpairs.FloydWarshall(nil)
	assert.ErrorIs(t, err, allpairs.ErrNilGraph)
}

func TestFloydWarshall_ReferenceChain(t *testing.T) {
	dist, negCycle, err := allpairs.FloydWarshall(buildChain(t))
	require.NoError(t, err)
	assert.False(t, negCycle)

	assert.Equal(t, []int64{core.Inf, 0, 1, 3, 4}, dist[1])
	assert.Equal(t, []int64{core.Inf, core.Inf, 0, 2, 3}, dist[2])
	assert.Equal(t, []int64{core.Inf, core.Inf, core.Inf, 0, 1}, dist[3])
	assert.Equal(t, []int64{core.Inf, core.Inf, core.Inf, core.Inf, 0}, dist[4])
}

func TestFloydWarshall_NegativeEdgesNoCycle(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 4))
	require.NoError(t, g.AddEdge(1, 3, 5))
	require.NoError(t, g.AddEdge(2, 3, -3))
	require.NoError(t, g.AddEdge(3, 4, 2))

	dist, negCycle, err := allpairs.FloydWarshall(g)
	require.NoError(t, err)
	assert.False(t, negCycle)
	assert.Equal(t, []int64{core.Inf, 0, 4, 1, 3}, dist[1])
	assert.Equal(t, []int64{core.Inf, core.Inf, 0, -3, -1}, dist[2])
}

func TestFloydWarshall_NegativeCycleFlag(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, -1))
	require.NoError(t, g.AddEdge(3, 1, -1))

	_, negCycle, err := allpairs.FloydWarshall(g)
	require.NoError(t, err)
	assert.True(t, negCycle, "total cycle weight -1 must set the flag")
}

// Floyd–Warshall sees the whole graph, so a cycle in a component that no
// single-source solver reaches still flips the flag.
func TestFloydWarshall_CycleInOtherComponent(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 7))
	require.NoError(t, g.AddEdge(3, 4, 1))
	require.NoError(t, g.AddEdge(4, 5, -1))
	require.NoError(t, g.AddEdge(5, 3, -1))

	_, negCycle, err := allpairs.FloydWarshall(g)
	require.NoError(t, err)
	assert.True(t, negCycle)
}

func TestFloydWarshall_DuplicateEdgeKeepsSmaller(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 9))
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(1, 2, 6))

	dist, negCycle, err := allpairs.FloydWarshall(g)
	require.NoError(t, err)
	assert.False(t, negCycle)
	assert.Equal(t, int64(3), dist[1][2])
}

func TestFloydWarshall_Boundaries(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)
	dist, negCycle, err := allpairs.FloydWarshall(g)
	require.NoError(t, err)
	assert.False(t, negCycle)
	assert.Equal(t, int64(0), dist[1][1])

	g, err = core.NewGraph(3) // edgeless
	require.NoError(t, err)
	dist, _, err = allpairs.FloydWarshall(g)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			if i == j {
				assert.Equal(t, int64(0), dist[i][j])
			} else {
				assert.Equal(t, core.Inf, dist[i][j], "dist[%d][%d]", i, j)
			}
		}
	}
}

// Every row of the matrix must match an independent Bellman–Ford run from
// that row's source, on random graphs with negative weights.
func TestFloydWarshall_RowsMatchBellmanFord(t *testing.T) {
	for _, seed := range []int64{5, 18, 31} {
		g, err := builder.RandomSparse(40, 0.08, builder.WithSeed(seed), builder.WithNegativeWeights())
		require.NoError(t, err)

		dist, negCycle, err := allpairs.FloydWarshall(g)
		require.NoError(t, err)

		_, _, wantFlag, err := bellmanford.BellmanFord(g, bellmanford.Source(1))
		require.NoError(t, err)
		if wantFlag != negCycle {
			// Bellman–Ford only sees cycles reachable from node 1; the
			// matrix check sees them all. Flag may differ only in the
			// direction matrix=true, single-source=false.
			require.True(t, negCycle)
			require.False(t, wantFlag)
			continue
		}
		if negCycle {
			continue
		}

		for s := 1; s <= g.Order(); s++ {
			want, _, _, err := bellmanford.BellmanFord(g, bellmanford.Source(s))
			require.NoError(t, err)
			assert.Equal(t, want, dist[s], "seed %d source %d", seed, s)
		}
	}
}

func TestFloydWarshall_Idempotent(t *testing.T) {
	g, err := builder.RandomSparse(30, 0.1, builder.WithSeed(7))
	require.NoError(t, err)

	first, _, err := allpairs.FloydWarshall(g)
	require.NoError(t, err)
	second, _, err := allpairs.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
