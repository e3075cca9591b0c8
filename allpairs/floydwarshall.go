package allpairs

import (
	"github.com/hristev/shortpath/core"
)

// FloydWarshall computes all-pairs shortest distances of g.
//
// Returns:
//
//   - dist: (N+1)×(N+1), 1-indexed on both axes (row and column 0 unused);
//     dist[i][j] is the shortest distance i→j, core.Inf when no path
//     exists, 0 on the diagonal.
//   - negCycle: true iff the graph contains a negative-weight cycle,
//     detected as a negative diagonal entry after the closure. When true,
//     every distance in the matrix is undefined.
//   - err: ErrNilGraph only.
//
// Time O(V³), space O(V²). Loop order is fixed (k → i → j) so repeated
// runs accumulate in the same order and return bit-identical matrices.
func FloydWarshall(g *core.Graph) (dist [][]int64, negCycle bool, err error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}

	n := g.Order()

	// 1) Seed: Inf everywhere, zero diagonal, direct edge weights. A
	//    repeated edge between the same pair keeps the smaller weight.
	dist = make([][]int64, n+1)
	for i := 0; i <= n; i++ {
		row := make([]int64, n+1)
		for j := range row {
			row[j] = core.Inf
		}
		dist[i] = row
	}
	for i := 1; i <= n; i++ {
		dist[i][i] = 0
	}
	for _, e := range g.Edges() {
		if e.Weight < dist[e.From][e.To] {
			dist[e.From][e.To] = e.Weight
		}
	}

	// 2) Closure. Skip at the first Inf operand: the sentinel must never
	//    take part in a sum.
	var (
		i, j, k  int
		ik, cand int64
		rowI     []int64
		rowK     []int64
	)
	for k = 1; k <= n; k++ {
		rowK = dist[k]
		for i = 1; i <= n; i++ {
			rowI = dist[i]
			ik = rowI[k]
			if ik == core.Inf {
				continue // i cannot reach k; no path via k exists
			}
			for j = 1; j <= n; j++ {
				if rowK[j] == core.Inf {
					continue
				}
				cand = ik + rowK[j]
				if cand < rowI[j] {
					rowI[j] = cand
				}
			}
		}
	}

	// 3) A path from a node back to itself cheaper than staying put can
	//    only be a negative cycle.
	for i = 1; i <= n; i++ {
		if dist[i][i] < 0 {
			return dist, true, nil
		}
	}

	return dist, false, nil
}
