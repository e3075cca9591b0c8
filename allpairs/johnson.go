package allpairs

import (
	"fmt"

	"github.com/hristev/shortpath/bellmanford"
	"github.com/hristev/shortpath/core"
	"github.com/hristev/shortpath/dijkstra"
)

// Johnson computes all-pairs shortest distances of g by composing
// Bellman–Ford potentials with one Dijkstra pass per source.
//
// Returns:
//
//   - dist: (N+1)×(N+1), 1-indexed, core.Inf for unreachable pairs —
//     same shape and conventions as FloydWarshall.
//   - negCycle: true iff the potential computation found a negative
//     cycle; the Dijkstra stage is skipped and dist is nil in that case.
//   - err: ErrNilGraph only.
//
// Time O(V·E + V·(E+V)·logV), space O(V²) for the result.
func Johnson(g *core.Graph) (dist [][]int64, negCycle bool, err error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}

	rg, h, negCycle, err := reweight(g)
	if err != nil || negCycle {
		return nil, negCycle, err
	}

	n := g.Order()
	dist = make([][]int64, n+1)
	dist[0] = make([]int64, n+1)
	for i := range dist[0] {
		dist[0][i] = core.Inf
	}

	for s := 1; s <= n; s++ {
		row, rowErr := sourceRow(rg, h, s)
		if rowErr != nil {
			return nil, false, rowErr
		}
		dist[s] = row
	}

	return dist, false, nil
}

// JohnsonFrom computes the single source row dist[source][·] of Johnson's
// matrix without solving the other N-1 sources. The potential stage still
// covers the whole graph, so negative cycles anywhere are reported, not
// just those reachable from source.
func JohnsonFrom(g *core.Graph, source int) (dist []int64, negCycle bool, err error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, false, fmt.Errorf("source=%d outside [1,%d]: %w", source, g.Order(), ErrBadSource)
	}

	rg, h, negCycle, err := reweight(g)
	if err != nil || negCycle {
		return nil, negCycle, err
	}

	row, err := sourceRow(rg, h, source)

	return row, false, err
}

// reweight computes vertex potentials and builds the graph with every
// edge shifted to w + h(u) - h(v). The triangle inequality of shortest
// distances guarantees the shifted weights are non-negative when no
// negative cycle exists, which is exactly what Dijkstra needs.
func reweight(g *core.Graph) (rg *core.Graph, h []int64, negCycle bool, err error) {
	h, negCycle, err = bellmanford.Potentials(g)
	if err != nil {
		return nil, nil, false, fmt.Errorf("allpairs: potentials: %w", err)
	}
	if negCycle {
		return nil, nil, true, nil
	}

	rg, err = core.NewGraph(g.Order())
	if err != nil {
		return nil, nil, false, fmt.Errorf("allpairs: reweighted graph: %w", err)
	}
	for _, e := range g.Edges() {
		if err = rg.AddEdge(e.From, e.To, e.Weight+h[e.From]-h[e.To]); err != nil {
			return nil, nil, false, fmt.Errorf("allpairs: reweighted edge %d→%d: %w", e.From, e.To, err)
		}
	}

	return rg, h, false, nil
}

// sourceRow runs one Dijkstra pass on the reweighted graph and undoes the
// potential shift: d(s,t) = d'(s,t) - h(s) + h(t). Unreachable nodes stay
// at core.Inf untouched.
func sourceRow(rg *core.Graph, h []int64, s int) ([]int64, error) {
	row, _, err := dijkstra.Dijkstra(rg, dijkstra.Source(s))
	if err != nil {
		return nil, fmt.Errorf("allpairs: dijkstra from %d: %w", s, err)
	}

	for t := 1; t < len(row); t++ {
		if row[t] == core.Inf {
			continue
		}
		row[t] += h[t] - h[s]
	}

	return row, nil
}
