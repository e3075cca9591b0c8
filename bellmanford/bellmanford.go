package bellmanford

import (
	"fmt"

	"github.com/hristev/shortpath/core"
)

// BellmanFord computes shortest distances from Source to every node of g,
// supporting negative edge weights.
//
// Returns:
//
//   - dist: (N+1)-long, 1-indexed; core.Inf marks unreachable nodes.
//   - prev: predecessor slice if WithReturnPath() was given (nil
//     otherwise); -1 means "no predecessor".
//   - negCycle: true iff a negative-weight cycle is reachable from the
//     source. When true, every distance in dist is undefined; callers
//     must check the flag before trusting the vector.
//   - err: precondition violations only (never negative cycles).
func BellmanFord(g *core.Graph, opts ...Option) (dist []int64, prev []int, negCycle bool, err error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == 0 {
		return nil, nil, false, ErrNoSource
	}
	if g == nil {
		return nil, nil, false, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, false, fmt.Errorf("source=%d outside [1,%d]: %w", cfg.Source, g.Order(), ErrBadSource)
	}

	n := g.Order()
	edges := g.Edges()

	dist = make([]int64, n+1)
	for i := range dist {
		dist[i] = core.Inf
	}
	dist[cfg.Source] = 0

	if cfg.ReturnPath {
		prev = make([]int, n+1)
		for i := range prev {
			prev[i] = -1
		}
	}

	// Up to N-1 full relaxation passes; a pass with no update means the
	// fixed point is reached and further passes cannot change anything.
	for pass := 1; pass <= n-1; pass++ {
		updated := false
		for i := range edges {
			e := &edges[i]
			// Skip relaxation through an unreached tail: Inf must never
			// take part in the sum.
			if dist[e.From] == core.Inf {
				continue
			}
			if nd := dist[e.From] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				if prev != nil {
					prev[e.To] = e.From
				}
				updated = true
			}
		}
		if !updated {
			break
		}
	}

	// Verification pass: after N-1 passes every shortest simple path is
	// settled, so any remaining relaxation proves a reachable negative
	// cycle.
	for i := range edges {
		e := &edges[i]
		if dist[e.From] == core.Inf {
			continue
		}
		if dist[e.From]+e.Weight < dist[e.To] {
			return dist, prev, true, nil
		}
	}

	return dist, prev, false, nil
}

// Potentials computes Johnson vertex potentials: the same Bellman–Ford
// iteration started from an implicit auxiliary source connected to every
// node by a zero-weight edge (equivalently, all labels start at 0, so
// unreachable components still receive finite potentials).
//
// Absent a negative cycle, the returned h satisfies
// w(u,v) + h(u) - h(v) >= 0 for every edge. With negCycle true, h is
// undefined.
func Potentials(g *core.Graph) (h []int64, negCycle bool, err error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}

	n := g.Order()
	edges := g.Edges()

	// Zero everywhere: every node is "one zero-weight hop" from the
	// auxiliary source, so no Inf guard is needed in this loop.
	h = make([]int64, n+1)

	for pass := 1; pass <= n-1; pass++ {
		updated := false
		for i := range edges {
			e := &edges[i]
			if nh := h[e.From] + e.Weight; nh < h[e.To] {
				h[e.To] = nh
				updated = true
			}
		}
		if !updated {
			break
		}
	}

	for i := range edges {
		e := &edges[i]
		if h[e.From]+e.Weight < h[e.To] {
			return h, true, nil
		}
	}

	return h, false, nil
}
