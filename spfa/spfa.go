package spfa

import (
	"fmt"

	"github.com/hristev/shortpath/core"
)

// SPFA computes shortest distances from Source to every node of g,
// supporting negative edge weights.
//
// Returns:
//
//   - dist: (N+1)-long, 1-indexed; core.Inf marks unreachable nodes.
//   - prev: predecessor slice if WithReturnPath() was given (nil
//     otherwise); -1 means "no predecessor".
//   - negCycle: true iff a negative-weight cycle is reachable from the
//     source (detected when any node's enqueue count exceeds N).
//     When true, processing has stopped early and every distance is
//     undefined.
//   - err: precondition violations only.
func SPFA(g *core.Graph, opts ...Option) (dist []int64, prev []int, negCycle bool, err error) {
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

	inQueue := make([]bool, n+1) // node currently sitting in the worklist
	count := make([]int, n+1)    // enqueues per node, for the pigeonhole test

	dq := newDeque(n)
	dq.pushBack(cfg.Source)
	inQueue[cfg.Source] = true
	count[cfg.Source] = 1

	for dq.len() > 0 {
		u := dq.popFront()
		inQueue[u] = false

		arcs, errN := g.Neighbors(u)
		if errN != nil {
			return nil, nil, false, fmt.Errorf("spfa: neighbors of %d: %w", u, errN)
		}

		for _, a := range arcs {
			// dist[u] is finite here: u was enqueued only after its own
			// distance improved below Inf.
			nd := dist[u] + a.Weight
			if nd >= dist[a.To] {
				continue
			}

			dist[a.To] = nd
			if prev != nil {
				prev[a.To] = u
			}

			if inQueue[a.To] {
				continue // already pending; its new label will be seen
			}

			// A shortest simple path enqueues each node at most N times
			// (once per possible predecessor set change along simple
			// paths); the N+1-th enqueue proves a negative cycle.
			count[a.To]++
			if count[a.To] > n {
				return dist, prev, true, nil
			}

			enqueue(dq, a.To, dist, cfg.SLF)
			inQueue[a.To] = true
		}
	}

	return dist, prev, false, nil
}

// enqueue places an improved node into the worklist under the configured
// discipline: FIFO appends at the back; SLF puts the node in front when
// its fresh label undercuts the current front's, so small labels settle
// first.
func enqueue(dq *deque, v int, dist []int64, slf bool) {
	if slf && dq.len() > 0 && dist[v] < dist[dq.front()] {
		dq.pushFront(v)
		return
	}
	dq.pushBack(v)
}
