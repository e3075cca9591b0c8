package dijkstra

import (
	"fmt"

	"github.com/hristev/shortpath/core"
)

// Dijkstra computes shortest distances from Source to every node of g.
//
// Returns:
//
//   - dist: (N+1)-long, 1-indexed; core.Inf marks unreachable nodes.
//   - prev: predecessor slice if WithReturnPath() was given (nil otherwise);
//     prev[v] == -1 means v is the source or unreachable.
//   - err:  one of the sentinel errors for precondition violations.
//
// Any WithHeuristic option is ignored: Dijkstra always runs exact.
// Use AStar for heuristic-guided search.
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Heuristic = ZeroHeuristic

	return run(g, cfg)
}

// AStar computes shortest distances like Dijkstra, but orders extraction
// by g(u) + h(u) for the heuristic installed via WithHeuristic. With the
// default ZeroHeuristic it is exactly Dijkstra. The returned distances are
// the true costs g(u), never the heuristic-inflated priorities.
func AStar(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = ZeroHeuristic
	}

	return run(g, cfg)
}

// run validates, then executes the shared settle loop.
func run(g *core.Graph, cfg Options) ([]int64, []int, error) {
	// 1) A source must have been provided.
	if cfg.Source == 0 {
		return nil, nil, ErrNoSource
	}

	// 2) Graph must be non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Source must exist.
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("source=%d outside [1,%d]: %w", cfg.Source, g.Order(), ErrBadSource)
	}

	// 4) Pre-scan for negative weights: fail fast with the offending edge.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Build the selected priority backend.
	pq, err := newFrontier(cfg, g.Order())
	if err != nil {
		return nil, nil, err
	}

	// 6) Run.
	r := &runner{g: g, cfg: cfg, pq: pq}
	r.init()
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of one execution.
type runner struct {
	g       *core.Graph
	cfg     Options
	pq      frontier
	dist    []int64 // node -> best-known distance (g-cost, never f)
	prev    []int   // node -> last-relaxed predecessor, or -1
	visited []bool  // node -> settled flag
}

// init sets dist[*]=Inf, dist[source]=0 and seeds the frontier with the
// source at priority h(source).
func (r *runner) init() {
	n := r.g.Order()

	r.dist = make([]int64, n+1)
	for i := range r.dist {
		r.dist[i] = core.Inf
	}
	r.dist[r.cfg.Source] = 0

	if r.cfg.ReturnPath {
		r.prev = make([]int, n+1)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}

	r.visited = make([]bool, n+1)
}

// process is the settle loop: extract the minimum-priority node, discard
// stale entries, mark settled, relax outgoing edges.
func (r *runner) process() error {
	// Seed with the source. h(source) is validated like any estimate.
	hs := r.cfg.Heuristic(r.cfg.Source)
	if hs < 0 {
		return fmt.Errorf("%w: h(%d)=%d", ErrNegativeHeuristic, r.cfg.Source, hs)
	}
	if err := r.pq.push(r.cfg.Source, hs); err != nil {
		return err
	}

	for r.pq.len() > 0 {
		u, _, err := r.pq.pop()
		if err != nil {
			return err
		}

		// Stale duplicate of an already-settled node (lazy backends).
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve every neighbor of the just-settled node u.
// dist[u] is final here; settled neighbors are skipped outright.
func (r *runner) relax(u int) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	var v int
	var nd, hv int64
	for _, a := range arcs {
		v = a.To
		if r.visited[v] {
			continue
		}

		nd = r.dist[u] + a.Weight
		if nd >= r.dist[v] {
			continue // not strictly better
		}

		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}

		hv = r.cfg.Heuristic(v)
		if hv < 0 {
			return fmt.Errorf("%w: h(%d)=%d", ErrNegativeHeuristic, v, hv)
		}
		if err = r.pq.improve(v, nd+hv); err != nil {
			return err
		}
	}

	return nil
}
