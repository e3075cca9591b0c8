package core

import "fmt"

// Graph is a directed weighted graph over nodes 1..N, built once from an
// ordered edge stream and read-only thereafter (as far as solvers are
// concerned). Slot 0 of the adjacency table is present but always empty so
// node indices can be used directly without offset arithmetic.
type Graph struct {
	n     int     // node count N; nodes are addressed 1..n
	edges []Edge  // edges in insertion order (the raw stream)
	adj   [][]Arc // adj[u] = outgoing arcs of u, insertion order; len n+1
}

// NewGraph returns an empty graph over nodes 1..n.
// n == 0 is a legal (empty) graph; n < 0 returns ErrBadOrder.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrBadOrder)
	}

	return &Graph{
		n:   n,
		adj: make([][]Arc, n+1), // slot 0 stays empty
	}, nil
}

// AddEdge appends the directed edge from→to with the given weight.
// Both endpoints must lie in [1,N]; anything else fails with
// ErrVertexOutOfRange before the edge is recorded. Parallel edges are
// accepted as independent edges (no aggregation), matching the input
// contract of the solvers.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if from < 1 || from > g.n {
		return fmt.Errorf("AddEdge: from=%d outside [1,%d]: %w", from, g.n, ErrVertexOutOfRange)
	}
	if to < 1 || to > g.n {
		return fmt.Errorf("AddEdge: to=%d outside [1,%d]: %w", to, g.n, ErrVertexOutOfRange)
	}

	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.adj[from] = append(g.adj[from], Arc{To: to, Weight: weight})

	return nil
}

// Order returns the node count N.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges added so far.
func (g *Graph) Size() int { return len(g.edges) }

// HasVertex reports whether v is a valid node index of this graph.
func (g *Graph) HasVertex(v int) bool { return v >= 1 && v <= g.n }

// Edges returns a copy of the edge stream in insertion order.
// Solvers that iterate the full edge list (Bellman–Ford) use this;
// the copy keeps the internal stream safe from caller mutation.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the outgoing arcs of u in edge-insertion order.
// The returned slice is a view into the graph's adjacency storage and
// must be treated as read-only by the caller.
func (g *Graph) Neighbors(u int) ([]Arc, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexNotFound)
	}

	return g.adj[u], nil
}

// HasNegativeEdge reports whether any edge carries a negative weight.
// O(E). Callers choosing between the Dijkstra family and the
// negative-capable solvers can branch on this before running.
func (g *Graph) HasNegativeEdge() bool {
	for i := range g.edges {
		if g.edges[i].Weight < 0 {
			return true
		}
	}

	return false
}
