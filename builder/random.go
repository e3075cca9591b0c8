package builder

import (
	"fmt"
	"math/rand"

	"github.com/hristev/shortpath/core"
)

// RandomSparse samples an Erdős–Rényi-style graph over nodes 1..n with
// independent edge probability p.
//
// Contract:
//
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Stable trial order (u asc, then v asc), so a fixed seed and option
//     set always yields the identical graph.
//
// Complexity: O(n²) Bernoulli trials per sample; O(1) extra space beyond
// the graph itself.
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate parameters early, before touching the RNG.
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%f: %w", p, ErrInvalidProbability)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	attempts := 1
	if cfg.Connected {
		attempts = maxConnectAttempts
	}

	for attempt := 0; attempt < attempts; attempt++ {
		g, err := sample(n, p, cfg, rng)
		if err != nil {
			return nil, err
		}
		if !cfg.Connected || Connected(g) {
			return g, nil
		}
	}

	return nil, fmt.Errorf("RandomSparse: n=%d p=%f after %d attempts: %w",
		n, p, maxConnectAttempts, ErrUnconnectable)
}

// sample draws one graph. Directed mode trials every ordered pair (u,v)
// with u != v; undirected mode trials unordered pairs u < v and mirrors
// each accepted edge with the same weight.
func sample(n int, p float64, cfg Options, rng *rand.Rand) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("RandomSparse: %w", err)
	}

	for u := 1; u <= n; u++ {
		vStart := 1
		if cfg.Undirected {
			vStart = u + 1
		}
		for v := vStart; v <= n; v++ {
			if v == u {
				continue
			}
			if rng.Float64() >= p {
				continue
			}

			w := drawWeight(cfg, rng)
			if err = g.AddEdge(u, v, w); err != nil {
				return nil, fmt.Errorf("RandomSparse: %w", err)
			}
			if cfg.Undirected {
				if err = g.AddEdge(v, u, w); err != nil {
					return nil, fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}
	}

	return g, nil
}

// drawWeight picks an edge weight from the configured domain.
// The negative domain excludes zero so negative edges actually occur.
func drawWeight(cfg Options, rng *rand.Rand) int64 {
	if !cfg.NegativeWeights {
		return int64(weightPosMin + rng.Intn(weightPosMax-weightPosMin+1))
	}
	for {
		w := int64(weightNegMin + rng.Intn(weightNegMax-weightNegMin+1))
		if w != 0 {
			return w
		}
	}
}

// Connected reports whether every node is reachable from node 1 when all
// edges are treated as undirected. An empty or single-node graph is
// connected by convention. Iterative DFS, O(V + E).
func Connected(g *core.Graph) bool {
	n := g.Order()
	if n <= 1 {
		return true
	}

	// Build an undirected adjacency view once.
	und := make([][]int, n+1)
	for _, e := range g.Edges() {
		und[e.From] = append(und[e.From], e.To)
		und[e.To] = append(und[e.To], e.From)
	}

	seen := make([]bool, n+1)
	stack := []int{1}
	seen[1] = true
	count := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range und[u] {
			if !seen[v] {
				seen[v] = true
				count++
				stack = append(stack, v)
			}
		}
	}

	return count == n
}
