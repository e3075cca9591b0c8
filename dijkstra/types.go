// Package dijkstra: configuration options, heuristic plug-in point, and
// sentinel errors.
package dijkstra

import "errors"

// Sentinel errors returned by Dijkstra and AStar.
var (
	// ErrNoSource indicates that no Source(v) option was provided.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadSource indicates a source node outside [1,N].
	ErrBadSource = errors.New("dijkstra: source node out of range")

	// ErrNegativeWeight indicates a negative edge weight; this family is
	// undefined under negative weights and refuses to run.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNegativeHeuristic indicates the A* heuristic returned a negative
	// estimate, violating the admissibility contract.
	ErrNegativeHeuristic = errors.New("dijkstra: heuristic returned a negative estimate")

	// ErrUnknownHeap indicates an unrecognized HeapKind value.
	ErrUnknownHeap = errors.New("dijkstra: unknown heap kind")

	// ErrBadArity indicates WithArity below 2 (reported via panic in the
	// option constructor, the same pattern the rest of the options use).
	ErrBadArity = errors.New("dijkstra: heap arity must be at least 2")
)

// HeapKind selects the priority backend for a single run.
type HeapKind int

const (
	// HeapBinary is a container/heap min-heap with lazy duplicates.
	// The safe default for any graph.
	HeapBinary HeapKind = iota

	// HeapDAry is the indexed D-ary heap with true decrease-key.
	// Branching factor via WithArity (default DefaultArity).
	HeapDAry

	// HeapRadix is the monotone bucket heap. Requires non-negative,
	// non-decreasing priorities — always true for plain Dijkstra.
	HeapRadix
)

// DefaultArity is the branching factor used by HeapDAry when WithArity is
// not given. Four children per node keeps the tree short while a sink
// still touches only one cache line of child slots.
const DefaultArity = 4

// Heuristic estimates the remaining cost from a node to the goal region.
// It must be non-negative and must never overestimate (admissible).
type Heuristic func(v int) int64

// ZeroHeuristic is the default estimator: always 0, reducing AStar to
// exact Dijkstra.
func ZeroHeuristic(int) int64 { return 0 }

// Options configures a single Dijkstra/AStar run.
type Options struct {
	Source     int       // starting node, in [1,N]; required
	Heap       HeapKind  // priority backend selection
	Arity      int       // branching factor for HeapDAry
	ReturnPath bool      // whether to build and return the predecessor slice
	Heuristic  Heuristic // AStar cost estimator; ZeroHeuristic by default
}

// Option is a functional option for configuring Dijkstra/AStar.
type Option func(*Options)

// Source sets the starting node. Required; validated against [1,N] at run
// time (ErrBadSource).
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithHeap selects the priority backend. Validated at run time
// (ErrUnknownHeap for values outside the HeapKind enum).
func WithHeap(kind HeapKind) Option {
	return func(o *Options) { o.Heap = kind }
}

// WithArity sets the branching factor for the HeapDAry backend.
// Panics with ErrBadArity for d < 2 — invalid option arguments fail at
// configuration time, not mid-run.
func WithArity(d int) Option {
	return func(o *Options) {
		if d < 2 {
			panic(ErrBadArity.Error())
		}
		o.Arity = d
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithHeuristic installs the AStar cost estimator. A nil h restores
// ZeroHeuristic. Ignored by Dijkstra, which always runs exact.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			h = ZeroHeuristic
		}
		o.Heuristic = h
	}
}

// DefaultOptions returns the defaults for the given source:
// binary heap, DefaultArity, no path, zero heuristic.
func DefaultOptions(source int) Options {
	return Options{
		Source:    source,
		Heap:      HeapBinary,
		Arity:     DefaultArity,
		Heuristic: ZeroHeuristic,
	}
}
