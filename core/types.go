// Package core: type declarations, the Inf sentinel, and sentinel errors.
package core

import (
	"errors"
	"math"
)

// Inf is the "unreached" distance sentinel shared by every solver.
//
// It must satisfy two constraints at once:
//   - larger than any real path weight, so it never shadows a finite
//     distance in a comparison;
//   - bounded away from math.MaxInt64 by at least the maximum possible
//     path weight, so Inf + w (one stray relaxation through an unreached
//     node) cannot wrap around to a small value.
//
// MaxInt64/4 leaves that headroom with room to spare.
const Inf int64 = math.MaxInt64 / 4

// Sentinel errors for graph construction and queries.
var (
	// ErrBadOrder indicates a negative node count passed to NewGraph.
	ErrBadOrder = errors.New("core: node count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside [1,N].
	// Construction fails fast; out-of-range endpoints are never clamped.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrVertexNotFound indicates a query for a vertex outside [1,N].
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is one directed weighted edge of the input stream.
// Weight may be negative; solvers that cannot handle negative weights
// reject the graph themselves.
type Edge struct {
	From   int   // tail node, in [1,N]
	To     int   // head node, in [1,N]
	Weight int64 // signed edge weight
}

// Arc is the outgoing half of an Edge as seen from its tail:
// the head node plus the weight. Neighbors returns these in the order
// the corresponding edges were added.
type Arc struct {
	To     int   // head node
	Weight int64 // signed edge weight
}
