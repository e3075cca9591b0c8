// Package core defines the central Graph and Edge types shared by every
// solver in shortpath, along with the Inf distance sentinel and the
// construction-time error taxonomy.
//
// Overview:
//
//   - A Graph is a directed, weighted adjacency structure over nodes 1..N.
//     Node 0 is deliberately unused, so distance vectors returned by the
//     solvers are (N+1)-long and 1-indexed, matching the node numbering.
//   - A Graph is built once from an ordered edge stream (AddEdge calls) and
//     is then treated as read-only by every solver. Solvers never mutate a
//     Graph; concurrent solves over the same Graph are safe as long as the
//     caller does not interleave AddEdge with a running solve.
//   - Edge weights are signed 64-bit integers and may be negative. Solvers
//     that require non-negative weights (the Dijkstra family) reject
//     negative edges themselves; core does not.
//
// The Inf sentinel:
//
//   - Inf (math.MaxInt64 / 4) represents "unreached". It is chosen large
//     enough to compare above any real path weight, yet far enough below
//     MaxInt64 that Inf + w cannot wrap for any legal edge weight w.
//   - Solvers additionally guard every relaxation with an explicit
//     "skip if the tail is still unreached" check, so sentinel arithmetic
//     never feeds back into a distance.
//
// Errors (sentinel):
//
//   - ErrBadOrder          if a negative node count is given to NewGraph.
//   - ErrVertexOutOfRange  if an edge endpoint lies outside [1,N].
//   - ErrVertexNotFound    if a queried vertex lies outside [1,N].
//
// Complexity:
//
//   - AddEdge: amortized O(1); Neighbors: O(1) (slice view);
//     Edges: O(E) copy; HasNegativeEdge: O(E).
package core
