// Package bellmanford implements the Bellman–Ford single-source
// shortest-path algorithm, plus the vertex-potential computation that
// Johnson's all-pairs method builds on.
//
// Overview:
//
//   - BellmanFord relaxes every edge of the graph in up to N-1 full
//     passes, stopping early as soon as a pass performs no update (the
//     fixed point has been reached). Negative edge weights are fully
//     supported.
//   - One verification pass follows: if any edge can still relax, a
//     negative-weight cycle is reachable from the source. That outcome is
//     not an error — it is reported through an explicit flag, and once the
//     flag is true every distance in the result is meaningless.
//   - Potentials runs the identical iteration from an implicit auxiliary
//     source with zero-weight edges to every node (realized simply by
//     starting all labels at zero). Absent a negative cycle, the resulting
//     h satisfies w(u,v) + h(u) - h(v) >= 0 for every edge — exactly what
//     Johnson's reweighting needs.
//
// Overflow policy:
//
//   - Relaxation through a still-unreached node is skipped outright
//     (dist[from] == core.Inf guard), so sentinel arithmetic never
//     produces a bogus finite label.
//
// Complexity:
//
//   - Time: O(V · E) worst case, often much less due to the early exit.
//   - Space: O(V).
//
// Errors (sentinel):
//
//   - ErrNoSource  if Source(v) was not provided (BellmanFord only).
//   - ErrNilGraph  if the graph pointer is nil.
//   - ErrBadSource if the source lies outside [1,N].
package bellmanford
