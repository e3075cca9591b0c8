// Package spfa implements the Shortest Path Faster Algorithm: a
// worklist-driven Bellman–Ford refinement that supports negative edge
// weights and typically beats the classic pass-based iteration on sparse
// graphs.
//
// Overview:
//
//   - A node enters the worklist only when its tentative distance just
//     improved and it is not already queued (tracked by in-queue flags).
//   - Two worklist disciplines share every other line of the algorithm:
//     FIFO (the default) and, via WithSLF(), a deque with the
//     Small-Label-First heuristic — a freshly improved node goes to the
//     FRONT when its tentative distance is smaller than the current
//     front's, otherwise to the back. SLF tends to settle low-distance
//     nodes sooner, cutting wasted re-relaxations; it never changes
//     correctness or the cycle-detection rule.
//   - Negative-cycle detection is by pigeonhole: a shortest simple path
//     visits each node at most once, so a node enqueued more than N times
//     can only mean a negative cycle feeds it. The flag is raised and
//     processing stops immediately; distances are then undefined.
//
// This "enqueue count exceeds N" rule and Bellman–Ford's "one extra pass
// still relaxes" rule are independent detectors that must agree on every
// graph — the package tests pin that agreement, since the threshold is an
// off-by-one-prone invariant.
//
// Complexity:
//
//   - Worst case O(V · E) like Bellman–Ford; far better in practice on
//     sparse inputs.
//
// Errors (sentinel):
//
//   - ErrNoSource  if Source(v) was not provided.
//   - ErrNilGraph  if the graph pointer is nil.
//   - ErrBadSource if the source lies outside [1,N].
package spfa
