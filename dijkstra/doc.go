// Package dijkstra implements Dijkstra's shortest-path algorithm and its
// A* generalization on weighted directed graphs with non-negative edge
// weights, over three interchangeable priority backends.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to
//     all reachable nodes, processing nodes in non-decreasing distance
//     order and settling each node exactly once.
//   - AStar is the same runner ordering extractions by g(u) + h(u) for a
//     pluggable heuristic h; the default zero heuristic makes it
//     behaviorally identical to Dijkstra. The heuristic is a capability,
//     not a second code path.
//   - The priority mechanism is selected per call:
//     HeapBinary (container/heap with lazy duplicates, the default),
//     HeapDAry (indexed D-ary heap with true decrease-key; branching
//     factor tunable via WithArity), and
//     HeapRadix (monotone bucket heap; fastest on large node counts with
//     moderate weight ranges).
//
// Complexity:
//
//   - HeapBinary: O((V + E) log V); up to E lazy duplicates in the heap.
//   - HeapDAry:   O(E log_D V) decrease-keys + O(V · D log_D V) extracts;
//     larger D favors dense graphs where decrease-key dominates.
//   - HeapRadix:  O(E + V · b) amortized, b = bit-width of the largest
//     distance; no dependence on heap height.
//
// Preconditions and validation (in order):
//
//  1. A source must be provided via Source(v) (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. The source must lie in [1,N] (ErrBadSource).
//  4. No edge may carry a negative weight (ErrNegativeWeight, detected by
//     an O(E) pre-scan — feeding negative weights to this family is a
//     precondition violation, and the package fails fast instead of
//     returning silently wrong distances).
//
// Heuristic contract (AStar):
//
//   - h(v) must be a non-negative lower bound on the remaining cost
//     (admissible); negative values fail with ErrNegativeHeuristic.
//   - The HeapRadix backend additionally requires h to be consistent
//     (monotone), because the radix heap only accepts non-decreasing
//     extraction orders. An inconsistent heuristic on that backend
//     surfaces pqueue.ErrMonotonicity rather than silent corruption.
//
// Results:
//
//   - dist: (N+1)-long, 1-indexed; dist[v] is the shortest distance from
//     the source, or core.Inf if unreachable. Slot 0 is core.Inf.
//   - prev: nil unless WithReturnPath(); otherwise (N+1)-long with -1 for
//     "no predecessor" and prev[v] = the last-relaxed predecessor of v.
package dijkstra
