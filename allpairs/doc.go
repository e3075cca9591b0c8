// Package allpairs implements all-pairs shortest-path solvers on top of
// core.Graph: the dense Floyd–Warshall closure and the sparse-friendly
// Johnson composition.
//
// Overview:
//
//   - FloydWarshall builds an (N+1)×(N+1) distance matrix (slot 0 unused,
//     matching the 1-indexed graph), seeds it with edge weights and a zero
//     diagonal, and runs the classic triple loop in fixed k → i → j order.
//     Entries stay core.Inf where no path exists; relaxation through an
//     Inf operand is skipped, so the sentinel never enters a sum. A
//     negative value appearing on the diagonal afterwards proves a
//     negative-weight cycle, reported through the negCycle flag.
//   - Johnson computes Bellman–Ford vertex potentials, reweights every
//     edge to w + h(u) - h(v) (non-negative absent a negative cycle), runs
//     one binary-heap Dijkstra per source on the reweighted graph, and
//     shifts each distance back by h(t) - h(s). JohnsonFrom does the same
//     for a single source row.
//
// Choosing between them: Floyd–Warshall is O(V³) regardless of density
// and wins on small dense graphs; Johnson is O(V·E + V·(E+V)·logV) and
// wins when E ≪ V². Both report negative cycles via the same flag
// convention as the single-source solvers: flag true means every returned
// distance is undefined.
//
// Errors (sentinel):
//
//   - ErrNilGraph  if the graph pointer is nil.
//   - ErrBadSource if JohnsonFrom's source lies outside [1,N].
package allpairs
