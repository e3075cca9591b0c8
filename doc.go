// Package shortpath is a family of interchangeable shortest-path solvers
// over weighted directed graphs — single-source and all-pairs, together
// with the priority structures they depend on.
//
// 🚀 What is shortpath?
//
//	A pure-Go library that brings together, under one numeric contract:
//		• Core primitives: a compact 1..N integer-indexed weighted digraph
//		• Priority structures: binary heap, indexed D-ary heap with true
//		  decrease-key, and a monotone radix (bucket) heap
//		• Single-source solvers: Dijkstra (three heap backends), A* with a
//		  pluggable heuristic, Bellman–Ford, SPFA (FIFO and deque+SLF)
//		• All-pairs solvers: Floyd–Warshall and Johnson's reweighting method
//		• One shared negative-cycle and overflow policy across all of them
//
// ✨ Why choose shortpath?
//
//   - Agreement by construction – every solver that can handle a given graph
//     produces the same distances; every negative-weight-capable solver
//     reports negative cycles through the same explicit flag
//   - Pure Go – no cgo, no hidden deps
//   - Array arenas, not pointers – the indexed heap keeps position/inverse
//     maps in flat slices, so decrease-key is an O(log_D n) index operation
//
// Under the hood, everything is organized into small subpackages:
//
//	core/        — Graph, Edge, the Inf sentinel and construction errors
//	pqueue/      — the three priority-structure implementations
//	dijkstra/    — Dijkstra and A* (non-negative weights)
//	bellmanford/ — Bellman–Ford and Johnson vertex potentials
//	spfa/        — SPFA worklist solvers (FIFO, deque + small-label-first)
//	allpairs/    — Floyd–Warshall and Johnson (matrix or single row)
//	builder/     — seeded Erdős–Rényi graphs for tests and benchmarks
//
// Quick ASCII example:
//
//	    1 ──1── 2
//	            │
//	            2
//	            │
//	    4 ──1── 3
//
//	with edges 1→2(1), 2→3(2), 1→3(5), 3→4(1), distances from node 1 are
//	[0, 1, 3, 4] — and every solver agrees.
//
//	go get github.com/hristev/shortpath
package shortpath
