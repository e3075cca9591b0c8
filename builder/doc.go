// Package builder generates synthetic graphs for tests and benchmarks.
//
// It is a collaborator of the solver core, not part of it: the only thing
// it hands over is a *core.Graph built through the ordinary construction
// interface (node count + edge stream). Nothing in the solvers depends on
// this package.
//
// Overview:
//
//   - RandomSparse(n, p) samples an Erdős–Rényi-style graph: every ordered
//     node pair (u,v), u != v, receives an edge independently with
//     probability p. WithUndirected() switches to unordered pairs, adding
//     both arcs with one shared weight.
//   - Weights are uniform in [1,10] by default; WithNegativeWeights()
//     draws from [-10,10] excluding zero (so negative edges really occur).
//   - WithSeed pins the RNG; given the same seed and options the generator
//     is fully deterministic (stable trial order: u ascending, v
//     ascending).
//   - WithConnected() regenerates until Connected reports true, up to a
//     bounded number of attempts (ErrUnconnectable past that).
//   - Connected(g) runs an iterative DFS from node 1 over the underlying
//     undirected structure.
//
// Determinism:
//
//   - Fixed trial order plus a caller-pinned seed makes every generated
//     graph reproducible — the property the cross-solver agreement tests
//     rely on.
package builder
