// Package pqueue implements the three interchangeable mutable-priority
// structures that back the shortpath Dijkstra family.
//
// Overview:
//
//   - BinaryHeap: a plain container/heap-backed min-heap of (key, value)
//     pairs. It has no decrease-key; callers push duplicates and discard
//     stale extractions ("lazy decrease-key").
//   - IndexedDHeap: an indexed D-ary min-heap with true decrease-key.
//     Keys are dense integers 0..N-1; two parallel arrays keep each key's
//     heap slot (position map) and each slot's key (inverse map) mutually
//     consistent, so Contains and value lookup are O(1) and Decrease is a
//     swim from the key's current slot.
//   - RadixHeap: a monotone bucket heap for non-negative int64 values.
//     Correct only when successive extracted minimums are non-decreasing —
//     a precondition Dijkstra naturally satisfies — in exchange for
//     amortized cost bounded by pushes plus the bit-width of the largest
//     value, not by heap height.
//
// Choosing between them:
//
//   - BinaryHeap is the simplest and fine for most graphs.
//   - IndexedDHeap shines on dense graphs: decrease-key sifts dominate
//     there, and a larger branching factor D flattens the tree, trading a
//     few extra comparisons per ExtractMin for shorter swims. D is fixed
//     at construction; pick it per workload.
//   - RadixHeap wins on large vertex counts with moderate weight ranges.
//
// Complexity:
//
//   - BinaryHeap: Push/Pop O(log n).
//   - IndexedDHeap: Insert/Decrease O(log_D n); ExtractMin O(D·log_D n)
//     because each sink step inspects up to D children.
//   - RadixHeap: amortized O(1) per Push plus O(bits) total redistributions
//     per distinct minimum.
//
// Errors (sentinel):
//
//   - ErrHeapEmpty      extracting from an empty structure.
//   - ErrKeyPresent     inserting a key that is already present.
//   - ErrKeyAbsent      decreasing or reading a key that is not present.
//   - ErrKeyOutOfRange  key index outside [0,N).
//   - ErrBadArity       branching factor below 2.
//   - ErrBadCapacity    non-positive key capacity.
//   - ErrNegativeValue  pushing a negative value into the radix heap.
//   - ErrMonotonicity   pushing a value below the last extracted minimum.
//
// Misuse is reported through these errors before any internal state is
// touched; a failed operation never corrupts the structure.
package pqueue
