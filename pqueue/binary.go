package pqueue

import "container/heap"

// BinaryHeap is a plain min-heap of (key, value) pairs on top of
// container/heap. It intentionally has no decrease-key: callers using it
// for Dijkstra push a fresh entry whenever a distance improves and discard
// stale extractions against their own settled set.
type BinaryHeap struct {
	items pairHeap
}

// NewBinaryHeap returns an empty heap with capacity hint n (may be 0).
func NewBinaryHeap(n int) *BinaryHeap {
	h := &BinaryHeap{items: make(pairHeap, 0, max(n, 0))}
	heap.Init(&h.items)

	return h
}

// Len returns the number of pending entries, stale duplicates included.
func (h *BinaryHeap) Len() int { return h.items.Len() }

// Push adds one (key, value) entry. Duplicate keys are allowed.
func (h *BinaryHeap) Push(key int, value int64) {
	heap.Push(&h.items, pair{key: key, value: value})
}

// Pop removes and returns the entry with the smallest value.
// Ties are broken arbitrarily. Fails with ErrHeapEmpty when empty.
func (h *BinaryHeap) Pop() (key int, value int64, err error) {
	if h.items.Len() == 0 {
		return 0, 0, ErrHeapEmpty
	}
	p := heap.Pop(&h.items).(pair)

	return p.key, p.value, nil
}

// pair is one pending (key, value) entry.
type pair struct {
	key   int
	value int64
}

// pairHeap implements heap.Interface ordered by value ascending.
type pairHeap []pair

func (pq pairHeap) Len() int            { return len(pq) }
func (pq pairHeap) Less(i, j int) bool  { return pq[i].value < pq[j].value }
func (pq pairHeap) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pairHeap) Push(x interface{}) { *pq = append(*pq, x.(pair)) }
func (pq *pairHeap) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
