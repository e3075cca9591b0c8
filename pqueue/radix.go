package pqueue

import (
	"fmt"
	"math/bits"
)

// radixBuckets is one bucket per possible most-significant-differing-bit
// position of a 64-bit value, plus bucket 0 for "equal to the floor".
const radixBuckets = 65

// RadixHeap is a monotone bucket (radix) heap over non-negative int64
// values. It relies on the caller extracting values in non-decreasing
// order: every Push must be >= the last Pop'd minimum. Dijkstra satisfies
// this naturally, because a relaxed distance is always the just-extracted
// distance plus a non-negative weight.
//
// Entries are partitioned by the most significant bit in which their value
// differs from the last extracted minimum ("the floor"). Bucket 0 holds
// entries equal to the floor and is the only bucket Pop reads directly;
// when it drains, the lowest non-empty bucket is located, its smallest
// member becomes the new floor, and the bucket is redistributed into finer
// buckets relative to that floor. Each entry can only ever move to a
// strictly lower bucket, which bounds total redistribution work by
// O(pushes · 1 + distinct minima · bits).
type RadixHeap struct {
	buckets [radixBuckets][]radixEntry
	last    int64 // floor: the last extracted minimum (0 before any Pop)
	size    int
}

// radixEntry is one pending (value, key) pair.
type radixEntry struct {
	value int64
	key   int
}

// NewRadixHeap returns an empty heap whose floor starts at zero.
func NewRadixHeap() *RadixHeap {
	return &RadixHeap{}
}

// Len returns the number of pending entries.
func (h *RadixHeap) Len() int { return h.size }

// Push adds a (value, key) entry. Fails with ErrNegativeValue for
// value < 0 and ErrMonotonicity for value below the current floor;
// either failure leaves the heap untouched.
func (h *RadixHeap) Push(value int64, key int) error {
	if value < 0 {
		return fmt.Errorf("Push(%d): %w", value, ErrNegativeValue)
	}
	if value < h.last {
		return fmt.Errorf("Push(%d) below floor %d: %w", value, h.last, ErrMonotonicity)
	}

	i := h.bucketOf(value)
	h.buckets[i] = append(h.buckets[i], radixEntry{value: value, key: key})
	h.size++

	return nil
}

// Pop removes and returns the globally smallest pending (value, key) pair.
// Fails with ErrHeapEmpty when nothing is pending. The sequence of popped
// values is non-decreasing by construction.
func (h *RadixHeap) Pop() (value int64, key int, err error) {
	if h.size == 0 {
		return 0, 0, ErrHeapEmpty
	}

	// Refill bucket 0 from the lowest non-empty coarser bucket if needed.
	if len(h.buckets[0]) == 0 {
		h.refill()
	}

	// Bucket 0 holds entries equal to the floor; order within it is
	// irrelevant, so take the cheapest slot (the tail).
	b := h.buckets[0]
	e := b[len(b)-1]
	h.buckets[0] = b[:len(b)-1]
	h.size--

	return e.value, e.key, nil
}

// refill locates the lowest non-empty bucket, promotes its smallest value
// to be the new floor, and redistributes its entries into finer buckets.
// Precondition: size > 0 and bucket 0 is empty.
func (h *RadixHeap) refill() {
	var i int
	for i = 1; i < radixBuckets; i++ {
		if len(h.buckets[i]) > 0 {
			break
		}
	}

	// The new floor is the smallest value in that bucket.
	pending := h.buckets[i]
	minValue := pending[0].value
	for _, e := range pending[1:] {
		if e.value < minValue {
			minValue = e.value
		}
	}
	h.last = minValue

	// Redistribute relative to the new floor. Every entry lands in a
	// strictly lower bucket than i; the minimum itself lands in bucket 0.
	h.buckets[i] = nil
	for _, e := range pending {
		j := h.bucketOf(e.value)
		h.buckets[j] = append(h.buckets[j], e)
	}
}

// bucketOf maps a value to its bucket index relative to the current floor:
// the position of the most significant differing bit, or 0 when equal.
func (h *RadixHeap) bucketOf(value int64) int {
	return bits.Len64(uint64(value) ^ uint64(h.last))
}
