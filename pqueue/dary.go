package pqueue

import "fmt"

// IndexedDHeap is an indexed D-ary min-heap over dense integer keys 0..N-1
// with true decrease-key.
//
// State is three flat arrays — an arena, not pointer-linked nodes:
//
//	pm[key]  = heap slot currently holding key, or absent (-1)
//	im[slot] = key currently held at that slot
//	values[key] = the key's current value
//
// Invariants between operations (exercised heavily by the tests):
//
//	pm[im[s]] == s for every occupied slot s (pm and im mutually inverse)
//	values[im[s]] <= values[im[c]] for every child c of s (heap order)
type IndexedDHeap struct {
	d      int     // branching factor, fixed at construction
	n      int     // key capacity: keys are 0..n-1
	size   int     // occupied slots
	pm     []int   // position map: key -> slot
	im     []int   // inverse map: slot -> key
	values []int64 // value arena: key -> value
}

// NewIndexedDHeap constructs an empty heap with branching factor d and key
// capacity n. d < 2 fails with ErrBadArity; n < 1 with ErrBadCapacity.
// Both parameters are fixed for the structure's lifetime.
func NewIndexedDHeap(d, n int) (*IndexedDHeap, error) {
	if d < MinArity {
		return nil, fmt.Errorf("NewIndexedDHeap: d=%d: %w", d, ErrBadArity)
	}
	if n < 1 {
		return nil, fmt.Errorf("NewIndexedDHeap: n=%d: %w", n, ErrBadCapacity)
	}

	h := &IndexedDHeap{
		d:      d,
		n:      n,
		pm:     make([]int, n),
		im:     make([]int, n),
		values: make([]int64, n),
	}
	for i := 0; i < n; i++ {
		h.pm[i] = absent
		h.im[i] = absent
	}

	return h, nil
}

// Len returns the number of keys currently in the heap.
func (h *IndexedDHeap) Len() int { return h.size }

// Empty reports whether the heap holds no keys.
func (h *IndexedDHeap) Empty() bool { return h.size == 0 }

// Arity returns the branching factor chosen at construction.
func (h *IndexedDHeap) Arity() int { return h.d }

// Contains reports whether key is currently in the heap. O(1).
// Keys outside [0,N) are simply not contained.
func (h *IndexedDHeap) Contains(key int) bool {
	if key < 0 || key >= h.n {
		return false
	}

	return h.pm[key] != absent
}

// Value returns the current value of key.
// Fails with ErrKeyOutOfRange or ErrKeyAbsent.
func (h *IndexedDHeap) Value(key int) (int64, error) {
	if err := h.checkKey(key); err != nil {
		return 0, err
	}
	if h.pm[key] == absent {
		return 0, fmt.Errorf("Value(%d): %w", key, ErrKeyAbsent)
	}

	return h.values[key], nil
}

// Insert places key with the given value.
// Fails with ErrKeyOutOfRange, or ErrKeyPresent if key is already in the
// heap (use Decrease to lower an existing key).
func (h *IndexedDHeap) Insert(key int, value int64) error {
	if err := h.checkKey(key); err != nil {
		return err
	}
	if h.pm[key] != absent {
		return fmt.Errorf("Insert(%d): %w", key, ErrKeyPresent)
	}

	// Append at the next free slot, then restore heap order upward.
	h.pm[key] = h.size
	h.im[h.size] = key
	h.values[key] = value
	h.size++
	h.swim(h.size - 1)

	return nil
}

// Decrease lowers key's value to newValue and restores heap order.
// A non-improving newValue (>= current) is a silent no-op, not an error.
// Fails with ErrKeyOutOfRange or ErrKeyAbsent.
func (h *IndexedDHeap) Decrease(key int, newValue int64) error {
	if err := h.checkKey(key); err != nil {
		return err
	}
	if h.pm[key] == absent {
		return fmt.Errorf("Decrease(%d): %w", key, ErrKeyAbsent)
	}
	if newValue >= h.values[key] {
		return nil // no-op by contract
	}

	h.values[key] = newValue
	h.swim(h.pm[key])

	return nil
}

// ExtractMin removes and returns the key with the smallest value, plus
// that value. Fails with ErrHeapEmpty when the heap holds no keys.
func (h *IndexedDHeap) ExtractMin() (key int, value int64, err error) {
	if h.size == 0 {
		return 0, 0, ErrHeapEmpty
	}

	// The root holds the minimum. Detach it, move the last slot's key to
	// the root, shrink, and sink the displaced key back into place.
	minKey := h.im[0]
	minValue := h.values[minKey]
	h.pm[minKey] = absent

	h.size--
	last := h.im[h.size]
	h.im[h.size] = absent
	if h.size > 0 {
		h.im[0] = last
		h.pm[last] = 0
		h.sink(0)
	}

	return minKey, minValue, nil
}

// checkKey validates the key index against the arena bounds.
func (h *IndexedDHeap) checkKey(key int) error {
	if key < 0 || key >= h.n {
		return fmt.Errorf("key=%d outside [0,%d): %w", key, h.n, ErrKeyOutOfRange)
	}

	return nil
}

// parent returns the parent slot of slot i: (i-1)/D.
func (h *IndexedDHeap) parent(i int) int { return (i - 1) / h.d }

// child returns the k-th child slot of slot i: i*D + k + 1.
func (h *IndexedDHeap) child(i, k int) int { return i*h.d + k + 1 }

// swim moves the key at slot i toward the root while it compares below
// its parent. O(log_D n) levels, one comparison each.
func (h *IndexedDHeap) swim(i int) {
	for i > 0 {
		p := h.parent(i)
		if h.values[h.im[i]] >= h.values[h.im[p]] {
			break
		}
		h.swapSlots(i, p)
		i = p
	}
}

// sink moves the key at slot i downward, swapping with its smallest child
// among up to D children, until heap order holds. O(D·log_D n).
func (h *IndexedDHeap) sink(i int) {
	for {
		best := i
		for k := 0; k < h.d; k++ {
			c := h.child(i, k)
			if c >= h.size {
				break
			}
			if h.values[h.im[c]] < h.values[h.im[best]] {
				best = c
			}
		}
		if best == i {
			break
		}
		h.swapSlots(i, best)
		i = best
	}
}

// swapSlots exchanges the keys at two slots and refreshes the position map
// so pm and im stay mutually inverse.
func (h *IndexedDHeap) swapSlots(i, j int) {
	h.im[i], h.im[j] = h.im[j], h.im[i]
	h.pm[h.im[i]] = i
	h.pm[h.im[j]] = j
}
