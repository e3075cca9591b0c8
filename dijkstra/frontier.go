package dijkstra

import (
	"errors"
	"fmt"

	"github.com/hristev/shortpath/pqueue"
)

// frontier is the minimal contract the runner needs from a priority
// backend. The two lazy backends (binary, radix) implement improve as a
// duplicate push; the indexed D-ary backend implements it as a true
// decrease-key.
type frontier interface {
	// len reports pending entries (stale duplicates included).
	len() int
	// push adds a node with its priority (first sighting).
	push(node int, pri int64) error
	// improve notifies the backend that node's priority dropped to pri.
	improve(node int, pri int64) error
	// pop removes the entry with the smallest priority.
	pop() (node int, pri int64, err error)
}

// newFrontier builds the backend selected in cfg for a graph of n nodes.
func newFrontier(cfg Options, n int) (frontier, error) {
	switch cfg.Heap {
	case HeapBinary:
		return &binaryFrontier{h: pqueue.NewBinaryHeap(n)}, nil
	case HeapDAry:
		// Keys are node indices 1..n; the arena is sized n+1 so node
		// numbers are used directly (slot 0 simply stays unused).
		h, err := pqueue.NewIndexedDHeap(cfg.Arity, n+1)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: building D-ary frontier: %w", err)
		}

		return &daryFrontier{h: h}, nil
	case HeapRadix:
		return &radixFrontier{h: pqueue.NewRadixHeap()}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownHeap, cfg.Heap)
	}
}

// binaryFrontier: lazy duplicates over pqueue.BinaryHeap.
type binaryFrontier struct {
	h *pqueue.BinaryHeap
}

func (f *binaryFrontier) len() int { return f.h.Len() }

func (f *binaryFrontier) push(node int, pri int64) error {
	f.h.Push(node, pri)

	return nil
}

func (f *binaryFrontier) improve(node int, pri int64) error {
	// Lazy decrease-key: leave the stale entry behind, push a fresh one.
	f.h.Push(node, pri)

	return nil
}

func (f *binaryFrontier) pop() (int, int64, error) {
	return f.h.Pop()
}

// daryFrontier: true decrease-key over pqueue.IndexedDHeap.
type daryFrontier struct {
	h *pqueue.IndexedDHeap
}

func (f *daryFrontier) len() int { return f.h.Len() }

func (f *daryFrontier) push(node int, pri int64) error {
	return f.h.Insert(node, pri)
}

func (f *daryFrontier) improve(node int, pri int64) error {
	// A node leaves the heap for good once settled; an improvement can
	// therefore only target a pending key (Decrease) or a node never
	// enqueued yet (Insert).
	if f.h.Contains(node) {
		return f.h.Decrease(node, pri)
	}

	return f.h.Insert(node, pri)
}

func (f *daryFrontier) pop() (int, int64, error) {
	return f.h.ExtractMin()
}

// radixFrontier: lazy duplicates over the monotone pqueue.RadixHeap.
type radixFrontier struct {
	h *pqueue.RadixHeap
}

func (f *radixFrontier) len() int { return f.h.Len() }

func (f *radixFrontier) push(node int, pri int64) error {
	if err := f.h.Push(pri, node); err != nil {
		return fmt.Errorf("dijkstra: radix frontier push: %w", err)
	}

	return nil
}

func (f *radixFrontier) improve(node int, pri int64) error {
	return f.push(node, pri)
}

func (f *radixFrontier) pop() (int, int64, error) {
	pri, node, err := f.h.Pop()
	if err != nil {
		// Normalize so the runner can rely on pqueue.ErrHeapEmpty alone.
		if errors.Is(err, pqueue.ErrHeapEmpty) {
			return 0, 0, err
		}

		return 0, 0, fmt.Errorf("dijkstra: radix frontier pop: %w", err)
	}

	return node, pri, nil
}
