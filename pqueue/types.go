// Package pqueue: sentinel errors and shared constants.
package pqueue

import "errors"

// Sentinel errors for priority-structure misuse. Each condition is
// detected locally and reported to the caller before any state changes.
var (
	// ErrHeapEmpty indicates ExtractMin/Pop on an empty structure.
	ErrHeapEmpty = errors.New("pqueue: heap is empty")

	// ErrKeyPresent indicates Insert of a key that is already present.
	ErrKeyPresent = errors.New("pqueue: key already present")

	// ErrKeyAbsent indicates Decrease or Value of a key that is absent.
	ErrKeyAbsent = errors.New("pqueue: key not in heap")

	// ErrKeyOutOfRange indicates a key index outside the [0,N) arena.
	ErrKeyOutOfRange = errors.New("pqueue: key index out of bounds")

	// ErrBadArity indicates a branching factor below MinArity.
	ErrBadArity = errors.New("pqueue: branching factor must be at least 2")

	// ErrBadCapacity indicates a non-positive maximum key count.
	ErrBadCapacity = errors.New("pqueue: capacity must be positive")

	// ErrNegativeValue indicates a negative value pushed into a RadixHeap,
	// which only orders non-negative values.
	ErrNegativeValue = errors.New("pqueue: radix heap value must be non-negative")

	// ErrMonotonicity indicates a RadixHeap push below the last extracted
	// minimum, violating the monotone precondition.
	ErrMonotonicity = errors.New("pqueue: radix heap push below last extracted minimum")
)

// MinArity is the smallest legal branching factor for IndexedDHeap.
const MinArity = 2

// absent marks an unoccupied position-map slot in IndexedDHeap.
const absent = -1
