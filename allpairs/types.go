package allpairs

import "errors"

var (
	// ErrNilGraph is returned when the graph pointer is nil.
	ErrNilGraph = errors.New("allpairs: graph is nil")

	// ErrBadSource is returned by JohnsonFrom when the source lies
	// outside [1, N].
	ErrBadSource = errors.New("allpairs: source vertex out of range")
)
