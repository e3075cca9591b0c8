// Package spfa: configuration options and sentinel errors.
package spfa

import "errors"

// Sentinel errors returned by SPFA.
var (
	// ErrNoSource indicates that no Source(v) option was provided.
	ErrNoSource = errors.New("spfa: source node not set")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("spfa: graph is nil")

	// ErrBadSource indicates a source node outside [1,N].
	ErrBadSource = errors.New("spfa: source node out of range")
)

// Options configures a single SPFA run.
type Options struct {
	Source     int  // starting node, in [1,N]; required
	SLF        bool // deque + small-label-first instead of plain FIFO
	ReturnPath bool // whether to build and return the predecessor slice
}

// Option is a functional option for SPFA.
type Option func(*Options)

// Source sets the starting node. Required.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithSLF switches the worklist to a deque with the Small-Label-First
// discipline. Distances and the negative-cycle flag are unaffected; only
// the processing order (and typically the run time) changes.
func WithSLF() Option {
	return func(o *Options) { o.SLF = true }
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns the defaults for the given source: FIFO
// worklist, no path.
func DefaultOptions(source int) Options {
	return Options{Source: source}
}
