// Package bellmanford: configuration options and sentinel errors.
package bellmanford

import "errors"

// Sentinel errors returned by BellmanFord and Potentials.
var (
	// ErrNoSource indicates that no Source(v) option was provided.
	ErrNoSource = errors.New("bellmanford: source node not set")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrBadSource indicates a source node outside [1,N].
	ErrBadSource = errors.New("bellmanford: source node out of range")
)

// Options configures a single BellmanFord run.
type Options struct {
	Source     int  // starting node, in [1,N]; required
	ReturnPath bool // whether to build and return the predecessor slice
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// Source sets the starting node. Required.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns the defaults for the given source.
func DefaultOptions(source int) Options {
	return Options{Source: source}
}
