// Package builder: generation options and sentinel errors.
package builder

import "errors"

// Sentinel errors for graph generation.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("builder: need at least one vertex")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: edge probability must lie in [0,1]")

	// ErrUnconnectable indicates WithConnected could not produce a
	// connected sample within the attempt budget.
	ErrUnconnectable = errors.New("builder: no connected sample within attempt budget")
)

// Weight domains, matching the harness this generator replaces:
// positive weights are uniform in [1,10]; the negative mode draws from
// [-10,10] with zero excluded.
const (
	weightPosMin = 1
	weightPosMax = 10
	weightNegMin = -10
	weightNegMax = 10
)

// maxConnectAttempts bounds the regenerate-until-connected loop.
const maxConnectAttempts = 1000

// Options configures one RandomSparse call.
type Options struct {
	Seed            int64 // RNG seed; fixed seed => identical graph
	NegativeWeights bool  // draw weights from the signed domain
	Undirected      bool  // add both arcs per sampled pair
	Connected       bool  // resample until Connected(g)
}

// Option is a functional option for RandomSparse.
type Option func(*Options)

// WithSeed pins the random source. The default seed is 1.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithNegativeWeights draws weights from [-10,10] excluding zero.
func WithNegativeWeights() Option {
	return func(o *Options) { o.NegativeWeights = true }
}

// WithUndirected samples unordered pairs and adds both arcs with a single
// shared weight, the way the original benchmark graphs were produced.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// WithConnected resamples until the graph is connected (undirected sense),
// failing with ErrUnconnectable after a bounded number of attempts.
func WithConnected() Option {
	return func(o *Options) { o.Connected = true }
}

// DefaultOptions returns the generator defaults: seed 1, positive weights,
// directed, no connectivity requirement.
func DefaultOptions() Options {
	return Options{Seed: 1}
}
