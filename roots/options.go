// SPDX-License-Identifier: MIT

package roots

const (
	// DefaultMaxBisectionDepth bounds the recursion of Isolate.
	DefaultMaxBisectionDepth = 200

	// DefaultMaxIterations bounds the Durand–Kerner iteration.
	DefaultMaxIterations = 10000

	// MinRootErr is the margin added to Bound so the enclosing interval is
	// strictly wider than every root.
	MinRootErr = 1e-10
)

const (
	panicDepthInvalid      = "roots: WithMaxDepth: depth must be > 0"
	panicIterationsInvalid = "roots: WithMaxIterations: iterations must be > 0"
)

// Option configures Isolate, AllReal and AllComplex.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	maxDepth      int // DefaultMaxBisectionDepth
	maxIterations int // DefaultMaxIterations
}

// WithMaxDepth sets the bisection depth ceiling. Panics on n ≤ 0.
func WithMaxDepth(n int) Option {
	if n <= 0 {
		panic(panicDepthInvalid)
	}

	return func(o *Options) { o.maxDepth = n }
}

// WithMaxIterations sets the Durand–Kerner iteration ceiling. Panics on n ≤ 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxDepth:      DefaultMaxBisectionDepth,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
