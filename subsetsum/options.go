// SPDX-License-Identifier: MIT

package subsetsum

const (
	// DefaultMaxItems caps the instance size; memory grows as 2^(n/2).
	DefaultMaxItems = 40

	// DefaultEvalErr is the absolute floor of the certificate tolerance.
	DefaultEvalErr = 1e-20

	// DefaultRelativeTolerance scales the certificate tolerance with the
	// magnitude of the instance, |T| + Σ|vᵢ|.
	DefaultRelativeTolerance = 1e-12
)

const (
	panicMaxItemsInvalid = "subsetsum: WithMaxItems: n must be in [1, 62]"
	panicEvalErrInvalid  = "subsetsum: WithEvalErr: e must be >= 0"
	panicRelTolInvalid   = "subsetsum: WithRelativeTolerance: r must be >= 0"
)

// Option configures Solve and Certificate.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	maxItems int     // DefaultMaxItems
	evalErr  float64 // DefaultEvalErr
	relTol   float64 // DefaultRelativeTolerance
}

// WithMaxItems sets the item ceiling. Panics outside [1, 62].
func WithMaxItems(n int) Option {
	if n < 1 || n > 62 {
		panic(panicMaxItemsInvalid)
	}

	return func(o *Options) { o.maxItems = n }
}

// WithEvalErr sets the absolute tolerance floor used by Certificate.
// Panics on a negative value.
func WithEvalErr(e float64) Option {
	if !(e >= 0) {
		panic(panicEvalErrInvalid)
	}

	return func(o *Options) { o.evalErr = e }
}

// WithRelativeTolerance sets the magnitude-relative part of the certificate
// tolerance; 0 leaves only the absolute floor. Panics on a negative value.
func WithRelativeTolerance(r float64) Option {
	if !(r >= 0) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = r }
}

// MaxItems returns the resolved item ceiling of opts.
func MaxItems(opts ...Option) int { return gatherOptions(opts...).maxItems }

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxItems: DefaultMaxItems,
		evalErr:  DefaultEvalErr,
		relTol:   DefaultRelativeTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
