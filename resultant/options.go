// SPDX-License-Identifier: MIT

package resultant

// DefaultPrecision is the big.Float precision (bits) of the Sylvester
// determinants and of the interpolation that follows them.
const DefaultPrecision uint = 512

const panicPrecisionInvalid = "resultant: WithPrecision: bits must be >= 53"

// Option configures Sylvester, Sum, Product and the Combine helpers.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	prec uint // DefaultPrecision
}

// WithPrecision sets the working precision in bits. Panics below 53.
func WithPrecision(bits uint) Option {
	if bits < 53 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.prec = bits }
}

func gatherOptions(opts ...Option) Options {
	o := Options{prec: DefaultPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
