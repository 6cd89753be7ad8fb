// SPDX-License-Identifier: MIT

package interpolate

// DefaultPrecision is the working precision (bits) of the Vandermonde solve.
const DefaultPrecision uint = 512

const (
	panicPrecisionInvalid = "interpolate: WithPrecision: bits must be >= 53"
	panicToleranceInvalid = "interpolate: WithToleranceBits: bits must be > 0"
)

// Option configures Integer and VandermondeInverse.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	prec    uint // DefaultPrecision
	tolBits uint // 0 ⇒ prec/2
}

// WithPrecision sets the working precision in bits. Panics below 53.
func WithPrecision(bits uint) Option {
	if bits < 53 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.prec = bits }
}

// WithToleranceBits sets the rational-reconstruction tolerance to 2^(−bits).
// Panics on 0.
func WithToleranceBits(bits uint) Option {
	if bits == 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolBits = bits }
}

func gatherOptions(opts ...Option) Options {
	o := Options{prec: DefaultPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.tolBits == 0 {
		o.tolBits = o.prec / 2
	}

	return o
}
