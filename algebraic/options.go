// SPDX-License-Identifier: MIT

package algebraic

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algebraics/resultant"
)

const (
	// DefaultIsolationError is the root radius used by FromPolynomial and
	// GaloisConjugates when they are passed a non-positive error.
	DefaultIsolationError = 1e-10

	// DefaultPrecision is the working precision (bits) of resultant computations.
	DefaultPrecision = resultant.DefaultPrecision
)

const (
	panicNilFactorer    = "algebraic: WithFactorer: factorer must not be nil"
	panicNilLogger      = "algebraic: WithLogger: logger must not be nil"
	panicPrecision      = "algebraic: WithPrecision: bits must be >= 53"
	panicIsolationError = "algebraic: WithIsolationError: error must be finite and > 0"
)

// Option configures a Number.
type Option func(*Options)

// Options is the resolved configuration of a Number.
type Options struct {
	factorer  resultant.Factorer // resultant.SquareFreeFactorer{}
	logger    logrus.FieldLogger // discards by default
	prec      uint               // DefaultPrecision
	isolation float64            // DefaultIsolationError
}

// WithFactorer sets the collaborator that picks the factor of a resultant
// owning the result ball. Panics on nil.
func WithFactorer(f resultant.Factorer) Option {
	if f == nil {
		panic(panicNilFactorer)
	}

	return func(o *Options) { o.factorer = f }
}

// WithLogger routes debug traces of resultant combination, factor selection
// and minimal-polynomial search to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithPrecision sets the big.Float precision of resultant computations.
// Panics below 53.
func WithPrecision(bits uint) Option {
	if bits < 53 {
		panic(panicPrecision)
	}

	return func(o *Options) { o.prec = bits }
}

// WithIsolationError sets the default root radius. Panics unless e is finite and > 0.
func WithIsolationError(e float64) Option {
	if !(e > 0) || math.IsInf(e, 0) {
		panic(panicIsolationError)
	}

	return func(o *Options) { o.isolation = e }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		factorer:  resultant.SquareFreeFactorer{},
		logger:    discardLogger(),
		prec:      DefaultPrecision,
		isolation: DefaultIsolationError,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
