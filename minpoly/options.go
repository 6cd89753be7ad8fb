// SPDX-License-Identifier: MIT

package minpoly

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algebraics/subsetsum"
)

// MaxBits bounds the per-coefficient bit budget k.
const MaxBits = 30

const panicNilLogger = "minpoly: WithLogger: logger must not be nil"

// Option configures Find.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	logger logrus.FieldLogger // discards by default
	solver []subsetsum.Option
}

// WithLogger routes the per-degree trace to l at debug level. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithSolverOptions forwards options to subsetsum.Certificate, e.g. a larger
// item ceiling or a different tolerance.
func WithSolverOptions(opts ...subsetsum.Option) Option {
	return func(o *Options) { o.solver = append(o.solver, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: discardLogger()}
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
