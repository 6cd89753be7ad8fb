// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for precision and determinant policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the mantissa precision (bits) of new matrices.
	DefaultPrecision uint = 256

	// MinPrecision is the smallest precision accepted by WithPrecision
	// (float64 mantissa width).
	MinPrecision uint = 53

	// DefaultCofactorCutoff: Det uses cofactor expansion for n < cutoff and
	// LU elimination otherwise.
	DefaultCofactorCutoff = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: bits must be >= 53"
	panicCutoffInvalid    = "matrix: WithCofactorCutoff: cutoff must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	prec           uint // DefaultPrecision
	cofactorCutoff int  // DefaultCofactorCutoff
}

// WithPrecision sets the mantissa precision (bits) for newly allocated matrices.
//
// Errors:
//   - Panics when bits < MinPrecision.
func WithPrecision(bits uint) Option {
	if bits < MinPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.prec = bits }
}

// WithCofactorCutoff sets the size below which Det expands cofactors.
// A cutoff of 0 forces LU for every size; cofactor expansion is O(n!), so
// keep the cutoff small.
//
// Errors:
//   - Panics when n < 0.
func WithCofactorCutoff(n int) Option {
	if n < 0 {
		panic(panicCutoffInvalid)
	}

	return func(o *Options) { o.cofactorCutoff = n }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		prec:           DefaultPrecision,
		cofactorCutoff: DefaultCofactorCutoff,
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
