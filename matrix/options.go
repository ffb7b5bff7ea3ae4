// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for determinant, solve and
// inverse. This file defines:
//   - Option / Options (functional options),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"io"
	"log/slog"
)

// DeterminantAlgo selects the determinant algorithm.
type DeterminantAlgo int

const (
	// DetAuto classifies the entries and picks Gauss, Bareiss or Laplace.
	DetAuto DeterminantAlgo = iota
	// DetGauss is elimination with field division.
	DetGauss
	// DetDivFree is division-free elimination with the pivot inflation
	// divided out afterwards.
	DetDivFree
	// DetBareiss is fraction-free elimination on numerators and
	// denominators.
	DetBareiss
	// DetLaplace is memoized minor expansion.
	DetLaplace
)

// String implements fmt.Stringer.
func (a DeterminantAlgo) String() string {
	switch a {
	case DetAuto:
		return "auto"
	case DetGauss:
		return "gauss"
	case DetDivFree:
		return "divfree"
	case DetBareiss:
		return "bareiss"
	case DetLaplace:
		return "laplace"
	default:
		return "unknown"
	}
}

// SolveAlgo selects the elimination used by Solve and Inverse.
type SolveAlgo int

const (
	// SolveAuto picks Gauss for numeric systems, division-free below three
	// rows and Bareiss otherwise.
	SolveAuto SolveAlgo = iota
	// SolveGauss is elimination with field division.
	SolveGauss
	// SolveDivFree is division-free elimination.
	SolveDivFree
	// SolveBareiss is fraction-free elimination.
	SolveBareiss
)

// String implements fmt.Stringer.
func (a SolveAlgo) String() string {
	switch a {
	case SolveAuto:
		return "auto"
	case SolveGauss:
		return "gauss"
	case SolveDivFree:
		return "divfree"
	case SolveBareiss:
		return "bareiss"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDeterminantAlgo lets Determinant classify the entries.
	DefaultDeterminantAlgo = DetAuto

	// DefaultSolveAlgo lets Solve classify the augmented matrix.
	DefaultSolveAlgo = SolveAuto
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDeterminantAlgoInvalid = "matrix: WithDeterminantAlgo: unknown algorithm"
	panicSolveAlgoInvalid       = "matrix: WithSolveAlgo: unknown algorithm"
	panicLoggerNil              = "matrix: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	DeterminantAlgo DeterminantAlgo // DefaultDeterminantAlgo
	SolveAlgo       SolveAlgo       // DefaultSolveAlgo
	Logger          *slog.Logger    // Debug records on algorithm selection
}

// WithDeterminantAlgo forces the determinant algorithm.
// Panics on a value outside DetAuto..DetLaplace.
func WithDeterminantAlgo(a DeterminantAlgo) Option {
	if a < DetAuto || a > DetLaplace {
		panic(panicDeterminantAlgoInvalid)
	}
	return func(o *Options) { o.DeterminantAlgo = a }
}

// WithSolveAlgo forces the elimination used by Solve and Inverse.
// Panics on a value outside SolveAuto..SolveBareiss.
func WithSolveAlgo(a SolveAlgo) Option {
	if a < SolveAuto || a > SolveBareiss {
		panic(panicSolveAlgoInvalid)
	}
	return func(o *Options) { o.SolveAlgo = a }
}

// WithLogger routes Debug records (chosen algorithm, matrix size) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.Logger = l }
}

// gatherOptions resolves defaults, then applies opts in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		DeterminantAlgo: DefaultDeterminantAlgo,
		SolveAlgo:       DefaultSolveAlgo,
		Logger:          slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
