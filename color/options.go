// SPDX-License-Identifier: MIT
// Package color: functional options for Trace.

package color

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/symkernel/expr"
)

// DefaultMaxDepth bounds the trace recursion.
const DefaultMaxDepth = expr.DefaultMaxDepth

// Options configure Trace.
type Options struct {
	MaxDepth int          // recursion bound, > 0
	Logger   *slog.Logger // receives Debug records per recursive step
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDepth sets the recursion bound. Panics if n <= 0.
func WithMaxDepth(n int) Option {
	if n <= 0 {
		panic("color: WithMaxDepth requires n > 0")
	}
	return func(o *Options) { o.MaxDepth = n }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("color: WithLogger requires a non-nil logger")
	}
	return func(o *Options) { o.Logger = l }
}

// gatherOptions resolves defaults, then applies opts in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		MaxDepth: DefaultMaxDepth,
		Logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
