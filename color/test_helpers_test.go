// SPDX-License-Identifier: MIT
// Package color_test contains test helpers.

package color_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/color"
	"github.com/katalvlaran/symkernel/expr"
)

// idx returns an index of dimension 8 over a fresh symbol.
func idx(name string) *expr.Idx {
	return color.NewIndex(expr.NewSymbol(name))
}

// num returns a numeric index of dimension 8.
func num(v int64) *expr.Idx {
	return color.NewIndex(expr.Int(v))
}

// MustT builds T_a or fails the test.
func MustT(t *testing.T, a *expr.Idx, label uint8) expr.Expr {
	t.Helper()
	g, err := color.T(a, label)
	require.NoError(t, err)
	return g
}

// MustD builds d_abc or fails the test.
func MustD(t *testing.T, a, b, c *expr.Idx) expr.Expr {
	t.Helper()
	d, err := color.D(a, b, c)
	require.NoError(t, err)
	return d
}

// MustF builds f_abc or fails the test.
func MustF(t *testing.T, a, b, c *expr.Idx) expr.Expr {
	t.Helper()
	f, err := color.F(a, b, c)
	require.NoError(t, err)
	return f
}

// MustH builds h_abc or fails the test.
func MustH(t *testing.T, a, b, c *expr.Idx) expr.Expr {
	t.Helper()
	h, err := color.H(a, b, c)
	require.NoError(t, err)
	return h
}

// MustDelta builds δ_ab or fails the test.
func MustDelta(t *testing.T, a, b *expr.Idx) expr.Expr {
	t.Helper()
	d, err := expr.Delta(a, b)
	require.NoError(t, err)
	return d
}

// MustSimplify runs the contraction search or fails the test.
func MustSimplify(t *testing.T, e expr.Expr) expr.Expr {
	t.Helper()
	r, err := expr.SimplifyIndexed(e)
	require.NoError(t, err)
	return r
}

// MustTrace traces over label or fails the test.
func MustTrace(t *testing.T, e expr.Expr, label uint8, opts ...color.Option) expr.Expr {
	t.Helper()
	r, err := color.Trace(e, label, opts...)
	require.NoError(t, err)
	return r
}

// requireEqual compares expressions structurally.
func requireEqual(t *testing.T, want, got expr.Expr) {
	t.Helper()
	require.True(t, expr.Equal(want, got), "want %s, got %s", want, got)
}
