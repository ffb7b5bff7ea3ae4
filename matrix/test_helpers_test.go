// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Compare expressions by value (normalized difference is zero), so tests
//     do not depend on the canonical form an algorithm happens to return.

package matrix_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/expr"
	"github.com/katalvlaran/symkernel/matrix"
)

// ints converts integers to expressions.
func ints(vs ...int64) []expr.Expr {
	out := make([]expr.Expr, len(vs))
	for i, v := range vs {
		out[i] = expr.Int(v)
	}
	return out
}

// MustRows builds a matrix from rows or fails the test.
func MustRows(t *testing.T, rows ...[]expr.Expr) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// MustInts builds an r×c matrix from row-major integers.
func MustInts(t *testing.T, r, c int, vs ...int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, ints(vs...))
	require.NoError(t, err)
	return m
}

// MustIdentity builds the n×n identity.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	return m
}

// MustAt reads an entry or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) expr.Expr {
	t.Helper()
	e, err := m.At(i, j)
	require.NoError(t, err)
	return e
}

// MustDet computes the determinant or fails the test.
func MustDet(t *testing.T, m *matrix.Dense, opts ...matrix.Option) expr.Expr {
	t.Helper()
	d, err := m.Determinant(opts...)
	require.NoError(t, err)
	return d
}

type outcome[T any] struct {
	v   T
	err error
}

// within runs f, fails the test when it has not returned after d and
// requires a nil error otherwise.
func within[T any](t *testing.T, d time.Duration, f func() (T, error)) T {
	t.Helper()
	done := make(chan outcome[T], 1)
	go func() {
		v, err := f()
		done <- outcome[T]{v: v, err: err}
	}()
	select {
	case o := <-done:
		require.NoError(t, o.err)
		return o.v
	case <-time.After(d):
		t.Fatalf("no result after %s", d)
	}
	var zero T
	return zero
}

// mixedSymbolic returns a 4×4 matrix over a, b, c with a rational entry.
// Plain rational elimination on it swells without gcd normalization.
func mixedSymbolic(t *testing.T) *matrix.Dense {
	t.Helper()
	s := expr.Symbols("a", "b", "c")
	a, b, c := s[0], s[1], s[2]
	ab, ac := expr.Add(a, b), expr.Mul(a, c)
	return MustRows(t,
		[]expr.Expr{ab, c, expr.Int(-2), a},
		[]expr.Expr{expr.Div(expr.One(), a), a, expr.One(), expr.Int(-2)},
		[]expr.Expr{expr.Int(-2), ac, expr.One(), expr.Zero()},
		[]expr.Expr{ac, ab, a, expr.One()},
	)
}

// idx returns an index over a fresh symbol.
func idx(name string, dim int64) *expr.Idx {
	return expr.NewIdx(expr.NewSymbol(name), expr.Int(dim))
}

// requireSameValue asserts want - got normalizes to zero.
func requireSameValue(t *testing.T, want, got expr.Expr) {
	t.Helper()
	require.Truef(t, expr.IsZero(expr.Normal(expr.Sub(want, got))), "want %s, got %s", want, got)
}

// requireSameMatrix asserts equal shapes and entrywise equal values.
func requireSameMatrix(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			requireSameValue(t, MustAt(t, want, i, j), MustAt(t, got, i, j))
		}
	}
}
