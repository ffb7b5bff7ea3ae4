// SPDX-License-Identifier: MIT
// Package expr_test contains test helpers: a minimal non-commuting atom
// family and structural comparison.

package expr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/expr"
)

// gen is a non-commuting atom of algebra tag. Idempotent atoms collapse
// with an equal neighbor (P·P = P) through SimplifyNCSequence.
type gen struct {
	name       string
	tag        expr.Tag
	kind       expr.ReturnKind
	idempotent bool
}

func newGen(name string, tag expr.Tag) *gen {
	return &gen{name: name, tag: tag, kind: expr.NonCommutative}
}

func (g *gen) String() string { return g.name }
func (g *gen) TypeRank() int { return 1000 }
func (g *gen) CompareSame(o expr.Expr) int {
	og := o.(*gen)
	if c := strings.Compare(string(g.tag), string(og.tag)); c != 0 {
		return c
	}
	return strings.Compare(g.name, og.name)
}
func (g *gen) Nops() int { return 0 }
func (g *gen) Op(int) expr.Expr { panic("gen has no operands") }
func (g *gen) Map(func(expr.Expr) expr.Expr) expr.Expr { return g }
func (g *gen) ReturnType() expr.ReturnKind { return g.kind }
func (g *gen) ReturnTag() expr.Tag { return g.tag }

// SimplifyNCSequence drops a repeated idempotent factor.
func (g *gen) SimplifyNCSequence(factors []expr.Expr) expr.Expr {
	out := make([]expr.Expr, 0, len(factors))
	for _, f := range factors {
		if n := len(out); n > 0 {
			if p, ok := f.(*gen); ok && p.idempotent && expr.Equal(out[n-1], f) {
				continue
			}
		}
		out = append(out, f)
	}
	return expr.Simplified(out)
}

// requireEqual compares expressions structurally.
func requireEqual(t *testing.T, want, got expr.Expr) {
	t.Helper()
	require.Truef(t, expr.Equal(want, got), "want %s, got %s", want, got)
}

// requireSameValue asserts want - got normalizes to zero.
func requireSameValue(t *testing.T, want, got expr.Expr) {
	t.Helper()
	require.Truef(t, expr.IsZero(expr.Normal(expr.Sub(want, got))), "want %s, got %s", want, got)
}

// MustSimplify runs the contraction search or fails the test.
func MustSimplify(t *testing.T, e expr.Expr) expr.Expr {
	t.Helper()
	r, err := expr.SimplifyIndexed(e)
	require.NoError(t, err)
	return r
}

// MustIndexed builds base.indices or fails the test.
func MustIndexed(t *testing.T, base expr.Expr, sym expr.Symmetry, indices ...*expr.Idx) expr.Expr {
	t.Helper()
	e, err := expr.NewIndexed(base, sym, indices...)
	require.NoError(t, err)
	return e
}

// idx returns an index of dimension dim over a fresh symbol.
func idx(name string, dim int64) *expr.Idx {
	return expr.NewIdx(expr.NewSymbol(name), expr.Int(dim))
}
