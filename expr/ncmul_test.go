// SPDX-License-Identifier: MIT
package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/expr"
)

func TestNCMul_Associativity(t *testing.T) {
	a, b, c := newGen("A", "op"), newGen("B", "op"), newGen("C", "op")

	flat := expr.NCMul(a, b, c)
	requireEqual(t, flat, expr.NCMul(expr.NCMul(a, b), c))
	requireEqual(t, flat, expr.NCMul(a, expr.NCMul(b, c)))
	requireEqual(t, flat, expr.Mul(a, b, c))

	p, ok := flat.(*expr.NCProduct)
	require.True(t, ok)
	require.True(t, p.IsEvaluated())
	require.Len(t, p.Factors(), 3)
}

func TestNCMul_Degenerate(t *testing.T) {
	a := newGen("A", "op")
	requireEqual(t, expr.One(), expr.NCMul())
	requireEqual(t, a, expr.NCMul(a))
	requireEqual(t, a, expr.NCMul(expr.NCMul(a)))
}

func TestNCMul_KeepsOrder(t *testing.T) {
	a, b := newGen("A", "op"), newGen("B", "op")
	require.False(t, expr.Equal(expr.NCMul(a, b), expr.NCMul(b, a)))
	require.False(t, expr.Equal(expr.Mul(a, b), expr.Mul(b, a)))
}

func TestNCMul_ExtractsCommutativeFactors(t *testing.T) {
	a, b := newGen("A", "op"), newGen("B", "op")
	x := expr.NewSymbol("x")

	got := expr.NCMul(x, a, expr.Int(2), b)
	requireEqual(t, expr.Mul(expr.Int(2), x, expr.NCMul(a, b)), got)
	require.Equal(t, expr.NonCommutative, expr.ReturnType(got))
}

// TestNCMul_GroupsByAlgebra splits factors of different algebras into one
// product per algebra, each keeping its internal order.
func TestNCMul_GroupsByAlgebra(t *testing.T) {
	a1, c1 := newGen("A", "one"), newGen("C", "one")
	b2 := newGen("B", "two")

	got := expr.NCMul(a1, b2, c1)
	requireEqual(t, expr.Mul(expr.NCMul(a1, c1), b2), got)
	require.Equal(t, expr.NonCommutativeComposite, expr.ReturnType(got))
	require.False(t, expr.Equal(got, expr.Mul(expr.NCMul(c1, a1), b2)))
}

func TestNCMul_CompositeFactorHoldsOrder(t *testing.T) {
	a, b := newGen("A", "op"), newGen("B", "op")
	z := &gen{name: "Z", tag: "mixed", kind: expr.NonCommutativeComposite}

	got := expr.NCMul(b, z, a)
	p, ok := got.(*expr.NCProduct)
	require.Truef(t, ok, "got %s", got)
	require.True(t, p.IsEvaluated())
	f := p.Factors()
	require.Len(t, f, 3)
	requireEqual(t, b, f[0])
	requireEqual(t, z, f[1])
	requireEqual(t, a, f[2])
}

func TestNCMul_SequenceSimplifier(t *testing.T) {
	p := &gen{name: "P", tag: "proj", kind: expr.NonCommutative, idempotent: true}
	q := &gen{name: "Q", tag: "proj", kind: expr.NonCommutative, idempotent: true}

	requireEqual(t, p, expr.NCMul(p, p, p))
	requireEqual(t, expr.NCMul(p, q), expr.NCMul(p, p, q, q))
	require.Equal(t, 3, expr.NCMul(p, q, p).Nops())
}

func TestNCProduct_EvaluateIdempotent(t *testing.T) {
	a, b := newGen("A", "op"), newGen("B", "op")
	raw := expr.NonSimplified([]expr.Expr{a, b})
	require.False(t, raw.IsEvaluated())

	ev, ok := raw.Evaluate().(*expr.NCProduct)
	require.True(t, ok)
	require.True(t, ev.IsEvaluated())
	require.Same(t, ev, ev.Evaluate())
}

func TestNCProduct_PanicsOnUnknownReturnKind(t *testing.T) {
	a := newGen("A", "op")
	bad := &gen{name: "?", tag: "op", kind: expr.ReturnKind(99)}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, expr.ErrInternal)
	}()
	expr.NCMul(a, bad)
}

func TestNCProduct_Expand(t *testing.T) {
	a, b, c, d := newGen("A", "op"), newGen("B", "op"), newGen("C", "op"), newGen("D", "op")

	got := expr.Expand(expr.NCMul(a, expr.Add(b, c)))
	requireEqual(t, expr.Add(expr.NCMul(a, b), expr.NCMul(a, c)), got)

	// every combination exactly once, in factor order
	got = expr.Expand(expr.NCMul(expr.Add(a, b), expr.Add(c, d)))
	want := expr.Add(expr.NCMul(a, c), expr.NCMul(a, d), expr.NCMul(b, c), expr.NCMul(b, d))
	requireEqual(t, want, got)
	require.Equal(t, 4, got.Nops())

	x := expr.NewSymbol("x")
	got = expr.Expand(expr.NCMul(expr.Add(a, expr.Mul(x, b)), a))
	requireEqual(t, expr.Add(expr.NCMul(a, a), expr.Mul(x, expr.NCMul(b, a))), got)
}

func TestNCProduct_Calculus(t *testing.T) {
	a, b, c := newGen("A", "op"), newGen("B", "op"), newGen("C", "op")
	x := expr.NewSymbol("x")

	// (x²A + B)·C
	first := expr.Add(expr.Mul(expr.Pow(x, expr.Int(2)), a), b)
	p := expr.NCMul(first, c)
	_, ok := p.(*expr.NCProduct)
	require.True(t, ok)

	require.Equal(t, 2, expr.Degree(p, x))
	require.Equal(t, 0, expr.LDegree(p, x))
	requireEqual(t, expr.NCMul(a, c), expr.Coeff(p, x, 2))
	requireEqual(t, expr.NCMul(b, c), expr.Coeff(p, x, 0))
	requireEqual(t, expr.Zero(), expr.Coeff(p, x, 1))

	d, err := expr.Diff(p, x)
	require.NoError(t, err)
	requireEqual(t, expr.Mul(expr.Int(2), x, expr.NCMul(a, c)), d)
}

func TestNCProduct_EvalMWithoutMatrices(t *testing.T) {
	a, b := newGen("A", "op"), newGen("B", "op")
	p := expr.NCMul(a, b)
	got, err := expr.EvalM(p)
	require.NoError(t, err)
	requireEqual(t, p, got)
}
