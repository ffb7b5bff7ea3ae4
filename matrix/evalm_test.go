// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/expr"
	"github.com/katalvlaran/symkernel/matrix"
)

// mustEvalM evaluates e to a matrix or fails the test.
func mustEvalM(t *testing.T, e expr.Expr) *matrix.Dense {
	t.Helper()
	v, err := expr.EvalM(e)
	require.NoError(t, err)
	m, ok := v.(*matrix.Dense)
	require.Truef(t, ok, "EvalM(%s) = %s is not a matrix", e, v)
	return m
}

func TestDense_IsNonCommutative(t *testing.T) {
	a := MustInts(t, 2, 2, 1, 2, 3, 4)
	require.Equal(t, expr.NonCommutative, expr.ReturnType(a))
	require.Equal(t, matrix.Tag, expr.ReturnTag(a))

	i, j := idx("i", 2), idx("j", 2)
	require.Equal(t, expr.Commutative, expr.ReturnType(mustIndexed(t, a, i, j)))
}

func TestEvalM_KeepsProductOrder(t *testing.T) {
	a := MustInts(t, 2, 2, 1, 2, 3, 4)
	b := MustInts(t, 2, 2, 0, 1, 1, 0)

	ab, err := a.Mul(b)
	require.NoError(t, err)
	ba, err := b.Mul(a)
	require.NoError(t, err)

	requireSameMatrix(t, ab, mustEvalM(t, expr.Mul(a, b)))
	requireSameMatrix(t, ba, mustEvalM(t, expr.Mul(b, a)))
	require.False(t, expr.Equal(ab, ba))
}

func TestEvalM_SumsScalesPowers(t *testing.T) {
	a := MustInts(t, 2, 2, 1, 2, 3, 4)
	b := MustInts(t, 2, 2, 0, 1, 1, 0)
	x := expr.NewSymbol("x")

	sum, err := a.Add(b)
	require.NoError(t, err)
	requireSameMatrix(t, sum, mustEvalM(t, expr.Add(a, b)))

	scaled, err := a.MulScalar(x)
	require.NoError(t, err)
	requireSameMatrix(t, scaled, mustEvalM(t, expr.Mul(x, a)))

	sq, err := a.Mul(a)
	require.NoError(t, err)
	requireSameMatrix(t, sq, mustEvalM(t, expr.Pow(a, expr.Int(2))))

	inv, err := a.Inverse()
	require.NoError(t, err)
	requireSameMatrix(t, inv, mustEvalM(t, expr.Pow(a, expr.Int(-1))))

	// (A + B)·A
	mixed, err := sum.Mul(a)
	require.NoError(t, err)
	requireSameMatrix(t, mixed, mustEvalM(t, expr.Mul(expr.Add(a, b), a)))
}

func TestEvalM_Errors(t *testing.T) {
	a := MustInts(t, 2, 2, 1, 2, 3, 4)
	row := MustInts(t, 1, 3, 1, 2, 3)

	_, err := expr.EvalM(expr.Mul(a, row))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// row² is the product row·row
	_, err = expr.EvalM(expr.Pow(row, expr.Int(2)))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = expr.EvalM(expr.Pow(row, expr.Int(-1)))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestEntrywise(t *testing.T) {
	x, y := expr.NewSymbol("x"), expr.NewSymbol("y")
	m := MustRows(t,
		[]expr.Expr{expr.Pow(expr.Add(x, expr.One()), expr.Int(2)), y},
		[]expr.Expr{expr.Div(expr.Sub(expr.Mul(x, x), expr.One()), expr.Sub(x, expr.One())), expr.Mul(x, y)},
	)

	exp := m.Expand()
	require.True(t, expr.Equal(
		expr.Add(expr.Pow(x, expr.Int(2)), expr.Mul(expr.Int(2), x), expr.One()),
		MustAt(t, exp, 0, 0),
	))

	norm := m.Normal()
	requireSameValue(t, expr.Add(x, expr.One()), MustAt(t, norm, 1, 0))
	require.True(t, expr.IsPolynomial(MustAt(t, norm, 1, 0)))

	sub := m.Subs(y, expr.Int(3))
	requireSameValue(t, expr.Int(3), MustAt(t, sub, 0, 1))
	requireSameValue(t, expr.Mul(expr.Int(3), x), MustAt(t, sub, 1, 1))

	d, err := m.Diff(x)
	require.NoError(t, err)
	requireSameValue(t, expr.Add(expr.Mul(expr.Int(2), x), expr.Int(2)), MustAt(t, d, 0, 0))
	requireSameValue(t, expr.Zero(), MustAt(t, d, 0, 1))
	requireSameValue(t, y, MustAt(t, d, 1, 1))

	viaExpr, err := expr.Diff(m, x)
	require.NoError(t, err)
	requireSameMatrix(t, d, viaExpr.(*matrix.Dense))
}
