// SPDX-License-Identifier: MIT
package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/expr"
)

func TestAdd_Canonical(t *testing.T) {
	s := expr.Symbols("x", "y")
	x, y := s[0], s[1]

	requireEqual(t, expr.Add(x, y), expr.Add(y, x))
	requireEqual(t, expr.Mul(expr.Int(2), x), expr.Add(x, x))
	requireEqual(t, expr.Zero(), expr.Add(x, expr.Neg(x)))
	requireEqual(t, y, expr.Add(x, y, expr.Neg(x)))
	requireEqual(t, expr.Int(5), expr.Add(expr.Int(2), expr.Int(3)))
	requireEqual(t, expr.Add(x, y, expr.One()), expr.Add(expr.Add(x, expr.One()), y))
}

func TestMul_Canonical(t *testing.T) {
	s := expr.Symbols("x", "y")
	x, y := s[0], s[1]

	requireEqual(t, expr.Mul(x, y), expr.Mul(y, x))
	requireEqual(t, expr.Pow(x, expr.Int(2)), expr.Mul(x, x))
	requireEqual(t, expr.Zero(), expr.Mul(expr.Zero(), x))
	requireEqual(t, expr.One(), expr.Div(x, x))
	requireEqual(t, expr.Int(-1), expr.Mul(expr.ImagUnit(), expr.ImagUnit()))
	requireEqual(t, expr.Frac(1, 2), expr.Div(expr.Int(2), expr.Int(4)))

	// a number times a single sum distributes
	requireEqual(t, expr.Add(expr.Mul(expr.Int(2), x), expr.Int(2)), expr.Mul(expr.Int(2), expr.Add(x, expr.One())))
}

func TestPow_Rules(t *testing.T) {
	x := expr.NewSymbol("x")

	cases := []struct {
		name      string
		got, want expr.Expr
	}{
		{"x^0", expr.Pow(x, expr.Zero()), expr.One()},
		{"x^1", expr.Pow(x, expr.One()), x},
		{"1^x", expr.Pow(expr.One(), x), expr.One()},
		{"2^10", expr.Pow(expr.Int(2), expr.Int(10)), expr.Int(1024)},
		{"2^-2", expr.Pow(expr.Int(2), expr.Int(-2)), expr.Frac(1, 4)},
		{"sqrt 4", expr.Sqrt(expr.Int(4)), expr.Int(2)},
		{"sqrt 3 squared", expr.Mul(expr.Sqrt(expr.Int(3)), expr.Sqrt(expr.Int(3))), expr.Int(3)},
		{"3^(3/2)", expr.Pow(expr.Int(3), expr.Frac(3, 2)), expr.Mul(expr.Int(3), expr.Sqrt(expr.Int(3)))},
		{"1/sqrt 3", expr.Div(expr.One(), expr.Sqrt(expr.Int(3))), expr.Mul(expr.Frac(1, 3), expr.Sqrt(expr.Int(3)))},
		{"(x^2)^3", expr.Pow(expr.Pow(x, expr.Int(2)), expr.Int(3)), expr.Pow(x, expr.Int(6))},
		{"(2x)^2", expr.Pow(expr.Mul(expr.Int(2), x), expr.Int(2)), expr.Mul(expr.Int(4), expr.Pow(x, expr.Int(2)))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireEqual(t, tc.want, tc.got)
		})
	}
}

func TestPow_NonCommutingBase(t *testing.T) {
	a := newGen("A", "op")
	requireEqual(t, expr.NCMul(a, a, a), expr.Pow(a, expr.Int(3)))
	_, held := expr.Pow(a, expr.Int(-1)).(*expr.Power)
	require.True(t, held)
}

func TestCompare_TotalOrder(t *testing.T) {
	s := expr.Symbols("x", "y")
	x, y := s[0], s[1]
	vals := []expr.Expr{
		expr.Int(3), expr.Frac(-1, 2), x, y,
		expr.Add(x, y), expr.Mul(x, y), expr.Pow(x, expr.Int(3)),
		expr.Sqrt(expr.Int(2)), newGen("A", "op"),
	}
	for _, a := range vals {
		require.Equal(t, 0, expr.Compare(a, a), "%s", a)
		for _, b := range vals {
			require.Equal(t, expr.Compare(a, b), -expr.Compare(b, a), "%s vs %s", a, b)
		}
	}
}

func TestSymbols_AreDistinctByIdentity(t *testing.T) {
	a, b := expr.NewSymbol("x"), expr.NewSymbol("x")
	require.False(t, expr.Equal(a, b))
	require.Equal(t, a.Name(), b.Name())
	requireEqual(t, expr.Mul(expr.Int(2), a), expr.Add(a, a))
}

func TestReturnType(t *testing.T) {
	x := expr.NewSymbol("x")
	a := newGen("A", "op")

	require.Equal(t, expr.Commutative, expr.ReturnType(x))
	require.Equal(t, expr.Commutative, expr.ReturnType(expr.Add(x, expr.One())))
	require.Equal(t, expr.NonCommutative, expr.ReturnType(a))
	require.Equal(t, expr.NonCommutative, expr.ReturnType(expr.Mul(x, a)))
	require.Equal(t, expr.Tag("op"), expr.ReturnTag(expr.Mul(x, a)))
	require.Equal(t, expr.Tag(""), expr.ReturnTag(x))
	require.Equal(t, "noncommutative_composite", expr.NonCommutativeComposite.String())
}

func TestPredicates(t *testing.T) {
	x := expr.NewSymbol("x")
	inv := expr.Pow(x, expr.Int(-1))

	require.True(t, expr.IsInteger(expr.Int(3)))
	require.False(t, expr.IsInteger(expr.Frac(1, 2)))
	require.True(t, expr.IsNumeric(expr.Frac(1, 2)))
	require.True(t, expr.IsSymbol(x))
	require.True(t, expr.IsPolynomial(expr.Add(expr.Pow(x, expr.Int(2)), x)))
	require.False(t, expr.IsPolynomial(inv))
	require.True(t, expr.IsRationalFunction(inv))
	require.False(t, expr.IsRationalFunction(expr.Sqrt(x)))
	require.False(t, expr.IsRationalFunction(newGen("A", "op")))
}
