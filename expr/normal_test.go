// SPDX-License-Identifier: MIT
package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/expr"
)

func TestNormal_CancelsCommonFactor(t *testing.T) {
	x := expr.NewSymbol("x")
	one := expr.One()

	got := expr.Normal(expr.Div(expr.Sub(expr.Pow(x, expr.Int(2)), one), expr.Sub(x, one)))
	requireEqual(t, expr.Add(x, one), got)

	// rational coefficients stay in the numerator
	got = expr.Normal(expr.Div(expr.Add(expr.Mul(expr.Int(2), x), expr.Int(2)), expr.Int(4)))
	requireEqual(t, expr.Add(expr.Mul(expr.Frac(1, 2), x), expr.Frac(1, 2)), got)

	require.True(t, expr.IsZero(expr.Normal(expr.Sub(expr.Div(one, x), expr.Div(expr.Int(2), expr.Mul(expr.Int(2), x))))))
}

func TestNumerDenom(t *testing.T) {
	s := expr.Symbols("x", "y")
	x, y := s[0], s[1]

	num, den := expr.NumerDenom(expr.Add(expr.Div(expr.One(), x), expr.Div(expr.One(), y)))
	requireEqual(t, expr.Add(x, y), num)
	requireEqual(t, expr.Mul(x, y), den)

	num, den = expr.NumerDenom(expr.Mul(expr.Int(3), x))
	requireEqual(t, expr.Mul(expr.Int(3), x), num)
	requireEqual(t, expr.One(), den)
}

func TestDivide(t *testing.T) {
	s := expr.Symbols("x", "y")
	x, y := s[0], s[1]

	q, ok := expr.Divide(expr.Sub(expr.Pow(x, expr.Int(2)), expr.Pow(y, expr.Int(2))), expr.Sub(x, y))
	require.True(t, ok)
	requireEqual(t, expr.Add(x, y), q)

	q, ok = expr.Divide(expr.Zero(), y)
	require.True(t, ok)
	requireEqual(t, expr.Zero(), q)

	_, ok = expr.Divide(x, y)
	require.False(t, ok)
	_, ok = expr.Divide(x, expr.Zero())
	require.False(t, ok)
	_, ok = expr.Divide(expr.Div(expr.One(), x), expr.One())
	require.False(t, ok)
}

func TestToRational_Restore(t *testing.T) {
	x := expr.NewSymbol("x")
	r2, r3 := expr.Sqrt(expr.Int(2)), expr.Sqrt(expr.Int(3))

	r := expr.NewReplacements()
	e := expr.Add(r2, x)
	q := expr.ToRational(e, r)
	require.Equal(t, 1, r.Len())
	require.True(t, expr.IsPolynomial(q))
	require.False(t, expr.Has(q, r2))
	requireEqual(t, e, r.Restore(q))

	// the same atom maps to the same symbol
	again := expr.ToRational(expr.Mul(r2, r3), r)
	require.Equal(t, 2, r.Len())
	require.True(t, expr.Has(again, expr.ToRational(r2, r)))
	requireEqual(t, expr.Mul(r2, r3), r.Restore(again))

	empty := expr.NewReplacements()
	requireEqual(t, x, empty.Restore(x))
}

func TestNormal_ThreeVariables(t *testing.T) {
	s := expr.Symbols("x", "y", "z")
	x, y, z := s[0], s[1], s[2]
	one := expr.One()

	yz := expr.Mul(y, z)
	num := expr.Expand(expr.Mul(expr.Add(x, yz), expr.Sub(z, one)))
	requireEqual(t, expr.Add(x, yz), expr.Normal(expr.Div(num, expr.Sub(z, one))))

	sum := expr.Add(
		expr.Div(one, expr.Mul(x, y)),
		expr.Div(one, expr.Mul(y, z)),
		expr.Div(one, expr.Mul(x, z)),
	)
	n, d := expr.NumerDenom(sum)
	requireEqual(t, expr.Add(x, y, z), n)
	requireEqual(t, expr.Mul(x, y, z), d)
}
