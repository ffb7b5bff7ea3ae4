// SPDX-License-Identifier: MIT

package color_test

import (
	"testing"

	"github.com/katalvlaran/symkernel/color"
	"github.com/katalvlaran/symkernel/expr"
)

func TestContract_Generators(t *testing.T) {
	a, b, c := idx("a"), idx("b"), idx("c")
	ta, tb, tc := MustT(t, a, 0), MustT(t, b, 0), MustT(t, c, 0)

	t.Run("adjacent", func(t *testing.T) {
		got := MustSimplify(t, expr.NCMul(ta, ta))
		requireEqual(t, expr.Mul(expr.Frac(4, 3), color.One(0)), got)
	})
	t.Run("adjacent via Mul", func(t *testing.T) {
		got := MustSimplify(t, expr.Mul(ta, ta))
		requireEqual(t, expr.Mul(expr.Frac(4, 3), color.One(0)), got)
	})
	t.Run("one generator between", func(t *testing.T) {
		got := MustSimplify(t, expr.NCMul(ta, tb, ta))
		requireEqual(t, expr.Mul(expr.Frac(-1, 6), tb), got)
	})
	t.Run("run of generators", func(t *testing.T) {
		got := MustSimplify(t, expr.NCMul(ta, tb, tc, ta))
		want := expr.Add(
			expr.Mul(expr.Frac(1, 4), MustDelta(t, b, c), color.One(0)),
			expr.Mul(expr.Frac(-1, 6), expr.NCMul(tb, tc)),
		)
		requireEqual(t, want, got)
	})
	t.Run("inside a sum", func(t *testing.T) {
		x := expr.NewSymbol("x")
		got := MustSimplify(t, expr.Add(expr.Mul(x, expr.NCMul(ta, ta)), tb))
		want := expr.Add(expr.Mul(expr.Frac(4, 3), x, color.One(0)), tb)
		requireEqual(t, want, got)
	})
	t.Run("Casimir on a product", func(t *testing.T) {
		// T.a T.a T.b T.b = (4/3)² ONE
		got := MustSimplify(t, expr.NCMul(ta, ta, tb, tb))
		requireEqual(t, expr.Mul(expr.Frac(16, 9), color.One(0)), got)
	})
}

func TestContract_StructureConstants(t *testing.T) {
	a, b, c := idx("a"), idx("b"), idx("c")
	k, l := idx("k"), idx("l")

	cases := []struct {
		name string
		in   expr.Expr
		want expr.Expr
	}{
		{"dd full", expr.Mul(MustD(t, a, b, c), MustD(t, a, b, c)), expr.Frac(40, 3)},
		{"ff full", expr.Mul(MustF(t, a, b, c), MustF(t, c, b, a)), expr.Int(-24)},
		{"dd two", expr.Mul(MustD(t, a, k, l), MustD(t, b, k, l)), expr.Mul(expr.Frac(5, 3), MustDelta(t, a, b))},
		{"ff two", expr.Mul(MustF(t, a, k, l), MustF(t, b, k, l)), expr.Mul(expr.Int(3), MustDelta(t, a, b))},
		{"ff two signed", expr.Mul(MustF(t, k, a, l), MustF(t, b, k, l)), expr.Mul(expr.Int(-3), MustDelta(t, a, b))},
		{"df vanishes", expr.Mul(MustD(t, a, k, l), MustF(t, b, k, l)), expr.Zero()},
		{"dTT", expr.Mul(MustD(t, a, k, l), expr.NCMul(MustT(t, k, 0), MustT(t, l, 0))), expr.Mul(expr.Frac(5, 6), MustT(t, a, 0))},
		{"fTT", expr.Mul(MustF(t, a, k, l), expr.NCMul(MustT(t, k, 0), MustT(t, l, 0))), expr.Mul(expr.Frac(3, 2), expr.ImagUnit(), MustT(t, a, 0))},
		{"fTT reversed", expr.Mul(MustF(t, a, k, l), expr.NCMul(MustT(t, l, 0), MustT(t, k, 0))), expr.Mul(expr.Frac(-3, 2), expr.ImagUnit(), MustT(t, a, 0))},
		{"delta on generator", expr.Mul(MustDelta(t, a, b), MustT(t, b, 0)), MustT(t, a, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireEqual(t, tc.want, MustSimplify(t, tc.in))
		})
	}
}

func TestContract_LabelsStaySeparate(t *testing.T) {
	a := idx("a")
	t0, t1 := MustT(t, a, 0), MustT(t, a, 1)
	requireEqual(t, expr.Zero(), expr.Sub(t0, t0))
	if expr.Equal(t0, t1) {
		t.Fatalf("generators of different labels compare equal")
	}

	p := expr.Mul(t0, t1)
	requireEqual(t, p, MustSimplify(t, p))

	// both algebras contract independently
	got := MustSimplify(t, expr.Mul(expr.NCMul(t0, t0), expr.NCMul(t1, t1)))
	want := expr.Mul(expr.Frac(16, 9), color.One(0), color.One(1))
	requireEqual(t, want, got)
}

func TestSimplifyNCSequence_DropsOne(t *testing.T) {
	a := idx("a")
	ta := MustT(t, a, 0)
	requireEqual(t, ta, expr.NCMul(color.One(0), ta, color.One(0)))
	requireEqual(t, color.One(0), expr.NCMul(color.One(0), color.One(0)))
}
