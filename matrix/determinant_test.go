// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/expr"
	"github.com/katalvlaran/symkernel/matrix"
)

var allDetAlgos = []matrix.DeterminantAlgo{
	matrix.DetAuto,
	matrix.DetGauss,
	matrix.DetDivFree,
	matrix.DetBareiss,
	matrix.DetLaplace,
}

// TestDeterminant_NumericAgreement checks every algorithm against known
// integer determinants, including inputs that need row swaps.
func TestDeterminant_NumericAgreement(t *testing.T) {
	cases := []struct {
		name string
		m    *matrix.Dense
		want int64
	}{
		{"tridiagonal3", MustInts(t, 3, 3, 2, -1, 0, -1, 2, -1, 0, -1, 2), 4},
		{"dense4", MustInts(t, 4, 4, 1, 2, 3, 4, 5, 6, 7, 8, 2, 6, 4, 8, 3, 1, 1, 2), 72},
		{"pivoting5", MustInts(t, 5, 5,
			0, 0, 1, 0, 2,
			3, 0, 0, 0, 0,
			0, 1, 0, 0, 0,
			0, 0, 0, 4, 0,
			0, 5, 0, 0, 1), 12},
		{"cyclic3", MustInts(t, 3, 3, 1, 2, 0, 0, 1, 3, 4, 0, 1), 25},
		{"singular2", MustInts(t, 2, 2, 1, 2, 2, 4), 0},
	}
	for _, tc := range cases {
		for _, algo := range allDetAlgos {
			t.Run(tc.name+"/"+algo.String(), func(t *testing.T) {
				got := MustDet(t, tc.m, matrix.WithDeterminantAlgo(algo))
				requireSameValue(t, expr.Int(tc.want), got)
			})
		}
	}
}

func TestDeterminant_SymbolicAgreement(t *testing.T) {
	s := expr.Symbols("a", "b", "c", "d", "e", "f", "g", "h", "i")
	a, b, c, d, e, f, g, h, i := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8]

	generic := MustRows(t,
		[]expr.Expr{a, b, c},
		[]expr.Expr{d, e, f},
		[]expr.Expr{g, h, i},
	)
	genericDet := expr.Expand(expr.Add(
		expr.Mul(a, expr.Sub(expr.Mul(e, i), expr.Mul(f, h))),
		expr.Neg(expr.Mul(b, expr.Sub(expr.Mul(d, i), expr.Mul(f, g)))),
		expr.Mul(c, expr.Sub(expr.Mul(d, h), expr.Mul(e, g))),
	))

	one := expr.One()
	zero := expr.Zero()
	band := MustRows(t,
		[]expr.Expr{a, one, zero, zero},
		[]expr.Expr{one, a, one, zero},
		[]expr.Expr{zero, one, a, one},
		[]expr.Expr{zero, zero, one, a},
	)
	bandDet := expr.Add(expr.Pow(a, expr.Int(4)), expr.Mul(expr.Int(-3), expr.Pow(a, expr.Int(2))), one)

	rational := MustRows(t,
		[]expr.Expr{expr.Div(one, a), one},
		[]expr.Expr{one, one},
	)
	rationalDet := expr.Div(expr.Sub(one, a), a)

	sqrt3 := expr.Sqrt(expr.Int(3))
	radical := MustRows(t,
		[]expr.Expr{sqrt3, one},
		[]expr.Expr{one, sqrt3},
	)

	cases := []struct {
		name string
		m    *matrix.Dense
		want expr.Expr
	}{
		{"generic3", generic, genericDet},
		{"band4", band, bandDet},
		{"rational2", rational, rationalDet},
		{"radical2", radical, expr.Int(2)},
	}
	for _, tc := range cases {
		for _, algo := range allDetAlgos {
			t.Run(tc.name+"/"+algo.String(), func(t *testing.T) {
				requireSameValue(t, tc.want, MustDet(t, tc.m, matrix.WithDeterminantAlgo(algo)))
			})
		}
	}
}

// TestDeterminant_MixedSymbolic runs every algorithm on a 4×4 matrix in
// three symbols with a rational entry; Gauss normalizes after each update.
func TestDeterminant_MixedSymbolic(t *testing.T) {
	m := mixedSymbolic(t)
	want := MustDet(t, m, matrix.WithDeterminantAlgo(matrix.DetLaplace))
	for _, algo := range allDetAlgos {
		t.Run(algo.String(), func(t *testing.T) {
			got := within(t, 15*time.Second, func() (expr.Expr, error) {
				return m.Determinant(matrix.WithDeterminantAlgo(algo))
			})
			requireSameValue(t, want, got)
		})
	}
}

func TestDeterminant_OneByOne(t *testing.T) {
	x := expr.NewSymbol("x")
	m := MustRows(t, []expr.Expr{expr.Mul(x, expr.Add(x, expr.One()))})
	requireSameValue(t, expr.Add(expr.Pow(x, expr.Int(2)), x), MustDet(t, m))
}

func TestDeterminant_NonSquare(t *testing.T) {
	_, err := MustInts(t, 2, 3, 1, 2, 3, 4, 5, 6).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestDeterminant_AutoSelection reads the chosen algorithm from the Debug log.
func TestDeterminant_AutoSelection(t *testing.T) {
	s := expr.Symbols("a", "b", "c", "d", "e")
	sparse, err := matrix.Diag(s[0], s[1], s[2], s[3], s[4])
	require.NoError(t, err)
	dense := MustRows(t,
		[]expr.Expr{s[0], s[1], expr.One()},
		[]expr.Expr{s[2], s[3], expr.One()},
		[]expr.Expr{s[4], expr.One(), expr.One()},
	)

	cases := []struct {
		name string
		m    *matrix.Dense
		algo string
	}{
		{"numeric", MustInts(t, 2, 2, 1, 2, 3, 4), "algo=gauss"},
		{"sparse", sparse, "algo=bareiss"},
		{"dense symbolic", dense, "algo=laplace"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			MustDet(t, tc.m, matrix.WithLogger(log))
			require.Contains(t, buf.String(), "matrix determinant")
			require.Contains(t, buf.String(), tc.algo)
		})
	}

	requireSameValue(t, expr.Mul(s[0], s[1], s[2], s[3], s[4]), MustDet(t, sparse))
}
