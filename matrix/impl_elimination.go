// SPDX-License-Identifier: MIT
// Package matrix: row-echelon eliminations shared by Determinant and Solve.
//
// All three kernels work in place on a matrix that owns its buffer and share
// the same skeleton:
//   - walk columns c0 < limit while the current pivot row r0 < rows-1;
//   - pick the first row at or below r0 whose entry in c0 is non-zero
//     (symbolic pivoting) and swap it into r0, flipping the sign;
//   - a column without pivot sets the sign to 0 (det mode stops there);
//   - rows below r0 are combined with row r0 over every column, so an
//     augmented right-hand side is carried along;
//   - in det mode the pivot row is cleared to the right of the pivot, the
//     determinant being read from the diagonal or the last entry.
//
// Columns at or beyond limit never provide pivots.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/symkernel/expr"
)

// pivot finds the first row k ≥ ro whose entry in column co does not expand
// to zero and swaps it with row ro.
// Returns -1 when the column vanishes below ro, 0 when no swap was needed,
// k otherwise.
func (m *Dense) pivot(ro, co int) int {
	data := m.mutable()
	k := ro
	for k < m.r && expr.IsZero(expr.Expand(data[k*m.c+co])) {
		k++
	}
	switch {
	case k == m.r:
		return -1
	case k == ro:
		return 0
	}
	for c := 0; c < m.c; c++ {
		data[k*m.c+c], data[ro*m.c+c] = data[ro*m.c+c], data[k*m.c+c]
	}

	return k
}

// clearBelow zeroes columns [0, limit) of every row after r0. Those entries
// vanish mathematically; the write replaces unexpanded zeros.
func (m *Dense) clearBelow(r0, limit int, data []expr.Expr) {
	for r := r0 + 1; r < m.r; r++ {
		for c := 0; c < limit; c++ {
			data[r*m.c+c] = expr.Zero()
		}
	}
}

// gaussElimination eliminates with field division:
//
//	row₂ ← row₂ - (a₂/a₀)·row₀
//
// Non-numeric results are normalized after every update.
// Returns the permutation sign (0 when a column had no pivot).
func (m *Dense) gaussElimination(det bool, limit int) int {
	data := m.mutable()
	cols := m.c
	sign, r0 := 1, 0
	for c0 := 0; c0 < limit && r0 < m.r-1; c0++ {
		indx := m.pivot(r0, c0)
		if indx == -1 {
			sign = 0
			if det {
				return 0
			}
			continue
		}
		if indx > 0 {
			sign = -sign
		}
		for r2 := r0 + 1; r2 < m.r; r2++ {
			if a := data[r2*cols+c0]; !expr.IsZero(a) {
				piv := expr.Div(a, data[r0*cols+c0])
				for c := c0 + 1; c < cols; c++ {
					v := expr.Sub(data[r2*cols+c], expr.Mul(piv, data[r0*cols+c]))
					if !expr.IsNumeric(v) {
						v = expr.Normal(v)
					}
					data[r2*cols+c] = v
				}
			}
			for c := r0; c <= c0; c++ {
				data[r2*cols+c] = expr.Zero()
			}
		}
		if det {
			for c := r0 + 1; c < cols; c++ {
				data[r0*cols+c] = expr.Zero()
			}
		}
		r0++
	}
	m.clearBelow(r0, limit, data)

	return sign
}

// divisionFreeElimination eliminates without division:
//
//	new = pivot·entry - rowEntry·pivotRowEntry
//
// Entries are expanded after every update and grow by one pivot factor per
// step.
// Returns the permutation sign (0 when a column had no pivot).
func (m *Dense) divisionFreeElimination(det bool, limit int) int {
	data := m.mutable()
	cols := m.c
	sign, r0 := 1, 0
	for c0 := 0; c0 < limit && r0 < m.r-1; c0++ {
		indx := m.pivot(r0, c0)
		if indx == -1 {
			sign = 0
			if det {
				return 0
			}
			continue
		}
		if indx > 0 {
			sign = -sign
		}
		p := data[r0*cols+c0]
		for r2 := r0 + 1; r2 < m.r; r2++ {
			a := data[r2*cols+c0]
			for c := c0 + 1; c < cols; c++ {
				data[r2*cols+c] = expr.Expand(expr.Sub(
					expr.Mul(p, data[r2*cols+c]),
					expr.Mul(a, data[r0*cols+c]),
				))
			}
			for c := r0; c <= c0; c++ {
				data[r2*cols+c] = expr.Zero()
			}
		}
		if det {
			for c := r0 + 1; c < cols; c++ {
				data[r0*cols+c] = expr.Zero()
			}
		}
		r0++
	}
	m.clearBelow(r0, limit, data)

	return sign
}

// fractionFreeElimination is Bareiss elimination on separate numerator and
// denominator matrices.
//
// Implementation:
//   - Stage 1: every entry is normalized, its non-rational atoms replaced by
//     fresh symbols, and split into numerator N and denominator D.
//   - Stage 2: with pivot (r0, c0) and the previous pivot's N, D as divisors:
//
//	N' = (N₀₀·N₂₂·D₂₀·D₀₂ - N₂₀·N₀₂·D₀₀·D₂₂) / Nprev
//	D' = (D₂₀·D₀₂·D₀₀·D₂₂) / Dprev
//
//     Both divisions are exact by Sylvester's identity.
//   - Stage 3: entries are recombined as N/D and the atoms restored.
//
// Errors:
//   - ErrInexactDivision when a division leaves a remainder.
//
// Determinism:
//   - Pivot search substitutes the atoms back before testing for zero, so a
//     pivot is never an expression that only vanishes after restoring.
func (m *Dense) fractionFreeElimination(det bool, limit int) (int, error) {
	if m.r == 1 {
		return 1, nil
	}
	data := m.mutable()
	cols := m.c
	srl := expr.NewReplacements()
	num := make([]expr.Expr, len(data))
	den := make([]expr.Expr, len(data))
	for i, e := range data {
		num[i], den[i] = expr.NumerDenom(expr.ToRational(expr.Normal(e), srl))
	}

	var divN, divD expr.Expr = expr.One(), expr.One()
	sign, r0 := 1, 0
	for c0 := 0; c0 < limit && r0 < m.r-1; c0++ {
		indx := r0
		for indx < m.r && expr.IsZero(expr.Expand(srl.Restore(num[indx*cols+c0]))) {
			indx++
		}
		if indx == m.r {
			sign = 0
			if det {
				return 0, nil
			}
			continue
		}
		if indx > r0 {
			sign = -sign
			for c := c0; c < cols; c++ {
				num[indx*cols+c], num[r0*cols+c] = num[r0*cols+c], num[indx*cols+c]
				den[indx*cols+c], den[r0*cols+c] = den[r0*cols+c], den[indx*cols+c]
			}
		}
		for r2 := r0 + 1; r2 < m.r; r2++ {
			for c := c0 + 1; c < cols; c++ {
				dn := expr.Expand(expr.Sub(
					expr.Mul(num[r0*cols+c0], num[r2*cols+c], den[r2*cols+c0], den[r0*cols+c]),
					expr.Mul(num[r2*cols+c0], num[r0*cols+c], den[r0*cols+c0], den[r2*cols+c]),
				))
				dd := expr.Expand(expr.Mul(den[r2*cols+c0], den[r0*cols+c], den[r0*cols+c0], den[r2*cols+c]))
				qn, okN := expr.Divide(dn, divN)
				qd, okD := expr.Divide(dd, divD)
				if !okN || !okD {
					return 0, fmt.Errorf("%w: step (%d,%d) entry (%d,%d)", ErrInexactDivision, r0, c0, r2, c)
				}
				num[r2*cols+c], den[r2*cols+c] = qn, qd
			}
			for c := r0; c <= c0; c++ {
				num[r2*cols+c] = expr.Zero()
			}
		}
		divN = expr.Expand(num[r0*cols+c0])
		divD = expr.Expand(den[r0*cols+c0])
		if det {
			for c := 0; c < cols; c++ {
				num[r0*cols+c], den[r0*cols+c] = expr.Zero(), expr.One()
			}
		}
		r0++
	}
	for r := r0 + 1; r < m.r; r++ {
		for c := 0; c < limit; c++ {
			num[r*cols+c] = expr.Zero()
		}
	}

	for i := range data {
		data[i] = srl.Restore(expr.Div(num[i], den[i]))
	}

	return sign, nil
}
