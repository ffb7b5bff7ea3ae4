// SPDX-License-Identifier: MIT
// Package matrix: linear systems.

package matrix

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/symkernel/expr"
)

const opSolve = "Solve"

// Solve returns X with m·X = rhs, where vars holds one distinct symbol per
// unknown (n×p for an m×n system with p right-hand sides).
//
// Implementation:
//   - Stage 1: ValidateSolveShapes; every entry of vars must be a distinct
//     symbol.
//   - Stage 2: build the augmented matrix [m | rhs] and bring it to row
//     echelon form. Auto selection: numeric ⇒ Gauss; fewer than three rows
//     ⇒ division-free; otherwise Bareiss.
//   - Stage 3: back-substitute each right-hand-side column bottom-up. A
//     row's first non-zero column fixes one unknown; unknowns of columns
//     without pivot keep their symbol from vars (free parameters).
//
// Errors:
//   - ErrDimensionMismatch when the shapes do not fit.
//   - ErrNotSymbol when vars holds a non-symbol or a repeated symbol.
//   - ErrInconsistent when a zero row meets a non-zero right-hand side.
//   - ErrInexactDivision from Bareiss (internal bug).
//
// Complexity:
//   - O(r·n·(n+p)) entry operations for the elimination.
func (m *Dense) Solve(vars, rhs *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateSolveShapes(m, vars, rhs); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := validateUnknowns(vars); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	rows, n, p := m.r, m.c, rhs.c

	// Build the augmented matrix
	width := n + p
	data := make([]expr.Expr, rows*width)
	for r := 0; r < rows; r++ {
		copy(data[r*width:], m.buf.data[r*n:(r+1)*n])
		copy(data[r*width+n:], rhs.buf.data[r*p:(r+1)*p])
	}
	aug := newDense(rows, width, data)

	algo := o.SolveAlgo
	if algo == SolveAuto {
		algo = SolveBareiss
		if rows < 3 {
			algo = SolveDivFree
		}
		if aug.allNumeric() {
			algo = SolveGauss
		}
	}
	o.Logger.Debug("matrix solve",
		slog.String("algo", algo.String()),
		slog.Int("rows", rows),
		slog.Int("unknowns", n),
		slog.Int("rhs", p),
	)

	// Eliminate
	switch algo {
	case SolveGauss:
		aug.gaussElimination(false, n)
	case SolveDivFree:
		aug.divisionFreeElimination(false, n)
	default:
		if _, err := aug.fractionFreeElimination(false, n); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	// Back-substitute
	sol := zeros(n * p)
	for co := 0; co < p; co++ {
		last := n // first column already solved in this rhs column
		for r := rows - 1; r >= 0; r-- {
			fnz := 0
			for fnz < n && expr.IsZero(expr.Normal(aug.at(r, fnz))) {
				fnz++
			}
			if fnz == n {
				if !expr.IsZero(expr.Normal(aug.at(r, n+co))) {
					return nil, matrixErrorf(opSolve, fmt.Errorf("%w: row %d, rhs column %d", ErrInconsistent, r, co))
				}
				continue
			}
			for c := fnz + 1; c < last; c++ {
				sol[c*p+co] = vars.at(c, co)
			}
			terms := make([]expr.Expr, 0, n-fnz)
			terms = append(terms, aug.at(r, n+co))
			for c := fnz + 1; c < n; c++ {
				terms = append(terms, expr.Neg(expr.Mul(aug.at(r, c), sol[c*p+co])))
			}
			sol[fnz*p+co] = expr.Normal(expr.Div(expr.Add(terms...), aug.at(r, fnz)))
			last = fnz
		}
		for c := 0; c < last; c++ {
			sol[c*p+co] = vars.at(c, co)
		}
	}

	return newDense(n, p, sol), nil
}

// validateUnknowns checks that vars holds distinct symbols.
func validateUnknowns(vars *Dense) error {
	seen := make([]expr.Expr, 0, len(vars.buf.data))
	for i, e := range vars.buf.data {
		if !expr.IsSymbol(e) {
			return fmt.Errorf("%w: entry %d is %s", ErrNotSymbol, i, e)
		}
		for _, s := range seen {
			if expr.Equal(s, e) {
				return fmt.Errorf("%w: %s repeats", ErrNotSymbol, e)
			}
		}
		seen = append(seen, e)
	}
	return nil
}
