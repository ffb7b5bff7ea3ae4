// SPDX-License-Identifier: MIT
// Package color: numeric structure constants of SU(3).
//
// Both tables are keyed by the ascending index triple (1..8). Triples absent
// from a table evaluate to zero. The antisymmetric sign of the original
// index order is applied by expr.NewIndexed before the lookup.

package color

import "github.com/katalvlaran/symkernel/expr"

type triple [3]int

// dValue looks up d_abc for an ascending triple.
func dValue(v [3]int) expr.Expr {
	sqrt3 := expr.Sqrt(expr.Int(3))
	switch triple(v) {
	case triple{1, 4, 6}, triple{1, 5, 7}, triple{2, 5, 6}, triple{3, 4, 4}, triple{3, 5, 5}:
		return expr.Frac(1, 2)
	case triple{2, 4, 7}, triple{3, 6, 6}, triple{3, 7, 7}:
		return expr.Frac(-1, 2)
	case triple{1, 1, 8}, triple{2, 2, 8}, triple{3, 3, 8}:
		return expr.Div(expr.One(), sqrt3)
	case triple{8, 8, 8}:
		return expr.Div(expr.Int(-1), sqrt3)
	case triple{4, 4, 8}, triple{5, 5, 8}, triple{6, 6, 8}, triple{7, 7, 8}:
		// Gell-Mann sign: Tr(λ₄λ₄λ₈) = -1/√3
		return expr.Div(expr.Int(-1), expr.Mul(expr.Int(2), sqrt3))
	}
	return expr.Zero()
}

// fValue looks up f_abc for an ascending triple.
func fValue(v [3]int) expr.Expr {
	switch triple(v) {
	case triple{1, 2, 3}:
		return expr.One()
	case triple{1, 4, 7}, triple{2, 4, 6}, triple{2, 5, 7}, triple{3, 4, 5}:
		return expr.Frac(1, 2)
	case triple{1, 5, 6}, triple{3, 6, 7}:
		return expr.Frac(-1, 2)
	case triple{4, 5, 8}, triple{6, 7, 8}:
		return expr.Mul(expr.Frac(1, 2), expr.Sqrt(expr.Int(3)))
	}
	return expr.Zero()
}
