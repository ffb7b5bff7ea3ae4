// SPDX-License-Identifier: MIT
// Package expr: classification predicates.

package expr

// IsZero reports the canonical zero.
func IsZero(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.isZero()
}

// IsOne reports the canonical one.
func IsOne(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.isOne()
}

// IsNumeric reports a numeric atom.
func IsNumeric(e Expr) bool {
	_, ok := e.(*Num)
	return ok
}

// IsInteger reports a real integer atom.
func IsInteger(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.v.IsInteger()
}

// IsSymbol reports a symbol.
func IsSymbol(e Expr) bool {
	_, ok := e.(*Symbol)
	return ok
}

// IsPolynomial reports a polynomial in symbols with complex-rational
// coefficients.
func IsPolynomial(e Expr) bool { return isRational(e, false) }

// IsRationalFunction reports a quotient of such polynomials.
func IsRationalFunction(e Expr) bool { return isRational(e, true) }

func isRational(e Expr, allowNegative bool) bool {
	switch t := e.(type) {
	case *Num, *Symbol:
		return true
	case *Sum, *Product:
		for i := 0; i < e.Nops(); i++ {
			if !isRational(e.Op(i), allowNegative) {
				return false
			}
		}
		return true
	case *Power:
		n, ok := t.exp.(*Num)
		if !ok || !n.v.IsInteger() {
			return false
		}
		if n.v.IsNegative() && !allowNegative {
			return false
		}
		return isRational(t.base, allowNegative)
	}
	return false
}
