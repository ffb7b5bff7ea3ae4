// SPDX-License-Identifier: MIT
// Package poly: sparse multivariate polynomials over numeric.Number.
//
// Representation:
//   - A Poly lives in a fixed ring of n variables x₀…xₙ₋₁.
//   - Terms are kept sorted in strictly descending lexicographic order of
//     their exponent vectors, with no zero coefficients. The zero polynomial
//     has no terms.
//
// Complexity (t = number of terms):
//   - Add/Sub: O((t₁+t₂)·log) after merge-sort normalization.
//   - Mul:     O(t₁·t₂·log).
//   - Divide:  O(steps·t₂) leading-term division.

package poly

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/symkernel/numeric"
)

// Term is one monomial: Coef · Π xᵢ^Exp[i].
type Term struct {
	Exp  []int
	Coef numeric.Number
}

// Poly is an immutable sparse polynomial.
type Poly struct {
	nvars int
	terms []Term
}

// Zero returns the zero polynomial in n variables.
func Zero(n int) Poly { return Poly{nvars: n} }

// Const returns the constant c in n variables.
func Const(n int, c numeric.Number) Poly {
	if c.IsZero() {
		return Zero(n)
	}
	return Poly{nvars: n, terms: []Term{{Exp: make([]int, n), Coef: c}}}
}

// Var returns the variable x_i in n variables.
func Var(n, i int) Poly { return Monomial(n, i, 1) }

// Monomial returns x_i^k in n variables.
func Monomial(n, i, k int) Poly {
	exp := make([]int, n)
	exp[i] = k
	return Poly{nvars: n, terms: []Term{{Exp: exp, Coef: numeric.One}}}
}

// FromTerms builds a normalized polynomial from arbitrary terms.
func FromTerms(n int, terms []Term) Poly {
	cp := make([]Term, len(terms))
	for i, t := range terms {
		cp[i] = Term{Exp: append([]int(nil), t.Exp...), Coef: t.Coef}
	}
	return Poly{nvars: n, terms: normalize(cp)}
}

// NumVars returns the ring size.
func (p Poly) NumVars() int { return p.nvars }

// Terms returns a copy of the terms in descending lex order.
func (p Poly) Terms() []Term {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = Term{Exp: append([]int(nil), t.Exp...), Coef: t.Coef}
	}
	return out
}

// IsZero reports p == 0.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// IsConst reports a polynomial of total degree ≤ 0.
func (p Poly) IsConst() bool {
	if len(p.terms) == 0 {
		return true
	}
	return len(p.terms) == 1 && isZeroExp(p.terms[0].Exp)
}

// ConstValue returns the constant term (0 if absent).
func (p Poly) ConstValue() numeric.Number {
	for _, t := range p.terms {
		if isZeroExp(t.Exp) {
			return t.Coef
		}
	}
	return numeric.Zero
}

// Lead returns the lexicographically leading term. p must be nonzero.
func (p Poly) Lead() Term { return p.terms[0] }

// Equal reports structural equality of two normalized polynomials.
func (p Poly) Equal(q Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if cmpExp(p.terms[i].Exp, q.terms[i].Exp) != 0 || !p.terms[i].Coef.Equal(q.terms[i].Coef) {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	terms := make([]Term, 0, len(p.terms)+len(q.terms))
	terms = append(terms, p.terms...)
	terms = append(terms, q.terms...)
	return Poly{nvars: p.nvars, terms: normalize(terms)}
}

// Neg returns -p.
func (p Poly) Neg() Poly { return p.Scale(numeric.MinusOne) }

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

// Scale returns c · p.
func (p Poly) Scale(c numeric.Number) Poly {
	if c.IsZero() {
		return Zero(p.nvars)
	}
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = Term{Exp: t.Exp, Coef: t.Coef.Mul(c)}
	}
	return Poly{nvars: p.nvars, terms: out}
}

// Mul returns p · q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Zero(p.nvars)
	}
	terms := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			exp := make([]int, p.nvars)
			for i := range exp {
				exp[i] = a.Exp[i] + b.Exp[i]
			}
			terms = append(terms, Term{Exp: exp, Coef: a.Coef.Mul(b.Coef)})
		}
	}
	return Poly{nvars: p.nvars, terms: normalize(terms)}
}

// PowInt returns p^k for k ≥ 0 by repeated squaring.
func (p Poly) PowInt(k int) Poly {
	result := Const(p.nvars, numeric.One)
	base := p
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// Degree returns the highest exponent of x_v, or -1 for the zero polynomial.
func (p Poly) Degree(v int) int {
	if p.IsZero() {
		return -1
	}
	d := 0
	for _, t := range p.terms {
		if t.Exp[v] > d {
			d = t.Exp[v]
		}
	}
	return d
}

// LDegree returns the lowest exponent of x_v, or -1 for the zero polynomial.
func (p Poly) LDegree(v int) int {
	if p.IsZero() {
		return -1
	}
	d := p.terms[0].Exp[v]
	for _, t := range p.terms[1:] {
		if t.Exp[v] < d {
			d = t.Exp[v]
		}
	}
	return d
}

// CoeffIn returns the coefficient of x_v^d, a polynomial free of x_v.
func (p Poly) CoeffIn(v, d int) Poly {
	var terms []Term
	for _, t := range p.terms {
		if t.Exp[v] == d {
			exp := append([]int(nil), t.Exp...)
			exp[v] = 0
			terms = append(terms, Term{Exp: exp, Coef: t.Coef})
		}
	}
	return Poly{nvars: p.nvars, terms: normalize(terms)}
}

// UnitNormal divides p by its leading coefficient and returns both parts.
// The zero polynomial is returned unchanged with coefficient 1.
func (p Poly) UnitNormal() (Poly, numeric.Number) {
	if p.IsZero() {
		return p, numeric.One
	}
	lc := p.terms[0].Coef
	if lc.IsOne() {
		return p, lc
	}
	return p.Scale(lc.Inv()), lc
}

// String renders a debugging form over x0, x1, ….
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString("(" + t.Coef.String() + ")")
		for v, e := range t.Exp {
			if e == 0 {
				continue
			}
			b.WriteString("*x")
			b.WriteString(strconv.Itoa(v))
			if e != 1 {
				b.WriteString("^" + strconv.Itoa(e))
			}
		}
	}
	return b.String()
}

// normalize sorts descending, merges equal exponents and drops zeros.
func normalize(terms []Term) []Term {
	if len(terms) == 0 {
		return nil
	}
	sort.SliceStable(terms, func(i, j int) bool {
		return cmpExp(terms[i].Exp, terms[j].Exp) > 0
	})
	out := terms[:0]
	for _, t := range terms {
		if n := len(out); n > 0 && cmpExp(out[n-1].Exp, t.Exp) == 0 {
			out[n-1] = Term{Exp: out[n-1].Exp, Coef: out[n-1].Coef.Add(t.Coef)}
			continue
		}
		out = append(out, t)
	}
	res := make([]Term, 0, len(out))
	for _, t := range out {
		if !t.Coef.IsZero() {
			res = append(res, t)
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// cmpExp compares exponent vectors lexicographically.
func cmpExp(a, b []int) int {
	for i := range a {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}

func isZeroExp(e []int) bool {
	for _, x := range e {
		if x != 0 {
			return false
		}
	}
	return true
}
