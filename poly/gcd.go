// SPDX-License-Identifier: MIT
// Package poly: exact division, pseudo-remainder and GCD.
//
// GCD algorithm (recursive, primitive PRS):
//  1. A single-term operand has a monomial gcd: minimal exponents, no search.
//  2. Pick the main variable v: the smallest index occurring in a or b.
//  3. If one operand is free of v, gcd(a, b) = gcd(a, content_v(b)).
//  4. Split a and b into content (gcd of coefficients in v, recursively) and
//     unit-normal primitive part.
//  5. Evaluate the other variables at a fixed point where both leading
//     coefficients survive; coprime univariate images prove the primitive
//     parts coprime.
//  6. Otherwise iterate pseudo-remainders on the primitive parts, reducing
//     every remainder to its unit-normal primitive part so coefficients stay
//     bounded by the size of the true remainder sequence.
//  7. gcd = gcd(contents) · primitive part of the last nonzero remainder.
//
// The result is unit-normal (leading coefficient 1). Coefficients live in a
// field, so constants never contribute a nontrivial factor.

package poly

import "github.com/katalvlaran/symkernel/numeric"

// evalPrimes feeds the evaluation points of the coprimality test.
var evalPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43}

// evalAttempts bounds the number of points tried before falling back to PRS.
const evalAttempts = 3

// Divide returns q with a = q·b when the division is exact.
// ok is false for b == 0 or when b does not divide a.
func Divide(a, b Poly) (q Poly, ok bool) {
	if b.IsZero() {
		return Poly{}, false
	}
	q = Zero(a.nvars)
	if a.IsZero() {
		return q, true
	}
	lb := b.terms[0]
	r := a
	for !r.IsZero() {
		lt := r.terms[0]
		exp := make([]int, a.nvars)
		for i := range exp {
			exp[i] = lt.Exp[i] - lb.Exp[i]
			if exp[i] < 0 {
				return Poly{}, false
			}
		}
		t := Poly{nvars: a.nvars, terms: []Term{{Exp: exp, Coef: lt.Coef.Div(lb.Coef)}}}
		q = q.Add(t)
		r = r.Sub(t.Mul(b))
	}
	return q, true
}

// PseudoRem returns the pseudo-remainder of a by b with respect to x_v:
// lc_v(b)^k · a = q·b + r with deg_v(r) < deg_v(b).
func PseudoRem(a, b Poly, v int) Poly {
	db := b.Degree(v)
	lb := b.CoeffIn(v, db)
	r := a
	for !r.IsZero() && r.Degree(v) >= db {
		dr := r.Degree(v)
		lr := r.CoeffIn(v, dr)
		shift := Monomial(a.nvars, v, dr-db)
		r = lb.Mul(r).Sub(lr.Mul(shift).Mul(b))
	}
	return r
}

// Content returns the unit-normal gcd of the coefficients of p in x_v.
func Content(p Poly, v int) Poly {
	g := Zero(p.nvars)
	seen := map[int]bool{}
	for _, t := range p.terms {
		d := t.Exp[v]
		if seen[d] {
			continue
		}
		seen[d] = true
		g = GCD(g, p.CoeffIn(v, d))
		if g.IsConst() && !g.IsZero() {
			return g
		}
	}
	return g
}

// PrimitivePart returns p / content_v(p).
func PrimitivePart(p Poly, v int) Poly {
	if p.IsZero() {
		return p
	}
	c := Content(p, v)
	q, ok := Divide(p, c)
	if !ok {
		// content always divides; keep p rather than lose information
		return p
	}
	return q
}

// GCD returns the unit-normal greatest common divisor of a and b.
// gcd(0, 0) = 0.
func GCD(a, b Poly) Poly {
	if a.IsZero() {
		g, _ := b.UnitNormal()
		return g
	}
	if b.IsZero() {
		g, _ := a.UnitNormal()
		return g
	}
	if a.IsConst() || b.IsConst() {
		return Const(a.nvars, numeric.One)
	}
	if len(a.terms) == 1 || len(b.terms) == 1 {
		return monomialGCD(a, b)
	}

	v := mainVar(a, b)
	switch {
	case a.Degree(v) == 0:
		return GCD(a, Content(b, v))
	case b.Degree(v) == 0:
		return GCD(Content(a, v), b)
	}

	ca, cb := Content(a, v), Content(b, v)
	pa, _ := Divide(a, ca)
	pb, _ := Divide(b, cb)
	pa, _ = pa.UnitNormal()
	pb, _ = pb.UnitNormal()
	c := GCD(ca, cb)

	if coprimeImages(pa, pb, v) {
		return c
	}

	if pa.Degree(v) < pb.Degree(v) {
		pa, pb = pb, pa
	}
	for !pb.IsZero() {
		r := PseudoRem(pa, pb, v)
		pa = pb
		if r.IsZero() {
			break
		}
		if r.Degree(v) == 0 {
			// coprime primitive parts
			pa = Const(a.nvars, numeric.One)
			break
		}
		pb, _ = PrimitivePart(r, v).UnitNormal()
	}
	g, _ := c.Mul(PrimitivePart(pa, v)).UnitNormal()
	return g
}

// monomialGCD handles an operand with a single term: every divisor of a
// monomial is a monomial, so the gcd takes the minimal exponent per variable.
func monomialGCD(a, b Poly) Poly {
	exp := append([]int(nil), a.terms[0].Exp...)
	for _, p := range []Poly{a, b} {
		for _, t := range p.terms {
			for i, e := range t.Exp {
				if e < exp[i] {
					exp[i] = e
				}
			}
		}
	}
	return Poly{nvars: a.nvars, terms: []Term{{Exp: exp, Coef: numeric.One}}}
}

// coprimeImages reports whether a and b, primitive in x_v, are coprime,
// judged from univariate images. At a point where neither leading
// coefficient in x_v vanishes the true gcd keeps its degree, so a constant
// image gcd proves deg_v gcd(a, b) = 0. false means unknown or not coprime.
func coprimeImages(a, b Poly, v int) bool {
	da, db := a.Degree(v), b.Degree(v)
	pt := make([]numeric.Number, a.nvars)
	for attempt := 0; attempt < evalAttempts; attempt++ {
		for i := range pt {
			pt[i] = numeric.FromInt(evalPrimes[(i+5*attempt)%len(evalPrimes)])
		}
		ua, ub := evalExcept(a, v, pt), evalExcept(b, v, pt)
		if ua.Degree(v) != da || ub.Degree(v) != db {
			continue
		}
		return univariateGCD(ua, ub, v).Degree(v) == 0
	}
	return false
}

// evalExcept substitutes pt[i] for every x_i with i != v.
func evalExcept(p Poly, v int, pt []numeric.Number) Poly {
	terms := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		c := t.Coef
		for i, e := range t.Exp {
			if i != v && e > 0 {
				c = c.Mul(pt[i].PowInt(int64(e)))
			}
		}
		exp := make([]int, p.nvars)
		exp[v] = t.Exp[v]
		terms = append(terms, Term{Exp: exp, Coef: c})
	}
	return Poly{nvars: p.nvars, terms: normalize(terms)}
}

// univariateGCD runs Euclid over the field on polynomials in x_v alone.
// With a monic divisor the pseudo-remainder is the ordinary remainder.
func univariateGCD(a, b Poly, v int) Poly {
	a, _ = a.UnitNormal()
	b, _ = b.UnitNormal()
	for !b.IsZero() {
		r := PseudoRem(a, b, v)
		a = b
		b, _ = r.UnitNormal()
	}
	return a
}

// mainVar returns the smallest variable index occurring in a or b, or -1.
func mainVar(a, b Poly) int {
	best := -1
	for _, p := range []Poly{a, b} {
		for _, t := range p.terms {
			for i, e := range t.Exp {
				if e > 0 && (best == -1 || i < best) {
					best = i
				}
			}
		}
	}
	return best
}
