// SPDX-License-Identifier: MIT
// Package expr: rational-function normalization.
//
// Conversion:
//   - Every maximal sub-expression that is not a number, sum, product or
//     integer power becomes one polynomial variable (an "atom"): symbols,
//     n^(1/2), indexed objects, non-commutative products.
//   - The expression is folded into a reduced fraction num/den of poly.Poly
//     values; every step cancels gcd(num, den) and makes den unit-normal.
//   - Conversion back goes through the canonical constructors.

package expr

import (
	"github.com/katalvlaran/symkernel/numeric"
	"github.com/katalvlaran/symkernel/poly"
)

// ratConv maps atoms to polynomial variables.
type ratConv struct {
	atoms []Expr
}

type ratFunc struct {
	num, den poly.Poly
}

func (c *ratConv) collect(e Expr) {
	switch t := e.(type) {
	case *Num:
		return
	case *Sum, *Product:
		for i := 0; i < e.Nops(); i++ {
			c.collect(e.Op(i))
		}
		return
	case *Power:
		if n, ok := t.exp.(*Num); ok && n.v.IsInteger() {
			if _, fits := n.v.Int64(); fits {
				c.collect(t.base)
				return
			}
		}
	}
	c.index(e)
}

func (c *ratConv) index(e Expr) int {
	for i, a := range c.atoms {
		if Equal(a, e) {
			return i
		}
	}
	c.atoms = append(c.atoms, e)
	return len(c.atoms) - 1
}

func (c *ratConv) toRat(e Expr) ratFunc {
	n := len(c.atoms)
	unit := poly.Const(n, numeric.One)
	switch t := e.(type) {
	case *Num:
		return ratFunc{num: poly.Const(n, t.v), den: unit}
	case *Sum:
		acc := ratFunc{num: poly.Zero(n), den: unit}
		for i := 0; i < t.Nops(); i++ {
			acc = ratAdd(acc, c.toRat(t.Op(i)))
		}
		return acc
	case *Product:
		acc := ratFunc{num: poly.Const(n, t.coef.v), den: unit}
		for _, f := range t.factors {
			acc = ratMul(acc, c.toRat(f))
		}
		return acc
	case *Power:
		if num, ok := t.exp.(*Num); ok && num.v.IsInteger() {
			if k, fits := num.v.Int64(); fits {
				b := c.toRat(t.base)
				if k >= 0 {
					return ratFunc{num: b.num.PowInt(int(k)), den: b.den.PowInt(int(k))}
				}
				if b.num.IsZero() {
					panic(numeric.ErrDivisionByZero)
				}
				return reduce(b.den.PowInt(int(-k)), b.num.PowInt(int(-k)))
			}
		}
	}
	return ratFunc{num: poly.Var(n, c.index(e)), den: unit}
}

func ratAdd(a, b ratFunc) ratFunc {
	g := poly.GCD(a.den, b.den)
	da, _ := poly.Divide(a.den, g)
	db, _ := poly.Divide(b.den, g)
	return reduce(a.num.Mul(db).Add(b.num.Mul(da)), a.den.Mul(db))
}

func ratMul(a, b ratFunc) ratFunc {
	return reduce(a.num.Mul(b.num), a.den.Mul(b.den))
}

// reduce cancels the gcd and makes the denominator unit-normal.
func reduce(num, den poly.Poly) ratFunc {
	n := num.NumVars()
	if num.IsZero() {
		return ratFunc{num: num, den: poly.Const(n, numeric.One)}
	}
	if g := poly.GCD(num, den); !g.IsConst() {
		num, _ = poly.Divide(num, g)
		den, _ = poly.Divide(den, g)
	}
	den, lc := den.UnitNormal()
	return ratFunc{num: num.Scale(lc.Inv()), den: den}
}

// fromPoly converts a polynomial back over the atom table.
func (c *ratConv) fromPoly(p poly.Poly) Expr {
	terms := p.Terms()
	args := make([]Expr, len(terms))
	for i, t := range terms {
		factors := []Expr{&Num{v: t.Coef}}
		for v, k := range t.Exp {
			if k != 0 {
				factors = append(factors, Pow(c.atoms[v], Int(int64(k))))
			}
		}
		args[i] = Mul(factors...)
	}
	return Add(args...)
}

func (c *ratConv) fromRat(r ratFunc) Expr {
	num := c.fromPoly(r.num)
	if r.den.IsConst() {
		return Mul(num, &Num{v: r.den.ConstValue().Inv()})
	}
	return Mul(num, Pow(c.fromPoly(r.den), minusOne))
}

// Normal brings e to the form num/den with gcd(num, den) = 1.
// Matrices are normalized entry by entry.
func Normal(e Expr) Expr {
	if _, ok := e.(MatrixValue); ok {
		return e.Map(Normal)
	}
	c := &ratConv{}
	c.collect(e)
	return c.fromRat(c.toRat(e))
}

// NumerDenom returns the reduced numerator and denominator of e.
func NumerDenom(e Expr) (num, den Expr) {
	c := &ratConv{}
	c.collect(e)
	r := c.toRat(e)
	return c.fromPoly(r.num), c.fromPoly(r.den)
}

// Divide returns a/b when both are polynomials and b divides a exactly.
func Divide(a, b Expr) (Expr, bool) {
	c := &ratConv{}
	c.collect(a)
	c.collect(b)
	ra, rb := c.toRat(a), c.toRat(b)
	if !ra.den.IsConst() || !rb.den.IsConst() || rb.num.IsZero() {
		return nil, false
	}
	q, ok := poly.Divide(ra.num, rb.num)
	if !ok {
		return nil, false
	}
	return c.fromPoly(q), true
}

// Replacements records atoms replaced by fresh symbols in ToRational.
type Replacements struct {
	originals []Expr
	symbols   []Expr
}

// NewReplacements returns an empty table.
func NewReplacements() *Replacements { return &Replacements{} }

// Len returns the number of replaced atoms.
func (r *Replacements) Len() int { return len(r.symbols) }

// ToRational replaces every non-rational atom of e (non-integer powers,
// indexed objects, other non-polynomial values) by a fresh symbol shared
// through r.
func ToRational(e Expr, r *Replacements) Expr {
	switch t := e.(type) {
	case *Num, *Symbol:
		return e
	case *Sum, *Product:
		return e.Map(func(x Expr) Expr { return ToRational(x, r) })
	case *Power:
		if n, ok := t.exp.(*Num); ok && n.v.IsInteger() {
			return Pow(ToRational(t.base, r), t.exp)
		}
	}
	for i, o := range r.originals {
		if Equal(o, e) {
			return r.symbols[i]
		}
	}
	s := NewSymbol("symbol")
	r.originals = append(r.originals, e)
	r.symbols = append(r.symbols, s)
	return s
}

// Restore substitutes the original atoms back.
func (r *Replacements) Restore(e Expr) Expr {
	if len(r.symbols) == 0 {
		return e
	}
	return SubsAll(e, r.symbols, r.originals)
}
