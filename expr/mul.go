// SPDX-License-Identifier: MIT
// Package expr: canonical commutative products.
//
// Canonical form of a Product:
//   - Flattened (no Product operand), one numeric coefficient (never 0).
//   - Commutative factors with equal bases merged into one power.
//   - Non-commuting factors belong to pairwise distinct algebras; two
//     factors of the same algebra (or any composite factor) route the whole
//     non-commuting part through NCMul.
//   - Factors sorted by Compare; the coefficient is the last operand.
//   - A numeric coefficient times a single Sum is distributed.

package expr

import (
	"sort"
	"strings"
)

// Product is a canonical commutative product.
type Product struct {
	coef    *Num
	factors []Expr
}

// Mul returns the canonical product of args (in order for non-commuting
// factors).
func Mul(args ...Expr) Expr {
	coef := one
	items := make([]Expr, 0, len(args))
	for _, a := range args {
		switch t := a.(type) {
		case *Num:
			coef = coef.mul(t)
		case *Product:
			coef = coef.mul(t.coef)
			items = append(items, t.factors...)
		default:
			items = append(items, a)
		}
	}
	if coef.isZero() {
		return zero
	}
	if len(items) == 0 {
		return coef
	}

	var comm, nc []Expr
	for _, it := range items {
		if ReturnType(it) == Commutative {
			comm = append(comm, it)
		} else {
			nc = append(nc, it)
		}
	}
	if needsNCRouting(nc) {
		rest := make([]Expr, 0, len(comm)+2)
		rest = append(rest, comm...)
		rest = append(rest, coef, NCMul(nc...))
		return Mul(rest...)
	}

	// merge equal commutative bases
	type basePow struct{ base, exp Expr }
	var pows []basePow
outer:
	for _, it := range comm {
		b, e := splitPower(it)
		for i := range pows {
			if Equal(pows[i].base, b) {
				pows[i].exp = Add(pows[i].exp, e)
				continue outer
			}
		}
		pows = append(pows, basePow{base: b, exp: e})
	}

	factors := append([]Expr(nil), nc...)
	reflatten := false
	for _, bp := range pows {
		f := bp.base
		if !isOneNum(bp.exp) {
			f = Pow(bp.base, bp.exp)
		}
		switch ft := f.(type) {
		case *Num:
			coef = coef.mul(ft)
		case *Product:
			reflatten = true
			factors = append(factors, ft)
		default:
			factors = append(factors, f)
		}
	}
	if coef.isZero() {
		return zero
	}
	if reflatten {
		return Mul(append(factors, coef)...)
	}
	if len(factors) == 0 {
		return coef
	}
	if len(factors) == 1 {
		if coef.isOne() {
			return factors[0]
		}
		if s, ok := factors[0].(*Sum); ok {
			args := make([]Expr, s.Nops())
			for i := range args {
				args[i] = Mul(coef, s.Op(i))
			}
			return Add(args...)
		}
	}
	sort.SliceStable(factors, func(i, j int) bool {
		return Compare(factors[i], factors[j]) < 0
	})
	return &Product{coef: coef, factors: factors}
}

// Div returns a / b.
func Div(a, b Expr) Expr { return Mul(a, Pow(b, minusOne)) }

// needsNCRouting reports whether the non-commuting factors must be combined
// by NCMul: two of the same algebra, or any composite factor.
func needsNCRouting(nc []Expr) bool {
	if len(nc) < 2 {
		return false
	}
	seen := make(map[Tag]bool, len(nc))
	for _, f := range nc {
		if ReturnType(f) == NonCommutativeComposite {
			return true
		}
		tag := ReturnTag(f)
		if seen[tag] {
			return true
		}
		seen[tag] = true
	}
	return false
}

// splitPower returns (base, exponent), treating non-powers as e^1.
func splitPower(e Expr) (Expr, Expr) {
	if p, ok := e.(*Power); ok {
		return p.base, p.exp
	}
	return e, one
}

func isOneNum(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.isOne()
}

// Coef returns the numeric coefficient.
func (p *Product) Coef() *Num { return p.coef }

// Factors returns a copy of the non-numeric factors.
func (p *Product) Factors() []Expr { return append([]Expr(nil), p.factors...) }

// withoutCoef returns the product with coefficient 1.
func (p *Product) withoutCoef() Expr {
	if len(p.factors) == 1 {
		return p.factors[0]
	}
	return &Product{coef: one, factors: p.factors}
}

func (p *Product) String() string {
	parts := make([]string, 0, p.Nops())
	for i := 0; i < p.Nops(); i++ {
		parts = append(parts, p.Op(i).String())
	}
	return strings.Join(parts, "*")
}

func (p *Product) TypeRank() int { return RankProduct }

func (p *Product) CompareSame(o Expr) int { return compareOps(p, o) }

func (p *Product) Nops() int {
	if p.coef.isOne() {
		return len(p.factors)
	}
	return len(p.factors) + 1
}

func (p *Product) Op(i int) Expr {
	if i < len(p.factors) {
		return p.factors[i]
	}
	if i == len(p.factors) && !p.coef.isOne() {
		return p.coef
	}
	panic("expr: Product operand out of range")
}

func (p *Product) Map(f func(Expr) Expr) Expr {
	args := make([]Expr, p.Nops())
	for i := range args {
		args[i] = f(p.Op(i))
	}
	return Mul(args...)
}
