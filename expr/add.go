// SPDX-License-Identifier: MIT
// Package expr: canonical sums.
//
// Canonical form of a Sum:
//   - Flattened (no Sum operand), numeric constant kept separately.
//   - Every term is (coef, rest) with rest free of a numeric coefficient;
//     like rests are collected, zero coefficients dropped.
//   - Terms sorted by Compare(rest); the constant is the last operand.
//   - At least one non-numeric term (otherwise Add returns a Num or a
//     single product).

package expr

import (
	"sort"
	"strings"
)

type term struct {
	coef *Num
	rest Expr
}

// Sum is a canonical sum of terms plus a numeric constant.
type Sum struct {
	terms    []term
	constant *Num
}

// Add returns the canonical sum of args.
func Add(args ...Expr) Expr {
	constant := zero
	var terms []term
	push := func(c *Num, rest Expr) {
		for i := range terms {
			if Equal(terms[i].rest, rest) {
				terms[i].coef = terms[i].coef.add(c)
				return
			}
		}
		terms = append(terms, term{coef: c, rest: rest})
	}
	for _, a := range args {
		switch t := a.(type) {
		case *Num:
			constant = constant.add(t)
		case *Sum:
			constant = constant.add(t.constant)
			for _, tt := range t.terms {
				push(tt.coef, tt.rest)
			}
		default:
			c, rest := splitCoef(a)
			push(c, rest)
		}
	}

	kept := terms[:0]
	for _, t := range terms {
		if !t.coef.isZero() {
			kept = append(kept, t)
		}
	}
	terms = kept
	sort.SliceStable(terms, func(i, j int) bool {
		return Compare(terms[i].rest, terms[j].rest) < 0
	})

	switch {
	case len(terms) == 0:
		return constant
	case len(terms) == 1 && constant.isZero():
		return termExpr(terms[0])
	}
	return &Sum{terms: terms, constant: constant}
}

// Sub returns a - b.
func Sub(a, b Expr) Expr { return Add(a, Neg(b)) }

// Neg returns -e.
func Neg(e Expr) Expr { return Mul(minusOne, e) }

// splitCoef separates the numeric coefficient of a product.
func splitCoef(e Expr) (*Num, Expr) {
	if p, ok := e.(*Product); ok && !p.coef.isOne() {
		return p.coef, p.withoutCoef()
	}
	return one, e
}

// termExpr rebuilds coef·rest.
func termExpr(t term) Expr {
	if t.coef.isOne() {
		return t.rest
	}
	return Mul(t.coef, t.rest)
}

func (s *Sum) String() string {
	parts := make([]string, 0, s.Nops())
	for i := 0; i < s.Nops(); i++ {
		parts = append(parts, s.Op(i).String())
	}
	return "(" + strings.Join(parts, "+") + ")"
}

func (s *Sum) TypeRank() int { return RankSum }

func (s *Sum) CompareSame(o Expr) int { return compareOps(s, o) }

func (s *Sum) Nops() int {
	if s.constant.isZero() {
		return len(s.terms)
	}
	return len(s.terms) + 1
}

func (s *Sum) Op(i int) Expr {
	if i < len(s.terms) {
		return termExpr(s.terms[i])
	}
	if i == len(s.terms) && !s.constant.isZero() {
		return s.constant
	}
	panic("expr: Sum operand out of range")
}

func (s *Sum) Map(f func(Expr) Expr) Expr {
	args := make([]Expr, s.Nops())
	for i := range args {
		args[i] = f(s.Op(i))
	}
	return Add(args...)
}
