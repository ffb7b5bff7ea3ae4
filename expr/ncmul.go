// SPDX-License-Identifier: MIT
// Package expr: associative products of non-commuting factors.
//
// NCProduct keeps factor order. Evaluate canonicalizes a raw sequence:
//
//  1. Flatten nested NCProducts and commutative products whose return type
//     is non-commutative (associativity).
//  2. Empty ⇒ 1; a single factor ⇒ that factor.
//  3. Any composite factor ⇒ the flattened sequence, held as evaluated.
//  4. Commutative factors are pulled out: c₁·c₂·NCMul(rest…).
//  5. The rest is grouped by algebra tag, stable in first appearance. One
//     group is handed to its algebra's SequenceSimplifier; several groups
//     become a commutative product of the per-group results.
//
// Complexity: Evaluate O(n) plus hook cost; Expand O(Π kᵢ) for kᵢ terms in
// factor i.

package expr

import (
	"fmt"
	"strings"
)

// NCProduct is an ordered product of non-commuting factors.
type NCProduct struct {
	factors   []Expr
	evaluated bool
}

// NCMul returns the evaluated non-commutative product of factors.
func NCMul(factors ...Expr) Expr { return NonSimplified(factors).Evaluate() }

// NonSimplified returns the raw product without evaluation.
func NonSimplified(factors []Expr) *NCProduct {
	return &NCProduct{factors: append([]Expr(nil), factors...)}
}

// Simplified returns factors as an already evaluated product. Algebra hooks
// use it to build their result without re-entering Evaluate.
func Simplified(factors []Expr) Expr {
	switch len(factors) {
	case 0:
		return one
	case 1:
		return factors[0]
	}
	return &NCProduct{factors: append([]Expr(nil), factors...), evaluated: true}
}

// Factors returns a copy of the factor sequence.
func (p *NCProduct) Factors() []Expr { return append([]Expr(nil), p.factors...) }

// IsEvaluated reports whether Evaluate has been applied.
func (p *NCProduct) IsEvaluated() bool { return p.evaluated }

// Evaluate canonicalizes the product. Idempotent.
func (p *NCProduct) Evaluate() Expr {
	if p.evaluated {
		return p
	}
	assoc := flattenNC(p.factors, nil)
	switch len(assoc) {
	case 0:
		return one
	case 1:
		return assoc[0]
	}

	var comm, nc []Expr
	composite := false
	for _, f := range assoc {
		switch k := ReturnType(f); k {
		case Commutative:
			comm = append(comm, f)
		case NonCommutative:
			nc = append(nc, f)
		case NonCommutativeComposite:
			composite = true
			nc = append(nc, f)
		default:
			panic(exprErrorf(opNCMulEvaluate, fmt.Errorf("%w: return type %d", ErrInternal, int(k))))
		}
	}
	if composite {
		return &NCProduct{factors: assoc, evaluated: true}
	}
	if len(comm) > 0 {
		return Mul(append(comm, NCMul(nc...))...)
	}

	var tags []Tag
	groups := make(map[Tag][]Expr)
	for _, f := range nc {
		t := ReturnTag(f)
		if _, ok := groups[t]; !ok {
			tags = append(tags, t)
		}
		groups[t] = append(groups[t], f)
	}
	if len(tags) == 1 {
		if ss := simplifierOf(nc[0]); ss != nil {
			return ss.SimplifyNCSequence(nc)
		}
		return Simplified(nc)
	}
	parts := make([]Expr, len(tags))
	for i, t := range tags {
		parts[i] = NCMul(groups[t]...)
	}
	return Mul(parts...)
}

// flattenNC splices nested NCProducts and non-commutative Products.
func flattenNC(factors, dst []Expr) []Expr {
	for _, f := range factors {
		switch t := f.(type) {
		case *NCProduct:
			dst = flattenNC(t.factors, dst)
		case *Product:
			if ReturnType(t) == Commutative {
				dst = append(dst, f)
				continue
			}
			ops := make([]Expr, t.Nops())
			for i := range ops {
				ops[i] = t.Op(i)
			}
			dst = flattenNC(ops, dst)
		default:
			dst = append(dst, f)
		}
	}
	return dst
}

// simplifierOf finds the algebra hook responsible for f.
func simplifierOf(f Expr) SequenceSimplifier {
	if ix, ok := f.(*Indexed); ok {
		if ss, ok := ix.base.(SequenceSimplifier); ok {
			return ss
		}
		return nil
	}
	if ss, ok := f.(SequenceSimplifier); ok {
		return ss
	}
	return nil
}

// Expand distributes over sum-valued factors. Every combination of one
// term per factor is produced exactly once, in factor order.
func (p *NCProduct) Expand() Expr {
	choices := make([][]Expr, len(p.factors))
	for i, f := range p.factors {
		ef := Expand(f)
		if s, ok := ef.(*Sum); ok {
			ops := make([]Expr, s.Nops())
			for k := range ops {
				ops[k] = s.Op(k)
			}
			choices[i] = ops
		} else {
			choices[i] = []Expr{ef}
		}
	}

	// multi-radix counter over the factor term lists
	counter := make([]int, len(choices))
	var terms []Expr
	for {
		seq := make([]Expr, len(choices))
		for i, c := range counter {
			seq[i] = choices[i][c]
		}
		terms = append(terms, NCMul(seq...))

		pos := len(counter) - 1
		for pos >= 0 {
			counter[pos]++
			if counter[pos] < len(choices[pos]) {
				break
			}
			counter[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return Add(terms...)
}

// Diff applies the product rule, keeping factor order.
func (p *NCProduct) Diff(s *Symbol) (Expr, error) {
	terms := make([]Expr, 0, len(p.factors))
	for i, f := range p.factors {
		df, err := Diff(f, s)
		if err != nil {
			return nil, err
		}
		if IsZero(df) {
			continue
		}
		seq := append([]Expr(nil), p.factors...)
		seq[i] = df
		terms = append(terms, NCMul(seq...))
	}
	return Add(terms...), nil
}

// Coeff returns the coefficient of s^n. For n == 0 it is the product of
// the factors' constant coefficients; otherwise factors carrying s^n are
// replaced by their coefficient and the result is 0 when none does.
func (p *NCProduct) Coeff(s Expr, n int) Expr {
	seq := make([]Expr, len(p.factors))
	if n == 0 {
		for i, f := range p.factors {
			seq[i] = Coeff(f, s, 0)
		}
		return NCMul(seq...)
	}
	found := false
	for i, f := range p.factors {
		c := Coeff(f, s, n)
		if IsZero(c) {
			seq[i] = f
			continue
		}
		seq[i] = c
		found = true
	}
	if !found {
		return zero
	}
	return NCMul(seq...)
}

// Degree sums the factor degrees in s.
func (p *NCProduct) Degree(s Expr) int {
	d := 0
	for _, f := range p.factors {
		d += Degree(f, s)
	}
	return d
}

// LDegree sums the factor low degrees in s.
func (p *NCProduct) LDegree(s Expr) int {
	d := 0
	for _, f := range p.factors {
		d += LDegree(f, s)
	}
	return d
}

// EvalM evaluates every factor as a matrix; when all are matrices they are
// multiplied in order, otherwise the product of the evaluated factors is
// returned.
func (p *NCProduct) EvalM() (Expr, error) {
	evs := make([]Expr, len(p.factors))
	allMatrices := true
	for i, f := range p.factors {
		ev, err := EvalM(f)
		if err != nil {
			return nil, err
		}
		evs[i] = ev
		if _, ok := ev.(MatrixValue); !ok {
			allMatrices = false
		}
	}
	if !allMatrices || len(evs) == 0 {
		return NCMul(evs...), nil
	}
	prod := evs[0]
	for _, m := range evs[1:] {
		next, err := prod.(MatrixValue).MatMul(m)
		if err != nil {
			return nil, exprErrorf(opEvalM, err)
		}
		prod = next
	}
	return prod, nil
}

// ReturnType classifies the product.
func (p *NCProduct) ReturnType() ReturnKind { return factorsReturnType(p.factors) }

// ReturnTag names the algebra of the first non-commuting factor.
func (p *NCProduct) ReturnTag() Tag { return factorsReturnTag(p.factors) }

func (p *NCProduct) String() string {
	parts := make([]string, len(p.factors))
	for i, f := range p.factors {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, "·") + ")"
}

func (p *NCProduct) TypeRank() int { return RankNCProduct }

func (p *NCProduct) CompareSame(o Expr) int { return compareOps(p, o) }

func (p *NCProduct) Nops() int { return len(p.factors) }

func (p *NCProduct) Op(i int) Expr { return p.factors[i] }

func (p *NCProduct) Map(f func(Expr) Expr) Expr {
	args := make([]Expr, len(p.factors))
	for i, x := range p.factors {
		args[i] = f(x)
	}
	return NCMul(args...)
}
