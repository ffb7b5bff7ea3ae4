// SPDX-License-Identifier: MIT
// Package expr: index contraction search.
//
// SimplifyIndexed expands its argument and, inside every product, looks for
// pairs of indexed factors sharing a dummy index. For each pair the base of
// the first factor (or, when one side commutes, of the second) is asked to
// contract; a successful Contraction replaces factor positions, the product
// is rebuilt and the search restarts. Sums combine indexed terms through
// IndexedAdder and absorb numeric coefficients through IndexedScaler.
//
// A symmetric and an antisymmetric object sharing two or more dummy
// indices make the whole product zero.
//
// Flattened sequence layout: commutative factors first, then the factors of
// the non-commutative part in their original order. Interposition rules of
// an algebra (e.g. "exactly one generator between") rely on that layout.

package expr

import "fmt"

// Replacement sets one sequence position to Value.
type Replacement struct {
	Pos   int
	Value Expr
}

// Contraction is the result of a Contractor. The zero value is NoMatch.
type Contraction struct {
	matched    bool
	self       Expr
	other      Expr
	extraSlots []Replacement
}

// NoMatch reports that the pair does not contract.
func NoMatch() Contraction { return Contraction{} }

// Replace sets the self and other positions to the given values.
func Replace(selfValue, otherValue Expr) Contraction {
	return Contraction{matched: true, self: selfValue, other: otherValue}
}

// Also adds a replacement of an arbitrary sequence position.
func (c Contraction) Also(pos int, value Expr) Contraction {
	c.extraSlots = append(append([]Replacement(nil), c.extraSlots...), Replacement{Pos: pos, Value: value})
	return c
}

// Matched reports a successful contraction.
func (c Contraction) Matched() bool { return c.matched }

// apply returns a new sequence with the replacements performed.
func (c Contraction) apply(self, other int, seq []Expr) ([]Expr, error) {
	out := append([]Expr(nil), seq...)
	out[self] = c.self
	out[other] = c.other
	for _, r := range c.extraSlots {
		if r.Pos < 0 || r.Pos >= len(out) {
			return nil, exprErrorf(opContractionApply, fmt.Errorf("%w: position %d outside sequence of %d", ErrInternal, r.Pos, len(out)))
		}
		out[r.Pos] = r.Value
	}
	return out, nil
}

// SimplifyIndexed contracts dummy indices throughout e.
func SimplifyIndexed(e Expr) (Expr, error) {
	return simplifyIndexed(e, 0)
}

func simplifyIndexed(e Expr, depth int) (Expr, error) {
	if depth > DefaultMaxDepth {
		return nil, exprErrorf(opSimplifyIndexed, ErrRecursionLimit)
	}
	e = Expand(e)
	switch t := e.(type) {
	case *Sum:
		return simplifySum(t, depth)
	case *Product, *NCProduct:
		return simplifyProduct(t, depth)
	case *Power:
		if factorsOf(t) != nil {
			return simplifyProduct(t, depth)
		}
	}
	return e, nil
}

func simplifySum(s *Sum, depth int) (Expr, error) {
	parts := make([]Expr, s.Nops())
	for i := range parts {
		r, err := simplifyIndexed(s.Op(i), depth+1)
		if err != nil {
			return nil, err
		}
		parts[i] = r
	}
	flat := Add(parts...)
	fs, ok := flat.(*Sum)
	if !ok {
		return absorbScalar(flat), nil
	}
	terms := make([]Expr, fs.Nops())
	for i := range terms {
		terms[i] = absorbScalar(fs.Op(i))
	}

	// pairwise merge through IndexedAdder
	for changed := true; changed; {
		changed = false
	scan:
		for i := 0; i < len(terms); i++ {
			a, ok := terms[i].(*Indexed)
			if !ok {
				continue
			}
			adder, ok := a.base.(IndexedAdder)
			if !ok {
				continue
			}
			for j := i + 1; j < len(terms); j++ {
				b, ok := terms[j].(*Indexed)
				if !ok {
					continue
				}
				r := adder.AddIndexed(a, b)
				if _, isSum := r.(*Sum); isSum {
					continue
				}
				terms[i] = r
				terms = append(terms[:j], terms[j+1:]...)
				changed = true
				break scan
			}
		}
	}
	return Add(terms...), nil
}

// absorbScalar turns c·X.i into X'.i when X scales.
func absorbScalar(e Expr) Expr {
	p, ok := e.(*Product)
	if !ok || len(p.factors) != 1 {
		return e
	}
	ix, ok := p.factors[0].(*Indexed)
	if !ok {
		return e
	}
	sc, ok := ix.base.(IndexedScaler)
	if !ok {
		return e
	}
	return sc.ScaleIndexed(ix, p.coef)
}

// factorsOf flattens a product into (commutative…, non-commutative…).
// A square of an indexed object contributes two factors. Returns nil when
// e is not a product.
func factorsOf(e Expr) []Expr {
	var comm, nc []Expr
	var walk func(x Expr)
	walk = func(x Expr) {
		switch t := x.(type) {
		case *Product:
			if !t.coef.isOne() {
				comm = append(comm, t.coef)
			}
			for _, f := range t.factors {
				walk(f)
			}
		case *NCProduct:
			for _, f := range t.factors {
				walk(f)
			}
		case *Power:
			if _, ok := t.base.(*Indexed); ok && isIntNum(t.exp, 2) {
				walk(t.base)
				walk(t.base)
				return
			}
			comm, nc = push(comm, nc, x)
		default:
			comm, nc = push(comm, nc, x)
		}
	}
	switch e.(type) {
	case *Product, *NCProduct:
		walk(e)
	case *Power:
		walk(e)
		if len(comm)+len(nc) < 2 {
			return nil
		}
	default:
		return nil
	}
	return append(comm, nc...)
}

func push(comm, nc []Expr, x Expr) ([]Expr, []Expr) {
	if ReturnType(x) == Commutative {
		return append(comm, x), nc
	}
	return comm, append(nc, x)
}

// isIntNum reports e == k.
func isIntNum(e Expr, k int64) bool {
	n, ok := e.(*Num)
	if !ok {
		return false
	}
	v, ok := n.v.Int64()
	return ok && v == k
}

// rebuild multiplies a flattened sequence back together.
func rebuild(seq []Expr) Expr {
	var comm, nc []Expr
	for _, f := range seq {
		if ReturnType(f) == Commutative {
			comm = append(comm, f)
		} else {
			nc = append(nc, f)
		}
	}
	if len(nc) > 0 {
		comm = append(comm, NCMul(nc...))
	}
	return Mul(comm...)
}

func simplifyProduct(e Expr, depth int) (Expr, error) {
	seq := factorsOf(e)
	for i := 0; i < len(seq); i++ {
		a, ok := seq[i].(*Indexed)
		if !ok {
			continue
		}
		for j := i + 1; j < len(seq); j++ {
			b, ok := seq[j].(*Indexed)
			if !ok || len(a.DummiesWith(b)) == 0 {
				continue
			}
			if vanishesBySymmetry(a, b) {
				return zero, nil
			}
			c, self, other, err := tryPair(seq, i, j)
			if err != nil {
				return nil, exprErrorf(opSimplifyIndexed, err)
			}
			if !c.matched {
				continue
			}
			next, err := c.apply(self, other, seq)
			if err != nil {
				return nil, err
			}
			return simplifyIndexed(rebuild(next), depth+1)
		}
	}
	return absorbScalar(e), nil
}

// vanishesBySymmetry reports a symmetric object contracted with an
// antisymmetric one over at least two indices.
func vanishesBySymmetry(a, b *Indexed) bool {
	if len(a.DummiesWith(b)) < 2 {
		return false
	}
	return (a.sym == SymSymmetric && b.sym == SymAntisymmetric) ||
		(a.sym == SymAntisymmetric && b.sym == SymSymmetric)
}

// tryPair asks the base at i, then (when a side commutes) the base at j.
func tryPair(seq []Expr, i, j int) (Contraction, int, int, error) {
	a, b := seq[i].(*Indexed), seq[j].(*Indexed)
	if ct, ok := a.base.(Contractor); ok {
		c, err := ct.Contract(i, j, seq)
		if err != nil || c.matched {
			return c, i, j, err
		}
	}
	if ReturnType(a) != Commutative && ReturnType(b) != Commutative {
		return NoMatch(), i, j, nil
	}
	if ct, ok := b.base.(Contractor); ok {
		c, err := ct.Contract(j, i, seq)
		return c, j, i, err
	}
	return NoMatch(), i, j, nil
}
