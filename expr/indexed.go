// SPDX-License-Identifier: MIT
// Package expr: indices, indexed objects and the algebra hook surface.
//
// An Indexed value is base.i₁.i₂… where the base decides what the object
// means (a color generator, a structure constant, a matrix, δ). The base
// may implement any of the hook interfaces below; the substrate calls them
// at construction (EvalIndexed), during non-commutative product evaluation
// (SequenceSimplifier) and from the contraction search (Contractor,
// IndexedAdder, IndexedScaler).

package expr

import (
	"fmt"
	"strings"
)

// Idx is an index with a value (number or symbol) and a dimension.
type Idx struct {
	value Expr
	dim   Expr
}

// NewIdx returns an index of the given value and dimension.
func NewIdx(value, dim Expr) *Idx { return &Idx{value: value, dim: dim} }

// Value returns the index value.
func (x *Idx) Value() Expr { return x.value }

// Dim returns the index dimension.
func (x *Idx) Dim() Expr { return x.dim }

// IsNumeric reports a non-negative integer value.
func (x *Idx) IsNumeric() bool {
	n, ok := x.value.(*Num)
	return ok && n.v.IsNonNegInt()
}

// IsSymbolic reports a non-numeric value.
func (x *Idx) IsSymbolic() bool {
	_, ok := x.value.(*Num)
	return !ok
}

// IntValue returns the numeric value.
func (x *Idx) IntValue() (int, bool) {
	n, ok := x.value.(*Num)
	if !ok {
		return 0, false
	}
	k, ok := n.v.Int64()
	if !ok || k < 0 {
		return 0, false
	}
	return int(k), true
}

// IsDummyPair reports two occurrences of the same symbolic index.
func IsDummyPair(a, b *Idx) bool {
	return a.IsSymbolic() && Equal(a.value, b.value) && Equal(a.dim, b.dim)
}

func (x *Idx) String() string { return "." + x.value.String() }

func (x *Idx) TypeRank() int { return RankIdx }

func (x *Idx) CompareSame(o Expr) int {
	ox := o.(*Idx)
	if c := Compare(x.value, ox.value); c != 0 {
		return c
	}
	return Compare(x.dim, ox.dim)
}

func (x *Idx) Nops() int { return 2 }

func (x *Idx) Op(i int) Expr {
	switch i {
	case 0:
		return x.value
	case 1:
		return x.dim
	}
	panic("expr: Idx operand out of range")
}

func (x *Idx) Map(f func(Expr) Expr) Expr { return NewIdx(f(x.value), f(x.dim)) }

// Symmetry of an indexed object under index exchange.
type Symmetry int

const (
	// SymNone keeps the given index order.
	SymNone Symmetry = iota
	// SymSymmetric sorts indices.
	SymSymmetric
	// SymAntisymmetric sorts indices, tracking the permutation sign; a
	// repeated index makes the object zero.
	SymAntisymmetric
)

// Indexed is base.i₁.i₂… with a declared symmetry.
type Indexed struct {
	base    Expr
	sym     Symmetry
	indices []*Idx
}

// IndexedEvaluator evaluates an indexed object at construction.
// Returning ix itself keeps it unevaluated.
type IndexedEvaluator interface {
	EvalIndexed(ix *Indexed) (Expr, error)
}

// SequenceSimplifier simplifies a same-algebra factor sequence of an
// evaluated NCProduct.
type SequenceSimplifier interface {
	SimplifyNCSequence(factors []Expr) Expr
}

// Contractor tries to contract the factor at self with the factor at other
// in the flattened product seq.
type Contractor interface {
	Contract(self, other int, seq []Expr) (Contraction, error)
}

// IndexedAdder combines two indexed terms of a sum; returning
// Add(self, other) means no combination.
type IndexedAdder interface {
	AddIndexed(self, other *Indexed) Expr
}

// IndexedScaler absorbs a numeric factor into an indexed object.
type IndexedScaler interface {
	ScaleIndexed(self *Indexed, c *Num) Expr
}

// NewIndexed builds and evaluates base.indices.
func NewIndexed(base Expr, sym Symmetry, indices ...*Idx) (Expr, error) {
	ix, sign := canonicalIndexed(base, sym, indices)
	if sign == 0 {
		return zero, nil
	}
	var result Expr = ix
	if ev, ok := base.(IndexedEvaluator); ok {
		r, err := ev.EvalIndexed(ix)
		if err != nil {
			return nil, exprErrorf(opNewIndexed, err)
		}
		result = r
	}
	if sign < 0 {
		return Mul(minusOne, result), nil
	}
	return result, nil
}

// HoldIndexed builds base.indices in canonical order without evaluation.
// The sign of an antisymmetric reordering is applied.
func HoldIndexed(base Expr, sym Symmetry, indices ...*Idx) Expr {
	ix, sign := canonicalIndexed(base, sym, indices)
	switch {
	case sign == 0:
		return zero
	case sign < 0:
		return Mul(minusOne, ix)
	}
	return ix
}

// canonicalIndexed sorts indices per symmetry and returns the sign.
func canonicalIndexed(base Expr, sym Symmetry, indices []*Idx) (*Indexed, int) {
	idx := append([]*Idx(nil), indices...)
	sign := 1
	if sym != SymNone {
		// insertion sort: counts transpositions
		for i := 1; i < len(idx); i++ {
			for j := i; j > 0 && Compare(idx[j-1], idx[j]) > 0; j-- {
				idx[j-1], idx[j] = idx[j], idx[j-1]
				sign = -sign
			}
		}
		if sym == SymAntisymmetric {
			for i := 1; i < len(idx); i++ {
				if Equal(idx[i-1], idx[i]) {
					return nil, 0
				}
			}
		} else {
			sign = 1
		}
	}
	return &Indexed{base: base, sym: sym, indices: idx}, sign
}

// Base returns the base object.
func (ix *Indexed) Base() Expr { return ix.base }

// Symmetry returns the declared symmetry.
func (ix *Indexed) Symmetry() Symmetry { return ix.sym }

// Indices returns a copy of the indices.
func (ix *Indexed) Indices() []*Idx { return append([]*Idx(nil), ix.indices...) }

// NumIndices returns the number of indices.
func (ix *Indexed) NumIndices() int { return len(ix.indices) }

// Index returns index i.
func (ix *Indexed) Index(i int) *Idx { return ix.indices[i] }

// AllIndicesNumeric reports whether every index has a numeric value.
func (ix *Indexed) AllIndicesNumeric() bool {
	for _, i := range ix.indices {
		if !i.IsNumeric() {
			return false
		}
	}
	return true
}

// HasDummyIndexFor reports whether ix carries a dummy partner of i.
func (ix *Indexed) HasDummyIndexFor(i *Idx) bool {
	for _, j := range ix.indices {
		if IsDummyPair(i, j) {
			return true
		}
	}
	return false
}

// SelfDummies returns the values of symbolic indices occurring twice in ix.
func (ix *Indexed) SelfDummies() []*Idx {
	var out []*Idx
	for i := range ix.indices {
		for j := i + 1; j < len(ix.indices); j++ {
			if IsDummyPair(ix.indices[i], ix.indices[j]) {
				out = append(out, ix.indices[i])
			}
		}
	}
	return out
}

// DummiesWith returns, in ix order, the indices of ix that pair with an
// index of other.
func (ix *Indexed) DummiesWith(other *Indexed) []*Idx {
	var out []*Idx
	for _, i := range ix.indices {
		if other.HasDummyIndexFor(i) {
			out = append(out, i)
		}
	}
	return out
}

// FreeIndicesExcept returns the indices of ix not Equal to any in drop.
func (ix *Indexed) FreeIndicesExcept(drop []*Idx) []*Idx {
	var out []*Idx
next:
	for _, i := range ix.indices {
		for _, d := range drop {
			if Equal(i, d) {
				continue next
			}
		}
		out = append(out, i)
	}
	return out
}

func (ix *Indexed) String() string {
	var b strings.Builder
	b.WriteString(ix.base.String())
	for _, i := range ix.indices {
		b.WriteString(i.String())
	}
	return b.String()
}

func (ix *Indexed) TypeRank() int { return RankIndexed }

func (ix *Indexed) CompareSame(o Expr) int {
	oi := o.(*Indexed)
	if c := Compare(ix.base, oi.base); c != 0 {
		return c
	}
	if ix.sym != oi.sym {
		if ix.sym < oi.sym {
			return -1
		}
		return 1
	}
	return compareOps(ix, oi)
}

func (ix *Indexed) Nops() int { return 1 + len(ix.indices) }

func (ix *Indexed) Op(i int) Expr {
	if i == 0 {
		return ix.base
	}
	return ix.indices[i-1]
}

// Map rebuilds the object; operands that stop being indices are ignored,
// and an evaluation error keeps the rebuilt object unevaluated.
func (ix *Indexed) Map(f func(Expr) Expr) Expr {
	base := f(ix.base)
	indices := make([]*Idx, len(ix.indices))
	for i, old := range ix.indices {
		if ni, ok := f(old).(*Idx); ok {
			indices[i] = ni
		} else {
			indices[i] = old
		}
	}
	r, err := NewIndexed(base, ix.sym, indices...)
	if err != nil {
		return HoldIndexed(base, ix.sym, indices...)
	}
	return r
}

// Delta returns the Kronecker delta δ(i, j). The dimensions must agree.
func Delta(i, j *Idx) (Expr, error) {
	if !Equal(i.dim, j.dim) {
		return nil, exprErrorf(opDelta, fmt.Errorf("%w: dimensions %s and %s differ", ErrInvalidArgument, i.dim, j.dim))
	}
	return NewIndexed(deltaBase{}, SymSymmetric, i, j)
}

// deltaBase is the base of δ.
type deltaBase struct{}

func (deltaBase) String() string { return "delta" }

func (deltaBase) TypeRank() int { return RankTensor }

func (deltaBase) CompareSame(o Expr) int { return CompareTensorName("delta", o) }

func (deltaBase) Nops() int { return 0 }

func (deltaBase) Op(int) Expr { panic("expr: delta has no operands") }

func (d deltaBase) Map(func(Expr) Expr) Expr { return d }

// TensorNamer is implemented by tensor bases so that bases of different
// packages sharing RankTensor order deterministically.
type TensorNamer interface {
	TensorName() string
}

func (deltaBase) TensorName() string { return "delta" }

// CompareTensorName orders tensor bases of RankTensor by TensorName.
func CompareTensorName(name string, o Expr) int {
	on := ""
	if tn, ok := o.(TensorNamer); ok {
		on = tn.TensorName()
	}
	return strings.Compare(name, on)
}

// EvalIndexed: numeric ⇒ 0/1; a dummy pair ⇒ the dimension.
func (deltaBase) EvalIndexed(ix *Indexed) (Expr, error) {
	i, j := ix.indices[0], ix.indices[1]
	if i.IsNumeric() && j.IsNumeric() {
		if Equal(i.value, j.value) {
			return one, nil
		}
		return zero, nil
	}
	if IsDummyPair(i, j) {
		return i.dim, nil
	}
	return ix, nil
}

// Contract replaces δ.i.j X.j by X.i.
func (deltaBase) Contract(self, other int, seq []Expr) (Contraction, error) {
	d := seq[self].(*Indexed)
	target, ok := seq[other].(*Indexed)
	if !ok {
		return NoMatch(), nil
	}
	for k, di := range d.indices {
		if !target.HasDummyIndexFor(di) {
			continue
		}
		keep := d.indices[1-k]
		return Replace(one, Subs(target, di, keep)), nil
	}
	return NoMatch(), nil
}
