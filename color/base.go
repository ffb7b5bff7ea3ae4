// SPDX-License-Identifier: MIT
// Package color: the base object shared by all color tensors.
//
// A color tensor is an *expr.Indexed whose base is a *Base. The base carries
// the variant and the representation label; all algebra behavior (numeric
// evaluation, sequence simplification, contraction) hangs off the base via
// the substrate hook interfaces.

package color

import (
	"fmt"

	"github.com/katalvlaran/symkernel/expr"
)

// Variant selects the kind of color tensor.
type Variant int

const (
	// VariantOne is the identity of the algebra.
	VariantOne Variant = iota
	// VariantT is a generator T_a.
	VariantT
	// VariantD is the symmetric structure constant d_abc.
	VariantD
	// VariantF is the antisymmetric structure constant f_abc.
	VariantF
)

// String returns the persisted class name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantOne:
		return "su3one"
	case VariantT:
		return "su3t"
	case VariantD:
		return "su3d"
	case VariantF:
		return "su3f"
	default:
		return "su3unknown"
	}
}

// Base is the base object of a color tensor.
type Base struct {
	variant Variant
	label   uint8
}

// Variant returns the tensor kind.
func (b *Base) Variant() Variant { return b.variant }

// Label returns the representation label.
func (b *Base) Label() uint8 { return b.label }

// Tag returns the algebra tag of label.
func Tag(label uint8) expr.Tag { return expr.Tag(fmt.Sprintf("su3/%d", label)) }

// TensorName implements expr.TensorNamer.
func (b *Base) TensorName() string { return b.variant.String() }

func (b *Base) String() string {
	switch b.variant {
	case VariantOne:
		return "ONE"
	case VariantT:
		return "T"
	case VariantD:
		return "d"
	case VariantF:
		return "f"
	}
	return "?"
}

func (b *Base) TypeRank() int { return expr.RankTensor }

func (b *Base) CompareSame(o expr.Expr) int {
	if c := expr.CompareTensorName(b.TensorName(), o); c != 0 {
		return c
	}
	ob := o.(*Base)
	switch {
	case b.label < ob.label:
		return -1
	case b.label > ob.label:
		return 1
	}
	return 0
}

func (b *Base) Nops() int { return 0 }

func (b *Base) Op(int) expr.Expr { panic("color: base has no operands") }

func (b *Base) Map(func(expr.Expr) expr.Expr) expr.Expr { return b }

// ReturnType: identity and generators do not commute, structure constants do.
func (b *Base) ReturnType() expr.ReturnKind {
	if b.variant == VariantOne || b.variant == VariantT {
		return expr.NonCommutative
	}
	return expr.Commutative
}

// ReturnTag names the algebra of the label for non-commuting variants.
func (b *Base) ReturnTag() expr.Tag {
	if b.ReturnType() == expr.Commutative {
		return ""
	}
	return Tag(b.label)
}

// EvalIndexed evaluates structure constants with numeric indices and a
// symmetric constant with a self-contracted index.
func (b *Base) EvalIndexed(ix *expr.Indexed) (expr.Expr, error) {
	switch b.variant {
	case VariantD:
		if len(ix.SelfDummies()) > 0 {
			return expr.Zero(), nil
		}
		if v, ok := numericTriple(ix); ok {
			return dValue(v), nil
		}
	case VariantF:
		if v, ok := numericTriple(ix); ok {
			return fValue(v), nil
		}
	}
	return ix, nil
}

// SimplifyNCSequence drops identities; an all-identity sequence is ONE.
func (b *Base) SimplifyNCSequence(factors []expr.Expr) expr.Expr {
	kept := make([]expr.Expr, 0, len(factors))
	for _, f := range factors {
		if isOne(f) {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return One(b.label)
	}
	return expr.Simplified(kept)
}

// Contract dispatches on the variant.
func (b *Base) Contract(self, other int, seq []expr.Expr) (expr.Contraction, error) {
	switch b.variant {
	case VariantT:
		return b.contractGenerators(self, other, seq)
	case VariantD, VariantF:
		return b.contractStructure(self, other, seq)
	}
	return expr.NoMatch(), nil
}

// AddIndexed: color tensors never merge inside sums.
func (b *Base) AddIndexed(self, other *expr.Indexed) expr.Expr {
	return expr.Add(self, other)
}

// ScaleIndexed: the coefficient stays outside.
func (b *Base) ScaleIndexed(self *expr.Indexed, c *expr.Num) expr.Expr {
	return expr.Mul(c, self)
}

// numericTriple returns the three index values when all are numeric.
func numericTriple(ix *expr.Indexed) ([3]int, bool) {
	var v [3]int
	if ix.NumIndices() != 3 || !ix.AllIndicesNumeric() {
		return v, false
	}
	for i := 0; i < 3; i++ {
		v[i], _ = ix.Index(i).IntValue()
	}
	return v, true
}

// asColor returns the indexed object and base of a color tensor.
func asColor(e expr.Expr) (*expr.Indexed, *Base, bool) {
	ix, ok := e.(*expr.Indexed)
	if !ok {
		return nil, nil, false
	}
	b, ok := ix.Base().(*Base)
	if !ok {
		return nil, nil, false
	}
	return ix, b, true
}

func isOne(e expr.Expr) bool {
	_, b, ok := asColor(e)
	return ok && b.variant == VariantOne
}

// isGenerator reports a generator of the given label.
func isGenerator(e expr.Expr, label uint8) bool {
	_, b, ok := asColor(e)
	return ok && b.variant == VariantT && b.label == label
}
