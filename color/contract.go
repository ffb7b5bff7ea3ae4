// SPDX-License-Identifier: MIT
// Package color: contraction rules.
//
// Generators (self and other in the non-commutative part, self < other):
//
//	T.a T.a         = 4/3·ONE
//	T.a T.b T.a     = -1/6·T.b
//	T.a S T.a       = 1/2·Tr(S)·ONE - 1/6·S   (S a run of generators)
//
// Structure constants (self is d or f):
//
//	d.abc d.abc = 40/3         d.akl d.bkl = 5/3·δ.ab
//	f.abc f.abc = 24           f.akl f.bkl = 3·δ.ab  (up to index signs)
//	d.akl T.k T.l = 5/6·T.a    f.akl T.k T.l = 3/2·i·T.a

package color

import (
	"fmt"

	"github.com/katalvlaran/symkernel/expr"
)

func (b *Base) contractGenerators(self, other int, seq []expr.Expr) (expr.Contraction, error) {
	if other <= self {
		return expr.NoMatch(), nil
	}
	me, _, _ := asColor(seq[self])
	you, yb, ok := asColor(seq[other])
	if !ok || yb.variant != VariantT || yb.label != b.label {
		return expr.NoMatch(), nil
	}
	if !expr.IsDummyPair(me.Index(0), you.Index(0)) {
		return expr.NoMatch(), nil
	}

	switch dist := other - self; {
	case dist == 1:
		return expr.Replace(expr.Mul(expr.Frac(4, 3), One(b.label)), expr.One()), nil
	case dist == 2 && isGenerator(seq[self+1], b.label):
		return expr.Replace(expr.Frac(-1, 6), expr.One()), nil
	}

	for k := self + 1; k < other; k++ {
		if !isGenerator(seq[k], b.label) {
			return expr.NoMatch(), nil
		}
	}
	s := expr.NCMul(seq[self+1 : other]...)
	tr, err := Trace(s, b.label)
	if err != nil {
		return expr.NoMatch(), err
	}
	value := expr.Add(
		expr.Mul(expr.Frac(1, 2), tr, One(b.label)),
		expr.Mul(expr.Frac(-1, 6), s),
	)
	c := expr.Replace(value, expr.One())
	for k := self + 1; k < other; k++ {
		c = c.Also(k, expr.One())
	}
	return c, nil
}

func (b *Base) contractStructure(self, other int, seq []expr.Expr) (expr.Contraction, error) {
	me, _, _ := asColor(seq[self])
	you, yb, ok := asColor(seq[other])
	if !ok {
		return expr.NoMatch(), nil
	}

	switch {
	case yb.variant == b.variant:
		return b.contractSameConstant(me, you)
	case yb.variant == VariantT:
		return b.contractGeneratorPair(me, you, other, seq)
	}
	return expr.NoMatch(), nil
}

// contractSameConstant handles d·d and f·f.
func (b *Base) contractSameConstant(me, you *expr.Indexed) (expr.Contraction, error) {
	dummies := me.DummiesWith(you)
	switch len(dummies) {
	case 3:
		if b.variant == VariantD {
			return expr.Replace(expr.Frac(40, 3), expr.One()), nil
		}
		return expr.Replace(expr.Int(24), expr.One()), nil
	case 2:
		if b.variant == VariantD {
			a := me.FreeIndicesExcept(dummies)
			c := you.FreeIndicesExcept(dummies)
			if len(a) != 1 || len(c) != 1 {
				return expr.NoMatch(), nil
			}
			delta, err := expr.Delta(a[0], c[0])
			if err != nil {
				return expr.NoMatch(), err
			}
			return expr.Replace(expr.Mul(expr.Frac(5, 3), delta), expr.One()), nil
		}
		a, s1, err := permuteFreeIndexToFront(me.Indices(), dummies)
		if err != nil {
			return expr.NoMatch(), err
		}
		c, s2, err := permuteFreeIndexToFront(you.Indices(), dummies)
		if err != nil {
			return expr.NoMatch(), err
		}
		delta, err := expr.Delta(a, c)
		if err != nil {
			return expr.NoMatch(), err
		}
		return expr.Replace(expr.Mul(expr.Int(int64(3*s1*s2)), delta), expr.One()), nil
	}
	return expr.NoMatch(), nil
}

// contractGeneratorPair handles d.akl T.k T.l and f.akl T.k T.l where the
// generators sit at other and other+1.
func (b *Base) contractGeneratorPair(me, you *expr.Indexed, other int, seq []expr.Expr) (expr.Contraction, error) {
	if other+1 >= len(seq) {
		return expr.NoMatch(), nil
	}
	_, yb, _ := asColor(you)
	next, nb, ok := asColor(seq[other+1])
	if !ok || nb.variant != VariantT || nb.label != yb.label {
		return expr.NoMatch(), nil
	}
	if !me.HasDummyIndexFor(you.Index(0)) || !me.HasDummyIndexFor(next.Index(0)) {
		return expr.NoMatch(), nil
	}
	a, sign, err := permuteFreeIndexToFront(me.Indices(), []*expr.Idx{you.Index(0), next.Index(0)})
	if err != nil {
		return expr.NoMatch(), err
	}
	gen, err := T(a, yb.label)
	if err != nil {
		return expr.NoMatch(), err
	}
	var factor expr.Expr = expr.Frac(5, 6)
	if b.variant == VariantF {
		factor = expr.Mul(expr.Frac(3, 2), expr.Int(int64(sign)), expr.ImagUnit())
	}
	return expr.Replace(factor, gen).Also(other+1, expr.One()), nil
}

// permuteFreeIndexToFront finds the permutation of iv3 that puts the two
// indices of iv2 (in order) into the last two slots. It returns the index
// left in front and the sign of the permutation.
func permuteFreeIndexToFront(iv3, iv2 []*expr.Idx) (*expr.Idx, int, error) {
	if len(iv3) != 3 || len(iv2) != 2 {
		return nil, 0, colorErrorf(opPermute, fmt.Errorf("%w: %d and %d indices", ErrNoPermutation, len(iv3), len(iv2)))
	}
	eq := func(a, b *expr.Idx) bool { return expr.Equal(a, b) }
	x, y := iv2[0], iv2[1]
	switch {
	case eq(iv3[1], x) && eq(iv3[2], y):
		return iv3[0], 1, nil
	case eq(iv3[1], y) && eq(iv3[2], x):
		return iv3[0], -1, nil
	case eq(iv3[0], x) && eq(iv3[2], y):
		return iv3[1], -1, nil
	case eq(iv3[0], y) && eq(iv3[2], x):
		return iv3[1], 1, nil
	case eq(iv3[0], x) && eq(iv3[1], y):
		return iv3[2], 1, nil
	case eq(iv3[0], y) && eq(iv3[1], x):
		return iv3[2], -1, nil
	}
	return nil, 0, colorErrorf(opPermute, fmt.Errorf("%w: %v / %v", ErrNoPermutation, iv3, iv2))
}
