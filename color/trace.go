// SPDX-License-Identifier: MIT
// Package color: traces of color expressions.
//
// Recursion for n ≥ 4 generators, with a fresh summation index k:
//
//	Tr(T₁…Tₙ) = 1/6·δ(aₙ₋₁, aₙ)·Tr(T₁…Tₙ₋₂)
//	          + 1/2·h(aₙ₋₁, aₙ, k)·Tr(T₁…Tₙ₋₂ T_k)
//
// Each step shortens the sequence by at least one generator, so the
// recursion ends at the closed forms for two and three generators.

package color

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/symkernel/expr"
)

// Trace returns the trace over the algebra with the given label.
//
// Rules:
//   - ONE of that label ⇒ 3; any other bare tensor ⇒ 0.
//   - Commutative products: color factors of the label are traced, every
//     other factor is kept as is.
//   - Sums are traced term by term.
//   - Generator products: 2 ⇒ δ/2, 3 ⇒ h/4, ≥4 ⇒ the recursion above.
func Trace(e expr.Expr, label uint8, opts ...Option) (expr.Expr, error) {
	o := gatherOptions(opts...)
	t := &tracer{
		label: label,
		tag:   Tag(label),
		max:   o.MaxDepth,
		log:   o.Logger,
	}
	r, err := t.trace(e, 0)
	if err != nil {
		return nil, colorErrorf(opTrace, err)
	}
	return r, nil
}

// tracer carries the state of one Trace call, including the generator of
// fresh summation indices.
type tracer struct {
	label uint8
	tag   expr.Tag
	max   int
	log   *slog.Logger
	next  int
}

// fresh returns a summation index not used elsewhere.
func (t *tracer) fresh() *expr.Idx {
	t.next++
	return NewIndex(expr.NewSymbol(fmt.Sprintf("k%d", t.next)))
}

func (t *tracer) trace(e expr.Expr, depth int) (expr.Expr, error) {
	if depth > t.max {
		return nil, expr.ErrRecursionLimit
	}
	switch x := e.(type) {
	case *expr.Indexed:
		if _, b, ok := asColor(x); ok && b.variant == VariantOne && b.label == t.label {
			return expr.Int(3), nil
		}
		return expr.Zero(), nil
	case *expr.Sum:
		terms := make([]expr.Expr, x.Nops())
		for i := range terms {
			r, err := t.trace(x.Op(i), depth+1)
			if err != nil {
				return nil, err
			}
			terms[i] = r
		}
		return expr.Add(terms...), nil
	case *expr.Product:
		args := make([]expr.Expr, x.Nops())
		for i := range args {
			op := x.Op(i)
			if expr.ReturnType(op) != expr.NonCommutative || expr.ReturnTag(op) != t.tag {
				args[i] = op
				continue
			}
			r, err := t.trace(op, depth+1)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		return expr.Mul(args...), nil
	case *expr.NCProduct:
		return t.traceGenerators(x, depth)
	}
	return expr.Zero(), nil
}

func (t *tracer) traceGenerators(p *expr.NCProduct, depth int) (expr.Expr, error) {
	if expr.ReturnTag(p) != t.tag {
		return expr.Zero(), nil
	}
	ex := expr.Expand(p)
	np, ok := ex.(*expr.NCProduct)
	if !ok {
		return t.trace(ex, depth+1)
	}
	factors := np.Factors()
	idx := make([]*expr.Idx, len(factors))
	for i, f := range factors {
		ix, b, ok := asColor(f)
		if !ok || b.variant != VariantT || b.label != t.label {
			return nil, fmt.Errorf("%w: %s is not a generator of label %d", expr.ErrInvalidArgument, f, t.label)
		}
		idx[i] = ix.Index(0)
	}

	n := len(factors)
	switch n {
	case 2:
		delta, err := expr.Delta(idx[0], idx[1])
		if err != nil {
			return nil, err
		}
		return expr.Mul(expr.Frac(1, 2), delta), nil
	case 3:
		h, err := H(idx[0], idx[1], idx[2])
		if err != nil {
			return nil, err
		}
		return expr.Mul(expr.Frac(1, 4), h), nil
	}

	t.log.Debug("color trace recursion", slog.Int("generators", n), slog.Int("depth", depth))
	k := t.fresh()
	gk, err := T(k, t.label)
	if err != nil {
		return nil, err
	}
	head := factors[:n-2]
	tr1, err := t.trace(expr.NCMul(head...), depth+1)
	if err != nil {
		return nil, err
	}
	withK := append(append([]expr.Expr(nil), head...), gk)
	tr2, err := t.trace(expr.NCMul(withK...), depth+1)
	if err != nil {
		return nil, err
	}
	delta, err := expr.Delta(idx[n-2], idx[n-1])
	if err != nil {
		return nil, err
	}
	h, err := H(idx[n-2], idx[n-1], k)
	if err != nil {
		return nil, err
	}
	return expr.Add(
		expr.Mul(expr.Frac(1, 6), delta, tr1),
		expr.Mul(expr.Frac(1, 2), h, tr2),
	), nil
}
