// SPDX-License-Identifier: MIT
// Package color: validating constructors of color tensors.

package color

import (
	"fmt"

	"github.com/katalvlaran/symkernel/expr"
)

// Dim is the dimension of the adjoint representation of SU(3).
const Dim = 8

// One returns the identity of the algebra with the given label.
func One(label uint8) expr.Expr {
	return expr.HoldIndexed(&Base{variant: VariantOne, label: label}, expr.SymNone)
}

// T returns the generator T_a of the algebra with the given label.
func T(a expr.Expr, label uint8) (expr.Expr, error) {
	ia, err := checkIdx(opT, a)
	if err != nil {
		return nil, err
	}
	return expr.NewIndexed(&Base{variant: VariantT, label: label}, expr.SymNone, ia)
}

// D returns the symmetric structure constant d_abc.
func D(a, b, c expr.Expr) (expr.Expr, error) {
	idx, err := checkIdx3(opD, a, b, c)
	if err != nil {
		return nil, err
	}
	return expr.NewIndexed(&Base{variant: VariantD}, expr.SymSymmetric, idx...)
}

// F returns the antisymmetric structure constant f_abc.
func F(a, b, c expr.Expr) (expr.Expr, error) {
	idx, err := checkIdx3(opF, a, b, c)
	if err != nil {
		return nil, err
	}
	return expr.NewIndexed(&Base{variant: VariantF}, expr.SymAntisymmetric, idx...)
}

// H returns d_abc + i·f_abc.
func H(a, b, c expr.Expr) (expr.Expr, error) {
	d, err := D(a, b, c)
	if err != nil {
		return nil, colorErrorf(opH, err)
	}
	f, err := F(a, b, c)
	if err != nil {
		return nil, colorErrorf(opH, err)
	}
	return expr.Add(d, expr.Mul(expr.ImagUnit(), f)), nil
}

func checkIdx(op string, e expr.Expr) (*expr.Idx, error) {
	idx, ok := e.(*expr.Idx)
	if !ok {
		return nil, colorErrorf(op, fmt.Errorf("%w: %s is not an index", ErrInvalidIndex, e))
	}
	if !expr.Equal(idx.Dim(), expr.Int(Dim)) {
		return nil, colorErrorf(op, fmt.Errorf("%w: dimension %s", ErrInvalidIndex, idx.Dim()))
	}
	return idx, nil
}

func checkIdx3(op string, a, b, c expr.Expr) ([]*expr.Idx, error) {
	out := make([]*expr.Idx, 3)
	for i, e := range []expr.Expr{a, b, c} {
		idx, err := checkIdx(op, e)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// NewIndex returns an index of dimension 8 with the given value.
func NewIndex(value expr.Expr) *expr.Idx { return expr.NewIdx(value, expr.Int(Dim)) }
