// SPDX-License-Identifier: MIT
// Package matrix: Dense as an expression value.
//
// A Dense takes part in expressions as a non-commuting value of the algebra
// "matrix": products of matrices keep their order and are evaluated with
// expr.EvalM. Its indexed components (A.i.j) are ordinary commuting scalars.
// Entrywise services (Expand, Normal, Subs, Diff) reach the entries through
// Map.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/symkernel/expr"
)

// Tag is the algebra tag of matrices.
const Tag expr.Tag = "matrix"

// Operation tags used by entrywise services.
const (
	opDiff  = "Diff"
	opEvalM = "EvalM"
)

func (m *Dense) TypeRank() int { return expr.RankMatrix }

// CompareSame orders by rows, columns, then entries in row-major order.
func (m *Dense) CompareSame(o expr.Expr) int {
	om := o.(*Dense)
	switch {
	case m.r != om.r:
		return cmpInt(m.r, om.r)
	case m.c != om.c:
		return cmpInt(m.c, om.c)
	}
	for i, e := range m.buf.data {
		if c := expr.Compare(e, om.buf.data[i]); c != 0 {
			return c
		}
	}
	return 0
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	return 1
}

// Nops returns r*c; the operands are the entries in row-major order.
func (m *Dense) Nops() int { return m.r * m.c }

func (m *Dense) Op(i int) expr.Expr {
	if i < 0 || i >= len(m.buf.data) {
		panic(fmt.Sprintf("matrix: operand %d out of range", i))
	}
	return m.buf.data[i]
}

// Map returns a new matrix with f applied to every entry.
func (m *Dense) Map(f func(expr.Expr) expr.Expr) expr.Expr {
	return m.apply(f)
}

func (m *Dense) apply(f func(expr.Expr) expr.Expr) *Dense {
	data := make([]expr.Expr, len(m.buf.data))
	for i, e := range m.buf.data {
		data[i] = f(e)
	}
	return newDense(m.r, m.c, data)
}

// ReturnType implements expr.ReturnTyper.
func (m *Dense) ReturnType() expr.ReturnKind { return expr.NonCommutative }

// ReturnTag implements expr.ReturnTyper.
func (m *Dense) ReturnTag() expr.Tag { return Tag }

// ComponentsCommute implements expr.ComponentCommuter.
func (m *Dense) ComponentsCommute() bool { return true }

// Expand expands every entry.
func (m *Dense) Expand() *Dense { return m.apply(expr.Expand) }

// Normal normalizes every entry.
func (m *Dense) Normal() *Dense { return m.apply(expr.Normal) }

// Subs substitutes to for from in every entry.
func (m *Dense) Subs(from, to expr.Expr) *Dense {
	return m.apply(func(e expr.Expr) expr.Expr { return expr.Subs(e, from, to) })
}

// Diff differentiates every entry with respect to s.
func (m *Dense) Diff(s *expr.Symbol) (*Dense, error) {
	data := make([]expr.Expr, len(m.buf.data))
	for i, e := range m.buf.data {
		d, err := expr.Diff(e, s)
		if err != nil {
			return nil, matrixErrorf(opDiff, err)
		}
		data[i] = d
	}
	return newDense(m.r, m.c, data), nil
}

// Derivative implements expr.Differentiable.
func (m *Dense) Derivative(s *expr.Symbol) (expr.Expr, error) {
	return asExpr(m.Diff(s))
}

// EvalM evaluates every entry with expr.EvalM, so entries that are
// themselves matrix expressions collapse to matrices.
func (m *Dense) EvalM() (*Dense, error) {
	data := make([]expr.Expr, len(m.buf.data))
	for i, e := range m.buf.data {
		v, err := expr.EvalM(e)
		if err != nil {
			return nil, matrixErrorf(opEvalM, err)
		}
		data[i] = v
	}
	return newDense(m.r, m.c, data), nil
}

// MatMul implements expr.MatrixValue.
func (m *Dense) MatMul(other expr.Expr) (expr.Expr, error) {
	o, ok := other.(*Dense)
	if !ok {
		return nil, matrixErrorf(opMul, fmt.Errorf("%w: %T is not a matrix", ErrDimensionMismatch, other))
	}
	return asExpr(m.Mul(o))
}

// MatAdd implements expr.MatrixValue.
func (m *Dense) MatAdd(other expr.Expr) (expr.Expr, error) {
	o, ok := other.(*Dense)
	if !ok {
		return nil, matrixErrorf(opAdd, fmt.Errorf("%w: %T is not a matrix", ErrDimensionMismatch, other))
	}
	return asExpr(m.Add(o))
}

// MatScale implements expr.MatrixValue.
func (m *Dense) MatScale(c expr.Expr) (expr.Expr, error) {
	return asExpr(m.MulScalar(c))
}

// MatPow implements expr.MatrixValue.
func (m *Dense) MatPow(exp expr.Expr) (expr.Expr, error) {
	return asExpr(m.Pow(exp))
}

// asExpr keeps a failed result a nil interface.
func asExpr(m *Dense, err error) (expr.Expr, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}
