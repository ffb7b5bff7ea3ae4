// SPDX-License-Identifier: MIT
// Package matrix: the indexed bridge.
//
// A Dense used as the base of an expr.Indexed is a tensor with one index
// (row or column vector) or two indices (rows, cols):
//
//	v.i      i.dim = the non-unit dimension of v; numeric i ⇒ v[i]
//	A.i.j    i.dim = rows, j.dim = cols; numeric i, j ⇒ A[i][j]; A.i.i ⇒ tr A
//
// Contraction of two such objects over a shared dummy index is a matrix
// product, transposing operands as needed:
//
//	A.i.j B.j.k = (A·B).i.k     A.i.j B.k.j = (A·Bᵀ).i.k
//	A.j.i B.j.k = (Aᵀ·B).i.k    A.j.i B.k.j = (B·A).k.i
//	v.j A.j.k   = (Aᵀ·v).k      v.j A.k.j   = (A·v).k
//	v.i w.i     = v·w
//
// Index values are 0-based.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/symkernel/expr"
)

const (
	opEvalIndexed = "EvalIndexed"
	opContract    = "Contract"
)

// Indexed returns m.indices, evaluated.
func (m *Dense) Indexed(indices ...*expr.Idx) (expr.Expr, error) {
	return expr.NewIndexed(m, expr.SymNone, indices...)
}

// vectorDim returns the non-unit dimension of a vector and whether m is one.
func (m *Dense) vectorDim() (int, bool) {
	switch {
	case m.r == 1:
		return m.c, true
	case m.c == 1:
		return m.r, true
	}
	return 0, false
}

// EvalIndexed implements expr.IndexedEvaluator.
//
// Errors:
//   - ErrIndexDimension for a wrong index count, a one-index matrix that is
//     not a vector, or a declared dimension that differs from the matrix.
//   - ErrOutOfRange for a numeric index beyond the dimension.
func (m *Dense) EvalIndexed(ix *expr.Indexed) (expr.Expr, error) {
	switch ix.NumIndices() {
	case 1:
		dim, ok := m.vectorDim()
		if !ok {
			return nil, matrixErrorf(opEvalIndexed, fmt.Errorf("%w: %d×%d matrix with one index", ErrIndexDimension, m.r, m.c))
		}
		i := ix.Index(0)
		if !expr.Equal(i.Dim(), expr.Int(int64(dim))) {
			return nil, matrixErrorf(opEvalIndexed, fmt.Errorf("%w: index dimension %s, vector length %d", ErrIndexDimension, i.Dim(), dim))
		}
		if v, ok := i.IntValue(); ok {
			if v >= dim {
				return nil, matrixErrorf(opEvalIndexed, fmt.Errorf("%w: index %d of %d", ErrOutOfRange, v, dim))
			}
			return m.buf.data[v], nil
		}
		return ix, nil

	case 2:
		i, j := ix.Index(0), ix.Index(1)
		if !expr.Equal(i.Dim(), expr.Int(int64(m.r))) || !expr.Equal(j.Dim(), expr.Int(int64(m.c))) {
			return nil, matrixErrorf(opEvalIndexed, fmt.Errorf("%w: dimensions %s×%s on a %d×%d matrix", ErrIndexDimension, i.Dim(), j.Dim(), m.r, m.c))
		}
		if expr.IsDummyPair(i, j) {
			tr, err := m.Trace()
			if err != nil {
				return nil, matrixErrorf(opEvalIndexed, err)
			}
			return tr, nil
		}
		vi, okI := i.IntValue()
		vj, okJ := j.IntValue()
		if okI && okJ {
			e, err := m.At(vi, vj)
			if err != nil {
				return nil, matrixErrorf(opEvalIndexed, err)
			}
			return e, nil
		}
		return ix, nil
	}

	return nil, matrixErrorf(opEvalIndexed, fmt.Errorf("%w: %d indices", ErrIndexDimension, ix.NumIndices()))
}

// AddIndexed implements expr.IndexedAdder: v.i + w.i for vectors of either
// orientation, A.i.j + B.i.j and A.i.j + B.j.i (transposed).
func (m *Dense) AddIndexed(self, other *expr.Indexed) expr.Expr {
	unchanged := expr.Add(self, other)
	o, ok := other.Base().(*Dense)
	if !ok || self.NumIndices() != other.NumIndices() {
		return unchanged
	}

	var sum *Dense
	var err error
	switch self.NumIndices() {
	case 1:
		if !expr.Equal(self.Index(0), other.Index(0)) {
			return unchanged
		}
		if m.r == o.r {
			sum, err = m.Add(o)
		} else {
			sum, err = m.Add(o.Transpose())
		}
	case 2:
		a0, a1 := self.Index(0), self.Index(1)
		b0, b1 := other.Index(0), other.Index(1)
		switch {
		case expr.Equal(a0, b0) && expr.Equal(a1, b1):
			sum, err = m.Add(o)
		case expr.Equal(a0, b1) && expr.Equal(a1, b0):
			sum, err = m.Add(o.Transpose())
		default:
			return unchanged
		}
	default:
		return unchanged
	}
	if err != nil {
		return unchanged
	}
	r, err := sum.Indexed(self.Indices()...)
	if err != nil {
		return unchanged
	}
	return r
}

// ScaleIndexed implements expr.IndexedScaler: c·(A.i.j) = (c·A).i.j.
func (m *Dense) ScaleIndexed(self *expr.Indexed, c *expr.Num) expr.Expr {
	scaled, err := m.MulScalar(c)
	if err != nil {
		return expr.Mul(c, self)
	}
	r, err := scaled.Indexed(self.Indices()...)
	if err != nil {
		return expr.Mul(c, self)
	}
	return r
}

// Contract implements expr.Contractor for two indexed matrices or vectors
// sharing a dummy index. The product replaces the factor at self; the
// factor at other becomes 1.
func (m *Dense) Contract(self, other int, seq []expr.Expr) (expr.Contraction, error) {
	me, ok := seq[self].(*expr.Indexed)
	if !ok {
		return expr.NoMatch(), nil
	}
	you, ok := seq[other].(*expr.Indexed)
	if !ok {
		return expr.NoMatch(), nil
	}
	o, ok := you.Base().(*Dense)
	if !ok {
		return expr.NoMatch(), nil
	}

	var (
		value expr.Expr
		err   error
	)
	switch {
	case me.NumIndices() == 1 && you.NumIndices() == 1:
		value, err = contractVectors(m, me, o, you)
	case me.NumIndices() == 1 && you.NumIndices() == 2:
		value, err = contractVectorMatrix(m, me, o, you)
	case me.NumIndices() == 2 && you.NumIndices() == 1:
		value, err = contractVectorMatrix(o, you, m, me)
	case me.NumIndices() == 2 && you.NumIndices() == 2:
		value, err = contractMatrices(m, me, o, you)
	default:
		return expr.NoMatch(), nil
	}
	if err != nil {
		return expr.NoMatch(), matrixErrorf(opContract, err)
	}
	if value == nil {
		return expr.NoMatch(), nil
	}
	return expr.Replace(value, expr.One()), nil
}

// contractVectors returns v·w for v.i w.i.
func contractVectors(v *Dense, vi *expr.Indexed, w *Dense, wi *expr.Indexed) (expr.Expr, error) {
	if !expr.IsDummyPair(vi.Index(0), wi.Index(0)) {
		return nil, nil
	}
	if len(v.buf.data) != len(w.buf.data) {
		return nil, fmt.Errorf("%w: vectors of length %d and %d", ErrDimensionMismatch, len(v.buf.data), len(w.buf.data))
	}
	terms := make([]expr.Expr, 0, len(v.buf.data))
	for k, a := range v.buf.data {
		if expr.IsZero(a) {
			continue
		}
		terms = append(terms, expr.Expand(expr.Mul(a, w.buf.data[k])))
	}
	return expr.Add(terms...), nil
}

// contractVectorMatrix returns (Aᵀ·v).k for v.j A.j.k and (A·v).k for
// v.j A.k.j. The result keeps the orientation of v.
func contractVectorMatrix(v *Dense, vi *expr.Indexed, a *Dense, ai *expr.Indexed) (expr.Expr, error) {
	j := vi.Index(0)
	col := v
	if v.r == 1 {
		col = v.Transpose()
	}

	var mat *Dense
	var free *expr.Idx
	switch {
	case expr.IsDummyPair(j, ai.Index(0)):
		mat, free = a.Transpose(), ai.Index(1)
	case expr.IsDummyPair(j, ai.Index(1)):
		mat, free = a, ai.Index(0)
	default:
		return nil, nil
	}
	prod, err := mat.Mul(col)
	if err != nil {
		return nil, err
	}
	if v.r == 1 {
		prod = prod.Transpose()
	}
	return prod.Indexed(free)
}

// contractMatrices covers the four relative positions of the dummy index.
func contractMatrices(a *Dense, ai *expr.Indexed, b *Dense, bi *expr.Indexed) (expr.Expr, error) {
	a0, a1 := ai.Index(0), ai.Index(1)
	b0, b1 := bi.Index(0), bi.Index(1)

	var (
		prod *Dense
		err  error
		i, k *expr.Idx
	)
	switch {
	case expr.IsDummyPair(a1, b0):
		prod, err = a.Mul(b)
		i, k = a0, b1
	case expr.IsDummyPair(a1, b1):
		prod, err = a.Mul(b.Transpose())
		i, k = a0, b0
	case expr.IsDummyPair(a0, b0):
		prod, err = a.Transpose().Mul(b)
		i, k = a1, b1
	case expr.IsDummyPair(a0, b1):
		prod, err = b.Mul(a)
		i, k = b0, a1
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return prod.Indexed(i, k)
}
