// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic of Dense: elementwise addition and
// subtraction, matrix and scalar multiplication, integer powers, transpose,
// trace and characteristic polynomial. All functions perform strict
// fail-fast validation and return wrapped sentinels on shape mismatches.
//
// Notes:
//   - Operands are never mutated; every kernel returns a fresh Dense.
//   - Determinant, Solve and Inverse live in their own kernel files.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symkernel/expr"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulScalar = "MulScalar"
	opPow       = "Pow"
	opTrace     = "Trace"
	opCharPoly  = "CharPoly"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise a + b or a - b.
func addSub(a, b *Dense, sub bool, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	data := make([]expr.Expr, len(a.buf.data))
	for i, x := range a.buf.data {
		y := b.buf.data[i]
		if sub {
			data[i] = expr.Sub(x, y)
		} else {
			data[i] = expr.Add(x, y)
		}
	}

	return newDense(a.r, a.c, data), nil
}

// Add returns m + o.
//
// Errors:
//   - ErrDimensionMismatch when the shapes differ.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Add(o *Dense) (*Dense, error) { return addSub(m, o, false, opAdd) }

// Sub returns m - o. Same contract as Add.
func (m *Dense) Sub(o *Dense) (*Dense, error) { return addSub(m, o, true, opSub) }

// Mul returns the matrix product m·o.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, o).
//   - Stage 2: for each (i, k) collect the expanded products m[i][j]·o[j][k]
//     over j, skipping zero entries of m, and add them once.
//
// Behavior highlights:
//   - Entries of the result are expanded sums; no normalization is applied.
//
// Errors:
//   - ErrDimensionMismatch when m.Cols != o.Rows.
//
// Complexity:
//   - Time O(r*n*c) entry products, Space O(r*c).
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	data := make([]expr.Expr, m.r*o.c)
	terms := make([]expr.Expr, 0, m.c)
	for i := 0; i < m.r; i++ {
		for k := 0; k < o.c; k++ {
			terms = terms[:0]
			for j := 0; j < m.c; j++ {
				a := m.at(i, j)
				if expr.IsZero(a) {
					continue
				}
				terms = append(terms, expr.Expand(expr.Mul(a, o.at(j, k))))
			}
			data[i*o.c+k] = expr.Add(terms...)
		}
	}

	return newDense(m.r, o.c, data), nil
}

// MulScalar returns c·m. The scalar must commute.
//
// Errors:
//   - ErrNonCommutativeScalar when c does not commute (a matrix, a color
//     generator, ...).
func (m *Dense) MulScalar(c expr.Expr) (*Dense, error) {
	if expr.ReturnType(c) != expr.Commutative {
		return nil, matrixErrorf(opMulScalar, fmt.Errorf("%w: %s", ErrNonCommutativeScalar, c))
	}

	return m.apply(func(e expr.Expr) expr.Expr { return expr.Mul(c, e) }), nil
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	data := make([]expr.Expr, len(m.buf.data))
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			data[j*m.r+i] = m.at(i, j)
		}
	}

	return newDense(m.c, m.r, data)
}

// Pow returns m^exp for an integer exponent.
//
// Implementation:
//   - Stage 1: ValidateSquare; exp must be an integer number.
//   - Stage 2: a negative exponent inverts m first and continues with |exp|.
//   - Stage 3: binary exponentiation by repeated squaring; exp = 0 yields
//     the identity.
//
// Errors:
//   - ErrNonSquare, ErrUnsupportedExponent, ErrSingular (negative exponent
//     of a singular matrix).
//
// Complexity:
//   - O(log |exp|) matrix products.
func (m *Dense) Pow(exp expr.Expr) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	n, ok := exp.(*expr.Num)
	if !ok || !n.Value().IsInteger() {
		return nil, matrixErrorf(opPow, fmt.Errorf("%w: %s", ErrUnsupportedExponent, exp))
	}
	k, fits := n.Value().Int64()
	if !fits {
		return nil, matrixErrorf(opPow, fmt.Errorf("%w: %s is too large", ErrUnsupportedExponent, exp))
	}

	base := m
	if k < 0 {
		inv, err := m.Inverse()
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		base, k = inv, -k
	}
	result, err := NewIdentity(m.r)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	for k > 0 {
		if k&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = base.Mul(base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return result, nil
}

// Trace returns the sum of the diagonal: normalized when it is a rational
// function that is not a polynomial, expanded otherwise.
//
// Errors:
//   - ErrNonSquare.
func (m *Dense) Trace() (expr.Expr, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opTrace, err)
	}
	diag := make([]expr.Expr, m.r)
	for i := range diag {
		diag[i] = m.at(i, i)
	}

	return normalOrExpand(expr.Add(diag...)), nil
}

// normalOrExpand normalizes a non-polynomial rational function and expands
// anything else.
func normalOrExpand(e expr.Expr) expr.Expr {
	if expr.IsRationalFunction(e) && !expr.IsPolynomial(e) {
		return expr.Normal(e)
	}
	return expr.Expand(e)
}

// CharPoly returns the characteristic polynomial det(m - λ·I) in lambda.
// This is (-1)ⁿ·det(λ·I - m), so p(0) = det(m) rather than (-1)ⁿ·det(m).
//
// Implementation:
//   - Numeric matrices: trace-of-powers recursion (Leverrier). With B₁ = m,
//     c₁ = tr(B₁) and Bₖ = m·(Bₖ₋₁ - cₖ₋₁·I), cₖ = tr(Bₖ)/k, the polynomial
//     λⁿ - c₁λⁿ⁻¹ - … - cₙ is det(λI - m); it is negated for odd n.
//   - Otherwise: Determinant(m - λ·I) collected in lambda.
//
// Returns:
//   - A polynomial whose value at λ = 0 is det(m).
//
// Errors:
//   - ErrNonSquare; determinant errors on the symbolic path.
//
// Complexity:
//   - Numeric: n matrix products. Symbolic: one determinant.
func (m *Dense) CharPoly(lambda *expr.Symbol, opts ...Option) (expr.Expr, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCharPoly, err)
	}
	n := m.r

	if !m.allNumeric() {
		shifted := m.Clone()
		data := shifted.mutable()
		for i := 0; i < n; i++ {
			data[i*n+i] = expr.Sub(data[i*n+i], lambda)
		}
		det, err := shifted.Determinant(opts...)
		if err != nil {
			return nil, matrixErrorf(opCharPoly, err)
		}
		return expr.Collect(det, lambda), nil
	}

	power := func(k int) expr.Expr { return expr.Pow(lambda, expr.Int(int64(k))) }
	b := m
	c := b.diagSum()
	terms := []expr.Expr{power(n), expr.Neg(expr.Mul(c, power(n-1)))}
	for i := 1; i < n; i++ {
		shifted := b.Clone()
		data := shifted.mutable()
		for j := 0; j < n; j++ {
			data[j*n+j] = expr.Sub(data[j*n+j], c)
		}
		next, err := m.Mul(shifted)
		if err != nil {
			return nil, matrixErrorf(opCharPoly, err)
		}
		b = next
		c = expr.Div(b.diagSum(), expr.Int(int64(i+1)))
		terms = append(terms, expr.Neg(expr.Mul(c, power(n-i-1))))
	}
	poly := expr.Add(terms...)
	if n%2 == 1 {
		poly = expr.Neg(poly)
	}

	return poly, nil
}

// diagSum is the unnormalized trace of a square matrix.
func (m *Dense) diagSum() expr.Expr {
	diag := make([]expr.Expr, m.r)
	for i := range diag {
		diag[i] = m.at(i, i)
	}
	return expr.Add(diag...)
}

// allNumeric reports whether every entry is a number.
func (m *Dense) allNumeric() bool {
	for _, e := range m.buf.data {
		if !expr.IsNumeric(e) {
			return false
		}
	}
	return true
}

// Inverse returns m⁻¹ by solving m·X = I for a matrix of fresh symbols.
//
// Errors:
//   - ErrNonSquare.
//   - ErrSingular when the system is inconsistent.
func (m *Dense) Inverse(opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	id, err := NewIdentity(m.r)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	vars := make([]expr.Expr, m.r*m.c)
	for i := range vars {
		vars[i] = expr.NewSymbol(fmt.Sprintf("x%d", i))
	}
	sol, err := m.Solve(newDense(m.r, m.c, vars), id, opts...)
	if err != nil {
		if errors.Is(err, ErrInconsistent) {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		return nil, matrixErrorf(opInverse, err)
	}

	return sol, nil
}
