// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.
//
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Sentinels that belong to a substrate category wrap it, so callers
// can match either the precise cause or the category:
//
//	ErrNotSymbol        → expr.ErrInvalidArgument
//	ErrIndexDimension   → expr.ErrInvalidArgument
//	ErrInexactDivision  → expr.ErrInternal

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symkernel/expr"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row, column or index value is outside
	// valid bounds. At/Set return it, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, Mul where a.Cols != b.Rows, or a
	// Solve whose right-hand side does not fit.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse (and negative powers) for a
	// non-invertible matrix.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInconsistent is returned by Solve when a zero row meets a non-zero
	// right-hand side.
	ErrInconsistent = errors.New("matrix: inconsistent linear system")

	// ErrUnsupportedExponent is returned by Pow for non-integer exponents.
	ErrUnsupportedExponent = errors.New("matrix: exponent must be an integer")

	// ErrNonCommutativeScalar is returned by MulScalar for a scalar that does
	// not commute.
	ErrNonCommutativeScalar = errors.New("matrix: scalar must commute")

	// ErrNotSymbol is returned by Solve when vars holds anything other than
	// distinct symbols.
	ErrNotSymbol = fmt.Errorf("matrix: solve variables must be distinct symbols: %w", expr.ErrInvalidArgument)

	// ErrIndexDimension is returned when indices do not fit the matrix
	// (wrong count, or declared dimension differs from rows/cols).
	ErrIndexDimension = fmt.Errorf("matrix: index does not fit matrix dimensions: %w", expr.ErrInvalidArgument)

	// ErrInexactDivision signals a failed exact division during fraction-free
	// elimination. It indicates a bug, never bad input.
	ErrInexactDivision = fmt.Errorf("matrix: exact division failed: %w", expr.ErrInternal)
)
