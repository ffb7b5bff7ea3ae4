// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures both matrices are non-nil.
//
// Returns ErrDimensionMismatch for a nil operand (a nil matrix has no shape).
// Complexity: O(1).
func ValidateNotNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Inputs: two non-nil matrices.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub and indexed sums.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNonSquare.
// Complexity: O(1).
// AI-Hints: Use before Determinant, Trace, CharPoly, Inverse and Pow.
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSolveShapes checks a·vars = rhs: rhs has a's row count, vars has
// a's column count as rows and rhs's column count as columns.
// Complexity: O(1).
func ValidateSolveShapes(a, vars, rhs *Dense) error {
	if err := ValidateNotNil(a, vars, rhs); err != nil {
		return err
	}
	if rhs.r != a.r {
		return validatorErrorf("ValidateSolveShapes: rhs rows", ErrDimensionMismatch)
	}
	if vars.r != a.c || vars.c != rhs.c {
		return validatorErrorf("ValidateSolveShapes: vars", ErrDimensionMismatch)
	}

	return nil
}
