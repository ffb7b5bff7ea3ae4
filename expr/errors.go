// SPDX-License-Identifier: MIT
// Package expr: sentinel errors for the expression substrate.
//
// Error policy:
//   - User-triggerable failures are returned as errors that wrap one of the
//     sentinels below; callers match them with errors.Is.
//   - Call sites add an operation tag via exprErrorf(op, err).
//   - Panics are reserved for programmer errors (exact division by zero,
//     operand index out of range, a broken internal invariant).

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a malformed argument (wrong index kind,
	// mismatched index dimensions, non-symbol where a symbol is required).
	ErrInvalidArgument = errors.New("expr: invalid argument")

	// ErrInternal indicates a broken internal invariant (a required index
	// permutation not found, an inexact exact-division, an impossible
	// classification).
	ErrInternal = errors.New("expr: internal invariant violation")

	// ErrRecursionLimit indicates a recursive rewrite exceeded its depth.
	ErrRecursionLimit = errors.New("expr: recursion limit exceeded")

	// ErrNotDifferentiable indicates a derivative that needs functions the
	// substrate does not provide (e.g. a symbol in an exponent).
	ErrNotDifferentiable = errors.New("expr: expression not differentiable")
)

// Operation tags used in wrapped errors.
const (
	opNewIndexed       = "NewIndexed"
	opDelta            = "Delta"
	opDiff             = "Diff"
	opSimplifyIndexed  = "SimplifyIndexed"
	opEvalM            = "EvalM"
	opNCMulEvaluate    = "NCProduct.Evaluate"
	opContractionApply = "Contraction.apply"
)

// DefaultMaxDepth bounds recursive rewrites (SimplifyIndexed, traces).
const DefaultMaxDepth = 1024

// exprErrorf wraps err with an operation tag.
func exprErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
