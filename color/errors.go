// SPDX-License-Identifier: MIT
// Package color: sentinel errors.
//
// Both sentinels wrap the substrate's categories, so callers can match either
// the precise cause (ErrInvalidIndex) or the category
// (expr.ErrInvalidArgument).

package color

import (
	"fmt"

	"github.com/katalvlaran/symkernel/expr"
)

var (
	// ErrInvalidIndex indicates a tensor argument that is not an index of
	// dimension 8.
	ErrInvalidIndex = fmt.Errorf("color: index must be an Idx of dimension 8: %w", expr.ErrInvalidArgument)

	// ErrNoPermutation indicates that no permutation brings the contracted
	// indices of a structure constant to its last two slots.
	ErrNoPermutation = fmt.Errorf("color: no permutation moves the free index to the front: %w", expr.ErrInternal)
)

// Operation tags.
const (
	opT       = "T"
	opD       = "D"
	opF       = "F"
	opH       = "H"
	opTrace   = "Trace"
	opPermute = "permuteFreeIndexToFront"
	opLoad    = "load"
)

// colorErrorf wraps err with an operation tag.
func colorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
