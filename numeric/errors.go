// SPDX-License-Identifier: MIT
// Package numeric: sentinel errors.

package numeric

import "errors"

var (
	// ErrDivisionByZero is the panic value raised by Inv/Div on a zero divisor.
	// Division by an exact zero is a programmer error at this layer.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrSyntax is returned by Parse for malformed rational strings.
	ErrSyntax = errors.New("numeric: invalid number syntax")
)
