// SPDX-License-Identifier: MIT
// Package archive_test contains test helpers.

package archive_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/archive"
	"github.com/katalvlaran/symkernel/expr"
)

// MustRoundTrip saves e, writes it as YAML, reads it back and loads it
// against syms.
func MustRoundTrip(t *testing.T, e expr.Expr, syms *archive.Symbols) expr.Expr {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, archive.EncodeExpr(&buf, e))
	out, err := archive.DecodeExpr(&buf, syms)
	require.NoError(t, err)
	return out
}

// opaque is an expression type the archive does not know.
type opaque struct{}

func (opaque) String() string { return "opaque" }
func (opaque) TypeRank() int { return 1000 }
func (opaque) CompareSame(expr.Expr) int { return 0 }
func (opaque) Nops() int { return 0 }
func (opaque) Op(int) expr.Expr { panic("no operands") }
func (o opaque) Map(func(expr.Expr) expr.Expr) expr.Expr { return o }
