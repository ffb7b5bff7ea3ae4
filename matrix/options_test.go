// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/matrix"
)

func TestOptions_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithDeterminantAlgo(matrix.DeterminantAlgo(-1)) })
	require.Panics(t, func() { matrix.WithDeterminantAlgo(matrix.DetLaplace + 1) })
	require.Panics(t, func() { matrix.WithSolveAlgo(matrix.SolveBareiss + 1) })
	require.Panics(t, func() { matrix.WithLogger(nil) })
}

func TestOptions_NilOptionIgnored(t *testing.T) {
	got := MustDet(t, MustInts(t, 2, 2, 1, 2, 3, 4), nil, matrix.WithDeterminantAlgo(matrix.DetBareiss))
	requireSameValue(t, MustDet(t, MustInts(t, 2, 2, 1, 2, 3, 4)), got)
}

func TestAlgoStrings(t *testing.T) {
	require.Equal(t, "auto", matrix.DetAuto.String())
	require.Equal(t, "gauss", matrix.DetGauss.String())
	require.Equal(t, "divfree", matrix.DetDivFree.String())
	require.Equal(t, "bareiss", matrix.DetBareiss.String())
	require.Equal(t, "laplace", matrix.DetLaplace.String())
	require.Equal(t, "unknown", matrix.DeterminantAlgo(42).String())

	require.Equal(t, "auto", matrix.SolveAuto.String())
	require.Equal(t, "gauss", matrix.SolveGauss.String())
	require.Equal(t, "divfree", matrix.SolveDivFree.String())
	require.Equal(t, "bareiss", matrix.SolveBareiss.String())
}
