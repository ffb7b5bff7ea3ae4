// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symkernel/expr"
	"github.com/katalvlaran/symkernel/matrix"
)

func TestNewDense_Shape(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	for _, e := range m.Elements() {
		require.True(t, expr.IsZero(e))
	}

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

func TestNewDenseFrom_PadAndTruncate(t *testing.T) {
	short := MustInts(t, 2, 2, 1, 2, 3)
	require.Equal(t, "[[1,2],[3,0]]", short.String())

	long := MustInts(t, 1, 2, 1, 2, 3, 4)
	require.Equal(t, "[[1,2]]", long.String())
}

func TestFromRows_PadsToLongestRow(t *testing.T) {
	m := MustRows(t, ints(1), ints(2, 3, 4))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, "[[1,0,0],[2,3,4]]", m.String())

	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDiagAndIdentity(t *testing.T) {
	x := expr.NewSymbol("x")
	d, err := matrix.Diag(x, expr.Int(2))
	require.NoError(t, err)
	require.True(t, expr.Equal(x, MustAt(t, d, 0, 0)))
	require.True(t, expr.IsZero(MustAt(t, d, 0, 1)))

	id := MustIdentity(t, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, i == j, expr.IsOne(MustAt(t, id, i, j)))
		}
	}

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAtSet_OutOfRange(t *testing.T) {
	m := MustInts(t, 2, 2, 1, 2, 3, 4)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(rc[0], rc[1], expr.One()), matrix.ErrOutOfRange)
	}
}

// TestClone_CopyOnWrite writes through either side of a clone.
func TestClone_CopyOnWrite(t *testing.T) {
	a := MustInts(t, 2, 2, 1, 2, 3, 4)
	b := a.Clone()
	require.NoError(t, b.Set(0, 0, expr.Int(9)))
	require.Equal(t, "[[1,2],[3,4]]", a.String())
	require.Equal(t, "[[9,2],[3,4]]", b.String())

	c := a.Clone()
	require.NoError(t, a.Set(1, 1, expr.Int(7)))
	require.Equal(t, "[[1,2],[3,7]]", a.String())
	require.Equal(t, "[[1,2],[3,4]]", c.String())
	require.Equal(t, "[[9,2],[3,4]]", b.String())
}

func TestElements_ReturnsCopy(t *testing.T) {
	m := MustInts(t, 1, 2, 1, 2)
	els := m.Elements()
	els[0] = expr.Int(5)
	require.True(t, expr.IsOne(MustAt(t, m, 0, 0)))
}

func TestDense_ExprOrdering(t *testing.T) {
	a := MustInts(t, 2, 2, 1, 2, 3, 4)
	b := MustInts(t, 2, 2, 1, 2, 3, 4)
	c := MustInts(t, 2, 2, 1, 2, 3, 5)
	require.True(t, expr.Equal(a, b))
	require.False(t, expr.Equal(a, c))
	require.Equal(t, -expr.Compare(a, c), expr.Compare(c, a))
	require.False(t, expr.Equal(a, MustInts(t, 1, 4, 1, 2, 3, 4)))
	require.Equal(t, 4, a.Nops())
}
