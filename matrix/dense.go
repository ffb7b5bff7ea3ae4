// SPDX-License-Identifier: MIT
// Package matrix: Dense, a row-major matrix of symbolic entries.
//
// Storage:
//   - Entries live in a flat []expr.Expr of length r*c, row-major.
//   - The slice sits in a shared buffer with a share counter. Clone and every
//     derived value share the buffer; the first write through Set (or an
//     internal kernel) copies it, so earlier copies never observe the change.
//   - The buffer is not guarded by a lock: a Dense is used by one goroutine
//     at a time, like any other expression value.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/symkernel/expr"
)

// Method tags used in error wrappers.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// storage is the shared backing buffer.
type storage struct {
	data []expr.Expr
	refs int
}

// Dense is a row-major matrix of expressions.
type Dense struct {
	r, c int
	buf  *storage
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// newDense wraps data (length r*c) without copying.
func newDense(r, c int, data []expr.Expr) *Dense {
	return &Dense{r: r, c: c, buf: &storage{data: data, refs: 1}}
}

// zeros returns r*c zero entries.
func zeros(n int) []expr.Expr {
	data := make([]expr.Expr, n)
	for i := range data {
		data[i] = expr.Zero()
	}
	return data
}

// NewDense creates an r×c matrix of zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat buffer.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return newDense(rows, cols, zeros(rows*cols)), nil
}

// NewDenseFrom creates an r×c matrix from row-major elems. Missing entries
// are zero; surplus entries are dropped.
func NewDenseFrom(rows, cols int, elems []expr.Expr) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	n := rows * cols
	if len(elems) < n {
		n = len(elems)
	}
	copy(m.buf.data, elems[:n])

	return m, nil
}

// FromRows creates a matrix from rows. The column count is the longest row;
// shorter rows are padded with zeros.
func FromRows(rows [][]expr.Expr) (*Dense, error) {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.buf.data[i*cols:], row)
	}

	return m, nil
}

// Diag creates a square matrix with elems on the diagonal.
func Diag(elems ...expr.Expr) (*Dense, error) {
	n := len(elems)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, e := range elems {
		m.buf.data[i*n+i] = e
	}

	return m, nil
}

// NewIdentity creates the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.buf.data[i*n+i] = expr.One()
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the entry at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (expr.Expr, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return nil, err
	}

	return m.buf.data[idx], nil
}

// Set assigns v at (row, col). A shared buffer is copied first.
// Complexity: O(1), or O(r*c) on the first write after a Clone.
func (m *Dense) Set(row, col int, v expr.Expr) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.mutable()[idx] = v

	return nil
}

// Clone returns a copy sharing the buffer until either side writes.
// Complexity: O(1).
func (m *Dense) Clone() *Dense {
	m.buf.refs++

	return &Dense{r: m.r, c: m.c, buf: m.buf}
}

// mutable returns the entries for writing, detaching a shared buffer.
func (m *Dense) mutable() []expr.Expr {
	if m.buf.refs > 1 {
		m.buf.refs--
		data := make([]expr.Expr, len(m.buf.data))
		copy(data, m.buf.data)
		m.buf = &storage{data: data, refs: 1}
	}

	return m.buf.data
}

// at reads (row, col) without bounds checks.
func (m *Dense) at(row, col int) expr.Expr { return m.buf.data[row*m.c+col] }

// Elements returns a copy of the entries in row-major order.
func (m *Dense) Elements() []expr.Expr {
	return append([]expr.Expr(nil), m.buf.data...)
}

// String renders [[a,b],[c,d]].
func (m *Dense) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(m.at(i, j).String())
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
