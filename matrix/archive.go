// SPDX-License-Identifier: MIT
// Package matrix: persisted form of Dense.
//
//	class: matrix
//	props:    {row: r, col: c}
//	children: {m: [r*c entries, row-major]}

package matrix

import (
	"fmt"

	"github.com/katalvlaran/symkernel/archive"
	"github.com/katalvlaran/symkernel/expr"
)

// Class is the archive class of Dense.
const Class = "matrix"

const opLoad = "load"

func init() {
	archive.Register(Class, load)
}

// Archive implements archive.Archiver.
func (m *Dense) Archive() (*archive.Node, error) {
	n := archive.NewNode(Class).Set("row", m.r).Set("col", m.c)
	if err := archive.SaveList(n, "m", m.buf.data); err != nil {
		return nil, err
	}
	return n, nil
}

func load(n *archive.Node, syms *archive.Symbols) (expr.Expr, error) {
	var shape struct {
		Row int `mapstructure:"row"`
		Col int `mapstructure:"col"`
	}
	if err := n.DecodeProps(&shape); err != nil {
		return nil, matrixErrorf(opLoad, err)
	}
	elems, err := archive.LoadList(n, "m", syms)
	if err != nil {
		return nil, matrixErrorf(opLoad, err)
	}
	if shape.Row <= 0 || shape.Col <= 0 || len(elems) != shape.Row*shape.Col {
		return nil, matrixErrorf(opLoad, fmt.Errorf("%w: %d entries for %d×%d", archive.ErrMalformed, len(elems), shape.Row, shape.Col))
	}
	return newDense(shape.Row, shape.Col, elems), nil
}
