// SPDX-License-Identifier: MIT
// Package color: persisted form of color bases.
//
// A base is stored as its variant's class name with the label as the only
// property. The indexed wrapper and its indices are stored by the archive
// package, so a loaded tensor is re-evaluated through expr.NewIndexed.

package color

import (
	"fmt"

	"github.com/katalvlaran/symkernel/archive"
	"github.com/katalvlaran/symkernel/expr"
)

func init() {
	for _, v := range []Variant{VariantOne, VariantT, VariantD, VariantF} {
		archive.Register(v.String(), loader(v))
	}
}

// Archive implements archive.Archiver.
func (b *Base) Archive() (*archive.Node, error) {
	return archive.NewNode(b.variant.String()).Set("label", int(b.label)), nil
}

func loader(v Variant) archive.Factory {
	return func(n *archive.Node, _ *archive.Symbols) (expr.Expr, error) {
		var p struct {
			Label int `mapstructure:"label"`
		}
		if err := n.DecodeProps(&p); err != nil {
			return nil, colorErrorf(opLoad, err)
		}
		if p.Label < 0 || p.Label > 255 {
			return nil, colorErrorf(opLoad, fmt.Errorf("%w: label %d", archive.ErrMalformed, p.Label))
		}
		return &Base{variant: v, label: uint8(p.Label)}, nil
	}
}
