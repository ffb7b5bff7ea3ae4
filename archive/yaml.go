// SPDX-License-Identifier: MIT
// Package archive: YAML text form.

package archive

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symkernel/expr"
)

// Encode writes n as a YAML document.
func Encode(w io.Writer, n *Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return archiveErrorf(opEncode, err)
	}
	if err := enc.Close(); err != nil {
		return archiveErrorf(opEncode, err)
	}
	return nil
}

// Decode reads one YAML document into a node.
func Decode(r io.Reader) (*Node, error) {
	var n Node
	if err := yaml.NewDecoder(r).Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, archiveErrorf(opDecode, fmt.Errorf("%w: empty document", ErrMalformed))
		}
		return nil, archiveErrorf(opDecode, err)
	}
	if n.Class == "" {
		return nil, archiveErrorf(opDecode, fmt.Errorf("%w: missing class", ErrMalformed))
	}
	return &n, nil
}

// EncodeExpr saves e and writes it as YAML.
func EncodeExpr(w io.Writer, e expr.Expr) error {
	n, err := Save(e)
	if err != nil {
		return err
	}
	return Encode(w, n)
}

// DecodeExpr reads a YAML document and loads it.
func DecodeExpr(r io.Reader, syms *Symbols) (expr.Expr, error) {
	n, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Load(n, syms)
}
