// SPDX-License-Identifier: MIT
// Package expr: numeric and symbolic atoms.

package expr

import (
	"strings"
	"sync/atomic"

	"github.com/katalvlaran/symkernel/numeric"
)

// Num is a numeric atom.
type Num struct {
	v numeric.Number
}

// Common numeric atoms.
var (
	zero     = &Num{v: numeric.Zero}
	one      = &Num{v: numeric.One}
	minusOne = &Num{v: numeric.MinusOne}
)

// NumOf wraps a numeric.Number.
func NumOf(v numeric.Number) *Num { return &Num{v: v} }

// Int returns the integer n.
func Int(n int64) *Num { return &Num{v: numeric.FromInt(n)} }

// Frac returns p/q. Panics when q == 0.
func Frac(p, q int64) *Num { return &Num{v: numeric.FromFrac(p, q)} }

// ImagUnit returns i.
func ImagUnit() *Num { return &Num{v: numeric.I} }

// Zero returns 0.
func Zero() *Num { return zero }

// One returns 1.
func One() *Num { return one }

// Value returns the underlying number.
func (n *Num) Value() numeric.Number { return n.v }

func (n *Num) String() string {
	s := n.v.String()
	if !n.v.IsReal() && n.v.Re().Sign() != 0 {
		return "(" + s + ")"
	}
	return s
}
func (n *Num) TypeRank() int { return RankNum }
func (n *Num) CompareSame(o Expr) int { return n.v.Cmp(o.(*Num).v) }
func (n *Num) Nops() int { return 0 }
func (n *Num) Op(int) Expr { panic("expr: Num has no operands") }
func (n *Num) Map(func(Expr) Expr) Expr { return n }
func (n *Num) add(o *Num) *Num { return &Num{v: n.v.Add(o.v)} }
func (n *Num) mul(o *Num) *Num { return &Num{v: n.v.Mul(o.v)} }
func (n *Num) isZero() bool { return n.v.IsZero() }
func (n *Num) isOne() bool { return n.v.IsOne() }

var symbolSerial atomic.Uint64

// Symbol is a named free variable. Two symbols are the same value only when
// they come from the same NewSymbol call; names may repeat.
type Symbol struct {
	name   string
	serial uint64
}

// NewSymbol creates a fresh symbol.
func NewSymbol(name string) *Symbol {
	return &Symbol{name: name, serial: symbolSerial.Add(1)}
}

// Symbols creates one fresh symbol per name.
func Symbols(names ...string) []*Symbol {
	out := make([]*Symbol, len(names))
	for i, n := range names {
		out[i] = NewSymbol(n)
	}
	return out
}

// Name returns the symbol name.
func (s *Symbol) Name() string { return s.name }

func (s *Symbol) String() string { return s.name }
func (s *Symbol) TypeRank() int { return RankSymbol }
func (s *Symbol) CompareSame(o Expr) int {
	os := o.(*Symbol)
	if c := strings.Compare(s.name, os.name); c != 0 {
		return c
	}
	switch {
	case s.serial < os.serial:
		return -1
	case s.serial > os.serial:
		return 1
	}
	return 0
}
func (s *Symbol) Nops() int { return 0 }
func (s *Symbol) Op(int) Expr { panic("expr: Symbol has no operands") }
func (s *Symbol) Map(func(Expr) Expr) Expr { return s }
