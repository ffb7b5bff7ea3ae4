// SPDX-License-Identifier: MIT
// Package expr: the expression interface, total order and return types.
//
// Every value in the system (numbers, symbols, sums, products, powers,
// indices, indexed objects, non-commutative products, matrices, color
// bases) implements Expr. Containers are built only through canonicalizing
// constructors (Add, Mul, Pow, NCMul, NewIndexed), so two mathematically
// identical inputs built the same way are structurally Equal.
//
// Ordering:
//   - Compare orders first by TypeRank, then by the type's own CompareSame.
//   - The order is total and deterministic; it drives operand sorting.

package expr

// Expr is an immutable symbolic expression.
type Expr interface {
	// String returns a debugging rendering.
	String() string

	// TypeRank places the concrete type in the global order.
	TypeRank() int

	// CompareSame compares with another value of the same TypeRank.
	CompareSame(other Expr) int

	// Nops returns the number of operands.
	Nops() int

	// Op returns operand i (0 ≤ i < Nops()).
	Op(i int) Expr

	// Map rebuilds the expression with f applied to every operand.
	// Atoms return themselves.
	Map(f func(Expr) Expr) Expr
}

// Type ranks. Gaps leave room for consuming packages.
const (
	RankNum       = 10
	RankSymbol    = 20
	RankIdx       = 25
	RankSum       = 30
	RankProduct   = 40
	RankPower     = 50
	RankNCProduct = 60
	RankIndexed   = 70
	RankMatrix    = 80
	RankTensor    = 90
)

// Compare is a total order over expressions.
func Compare(a, b Expr) int {
	ra, rb := a.TypeRank(), b.TypeRank()
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}
	return a.CompareSame(b)
}

// Equal reports structural equality.
func Equal(a, b Expr) bool {
	if a == b {
		return true
	}
	return Compare(a, b) == 0
}

// compareOps compares operand lists: length first, then element-wise.
func compareOps(a, b Expr) int {
	na, nb := a.Nops(), b.Nops()
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	}
	for i := 0; i < na; i++ {
		if c := Compare(a.Op(i), b.Op(i)); c != 0 {
			return c
		}
	}
	return 0
}

// ReturnKind classifies how a value multiplies with others.
type ReturnKind int

const (
	// Commutative values commute with everything.
	Commutative ReturnKind = iota
	// NonCommutative values commute only with values of other algebras.
	NonCommutative
	// NonCommutativeComposite values mix several algebras and never reorder.
	NonCommutativeComposite
)

// String implements fmt.Stringer.
func (k ReturnKind) String() string {
	switch k {
	case Commutative:
		return "commutative"
	case NonCommutative:
		return "noncommutative"
	case NonCommutativeComposite:
		return "noncommutative_composite"
	default:
		return "unknown"
	}
}

// Tag names the algebra of a non-commuting value (e.g. "su3/0", "matrix").
type Tag string

// ReturnTyper is implemented by atoms that do not commute.
type ReturnTyper interface {
	ReturnType() ReturnKind
	ReturnTag() Tag
}

// ComponentCommuter is implemented by non-commuting bases whose indexed
// components are ordinary commuting scalars (a matrix A does not commute,
// its entry A.i.j does).
type ComponentCommuter interface {
	ComponentsCommute() bool
}

// componentsCommute reports an indexed object over a ComponentCommuter.
func componentsCommute(ix *Indexed) bool {
	cc, ok := ix.base.(ComponentCommuter)
	return ok && cc.ComponentsCommute()
}

// ReturnType classifies e for multiplication.
func ReturnType(e Expr) ReturnKind {
	switch t := e.(type) {
	case *Num, *Symbol, *Idx:
		return Commutative
	case *Sum:
		return ReturnType(t.Op(0))
	case *Power:
		return ReturnType(t.base)
	case *Indexed:
		if componentsCommute(t) {
			return Commutative
		}
		return ReturnType(t.base)
	case *Product:
		return factorsReturnType(t.factors)
	case *NCProduct:
		return factorsReturnType(t.factors)
	case ReturnTyper:
		return t.ReturnType()
	}
	return Commutative
}

// ReturnTag names the algebra of e; empty for commutative values.
func ReturnTag(e Expr) Tag {
	switch t := e.(type) {
	case *Num, *Symbol, *Idx:
		return ""
	case *Sum:
		return ReturnTag(t.Op(0))
	case *Power:
		return ReturnTag(t.base)
	case *Indexed:
		if componentsCommute(t) {
			return ""
		}
		return ReturnTag(t.base)
	case *Product:
		return factorsReturnTag(t.factors)
	case *NCProduct:
		return factorsReturnTag(t.factors)
	case ReturnTyper:
		return t.ReturnTag()
	}
	return ""
}

// factorsReturnType: all commutative ⇒ Commutative; any composite or two
// distinct tags ⇒ NonCommutativeComposite; otherwise NonCommutative.
func factorsReturnType(factors []Expr) ReturnKind {
	var tag Tag
	seen := false
	for _, f := range factors {
		switch ReturnType(f) {
		case Commutative:
			continue
		case NonCommutativeComposite:
			return NonCommutativeComposite
		}
		ft := ReturnTag(f)
		if !seen {
			tag, seen = ft, true
			continue
		}
		if ft != tag {
			return NonCommutativeComposite
		}
	}
	if !seen {
		return Commutative
	}
	return NonCommutative
}

func factorsReturnTag(factors []Expr) Tag {
	for _, f := range factors {
		if ReturnType(f) != Commutative {
			return ReturnTag(f)
		}
	}
	return ""
}
