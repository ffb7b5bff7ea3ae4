// SPDX-License-Identifier: MIT
// Package archive: saving and loading expressions.

package archive

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/symkernel/expr"
	"github.com/katalvlaran/symkernel/numeric"
)

// Substrate class names.
const (
	ClassNum     = "num"
	ClassSymbol  = "symbol"
	ClassAdd     = "add"
	ClassMul     = "mul"
	ClassNCMul   = "ncmul"
	ClassPower   = "power"
	ClassIdx     = "idx"
	ClassIndexed = "indexed"
	ClassDelta   = "delta"
)

// Archiver is implemented by values outside the substrate.
type Archiver interface {
	Archive() (*Node, error)
}

// Factory rebuilds a value from its node.
type Factory func(n *Node, syms *Symbols) (expr.Expr, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register installs the factory for class. It panics on an empty class, a
// nil factory, a duplicate registration or a substrate class name.
func Register(class string, f Factory) {
	if class == "" || f == nil {
		panic("archive: Register requires a class and a factory")
	}
	if isSubstrateClass(class) {
		panic("archive: class " + class + " is reserved")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[class]; dup {
		panic("archive: Register called twice for " + class)
	}
	registry[class] = f
}

// Classes returns the registered class names in ascending order.
func Classes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for c := range registry {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func isSubstrateClass(class string) bool {
	switch class {
	case ClassNum, ClassSymbol, ClassAdd, ClassMul, ClassNCMul,
		ClassPower, ClassIdx, ClassIndexed, ClassDelta:
		return true
	}
	return false
}

// Symbols resolves symbol names during loading.
type Symbols struct {
	byName map[string]*expr.Symbol
}

// NewSymbols returns a table that resolves the names of syms to syms. For
// repeated names the first symbol wins.
func NewSymbols(syms ...*expr.Symbol) *Symbols {
	t := &Symbols{byName: make(map[string]*expr.Symbol, len(syms))}
	for _, s := range syms {
		if _, ok := t.byName[s.Name()]; !ok {
			t.byName[s.Name()] = s
		}
	}
	return t
}

// Lookup returns the symbol of the given name, creating and remembering a
// new one when the name is unknown.
func (t *Symbols) Lookup(name string) *expr.Symbol {
	if s, ok := t.byName[name]; ok {
		return s
	}
	s := expr.NewSymbol(name)
	t.byName[name] = s
	return s
}

// Save converts e into a node tree.
func Save(e expr.Expr) (*Node, error) {
	n, err := save(e)
	if err != nil {
		return nil, archiveErrorf(opSave, err)
	}
	return n, nil
}

func save(e expr.Expr) (*Node, error) {
	switch x := e.(type) {
	case *expr.Num:
		re, im := x.Value().RatString()
		return NewNode(ClassNum).Set("re", re).Set("im", im), nil
	case *expr.Symbol:
		return NewNode(ClassSymbol).Set("name", x.Name()), nil
	case *expr.Sum:
		return saveOps(ClassAdd, x)
	case *expr.Product:
		return saveOps(ClassMul, x)
	case *expr.NCProduct:
		return saveOps(ClassNCMul, x)
	case *expr.Power:
		return saveNamed(ClassPower, []string{"base", "exp"}, x.Base(), x.Exp())
	case *expr.Idx:
		return saveNamed(ClassIdx, []string{"value", "dim"}, x.Value(), x.Dim())
	case *expr.Indexed:
		return saveIndexed(x)
	case Archiver:
		return x.Archive()
	}
	return nil, fmt.Errorf("%w: %T", ErrNotArchivable, e)
}

// saveOps stores every operand under "op".
func saveOps(class string, e expr.Expr) (*Node, error) {
	n := NewNode(class)
	for i := 0; i < e.Nops(); i++ {
		c, err := save(e.Op(i))
		if err != nil {
			return nil, err
		}
		n.Add("op", c)
	}
	return n, nil
}

func saveNamed(class string, keys []string, values ...expr.Expr) (*Node, error) {
	n := NewNode(class)
	for i, v := range values {
		c, err := save(v)
		if err != nil {
			return nil, err
		}
		n.Add(keys[i], c)
	}
	return n, nil
}

func saveIndexed(x *expr.Indexed) (*Node, error) {
	var n *Node
	if tn, ok := x.Base().(expr.TensorNamer); ok && tn.TensorName() == "delta" {
		n = NewNode(ClassDelta)
	} else {
		b, err := save(x.Base())
		if err != nil {
			return nil, err
		}
		n = NewNode(ClassIndexed).Set("symmetry", int(x.Symmetry())).Add("base", b)
	}
	for _, idx := range x.Indices() {
		c, err := save(idx)
		if err != nil {
			return nil, err
		}
		n.Add("index", c)
	}
	return n, nil
}

// SaveList saves every value in es under key of n. Archivers use it for
// their operand lists.
func SaveList(n *Node, key string, es []expr.Expr) error {
	for _, e := range es {
		c, err := save(e)
		if err != nil {
			return err
		}
		n.Add(key, c)
	}
	return nil
}

// Load rebuilds an expression from n. A nil syms behaves like an empty
// table.
func Load(n *Node, syms *Symbols) (expr.Expr, error) {
	if syms == nil {
		syms = NewSymbols()
	}
	e, err := load(n, syms)
	if err != nil {
		return nil, archiveErrorf(opLoad, err)
	}
	return e, nil
}

func load(n *Node, syms *Symbols) (expr.Expr, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrMalformed)
	}
	switch n.Class {
	case ClassNum:
		var p struct {
			Re string `mapstructure:"re"`
			Im string `mapstructure:"im"`
		}
		if err := n.DecodeProps(&p); err != nil {
			return nil, err
		}
		v, err := numeric.Parse(p.Re, p.Im)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return expr.NumOf(v), nil
	case ClassSymbol:
		var p struct {
			Name string `mapstructure:"name"`
		}
		if err := n.DecodeProps(&p); err != nil {
			return nil, err
		}
		if p.Name == "" {
			return nil, fmt.Errorf("%w: symbol without name", ErrMalformed)
		}
		return syms.Lookup(p.Name), nil
	case ClassAdd:
		ops, err := LoadList(n, "op", syms)
		if err != nil {
			return nil, err
		}
		return expr.Add(ops...), nil
	case ClassMul:
		ops, err := LoadList(n, "op", syms)
		if err != nil {
			return nil, err
		}
		return expr.Mul(ops...), nil
	case ClassNCMul:
		ops, err := LoadList(n, "op", syms)
		if err != nil {
			return nil, err
		}
		return expr.NCMul(ops...), nil
	case ClassPower:
		b, err := loadFirst(n, "base", syms)
		if err != nil {
			return nil, err
		}
		x, err := loadFirst(n, "exp", syms)
		if err != nil {
			return nil, err
		}
		return expr.Pow(b, x), nil
	case ClassIdx:
		v, err := loadFirst(n, "value", syms)
		if err != nil {
			return nil, err
		}
		d, err := loadFirst(n, "dim", syms)
		if err != nil {
			return nil, err
		}
		return expr.NewIdx(v, d), nil
	case ClassDelta:
		idx, err := loadIndices(n, syms)
		if err != nil {
			return nil, err
		}
		if len(idx) != 2 {
			return nil, fmt.Errorf("%w: delta with %d indices", ErrMalformed, len(idx))
		}
		return expr.Delta(idx[0], idx[1])
	case ClassIndexed:
		return loadIndexed(n, syms)
	}

	registryMu.RLock()
	f, ok := registry[n.Class]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, n.Class)
	}
	return f(n, syms)
}

func loadFirst(n *Node, key string, syms *Symbols) (expr.Expr, error) {
	c, err := n.First(key)
	if err != nil {
		return nil, err
	}
	return load(c, syms)
}

// LoadList loads every child under key of n.
func LoadList(n *Node, key string, syms *Symbols) ([]expr.Expr, error) {
	l := n.List(key)
	out := make([]expr.Expr, len(l))
	for i, c := range l {
		e, err := load(c, syms)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func loadIndices(n *Node, syms *Symbols) ([]*expr.Idx, error) {
	es, err := LoadList(n, "index", syms)
	if err != nil {
		return nil, err
	}
	idx := make([]*expr.Idx, len(es))
	for i, e := range es {
		x, ok := e.(*expr.Idx)
		if !ok {
			return nil, fmt.Errorf("%w: index %d is %T", ErrMalformed, i, e)
		}
		idx[i] = x
	}
	return idx, nil
}

func loadIndexed(n *Node, syms *Symbols) (expr.Expr, error) {
	var p struct {
		Symmetry int `mapstructure:"symmetry"`
	}
	if err := n.DecodeProps(&p); err != nil {
		return nil, err
	}
	sym := expr.Symmetry(p.Symmetry)
	if sym < expr.SymNone || sym > expr.SymAntisymmetric {
		return nil, fmt.Errorf("%w: symmetry %d", ErrMalformed, p.Symmetry)
	}
	base, err := loadFirst(n, "base", syms)
	if err != nil {
		return nil, err
	}
	idx, err := loadIndices(n, syms)
	if err != nil {
		return nil, err
	}
	return expr.NewIndexed(base, sym, idx...)
}
