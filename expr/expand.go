// SPDX-License-Identifier: MIT
// Package expr: expansion, substitution, differentiation and matrix
// evaluation.

package expr

import "fmt"

// Differentiable is implemented by atoms with their own derivative.
type Differentiable interface {
	Derivative(s *Symbol) (Expr, error)
}

// MatrixValue is a value that behaves as a matrix under EvalM.
type MatrixValue interface {
	Expr
	MatMul(other Expr) (Expr, error)
	MatAdd(other Expr) (Expr, error)
	MatScale(c Expr) (Expr, error)
	MatPow(exp Expr) (Expr, error)
}

// Expand distributes products and positive integer powers over sums.
func Expand(e Expr) Expr {
	switch t := e.(type) {
	case *Num, *Symbol, *Idx:
		return e
	case *Sum:
		args := make([]Expr, t.Nops())
		for i := range args {
			args[i] = Expand(t.Op(i))
		}
		return Add(args...)
	case *Product:
		return expandProduct(t)
	case *Power:
		return expandPower(t)
	case *NCProduct:
		return t.Expand()
	}
	if e.Nops() == 0 {
		return e
	}
	return e.Map(Expand)
}

func expandProduct(p *Product) Expr {
	acc := []Expr{p.coef}
	for _, f := range p.factors {
		terms := termsOf(Expand(f))
		next := make([]Expr, 0, len(acc)*len(terms))
		for _, a := range acc {
			for _, t := range terms {
				next = append(next, Mul(a, t))
			}
		}
		acc = next
	}
	// products of terms may route through NCMul and need another pass
	for i, a := range acc {
		if _, ok := a.(*NCProduct); ok {
			acc[i] = Expand(a)
		}
	}
	return Add(acc...)
}

func expandPower(p *Power) Expr {
	base := Expand(p.base)
	exp := Expand(p.exp)
	s, isSum := base.(*Sum)
	n, isNum := exp.(*Num)
	if !isSum || !isNum || !n.v.IsInteger() {
		return Pow(base, exp)
	}
	k, ok := n.v.Int64()
	if !ok {
		return Pow(base, exp)
	}
	if k < 0 {
		return Pow(expandPower(&Power{base: s, exp: &Num{v: n.v.Neg()}}), minusOne)
	}
	result := Expr(s)
	for i := int64(1); i < k; i++ {
		result = distribute(result, s)
	}
	return result
}

// distribute multiplies two expanded values term by term. Mul alone would
// fold s·s back into s².
func distribute(a, b Expr) Expr {
	ta, tb := termsOf(a), termsOf(b)
	out := make([]Expr, 0, len(ta)*len(tb))
	for _, x := range ta {
		for _, y := range tb {
			m := Mul(x, y)
			if _, ok := m.(*NCProduct); ok {
				m = Expand(m)
			}
			out = append(out, m)
		}
	}
	return Add(out...)
}

func termsOf(e Expr) []Expr {
	s, ok := e.(*Sum)
	if !ok {
		return []Expr{e}
	}
	out := make([]Expr, s.Nops())
	for i := range out {
		out[i] = s.Op(i)
	}
	return out
}

// Subs replaces every occurrence of from by to and re-canonicalizes.
func Subs(e, from, to Expr) Expr {
	if Equal(e, from) {
		return to
	}
	if e.Nops() == 0 {
		return e
	}
	return e.Map(func(x Expr) Expr { return Subs(x, from, to) })
}

// SubsAll applies several substitutions simultaneously.
func SubsAll(e Expr, from, to []Expr) Expr {
	for i := range from {
		if Equal(e, from[i]) {
			return to[i]
		}
	}
	if e.Nops() == 0 {
		return e
	}
	return e.Map(func(x Expr) Expr { return SubsAll(x, from, to) })
}

// Has reports whether x occurs in e.
func Has(e, x Expr) bool {
	if Equal(e, x) {
		return true
	}
	for i := 0; i < e.Nops(); i++ {
		if Has(e.Op(i), x) {
			return true
		}
	}
	return false
}

// Diff returns ∂e/∂s.
func Diff(e Expr, s *Symbol) (Expr, error) {
	switch t := e.(type) {
	case *Num, *Idx:
		return zero, nil
	case *Symbol:
		if t == s || Equal(t, s) {
			return one, nil
		}
		return zero, nil
	case *Sum:
		args := make([]Expr, t.Nops())
		for i := range args {
			d, err := Diff(t.Op(i), s)
			if err != nil {
				return nil, err
			}
			args[i] = d
		}
		return Add(args...), nil
	case *Product:
		terms := make([]Expr, 0, len(t.factors))
		for i, f := range t.factors {
			df, err := Diff(f, s)
			if err != nil {
				return nil, err
			}
			if IsZero(df) {
				continue
			}
			args := append([]Expr{t.coef}, t.factors...)
			args[i+1] = df
			terms = append(terms, Mul(args...))
		}
		return Add(terms...), nil
	case *Power:
		if Has(t.exp, s) {
			return nil, exprErrorf(opDiff, fmt.Errorf("%w: %s has %s in its exponent", ErrNotDifferentiable, e, s))
		}
		db, err := Diff(t.base, s)
		if err != nil {
			return nil, err
		}
		return Mul(t.exp, Pow(t.base, Sub(t.exp, one)), db), nil
	case *NCProduct:
		return t.Diff(s)
	case *Indexed:
		if !Has(t.base, s) {
			return zero, nil
		}
		db, err := Diff(t.base, s)
		if err != nil {
			return nil, err
		}
		return NewIndexed(db, t.sym, t.indices...)
	case Differentiable:
		return t.Derivative(s)
	}
	if !Has(e, s) {
		return zero, nil
	}
	return nil, exprErrorf(opDiff, fmt.Errorf("%w: %s", ErrNotDifferentiable, e))
}

// EvalM evaluates sums, products and powers of matrices.
func EvalM(e Expr) (Expr, error) {
	switch t := e.(type) {
	case MatrixValue:
		return t, nil
	case *Sum:
		return evalmSum(t)
	case *Product:
		return evalmProduct(t)
	case *NCProduct:
		return t.EvalM()
	case *Power:
		base, err := EvalM(t.base)
		if err != nil {
			return nil, err
		}
		if m, ok := base.(MatrixValue); ok {
			r, err := m.MatPow(t.exp)
			if err != nil {
				return nil, exprErrorf(opEvalM, err)
			}
			return r, nil
		}
		return Pow(base, t.exp), nil
	}
	return e, nil
}

func evalmSum(s *Sum) (Expr, error) {
	var acc Expr
	var scalars []Expr
	for i := 0; i < s.Nops(); i++ {
		ev, err := EvalM(s.Op(i))
		if err != nil {
			return nil, err
		}
		m, ok := ev.(MatrixValue)
		if !ok {
			scalars = append(scalars, ev)
			continue
		}
		if acc == nil {
			acc = m
			continue
		}
		sum, err := acc.(MatrixValue).MatAdd(m)
		if err != nil {
			return nil, exprErrorf(opEvalM, err)
		}
		acc = sum
	}
	if acc == nil {
		return Add(scalars...), nil
	}
	if len(scalars) > 0 {
		return Add(append(scalars, acc)...), nil
	}
	return acc, nil
}

func evalmProduct(p *Product) (Expr, error) {
	var mat MatrixValue
	scalars := []Expr{p.coef}
	for _, f := range p.factors {
		ev, err := EvalM(f)
		if err != nil {
			return nil, err
		}
		m, ok := ev.(MatrixValue)
		if !ok {
			scalars = append(scalars, ev)
			continue
		}
		if mat == nil {
			mat = m
			continue
		}
		prod, err := mat.MatMul(m)
		if err != nil {
			return nil, exprErrorf(opEvalM, err)
		}
		pm, ok := prod.(MatrixValue)
		if !ok {
			return prod, nil
		}
		mat = pm
	}
	if mat == nil {
		return Mul(scalars...), nil
	}
	r, err := mat.MatScale(Mul(scalars...))
	if err != nil {
		return nil, exprErrorf(opEvalM, err)
	}
	return r, nil
}
