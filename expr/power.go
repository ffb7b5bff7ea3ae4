// SPDX-License-Identifier: MIT
// Package expr: canonical powers.
//
// Evaluation rules applied by Pow:
//   - x^0 = 1, x^1 = x, 1^y = 1, 0^y = 0 for numeric y > 0.
//   - numeric^integer evaluates exactly.
//   - positive rational n^(p/q) with p/q = k + r/q (0 < r < q) becomes
//     n^k · n^(r/q); perfect square roots evaluate.
//   - (b^e)^k = b^(e·k) and (Π fᵢ)^k = Π fᵢ^k for integer k.
//   - a non-commuting base raised to a positive integer becomes an NCMul of
//     copies so order is preserved.

package expr

import "github.com/katalvlaran/symkernel/numeric"

// Power is base^exp.
type Power struct {
	base Expr
	exp  Expr
}

// Pow returns the canonical base^exp.
func Pow(base, exp Expr) Expr {
	en, expNum := exp.(*Num)
	if expNum {
		if en.isZero() {
			return one
		}
		if en.isOne() {
			return base
		}
	}

	if bn, ok := base.(*Num); ok {
		if bn.isOne() {
			return one
		}
		if expNum {
			if r, ok := powNum(bn, en); ok {
				return r
			}
		}
		return &Power{base: base, exp: exp}
	}

	if expNum && en.v.IsInteger() {
		if k, fits := en.v.Int64(); fits {
			switch b := base.(type) {
			case *Power:
				return Pow(b.base, Mul(b.exp, en))
			case *Product:
				args := make([]Expr, 0, len(b.factors)+1)
				args = append(args, &Num{v: b.coef.v.PowInt(k)})
				for _, f := range b.factors {
					args = append(args, Pow(f, en))
				}
				return Mul(args...)
			}
			if k > 1 && ReturnType(base) != Commutative {
				copies := make([]Expr, k)
				for i := range copies {
					copies[i] = base
				}
				return NCMul(copies...)
			}
		}
	}
	return &Power{base: base, exp: exp}
}

// Sqrt returns e^(1/2).
func Sqrt(e Expr) Expr { return Pow(e, Frac(1, 2)) }

// powNum evaluates numeric^numeric when the result stays exact.
func powNum(b, e *Num) (Expr, bool) {
	if b.isZero() {
		if e.v.IsPositive() {
			return zero, true
		}
		if e.v.IsNegative() {
			panic(numeric.ErrDivisionByZero)
		}
		return nil, false
	}
	if e.v.IsInteger() {
		k, ok := e.v.Int64()
		if !ok {
			return nil, false
		}
		return &Num{v: b.v.PowInt(k)}, true
	}
	if !e.v.IsReal() || !b.v.IsPositive() {
		return nil, false
	}
	if !b.v.IsInteger() {
		// (p/q)^e = p^e · q^(-e)
		return Mul(Pow(&Num{v: b.v.Numer()}, e), Pow(&Num{v: b.v.Denom()}, &Num{v: e.v.Neg()})), true
	}
	// e = k + r with 0 < r < 1
	kn, _ := e.v.Floor()
	frac := e.v.Sub(kn)
	if k, _ := kn.Int64(); k != 0 {
		return Mul(&Num{v: b.v.PowInt(k)}, Pow(b, &Num{v: frac})), true
	}
	if frac.Equal(numeric.FromFrac(1, 2)) {
		if s, ok := b.v.SqrtExact(); ok {
			return &Num{v: s}, true
		}
	}
	return &Power{base: b, exp: e}, true
}

// Base returns the base.
func (p *Power) Base() Expr { return p.base }

// Exp returns the exponent.
func (p *Power) Exp() Expr { return p.exp }

func (p *Power) String() string {
	return "(" + p.base.String() + ")^(" + p.exp.String() + ")"
}

func (p *Power) TypeRank() int { return RankPower }

func (p *Power) CompareSame(o Expr) int {
	op := o.(*Power)
	if c := Compare(p.base, op.base); c != 0 {
		return c
	}
	return Compare(p.exp, op.exp)
}

func (p *Power) Nops() int { return 2 }

func (p *Power) Op(i int) Expr {
	switch i {
	case 0:
		return p.base
	case 1:
		return p.exp
	}
	panic("expr: Power operand out of range")
}

func (p *Power) Map(f func(Expr) Expr) Expr { return Pow(f(p.base), f(p.exp)) }
