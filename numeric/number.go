// SPDX-License-Identifier: MIT
// Package numeric: exact complex-rational scalars.
//
// Purpose:
//   - Provide the single numeric domain used by the expression substrate:
//     numbers of the form a + b·i with a, b ∈ ℚ (big.Rat).
//   - Keep every operation pure: receivers and arguments are never mutated,
//     results are freshly allocated.
//
// Determinism:
//   - Cmp defines a total order (real part first, then imaginary part) so that
//     canonical operand sorting in the substrate is reproducible.

package numeric

import (
	"fmt"
	"math/big"
	"strings"
)

// Number is an immutable complex rational re + im·i.
// The zero value is not valid; use the constructors.
type Number struct {
	re *big.Rat // real part, never nil for constructed values
	im *big.Rat // imaginary part, never nil for constructed values
}

// Zero, One, MinusOne and I are shared read-only constants.
var (
	Zero     = FromInt(0)
	One      = FromInt(1)
	MinusOne = FromInt(-1)
	I        = Number{re: new(big.Rat), im: big.NewRat(1, 1)}
)

// FromInt returns the integer n.
func FromInt(n int64) Number {
	return Number{re: new(big.Rat).SetInt64(n), im: new(big.Rat)}
}

// FromFrac returns p/q. Panics with ErrDivisionByZero when q == 0.
func FromFrac(p, q int64) Number {
	if q == 0 {
		panic(ErrDivisionByZero)
	}
	return Number{re: big.NewRat(p, q), im: new(big.Rat)}
}

// FromRat returns a copy of r as a real number.
func FromRat(r *big.Rat) Number {
	return Number{re: new(big.Rat).Set(r), im: new(big.Rat)}
}

// FromBigInt returns the integer n.
func FromBigInt(n *big.Int) Number {
	return Number{re: new(big.Rat).SetInt(n), im: new(big.Rat)}
}

// Complex returns re + im·i (copies both parts).
func Complex(re, im *big.Rat) Number {
	return Number{re: new(big.Rat).Set(re), im: new(big.Rat).Set(im)}
}

// Parse reads the form produced by RatString: a rational string for each part.
func Parse(re, im string) (Number, error) {
	r, ok := new(big.Rat).SetString(re)
	if !ok {
		return Number{}, fmt.Errorf("%w: real part %q", ErrSyntax, re)
	}
	if im == "" {
		im = "0"
	}
	i, ok := new(big.Rat).SetString(im)
	if !ok {
		return Number{}, fmt.Errorf("%w: imaginary part %q", ErrSyntax, im)
	}
	return Number{re: r, im: i}, nil
}

// Re returns a copy of the real part.
func (x Number) Re() *big.Rat { return new(big.Rat).Set(x.re) }

// Im returns a copy of the imaginary part.
func (x Number) Im() *big.Rat { return new(big.Rat).Set(x.im) }

// Add returns x + y.
func (x Number) Add(y Number) Number {
	return Number{re: new(big.Rat).Add(x.re, y.re), im: new(big.Rat).Add(x.im, y.im)}
}

// Sub returns x - y.
func (x Number) Sub(y Number) Number {
	return Number{re: new(big.Rat).Sub(x.re, y.re), im: new(big.Rat).Sub(x.im, y.im)}
}

// Mul returns x · y.
func (x Number) Mul(y Number) Number {
	if x.im.Sign() == 0 && y.im.Sign() == 0 {
		return Number{re: new(big.Rat).Mul(x.re, y.re), im: new(big.Rat)}
	}
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	ac := new(big.Rat).Mul(x.re, y.re)
	bd := new(big.Rat).Mul(x.im, y.im)
	ad := new(big.Rat).Mul(x.re, y.im)
	bc := new(big.Rat).Mul(x.im, y.re)
	return Number{re: ac.Sub(ac, bd), im: ad.Add(ad, bc)}
}

// Inv returns 1/x. Panics with ErrDivisionByZero when x == 0.
func (x Number) Inv() Number {
	if x.IsZero() {
		panic(ErrDivisionByZero)
	}
	if x.im.Sign() == 0 {
		return Number{re: new(big.Rat).Inv(x.re), im: new(big.Rat)}
	}
	// 1/(a+bi) = (a-bi)/(a²+b²)
	norm := new(big.Rat).Mul(x.re, x.re)
	norm.Add(norm, new(big.Rat).Mul(x.im, x.im))
	re := new(big.Rat).Quo(x.re, norm)
	im := new(big.Rat).Quo(x.im, norm)
	return Number{re: re, im: im.Neg(im)}
}

// Div returns x / y. Panics with ErrDivisionByZero when y == 0.
func (x Number) Div(y Number) Number {
	if x.im.Sign() == 0 && y.im.Sign() == 0 {
		if y.re.Sign() == 0 {
			panic(ErrDivisionByZero)
		}
		return Number{re: new(big.Rat).Quo(x.re, y.re), im: new(big.Rat)}
	}
	return x.Mul(y.Inv())
}

// Neg returns -x.
func (x Number) Neg() Number {
	return Number{re: new(big.Rat).Neg(x.re), im: new(big.Rat).Neg(x.im)}
}

// PowInt returns x^k by binary exponentiation; negative k inverts first.
func (x Number) PowInt(k int64) Number {
	if k < 0 {
		return x.Inv().PowInt(-k)
	}
	result := One
	base := x
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// IsZero reports x == 0.
func (x Number) IsZero() bool { return x.re.Sign() == 0 && x.im.Sign() == 0 }

// IsOne reports x == 1.
func (x Number) IsOne() bool { return x.im.Sign() == 0 && x.re.Cmp(One.re) == 0 }

// IsMinusOne reports x == -1.
func (x Number) IsMinusOne() bool { return x.im.Sign() == 0 && x.re.Cmp(MinusOne.re) == 0 }

// IsReal reports a zero imaginary part.
func (x Number) IsReal() bool { return x.im.Sign() == 0 }

// IsInteger reports a real integer value.
func (x Number) IsInteger() bool { return x.im.Sign() == 0 && x.re.IsInt() }

// IsNonNegInt reports a real integer ≥ 0.
func (x Number) IsNonNegInt() bool { return x.IsInteger() && x.re.Sign() >= 0 }

// IsPositive reports a real value > 0.
func (x Number) IsPositive() bool { return x.im.Sign() == 0 && x.re.Sign() > 0 }

// IsNegative reports a real value < 0.
func (x Number) IsNegative() bool { return x.im.Sign() == 0 && x.re.Sign() < 0 }

// Int64 returns the value as int64 when it is a real integer that fits.
func (x Number) Int64() (int64, bool) {
	if !x.IsInteger() {
		return 0, false
	}
	n := x.re.Num()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// Floor returns ⌊x⌋ for a real x; ok is false for complex values.
func (x Number) Floor() (Number, bool) {
	if !x.IsReal() {
		return Number{}, false
	}
	num, den := x.re.Num(), x.re.Denom()
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(num, den, m) // Euclidean: m ≥ 0, so q is the floor for den > 0
	return FromBigInt(q), true
}

// Denom returns the least common multiple of the denominators of both parts.
func (x Number) Denom() Number {
	d1, d2 := x.re.Denom(), x.im.Denom()
	g := new(big.Int).GCD(nil, nil, d1, d2)
	l := new(big.Int).Mul(d1, d2)
	l.Quo(l, g)
	return FromBigInt(l)
}

// Numer returns x · Denom(x), a Gaussian integer.
func (x Number) Numer() Number { return x.Mul(x.Denom()) }

// SqrtExact returns √x when x is a non-negative rational perfect square.
func (x Number) SqrtExact() (Number, bool) {
	if !x.IsReal() || x.re.Sign() < 0 {
		return Number{}, false
	}
	num, den := x.re.Num(), x.re.Denom()
	sn := new(big.Int).Sqrt(num)
	if new(big.Int).Mul(sn, sn).Cmp(num) != 0 {
		return Number{}, false
	}
	sd := new(big.Int).Sqrt(den)
	if new(big.Int).Mul(sd, sd).Cmp(den) != 0 {
		return Number{}, false
	}
	return Number{re: new(big.Rat).SetFrac(sn, sd), im: new(big.Rat)}, true
}

// Cmp is a total order: real parts first, imaginary parts second.
func (x Number) Cmp(y Number) int {
	if c := x.re.Cmp(y.re); c != 0 {
		return c
	}
	return x.im.Cmp(y.im)
}

// Equal reports x == y.
func (x Number) Equal(y Number) bool { return x.Cmp(y) == 0 }

// RatString returns the exact real and imaginary parts ("p/q" or "p").
func (x Number) RatString() (re, im string) {
	return x.re.RatString(), x.im.RatString()
}

// String renders "3/2", "I", "-1/2*I" or "1+2*I".
func (x Number) String() string {
	if x.im.Sign() == 0 {
		return x.re.RatString()
	}
	var b strings.Builder
	if x.re.Sign() != 0 {
		b.WriteString(x.re.RatString())
		if x.im.Sign() > 0 {
			b.WriteByte('+')
		}
	}
	switch {
	case x.im.Cmp(One.re) == 0:
		b.WriteString("I")
	case x.im.Cmp(MinusOne.re) == 0:
		b.WriteString("-I")
	default:
		b.WriteString(x.im.RatString())
		b.WriteString("*I")
	}
	return b.String()
}
