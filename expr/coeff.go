// SPDX-License-Identifier: MIT
// Package expr: degrees, coefficients and collection in one variable.
//
// The results are exact for expanded input; on unexpanded products the
// per-factor rules apply as stated on each function.

package expr

// Degree returns the highest power of s in e.
func Degree(e, s Expr) int {
	if Equal(e, s) {
		return 1
	}
	switch t := e.(type) {
	case *Power:
		return powerDegree(t, s)
	case *Sum:
		d := Degree(t.Op(0), s)
		for i := 1; i < t.Nops(); i++ {
			if k := Degree(t.Op(i), s); k > d {
				d = k
			}
		}
		return d
	case *Product:
		d := 0
		for _, f := range t.factors {
			d += Degree(f, s)
		}
		return d
	case *NCProduct:
		return t.Degree(s)
	}
	return 0
}

// LDegree returns the lowest power of s in e.
func LDegree(e, s Expr) int {
	if Equal(e, s) {
		return 1
	}
	switch t := e.(type) {
	case *Power:
		return powerDegree(t, s)
	case *Sum:
		d := LDegree(t.Op(0), s)
		for i := 1; i < t.Nops(); i++ {
			if k := LDegree(t.Op(i), s); k < d {
				d = k
			}
		}
		return d
	case *Product:
		d := 0
		for _, f := range t.factors {
			d += LDegree(f, s)
		}
		return d
	case *NCProduct:
		return t.LDegree(s)
	}
	return 0
}

func powerDegree(p *Power, s Expr) int {
	n, ok := p.exp.(*Num)
	if !ok || !n.v.IsInteger() {
		return 0
	}
	k, ok := n.v.Int64()
	if !ok {
		return 0
	}
	if Equal(p.base, s) {
		return int(k)
	}
	if k > 0 && Has(p.base, s) {
		return Degree(p.base, s) * int(k)
	}
	return 0
}

// Coeff returns the coefficient of s^n in e.
//
// Products: for n == 0 the product of the factors' constant coefficients;
// otherwise every factor with a nonzero coefficient is replaced by it and
// the result is 0 when no factor carries s^n.
func Coeff(e, s Expr, n int) Expr {
	if Equal(e, s) {
		if n == 1 {
			return one
		}
		return zero
	}
	switch t := e.(type) {
	case *Power:
		if Equal(t.base, s) {
			if k, ok := t.exp.(*Num); ok && k.v.IsInteger() {
				if kk, _ := k.v.Int64(); kk == int64(n) {
					return one
				}
				return zero
			}
		}
	case *Sum:
		args := make([]Expr, t.Nops())
		for i := range args {
			args[i] = Coeff(t.Op(i), s, n)
		}
		return Add(args...)
	case *Product:
		if n == 0 {
			args := []Expr{t.coef}
			for _, f := range t.factors {
				args = append(args, Coeff(f, s, 0))
			}
			return Mul(args...)
		}
		args := []Expr{t.coef}
		found := false
		for _, f := range t.factors {
			c := Coeff(f, s, n)
			if IsZero(c) {
				args = append(args, f)
				continue
			}
			args = append(args, c)
			found = true
		}
		if !found {
			return zero
		}
		return Mul(args...)
	case *NCProduct:
		return t.Coeff(s, n)
	}
	if n == 0 {
		return e
	}
	return zero
}

// Collect rewrites e as Σ cₖ·s^k with cₖ free of s.
func Collect(e Expr, s Expr) Expr {
	x := Expand(e)
	lo, hi := LDegree(x, s), Degree(x, s)
	terms := make([]Expr, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		c := Coeff(x, s, k)
		if IsZero(c) {
			continue
		}
		terms = append(terms, Mul(c, Pow(s, Int(int64(k)))))
	}
	return Add(terms...)
}
