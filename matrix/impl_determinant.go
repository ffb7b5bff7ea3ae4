// SPDX-License-Identifier: MIT
// Package matrix: determinant kernels.
//
// Four algorithms compute the same value:
//   - Gauss: sign × product of the eliminated diagonal.
//   - DivFree: the last entry after division-free elimination, with the
//     accumulated pivot powers divided out.
//   - Bareiss: the last entry after fraction-free elimination.
//   - Laplace: minor expansion from the rightmost column, memoizing the
//     minors of the previous column keyed by their row subset.
//
// Auto selection classifies the entries after replacing non-rational atoms
// by symbols: purely numeric ⇒ Gauss; more than three rows with at most a
// fifth of the entries non-zero ⇒ Bareiss; anything else ⇒ Laplace.

package matrix

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/symkernel/expr"
)

const opDeterminant = "Determinant"

// entryStats summarizes the rationalized entries of a matrix.
type entryStats struct {
	numeric bool // every entry is a number
	normal  bool // some entry is a rational function but no polynomial
	nonzero int  // count of non-zero entries
}

// classify computes entryStats.
func (m *Dense) classify() entryStats {
	st := entryStats{numeric: true}
	for _, e := range m.buf.data {
		rt := expr.ToRational(e, expr.NewReplacements())
		if !expr.IsZero(rt) {
			st.nonzero++
		}
		if !expr.IsNumeric(rt) {
			st.numeric = false
		}
		if expr.IsRationalFunction(rt) && !expr.IsPolynomial(rt) {
			st.normal = true
		}
	}
	return st
}

// Determinant returns det(m).
//
// Implementation:
//   - Stage 1: ValidateSquare; classify the entries.
//   - Stage 2: a 1×1 matrix returns its entry (normalized or expanded).
//   - Stage 3: resolve the algorithm (WithDeterminantAlgo or auto) and run it.
//
// Behavior highlights:
//   - Results are expanded polynomials for polynomial entries and
//     normalized fractions when some entry is a non-polynomial rational
//     function.
//   - Every algorithm returns the same value; forms may differ only by
//     canonical rewriting.
//
// Errors:
//   - ErrNonSquare.
//   - ErrInexactDivision from Bareiss (internal bug, never bad input).
//
// Complexity:
//   - Gauss, DivFree, Bareiss: O(n³) entry operations.
//   - Laplace: O(n·2ⁿ) entry operations.
func (m *Dense) Determinant(opts ...Option) (expr.Expr, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	st := m.classify()
	n := m.r

	if n == 1 {
		if st.normal {
			return expr.Normal(m.at(0, 0)), nil
		}
		return expr.Expand(m.at(0, 0)), nil
	}

	algo := o.DeterminantAlgo
	if algo == DetAuto {
		algo = DetLaplace
		if n > 3 && 5*st.nonzero <= n*n {
			algo = DetBareiss
		}
		if st.numeric {
			algo = DetGauss
		}
	}
	o.Logger.Debug("matrix determinant",
		slog.String("algo", algo.String()),
		slog.Int("n", n),
		slog.Int("nonzero", st.nonzero),
	)

	switch algo {
	case DetGauss:
		return m.detGauss(st), nil
	case DetDivFree:
		return m.detDivFree(), nil
	case DetBareiss:
		det, err := m.detBareiss(st)
		if err != nil {
			return nil, matrixErrorf(opDeterminant, err)
		}
		return det, nil
	default:
		return m.detLaplace(st), nil
	}
}

func (m *Dense) detGauss(st entryStats) expr.Expr {
	tmp := m.Clone()
	sign := tmp.gaussElimination(true, tmp.c)
	if sign == 0 {
		return expr.Zero()
	}
	factors := make([]expr.Expr, 0, tmp.r+1)
	factors = append(factors, expr.Int(int64(sign)))
	for d := 0; d < tmp.r; d++ {
		factors = append(factors, tmp.at(d, d))
	}
	det := expr.Normal(expr.Mul(factors...))
	if !st.normal {
		det = expr.Expand(det)
	}
	return det
}

// detDivFree divides the last entry by p_d^(n-2-d) for every pivot p_d,
// d < n-2, normalizing after each division.
func (m *Dense) detDivFree() expr.Expr {
	tmp := m.Clone()
	n := tmp.r
	sign := tmp.divisionFreeElimination(true, tmp.c)
	if sign == 0 {
		return expr.Zero()
	}
	det := tmp.at(n-1, n-1)
	for d := 0; d < n-2; d++ {
		for j := 0; j < n-d-2; j++ {
			det = expr.Normal(expr.Div(det, tmp.at(d, d)))
		}
	}
	return expr.Mul(expr.Int(int64(sign)), det)
}

func (m *Dense) detBareiss(st entryStats) (expr.Expr, error) {
	tmp := m.Clone()
	sign, err := tmp.fractionFreeElimination(true, tmp.c)
	if err != nil {
		return nil, err
	}
	det := expr.Mul(expr.Int(int64(sign)), tmp.at(tmp.r-1, tmp.c-1))
	if st.normal {
		return expr.Normal(det), nil
	}
	return expr.Expand(det), nil
}

// detLaplace sorts the columns ascending by their zero count (the sparsest
// columns end up on the right, where expansion starts) and expands.
func (m *Dense) detLaplace(st entryStats) expr.Expr {
	n := m.c
	type colZeros struct{ zeros, col int }
	cz := make([]colZeros, n)
	for c := 0; c < n; c++ {
		cz[c].col = c
		for r := 0; r < n; r++ {
			if expr.IsZero(m.at(r, c)) {
				cz[c].zeros++
			}
		}
	}
	sort.SliceStable(cz, func(i, j int) bool { return cz[i].zeros < cz[j].zeros })

	perm := make([]int, n)
	data := make([]expr.Expr, n*n)
	for c, z := range cz {
		perm[c] = z.col
		for r := 0; r < n; r++ {
			data[r*n+c] = m.at(r, z.col)
		}
	}
	det := expr.Mul(expr.Int(int64(permutationSign(perm))), newDense(n, n, data).determinantMinor())
	if st.normal {
		return expr.Normal(det)
	}
	return det
}

// permutationSign returns +1 for an even permutation, -1 for an odd one.
func permutationSign(perm []int) int {
	sign := 1
	for i := range perm {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				sign = -sign
			}
		}
	}
	return sign
}

// determinantMinor expands along columns from right to left.
//
// Implementation:
//   - Sizes 1..3 use closed forms.
//   - The 1×1 minors of the last column seed the memo, keyed by row subset.
//   - For column c every (n-c)-subset of rows is expanded along c using the
//     memoized (n-c-1)-minors of column c+1; zero minors are not stored.
//   - The memo of the previous column is dropped once the next one is built.
//
// Complexity:
//   - O(Σₖ C(n,k)·k) entry products, O(C(n, n/2)) memo entries.
func (m *Dense) determinantMinor() expr.Expr {
	n := m.c
	d := m.buf.data
	switch n {
	case 1:
		return expr.Expand(d[0])
	case 2:
		return expr.Expand(expr.Sub(expr.Mul(d[0], d[3]), expr.Mul(d[2], d[1])))
	case 3:
		return expr.Expand(expr.Add(
			expr.Mul(d[0], d[4], d[8]),
			expr.Neg(expr.Mul(d[0], d[5], d[7])),
			expr.Neg(expr.Mul(d[1], d[3], d[8])),
			expr.Mul(d[2], d[3], d[7]),
			expr.Mul(d[1], d[5], d[6]),
			expr.Neg(expr.Mul(d[2], d[4], d[6])),
		))
	}

	prev := make(map[string]expr.Expr, n)
	for r := 0; r < n; r++ {
		prev[subsetKey([]int{r})] = d[n*(r+1)-1]
	}
	var det expr.Expr = expr.Zero()
	minor := make([]int, 0, n)
	for c := n - 2; c >= 0; c-- {
		k := n - c
		next := make(map[string]expr.Expr)
		rows := make([]int, k)
		for i := range rows {
			rows[i] = i
		}
		for {
			terms := make([]expr.Expr, 0, k)
			for r := 0; r < k; r++ {
				e := d[rows[r]*n+c]
				if expr.IsZero(e) {
					continue
				}
				minor = minor[:0]
				for i := 0; i < k; i++ {
					if i != r {
						minor = append(minor, rows[i])
					}
				}
				sub, ok := prev[subsetKey(minor)]
				if !ok {
					continue
				}
				t := expr.Mul(e, sub)
				if r%2 == 1 {
					t = expr.Neg(t)
				}
				terms = append(terms, t)
			}
			det = expr.Expand(expr.Add(terms...))
			if !expr.IsZero(det) {
				next[subsetKey(rows)] = det
			}
			if !nextSubset(rows, n) {
				break
			}
		}
		prev = next
	}

	return det
}

// subsetKey is the memo key of a sorted row subset.
func subsetKey(rows []int) string { return fmt.Sprint(rows) }

// nextSubset advances s to the next k-subset of {0..n-1} in lexicographic
// order. It reports false after the last subset.
func nextSubset(s []int, n int) bool {
	k := len(s)
	i := k - 1
	for i >= 0 && s[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	s[i]++
	for j := i + 1; j < k; j++ {
		s[j] = s[j-1] + 1
	}
	return true
}
