// Package matrix offers dense symbolic matrices over the expr substrate.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of expressions with copy-on-write storage.
//   - Arithmetic: Add, Sub, Mul, MulScalar, integer Pow, Transpose.
//   - Linear algebra: Determinant (Gauss, division-free, Bareiss, Laplace,
//     or automatic selection), Trace, CharPoly, Solve, Inverse.
//   - Entrywise services: Expand, Normal, Subs, Diff, EvalM.
//   - The indexed bridge: A.i.j and v.i as expr.Indexed objects, with
//     contraction over dummy indices evaluating to matrix products.
//
// A Dense is itself an expression: products of matrices keep their order
// (algebra tag "matrix") and are evaluated with expr.EvalM.
//
// Determinant and Solve pick their algorithm from the entries unless
// WithDeterminantAlgo / WithSolveAlgo force one; WithLogger records the
// choice at Debug level.
package matrix
