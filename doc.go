// Package symkernel is a small algebraic normalization core: it brings
// products of non-commuting factors, SU(3) color tensors and dense symbolic
// matrices to canonical form on top of an exact expression substrate.
//
// What is in the box?
//
//	• Expressions: symbols, exact complex-rational numbers, sums, products,
//	  powers, indices and indexed objects with declared symmetry
//	• Non-commutative products: associativity, extraction of commuting
//	  factors, grouping by algebra, expansion and calculus
//	• Color algebra: generators T.a, structure constants d.abc and f.abc,
//	  contraction identities and traces of generator strings
//	• Dense matrices: arithmetic, determinants (Gauss, division-free,
//	  Bareiss, Laplace), linear solves, inverses, characteristic polynomials
//	  and the indexed bridge A.i.j
//	• Archives: every value persists as a node tree with a YAML text form
//
// Layout:
//
//	numeric/ exact complex rationals over math/big
//	poly/    sparse multivariate polynomials: exact division and GCD
//	expr/    the substrate, NCProduct and the index contraction search
//	color/   SU(3) color algebra and Trace
//	matrix/  Dense and its linear algebra
//	archive/ node trees, registry and YAML encoding
//
// Quick example:
//
//	a := color.NewIndex(expr.NewSymbol("a"))
//	ta, _ := color.T(a, 0)
//	tr, _ := color.Trace(expr.NCMul(ta, ta), 0) // δ.a.a/2 = 4
//
//	go get github.com/katalvlaran/symkernel
package symkernel
