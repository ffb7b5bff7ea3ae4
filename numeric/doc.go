// Package numeric provides exact complex-rational numbers (ℚ + ℚ·i) backed by
// math/big. It is the arithmetic service consumed by the expression substrate:
// every numeric coefficient, structure-constant value and matrix entry that is
// "purely numeric" lives here.
//
// Values are immutable; every operation allocates its result.
package numeric
