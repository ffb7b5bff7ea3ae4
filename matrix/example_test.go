// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/symkernel/expr"
	"github.com/katalvlaran/symkernel/matrix"
)

// ExampleDense_Determinant builds a 2×2 integer matrix and reads its
// determinant and trace.
func ExampleDense_Determinant() {
	m, err := matrix.FromRows([][]expr.Expr{
		{expr.Int(1), expr.Int(2)},
		{expr.Int(3), expr.Int(4)},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	det, _ := m.Determinant()
	tr, _ := m.Trace()
	fmt.Println(det, tr)
	// Output: -2 5
}

// ExampleDense_Mul keeps A·B as an ordered product until it is evaluated.
func ExampleDense_Mul() {
	a, _ := matrix.FromRows([][]expr.Expr{{expr.Int(1), expr.Int(1)}, {expr.Int(0), expr.Int(1)}})
	b, _ := matrix.FromRows([][]expr.Expr{{expr.Int(1), expr.Int(0)}, {expr.Int(1), expr.Int(1)}})

	prod := expr.Mul(a, b)
	v, err := expr.EvalM(prod)
	if err != nil {
		fmt.Println(err)
		return
	}
	m := v.(*matrix.Dense)
	e00, _ := m.At(0, 0)
	e11, _ := m.At(1, 1)
	fmt.Println(e00, e11)
	// Output: 2 1
}
