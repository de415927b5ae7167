// SPDX-License-Identifier: MIT
package poly_test

import (
	"fmt"

	"github.com/katalvlaran/lvmfd/poly"
)

// ExampleDivide divides 2x³+7x²+4x+9 by x²+1.
func ExampleDivide() {
	q, r, err := poly.Divide(poly.New(9, 4, 7, 2), poly.New(1, 0, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("q:", q)
	fmt.Println("r:", r)
	// Output:
	// q: 7, 2
	// r: 2, 2
}

// ExamplePolynomial_Eval evaluates 2x³−3x²+4x+1 at x=3.
func ExamplePolynomial_Eval() {
	p := poly.New(1, 4, -3, 2)
	fmt.Println(p.Eval(3))
	// Output:
	// 40
}

func ExampleFraction_Mul() {
	f := poly.FractionOf([]int{1, 1}, []int{2, 1})
	g := poly.FractionOf([]int{3}, []int{1, 1})
	fmt.Println(f.Mul(g))
	// Output:
	// [ 3, 3 ] / [ 2, 3, 1 ]
}
