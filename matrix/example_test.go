// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmfd/matrix"
)

// ExampleSingularValuesSym reads the numerical rank of two rows from the
// singular values of their Gram matrix.
func ExampleSingularValuesSym() {
	s, _ := matrix.NewDenseRows([][]float64{
		{1, 2, 0},
		{2, 4, 0},
	})
	g, _ := matrix.Gram(s)
	sig, err := matrix.SingularValuesSym(g, matrix.DefaultEigenRelTol)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f %.3f\n", sig[0], sig[1])
	// Output:
	// 25.000 0.000
}

// ExampleStack pads the narrower block on the right.
func ExampleStack() {
	top, _ := matrix.NewDenseRows([][]float64{{1, 2, 3}})
	bottom, _ := matrix.NewDenseRows([][]float64{{4}})
	st, _ := matrix.Stack(top, bottom)
	fmt.Print(st)
	// Output:
	// [1, 2, 3]
	// [4, 0, 0]
}
