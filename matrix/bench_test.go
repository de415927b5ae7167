// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmfd/matrix"
)

// BenchmarkGramSingularValues measures the rank-decision kernel on blocks
// shaped like the shifted systems of a small reduction.
func BenchmarkGramSingularValues(b *testing.B) {
	for _, sz := range []struct{ r, c int }{{5, 9}, {12, 21}, {24, 42}} {
		s := RandFilledDense(b, sz.r, sz.c, 3)
		b.Run(fmt.Sprintf("%dx%d", sz.r, sz.c), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				g, err := matrix.Gram(s)
				if err != nil {
					b.Fatal(err)
				}
				if _, err = matrix.SingularValuesSym(g, matrix.DefaultEigenRelTol); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	x := RandFilledDense(b, 32, 32, 1)
	y := RandFilledDense(b, 32, 32, 2)
	b.Run("dense", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = matrix.Mul(x, y)
		}
	})
	b.Run("fallback", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = matrix.Mul(hide{x}, y)
		}
	})
}
