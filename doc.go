// Package lvmfd is a library of polynomial algebra for matrix-fraction
// descriptions of linear systems: representing a transfer-function matrix
// as the ratio of two polynomial matrices and reducing that ratio toward a
// coprime factorization.
//
// What is inside:
//
//	poly/         Polynomial[T] over any integer or float type, long division,
//	              Horner evaluation, Fraction[T] (numerator/denominator pairs)
//	polymatrix/   Matrix[T] of polynomials, FractionMatrix[T], flattening into
//	              coefficient matrices (degree-major and entry-major layouts)
//	mfd/          left MFD extraction, the stacked coefficient matrix F,
//	              the numeric row-independence test and the block-Toeplitz
//	              reduction that yields a right coprime factorization
//	matrix/       dense float64 kernels: Mul, Transpose, Jacobi Eigen, LU, Solve
//
// Coefficients are stored in ascending order: index i holds the coefficient
// of xⁱ. Every polynomial is trimmed of trailing zeros after construction and
// after every operation; the zero polynomial is [0].
//
// Quick example:
//
//	h := polymatrix.MustFractionRows([][]poly.Fraction[float64]{
//		{poly.FractionOf([]float64{1, 1}, []float64{2, 3, 1})},
//	})
//	red, err := mfd.CoprimeFactorization(h)
//	// red.Numerator = [1], red.Denominator = [2 1]: (1+s)/((1+s)(2+s)) = 1/(2+s)
//
//	go get github.com/katalvlaran/lvmfd
package lvmfd
