// Package polymatrix provides matrices of polynomials and of polynomial
// fractions, and their flattening into real coefficient matrices.
//
//   - Matrix[T]: rows×cols poly.Polynomial[T] grid with Add, Sub, Scale, Mul,
//     Transpose, Eval and degree queries.
//   - FractionMatrix[T]: rows×cols poly.Fraction[T] grid (transfer-function
//     matrices) with the same algebra and NumeratorDenominator.
//   - ToCoeffMatrix / ToMatrix / FromCoeffMatrix: degree-major and entry-major
//     float64 layouts backed by matrix.Dense.
//
// Shape violations are reported with ErrShapeMismatch, ErrInvalidArgument,
// ErrInvalidDimensions and ErrOutOfRange.
package polymatrix
