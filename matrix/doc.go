// Package matrix is the dense float64 linear-algebra layer underneath the
// polynomial packages.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked accessors, row extraction
//     and copy-based submatrix selection (Induced).
//   - Kernels: Mul, Transpose, MatVec, Stack.
//   - Spectral helpers: Jacobi Eigen for symmetric matrices, Gram products,
//     SingularValuesSym and OrthonormalRows, the building blocks of numeric
//     rank decisions.
//   - Comparisons: AllClose and Equal, plus ZerosLike for residual checks.
//   - LU (Doolittle, no pivoting) and Solve.
//
// Every error is a package sentinel (errors.go) wrapped with an operation
// tag, so callers match with errors.Is.
package matrix
