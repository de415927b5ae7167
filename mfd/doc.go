// Package mfd derives matrix fraction descriptions of a transfer-function
// matrix given as a polymatrix.FractionMatrix.
//
// Pipeline:
//
//	mf ──Left──▶ (Nl, Dl)          mf = Dl⁻¹·Nl, Dl diagonal
//	   ──StackedF──▶ F             [flatten(Dlᵀ); flatten(Nlᵀ)]
//	   ──Reduce──▶ Reduction       T1, pivots, degrees and the right
//	                               factorization mf = N·D⁻¹
//
// Reduce searches the block-Toeplitz expansion of F row by row, deciding
// numerical dependence with Independent (a Gram singular-value screen
// confirmed by a residual check, see independence.go). Reduce verifies the
// dependency rows it returns. CoprimeFactorization runs the whole pipeline.
//
// Numeric policy is configured with functional options (WithGap,
// WithEpsilon, WithEigenTolerance, WithMaxShift, WithResidualTolerance).
// Failures are reported through wrapped sentinels (ErrReductionIncomplete,
// ErrResidual, ErrNilMatrix, ...);
// nothing here logs or panics outside option constructors.
package mfd
