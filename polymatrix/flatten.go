// SPDX-License-Identifier: MIT
// Package polymatrix - flattening into real coefficient matrices.
//
// Two layouts of a rows×cols polynomial matrix with maxDeg = 1 + largest
// entry degree, both rows × (maxDeg·cols), missing coefficients zero:
//
//   - degree-major (ToCoeffMatrix): column k·cols + j holds the xᵏ coefficient
//     of entry (i,j). The matrix reads as [M₀ M₁ … M_{maxDeg−1}], one
//     coefficient block per power of x. The reduction algorithms use this one.
//   - entry-major (ToMatrix): column j·maxDeg + k holds the same value; each
//     entry's coefficients are contiguous.
//
// FromCoeffMatrix inverts the degree-major layout.

package polymatrix

import (
	"fmt"

	"github.com/katalvlaran/lvmfd/matrix"
	"github.com/katalvlaran/lvmfd/poly"
)

// CoeffMatrix is a degree-major flattened polynomial matrix.
type CoeffMatrix struct {
	// Mat holds the coefficients, rows × (Deg·BlockCols()).
	Mat *matrix.Dense
	// Deg is the number of coefficient blocks (1 + largest entry degree).
	Deg int
}

// BlockCols returns the column count of the polynomial matrix that was
// flattened, Mat.Cols()/Deg.
func (c CoeffMatrix) BlockCols() int {
	return c.Mat.Cols() / c.Deg
}

// ToCoeffMatrix flattens m degree-major (see package notes).
//
// Errors:
//   - matrix.ErrNaNInf when a coefficient converts to a non-finite float64.
//
// Complexity:
//   - Time O(rows·cols·maxDeg), Space the same.
func (m *Matrix[T]) ToCoeffMatrix() (CoeffMatrix, error) {
	deg := m.MaxDegree() + 1
	w := deg * m.cols
	data := make([]float64, m.rows*w)
	var i, j, k int
	var p poly.Polynomial[T]
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			p = m.elems[i*m.cols+j]
			for k = 0; k < p.Len(); k++ {
				data[i*w+k*m.cols+j] = float64(p.Coeff(k))
			}
		}
	}
	d, err := matrix.NewDenseFrom(m.rows, w, data)
	if err != nil {
		return CoeffMatrix{}, polymatrixErrorf(opFlatten, err)
	}

	return CoeffMatrix{Mat: d, Deg: deg}, nil
}

// ToMatrix flattens m entry-major and also returns maxDeg.
//
// Errors:
//   - matrix.ErrNaNInf when a coefficient converts to a non-finite float64.
func (m *Matrix[T]) ToMatrix() (*matrix.Dense, int, error) {
	deg := m.MaxDegree() + 1
	w := deg * m.cols
	data := make([]float64, m.rows*w)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			copyCoeffs(data[i*w+j*deg:i*w+(j+1)*deg], m.elems[i*m.cols+j])
		}
	}
	d, err := matrix.NewDenseFrom(m.rows, w, data)
	if err != nil {
		return nil, 0, polymatrixErrorf(opNatural, err)
	}

	return d, deg, nil
}

// copyCoeffs writes p's coefficients as float64 into dst.
func copyCoeffs[T poly.Number](dst []float64, p poly.Polynomial[T]) {
	for k := 0; k < p.Len(); k++ {
		dst[k] = float64(p.Coeff(k))
	}
}

// NaturalToCoeff re-indexes an entry-major flattening into the degree-major
// one without going back through polynomials.
//
// Errors:
//   - ErrNilMatrix for a nil nat; ErrInvalidArgument when deg ≤ 0 or does
//     not divide the column count.
func NaturalToCoeff(nat *matrix.Dense, deg int) (CoeffMatrix, error) {
	if nat == nil {
		return CoeffMatrix{}, polymatrixErrorf(opFlatten, ErrNilMatrix)
	}
	if deg <= 0 || nat.Cols()%deg != 0 {
		return CoeffMatrix{}, polymatrixErrorf(opFlatten, fmt.Errorf("deg %d, cols %d: %w", deg, nat.Cols(), ErrInvalidArgument))
	}
	rows, w := nat.Rows(), nat.Cols()
	cols := w / deg
	data := make([]float64, rows*w)
	for i := 0; i < rows; i++ {
		row, err := nat.Row(i)
		if err != nil {
			return CoeffMatrix{}, polymatrixErrorf(opFlatten, err)
		}
		for j := 0; j < cols; j++ {
			for k := 0; k < deg; k++ {
				data[i*w+k*cols+j] = row[j*deg+k]
			}
		}
	}
	out, err := matrix.NewDenseFrom(rows, w, data)
	if err != nil {
		return CoeffMatrix{}, polymatrixErrorf(opFlatten, err)
	}

	return CoeffMatrix{Mat: out, Deg: deg}, nil
}

// FromCoeffMatrix rebuilds the float64 polynomial matrix of a degree-major
// flattening: entry (i,j) gets coefficient k from column k·BlockCols()+j.
//
// Errors:
//   - ErrNilMatrix for a nil Mat; ErrInvalidArgument when Deg does not
//     divide the column count.
func FromCoeffMatrix(c CoeffMatrix) (*Matrix[float64], error) {
	if c.Mat == nil {
		return nil, polymatrixErrorf(opUnflatten, ErrNilMatrix)
	}
	if c.Deg <= 0 || c.Mat.Cols()%c.Deg != 0 {
		return nil, polymatrixErrorf(opUnflatten, fmt.Errorf("deg %d, cols %d: %w", c.Deg, c.Mat.Cols(), ErrInvalidArgument))
	}
	rows, cols := c.Mat.Rows(), c.BlockCols()
	elems := make([]poly.Polynomial[float64], rows*cols)
	coeffs := make([]float64, c.Deg)
	for i := 0; i < rows; i++ {
		row, err := c.Mat.Row(i)
		if err != nil {
			return nil, polymatrixErrorf(opUnflatten, err)
		}
		for j := 0; j < cols; j++ {
			for k := 0; k < c.Deg; k++ {
				coeffs[k] = row[k*cols+j]
			}
			elems[i*cols+j] = poly.New(coeffs...)
		}
	}

	return New(rows, cols, elems)
}
