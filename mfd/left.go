// SPDX-License-Identifier: MIT

package mfd

import (
	"github.com/katalvlaran/lvmfd/poly"
	"github.com/katalvlaran/lvmfd/polymatrix"
)

// Left extracts a left matrix fraction description mf = Dl⁻¹·Nl by row-wise
// cross multiplication.
//
// For every row i with denominators d₀…d_{c−1} and numerators n₀…n_{c−1}:
//
//	Dl(i,i) = d₀·d₁·…·d_{c−1}
//	Nl(i,j) = n_j · ∏_{k≠j} d_k
//
// so mf(i,j)·Dl(i,i) equals Nl(i,j) for every entry. Dl is diagonal,
// rows×rows; Nl has the shape of mf. Every product is trimmed, so no
// extra cleanup pass is needed. A zero denominator is not trapped and
// produces a zero Dl entry.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(rows·cols²·d²) for entry degree d.
func Left[T poly.Number](mf *polymatrix.FractionMatrix[T]) (nl, dl *polymatrix.Matrix[T], err error) {
	if mf == nil {
		return nil, nil, mfdErrorf(opLeft, ErrNilMatrix)
	}
	rows, cols := mf.Shape()
	num, den := mf.NumeratorDenominator()
	nums := num.Elements()
	dens := den.Elements()

	nlElems := make([]poly.Polynomial[T], rows*cols)
	diag := make([]poly.Polynomial[T], rows)
	var i, j, k int
	var acc poly.Polynomial[T]
	for i = 0; i < rows; i++ {
		acc = dens[i*cols]
		for j = 1; j < cols; j++ {
			acc = acc.Mul(dens[i*cols+j])
		}
		diag[i] = acc

		for j = 0; j < cols; j++ {
			acc = nums[i*cols+j]
			for k = 0; k < cols; k++ {
				if k != j {
					acc = acc.Mul(dens[i*cols+k])
				}
			}
			nlElems[i*cols+j] = acc
		}
	}

	if nl, err = polymatrix.New(rows, cols, nlElems); err != nil {
		return nil, nil, mfdErrorf(opLeft, err)
	}
	if dl, err = polymatrix.Diagonal(diag...); err != nil {
		return nil, nil, mfdErrorf(opLeft, err)
	}

	return nl, dl, nil
}
