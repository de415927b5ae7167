// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Private element-wise comparison kernel shared by AllClose and Equal.

package matrix

import "math"

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Negative tolerances are taken by magnitude; non-finite ones are rejected.
// Time: O(r*c). Space: O(1) for *Dense operands.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}
