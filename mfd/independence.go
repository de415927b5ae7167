// SPDX-License-Identifier: MIT
// Package mfd: numerical row-rank decision.
//
// Independent answers one question: does the last row of a block add a new
// direction to the rows above it? Rows are first scaled to unit length, which
// leaves their span unchanged and keeps rows of very different magnitude
// comparable.
//
// Screen. The singular values of the Gram matrix U·Uᵀ of the unit rows (the
// squares of the singular values of U), sorted descending, flag a possible
// rank deficiency when any of the following holds:
//   - σ_first is zero;
//   - σ_last/σ_first < eps·max(rows, cols);
//   - some consecutive ratio σ_k/σ_{k+1} exceeds gap (or σ_{k+1} is zero).
//
// Confirmation. A flagged row is expressed over the prefix rows by least
// squares on an orthonormal basis of the prefix (OrthonormalRows), and
// coefficients whose share is below max/gap are snapped to zero. The row is
// dependent only if the residual last − Σ c_p·row_p stays within
// tol·max(|last|, |c_p|·|row_p|) in every entry; otherwise it is independent.

package mfd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmfd/matrix"
)

// Independent reports whether the last row of block is numerically
// independent of the rows before it. When it is not, c holds the
// coefficients with last ≈ Σ_p c_p·block[p]; c is empty for a single zero row
// and nil whenever the row is independent. The prefix rows are expected to
// be independent, as they are in Reduce.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidArgument for a block without rows or columns;
//     matrix.ErrMatrixEigenFailed and matrix.ErrSingular from the kernels.
func Independent(block matrix.Matrix, opts ...Option) (bool, []float64, error) {
	if err := matrix.ValidateNotNil(block); err != nil {
		return false, nil, mfdErrorf(opIndependent, ErrNilMatrix)
	}
	k, cols := block.Rows(), block.Cols()
	if k == 0 || cols == 0 {
		return false, nil, mfdErrorf(opIndependent, fmt.Errorf("block %dx%d: %w", k, cols, ErrInvalidArgument))
	}
	o := NewOptions(opts...)

	rows, err := rowsOf(block)
	if err != nil {
		return false, nil, mfdErrorf(opIndependent, err)
	}
	last := rows[k-1]
	if k == 1 {
		for _, v := range last {
			if v != 0 {
				return true, nil, nil
			}
		}

		return false, []float64{}, nil
	}

	unit, norms := unitRows(rows)
	dep, err := rankDeficient(unit, k, cols, o)
	if err != nil {
		return false, nil, mfdErrorf(opIndependent, err)
	}
	if !dep {
		return true, nil, nil
	}
	if norms[k-1] == 0 {
		return false, make([]float64, k-1), nil
	}

	c, err := combination(unit[:k-1], unit[k-1], o.gap)
	if err != nil {
		return false, nil, mfdErrorf(opIndependent, err)
	}
	for p := range c {
		c[p] *= norms[k-1] / norms[p]
	}
	ok, err := residualWithin(rows[:k-1], last, c, o.resTol)
	if err != nil {
		return false, nil, mfdErrorf(opIndependent, err)
	}
	if !ok {
		return true, nil, nil
	}

	return false, c, nil
}

// unitRows scales every non-zero row to unit Euclidean length.
func unitRows(rows [][]float64) (unit [][]float64, norms []float64) {
	unit = make([][]float64, len(rows))
	norms = make([]float64, len(rows))
	for i, row := range rows {
		var sum float64
		for _, v := range row {
			sum += v * v
		}
		norms[i] = math.Sqrt(sum)
		unit[i] = make([]float64, len(row))
		for j, v := range row {
			if norms[i] > 0 {
				unit[i][j] = v / norms[i]
			}
		}
	}

	return unit, norms
}

// rankDeficient applies the singular-value tests to the Gram matrix of rows.
func rankDeficient(rows [][]float64, k, cols int, o Options) (bool, error) {
	s, err := matrix.NewDenseRows(rows)
	if err != nil {
		return false, err
	}
	g, err := matrix.Gram(s)
	if err != nil {
		return false, err
	}
	sig, err := matrix.SingularValuesSym(g, o.eigenTol)
	if err != nil {
		return false, err
	}
	if sig[0] == 0 || sig[k-1]/sig[0] < o.eps*float64(max(k, cols)) {
		return true, nil
	}
	for p := 0; p+1 < k; p++ {
		if sig[p+1] == 0 || sig[p]/sig[p+1] > o.gap {
			return true, nil
		}
	}

	return false, nil
}

// combination solves prefix·cᵀ ≈ last in the least-squares sense and snaps
// negligible coefficients to zero.
//
// With prefix = L·Q (OrthonormalRows), the projection of last is y·Q where
// y = Q·lastᵀ (taken twice, the second pass on the remainder), and c solves
// Lᵀ·cᵀ = yᵀ. Lᵀ is upper triangular, so Solve meets no pivoting.
func combination(prefix [][]float64, last []float64, gap float64) ([]float64, error) {
	a, err := matrix.NewDenseRows(prefix)
	if err != nil {
		return nil, err
	}
	q, l, err := matrix.OrthonormalRows(a)
	if err != nil {
		return nil, err
	}
	qt, err := matrix.Transpose(q)
	if err != nil {
		return nil, err
	}

	y := make([]float64, q.Rows())
	rem := append([]float64(nil), last...)
	for pass := 0; pass < 2; pass++ {
		dy, err := matrix.MatVec(q, rem)
		if err != nil {
			return nil, err
		}
		back, err := matrix.MatVec(qt, dy)
		if err != nil {
			return nil, err
		}
		for j := range rem {
			rem[j] -= back[j]
		}
		for p := range y {
			y[p] += dy[p]
		}
	}

	lt, err := matrix.Transpose(l)
	if err != nil {
		return nil, err
	}
	c, err := matrix.Solve(lt, y)
	if err != nil {
		return nil, err
	}

	var biggest float64
	for _, v := range c {
		biggest = math.Max(biggest, math.Abs(v))
	}
	for p, v := range c {
		if math.Abs(v)*gap < biggest {
			c[p] = 0
		}
	}

	return c, nil
}

// residualWithin reports whether Σ c_p·prefix[p] matches last entrywise
// within tol times the largest term of the combination.
func residualWithin(prefix [][]float64, last, c []float64, tol float64) (bool, error) {
	a, err := matrix.NewDenseRows(prefix)
	if err != nil {
		return false, err
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return false, err
	}
	recon, err := matrix.MatVec(at, c)
	if err != nil {
		return false, err
	}

	scale := maxAbs(last)
	for p, row := range prefix {
		scale = math.Max(scale, math.Abs(c[p])*maxAbs(row))
	}
	got, err := matrix.NewDenseFrom(1, len(recon), recon)
	if err != nil {
		return false, err
	}
	want, err := matrix.NewDenseFrom(1, len(last), last)
	if err != nil {
		return false, err
	}

	return matrix.AllClose(got, want, 0, tol*scale)
}

func maxAbs(v []float64) float64 {
	var best float64
	for _, x := range v {
		best = math.Max(best, math.Abs(x))
	}

	return best
}

// rowsOf copies the rows of m.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		out := make([][]float64, d.Rows())
		var err error
		for i := range out {
			if out[i], err = d.Row(i); err != nil {
				return nil, err
			}
		}

		return out, nil
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
