// SPDX-License-Identifier: MIT
// Package mfd: coprime factorization by block-Toeplitz row search.
//
// Model:
//   - F (Frows × Deg·Fbcols) is read as the polynomial matrix
//     [Dlᵀ(s); Nlᵀ(s)] with Fbcols = rows of Dl. A polynomial row vector
//     x(s) = Σ_L x_L·s^L annihilates it (x(s)·[Dlᵀ; Nlᵀ] = 0) exactly when
//     the real row vector [x_0 x_1 …] annihilates the shifted system
//     whose row (L, i) is F row i placed at column offset L·Fbcols.
//   - The search walks shifts L = 0, 1, … and, within a shift, F rows in
//     order. Each candidate is tested against the rows accepted so far.
//     Independent candidates join the basis; a dependent candidate yields one
//     annihilating row of T1 (pivot at the candidate) and is de-selected,
//     since all its higher shifts are dependent as well.
//   - The search stops once T1 holds Frows−Fbcols rows. Running out of
//     selected rows or shifts first is ErrReductionIncomplete.
//   - Before the factors are extracted, T1 is checked against the shifted
//     system at the final shift: T1·S must vanish to the residual
//     tolerance, or Reduce fails with ErrResidual.
//
// Output:
//   - T1 rows are padded to (Shift+1)·Frows; column L·Frows+i is the
//     coefficient of row (L, i).
//   - Regrouping T1 by power gives X(s) = [X_D X_N] (target × Frows), and
//     the right factorization Numerator = −X_Dᵀ, Denominator = X_Nᵀ satisfies
//     Nl·Denominator = Dl·Numerator.

package mfd

import (
	"fmt"

	"github.com/katalvlaran/lvmfd/matrix"
	"github.com/katalvlaran/lvmfd/poly"
	"github.com/katalvlaran/lvmfd/polymatrix"
)

// Reduction is the outcome of a successful Reduce.
type Reduction struct {
	// F is the stacked coefficient matrix that was reduced.
	F polymatrix.CoeffMatrix
	// T1 holds one annihilating row per pivot, (Shift+1)·Frows wide.
	T1 *matrix.Dense
	// Sel marks the F rows still selected when the search stopped.
	Sel []bool
	// Tail lists the F rows past the denominator block, Fbcols..Frows−1.
	Tail []int
	// Pivots is the F row of each T1 row, in discovery order.
	Pivots []int
	// Degrees is the shift at which each pivot became dependent.
	Degrees []int
	// Shift is the last shift examined.
	Shift int
	// Accepted counts the rows of the independent basis.
	Accepted int
	// Numerator (rows×cols) and Denominator (cols×cols) form the right
	// factorization mf = Numerator·Denominator⁻¹.
	Numerator   *polymatrix.Matrix[float64]
	Denominator *polymatrix.Matrix[float64]
}

// slot addresses row i of F placed at shift L.
type slot struct{ shift, row int }

// relation is one dependency: Σ coeffs[p]·slots[p] = 0.
type relation struct {
	slots  []slot
	coeffs []float64
}

// Reduce searches the shifted system of F for Frows−Fbcols dependency rows
// and extracts the right coprime factorization from them.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidArgument for a malformed F or Frows ≤ Fbcols;
//     ErrReductionIncomplete; ErrResidual; kernel errors from Independent.
//
// Complexity:
//   - Each test costs O(k²·w) for k accepted rows of width w; at most
//     Frows·(MaxShift+1) tests run.
func Reduce(f polymatrix.CoeffMatrix, opts ...Option) (*Reduction, error) {
	if f.Mat == nil {
		return nil, mfdErrorf(opReduce, ErrNilMatrix)
	}
	if f.Deg <= 0 || f.Mat.Cols()%f.Deg != 0 {
		return nil, mfdErrorf(opReduce, fmt.Errorf("deg %d, cols %d: %w", f.Deg, f.Mat.Cols(), ErrInvalidArgument))
	}
	frows, fbcols, deg := f.Mat.Rows(), f.BlockCols(), f.Deg
	target := frows - fbcols
	if target <= 0 {
		return nil, mfdErrorf(opReduce, fmt.Errorf("Frows %d, Fbcols %d: %w", frows, fbcols, ErrInvalidArgument))
	}
	o := NewOptions(opts...)
	maxShift := o.maxShift
	if maxShift == defaultMaxShift {
		maxShift = fbcols * deg
	}
	base, err := rowsOf(f.Mat)
	if err != nil {
		return nil, mfdErrorf(opReduce, err)
	}

	sel := make([]bool, frows)
	for i := range sel {
		sel[i] = true
	}
	var (
		accepted  []slot
		relations []relation
		pivots    []int
		degrees   []int
		shift     int
	)
search:
	for shift = 0; shift <= maxShift; shift++ {
		sys, err := shiftedSystem(base, shift, fbcols, deg)
		if err != nil {
			return nil, mfdErrorf(opReduce, err)
		}
		allCols := make([]int, sys.Cols())
		for j := range allCols {
			allCols[j] = j
		}
		idx := make([]int, len(accepted), len(accepted)+1)
		for p, s := range accepted {
			idx[p] = s.shift*frows + s.row
		}
		for i := 0; i < frows; i++ {
			if !sel[i] {
				continue
			}
			cand := slot{shift: shift, row: i}
			test, err := sys.Induced(append(idx, shift*frows+i), allCols)
			if err != nil {
				return nil, mfdErrorf(opReduce, err)
			}
			ok, c, err := Independent(test, opts...)
			if err != nil {
				return nil, mfdErrorf(opReduce, err)
			}
			if ok {
				accepted = append(accepted, cand)
				idx = append(idx, shift*frows+i)
				continue
			}

			rel := relation{slots: make([]slot, 0, len(c)+1), coeffs: make([]float64, 0, len(c)+1)}
			for p, v := range c {
				rel.slots = append(rel.slots, accepted[p])
				rel.coeffs = append(rel.coeffs, -v)
			}
			rel.slots = append(rel.slots, cand)
			rel.coeffs = append(rel.coeffs, 1)
			relations = append(relations, rel)
			pivots = append(pivots, i)
			degrees = append(degrees, shift)
			sel[i] = false
			if len(relations) == target {
				break search
			}
		}
		if !anySelected(sel) {
			break
		}
	}
	if len(relations) < target {
		return nil, mfdErrorf(opReduce, fmt.Errorf("%d of %d rows up to shift %d: %w",
			len(relations), target, min(shift, maxShift), ErrReductionIncomplete))
	}

	t1, err := assembleT1(relations, (shift+1)*frows, frows)
	if err != nil {
		return nil, mfdErrorf(opReduce, err)
	}
	if err = annihilates(t1, base, shift, fbcols, deg, o.resTol); err != nil {
		return nil, mfdErrorf(opReduce, err)
	}
	num, den, err := RightFactors(t1, frows, fbcols)
	if err != nil {
		return nil, mfdErrorf(opReduce, err)
	}
	tail := make([]int, 0, target)
	for i := fbcols; i < frows; i++ {
		tail = append(tail, i)
	}

	return &Reduction{
		F:           f,
		T1:          t1,
		Sel:         sel,
		Tail:        tail,
		Pivots:      pivots,
		Degrees:     degrees,
		Shift:       shift,
		Accepted:    len(accepted),
		Numerator:   num,
		Denominator: den,
	}, nil
}

// shiftedSystem stacks F at shifts 0..shift: row L·Frows+i is F row i
// placed at column offset L·Fbcols of a (Deg+shift)·Fbcols wide row.
func shiftedSystem(base [][]float64, shift, fbcols, deg int) (*matrix.Dense, error) {
	frows := len(base)
	rows, w := (shift+1)*frows, (deg+shift)*fbcols
	data := make([]float64, rows*w)
	for l := 0; l <= shift; l++ {
		for i, row := range base {
			copy(data[(l*frows+i)*w+l*fbcols:], row)
		}
	}

	return matrix.NewDenseFrom(rows, w, data)
}

func anySelected(sel []bool) bool {
	for _, s := range sel {
		if s {
			return true
		}
	}

	return false
}

// assembleT1 lays the relations out as rows of width w.
func assembleT1(rels []relation, w, frows int) (*matrix.Dense, error) {
	data := make([]float64, len(rels)*w)
	for k, rel := range rels {
		for p, s := range rel.slots {
			data[k*w+s.shift*frows+s.row] += rel.coeffs[p]
		}
	}

	return matrix.NewDenseFrom(len(rels), w, data)
}

// annihilates checks T1·S ≈ 0 for the shifted system S at shift, entrywise
// within tol·max|T1|·max|S|.
func annihilates(t1 *matrix.Dense, base [][]float64, shift, fbcols, deg int, tol float64) error {
	sys, err := shiftedSystem(base, shift, fbcols, deg)
	if err != nil {
		return err
	}
	prod, err := matrix.Mul(t1, sys)
	if err != nil {
		return err
	}
	zero, err := matrix.ZerosLike(prod)
	if err != nil {
		return err
	}
	bound := tol * matrix.MaxAbs(t1) * matrix.MaxAbs(sys)
	ok, err := matrix.Equal(prod, zero, matrix.WithEpsilon(bound))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("max |T1·S| = %g above %g: %w", matrix.MaxAbs(prod), bound, ErrResidual)
	}

	return nil
}

// Relations regroups the rows of T1 by power: entry (k, i) of the result is
// Σ_L T1[k, L·frows+i]·s^L.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidArgument when frows does not divide T1.Cols.
func Relations(t1 *matrix.Dense, frows int) (*polymatrix.Matrix[float64], error) {
	if t1 == nil {
		return nil, mfdErrorf(opRelations, ErrNilMatrix)
	}
	if frows <= 0 || t1.Cols()%frows != 0 {
		return nil, mfdErrorf(opRelations, fmt.Errorf("frows %d, cols %d: %w", frows, t1.Cols(), ErrInvalidArgument))
	}
	rows, powers := t1.Rows(), t1.Cols()/frows
	elems := make([]poly.Polynomial[float64], rows*frows)
	coeffs := make([]float64, powers)
	for k := 0; k < rows; k++ {
		row, err := t1.Row(k)
		if err != nil {
			return nil, mfdErrorf(opRelations, err)
		}
		for i := 0; i < frows; i++ {
			for l := 0; l < powers; l++ {
				coeffs[l] = row[l*frows+i]
			}
			elems[k*frows+i] = poly.New(coeffs...)
		}
	}
	x, err := polymatrix.New(rows, frows, elems)
	if err != nil {
		return nil, mfdErrorf(opRelations, err)
	}

	return x, nil
}

// RightFactors splits the relations X = [X_D X_N] of T1 (X_D holding the
// first fbcols columns) into Numerator = −X_Dᵀ and Denominator = X_Nᵀ.
//
// Errors:
//   - those of Relations; ErrInvalidArgument when fbcols is outside (0, frows).
func RightFactors(t1 *matrix.Dense, frows, fbcols int) (num, den *polymatrix.Matrix[float64], err error) {
	if fbcols <= 0 || fbcols >= frows {
		return nil, nil, mfdErrorf(opRelations, fmt.Errorf("fbcols %d, frows %d: %w", fbcols, frows, ErrInvalidArgument))
	}
	x, err := Relations(t1, frows)
	if err != nil {
		return nil, nil, err
	}
	xt := x.Transpose().Elements() // frows × rows(T1)
	k := x.Rows()
	if num, err = polymatrix.New(fbcols, k, xt[:fbcols*k]); err != nil {
		return nil, nil, mfdErrorf(opRelations, err)
	}
	num = num.Scale(-1)
	if den, err = polymatrix.New(frows-fbcols, k, xt[fbcols*k:]); err != nil {
		return nil, nil, mfdErrorf(opRelations, err)
	}

	return num, den, nil
}

// CoprimeFactorization is GetF followed by Reduce.
func CoprimeFactorization[T poly.Number](mf *polymatrix.FractionMatrix[T], opts ...Option) (*Reduction, error) {
	f, err := GetF(mf)
	if err != nil {
		return nil, err
	}

	return Reduce(f, opts...)
}
