// SPDX-License-Identifier: MIT

package polymatrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmfd/poly"
)

// FractionMatrix is a rows×cols grid of polynomial fractions, typically a
// transfer-function matrix. Its algebra follows poly.Fraction: Add/Sub are
// componentwise, Mul accumulates true fraction products starting from
// poly.ZeroFraction.
type FractionMatrix[T poly.Number] struct {
	shape
	elems []poly.Fraction[T] // row-major
}

// NewFraction builds a rows×cols fraction matrix from row-major elements (copied).
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidArgument.
func NewFraction[T poly.Number](rows, cols int, elems []poly.Fraction[T]) (*FractionMatrix[T], error) {
	s, err := newShape(rows, cols, len(elems))
	if err != nil {
		return nil, err
	}
	cp := make([]poly.Fraction[T], len(elems))
	copy(cp, elems)

	return &FractionMatrix[T]{shape: s, elems: cp}, nil
}

// FractionFromRows builds a fraction matrix from a nested literal.
func FractionFromRows[T poly.Number](rows [][]poly.Fraction[T]) (*FractionMatrix[T], error) {
	r, c, elems, err := flattenRows(rows)
	if err != nil {
		return nil, err
	}

	return &FractionMatrix[T]{shape: shape{rows: r, cols: c}, elems: elems}, nil
}

// MustFractionRows is FractionFromRows that panics on error.
func MustFractionRows[T poly.Number](rows [][]poly.Fraction[T]) *FractionMatrix[T] {
	m, err := FractionFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// At returns entry (i,j).
func (m *FractionMatrix[T]) At(i, j int) (poly.Fraction[T], error) {
	off, err := m.offset(opAt, i, j)
	if err != nil {
		return poly.Fraction[T]{}, err
	}

	return m.elems[off], nil
}

// Set replaces entry (i,j).
func (m *FractionMatrix[T]) Set(i, j int, f poly.Fraction[T]) error {
	off, err := m.offset(opSet, i, j)
	if err != nil {
		return err
	}
	m.elems[off] = f

	return nil
}

// Row returns a copy of row i.
func (m *FractionMatrix[T]) Row(i int) ([]poly.Fraction[T], error) {
	if _, err := m.offset(opRow, i, 0); err != nil {
		return nil, err
	}
	out := make([]poly.Fraction[T], m.cols)
	copy(out, m.elems[i*m.cols:(i+1)*m.cols])

	return out, nil
}

func (m *FractionMatrix[T]) map2(tag string, o *FractionMatrix[T], f func(a, b poly.Fraction[T]) poly.Fraction[T]) (*FractionMatrix[T], error) {
	if m == nil || o == nil {
		return nil, polymatrixErrorf(tag, ErrNilMatrix)
	}
	if err := m.sameShape(tag, o.shape); err != nil {
		return nil, err
	}
	out := make([]poly.Fraction[T], len(m.elems))
	for k := range m.elems {
		out[k] = f(m.elems[k], o.elems[k])
	}

	return &FractionMatrix[T]{shape: m.shape, elems: out}, nil
}

// Add returns the componentwise sum.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (m *FractionMatrix[T]) Add(o *FractionMatrix[T]) (*FractionMatrix[T], error) {
	return m.map2(opAdd, o, poly.Fraction[T].Add)
}

// Sub returns the componentwise difference.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (m *FractionMatrix[T]) Sub(o *FractionMatrix[T]) (*FractionMatrix[T], error) {
	return m.map2(opSub, o, poly.Fraction[T].Sub)
}

// Scale scales numerator and denominator of every entry by v.
func (m *FractionMatrix[T]) Scale(v T) *FractionMatrix[T] {
	out := make([]poly.Fraction[T], len(m.elems))
	for k, f := range m.elems {
		out[k] = f.Scale(v)
	}

	return &FractionMatrix[T]{shape: m.shape, elems: out}
}

// Mul returns m·o with C(i,j) = Σₖ m(i,k)·o(k,j), the sum taken
// componentwise from poly.ZeroFraction.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (m *FractionMatrix[T]) Mul(o *FractionMatrix[T]) (*FractionMatrix[T], error) {
	if m == nil || o == nil {
		return nil, polymatrixErrorf(opMul, ErrNilMatrix)
	}
	if err := m.mulCompatible(opMul, o.shape); err != nil {
		return nil, err
	}
	r, n, c := m.rows, m.cols, o.cols
	out := make([]poly.Fraction[T], r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			acc := poly.ZeroFraction[T]()
			for k := 0; k < n; k++ {
				acc = acc.Add(m.elems[i*n+k].Mul(o.elems[k*c+j]))
			}
			out[i*c+j] = acc
		}
	}

	return &FractionMatrix[T]{shape: shape{rows: r, cols: c}, elems: out}, nil
}

// Transpose returns mᵀ.
func (m *FractionMatrix[T]) Transpose() *FractionMatrix[T] {
	out := make([]poly.Fraction[T], len(m.elems))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.elems[i*m.cols+j]
		}
	}

	return &FractionMatrix[T]{shape: shape{rows: m.cols, cols: m.rows}, elems: out}
}

// Eval evaluates every entry at x and returns the row-major values.
// Errors: poly.ErrZeroDenominator from the first entry whose denominator vanishes.
func (m *FractionMatrix[T]) Eval(x T) ([]T, error) {
	out := make([]T, len(m.elems))
	var err error
	for k, f := range m.elems {
		if out[k], err = f.Eval(x); err != nil {
			return nil, fmt.Errorf("entry (%d,%d): %w", k/m.cols, k%m.cols, err)
		}
	}

	return out, nil
}

// NumeratorDenominator splits m into its same-shaped numerator and
// denominator polynomial matrices.
func (m *FractionMatrix[T]) NumeratorDenominator() (*Matrix[T], *Matrix[T]) {
	num := make([]poly.Polynomial[T], len(m.elems))
	den := make([]poly.Polynomial[T], len(m.elems))
	for k, f := range m.elems {
		num[k], den[k] = f.Num(), f.Den()
	}

	return &Matrix[T]{shape: m.shape, elems: num}, &Matrix[T]{shape: m.shape, elems: den}
}

// Equal reports equal shapes and Equal entries.
func (m *FractionMatrix[T]) Equal(o *FractionMatrix[T]) bool {
	if m == nil || o == nil || m.shape != o.shape {
		return false
	}
	for k := range m.elems {
		if !m.elems[k].Equal(o.elems[k]) {
			return false
		}
	}

	return true
}

// String renders one line per row, entries separated by " | ".
func (m *FractionMatrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(m.elems[i*m.cols+j].String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
