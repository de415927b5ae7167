// SPDX-License-Identifier: MIT
// Package polymatrix - matrices whose entries are polynomials.
//
// Purpose:
//   - Row-major rows×cols grid of poly.Polynomial[T] with ring-matrix
//     arithmetic (Add, Sub, Scale, Mul), Transpose and pointwise evaluation.
//
// Invariants:
//   - rows, cols ≥ 1 and len(elems) == rows·cols.
//   - Entries are immutable polynomial values; Set replaces an entry.
//
// Determinism:
//   - Fixed i→j (→k for Mul) loop orders; no map iteration.

package polymatrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmfd/poly"
)

// Matrix is a rows×cols polynomial matrix.
type Matrix[T poly.Number] struct {
	shape
	elems []poly.Polynomial[T] // row-major, len == rows*cols
}

// New builds a rows×cols matrix from row-major elements (copied).
//
// Errors:
//   - ErrInvalidDimensions when rows or cols ≤ 0.
//   - ErrInvalidArgument when rows·cols != len(elems).
func New[T poly.Number](rows, cols int, elems []poly.Polynomial[T]) (*Matrix[T], error) {
	s, err := newShape(rows, cols, len(elems))
	if err != nil {
		return nil, err
	}
	cp := make([]poly.Polynomial[T], len(elems))
	copy(cp, elems)

	return &Matrix[T]{shape: s, elems: cp}, nil
}

// FromRows builds a matrix from a nested literal, one slice per row.
//
// Errors:
//   - ErrInvalidDimensions for an empty literal; ErrInvalidArgument for ragged rows.
func FromRows[T poly.Number](rows [][]poly.Polynomial[T]) (*Matrix[T], error) {
	r, c, elems, err := flattenRows(rows)
	if err != nil {
		return nil, err
	}

	return &Matrix[T]{shape: shape{rows: r, cols: c}, elems: elems}, nil
}

// MustFromRows is FromRows that panics on error. Intended for literals in
// tests and examples.
func MustFromRows[T poly.Number](rows [][]poly.Polynomial[T]) *Matrix[T] {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// FromCoeffRows builds a matrix from nested ascending coefficient slices:
// in[i][j] holds the coefficients of entry (i,j).
func FromCoeffRows[T poly.Number](in [][][]T) (*Matrix[T], error) {
	rows := make([][]poly.Polynomial[T], len(in))
	for i, row := range in {
		rows[i] = make([]poly.Polynomial[T], len(row))
		for j, c := range row {
			rows[i][j] = poly.New(c...)
		}
	}

	return FromRows(rows)
}

// Zeros returns a rows×cols matrix of zero polynomials.
func Zeros[T poly.Number](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, polymatrixErrorf(opNew, ErrInvalidDimensions)
	}
	elems := make([]poly.Polynomial[T], rows*cols)
	for k := range elems {
		elems[k] = poly.Zero[T]()
	}

	return &Matrix[T]{shape: shape{rows: rows, cols: cols}, elems: elems}, nil
}

// Identity returns the n×n matrix with [1] on the diagonal.
func Identity[T poly.Number](n int) (*Matrix[T], error) {
	m, err := Zeros[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.elems[i*n+i] = poly.Constant[T](1)
	}

	return m, nil
}

// Diagonal returns the square matrix with ps on the diagonal and zero
// polynomials elsewhere.
func Diagonal[T poly.Number](ps ...poly.Polynomial[T]) (*Matrix[T], error) {
	n := len(ps)
	m, err := Zeros[T](n, n)
	if err != nil {
		return nil, err
	}
	for i, p := range ps {
		m.elems[i*n+i] = p
	}

	return m, nil
}

// At returns entry (i,j).
// Errors: ErrOutOfRange.
func (m *Matrix[T]) At(i, j int) (poly.Polynomial[T], error) {
	off, err := m.offset(opAt, i, j)
	if err != nil {
		return poly.Polynomial[T]{}, err
	}

	return m.elems[off], nil
}

// Set replaces entry (i,j) with p.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Set(i, j int, p poly.Polynomial[T]) error {
	off, err := m.offset(opSet, i, j)
	if err != nil {
		return err
	}
	m.elems[off] = p

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Row(i int) ([]poly.Polynomial[T], error) {
	if _, err := m.offset(opRow, i, 0); err != nil {
		return nil, err
	}
	out := make([]poly.Polynomial[T], m.cols)
	copy(out, m.elems[i*m.cols:(i+1)*m.cols])

	return out, nil
}

// Elements returns a row-major copy of all entries.
func (m *Matrix[T]) Elements() []poly.Polynomial[T] {
	out := make([]poly.Polynomial[T], len(m.elems))
	copy(out, m.elems)

	return out
}

// Clone returns an independent copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{shape: m.shape, elems: m.Elements()}
}

// map2 builds a same-shaped matrix from entrywise f(a, b).
func (m *Matrix[T]) map2(tag string, o *Matrix[T], f func(a, b poly.Polynomial[T]) poly.Polynomial[T]) (*Matrix[T], error) {
	if m == nil || o == nil {
		return nil, polymatrixErrorf(tag, ErrNilMatrix)
	}
	if err := m.sameShape(tag, o.shape); err != nil {
		return nil, err
	}
	out := make([]poly.Polynomial[T], len(m.elems))
	for k := range m.elems {
		out[k] = f(m.elems[k], o.elems[k])
	}

	return &Matrix[T]{shape: m.shape, elems: out}, nil
}

// Add returns m + o entrywise.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	return m.map2(opAdd, o, poly.Polynomial[T].Add)
}

// Sub returns m − o entrywise.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	return m.map2(opSub, o, poly.Polynomial[T].Sub)
}

// Scale returns v·m.
func (m *Matrix[T]) Scale(v T) *Matrix[T] {
	out := make([]poly.Polynomial[T], len(m.elems))
	for k, p := range m.elems {
		out[k] = p.Scale(v)
	}

	return &Matrix[T]{shape: m.shape, elems: out}
}

// Mul returns the matrix product m·o with C(i,j) = Σₖ m(i,k)·o(k,j).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (m.Cols != o.Rows).
//
// Complexity:
//   - O(r·n·c) polynomial products.
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if m == nil || o == nil {
		return nil, polymatrixErrorf(opMul, ErrNilMatrix)
	}
	if err := m.mulCompatible(opMul, o.shape); err != nil {
		return nil, err
	}
	r, n, c := m.rows, m.cols, o.cols
	out := make([]poly.Polynomial[T], r*c)
	var i, j, k int
	var acc poly.Polynomial[T]
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			acc = poly.Zero[T]()
			for k = 0; k < n; k++ {
				acc = acc.Add(m.elems[i*n+k].Mul(o.elems[k*c+j]))
			}
			out[i*c+j] = acc
		}
	}

	return &Matrix[T]{shape: shape{rows: r, cols: c}, elems: out}, nil
}

// Transpose returns mᵀ.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := make([]poly.Polynomial[T], len(m.elems))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.elems[i*m.cols+j]
		}
	}

	return &Matrix[T]{shape: shape{rows: m.cols, cols: m.rows}, elems: out}
}

// Eval evaluates every entry at x and returns the row-major values.
func (m *Matrix[T]) Eval(x T) []T {
	out := make([]T, len(m.elems))
	for k, p := range m.elems {
		out[k] = p.Eval(x)
	}

	return out
}

// MaxDegree returns the largest entry degree.
func (m *Matrix[T]) MaxDegree() int {
	return m.MaxByDegree().Degree()
}

// MaxByDegree returns the entry of largest degree, scanning row-major;
// ties keep the later entry.
func (m *Matrix[T]) MaxByDegree() poly.Polynomial[T] {
	return poly.MaxByDegree(m.elems...)
}

// Equal reports equal shapes and Equal entries (exact for integer T,
// tolerant for float T).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
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

// Convert re-types every coefficient of m from T to U.
func Convert[T, U poly.Number](m *Matrix[T]) *Matrix[U] {
	out := make([]poly.Polynomial[U], len(m.elems))
	for k, p := range m.elems {
		out[k] = poly.Convert[T, U](p)
	}

	return &Matrix[U]{shape: m.shape, elems: out}
}

// String renders one line per row, entries as "[c0, c1, ...]" separated by spaces.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "[%s]", m.elems[i*m.cols+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
