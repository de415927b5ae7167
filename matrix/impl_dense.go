// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) used by row-rank searches.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Notes:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go).
//   - Use Induced(rows, cols) to materialize a row/column selection with its own lifetime.
//   - NewDenseFrom copies the caller's slice; later caller writes never alias the matrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row/Clone: O(c)/O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxRow    = "Row"     // method tag used in error wrappers
	ctxFrom   = "From"    // ctor tag for NewDenseFrom
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (zero allowed only for internal zero-OK constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // zero-filled by make
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom builds an r×c matrix from a row-major slice of exactly r*c values.
// MAIN DESCRIPTION:
//   - Strict ingestion: shape, length and (by policy) finiteness are checked
//     before the data is copied into fresh storage.
//
// Implementation:
//   - Stage 1: resolve options; validate rows>0 && cols>0 and len(data)==rows*cols.
//   - Stage 2: when the NaN/Inf policy is on, reject the first non-finite value.
//   - Stage 3: copy into a new buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (length), ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Dense.%s: len %d != %d*%d: %w", ctxFrom, len(data), rows, cols, ErrDimensionMismatch)
	}
	if o.validateNaNInf {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxFrom, k/cols, k%cols, ErrNaNInf)
			}
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseRows builds a matrix from equal-length rows. Convenience wrapper
// over NewDenseFrom used heavily by tests and small fixtures.
//
// Errors:
//   - ErrInvalidDimensions for no rows or empty rows.
//   - ErrDimensionMismatch for ragged input.
func NewDenseRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	flat := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d cols, want %d: %w", ctxFrom, i, len(row), c, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return NewDenseFrom(len(rows), c, flat, opts...)
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Row-rank searches start from an empty selection, which is a legal 0×c matrix.
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange; public methods add method context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// String renders one bracketed line per row with %g values.
// Intended for diagnostics, not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed, order kept).
//
// Implementation:
//   - Stage 1: allocate the result through the zero-OK constructor, so an
//     empty row or column selection yields a legal zero-area matrix.
//   - Stage 2: nested loops with direct offset math; bounds-check each index.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res, err := newDenseZeroOK(rp, cp)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j, ri, cj int
	for j = 0; j < cp; j++ {
		if cj = colsIdx[j]; cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			res.data[i*cp+j] = m.data[ri*m.c+colsIdx[j]]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
