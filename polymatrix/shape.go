// SPDX-License-Identifier: MIT

package polymatrix

import "fmt"

// shape is the rows×cols bookkeeping shared by Matrix and FractionMatrix.
type shape struct {
	rows, cols int
}

// newShape validates rows, cols > 0 and rows·cols == n.
func newShape(rows, cols, n int) (shape, error) {
	if rows <= 0 || cols <= 0 {
		return shape{}, polymatrixErrorf(opNew, ErrInvalidDimensions)
	}
	if rows*cols != n {
		return shape{}, polymatrixErrorf(opNew, fmt.Errorf("%d×%d with %d elements: %w", rows, cols, n, ErrInvalidArgument))
	}

	return shape{rows: rows, cols: cols}, nil
}

// Rows returns the row count.
func (s shape) Rows() int { return s.rows }

// Cols returns the column count.
func (s shape) Cols() int { return s.cols }

// Shape returns (rows, cols).
func (s shape) Shape() (int, int) { return s.rows, s.cols }

// offset bounds-checks (i,j) and returns the row-major index i*cols + j.
func (s shape) offset(tag string, i, j int) (int, error) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return 0, polymatrixErrorf(tag, fmt.Errorf("(%d,%d) in %d×%d: %w", i, j, s.rows, s.cols, ErrOutOfRange))
	}

	return i*s.cols + j, nil
}

// sameShape fails with ErrShapeMismatch unless both shapes are identical.
func (s shape) sameShape(tag string, o shape) error {
	if s != o {
		return polymatrixErrorf(tag, fmt.Errorf("%d×%d vs %d×%d: %w", s.rows, s.cols, o.rows, o.cols, ErrShapeMismatch))
	}

	return nil
}

// mulCompatible fails with ErrShapeMismatch unless s.cols == o.rows.
func (s shape) mulCompatible(tag string, o shape) error {
	if s.cols != o.rows {
		return polymatrixErrorf(tag, fmt.Errorf("%d×%d times %d×%d: %w", s.rows, s.cols, o.rows, o.cols, ErrShapeMismatch))
	}

	return nil
}

// flattenRows turns a nested literal into (rows, cols, row-major elements),
// rejecting ragged input with ErrInvalidArgument.
func flattenRows[E any](in [][]E) (int, int, []E, error) {
	if len(in) == 0 || len(in[0]) == 0 {
		return 0, 0, nil, polymatrixErrorf(opNew, ErrInvalidDimensions)
	}
	cols := len(in[0])
	out := make([]E, 0, len(in)*cols)
	for i, row := range in {
		if len(row) != cols {
			return 0, 0, nil, polymatrixErrorf(opNew, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), cols, ErrInvalidArgument))
		}
		out = append(out, row...)
	}

	return len(in), cols, out, nil
}
