// SPDX-License-Identifier: MIT
// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing *big.Float elements in a flat slice.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of *big.Float values.
// r is rows, c is columns, and data holds r*c elements in row-major order,
// each allocated at precision prec.
type Dense struct {
	r, c int          // number of rows and columns
	prec uint         // mantissa precision of every entry
	data []*big.Float // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): resolve precision, allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return newDense(rows, cols, o.prec), nil
}

// newDense allocates without validation; callers guarantee rows, cols > 0.
func newDense(rows, cols int, prec uint) *Dense {
	data := make([]*big.Float, rows*cols)
	for i := range data {
		data[i] = new(big.Float).SetPrec(prec)
	}

	return &Dense{r: rows, c: cols, prec: prec, data: data}
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// NewPermutation returns the permutation matrix P with P[i][perm[i]] = 1,
// so that (P·A) row i equals A row perm[i].
//
// Errors:
//   - ErrInvalidDimensions for an empty perm.
//   - ErrBadPermutation when perm is not a permutation of 0..n-1.
func NewPermutation(perm []int, opts ...Option) (*Dense, error) {
	if err := ValidatePermutation(perm); err != nil {
		return nil, err
	}
	n := len(perm)
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i, j := range perm {
		m.data[i*n+j].SetInt64(1)
	}

	return m, nil
}

// FromInts builds a Dense from a rectangular grid of int64 rows.
//
// Errors:
//   - ErrInvalidDimensions for an empty grid.
//   - ErrDimensionMismatch for ragged rows.
func FromInts(rows [][]int64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromInts: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[i*c+j].SetInt64(v)
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Prec returns the mantissa precision of the entries.
func (m *Dense) Prec() uint { return m.prec }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (*big.Float, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Float).SetPrec(m.prec).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col), rounded to the matrix precision.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v *big.Float) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilValue)
	}
	m.data[idx].Set(v)

	return nil
}

// SetInt stores the integer v at (row, col), rounded to the matrix precision.
func (m *Dense) SetInt(row, col int, v *big.Int) error {
	idx, err := m.indexOf("SetInt", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("SetInt", row, col, ErrNilValue)
	}
	m.data[idx].SetInt(v)

	return nil
}

// SetInt64 stores v at (row, col).
func (m *Dense) SetInt64(row, col int, v int64) error {
	idx, err := m.indexOf("SetInt64", row, col)
	if err != nil {
		return err
	}
	m.data[idx].SetInt64(v)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	out := &Dense{r: m.r, c: m.c, prec: m.prec, data: make([]*big.Float, len(m.data))}
	for i, v := range m.data {
		out.data[i] = new(big.Float).SetPrec(m.prec).Set(v)
	}

	return out
}

// String implements fmt.Stringer for easy debugging (entries in %g, 10 digits).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].Text('g', 10))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
