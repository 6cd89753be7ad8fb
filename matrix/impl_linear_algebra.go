// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, matrix–vector product and transpose. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Kernels take a fast path when operands are concrete *Dense and fall back
//     to At/Set otherwise; both paths use identical loop orders.
//   - Results take the larger precision of the operands.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opLU        = "LU"
	opDet       = "Det"
	opInverse   = "Inverse"
	opSub       = "Sub"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// maxPrec returns the larger working precision of a and b.
func maxPrec(a, b Matrix) uint {
	if a.Prec() > b.Prec() {
		return a.Prec()
	}

	return b.Prec()
}

// Mul computes the matrix product a·b into a freshly allocated Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate r×c result.
//   - Stage 2: Fast path for *Dense operands (i→k→j order on flat slices),
//     fallback through At otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r·k·c) big.Float multiply-adds, Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	prec := maxPrec(a, b)
	out := newDense(rows, cols, prec)
	tmp := new(big.Float).SetPrec(prec)

	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	var i, j, k int
	if okA && okB {
		var aik *big.Float
		for i = 0; i < rows; i++ {
			for k = 0; k < inner; k++ {
				aik = ad.data[i*inner+k]
				if aik.Sign() == 0 {
					continue
				}
				for j = 0; j < cols; j++ {
					tmp.Mul(aik, bd.data[k*cols+j])
					out.data[i*cols+j].Add(out.data[i*cols+j], tmp)
				}
			}
		}

		return out, nil
	}

	// Fallback: generic interface version
	var av, bv *big.Float
	var err error
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			if av, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			for j = 0; j < cols; j++ {
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				tmp.Mul(av, bv)
				out.data[i*cols+j].Add(out.data[i*cols+j], tmp)
			}
		}
	}

	return out, nil
}

// MatVec computes y = m·x for a vector x of length m.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNilValue (wrapped with "MatVec").
//
// Complexity:
//   - Time O(r·c), Space O(r).
func MatVec(m Matrix, x []*big.Float) ([]*big.Float, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols, prec := m.Rows(), m.Cols(), m.Prec()
	y := make([]*big.Float, rows)
	tmp := new(big.Float).SetPrec(prec)

	md, fast := m.(*Dense)
	var v *big.Float
	var err error
	for i := 0; i < rows; i++ {
		y[i] = new(big.Float).SetPrec(prec)
		for j := 0; j < cols; j++ {
			if fast {
				v = md.data[i*cols+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			tmp.Mul(v, x[j])
			y[i].Add(y[i], tmp)
		}
	}

	return y, nil
}

// Transpose returns mᵀ as a new Dense.
// Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := newDense(cols, rows, m.Prec())
	var v *big.Float
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			out.data[j*rows+i].Set(v)
		}
	}

	return out, nil
}
