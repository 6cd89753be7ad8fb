// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// Sub returns the element-wise difference a − b at the larger operand precision.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols, maxPrec(a, b))

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx].Sub(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ := a.At(i, j) // bounds ensured above
			bv, _ := b.At(i, j)
			res.data[i*cols+j].Sub(av, bv)
		}
	}

	return res, nil
}

// AllClose reports whether |a(i,j) − b(i,j)| ≤ tol for every entry.
// A nil or negative tol means exact equality.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "AllClose").
//
// Complexity: O(r·c).
func AllClose(a, b Matrix, tol *big.Float) (bool, error) {
	diff, err := Sub(a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	limit := new(big.Float)
	if tol != nil && tol.Sign() > 0 {
		limit.Set(tol)
	}
	abs := new(big.Float).SetPrec(diff.prec)
	for _, v := range diff.data {
		if abs.Abs(v).Cmp(limit) > 0 {
			return false, nil
		}
	}

	return true, nil
}
