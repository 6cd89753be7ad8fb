// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"math/big"
)

// Det returns the determinant of a square matrix at the matrix precision.
//
// Implementation:
//   - n < cofactor cutoff: cofactor expansion along the first row (O(n!)).
//   - otherwise: LU with partial pivoting; det = (−1)^swaps · ∏ U[i][i].
//     ErrSingular from the factorisation is an exact zero determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Det").
//
// Complexity:
//   - O(n!) below the cutoff, O(n³) otherwise.
func Det(m Matrix, opts ...Option) (*big.Float, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)
	n, prec := m.Rows(), m.Prec()

	if n < o.cofactorCutoff {
		d, err := toDense(m)
		if err != nil {
			return nil, matrixErrorf(opDet, err)
		}
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}

		return d.cofactorDet(0, idx), nil
	}

	res, err := LU(m)
	if errors.Is(err, ErrSingular) {
		return new(big.Float).SetPrec(prec), nil
	}
	if err != nil {
		return nil, matrixErrorf(opDet, err)
	}
	det := new(big.Float).SetPrec(prec).SetInt64(int64(res.ParitySign()))
	for i := 0; i < n; i++ {
		det.Mul(det, res.U.data[i*n+i])
	}

	return det, nil
}

// cofactorDet expands the minor made of rows row..n-1 and the given columns
// along its first row.
func (m *Dense) cofactorDet(row int, cols []int) *big.Float {
	if len(cols) == 1 {
		return new(big.Float).SetPrec(m.prec).Set(m.data[row*m.c+cols[0]])
	}
	sum := new(big.Float).SetPrec(m.prec)
	term := new(big.Float).SetPrec(m.prec)
	sub := make([]int, 0, len(cols)-1)
	for j, col := range cols {
		entry := m.data[row*m.c+col]
		if entry.Sign() == 0 {
			continue
		}
		sub = sub[:0]
		sub = append(sub, cols[:j]...)
		sub = append(sub, cols[j+1:]...)
		term.Mul(entry, m.cofactorDet(row+1, sub))
		if j%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
	}

	return sum
}
