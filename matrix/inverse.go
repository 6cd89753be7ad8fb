// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// Inverse returns A⁻¹ for a square, non-singular matrix.
//
// Implementation:
//   - Stage 1: LU with partial pivoting, P·A = L·U.
//   - Stage 2: L⁻¹ by forward substitution (unit diagonal), U⁻¹ by back
//     substitution; a zero diagonal in U is ErrSingular.
//   - Stage 3: A⁻¹ = U⁻¹·L⁻¹·P (two matrix products).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with "Inverse").
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	res, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	lInv := invertUnitLower(res.L)
	uInv, err := invertUpper(res.U)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	p, err := res.Permutation()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	x, err := Mul(uInv, lInv)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Mul(x, p)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// invertUnitLower solves L·X = I column by column (forward substitution).
func invertUnitLower(l *Dense) *Dense {
	n := l.r
	out := newDense(n, n, l.prec)
	sum := new(big.Float).SetPrec(l.prec)
	tmp := new(big.Float).SetPrec(l.prec)
	for col := 0; col < n; col++ {
		for i := col; i < n; i++ {
			sum.SetInt64(0)
			for k := col; k < i; k++ {
				tmp.Mul(l.data[i*n+k], out.data[k*n+col])
				sum.Add(sum, tmp)
			}
			if i == col {
				out.data[i*n+col].SetInt64(1)
				out.data[i*n+col].Sub(out.data[i*n+col], sum)
			} else {
				out.data[i*n+col].Neg(sum)
			}
		}
	}

	return out
}

// invertUpper solves U·X = I column by column (back substitution).
func invertUpper(u *Dense) (*Dense, error) {
	n := u.r
	out := newDense(n, n, u.prec)
	sum := new(big.Float).SetPrec(u.prec)
	tmp := new(big.Float).SetPrec(u.prec)
	for i := 0; i < n; i++ {
		if u.data[i*n+i].Sign() == 0 {
			return nil, ErrSingular
		}
	}
	for col := 0; col < n; col++ {
		for i := col; i >= 0; i-- {
			sum.SetInt64(0)
			if i == col {
				sum.SetInt64(1)
			}
			for k := i + 1; k <= col; k++ {
				tmp.Mul(u.data[i*n+k], out.data[k*n+col])
				sum.Sub(sum, tmp)
			}
			out.data[i*n+col].Quo(sum, u.data[i*n+i])
		}
	}

	return out, nil
}
