// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// LUResult holds a partial-pivoting factorisation P·A = L·U.
//
//   - L is unit lower triangular, U upper triangular.
//   - Perm[i] is the row of A that ended up in row i (P[i][Perm[i]] = 1).
//   - Swaps counts row exchanges; det(P) = (−1)^Swaps.
type LUResult struct {
	L, U  *Dense
	Perm  []int
	Swaps int
}

// Permutation materialises P as a Dense at the precision of L.
func (r *LUResult) Permutation() (*Dense, error) {
	return NewPermutation(r.Perm, WithPrecision(r.L.prec))
}

// ParitySign returns +1 for an even number of row exchanges and −1 otherwise.
func (r *LUResult) ParitySign() int {
	if r.Swaps%2 == 0 {
		return 1
	}

	return -1
}

// toDense returns a private *Dense copy of m.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	out := newDense(m.Rows(), m.Cols(), m.Prec())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*out.c+j].Set(v)
		}
	}

	return out, nil
}

// LU computes the Doolittle factorisation of a square matrix with partial
// pivoting.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy it into a working Dense.
//   - Stage 2: For column k, pick the candidate row i ≥ k with the largest
//     |a[i][k]| (lowest index on ties). No nonzero candidate ⇒ ErrSingular.
//   - Stage 3: Exchange rows (work matrix, computed part of L, Perm), then
//     eliminate below the pivot, storing multipliers in L.
//
// Behavior highlights:
//   - The pivot search is bounded by the column height; it never loops.
//   - Inputs remain immutable.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with "LU").
//
// Complexity:
//   - Time O(n³) big.Float operations, Space O(n²).
func LU(m Matrix) (*LUResult, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n, prec := a.r, a.prec
	L := newDense(n, n, prec)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p int
		swaps      int
		absMax     = new(big.Float).SetPrec(prec)
		absCur     = new(big.Float).SetPrec(prec)
		tmp        = new(big.Float).SetPrec(prec)
		pivot, l   *big.Float
	)
	for k = 0; k < n; k++ {
		// Stage 2: pivot search over rows k..n-1 of column k
		p = -1
		for i = k; i < n; i++ {
			if a.data[i*n+k].Sign() == 0 {
				continue
			}
			absCur.Abs(a.data[i*n+k])
			if p < 0 || absCur.Cmp(absMax) > 0 {
				p = i
				absMax.Set(absCur)
			}
		}
		if p < 0 {
			return nil, matrixErrorf(opLU, ErrSingular)
		}

		// Stage 3a: row exchange
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			for j = 0; j < k; j++ {
				L.data[k*n+j], L.data[p*n+j] = L.data[p*n+j], L.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			swaps++
		}

		// Stage 3b: eliminate below the pivot
		pivot = a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			if a.data[i*n+k].Sign() == 0 {
				continue
			}
			l = L.data[i*n+k]
			l.Quo(a.data[i*n+k], pivot)
			a.data[i*n+k].SetInt64(0)
			for j = k + 1; j < n; j++ {
				tmp.Mul(l, a.data[k*n+j])
				a.data[i*n+j].Sub(a.data[i*n+j], tmp)
			}
		}
	}
	for i = 0; i < n; i++ {
		L.data[i*n+i].SetInt64(1)
	}

	return &LUResult{L: L, U: a, Perm: perm, Swaps: swaps}, nil
}
