// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Copy-based structural transforms: Minor, PrincipalMinor, PermuteRows,
//     PermuteColumns. Each builds index lists and delegates to (*Dense).Induced.
//   - Non-Dense inputs are materialized once through At, then induced.

package matrix

const (
	opMinor          = "Minor"
	opPrincipalMinor = "PrincipalMinor"
	opPermuteRows    = "PermuteRows"
	opPermuteColumns = "PermuteColumns"
)

// asDense returns m itself when it is a *Dense, otherwise a Dense copy.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	return toDense(m)
}

// seq returns [0, 1, ..., n-1].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// seqWithout returns [0, n) with skip removed.
func seqWithout(n, skip int) []int {
	out := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			out = append(out, i)
		}
	}

	return out
}

// Minor returns the (r-1)×(c-1) submatrix obtained by deleting row
// excludeRow and column excludeCol (the classical cofactor minor).
//
// Errors:
//   - ErrNilMatrix.
//   - ErrOutOfRange when excludeRow or excludeCol is outside the matrix.
//   - ErrInvalidDimensions when m has a single row or a single column.
//
// Complexity: Time O(r*c), Space O(r*c).
func Minor(m Matrix, excludeRow, excludeCol int) (*Dense, error) {
	if err := checkRows(m, excludeRow); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateColIndex(m, excludeCol); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 2 || cols < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	res, err := d.Induced(seqWithout(rows, excludeRow), seqWithout(cols, excludeCol))
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// PrincipalMinor returns the top-left size×size submatrix.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimensions when size <= 0 or size exceeds either dimension.
func PrincipalMinor(m Matrix, size int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPrincipalMinor, err)
	}
	if size <= 0 || size > m.Rows() || size > m.Cols() {
		return nil, matrixErrorf(opPrincipalMinor, ErrInvalidDimensions)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPrincipalMinor, err)
	}
	idx := seq(size)
	res, err := d.Induced(idx, idx)
	if err != nil {
		return nil, matrixErrorf(opPrincipalMinor, err)
	}

	return res, nil
}

// PermuteRows returns a new matrix whose row i is row perm[i] of m.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when len(perm) != m.Rows().
//   - ErrOutOfRange for an entry outside [0, m.Rows()).
//   - ErrInvalidPermutation for a repeated entry.
//
// Complexity: Time O(r*c), Space O(r*c).
func PermuteRows(m Matrix, perm []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPermuteRows, err)
	}
	if err := ValidatePermutation(perm, m.Rows()); err != nil {
		return nil, matrixErrorf(opPermuteRows, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPermuteRows, err)
	}
	res, err := d.Induced(perm, seq(m.Cols()))
	if err != nil {
		return nil, matrixErrorf(opPermuteRows, err)
	}

	return res, nil
}

// PermuteColumns returns a new matrix whose column j is column perm[j] of m.
// Errors mirror PermuteRows against m.Cols().
func PermuteColumns(m Matrix, perm []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPermuteColumns, err)
	}
	if err := ValidatePermutation(perm, m.Cols()); err != nil {
		return nil, matrixErrorf(opPermuteColumns, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPermuteColumns, err)
	}
	res, err := d.Induced(seq(m.Rows()), perm)
	if err != nil {
		return nil, matrixErrorf(opPermuteColumns, err)
	}

	return res, nil
}
