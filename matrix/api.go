// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Offer both operand orders for scalar operations (Scale(m, c) and ScaleBy(c, m)).

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NullMatrix returns the rows×cols all-zero matrix.
func NullMatrix(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NullMatrix", err)
	}

	return m, nil
}

// Identity returns a rows×cols matrix with 1 where i == j and 0 elsewhere.
// Rectangular shapes are allowed: the ones run along the main diagonal until
// either dimension is exhausted.
// Complexity: O(r*c) zeroing + O(min(r,c)) diagonal writes.
func Identity(rows, cols int) (*Dense, error) {
	I, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	n := min(rows, cols)
	for i := 0; i < n; i++ {
		I.data[i*cols+i] = 1.0
	}

	return I, nil
}

// NewIdentity returns I_n (n×n identity).
func NewIdentity(n int) (*Dense, error) { return Identity(n, n) }

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
//
// Errors:
//   - ErrNilMatrix.
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IsSquare reports Rows() == Cols(). A nil matrix is not square.
func IsSquare(m Matrix) bool {
	if ValidateNotNil(m) != nil {
		return false
	}

	return m.Rows() == m.Cols()
}

// ---------- Arithmetic aliases ----------

// ScaleBy is Scale with the scalar first: alpha*m.
func ScaleBy(alpha float64, m Matrix) (Matrix, error) { return Scale(m, alpha) }

// Neg returns -m.
func Neg(m Matrix) (Matrix, error) { return Scale(m, -1) }

// Div returns m scaled by 1/alpha. alpha == 0 yields ±Inf/NaN entries, not an error.
func Div(m Matrix, alpha float64) (Matrix, error) { return Scale(m, 1/alpha) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// ---------- Text ----------

// Format renders any Matrix as "( (r0), (r1), ..., (rn-1) )", the same text
// (*Dense).String produces.
//
// Errors:
//   - ErrNilMatrix, or an At error from a non-Dense implementation.
func Format(m Matrix) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf("Format", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.String(), nil
	}
	d, err := toDense(m)
	if err != nil {
		return "", matrixErrorf("Format", err)
	}

	return d.String(), nil
}

// toDense copies any Matrix into a fresh *Dense via At.
func toDense(m Matrix) (*Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}
