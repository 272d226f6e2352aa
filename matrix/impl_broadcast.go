// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcast add/subtract between a vector-shaped matrix (1×n or n×1) and a Vector.
//
// Broadcast rule:
//   - v.Len() == n (the non-unit dimension): element-wise, out[k] = m[k] ± v[k].
//   - v.Len() == 1 (the unit dimension):     scalar,       out[k] = m[k] ± v[0].
//   - A 1×1 matrix takes a length-1 vector under both rules alike.
//
// Determinism & Performance:
//   - A 1×n or n×1 *Dense stores its n entries contiguously, so the fast path is
//     a single flat loop in both orientations.

package matrix

const (
	opAddVec = "AddVec"
	opSubVec = "SubVec"
)

// AddVec returns m + v broadcast along the single non-unit axis of m.
//
// Errors:
//   - ErrNilMatrix, ErrNilVector.
//   - ErrDimensionMismatch when m has more than one row and more than one
//     column, or when v.Len() is neither 1 nor the non-unit dimension.
//
// Complexity: Time O(n), Space O(n).
func AddVec(m Matrix, v *Vector) (Matrix, error) { return ewBroadcastVec(m, v, +1, opAddVec) }

// SubVec returns m - v broadcast along the single non-unit axis of m.
// Errors and complexity match AddVec.
func SubVec(m Matrix, v *Vector) (Matrix, error) { return ewBroadcastVec(m, v, -1, opSubVec) }

// ewBroadcastVec computes out[k] = m[k] + sign*v[k or 0] over the flattened
// entries of a vector-shaped m.
func ewBroadcastVec(m Matrix, v *Vector, sign float64, opTag string) (Matrix, error) {
	if err := ValidateVectorShaped(m, v); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	n := rows * cols // == the non-unit dimension
	scalar := v.Len() == 1

	// operand returns the broadcast vector component for flat position k.
	operand := func(k int) float64 {
		if scalar {
			return v.data[0]
		}
		return v.data[k]
	}

	// Dense fast-path: row-major storage is contiguous for 1×n and n×1 alike.
	if d, ok := m.(*Dense); ok {
		for k := 0; k < n; k++ {
			out.data[k] = d.data[k] + sign*operand(k)
		}
		return out, nil
	}

	// Generic fallback: k runs along the non-unit axis.
	var mv float64
	for k := 0; k < n; k++ {
		i, j := 0, k
		if cols == 1 {
			i, j = k, 0
		}
		if mv, err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opTag, err)
		}
		out.data[k] = mv + sign*operand(k)
	}

	return out, nil
}
