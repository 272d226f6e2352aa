// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// matrix×vector products, transpose, and scalar scaling. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Results are always freshly allocated *Dense values; operands are never mutated.
//   - *Dense operands unlock flat-slice loops or gonum BLAS (Gemm/Gemv);
//     any other Matrix goes through At/Set with fixed i→j order.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// ZeroSum is the initial value of every accumulated dot product.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opEqualApprox = "EqualApprox"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - floats.AddScaledTo over the flat buffers.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix          (from ValidateBinarySameShape when a or b is nil).
//   - ErrDimensionMismatch  (from ValidateBinarySameShape when shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → res = a + sign*b in one flat pass.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			floats.AddScaledTo(res.data, da.data, sign, db.data)
			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, run one blas64.Gemm over the shared
//     row-major buffers; otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c), C[i,k] = Σ_j A[i,j]·B[j,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders; the BLAS path is the serial gonum implementation for
//     these sizes and returns identical results across runs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep both operands *Dense to reach Gemm; a single non-Dense operand forces the fallback.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast-path for two Dense matrices: C = 1·A·B + 0·C.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, da.RawGeneral(), db.RawGeneral(), 0, res.RawGeneral())
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	var (
		i, j, k         int
		av, bv, current float64
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue // skip zero for performance
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// result[i,j] = m[j,i], shape (c × r).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	// Fast-path for Dense → Dense: data[i*cols + j] → res.data[j*rows + i]
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated; NaN/Inf in alpha or m propagate.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		floats.ScaleTo(res.data, alpha, dm.data)
		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// MatVec computes y = m · v for a column vector v:
//
//	y[i] = Σ_j m[i,j] * v[j]
//
// Contract: m non-nil; v non-nil; v.Len() == m.Cols(). y has m.Rows() components.
// Fast-path: *Dense runs one blas64.Gemv.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, v *Vector) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := newVectorUnchecked(rows)

	if d, ok := m.(*Dense); ok {
		blas64.Gemv(blas.NoTrans, 1, d.RawGeneral(), v.RawVector(), 0, y.RawVector())
		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y.data[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y.data[i] += mv * v.data[j]
		}
	}

	return y, nil
}

// EqualApprox reports whether a and b have identical shapes and every pair of
// entries lies within eps (absolute or relative). eps defaults to
// DefaultEpsilon; override with WithEpsilon.
//
// Errors:
//   - ErrNilMatrix. Shape differences are reported as (false, nil).
//
// Complexity: Time O(r*c), Space O(1) for *Dense pairs.
func EqualApprox(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}
	eps := gatherOptions(opts...).eps

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return floats.EqualApprox(da.data, db.data, eps), nil
		}
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqualApprox, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqualApprox, err)
			}
			if !scalar.EqualWithinAbsOrRel(av, bv, eps, eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
