// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic. Only ValidatePermutation allocates
//    (a seen-set of length n).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVectorNotNil ensures v is a usable vector.
// Complexity: O(1).
func ValidateVectorNotNil(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVectorNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures v is non-nil and has exactly n components.
// Time: O(1). Space: O(1).
func ValidateVecLen(v *Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	if v.Len() != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ i < m.Rows(). Assumes m is not nil.
func ValidateRowIndex(m Matrix, i int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRowIndex", err)
	}
	if i < 0 || i >= m.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex ensures 0 ≤ j < m.Cols(). Assumes m is not nil.
func ValidateColIndex(m Matrix, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateColIndex", err)
	}
	if j < 0 || j >= m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateColIndex(%d)", j), ErrOutOfRange)
	}

	return nil
}

// ValidatePermutation checks that perm is a permutation of [0, n).
//
// Errors (in priority order):
//   - ErrDimensionMismatch when len(perm) != n.
//   - ErrOutOfRange when an entry is outside [0, n).
//   - ErrInvalidPermutation when an entry repeats.
//
// Complexity: Time O(n), Space O(n).
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return validatorErrorf("ValidatePermutation", ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for pos, p := range perm {
		if p < 0 || p >= n {
			return validatorErrorf(fmt.Sprintf("ValidatePermutation: perm[%d]=%d", pos, p), ErrOutOfRange)
		}
		if seen[p] {
			return validatorErrorf(fmt.Sprintf("ValidatePermutation: perm[%d]=%d", pos, p), ErrInvalidPermutation)
		}
		seen[p] = true
	}

	return nil
}

// ValidateVectorShaped ensures m is degenerate in one dimension (a single row
// or a single column) and that v can broadcast over it: v.Len() equals the
// non-unit dimension (element-wise) or 1 (scalar broadcast).
//
// Errors: ErrNilMatrix, ErrNilVector, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVectorShaped(m Matrix, v *Vector) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVectorShaped", err)
	}
	if err := ValidateVectorNotNil(v); err != nil {
		return validatorErrorf("ValidateVectorShaped", err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows > 1 && cols > 1 {
		return validatorErrorf("ValidateVectorShaped: not a single row or column", ErrDimensionMismatch)
	}
	n := v.Len()
	if n != rows && n != cols {
		return validatorErrorf("ValidateVectorShaped: length", ErrDimensionMismatch)
	}

	return nil
}
