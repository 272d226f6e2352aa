// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is. No exported
// function panics on user-triggered error conditions; nil operands surface as
// ErrNilMatrix / ErrNilVector. Methods require a non-nil receiver.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> numeric policy.

var (
	// ErrInvalidDimensions indicates that a requested length, size or shape is
	// non-positive, or that a size argument cannot fit the operand
	// (e.g., PrincipalMinor larger than the matrix).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (vector position, row, column,
	// sub-vector bound or permutation entry) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, Mul where a.Cols != b.Rows, or a
	// vector whose length does not match the row/column it replaces.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrParse signals malformed textual input to ParseVector
	// (missing parentheses, empty or non-numeric components).
	ErrParse = errors.New("matrix: malformed vector text")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilVector indicates that a nil *Vector (receiver or argument) was used.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrInvalidPermutation signals a permutation with a repeated entry.
	// Out-of-range entries report ErrOutOfRange instead.
	ErrInvalidPermutation = errors.New("matrix: not a permutation")

	// ErrNaNInf signals a NaN or ±Inf value was written into a Dense whose
	// numeric policy requires finite values (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrInvalidArgument names the same condition as ErrInvalidDimensions.
// Both match under errors.Is.
var ErrInvalidArgument = ErrInvalidDimensions

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
