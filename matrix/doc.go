// SPDX-License-Identifier: MIT

// Package matrix provides dense real vectors and matrices with the primitive
// operations hand-written numerical algorithms are built from.
//
// The package provides:
//
//   - Vector: a fixed-length []float64 with arithmetic (Add, Sub, Scale, Dot,
//     PlusMult), structural helpers (Concat, SubVector, Outer, ToMatrix) and a
//     textual round-trip "(v0, v1, ...)" via String / ParseVector.
//   - Matrix: a small capability interface (Rows, Cols, At, Set, Clone) with
//     the row-major *Dense implementation.
//   - Kernels over any Matrix: Add, Sub, Mul, Scale, Transpose, MatVec,
//     AddVec/SubVec broadcasting, Minor, PrincipalMinor, PermuteRows/Columns.
//   - In-place elimination primitives: InterchangeRows, ModifyRows, SumRows,
//     RestRows, AddScaledRow and their column analogues.
//
// Every operation returns a fresh value and leaves its operands untouched,
// except Set, Change*, Interchange*, Modify*, Sum*, Rest* and AddScaled*,
// which mutate their target. Errors are package sentinels (ErrOutOfRange,
// ErrDimensionMismatch, ErrInvalidDimensions, ErrParse, ...) matched with
// errors.Is. IEEE-754 special values are never errors by default.
//
// Pivoting, decompositions and solvers are left to the caller; AsGonum and
// FromGonum bridge to gonum.org/v1/gonum/mat when those are needed.
package matrix
