// SPDX-License-Identifier: MIT

// Package matrix - Vector: fixed-length dense float64 vectors.
//
// Purpose:
//   - Own a contiguous []float64 whose length never changes after construction.
//   - Provide value-in/value-out arithmetic: every operation returns a fresh
//     Vector and leaves its operands untouched; only Set mutates.
//   - Bridge to Matrix: Outer, ToMatrix, MulMatrix (v·M); see MatVec for M·v.
//
// Determinism & Performance:
//   - Element-wise kernels go through gonum/floats; Dot and v·M through blas64.
//   - Length checks happen before any allocation, so a failed call never
//     leaves a partially written result behind.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// Operation tags for Vector error wrapping.
const (
	opVecNew      = "NewVector"
	opVecAt       = "At"
	opVecSet      = "Set"
	opVecAdd      = "Add"
	opVecSub      = "Sub"
	opVecDot      = "Dot"
	opVecPlusMult = "PlusMult"
	opVecMulMat   = "MulMatrix"
	opVecSub2     = "SubVector"
	opVecCanon    = "CanonicalVector"
	opVecScale    = "ScaleVector"
	opVecOuter    = "Outer"
	opVecConcat   = "Concat"
)

// vectorErrorf wraps err as "Vector.<method>: <err>" preserving the sentinel.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// Vector is a fixed-length ordered sequence of float64 values.
// The zero value is not usable; build vectors with NewVector, NewVectorZeros,
// CanonicalVector or ParseVector.
type Vector struct {
	data []float64 // len(data) >= 1, never resliced after construction
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector copies values into a new Vector of length len(values).
//
// Errors:
//   - ErrInvalidDimensions when values is empty.
//
// Complexity: Time O(n), Space O(n).
func NewVector(values ...float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, vectorErrorf(opVecNew, ErrInvalidDimensions)
	}
	data := make([]float64, len(values))
	copy(data, values) // the caller keeps ownership of values

	return &Vector{data: data}, nil
}

// NewVectorZeros returns a vector of n zeros.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
func NewVectorZeros(n int) (*Vector, error) {
	if n <= 0 {
		return nil, vectorErrorf(fmt.Sprintf("NewVectorZeros(%d)", n), ErrInvalidDimensions)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// NullVector returns the zero vector of length n; see NewVectorZeros.
func NullVector(n int) (*Vector, error) { return NewVectorZeros(n) }

// newVectorUnchecked allocates n zeros; callers guarantee n >= 1.
func newVectorUnchecked(n int) *Vector {
	return &Vector{data: make([]float64, n)}
}

// CanonicalVector returns e_index of the given length: all zeros except a 1
// at position index.
//
// Errors:
//   - ErrInvalidDimensions when length <= 0.
//   - ErrOutOfRange when index is outside [0, length).
func CanonicalVector(index, length int) (*Vector, error) {
	v, err := NewVectorZeros(length)
	if err != nil {
		return nil, vectorErrorf(opVecCanon, err)
	}
	if err = v.Set(index, 1); err != nil {
		return nil, vectorErrorf(opVecCanon, err)
	}

	return v, nil
}

// Len returns the number of components.
func (v *Vector) Len() int { return len(v.data) }

// At returns component i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(fmt.Sprintf("%s(%d)", opVecAt, i), ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns component i in place or returns ErrOutOfRange.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(fmt.Sprintf("%s(%d)", opVecSet, i), ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the components.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// RawVector returns a blas64.Vector sharing v's storage.
// Writes through the returned value are visible in v.
func (v *Vector) RawVector() blas64.Vector {
	return blas64.Vector{N: len(v.data), Inc: 1, Data: v.data}
}

// Clone returns an independent deep copy.
func (v *Vector) Clone() *Vector {
	return &Vector{data: v.Values()}
}

// Scale returns c*v. ScaleVector(c, v) is the same operation with the scalar first.
// Complexity: Time O(n), Space O(n).
func (v *Vector) Scale(c float64) *Vector {
	out := newVectorUnchecked(len(v.data))
	floats.ScaleTo(out.data, c, v.data)

	return out
}

// ScaleVector returns c*v.
//
// Errors:
//   - ErrNilVector when v is nil.
func ScaleVector(c float64, v *Vector) (*Vector, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, vectorErrorf(opVecScale, err)
	}

	return v.Scale(c), nil
}

// Neg returns -v.
func (v *Vector) Neg() *Vector { return v.Scale(-1) }

// Div returns v scaled by 1/c. Dividing by zero follows IEEE-754
// (±Inf, NaN) and is not reported as an error.
func (v *Vector) Div(c float64) *Vector { return v.Scale(1 / c) }

// Add returns v + o.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch. Operands are never modified.
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if err := ValidateVecLen(o, v.Len()); err != nil {
		return nil, vectorErrorf(opVecAdd, err)
	}
	out := newVectorUnchecked(len(v.data))
	floats.AddTo(out.data, v.data, o.data)

	return out, nil
}

// Sub returns v - o.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch. Operands are never modified.
func (v *Vector) Sub(o *Vector) (*Vector, error) {
	if err := ValidateVecLen(o, v.Len()); err != nil {
		return nil, vectorErrorf(opVecSub, err)
	}
	out := newVectorUnchecked(len(v.data))
	floats.SubTo(out.data, v.data, o.data)

	return out, nil
}

// Dot returns Σ v[i]*o[i].
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//
// Complexity: Time O(n), Space O(1).
func (v *Vector) Dot(o *Vector) (float64, error) {
	if err := ValidateVecLen(o, v.Len()); err != nil {
		return 0, vectorErrorf(opVecDot, err)
	}

	return blas64.Dot(v.RawVector(), o.RawVector()), nil
}

// PlusMult returns v + c*o in a single pass.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func (v *Vector) PlusMult(c float64, o *Vector) (*Vector, error) {
	if err := ValidateVecLen(o, v.Len()); err != nil {
		return nil, vectorErrorf(opVecPlusMult, err)
	}
	out := newVectorUnchecked(len(v.data))
	floats.AddScaledTo(out.data, v.data, c, o.data)

	return out, nil
}

// Outer returns the v.Len()×o.Len() matrix with entry [i,j] = v[i]*o[j].
// Implemented as a rank-1 update (BLAS Ger) of a zero matrix.
//
// Errors:
//   - ErrNilVector when o is nil.
//
// Complexity: Time O(n*m), Space O(n*m).
func (v *Vector) Outer(o *Vector) (*Dense, error) {
	if err := ValidateVectorNotNil(o); err != nil {
		return nil, vectorErrorf(opVecOuter, err)
	}
	out := &Dense{r: len(v.data), c: len(o.data), data: make([]float64, len(v.data)*len(o.data))}
	blas64.Ger(1, v.RawVector(), o.RawVector(), out.RawGeneral())

	return out, nil
}

// MulMatrix returns the row-vector product v·m, of length m.Cols():
//
//	result[i] = Σ_j v[j] * m[j,i]
//
// Fast-path: *Dense runs a single BLAS Gemv with the transposed operand.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when m.Rows() != v.Len().
//
// Complexity: Time O(r*c), Space O(c).
func (v *Vector) MulMatrix(m Matrix) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, vectorErrorf(opVecMulMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows != v.Len() {
		return nil, vectorErrorf(opVecMulMat, ErrDimensionMismatch)
	}
	out := newVectorUnchecked(cols)

	// Fast-path: y = Aᵀx on the shared row-major buffer.
	if d, ok := m.(*Dense); ok {
		blas64.Gemv(blas.Trans, 1, d.RawGeneral(), v.RawVector(), 0, out.RawVector())
		return out, nil
	}

	// Fallback: column-wise dot products via At, fixed i→j order.
	var (
		i, j int
		mv   float64
		acc  float64
		err  error
	)
	for i = 0; i < cols; i++ {
		acc = ZeroSum
		for j = 0; j < rows; j++ {
			if mv, err = m.At(j, i); err != nil {
				return nil, vectorErrorf(opVecMulMat, err)
			}
			acc += v.data[j] * mv
		}
		out.data[i] = acc
	}

	return out, nil
}

// ToMatrix embeds v as a 1×n matrix (horizontal) or an n×1 matrix (vertical).
// The result owns a copy of the data.
func (v *Vector) ToMatrix(horizontal bool) *Dense {
	n := len(v.data)
	out := &Dense{r: n, c: 1, data: v.Values()}
	if horizontal {
		out.r, out.c = 1, n // same row-major buffer, different shape
	}

	return out
}

// Concat returns a new vector holding v's components followed by all of o's.
//
// Errors:
//   - ErrNilVector when o is nil.
func (v *Vector) Concat(o *Vector) (*Vector, error) {
	if err := ValidateVectorNotNil(o); err != nil {
		return nil, vectorErrorf(opVecConcat, err)
	}
	out := newVectorUnchecked(len(v.data) + len(o.data))
	copy(out.data, v.data)
	copy(out.data[len(v.data):], o.data)

	return out, nil
}

// SubVector returns the inclusive slice [from, to] as a new vector of
// length to-from+1.
//
// Errors:
//   - ErrOutOfRange when from or to is outside [0, Len()) or from > to.
func (v *Vector) SubVector(from, to int) (*Vector, error) {
	n := len(v.data)
	if from < 0 || to >= n || from > to {
		return nil, vectorErrorf(fmt.Sprintf("%s(%d,%d)", opVecSub2, from, to), ErrOutOfRange)
	}
	out := newVectorUnchecked(to - from + 1)
	copy(out.data, v.data[from:to+1])

	return out, nil
}

// Equal reports whether o has the same length and every component lies
// within eps of v's (absolute or relative, see scalar.EqualWithinAbsOrRel).
// eps defaults to DefaultEpsilon; override with WithEpsilon.
func (v *Vector) Equal(o *Vector, opts ...Option) bool {
	if o == nil || len(o.data) != len(v.data) {
		return false
	}
	eps := gatherOptions(opts...).eps

	return floats.EqualApprox(v.data, o.data, eps)
}
