// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Interop with gonum.org/v1/gonum/mat for callers who need decompositions,
//     solvers or formatting this package does not provide.
//
// Sharing rules:
//   - AsGonum on a *Dense returns a *mat.Dense over the SAME buffer: writes
//     through either side are visible in both.
//   - Exception: a *Dense created WithValidateNaNInf is copied, because gonum
//     writes would bypass the NaN/Inf check.
//   - AsGonum on any other Matrix returns a read-only view.
//   - FromGonum always copies.

package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// gonumView adapts a Matrix to mat.Matrix. gonum's contract is to panic on
// an out-of-range At, so errors from the wrapped Matrix become panics here.
type gonumView struct{ m Matrix }

func (g gonumView) Dims() (r, c int) { return g.m.Rows(), g.m.Cols() }

func (g gonumView) At(i, j int) float64 {
	v, err := g.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return v
}

func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// AsGonum exposes m as a gonum mat.Matrix, or returns nil for a nil m.
// A *Dense is wrapped without copying unless it enforces the NaN/Inf policy
// (see sharing rules above).
func AsGonum(m Matrix) mat.Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}
	if d, ok := m.(*Dense); ok {
		if d.validateNaNInf {
			data := make([]float64, len(d.data))
			copy(data, d.data)
			return mat.NewDense(d.r, d.c, data)
		}
		return mat.NewDense(d.r, d.c, d.data)
	}

	return gonumView{m: m}
}

// FromGonum copies a gonum matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix when g is nil, including a typed nil such as (*mat.Dense)(nil).
//   - ErrInvalidDimensions when g has a zero dimension.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if isNilGonum(g) {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := g.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.data[i*c+j] = g.At(i, j)
		}
	}

	return d, nil
}

// isNilGonum reports a nil interface or a nil pointer behind mat.Matrix.
func isNilGonum(g mat.Matrix) bool {
	if g == nil {
		return true
	}
	rv := reflect.ValueOf(g)

	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
