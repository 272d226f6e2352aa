// SPDX-License-Identifier: MIT
// Package matrix_test cross-checks kernels against gonum/mat.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pivot/matrix"
)

func TestAsGonum_SharesDenseStorage(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	g := matrix.AsGonum(d)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	gd, ok := g.(*mat.Dense)
	require.True(t, ok)
	gd.Set(0, 0, -1)
	require.Equal(t, -1.0, MustAt(t, d, 0, 0))
}

func TestAsGonum_ViewOverAnyMatrix(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	g := matrix.AsGonum(hide{d})
	require.Equal(t, 3.0, g.At(1, 0))
	require.Equal(t, 2.0, g.T().At(1, 0))
	require.Panics(t, func() { g.At(2, 0) })

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.Equal(t, RowsOf(t, d), RowsOf(t, back))
}

func TestFromGonum(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	d, err := matrix.FromGonum(src)
	require.NoError(t, err)
	src.Set(0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, d, 0, 0), "FromGonum copies")

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestKernels_AgreeWithGonum(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 4, 5, 101)
	b := RandFilledDense(t, 5, 3, 202)
	c := RandFilledDense(t, 4, 5, 303)

	var want mat.Dense
	want.Mul(matrix.AsGonum(a), matrix.AsGonum(b))
	got, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	fromG, err := matrix.FromGonum(&want)
	require.NoError(t, err)
	RequireClose(t, fromG, got, 1e-12)

	var sum mat.Dense
	sum.Add(matrix.AsGonum(a), matrix.AsGonum(c))
	gotSum, err := matrix.Add(a, c)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(&sum, matrix.AsGonum(gotSum), 1e-15))

	x := RandVector(t, 5, 404)
	var wantVec mat.VecDense
	wantVec.MulVec(matrix.AsGonum(a), mat.NewVecDense(5, x.Values()))
	gotVec, err := matrix.MatVec(hide{a}, x)
	require.NoError(t, err)
	wantVals := make([]float64, wantVec.Len())
	for i := range wantVals {
		wantVals[i] = wantVec.AtVec(i)
	}
	require.InDeltaSlice(t, wantVals, gotVec.Values(), 1e-12)

	gotT, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.True(t, mat.Equal(matrix.AsGonum(a).T(), matrix.AsGonum(gotT)))
}

func TestGonum_NilOperands(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromGonum((*mat.Dense)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum((*mat.VecDense)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.Nil(t, matrix.AsGonum(nil))
	require.Nil(t, matrix.AsGonum(typedNil))
}

func TestAsGonum_CopiesWhenNaNInfPolicyIsOn(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	g := matrix.AsGonum(d)
	require.Equal(t, 4.0, g.At(1, 1))

	gd, ok := g.(*mat.Dense)
	require.True(t, ok)
	gd.Set(0, 0, math.NaN())
	require.Equal(t, 1.0, MustAt(t, d, 0, 0), "gonum writes must not bypass the policy")
}
