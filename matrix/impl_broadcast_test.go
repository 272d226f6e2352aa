// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for vector broadcasting (AddVec/SubVec).
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pivot/matrix"
)

func TestAddVec_RowMatrix(t *testing.T) {
	t.Parallel()

	row := NewFilledDense(t, 1, 3, []float64{1, 2, 3})

	got, err := matrix.AddVec(row, MustVector(t, 10, 20, 30))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22, 33}}, RowsOf(t, got))

	got, err = matrix.SubVec(row, MustVector(t, 1))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1, 2}}, RowsOf(t, got), "length-1 vector broadcasts as a scalar")

	require.Equal(t, [][]float64{{1, 2, 3}}, RowsOf(t, row))
}

func TestAddVec_ColumnMatrix(t *testing.T) {
	t.Parallel()

	col := NewFilledDense(t, 3, 1, []float64{1, 2, 3})

	got, err := matrix.SubVec(col, MustVector(t, 1, 1, 1))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0}, {1}, {2}}, RowsOf(t, got))

	got, err = matrix.AddVec(col, MustVector(t, 0.5))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1.5}, {2.5}, {3.5}}, RowsOf(t, got))
}

func TestAddVec_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	for _, m := range []*matrix.Dense{
		NewFilledDense(t, 1, 4, []float64{1, 2, 3, 4}),
		NewFilledDense(t, 4, 1, []float64{1, 2, 3, 4}),
		NewFilledDense(t, 1, 1, []float64{7}),
	} {
		for _, v := range []*matrix.Vector{MustVector(t, 2), MustVector(t, 4, 3, 2, 1)} {
			fast, errFast := matrix.AddVec(m, v)
			slow, errSlow := matrix.AddVec(hide{m}, v)
			if errFast != nil {
				require.ErrorIs(t, errFast, matrix.ErrDimensionMismatch)
				require.ErrorIs(t, errSlow, matrix.ErrDimensionMismatch)
				continue
			}
			require.NoError(t, errSlow)
			require.Equal(t, RowsOf(t, fast), RowsOf(t, slow))
		}
	}
}

func TestAddVec_Errors(t *testing.T) {
	t.Parallel()

	square := MustDense(t, 2, 2)
	_, err := matrix.AddVec(square, MustVector(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch, "2×2 is not vector-shaped")

	row := MustDense(t, 1, 3)
	_, err = matrix.AddVec(row, MustVector(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SubVec(row, nil)
	require.ErrorIs(t, err, matrix.ErrNilVector)
	_, err = matrix.SubVec(nil, MustVector(t, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
