// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for the shared validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pivot/matrix"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)
}

func TestValidateShapes(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	require.NoError(t, matrix.ValidateSameShape(a, a))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
}

func TestValidateIndicesAndVectors(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateRowIndex(m, 1))
	require.ErrorIs(t, matrix.ValidateRowIndex(m, 2), matrix.ErrOutOfRange)
	require.NoError(t, matrix.ValidateColIndex(m, 2))
	require.ErrorIs(t, matrix.ValidateColIndex(m, -1), matrix.ErrOutOfRange)

	require.NoError(t, matrix.ValidateVecLen(MustVector(t, 1, 2), 2))
	require.ErrorIs(t, matrix.ValidateVecLen(MustVector(t, 1), 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilVector)
	require.ErrorIs(t, matrix.ValidateVectorNotNil(nil), matrix.ErrNilVector)
}

func TestValidatePermutation(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidatePermutation([]int{2, 0, 1}, 3))
	require.ErrorIs(t, matrix.ValidatePermutation([]int{0, 1}, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidatePermutation([]int{0, 3, 1}, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidatePermutation([]int{1, 1, 0}, 3), matrix.ErrInvalidPermutation)
}

func TestValidateVectorShaped(t *testing.T) {
	t.Parallel()

	row := MustDense(t, 1, 4)
	col := MustDense(t, 4, 1)
	require.NoError(t, matrix.ValidateVectorShaped(row, MustVector(t, 1, 2, 3, 4)))
	require.NoError(t, matrix.ValidateVectorShaped(col, MustVector(t, 1)))
	require.ErrorIs(t, matrix.ValidateVectorShaped(col, MustVector(t, 1, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVectorShaped(MustDense(t, 2, 2), MustVector(t, 1, 2)), matrix.ErrDimensionMismatch)
}

func TestValidators_NilMatrix(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 1, 1)
	require.ErrorIs(t, matrix.ValidateSameShape(nil, m), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameShape(m, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateRowIndex(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateColIndex(nil, 0), matrix.ErrNilMatrix)
}
