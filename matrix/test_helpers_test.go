// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense and Vector kernels.
//   - Keep all data finite so the numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pivot/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback in code under test; wrap only the
// operand you want to de-opt.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major vals.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: want %d values", r*c)
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// MustSet sets m[i,j] = v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustAt returns m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustVector builds a Vector from values or fails the test.
func MustVector(t testing.TB, values ...float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVector(values...)
	require.NoError(t, err)

	return v
}

// RandFilledDense returns an r×c *Dense with U(-1,1) entries drawn from seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, rng.Float64()*2-1)
		}
	}

	return d
}

// RandVector returns a length-n Vector with U(-1,1) components drawn from seed.
func RandVector(t testing.TB, n int, seed int64) *matrix.Vector {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustVector(t, vals...)
}

// RowsOf reads m back as [][]float64 for table comparisons.
func RowsOf(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// RequireClose asserts that a and b have the same shape and agree within eps.
func RequireClose(t testing.TB, want, got matrix.Matrix, eps float64) {
	t.Helper()
	ok, err := matrix.EqualApprox(want, got, matrix.WithEpsilon(eps))
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant %v\n got %v", RowsOf(t, want), RowsOf(t, got))
}
