// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row/column extraction and write-back (RowToVector, ChangeRow, ...).
//   - In-place elimination primitives a caller composes into Gaussian
//     elimination: InterchangeRows, ModifyRows, SumRows, RestRows, AddScaledRow
//     and their column analogues.
//
// Semantics:
//   - ModifyRows(m, dest, src, c) OVERWRITES: row[dest] = c*row[src].
//     SumRows / RestRows are ModifyRows with c = +1 / -1, i.e. they copy or
//     negate-copy src into dest. The previous contents of dest are discarded.
//   - AddScaledRow(m, dest, src, c) ACCUMULATES: row[dest] += c*row[src].
//     This is the classical elimination step.
//
// Determinism & Performance:
//   - *Dense without the NaN/Inf policy goes straight to gonum: rows are
//     contiguous slices (floats), columns are strided blas64.Vectors (Inc = cols).
//   - Every other Matrix, and a policy-enabled *Dense, goes through At/Set,
//     so the numeric policy is honoured. A failing Set in that path may leave
//     the target partially written.

package matrix

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

const (
	opRowToVector        = "RowToVector"
	opColumnToVector     = "ColumnToVector"
	opChangeRow          = "ChangeRow"
	opChangeColumn       = "ChangeColumn"
	opInterchangeRows    = "InterchangeRows"
	opInterchangeColumns = "InterchangeColumns"
	opModifyRows         = "ModifyRows"
	opModifyColumns      = "ModifyColumns"
	opAddScaledRow       = "AddScaledRow"
	opAddScaledColumn    = "AddScaledColumn"
)

// rawDense returns m as a *Dense when its buffer may be written directly,
// i.e. when no finite-value policy has to be enforced on writes.
func rawDense(m Matrix) (*Dense, bool) {
	d, ok := m.(*Dense)
	if !ok || d.validateNaNInf {
		return nil, false
	}

	return d, true
}

// rowSlice is the contiguous storage of row i.
func (m *Dense) rowSlice(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

// colVector is the strided storage of column j.
func (m *Dense) colVector(j int) blas64.Vector {
	return blas64.Vector{N: m.r, Inc: m.c, Data: m.data[j:]}
}

// checkRows validates m and every row index in idx.
func checkRows(m Matrix, idx ...int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for _, i := range idx {
		if err := ValidateRowIndex(m, i); err != nil {
			return err
		}
	}

	return nil
}

// checkCols validates m and every column index in idx.
func checkCols(m Matrix, idx ...int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for _, j := range idx {
		if err := ValidateColIndex(m, j); err != nil {
			return err
		}
	}

	return nil
}

// RowToVector copies row i of m into a new Vector of length m.Cols().
// The result is independent of m.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func RowToVector(m Matrix, i int) (*Vector, error) {
	if err := checkRows(m, i); err != nil {
		return nil, matrixErrorf(opRowToVector, err)
	}
	cols := m.Cols()
	out := newVectorUnchecked(cols)
	if d, ok := m.(*Dense); ok {
		copy(out.data, d.rowSlice(i))
		return out, nil
	}
	var err error
	for j := 0; j < cols; j++ {
		if out.data[j], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opRowToVector, err)
		}
	}

	return out, nil
}

// ColumnToVector copies column j of m into a new Vector of length m.Rows().
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func ColumnToVector(m Matrix, j int) (*Vector, error) {
	if err := checkCols(m, j); err != nil {
		return nil, matrixErrorf(opColumnToVector, err)
	}
	rows := m.Rows()
	out := newVectorUnchecked(rows)
	if d, ok := m.(*Dense); ok {
		blas64.Copy(d.colVector(j), out.RawVector())
		return out, nil
	}
	var err error
	for i := 0; i < rows; i++ {
		if out.data[i], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opColumnToVector, err)
		}
	}

	return out, nil
}

// ChangeRow overwrites row i of m with v, in place.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad i).
//   - ErrNilVector, ErrDimensionMismatch when v.Len() != m.Cols().
func ChangeRow(m Matrix, i int, v *Vector) error {
	if err := checkRows(m, i); err != nil {
		return matrixErrorf(opChangeRow, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return matrixErrorf(opChangeRow, err)
	}
	if d, ok := rawDense(m); ok {
		copy(d.rowSlice(i), v.data)
		return nil
	}
	for j, x := range v.data {
		if err := m.Set(i, j, x); err != nil {
			return matrixErrorf(opChangeRow, err)
		}
	}

	return nil
}

// ChangeColumn overwrites column j of m with v, in place.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad j).
//   - ErrNilVector, ErrDimensionMismatch when v.Len() != m.Rows().
func ChangeColumn(m Matrix, j int, v *Vector) error {
	if err := checkCols(m, j); err != nil {
		return matrixErrorf(opChangeColumn, err)
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return matrixErrorf(opChangeColumn, err)
	}
	if d, ok := rawDense(m); ok {
		blas64.Copy(v.RawVector(), d.colVector(j))
		return nil
	}
	for i, x := range v.data {
		if err := m.Set(i, j, x); err != nil {
			return matrixErrorf(opChangeColumn, err)
		}
	}

	return nil
}

// InterchangeRows swaps rows a and b of m in place. a == b is a no-op.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func InterchangeRows(m Matrix, a, b int) error {
	if err := checkRows(m, a, b); err != nil {
		return matrixErrorf(opInterchangeRows, err)
	}
	if a == b {
		return nil
	}
	if d, ok := m.(*Dense); ok { // swapping never introduces new values
		ra, rb := d.rowSlice(a), d.rowSlice(b)
		for j := range ra {
			ra[j], rb[j] = rb[j], ra[j]
		}
		return nil
	}
	for j := 0; j < m.Cols(); j++ {
		if err := swapEntries(m, a, j, b, j); err != nil {
			return matrixErrorf(opInterchangeRows, err)
		}
	}

	return nil
}

// InterchangeColumns swaps columns a and b of m in place. a == b is a no-op.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(r), Space O(1).
func InterchangeColumns(m Matrix, a, b int) error {
	if err := checkCols(m, a, b); err != nil {
		return matrixErrorf(opInterchangeColumns, err)
	}
	if a == b {
		return nil
	}
	if d, ok := m.(*Dense); ok {
		blas64.Swap(d.colVector(a), d.colVector(b))
		return nil
	}
	for i := 0; i < m.Rows(); i++ {
		if err := swapEntries(m, i, a, i, b); err != nil {
			return matrixErrorf(opInterchangeColumns, err)
		}
	}

	return nil
}

// swapEntries exchanges m[i1,j1] and m[i2,j2] through the interface.
func swapEntries(m Matrix, i1, j1, i2, j2 int) error {
	x, err := m.At(i1, j1)
	if err != nil {
		return err
	}
	y, err := m.At(i2, j2)
	if err != nil {
		return err
	}
	if err = m.Set(i1, j1, y); err != nil {
		return err
	}

	return m.Set(i2, j2, x)
}

// ModifyRows sets row dest to c times row src, in place:
//
//	m[dest, j] = c * m[src, j]   for every column j
//
// This overwrites dest; it does not accumulate. Use AddScaledRow for
// dest += c*src. dest == src scales the row by c.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func ModifyRows(m Matrix, dest, src int, c float64) error {
	if err := checkRows(m, dest, src); err != nil {
		return matrixErrorf(opModifyRows, err)
	}
	if d, ok := rawDense(m); ok {
		floats.ScaleTo(d.rowSlice(dest), c, d.rowSlice(src))
		return nil
	}
	var x float64
	var err error
	for j := 0; j < m.Cols(); j++ {
		if x, err = m.At(src, j); err != nil {
			return matrixErrorf(opModifyRows, err)
		}
		if err = m.Set(dest, j, c*x); err != nil {
			return matrixErrorf(opModifyRows, err)
		}
	}

	return nil
}

// ModifyColumns sets column dest to c times column src, in place.
// Overwrites dest, like ModifyRows.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(r), Space O(1).
func ModifyColumns(m Matrix, dest, src int, c float64) error {
	if err := checkCols(m, dest, src); err != nil {
		return matrixErrorf(opModifyColumns, err)
	}
	if d, ok := rawDense(m); ok {
		dst := d.colVector(dest)
		if dest != src {
			blas64.Copy(d.colVector(src), dst)
		}
		blas64.Scal(c, dst)
		return nil
	}
	var x float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		if x, err = m.At(i, src); err != nil {
			return matrixErrorf(opModifyColumns, err)
		}
		if err = m.Set(i, dest, c*x); err != nil {
			return matrixErrorf(opModifyColumns, err)
		}
	}

	return nil
}

// SumRows is ModifyRows(m, dest, src, 1): row dest becomes a copy of row src.
func SumRows(m Matrix, src, dest int) error { return ModifyRows(m, dest, src, 1) }

// RestRows is ModifyRows(m, dest, src, -1): row dest becomes -row src.
func RestRows(m Matrix, src, dest int) error { return ModifyRows(m, dest, src, -1) }

// SumColumns is ModifyColumns(m, dest, src, 1).
func SumColumns(m Matrix, src, dest int) error { return ModifyColumns(m, dest, src, 1) }

// RestColumns is ModifyColumns(m, dest, src, -1).
func RestColumns(m Matrix, src, dest int) error { return ModifyColumns(m, dest, src, -1) }

// AddScaledRow performs the elimination step row[dest] += c*row[src] in place.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func AddScaledRow(m Matrix, dest, src int, c float64) error {
	if err := checkRows(m, dest, src); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	if d, ok := rawDense(m); ok {
		floats.AddScaled(d.rowSlice(dest), c, d.rowSlice(src))
		return nil
	}
	var x, y float64
	var err error
	for j := 0; j < m.Cols(); j++ {
		if x, err = m.At(src, j); err != nil {
			return matrixErrorf(opAddScaledRow, err)
		}
		if y, err = m.At(dest, j); err != nil {
			return matrixErrorf(opAddScaledRow, err)
		}
		if err = m.Set(dest, j, y+c*x); err != nil {
			return matrixErrorf(opAddScaledRow, err)
		}
	}

	return nil
}

// AddScaledColumn performs col[dest] += c*col[src] in place.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func AddScaledColumn(m Matrix, dest, src int, c float64) error {
	if err := checkCols(m, dest, src); err != nil {
		return matrixErrorf(opAddScaledColumn, err)
	}
	if d, ok := rawDense(m); ok {
		blas64.Axpy(c, d.colVector(src), d.colVector(dest))
		return nil
	}
	var x, y float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		if x, err = m.At(i, src); err != nil {
			return matrixErrorf(opAddScaledColumn, err)
		}
		if y, err = m.At(i, dest); err != nil {
			return matrixErrorf(opAddScaledColumn, err)
		}
		if err = m.Set(i, dest, y+c*x); err != nil {
			return matrixErrorf(opAddScaledColumn, err)
		}
	}

	return nil
}
