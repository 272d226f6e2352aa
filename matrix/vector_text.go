// SPDX-License-Identifier: MIT

// Package matrix - textual round-trip for vectors.
//
// Format:
//
//	(v0, v1, ..., vn-1)
//
// Scalars use strconv.FormatFloat(x, 'g', -1, 64), the shortest text that
// parses back to the identical float64, so ParseVector(v.String()) is exact.
// Matrices render as a tuple of row tuples and have no parser.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Vector text literals ----------

const (
	_tupleOpen  = '('
	_tupleClose = ')'
	_tupleSep   = ","
	_floatFmt   = 'g'
	_floatPrec  = -1
	_floatBits  = 64

	// _nonDecimal lists runes strconv.ParseFloat accepts but FormatFloat with
	// 'g' never emits: hex mantissas and digit separators.
	_nonDecimal = "xX_"
)

// writeTuple appends "(v0, v1, ...)" to b.
func writeTuple(b *strings.Builder, values []float64) {
	b.WriteByte(_tupleOpen)
	for i, x := range values {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatFloat(x, _floatFmt, _floatPrec, _floatBits))
	}
	b.WriteByte(_tupleClose)
}

// String renders v as "(v0, v1, ..., vn-1)".
func (v *Vector) String() string {
	var b strings.Builder
	writeTuple(&b, v.data)

	return b.String()
}

// ParseVector is the inverse of (*Vector).String.
// Surrounding whitespace and whitespace around components are ignored.
// Components are decimal literals; "inf", "-Inf" and "NaN" are accepted as
// strconv.ParseFloat accepts them. Hex floats ("0x1p-2") and underscore
// separators ("1_0") are rejected.
//
// Errors:
//   - ErrParse when the text does not start with '(' and end with ')', when a
//     component is empty (including "()"), or when a component is not a
//     decimal number.
//
// Complexity: Time O(len(s)), Space O(n).
func ParseVector(s string) (*Vector, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != _tupleOpen || s[len(s)-1] != _tupleClose {
		return nil, fmt.Errorf("ParseVector(%q): missing parentheses: %w", s, ErrParse)
	}
	parts := strings.Split(s[1:len(s)-1], _tupleSep)
	data := make([]float64, len(parts))
	for i, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			return nil, fmt.Errorf("ParseVector(%q): empty component %d: %w", s, i, ErrParse)
		}
		if strings.ContainsAny(token, _nonDecimal) {
			return nil, fmt.Errorf("ParseVector(%q): component %d is not decimal: %w", s, i, ErrParse)
		}
		x, err := strconv.ParseFloat(token, _floatBits)
		if err != nil {
			return nil, fmt.Errorf("ParseVector(%q): component %d: %w", s, i, ErrParse)
		}
		data[i] = x
	}

	return &Vector{data: data}, nil
}
