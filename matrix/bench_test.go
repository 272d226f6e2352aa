// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pivot/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV *matrix.Vector
	sinkF float64
	sinkE error
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 1337)
			B := RandFilledDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("dense/n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 1)
			B := RandFilledDense(b, n, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
		b.Run(fmt.Sprintf("fallback/n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 1)
			B := RandFilledDense(b, n, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(hide{A}, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 7)
			x := RandVector(b, n, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandVector(b, n, 3)
			y := RandVector(b, n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := x.Dot(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkAddScaledRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = matrix.AddScaledRow(A, i%n, (i+1)%n, 1e-9)
			}
		})
	}
}

func BenchmarkInterchangeColumns(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 10)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = matrix.InterchangeColumns(A, 0, n-1)
			}
		})
	}
}
