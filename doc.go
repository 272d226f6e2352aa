// Package pivot is a dense, finite-dimensional linear-algebra primitive
// library over float64.
//
// Everything lives in the matrix subpackage:
//
//	matrix    Vector, the Matrix interface, *Dense, arithmetic kernels,
//	          minors/permutations and in-place elimination primitives
//	examples  runnable programs composing the primitives (Gaussian elimination)
//
// Pure Go on top of gonum's BLAS; no cgo, no global state.
//
//	go get github.com/katalvlaran/pivot/matrix
package pivot
