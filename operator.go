// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odl

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Op describes a linear operator K between two finite-dimensional real
// vector spaces in terms of K*x and K^T*y operations.
type Op struct {
	// Rows and Cols are the dimensions
	// of the range and the domain of
	// the operator.
	Rows, Cols int

	// Apply computes K*x and stores the
	// result into dst. The length of
	// dst must be Rows and the length
	// of x must be Cols.
	// It must be non-nil.
	Apply func(dst, x []float64)

	// ApplyAdjoint computes K^T*y and
	// stores the result into dst. The
	// length of dst must be Cols and
	// the length of y must be Rows.
	// It must be non-nil.
	ApplyAdjoint func(dst, y []float64)
}

// Identity returns the identity operator on an n-dimensional space.
func Identity(n int) Op {
	if n <= 0 {
		panic("odl: dimension not positive")
	}
	cp := func(dst, x []float64) {
		checkDims(n, n, dst, x)
		copy(dst, x)
	}
	return Op{Rows: n, Cols: n, Apply: cp, ApplyAdjoint: cp}
}

// Scaled returns the operator c*K.
func Scaled(c float64, k Op) Op {
	return Op{
		Rows: k.Rows,
		Cols: k.Cols,
		Apply: func(dst, x []float64) {
			k.Apply(dst, x)
			floats.Scale(c, dst)
		},
		ApplyAdjoint: func(dst, y []float64) {
			k.ApplyAdjoint(dst, y)
			floats.Scale(c, dst)
		},
	}
}

// Diagonal returns the self-adjoint operator that multiplies elementwise by
// d. The returned Op keeps a reference to d.
func Diagonal(d []float64) Op {
	n := len(d)
	if n == 0 {
		panic("odl: dimension not positive")
	}
	mul := func(dst, x []float64) {
		checkDims(n, n, dst, x)
		for i, di := range d {
			dst[i] = di * x[i]
		}
	}
	return Op{Rows: n, Cols: n, Apply: mul, ApplyAdjoint: mul}
}

// Matrix returns the operator represented by the matrix a.
func Matrix(a mat.Matrix) Op {
	r, c := a.Dims()
	return Op{
		Rows: r,
		Cols: c,
		Apply: func(dst, x []float64) {
			checkDims(r, c, dst, x)
			mat.NewVecDense(r, dst).MulVec(a, mat.NewVecDense(c, x))
		},
		ApplyAdjoint: func(dst, y []float64) {
			checkDims(c, r, dst, y)
			mat.NewVecDense(c, dst).MulVec(a.T(), mat.NewVecDense(r, y))
		},
	}
}

// Stack returns the column operator
//  K = (K_1, K_2, ..., K_m)^T
// that applies every K_i to the same input and concatenates the results.
// The adjoint splits its input accordingly and sums the individual adjoint
// contributions. All operators must have the same domain dimension.
func Stack(ops ...Op) Op {
	if len(ops) == 0 {
		panic("odl: empty operator stack")
	}
	cols := ops[0].Cols
	rows := 0
	for _, op := range ops {
		if op.Cols != cols {
			panic("odl: dimension mismatch")
		}
		rows += op.Rows
	}
	return Op{
		Rows: rows,
		Cols: cols,
		Apply: func(dst, x []float64) {
			checkDims(rows, cols, dst, x)
			var off int
			for _, op := range ops {
				op.Apply(dst[off:off+op.Rows], x)
				off += op.Rows
			}
		},
		ApplyAdjoint: func(dst, y []float64) {
			checkDims(cols, rows, dst, y)
			for i := range dst {
				dst[i] = 0
			}
			tmp := make([]float64, cols)
			var off int
			for _, op := range ops {
				op.ApplyAdjoint(tmp, y[off:off+op.Rows])
				floats.Add(dst, tmp)
				off += op.Rows
			}
		},
	}
}

// Grad1D returns the forward-difference gradient operator on a uniform
// 1-D grid of n points with zero padding beyond the right boundary,
//  (K x)_i = x_{i+1} - x_i,  i < n-1,
//  (K x)_{n-1} = -x_{n-1}.
func Grad1D(n int) Op {
	if n <= 0 {
		panic("odl: dimension not positive")
	}
	return Op{
		Rows: n,
		Cols: n,
		Apply: func(dst, x []float64) {
			checkDims(n, n, dst, x)
			for i := 0; i < n-1; i++ {
				dst[i] = x[i+1] - x[i]
			}
			dst[n-1] = -x[n-1]
		},
		ApplyAdjoint: func(dst, y []float64) {
			checkDims(n, n, dst, y)
			dst[0] = -y[0]
			for i := 1; i < n; i++ {
				dst[i] = y[i-1] - y[i]
			}
		},
	}
}

// Grad2D returns the forward-difference gradient operator on a uniform
// rows×cols 2-D grid stored in row-major order. The output has two
// component blocks of length rows*cols, the vertical differences followed
// by the horizontal ones, the layout expected by ProxL1ConvexConjugate
// with two parts. Zero padding is used beyond the grid.
func Grad2D(rows, cols int) Op {
	if rows <= 0 || cols <= 0 {
		panic("odl: dimension not positive")
	}
	n := rows * cols
	return Op{
		Rows: 2 * n,
		Cols: n,
		Apply: func(dst, x []float64) {
			checkDims(2*n, n, dst, x)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					c := i*cols + j
					if i < rows-1 {
						dst[c] = x[c+cols] - x[c]
					} else {
						dst[c] = -x[c]
					}
					if j < cols-1 {
						dst[n+c] = x[c+1] - x[c]
					} else {
						dst[n+c] = -x[c]
					}
				}
			}
		},
		ApplyAdjoint: func(dst, y []float64) {
			checkDims(n, 2*n, dst, y)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					c := i*cols + j
					v := -y[c] - y[n+c]
					if i > 0 {
						v += y[c-cols]
					}
					if j > 0 {
						v += y[n+c-1]
					}
					dst[c] = v
				}
			}
		},
	}
}

func checkDims(nDst, nSrc int, dst, src []float64) {
	if len(dst) != nDst {
		panic("odl: dimension mismatch")
	}
	if len(src) != nSrc {
		panic("odl: dimension mismatch")
	}
}
