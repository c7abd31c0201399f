// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stencil provides a small dense matrix used by tests to
// cross-check operator implementations against their explicit matrices.
package stencil

type Dense struct {
	rows, cols int
	data       []float64
}

func New(r, c int) *Dense {
	if r <= 0 || c <= 0 {
		panic("dimension not positive")
	}
	return &Dense{
		rows: r,
		cols: c,
		data: make([]float64, r*c),
	}
}

// SetCol stores v as the j-th column. It is used to assemble the explicit
// matrix of an operator from its application to basis vectors.
func (m *Dense) SetCol(j int, v []float64) {
	if j < 0 || m.cols <= j {
		panic("column index out of range")
	}
	if len(v) != m.rows {
		panic("dimension mismatch")
	}
	for i, vi := range v {
		m.data[i*m.cols+j] = vi
	}
}

func (m *Dense) MulVec(dst, x []float64) {
	if m.cols != len(x) {
		panic("dimension mismatch")
	}
	if m.rows != len(dst) {
		panic("dimension mismatch")
	}
	for i := 0; i < m.rows; i++ {
		var v float64
		for j, xj := range x {
			v += m.data[i*m.cols+j] * xj
		}
		dst[i] = v
	}
}

func (m *Dense) MulTransVec(dst, x []float64) {
	if m.cols != len(dst) {
		panic("dimension mismatch")
	}
	if m.rows != len(x) {
		panic("dimension mismatch")
	}
	for j := range dst {
		dst[j] = 0
	}
	for i, xi := range x {
		for j := range dst {
			dst[j] += m.data[i*m.cols+j] * xi
		}
	}
}
