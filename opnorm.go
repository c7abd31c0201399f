// Copyright ©2018 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odl

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PowerMethodOpnorm estimates the operator norm (the largest singular
// value) of k by running iters iterations of the power method on K^T*K,
// normalizing the iterate each step. v is the starting vector, its length
// must be k.Cols and it must be non-zero. Components of v orthogonal to the
// dominant singular vector decay geometrically, so a few tens of iterations
// are usually sufficient.
//
// The result is deterministic given v and iters; there is no convergence
// tolerance, only the fixed iteration budget. v is not modified.
func PowerMethodOpnorm(k Op, iters int, v []float64) float64 {
	if k.Apply == nil || k.ApplyAdjoint == nil {
		panic("odl: nil operator application")
	}
	if len(v) != k.Cols {
		panic("odl: dimension mismatch")
	}
	if iters <= 0 {
		panic("odl: iteration count not positive")
	}

	u := make([]float64, k.Cols)
	copy(u, v)
	norm := floats.Norm(u, 2)
	if norm == 0 {
		panic("odl: zero start vector")
	}
	floats.Scale(1/norm, u)

	ku := make([]float64, k.Rows)
	w := make([]float64, k.Cols)
	// After normalization |K^T K u| is the Rayleigh estimate of the
	// largest eigenvalue of K^T K, that is, of |K|^2.
	var est float64
	for i := 0; i < iters; i++ {
		k.Apply(ku, u)
		k.ApplyAdjoint(w, ku)
		est = floats.Norm(w, 2)
		if est == 0 {
			return 0
		}
		floats.ScaleTo(u, 1/est, w)
	}
	return math.Sqrt(est)
}
