// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odl

import "math"

// ProxL2ConvexConjugate returns the proximal operator of the convex
// conjugate of the l2 data-fitting term
//  F(y) = 1/2 |y - g|_2^2.
// The proximal step with step size sigma is
//  prox(v) = (v - sigma*g) / (1 + sigma).
// The returned Prox keeps a reference to g.
func ProxL2ConvexConjugate(g []float64) Prox {
	return func(dst, v []float64, step float64) {
		checkDims(len(g), len(g), dst, v)
		for i, vi := range v {
			dst[i] = (vi - step*g[i]) / (1 + step)
		}
	}
}

// ProxL1ConvexConjugate returns the proximal operator of the convex
// conjugate of the isotropic l1-norm of a vector field scaled by lam,
//  F(y) = lam * | |y| |_1,
// where |y| is the pointwise euclidean magnitude across the components of
// the field. The conjugate is the indicator of the pointwise l2-ball of
// radius lam, so the proximal step is the projection onto that ball,
// independent of the step size.
//
// The field is stored component-major: the input consists of parts blocks
// of equal length, block p holding component p at every spatial point. This
// is the layout produced by Grad2D (parts=2) and Grad1D (parts=1).
func ProxL1ConvexConjugate(lam float64, parts int) Prox {
	if lam <= 0 {
		panic("odl: regularization parameter not positive")
	}
	if parts <= 0 {
		panic("odl: number of components not positive")
	}
	return func(dst, v []float64, step float64) {
		checkDims(len(v), len(v), dst, v)
		if len(v)%parts != 0 {
			panic("odl: dimension mismatch")
		}
		n := len(v) / parts
		for j := 0; j < n; j++ {
			var m2 float64
			for p := 0; p < parts; p++ {
				vi := v[p*n+j]
				m2 += vi * vi
			}
			scale := 1.0
			if m := math.Sqrt(m2); m > lam {
				scale = lam / m
			}
			for p := 0; p < parts; p++ {
				dst[p*n+j] = scale * v[p*n+j]
			}
		}
	}
}

// ProxNonnegativity returns the proximal operator of the indicator
// function of the non-negative cone. Negative entries are clipped to zero,
// non-negative input passes through unchanged. The step size is ignored.
func ProxNonnegativity() Prox {
	return func(dst, v []float64, step float64) {
		checkDims(len(v), len(v), dst, v)
		for i, vi := range v {
			dst[i] = math.Max(vi, 0)
		}
	}
}

// CombineProx returns the proximal operator on the direct-sum space that
// applies proxes[i] to the i-th block of length dims[i], each with the same
// step size and with no coupling across blocks. The block order must match
// the output order of the corresponding Stack operator. The lengths of
// proxes and dims must be equal.
func CombineProx(proxes []Prox, dims []int) Prox {
	if len(proxes) == 0 {
		panic("odl: empty proximal combination")
	}
	if len(proxes) != len(dims) {
		panic("odl: dimension mismatch")
	}
	total := 0
	for _, d := range dims {
		if d <= 0 {
			panic("odl: dimension not positive")
		}
		total += d
	}
	return func(dst, v []float64, step float64) {
		checkDims(total, total, dst, v)
		var off int
		for i, p := range proxes {
			p(dst[off:off+dims[i]], v[off:off+dims[i]], step)
			off += dims[i]
		}
	}
}
