// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odl

import (
	"time"

	"gonum.org/v1/gonum/floats"
)

// cpState holds the iterate buffers of a Chambolle-Pock solve. The buffers
// are owned exclusively by the running call and released at exit.
type cpState struct {
	y    []float64 // dual iterate
	xbar []float64 // over-relaxed primal iterate
	xnew []float64 // updated primal iterate
	kx   []float64 // K*x_bar, then the scaled dual increment
	pkx  []float64 // preconditioned K*x_bar, allocated only when needed
	kty  []float64 // K^T*y
}

func newCPState(rows, cols int, x []float64, precond bool) *cpState {
	s := &cpState{
		y:    make([]float64, rows),
		xbar: make([]float64, cols),
		xnew: make([]float64, cols),
		kx:   make([]float64, rows),
		kty:  make([]float64, cols),
	}
	copy(s.xbar, x)
	if precond {
		s.pkx = make([]float64, rows)
	}
	return s
}

// ChambollePock solves the saddle-point problem
//  min_x max_y <Kx,y> + G(x) - F*(y)
// with the primal-dual algorithm of Chambolle and Pock. The functionals G
// and F* enter only through their proximal operators proxPrimal and
// proxDual, applied with steps settings.Tau and settings.Sigma.
//
// Each iteration performs
//  y      = proxDual(y + sigma*K*x_bar, sigma)
//  x_new  = proxPrimal(x - tau*K^T*y, tau)
//  x_bar  = 2*x_new - x
//  x      = x_new,
// with y and x_bar initialized to zero and to the initial x. When
// settings.PreconditionerDual is non-nil it is applied to K*x_bar in place
// of the scalar sigma scaling. The relaxation parameter is fixed at one.
//
// x is the initial primal iterate. It is mutated in place and the final
// iterate is returned in Result.X, which is the same slice. The length of x
// must equal k.Cols, otherwise ErrShape is returned. The step sizes must be
// positive, otherwise ErrStepSize is returned. k.Apply and k.ApplyAdjoint
// must be non-nil.
//
// The iteration runs for exactly settings.MaxIterations iterations, there
// is no convergence test. Convergence requires
//  tau * sigma * |K|^2 < 1,
// which is the caller's responsibility; the solver does not detect
// divergence.
func ChambollePock(k Op, x []float64, proxPrimal, proxDual Prox, settings Settings) (Result, error) {
	stats := Stats{StartTime: time.Now()}

	if k.Apply == nil {
		panic("odl: nil operator application")
	}
	if k.ApplyAdjoint == nil {
		panic("odl: nil adjoint application")
	}
	if len(x) != k.Cols {
		return Result{X: x, Stats: stats}, ErrShape
	}
	p := settings.PreconditionerDual
	if p != nil && (p.Rows != k.Rows || p.Cols != k.Rows) {
		return Result{X: x, Stats: stats}, ErrShape
	}

	if settings.MaxIterations <= 0 {
		stats.Runtime = time.Since(stats.StartTime)
		return Result{X: x, Stats: stats}, nil
	}
	if settings.Tau <= 0 || settings.Sigma <= 0 {
		return Result{X: x, Stats: stats}, ErrStepSize
	}

	tau := settings.Tau
	sigma := settings.Sigma
	s := newCPState(k.Rows, k.Cols, x, p != nil)
	for i := 0; i < settings.MaxIterations; i++ {
		// y_i = prox_{sigma F*}(y_{i-1} + sigma K x_bar)
		k.Apply(s.kx, s.xbar)
		stats.OpApply++
		if p != nil {
			p.Apply(s.pkx, s.kx)
			stats.PrecondApply++
			floats.Add(s.y, s.pkx)
		} else {
			floats.Scale(sigma, s.kx)
			floats.Add(s.y, s.kx)
		}
		proxDual(s.y, s.y, sigma)

		// x_i = prox_{tau G}(x_{i-1} - tau K^T y_i)
		k.ApplyAdjoint(s.kty, s.y)
		stats.OpApply++
		floats.AddScaledTo(s.xnew, x, -tau, s.kty)
		proxPrimal(s.xnew, s.xnew, tau)

		// x_bar = x_i + (x_i - x_{i-1})
		floats.AddScaledTo(s.xbar, s.xnew, -1, x)
		floats.Add(s.xbar, s.xnew)

		copy(x, s.xnew)
		stats.Iterations++
		if settings.Callback != nil {
			settings.Callback(i, x)
		}
	}

	stats.Runtime = time.Since(stats.StartTime)
	return Result{X: x, Stats: stats}, nil
}
