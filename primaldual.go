// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package odl provides first-order primal-dual algorithms for non-smooth
// convex optimization, together with the linear-operator and
// proximal-operator plumbing they need.
//
// The central entry point is ChambollePock, which solves saddle-point
// problems of the form
//  min_x max_y <Kx,y> + G(x) - F*(y),
// where K is a linear operator between two finite-dimensional spaces and
// G and F* enter only through their proximal operators.
package odl

import (
	"errors"
	"time"
)

var (
	// ErrShape is returned when the dimensions of an operator, a vector
	// or a preconditioner do not match.
	ErrShape = errors.New("odl: dimension mismatch")

	// ErrStepSize is returned when a step size that must be positive
	// is not.
	ErrStepSize = errors.New("odl: step size not positive")
)

// Prox applies a proximal operator with the given step size, storing the
// result into dst. Given a proper convex functional f, the proximal
// operator maps v to the unique minimizer of
//  f(z) + |z-v|^2/(2*step).
// dst and v must have the same length. dst may alias v, that is, a Prox
// must be safe to apply in place.
type Prox func(dst, v []float64, step float64)

// Settings holds the parameters of a primal-dual solve.
type Settings struct {
	// Tau is the primal step size. It
	// must be positive.
	Tau float64

	// Sigma is the dual step size. It
	// must be positive. Together with
	// Tau it must satisfy
	//  Tau * Sigma * |K|^2 < 1,
	// where |K| is the operator norm of
	// the forward operator (see
	// PowerMethodOpnorm). The condition
	// is not checked, violating it
	// makes the iteration diverge.
	Sigma float64

	// MaxIterations is the number of
	// iterations to run. There is no
	// convergence-based early stop. If
	// it is not positive, no iterations
	// are performed and the initial
	// iterate is returned unchanged.
	MaxIterations int

	// PreconditionerDual optionally
	// rescales the dual update. When it
	// is non-nil, it is applied to
	// K*x_bar in place of the scalar
	// Sigma scaling, while the dual
	// proximal operator still receives
	// Sigma as its step. It must be a
	// self-adjoint positive operator on
	// the dual space, typically
	// Diagonal. The stability condition
	// becomes
	//  |P^1/2 * K * Tau^1/2|^2 * Sigma < 1.
	//
	// Because the dual proximal
	// operator still receives Sigma as
	// its step, a block of the
	// preconditioner acting on a
	// step-dependent proximal block
	// must equal Sigma times the
	// intended rescaling; otherwise
	// that block converges to a fixed
	// point scaled by P/Sigma relative
	// to the scalar-step solver. Blocks
	// whose proximal operator ignores
	// the step (projections) are
	// unaffected.
	PreconditionerDual *Op

	// Callback, if non-nil, is invoked
	// synchronously at the end of every
	// iteration with the iteration
	// index (starting at 0) and the
	// current primal iterate. The
	// callback must not modify or
	// retain x.
	Callback func(iteration int, x []float64)
}

// Stats holds statistics about a primal-dual solve.
type Stats struct {
	// Iterations is the number of
	// iterations performed.
	Iterations int
	// OpApply is the number of forward
	// and adjoint applications of the
	// operator.
	OpApply int
	// PrecondApply is the number of
	// applications of the dual
	// preconditioner.
	PrecondApply int
	// StartTime is an approximate time
	// when the solve was started.
	StartTime time.Time
	// Runtime is an approximate
	// duration of the solve.
	Runtime time.Duration
}

// Result holds the result of a primal-dual solve.
type Result struct {
	// X is the final primal iterate. It
	// is the same slice that was passed
	// to the solver.
	X []float64
	// Stats holds the statistics of the
	// solve.
	Stats Stats
}
