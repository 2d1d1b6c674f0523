// SPDX-License-Identifier: MIT

// Package transform: functional configuration for the numeric policy of the
// rigid-body helpers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - eps drives the Euler gimbal-lock test and the IsRotation/IsOrthonormal
//     checks. It does NOT change matrix.Inverse, whose singularity threshold
//     is always matrix.MachineEpsilon scaled by the matrix magnitude.
package transform

import "math"

// DefaultEpsilon is the tolerance for structural checks on rotation matrices.
// Rotations assembled from float64 trigonometry are orthonormal to ~1e-15,
// so 1e-9 accepts them while still rejecting visibly scaled matrices.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "transform: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the tolerance used by the gimbal-lock test and the
// rotation validity checks.
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or ±Inf.
//
// AI-Hints:
//   - Loosen (e.g. 1e-6) for rotations read from sensors or float32 sources.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts over the defaults. Exposed for callers that want
// to inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
