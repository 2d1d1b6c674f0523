// SPDX-License-Identifier: MIT
// Package transform — elementary rotations and homogeneous poses.
//
// Conventions:
//   - Angles are in DEGREES at the API surface and converted once to radians.
//   - Right-handed frames; rotation matrices act on column vectors (R·v).
//   - Homogeneous transforms are matrix.Mat4 with the rotation in the top-left
//     3×3 block, translation in column 3 and [0 0 0 1] as the last row.

package transform

import (
	"math"

	"github.com/katalvlaran/kinematrix/matrix"
)

// radians converts degrees to radians.
func radians(deg float64) float64 { return deg * math.Pi / 180 }

// degrees converts radians to degrees.
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// RotX returns the rotation by angle degrees about the x axis:
//
//	[1  0   0]
//	[0  c  −s]
//	[0  s   c]
func RotX(angle float64) matrix.Mat3 {
	s, c := math.Sincos(radians(angle))

	return matrix.Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotY returns the rotation by angle degrees about the y axis:
//
//	[ c  0  s]
//	[ 0  1  0]
//	[−s  0  c]
func RotY(angle float64) matrix.Mat3 {
	s, c := math.Sincos(radians(angle))

	return matrix.Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotZ returns the rotation by angle degrees about the z axis:
//
//	[c  −s  0]
//	[s   c  0]
//	[0   0  1]
func RotZ(angle float64) matrix.Mat3 {
	s, c := math.Sincos(radians(angle))

	return matrix.Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Rot2 returns the planar rotation by angle degrees.
func Rot2(angle float64) matrix.Mat2 {
	s, c := math.Sincos(radians(angle))

	return matrix.Mat2{
		{c, -s},
		{s, c},
	}
}

// Homogeneous embeds r into a 4×4 transform with zero translation.
func Homogeneous(r matrix.Mat3) matrix.Mat4 {
	return Pose(r, matrix.Vec3{})
}

// Pose builds the homogeneous transform [r p; 0 1].
func Pose(r matrix.Mat3, p matrix.Vec3) matrix.Mat4 {
	t := matrix.Identity4()
	for i := range r {
		copy(t[i][:3], r[i][:])
		t[i][3] = p[i]
	}

	return t
}

// Decompose splits a homogeneous transform into rotation and translation.
// The bottom row of t is ignored.
func Decompose(t matrix.Mat4) (matrix.Mat3, matrix.Vec3) {
	var (
		r matrix.Mat3
		p matrix.Vec3
	)
	for i := range r {
		copy(r[i][:], t[i][:3])
		p[i] = t[i][3]
	}

	return r, p
}

// RotationFromAxisAngle returns the rotation by theta degrees about axis
// (Rodrigues' formula):
//
//	R = I + sin θ·K + (1 − cos θ)·K²,  K = Skew3(axis)
//
// Notes:
//   - axis is NOT normalized; a non-unit axis yields a non-orthonormal result.
//     Check axis.Norm2() upstream when the source is not trusted.
func RotationFromAxisAngle(theta float64, axis matrix.Vec3) matrix.Mat3 {
	s, c := math.Sincos(radians(theta))
	k := Skew3(axis)

	return matrix.Identity3().Add(k.Scale(s)).Add(k.Mul(k).Scale(1 - c))
}

// IsRotation reports whether det(r) and det(r·r) are both within eps of 1.
// It is a property check, not a constructor guard.
//
// Notes:
//   - det(r·r) = det(r)², so scaled matrices with det 1 (e.g. diag(2, ½, 1))
//     pass. Use IsOrthonormal when orthogonality itself matters.
func IsRotation(r matrix.Mat3, opts ...Option) bool {
	eps := gatherOptions(opts...).eps

	return math.Abs(r.Det()-1) <= eps && math.Abs(r.Mul(r).Det()-1) <= eps
}

// IsOrthonormal reports whether r·rᵀ ≈ I and det(r) ≈ +1 within eps, i.e. r
// belongs to SO(3).
func IsOrthonormal(r matrix.Mat3, opts ...Option) bool {
	eps := gatherOptions(opts...).eps

	return r.Mul(r.Transpose()).ApproxEqual(matrix.Identity3(), eps) && math.Abs(r.Det()-1) <= eps
}
