// SPDX-License-Identifier: MIT
// Package transform — ZYZ Euler angles.
//
// Convention:
//   - R = Rz(phi) · Ry(theta) · Rz(psi), all angles in degrees.
//   - EulerFromRotation returns theta in [0°, 180°], phi and psi in (−180°, 180°].
//
// Gimbal lock:
//   - When sin(theta) = 0 (theta = 0° or 180°), only phi ± psi is observable.
//     The decomposition then fixes phi = 0 and folds the whole in-plane
//     rotation into psi. The triple returned is a valid representative,
//     not the angles the matrix was built from.

package transform

import (
	"math"

	"github.com/katalvlaran/kinematrix/matrix"
)

// EulerZYZ composes Rz(phi)·Ry(theta)·Rz(psi) (degrees).
func EulerZYZ(phi, theta, psi float64) matrix.Mat3 {
	return RotZ(phi).Mul(RotY(theta)).Mul(RotZ(psi))
}

// EulerFromRotation decomposes r into ZYZ angles (degrees).
//
// Implementation:
//   - Stage 1: if |r[0][2]| <= eps and |r[1][2]| <= eps the third column is
//     ±e_z and the axes of the two z rotations coincide (gimbal lock):
//     phi = 0, theta = atan2(0, r[2][2]) ∈ {0°, 180°},
//     psi = atan2(r[1][0], r[0][0]) for theta = 0°,
//     psi = atan2(r[1][0], −r[0][0]) for theta = 180°.
//   - Stage 2 (regular): phi = atan2(r[1][2], r[0][2]); theta and psi are then
//     read from r after undoing Rz(phi):
//     theta = atan2(cφ·r[0][2] + sφ·r[1][2], r[2][2]),
//     psi   = atan2(−sφ·r[0][0] + cφ·r[1][0], −sφ·r[0][1] + cφ·r[1][1]).
//
// Inputs:
//   - r: a rotation matrix (not validated; see IsRotation).
//   - opts: WithEpsilon to change the gimbal-lock tolerance.
//
// Notes:
//   - Not a round-trip inverse of EulerZYZ at the singularity; see package doc.
func EulerFromRotation(r matrix.Mat3, opts ...Option) (phi, theta, psi float64) {
	eps := gatherOptions(opts...).eps

	if math.Abs(r[0][2]) <= eps && math.Abs(r[1][2]) <= eps {
		theta = math.Atan2(0, r[2][2])
		if r[2][2] > 0 {
			psi = math.Atan2(r[1][0], r[0][0])
		} else {
			psi = math.Atan2(r[1][0], -r[0][0])
		}

		return 0, degrees(theta), degrees(psi)
	}

	phi = math.Atan2(r[1][2], r[0][2])
	sp, cp := math.Sincos(phi)
	theta = math.Atan2(cp*r[0][2]+sp*r[1][2], r[2][2])
	psi = math.Atan2(-sp*r[0][0]+cp*r[1][0], -sp*r[0][1]+cp*r[1][1])

	return degrees(phi), degrees(theta), degrees(psi)
}
