// SPDX-License-Identifier: MIT
// Package transform — quaternion bridge (gonum num/quat).
//
// quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z} represents w + xi + yj + zk.
// Unit quaternions q and −q describe the same rotation; Quaternion returns the
// one produced by the branch below, normalized to unit length.

package transform

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/kinematrix/matrix"
)

// Quaternion converts a rotation matrix to a unit quaternion.
//
// Implementation:
//   - Branch on the trace to keep the pivot term (4w², 4x², 4y² or 4z²) large,
//     which avoids dividing by a near-zero root.
//   - Normalize with quat.Abs so small drift in r does not leak out.
func Quaternion(r matrix.Mat3) quat.Number {
	var q quat.Number
	switch tr := r.Trace(); {
	case tr > 0:
		s := 0.5 / math.Sqrt(tr+1)
		q = quat.Number{
			Real: 0.25 / s,
			Imag: (r[2][1] - r[1][2]) * s,
			Jmag: (r[0][2] - r[2][0]) * s,
			Kmag: (r[1][0] - r[0][1]) * s,
		}
	case r[0][0] > r[1][1] && r[0][0] > r[2][2]:
		s := 2 * math.Sqrt(1+r[0][0]-r[1][1]-r[2][2])
		q = quat.Number{
			Real: (r[2][1] - r[1][2]) / s,
			Imag: 0.25 * s,
			Jmag: (r[0][1] + r[1][0]) / s,
			Kmag: (r[0][2] + r[2][0]) / s,
		}
	case r[1][1] > r[2][2]:
		s := 2 * math.Sqrt(1+r[1][1]-r[0][0]-r[2][2])
		q = quat.Number{
			Real: (r[0][2] - r[2][0]) / s,
			Imag: (r[0][1] + r[1][0]) / s,
			Jmag: 0.25 * s,
			Kmag: (r[1][2] + r[2][1]) / s,
		}
	default:
		s := 2 * math.Sqrt(1+r[2][2]-r[0][0]-r[1][1])
		q = quat.Number{
			Real: (r[1][0] - r[0][1]) / s,
			Imag: (r[0][2] + r[2][0]) / s,
			Jmag: (r[1][2] + r[2][1]) / s,
			Kmag: 0.25 * s,
		}
	}

	return quat.Scale(1/quat.Abs(q), q)
}

// RotationFromQuaternion converts q (normalized first) to a rotation matrix.
// The zero quaternion maps to the identity.
func RotationFromQuaternion(q quat.Number) matrix.Mat3 {
	n := quat.Abs(q)
	if n == 0 {
		return matrix.Identity3()
	}
	q = quat.Scale(1/n, q)
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	return matrix.Mat3{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}
}
