// Package transform builds and decomposes rigid-body rotations on top of the
// fixed-size types of package matrix.
//
// What is inside:
//
//   - Elementary rotations RotX / RotY / RotZ (3-D) and Rot2 (planar). Angles are
//     degrees.
//   - Homogeneous transforms: Homogeneous (rotation only), Pose (rotation and
//     translation), Decompose.
//   - ZYZ Euler angles: EulerZYZ and EulerFromRotation, with an explicit
//     gimbal-lock branch that fixes phi = 0.
//   - Axis-angle (Rodrigues) via RotationFromAxisAngle.
//   - Skew-symmetric matrices (Skew3, Skew2, Skew, SkewFromSlice) and their
//     inverse, the vex operator (Vex3, Vex2, Vex).
//   - Quaternion conversion through gonum's num/quat.
//   - Property checks IsRotation and IsOrthonormal.
//
// Numeric policy:
//
// Structural checks compare against an epsilon that defaults to DefaultEpsilon
// and can be changed per call with WithEpsilon:
//
//	phi, theta, psi := transform.EulerFromRotation(r, transform.WithEpsilon(1e-6))
//
// All functions are pure; none of them logs, allocates on the heap (except the
// slice-returning Vex) or holds state.
package transform
