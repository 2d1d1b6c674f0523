// Package kinematrix is a small-dimension linear algebra toolkit for
// robotics and rigid-body kinematics.
//
// 🚀 What is kinematrix?
//
//	A value-typed, allocation-free library that brings together:
//		• Fixed-size vectors Vec2..Vec6 and square matrices Mat2..Mat6
//		• Determinant, inverse, trace and norms for N = 2..6
//		• Elementary rotations, homogeneous poses, ZYZ Euler angles
//		• Axis-angle, skew-symmetric / vex and quaternion conversions
//
// ✨ Why choose kinematrix?
//
//   - Sizes are types: a 4×4 pose cannot be multiplied by a 3-vector
//   - Singular inverses are reported, never panicked on
//   - gonum and golang/geo interop at the boundary
//
// Packages:
//
//	matrix/         — VecN / MatN, the LinearAlgebra contract, errors, interop
//	transform/      — rotations, poses, Euler, skew, quaternions
//	cmd/kinematrix/ — CLI: build a ZYZ rotation and print its properties
//	internal/       — environment config and zap logging for the CLI
//
// Quick example:
//
//	r := transform.EulerZYZ(90, 30, 30)
//	phi, theta, psi := transform.EulerFromRotation(r) // 90, 30, 30
//
//	go get github.com/katalvlaran/kinematrix
package kinematrix
