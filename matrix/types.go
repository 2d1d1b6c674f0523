// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the fixed-size value types, the LinearAlgebra
// contract every square size satisfies, and the shared numeric constants.
// Kernels live in vector.go and mat*.go; errors in errors.go.
package matrix

// MachineEpsilon is the float64 epsilon (2^-52). Inverse reports ErrSingular
// when |det| <= MachineEpsilon·Π‖row_i‖ (Hadamard bound of the matrix).
const MachineEpsilon = 0x1p-52

// ZeroSum is the initial accumulator for dot products, traces and norms.
const ZeroSum = 0.0

// Operation tags for uniform error wrapping.
const (
	opSubMatrix   = "SubMatrix"
	opInverse     = "Inverse"
	opCross       = "CrossSlices"
	opFromSlice   = "FromSlice"
	opFromDense   = "FromDense"
	opCondition   = "ConditionNumber"
	opValidateIdx = "ValidateIndex"
)

// Vec2 is a 2-component vector. The array literal is its constructor and the
// zero value is the additive identity.
type Vec2 [2]float64

// Vec3 is a 3-component vector.
type Vec3 [3]float64

// Vec4 is a 4-component vector.
type Vec4 [4]float64

// Vec5 is a 5-component vector.
type Vec5 [5]float64

// Vec6 is a 6-component vector.
type Vec6 [6]float64

// Mat2 is a 2×2 matrix stored row-major: m[i][j] is row i, column j.
type Mat2 [2][2]float64

// Mat3 is a 3×3 matrix stored row-major.
type Mat3 [3][3]float64

// Mat4 is a 4×4 matrix stored row-major.
type Mat4 [4][4]float64

// Mat5 is a 5×5 matrix stored row-major.
type Mat5 [5][5]float64

// Mat6 is a 6×6 matrix stored row-major.
type Mat6 [6][6]float64

// Square is the non-generic part of the LinearAlgebra contract: everything
// that reduces a matrix to scalars. It lets helpers accept any size without
// knowing the concrete type (e.g. transform.Vex, ToDense).
//
// Complexity notes: Rows/Cols/Shape/At are O(1); Trace O(N); Norm2 O(N²);
// Det is closed form for N ≤ 3 and cofactor expansion above.
type Square interface {
	// Rows returns the number of rows (N).
	Rows() int

	// Cols returns the number of columns (N).
	Cols() int

	// Shape returns (Rows, Cols).
	Shape() (int, int)

	// At returns element (i, j). Indices must lie in [0, N); the fixed array
	// bound panics otherwise, as with any Go array.
	At(i, j int) float64

	// Trace returns the sum of the diagonal.
	Trace() float64

	// Norm2 returns the Frobenius norm.
	Norm2() float64

	// Det returns the determinant. It never fails.
	Det() float64
}

// LinearAlgebra is the common contract of every square matrix size.
// M is the concrete matrix type, so Transpose and Inverse stay value-typed:
//
//	var _ LinearAlgebra[Mat3] = Mat3{}
//
// Generic consumers (InverseOf, ConditionNumber, ...) are written against
// this interface instead of a particular size.
type LinearAlgebra[M any] interface {
	Square

	// Transpose returns mᵀ. Involutive and exact.
	Transpose() M

	// Inverse returns m⁻¹ or ErrSingular when |det| <= MachineEpsilon·Π‖row_i‖.
	Inverse() (M, error)
}

// Compile-time checks: every size satisfies the contract.
var (
	_ LinearAlgebra[Mat2] = Mat2{}
	_ LinearAlgebra[Mat3] = Mat3{}
	_ LinearAlgebra[Mat4] = Mat4{}
	_ LinearAlgebra[Mat5] = Mat5{}
	_ LinearAlgebra[Mat6] = Mat6{}
)
