// Package matrix provides fixed-size, value-typed linear algebra for small
// dimensions: vectors Vec2..Vec6 and square matrices Mat2..Mat6.
//
// What is inside:
//
//   - Arithmetic: Add, Sub, Scale, Mul (matrix·matrix), MulVec (matrix·column
//     vector), MulMat (row vector·matrix), Dot, Cross (Vec3).
//   - Reductions: Trace, Norm2 (Euclidean / Frobenius), Det.
//   - Inverse: closed form for 2×2 and 3×3, adjugate over minors for 4×4..6×6.
//     It is the only failing operation of the algebra and returns ErrSingular
//     when |det| <= MachineEpsilon·Π‖row_i‖, the Hadamard bound scaled to
//     float64 precision.
//   - LinearAlgebra[M]: the contract every size satisfies, so helpers such as
//     InverseOf or ConditionNumber are written once.
//   - Interop: ToDense / MatNFromDense (gonum), Vec3.R3 / Vec3FromR3 (golang/geo).
//
// Values are plain Go arrays: an array literal constructs one, the zero value is
// the zero matrix, and every method has a value receiver and returns a new
// value. Nothing allocates on the heap except the slice/gonum boundary, and all
// values are safe to share between goroutines.
//
//	m := matrix.Mat3{{1, 0, 3}, {2, 1, 6}, {1, 0, 9}}
//	inv, err := m.Inverse()
//	if errors.Is(err, matrix.ErrSingular) {
//		// handle
//	}
//	_ = m.Mul(inv) // ≈ matrix.Identity3()
//
// Size choice is a compile-time decision; there is no dynamic matrix.
package matrix
