// SPDX-License-Identifier: MIT
// Package matrix — public API facades over the LinearAlgebra contract.
//
// Purpose:
//   - Provide thin, size-agnostic entry points written once against
//     LinearAlgebra[M] instead of five times against Mat2..Mat6.
//   - No logic of their own: each facade delegates to the methods.
//
// Determinism & Policy:
//   - Facades never change the numeric policy of the underlying kernels:
//     the singularity threshold is always MachineEpsilon scaled by the
//     Hadamard bound.
//
// AI-Hints:
//   - Use InverseOf / T in generic code; call the methods directly otherwise.
//   - ConditionNumber is a cheap sanity probe before trusting an inverse.

package matrix

import "math"

// InverseOf is an alias for m.Inverse(): returns m⁻¹ or ErrSingular.
func InverseOf[M LinearAlgebra[M]](m M) (M, error) { return m.Inverse() }

// T is an alias for m.Transpose().
func T[M LinearAlgebra[M]](m M) M { return m.Transpose() }

// Invertible reports whether Inverse would succeed, i.e.
// |det| > MachineEpsilon·Π‖row_i‖.
// Complexity: one Det evaluation.
func Invertible[M LinearAlgebra[M]](m M) bool { return invertible(m.Det(), hadamardBound(m)) }

// ConditionNumber returns the Frobenius-norm condition number ‖m‖·‖m⁻¹‖.
//
// Errors:
//   - ErrSingular (wrapped with opCondition) when m is not invertible.
//
// Notes:
//   - κ_F ≥ N for every invertible N×N matrix; large values flag inverses that
//     lose most of their significant digits.
func ConditionNumber[M LinearAlgebra[M]](m M) (float64, error) {
	inv, err := m.Inverse()
	if err != nil {
		return 0, matrixErrorf(opCondition, err)
	}

	return m.Norm2() * inv.Norm2(), nil
}

// IsSymmetric reports whether |m[i][j] − m[j][i]| <= tol for all i < j.
// Complexity: O(N²) on the upper triangle.
func IsSymmetric(m Square, tol float64) bool {
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}

	return true
}

// IsSkewSymmetric reports whether m ≈ −mᵀ within tol (diagonal included).
func IsSkewSymmetric(m Square, tol float64) bool {
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if math.Abs(m.At(i, j)+m.At(j, i)) > tol {
				return false
			}
		}
	}

	return true
}
