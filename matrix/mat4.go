// SPDX-License-Identifier: MIT
// Package matrix — 4×4 kernels.
//
// Purpose:
//   - Determinant and inverse via 3×3 minors (adjugate / det).
//   - Mat4 is also the homogeneous-transform carrier used by package transform.

package matrix

import "math"

// Det returns the determinant by cofactor expansion along row 0:
//
//	det(m) = Σ_j (−1)^j · m[0][j] · det(minor(m, 0, j))
//
// Each minor is a Mat3 and uses its own Det, so the recursion bottoms out in
// the closed-form 3×3 kernel.
//
// Determinism:
//   - Fixed j order; identical inputs give bit-identical results.
//
// Complexity:
//   - Time O(N!) in general, constant for fixed N.
func (m Mat4) Det() float64 {
	det := ZeroSum
	for j := range m[0] {
		det += cofactorSign(0, j) * m[0][j] * m.minor(0, j).Det()
	}

	return det
}

// Inverse returns m⁻¹ = transpose(cofactor(m)) / det(m), where
// cofactor[i][j] = (−1)^(i+j)·det(minor(m, i, j)).
//
// Implementation:
//   - Stage 1: det := m.Det(); fail with ErrSingular when |det| <= MachineEpsilon·hadamardBound(m).
//   - Stage 2: fill a local array with the transposed cofactors scaled by 1/det.
//
// Errors:
//   - ErrSingular wrapped with opInverse.
//
// Complexity:
//   - Time O(N²·cost(Det_(N−1))), no heap allocation.
func (m Mat4) Inverse() (Mat4, error) {
	det := m.Det()
	if !invertible(det, hadamardBound(m)) {
		return Mat4{}, matrixErrorf(opInverse, ErrSingular)
	}

	invDet := 1 / det
	var inv Mat4
	for i := range m {
		for j := range m[i] {
			inv[j][i] = cofactorSign(i, j) * m.minor(i, j).Det() * invDet // adjugate = cofactorᵀ
		}
	}

	return inv, nil
}

// SubMatrix returns the minor obtained by deleting row i and column j,
// keeping the relative order of the remaining rows and columns.
//
// Inputs:
//   - i, j: indices in [0, 4).
//
// Errors:
//   - ErrOutOfRange (wrapped with opSubMatrix) when i or j is outside [0, 4).
//
// Complexity:
//   - Time O(N²), no allocation.
func (m Mat4) SubMatrix(i, j int) (Mat3, error) {
	if err := ValidateIndex(i, j, 4); err != nil {
		return Mat3{}, matrixErrorf(opSubMatrix, err)
	}

	return m.minor(i, j), nil
}

// minor builds the submatrix for indices already known to be in range.
func (m Mat4) minor(row, col int) Mat3 {
	var out Mat3
	r := 0
	for i := range m {
		if i == row {
			continue
		}
		c := 0
		for j := range m[i] {
			if j == col {
				continue
			}
			out[r][c] = m[i][j]
			c++
		}
		r++
	}

	return out
}

// Identity4 returns I with ones on the diagonal.
func Identity4() Mat4 {
	var m Mat4
	for i := range m {
		m[i][i] = 1
	}

	return m
}

// Zeros4 returns the additive identity (same as Mat4{}).
func Zeros4() Mat4 { return Mat4{} }

// Rows returns 4.
func (m Mat4) Rows() int { return len(m) }

// Cols returns 4.
func (m Mat4) Cols() int { return len(m[0]) }

// Shape returns (4, 4).
func (m Mat4) Shape() (int, int) { return m.Rows(), m.Cols() }

// At returns element (i, j).
func (m Mat4) At(i, j int) float64 { return m[i][j] }

// Add returns a + b.
func (m Mat4) Add(b Mat4) Mat4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += b[i][j]
		}
	}

	return m
}

// Sub returns a − b.
func (m Mat4) Sub(b Mat4) Mat4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= b[i][j]
		}
	}

	return m
}

// Scale returns k·m.
func (m Mat4) Scale(k float64) Mat4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= k
		}
	}

	return m
}

// Mul returns the matrix product m·b.
//
// Determinism:
//   - Fixed i→j→k loop order.
//
// Complexity:
//   - Time O(N³), no allocation.
func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for i := range m {
		for j := range b[0] {
			sum := ZeroSum
			for k := range b {
				sum += m[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// MulVec returns the column-vector product m·v, out[i] = Σ_j m[i][j]·v[j].
func (m Mat4) MulVec(v Vec4) Vec4 {
	var out Vec4
	for i := range m {
		out[i] = dot(m[i][:], v[:])
	}

	return out
}

// Transpose returns mᵀ. Only permutes; transpose(transpose(m)) == m exactly.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// Trace returns the sum of the diagonal.
func (m Mat4) Trace() float64 {
	sum := ZeroSum
	for i := range m {
		sum += m[i][i]
	}

	return sum
}

// Norm2 returns the Frobenius norm sqrt(Σ m[i][j]²).
func (m Mat4) Norm2() float64 {
	sum := ZeroSum
	for i := range m {
		sum += dot(m[i][:], m[i][:])
	}

	return math.Sqrt(sum)
}

// ApproxEqual reports whether |m[i][j] − b[i][j]| <= tol for every cell.
func (m Mat4) ApproxEqual(b Mat4, tol float64) bool {
	for i := range m {
		for j := range m[i] {
			if math.Abs(m[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}

	return true
}
