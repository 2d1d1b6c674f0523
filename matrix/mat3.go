// SPDX-License-Identifier: MIT
// Package matrix — 3×3 kernels.
//
// Purpose:
//   - Closed-form determinant (row-0 cofactor expansion) and adjugate inverse.
//     The 3×3 kernel is the base case for the 4×4..6×6 recursive expansion.

package matrix

import "math"

// Det returns the determinant by the 3-term cofactor expansion along row 0.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the closed-form adjugate inverse.
//
// Implementation:
//   - Stage 1: det := m.Det(); fail fast when |det| <= MachineEpsilon·hadamardBound(m).
//   - Stage 2: write the nine 2×2 cofactors (already transposed) times 1/det.
//
// Errors:
//   - ErrSingular wrapped with opInverse.
//
// Complexity:
//   - Time O(1): 9 cofactors, no loops, no allocation.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Det()
	if !invertible(det, hadamardBound(m)) {
		return Mat3{}, matrixErrorf(opInverse, ErrSingular)
	}
	invDet := 1 / det

	var res Mat3
	res[0][0] = (m[1][1]*m[2][2] - m[2][1]*m[1][2]) * invDet
	res[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	res[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	res[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	res[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	res[1][2] = (m[1][0]*m[0][2] - m[0][0]*m[1][2]) * invDet
	res[2][0] = (m[1][0]*m[2][1] - m[2][0]*m[1][1]) * invDet
	res[2][1] = (m[2][0]*m[0][1] - m[0][0]*m[2][1]) * invDet
	res[2][2] = (m[0][0]*m[1][1] - m[1][0]*m[0][1]) * invDet

	return res, nil
}

// SubMatrix returns the minor without row i and column j, or ErrOutOfRange.
func (m Mat3) SubMatrix(i, j int) (Mat2, error) {
	if err := ValidateIndex(i, j, 3); err != nil {
		return Mat2{}, matrixErrorf(opSubMatrix, err)
	}

	return m.minor(i, j), nil
}

// minor builds the submatrix for indices already known to be in range.
func (m Mat3) minor(row, col int) Mat2 {
	var out Mat2
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

// Identity3 returns I with ones on the diagonal.
func Identity3() Mat3 {
	var m Mat3
	for i := range m {
		m[i][i] = 1
	}

	return m
}

// Zeros3 returns the additive identity (same as Mat3{}).
func Zeros3() Mat3 { return Mat3{} }

// Rows returns 3.
func (m Mat3) Rows() int { return len(m) }

// Cols returns 3.
func (m Mat3) Cols() int { return len(m[0]) }

// Shape returns (3, 3).
func (m Mat3) Shape() (int, int) { return m.Rows(), m.Cols() }

// At returns element (i, j).
func (m Mat3) At(i, j int) float64 { return m[i][j] }

// Add returns a + b.
func (m Mat3) Add(b Mat3) Mat3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += b[i][j]
		}
	}

	return m
}

// Sub returns a − b.
func (m Mat3) Sub(b Mat3) Mat3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= b[i][j]
		}
	}

	return m
}

// Scale returns k·m.
func (m Mat3) Scale(k float64) Mat3 {
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
func (m Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
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
func (m Mat3) MulVec(v Vec3) Vec3 {
	var out Vec3
	for i := range m {
		out[i] = dot(m[i][:], v[:])
	}

	return out
}

// Transpose returns mᵀ. Only permutes; transpose(transpose(m)) == m exactly.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// Trace returns the sum of the diagonal.
func (m Mat3) Trace() float64 {
	sum := ZeroSum
	for i := range m {
		sum += m[i][i]
	}

	return sum
}

// Norm2 returns the Frobenius norm sqrt(Σ m[i][j]²).
func (m Mat3) Norm2() float64 {
	sum := ZeroSum
	for i := range m {
		sum += dot(m[i][:], m[i][:])
	}

	return math.Sqrt(sum)
}

// ApproxEqual reports whether |m[i][j] − b[i][j]| <= tol for every cell.
func (m Mat3) ApproxEqual(b Mat3, tol float64) bool {
	for i := range m {
		for j := range m[i] {
			if math.Abs(m[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}

	return true
}
