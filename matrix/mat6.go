// SPDX-License-Identifier: MIT
// Package matrix — 6×6 kernels (cofactor expansion over 5×5 minors).
// No closed form; det and inverse recurse through Mat5 → Mat4 → Mat3.

package matrix

import "math"

// Det returns the determinant by cofactor expansion along row 0 using Mat5 minors.
func (m Mat6) Det() float64 {
	det := ZeroSum
	for j := range m[0] {
		det += cofactorSign(0, j) * m[0][j] * m.minor(0, j).Det()
	}

	return det
}

// Inverse returns the adjugate divided by det(m), or ErrSingular.
func (m Mat6) Inverse() (Mat6, error) {
	det := m.Det()
	if !invertible(det, hadamardBound(m)) {
		return Mat6{}, matrixErrorf(opInverse, ErrSingular)
	}

	invDet := 1 / det
	var inv Mat6
	for i := range m {
		for j := range m[i] {
			inv[j][i] = cofactorSign(i, j) * m.minor(i, j).Det() * invDet // adjugate = cofactorᵀ
		}
	}

	return inv, nil
}

// SubMatrix returns the minor without row i and column j, or ErrOutOfRange.
func (m Mat6) SubMatrix(i, j int) (Mat5, error) {
	if err := ValidateIndex(i, j, 6); err != nil {
		return Mat5{}, matrixErrorf(opSubMatrix, err)
	}

	return m.minor(i, j), nil
}

// minor builds the submatrix for indices already known to be in range.
func (m Mat6) minor(row, col int) Mat5 {
	var out Mat5
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

// Identity6 returns I with ones on the diagonal.
func Identity6() Mat6 {
	var m Mat6
	for i := range m {
		m[i][i] = 1
	}

	return m
}

// Zeros6 returns the additive identity (same as Mat6{}).
func Zeros6() Mat6 { return Mat6{} }

// Rows returns 6.
func (m Mat6) Rows() int { return len(m) }

// Cols returns 6.
func (m Mat6) Cols() int { return len(m[0]) }

// Shape returns (6, 6).
func (m Mat6) Shape() (int, int) { return m.Rows(), m.Cols() }

// At returns element (i, j).
func (m Mat6) At(i, j int) float64 { return m[i][j] }

// Add returns a + b.
func (m Mat6) Add(b Mat6) Mat6 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += b[i][j]
		}
	}

	return m
}

// Sub returns a − b.
func (m Mat6) Sub(b Mat6) Mat6 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= b[i][j]
		}
	}

	return m
}

// Scale returns k·m.
func (m Mat6) Scale(k float64) Mat6 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= k
		}
	}

	return m
}

// Mul returns the matrix product m·b.
func (m Mat6) Mul(b Mat6) Mat6 {
	var out Mat6
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
func (m Mat6) MulVec(v Vec6) Vec6 {
	var out Vec6
	for i := range m {
		out[i] = dot(m[i][:], v[:])
	}

	return out
}

// Transpose returns mᵀ. Only permutes; transpose(transpose(m)) == m exactly.
func (m Mat6) Transpose() Mat6 {
	var t Mat6
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// Trace returns the sum of the diagonal.
func (m Mat6) Trace() float64 {
	sum := ZeroSum
	for i := range m {
		sum += m[i][i]
	}

	return sum
}

// Norm2 returns the Frobenius norm sqrt(Σ m[i][j]²).
func (m Mat6) Norm2() float64 {
	sum := ZeroSum
	for i := range m {
		sum += dot(m[i][:], m[i][:])
	}

	return math.Sqrt(sum)
}

// ApproxEqual reports whether |m[i][j] − b[i][j]| <= tol for every cell.
func (m Mat6) ApproxEqual(b Mat6, tol float64) bool {
	for i := range m {
		for j := range m[i] {
			if math.Abs(m[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}

	return true
}
