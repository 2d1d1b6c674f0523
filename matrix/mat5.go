// SPDX-License-Identifier: MIT
// Package matrix — 5×5 kernels (cofactor expansion over 4×4 minors).

package matrix

import "math"

// Det returns the determinant by cofactor expansion along row 0 using Mat4 minors.
func (m Mat5) Det() float64 {
	det := ZeroSum
	for j := range m[0] {
		det += cofactorSign(0, j) * m[0][j] * m.minor(0, j).Det()
	}

	return det
}

// Inverse returns the adjugate divided by det(m), or ErrSingular.
func (m Mat5) Inverse() (Mat5, error) {
	det := m.Det()
	if !invertible(det, hadamardBound(m)) {
		return Mat5{}, matrixErrorf(opInverse, ErrSingular)
	}

	invDet := 1 / det
	var inv Mat5
	for i := range m {
		for j := range m[i] {
			inv[j][i] = cofactorSign(i, j) * m.minor(i, j).Det() * invDet // adjugate = cofactorᵀ
		}
	}

	return inv, nil
}

// SubMatrix returns the minor without row i and column j, or ErrOutOfRange.
func (m Mat5) SubMatrix(i, j int) (Mat4, error) {
	if err := ValidateIndex(i, j, 5); err != nil {
		return Mat4{}, matrixErrorf(opSubMatrix, err)
	}

	return m.minor(i, j), nil
}

// minor builds the submatrix for indices already known to be in range.
func (m Mat5) minor(row, col int) Mat4 {
	var out Mat4
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

// Identity5 returns I with ones on the diagonal.
func Identity5() Mat5 {
	var m Mat5
	for i := range m {
		m[i][i] = 1
	}

	return m
}

// Zeros5 returns the additive identity (same as Mat5{}).
func Zeros5() Mat5 { return Mat5{} }

// Rows returns 5.
func (m Mat5) Rows() int { return len(m) }

// Cols returns 5.
func (m Mat5) Cols() int { return len(m[0]) }

// Shape returns (5, 5).
func (m Mat5) Shape() (int, int) { return m.Rows(), m.Cols() }

// At returns element (i, j).
func (m Mat5) At(i, j int) float64 { return m[i][j] }

// Add returns a + b.
func (m Mat5) Add(b Mat5) Mat5 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += b[i][j]
		}
	}

	return m
}

// Sub returns a − b.
func (m Mat5) Sub(b Mat5) Mat5 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= b[i][j]
		}
	}

	return m
}

// Scale returns k·m.
func (m Mat5) Scale(k float64) Mat5 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= k
		}
	}

	return m
}

// Mul returns the matrix product m·b.
func (m Mat5) Mul(b Mat5) Mat5 {
	var out Mat5
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
func (m Mat5) MulVec(v Vec5) Vec5 {
	var out Vec5
	for i := range m {
		out[i] = dot(m[i][:], v[:])
	}

	return out
}

// Transpose returns mᵀ. Only permutes; transpose(transpose(m)) == m exactly.
func (m Mat5) Transpose() Mat5 {
	var t Mat5
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// Trace returns the sum of the diagonal.
func (m Mat5) Trace() float64 {
	sum := ZeroSum
	for i := range m {
		sum += m[i][i]
	}

	return sum
}

// Norm2 returns the Frobenius norm sqrt(Σ m[i][j]²).
func (m Mat5) Norm2() float64 {
	sum := ZeroSum
	for i := range m {
		sum += dot(m[i][:], m[i][:])
	}

	return math.Sqrt(sum)
}

// ApproxEqual reports whether |m[i][j] − b[i][j]| <= tol for every cell.
func (m Mat5) ApproxEqual(b Mat5, tol float64) bool {
	for i := range m {
		for j := range m[i] {
			if math.Abs(m[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}

	return true
}
