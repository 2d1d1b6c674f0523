// SPDX-License-Identifier: MIT
// Package matrix — 2×2 kernels (closed form).

package matrix

import "math"

// Det returns ad − bc.
func (m Mat2) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inverse returns the closed-form inverse (1/det)·[[d, −b], [−c, a]].
//
// Errors:
//   - ErrSingular (wrapped with opInverse) when |det| <= MachineEpsilon·‖row_0‖·‖row_1‖.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if !invertible(det, hadamardBound(m)) {
		return Mat2{}, matrixErrorf(opInverse, ErrSingular)
	}
	invDet := 1 / det

	return Mat2{
		{m[1][1] * invDet, -m[0][1] * invDet},
		{-m[1][0] * invDet, m[0][0] * invDet},
	}, nil
}

// Identity2 returns I with ones on the diagonal.
func Identity2() Mat2 {
	var m Mat2
	for i := range m {
		m[i][i] = 1
	}

	return m
}

// Zeros2 returns the additive identity (same as Mat2{}).
func Zeros2() Mat2 { return Mat2{} }

// Rows returns 2.
func (m Mat2) Rows() int { return len(m) }

// Cols returns 2.
func (m Mat2) Cols() int { return len(m[0]) }

// Shape returns (2, 2).
func (m Mat2) Shape() (int, int) { return m.Rows(), m.Cols() }

// At returns element (i, j).
func (m Mat2) At(i, j int) float64 { return m[i][j] }

// Add returns a + b.
func (m Mat2) Add(b Mat2) Mat2 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += b[i][j]
		}
	}

	return m
}

// Sub returns a − b.
func (m Mat2) Sub(b Mat2) Mat2 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= b[i][j]
		}
	}

	return m
}

// Scale returns k·m.
func (m Mat2) Scale(k float64) Mat2 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= k
		}
	}

	return m
}

// Mul returns the matrix product m·b.
func (m Mat2) Mul(b Mat2) Mat2 {
	var out Mat2
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
func (m Mat2) MulVec(v Vec2) Vec2 {
	var out Vec2
	for i := range m {
		out[i] = dot(m[i][:], v[:])
	}

	return out
}

// Transpose returns mᵀ. Only permutes; transpose(transpose(m)) == m exactly.
func (m Mat2) Transpose() Mat2 {
	var t Mat2
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// Trace returns the sum of the diagonal.
func (m Mat2) Trace() float64 {
	sum := ZeroSum
	for i := range m {
		sum += m[i][i]
	}

	return sum
}

// Norm2 returns the Frobenius norm sqrt(Σ m[i][j]²).
func (m Mat2) Norm2() float64 {
	sum := ZeroSum
	for i := range m {
		sum += dot(m[i][:], m[i][:])
	}

	return math.Sqrt(sum)
}

// ApproxEqual reports whether |m[i][j] − b[i][j]| <= tol for every cell.
func (m Mat2) ApproxEqual(b Mat2, tol float64) bool {
	for i := range m {
		for j := range m[i] {
			if math.Abs(m[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}

	return true
}
