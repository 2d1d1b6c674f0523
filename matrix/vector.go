// SPDX-License-Identifier: MIT
// Package matrix — fixed-size vectors.
//
// Purpose:
//   - Value-typed vectors Vec2..Vec6 with add/sub/scale, dot product, Euclidean
//     norm and row-vector × matrix product.
//   - Receivers are copies; every operation returns a new value.
//
// Determinism:
//   - Fixed i-order accumulation; identical inputs give bit-identical results.

package matrix

import "math"

// dot is the shared accumulation kernel for all vector sizes.
// Caller guarantees len(a) == len(b).
func dot(a, b []float64) float64 {
	sum := ZeroSum
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// ---------- Vec2 ----------

// ZeroVec2 returns the additive identity.
func ZeroVec2() Vec2 { return Vec2{} }

// Len returns 2.
func (v Vec2) Len() int { return len(v) }

// Add returns v + b.
func (v Vec2) Add(b Vec2) Vec2 {
	for i := range v {
		v[i] += b[i]
	}

	return v
}

// Sub returns v − b.
func (v Vec2) Sub(b Vec2) Vec2 {
	for i := range v {
		v[i] -= b[i]
	}

	return v
}

// Scale returns k·v.
func (v Vec2) Scale(k float64) Vec2 {
	for i := range v {
		v[i] *= k
	}

	return v
}

// Dot returns the inner product.
func (v Vec2) Dot(b Vec2) float64 { return dot(v[:], b[:]) }

// Norm2 returns the Euclidean norm.
func (v Vec2) Norm2() float64 { return math.Sqrt(dot(v[:], v[:])) }

// MulMat returns the row-vector product v·m.
func (v Vec2) MulMat(m Mat2) Vec2 {
	var out Vec2
	for j := range out {
		for i := range v {
			out[j] += v[i] * m[i][j]
		}
	}

	return out
}

// ---------- Vec3 ----------

// ZeroVec3 returns the additive identity (same as Vec3{}).
func ZeroVec3() Vec3 { return Vec3{} }

// Len returns the number of components.
func (v Vec3) Len() int { return len(v) }

// Add returns v + b componentwise.
// Complexity: O(N).
func (v Vec3) Add(b Vec3) Vec3 {
	for i := range v {
		v[i] += b[i] // v is a copy; caller's value is untouched
	}

	return v
}

// Sub returns v − b componentwise.
func (v Vec3) Sub(b Vec3) Vec3 {
	for i := range v {
		v[i] -= b[i]
	}

	return v
}

// Scale returns k·v.
func (v Vec3) Scale(k float64) Vec3 {
	for i := range v {
		v[i] *= k
	}

	return v
}

// Dot returns Σ v[i]·b[i].
func (v Vec3) Dot(b Vec3) float64 { return dot(v[:], b[:]) }

// Norm2 returns the Euclidean norm sqrt(v·v).
//
// AI-Hints:
//   - Rodrigues (transform.RotationFromAxisAngle) assumes Norm2() == 1; check it upstream.
func (v Vec3) Norm2() float64 { return math.Sqrt(dot(v[:], v[:])) }

// MulMat returns the row-vector product v·m, out[j] = Σ_i v[i]·m[i][j].
// Consistent with Mat3.MulVec: v.MulMat(m) == m.Transpose().MulVec(v).
func (v Vec3) MulMat(m Mat3) Vec3 {
	var out Vec3
	for j := range out {
		for i := range v {
			out[j] += v[i] * m[i][j]
		}
	}

	return out
}

// Cross returns the cross product v × b.
func (v Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		v[1]*b[2] - v[2]*b[1],
		v[2]*b[0] - v[0]*b[2],
		v[0]*b[1] - v[1]*b[0],
	}
}

// ---------- Vec4 ----------

// ZeroVec4 returns the additive identity.
func ZeroVec4() Vec4 { return Vec4{} }

// Len returns 4.
func (v Vec4) Len() int { return len(v) }

// Add returns v + b.
func (v Vec4) Add(b Vec4) Vec4 {
	for i := range v {
		v[i] += b[i]
	}

	return v
}

// Sub returns v − b.
func (v Vec4) Sub(b Vec4) Vec4 {
	for i := range v {
		v[i] -= b[i]
	}

	return v
}

// Scale returns k·v.
func (v Vec4) Scale(k float64) Vec4 {
	for i := range v {
		v[i] *= k
	}

	return v
}

// Dot returns the inner product.
func (v Vec4) Dot(b Vec4) float64 { return dot(v[:], b[:]) }

// Norm2 returns the Euclidean norm.
func (v Vec4) Norm2() float64 { return math.Sqrt(dot(v[:], v[:])) }

// MulMat returns the row-vector product v·m.
func (v Vec4) MulMat(m Mat4) Vec4 {
	var out Vec4
	for j := range out {
		for i := range v {
			out[j] += v[i] * m[i][j]
		}
	}

	return out
}

// ---------- Vec5 ----------

// ZeroVec5 returns the additive identity.
func ZeroVec5() Vec5 { return Vec5{} }

// Len returns 5.
func (v Vec5) Len() int { return len(v) }

// Add returns v + b.
func (v Vec5) Add(b Vec5) Vec5 {
	for i := range v {
		v[i] += b[i]
	}

	return v
}

// Sub returns v − b.
func (v Vec5) Sub(b Vec5) Vec5 {
	for i := range v {
		v[i] -= b[i]
	}

	return v
}

// Scale returns k·v.
func (v Vec5) Scale(k float64) Vec5 {
	for i := range v {
		v[i] *= k
	}

	return v
}

// Dot returns the inner product.
func (v Vec5) Dot(b Vec5) float64 { return dot(v[:], b[:]) }

// Norm2 returns the Euclidean norm.
func (v Vec5) Norm2() float64 { return math.Sqrt(dot(v[:], v[:])) }

// MulMat returns the row-vector product v·m.
func (v Vec5) MulMat(m Mat5) Vec5 {
	var out Vec5
	for j := range out {
		for i := range v {
			out[j] += v[i] * m[i][j]
		}
	}

	return out
}

// ---------- Vec6 ----------

// ZeroVec6 returns the additive identity.
func ZeroVec6() Vec6 { return Vec6{} }

// Len returns 6.
func (v Vec6) Len() int { return len(v) }

// Add returns v + b.
func (v Vec6) Add(b Vec6) Vec6 {
	for i := range v {
		v[i] += b[i]
	}

	return v
}

// Sub returns v − b.
func (v Vec6) Sub(b Vec6) Vec6 {
	for i := range v {
		v[i] -= b[i]
	}

	return v
}

// Scale returns k·v.
func (v Vec6) Scale(k float64) Vec6 {
	for i := range v {
		v[i] *= k
	}

	return v
}

// Dot returns the inner product.
func (v Vec6) Dot(b Vec6) float64 { return dot(v[:], b[:]) }

// Norm2 returns the Euclidean norm.
func (v Vec6) Norm2() float64 { return math.Sqrt(dot(v[:], v[:])) }

// MulMat returns the row-vector product v·m.
func (v Vec6) MulMat(m Mat6) Vec6 {
	var out Vec6
	for j := range out {
		for i := range v {
			out[j] += v[i] * m[i][j]
		}
	}

	return out
}
