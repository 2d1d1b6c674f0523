// SPDX-License-Identifier: MIT
// Package transform — skew-symmetric matrices and the vex operator.
//
// Skew3(v)·w == v × w for every w; Vex3 inverts Skew3. The 2-D analogue maps a
// scalar k to [[0, −k], [k, 0]]. Vex functions assume exact skew symmetry and
// read one entry per component without validation.

package transform

import (
	"fmt"

	"github.com/katalvlaran/kinematrix/matrix"
)

// Operation tags for error wrapping.
const (
	opSkew = "Skew"
	opVex  = "Vex"
)

// Skew3 returns the cross-product matrix of v:
//
//	[ 0  −z   y]
//	[ z   0  −x]
//	[−y   x   0]
func Skew3(v matrix.Vec3) matrix.Mat3 {
	return matrix.Mat3{
		{0, -v[2], v[1]},
		{v[2], 0, -v[0]},
		{-v[1], v[0], 0},
	}
}

// Skew2 returns [[0, −k], [k, 0]].
func Skew2(k float64) matrix.Mat2 {
	return matrix.Mat2{
		{0, -k},
		{k, 0},
	}
}

// Vex3 returns the vector v with Skew3(v) == m.
func Vex3(m matrix.Mat3) matrix.Vec3 {
	return matrix.Vec3{m[2][1], m[0][2], m[1][0]}
}

// Vex2 returns the scalar k with Skew2(k) == m.
func Vex2(m matrix.Mat2) float64 { return m[1][0] }

// SkewFromSlice builds the skew matrix of a runtime-length generator:
// one component yields a Mat2, three yield a Mat3.
//
// Errors:
//   - *matrix.VectorDimError (ErrInvalidVectorDim) for any other length.
func SkewFromSlice(v []float64) (matrix.Square, error) {
	switch len(v) {
	case 1:
		return Skew2(v[0]), nil
	case 3:
		return Skew3(matrix.Vec3{v[0], v[1], v[2]}), nil
	default:
		return nil, fmt.Errorf("%s: %w", opSkew, &matrix.VectorDimError{Len: len(v), Want: []int{1, 3}})
	}
}

// Skew dispatches on the dynamic type of x: float64 → Mat2, matrix.Vec3 →
// Mat3, []float64 → SkewFromSlice.
//
// Errors:
//   - matrix.ErrVector3OrScalar for any other type.
//   - *matrix.VectorDimError for a slice of the wrong length.
func Skew(x any) (matrix.Square, error) {
	switch v := x.(type) {
	case float64:
		return Skew2(v), nil
	case matrix.Vec3:
		return Skew3(v), nil
	case []float64:
		return SkewFromSlice(v)
	default:
		return nil, fmt.Errorf("%s: got %T: %w", opSkew, x, matrix.ErrVector3OrScalar)
	}
}

// Vex inverts Skew for either supported size and returns the generator as a
// slice of length 1 (Mat2) or 3 (Mat3).
//
// Errors:
//   - *matrix.ShapeError (ErrBadShape) when m is not 2×2 or 3×3.
func Vex(m matrix.Square) ([]float64, error) {
	switch s := m.(type) {
	case matrix.Mat2:
		return []float64{Vex2(s)}, nil
	case matrix.Mat3:
		v := Vex3(s)
		return v[:], nil
	case nil:
		return nil, fmt.Errorf("%s: %w", opVex, &matrix.ShapeError{})
	default:
		rows, cols := m.Shape()
		return nil, fmt.Errorf("%s: %w", opVex, &matrix.ShapeError{Rows: rows, Cols: cols})
	}
}
