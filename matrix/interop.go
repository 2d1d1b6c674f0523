// SPDX-License-Identifier: MIT
// Package matrix — interop with gonum and golang/geo.
//
// Purpose:
//   - Hand fixed-size values to gonum's general-purpose routines (mat.Dense)
//     and bring results back with a shape check.
//   - Bridge Vec3 to r3.Vector for code built on golang/geo.
//
// Notes:
//   - These are copies: mutating the returned *mat.Dense never touches the source.

package matrix

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies any square matrix into a newly allocated *mat.Dense.
// Complexity: O(N²) time and space.
func ToDense(m Square) *mat.Dense {
	rows, cols := m.Shape()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, m.At(i, j))
		}
	}

	return mat.NewDense(rows, cols, data)
}

// denseInto validates d is n×n and streams its cells into set.
func denseInto(d mat.Matrix, n int, set func(i, j int, v float64)) error {
	r, c := d.Dims()
	if r != n || c != n {
		return matrixErrorf(opFromDense, &ShapeError{Rows: r, Cols: c})
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			set(i, j, d.At(i, j))
		}
	}

	return nil
}

// Mat2FromDense copies a 2×2 gonum matrix. Fails with *ShapeError otherwise.
func Mat2FromDense(d mat.Matrix) (Mat2, error) {
	var m Mat2
	err := denseInto(d, 2, func(i, j int, v float64) { m[i][j] = v })

	return m, err
}

// Mat3FromDense copies a 3×3 gonum matrix. Fails with *ShapeError otherwise.
func Mat3FromDense(d mat.Matrix) (Mat3, error) {
	var m Mat3
	err := denseInto(d, 3, func(i, j int, v float64) { m[i][j] = v })

	return m, err
}

// Mat4FromDense copies a 4×4 gonum matrix. Fails with *ShapeError otherwise.
func Mat4FromDense(d mat.Matrix) (Mat4, error) {
	var m Mat4
	err := denseInto(d, 4, func(i, j int, v float64) { m[i][j] = v })

	return m, err
}

// Mat5FromDense copies a 5×5 gonum matrix.
func Mat5FromDense(d mat.Matrix) (Mat5, error) {
	var m Mat5
	err := denseInto(d, 5, func(i, j int, v float64) { m[i][j] = v })

	return m, err
}

// Mat6FromDense copies a 6×6 gonum matrix.
func Mat6FromDense(d mat.Matrix) (Mat6, error) {
	var m Mat6
	err := denseInto(d, 6, func(i, j int, v float64) { m[i][j] = v })

	return m, err
}

// R3 returns v as an r3.Vector.
func (v Vec3) R3() r3.Vector { return r3.Vector{X: v[0], Y: v[1], Z: v[2]} }

// Vec3FromR3 converts an r3.Vector.
func Vec3FromR3(p r3.Vector) Vec3 { return Vec3{p.X, p.Y, p.Z} }
