// SPDX-License-Identifier: MIT
package transform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinematrix/matrix"
	"github.com/katalvlaran/kinematrix/transform"
)

func TestSkew3_IsCrossProduct(t *testing.T) {
	v := matrix.Vec3{1, 2, 3}
	for _, w := range []matrix.Vec3{{4, 5, 6}, {-1, 0, 2}, {0, 0, 0}} {
		assert.Equal(t, v.Cross(w), transform.Skew3(v).MulVec(w))
	}
}

func TestSkew3_Structure(t *testing.T) {
	k := transform.Skew3(matrix.Vec3{1, 2, 3})
	want := matrix.Mat3{
		{0, -3, 2},
		{3, 0, -1},
		{-2, 1, 0},
	}
	assert.Equal(t, want, k)
	assert.True(t, matrix.IsSkewSymmetric(k, 0))
	assert.Equal(t, 0.0, k.Trace())
	assert.Equal(t, 0.0, k.Det())
}

func TestVex_InvertsSkew(t *testing.T) {
	v := matrix.Vec3{-0.5, 7, 1e-3}
	assert.Equal(t, v, transform.Vex3(transform.Skew3(v)))
	assert.Equal(t, 2.5, transform.Vex2(transform.Skew2(2.5)))
	assert.Equal(t, matrix.Mat2{{0, -2.5}, {2.5, 0}}, transform.Skew2(2.5))
}

func TestSkewVex_RotationGenerator(t *testing.T) {
	// (R − Rᵀ)/2 = sin θ·K for a rotation about a unit axis.
	r := transform.RotZ(30)
	gen := r.Sub(r.Transpose()).Scale(0.5)
	requireClose(t, matrix.Vec3{0, 0, 0.5}, transform.Vex3(gen), tol)
}

func TestSkew_Dispatch(t *testing.T) {
	m, err := transform.Skew(2.0)
	require.NoError(t, err)
	assert.Equal(t, transform.Skew2(2), m)

	m, err = transform.Skew(matrix.Vec3{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, transform.Skew3(matrix.Vec3{1, 2, 3}), m)

	m, err = transform.Skew([]float64{4})
	require.NoError(t, err)
	assert.Equal(t, transform.Skew2(4), m)

	m, err = transform.Skew([]float64{1, 2, 3})
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, [2]int{3, 3}, [2]int{r, c})
}

func TestSkew_Errors(t *testing.T) {
	_, err := transform.Skew([]float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrInvalidVectorDim)
	var dimErr *matrix.VectorDimError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 2, dimErr.Len)
	assert.Equal(t, []int{1, 3}, dimErr.Want)

	for _, bad := range []any{3, "x", matrix.Vec2{1, 2}, nil} {
		_, err := transform.Skew(bad)
		assert.ErrorIs(t, err, matrix.ErrVector3OrScalar, "%T", bad)
	}

	_, err = transform.SkewFromSlice(make([]float64, 4))
	assert.ErrorIs(t, err, matrix.ErrInvalidVectorDim)
}

func TestVex_Dispatch(t *testing.T) {
	v, err := transform.Vex(transform.Skew3(matrix.Vec3{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, v)

	v, err = transform.Vex(transform.Skew2(-1))
	require.NoError(t, err)
	assert.Equal(t, []float64{-1}, v)
}

func TestVex_BadShape(t *testing.T) {
	_, err := transform.Vex(matrix.Identity4())
	require.ErrorIs(t, err, matrix.ErrBadShape)
	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 4, se.Rows)

	_, err = transform.Vex(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}
