// SPDX-License-Identifier: MIT
package transform_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinematrix/matrix"
	"github.com/katalvlaran/kinematrix/transform"
)

// tol is the absolute tolerance for trigonometric results.
const tol = 1e-9

// requireClose FAILS the test when want and got differ beyond atol in any cell.
func requireClose(t *testing.T, want, got any, atol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, atol)); diff != "" {
		t.Fatalf("mismatch beyond %g (-want +got):\n%s", atol, diff)
	}
}

func TestRot_FullTurnIsIdentity(t *testing.T) {
	id := matrix.Identity3()
	for name, rot := range map[string]func(float64) matrix.Mat3{
		"x": transform.RotX,
		"y": transform.RotY,
		"z": transform.RotZ,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, id, rot(0))
			requireClose(t, id, rot(360), tol)
			requireClose(t, id, rot(-720), tol)
			assert.True(t, transform.IsRotation(rot(37)))
			assert.True(t, transform.IsOrthonormal(rot(37)))
		})
	}
}

func TestRot_QuarterTurns(t *testing.T) {
	x, y, z := matrix.Vec3{1, 0, 0}, matrix.Vec3{0, 1, 0}, matrix.Vec3{0, 0, 1}
	requireClose(t, z, transform.RotX(90).MulVec(y), tol)
	requireClose(t, x, transform.RotY(90).MulVec(z), tol)
	requireClose(t, y, transform.RotZ(90).MulVec(x), tol)

	requireClose(t, matrix.Vec2{0, 1}, transform.Rot2(90).MulVec(matrix.Vec2{1, 0}), tol)
	assert.InDelta(t, 1.0, transform.Rot2(123).Det(), tol)
}

func TestRot_Composition(t *testing.T) {
	requireClose(t, transform.RotZ(50), transform.RotZ(20).Mul(transform.RotZ(30)), tol)

	inv, err := transform.RotY(33).Inverse()
	require.NoError(t, err)
	requireClose(t, transform.RotY(-33), inv, tol)
	requireClose(t, transform.RotY(33).Transpose(), inv, tol)
}

func TestIsRotation(t *testing.T) {
	assert.True(t, transform.IsRotation(matrix.Identity3()))
	assert.True(t, transform.IsRotation(transform.EulerZYZ(12, 34, 56)))

	// reflection
	assert.False(t, transform.IsRotation(matrix.Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}}))
	// uniform scale
	assert.False(t, transform.IsRotation(matrix.Identity3().Scale(2)))

	// det 1 but not orthogonal: passes the determinant test only
	squash := matrix.Mat3{{2, 0, 0}, {0, 0.5, 0}, {0, 0, 1}}
	assert.True(t, transform.IsRotation(squash))
	assert.False(t, transform.IsOrthonormal(squash))
}

func TestIsRotation_Epsilon(t *testing.T) {
	r := transform.RotX(10).Scale(1 + 1e-7)
	assert.False(t, transform.IsRotation(r))
	assert.True(t, transform.IsRotation(r, transform.WithEpsilon(1e-5)))
	assert.True(t, transform.IsOrthonormal(r, transform.WithEpsilon(1e-5)))
}

func TestRotationFromAxisAngle(t *testing.T) {
	for _, theta := range []float64{0, 15, 90, 179, -45} {
		t.Run(fmt.Sprintf("theta=%g", theta), func(t *testing.T) {
			requireClose(t, transform.RotX(theta), transform.RotationFromAxisAngle(theta, matrix.Vec3{1, 0, 0}), tol)
			requireClose(t, transform.RotY(theta), transform.RotationFromAxisAngle(theta, matrix.Vec3{0, 1, 0}), tol)
			requireClose(t, transform.RotZ(theta), transform.RotationFromAxisAngle(theta, matrix.Vec3{0, 0, 1}), tol)
		})
	}

	axis := matrix.Vec3{1, 1, 1}.Scale(1 / math.Sqrt(3))
	r := transform.RotationFromAxisAngle(120, axis)
	assert.True(t, transform.IsOrthonormal(r))
	// the axis is fixed
	requireClose(t, axis, r.MulVec(axis), tol)
	// 120° about the diagonal cycles the basis vectors
	requireClose(t, matrix.Vec3{0, 1, 0}, r.MulVec(matrix.Vec3{1, 0, 0}), tol)

	// non-unit axis is not normalized
	assert.False(t, transform.IsOrthonormal(transform.RotationFromAxisAngle(90, matrix.Vec3{0, 0, 2})))
}

func TestPose(t *testing.T) {
	r := transform.RotZ(90)
	p := matrix.Vec3{1, 2, 3}
	pose := transform.Pose(r, p)

	assert.Equal(t, [4]float64{0, 0, 0, 1}, pose[3])
	// moving the homogeneous point (1, 0, 0, 1)
	requireClose(t, matrix.Vec4{1, 3, 3, 1}, pose.MulVec(matrix.Vec4{1, 0, 0, 1}), tol)

	gotR, gotP := transform.Decompose(pose)
	assert.Equal(t, r, gotR)
	assert.Equal(t, p, gotP)

	home := transform.Homogeneous(r)
	_, zero := transform.Decompose(home)
	assert.Equal(t, matrix.Vec3{}, zero)

	// composing poses composes rotations and accumulates translation
	chained := pose.Mul(transform.Pose(matrix.Identity3(), matrix.Vec3{1, 0, 0}))
	r2, p2 := transform.Decompose(chained)
	requireClose(t, r, r2, tol)
	requireClose(t, matrix.Vec3{1, 3, 3}, p2, tol)

	inv, err := pose.Inverse()
	require.NoError(t, err)
	requireClose(t, matrix.Identity4(), pose.Mul(inv), tol)
}
