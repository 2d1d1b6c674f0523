// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded random matrices, reference
//     matrices with exact determinants) and tolerance comparisons.
//   • Keep all data finite and well-conditioned to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/kinematrix/matrix"
)

// tol is the absolute tolerance used for hand-computed references.
const tol = 1e-5

// oracleTol is the absolute tolerance when comparing against gonum.
const oracleTol = 1e-9

// CompareClose FAILS the test when want and got differ by more than atol in
// any float64 leaf. want and got must have the same type (VecN, MatN, float64).
// Implementation:
//   - Stage 1: cmp.Diff with cmpopts.EquateApprox(0, atol).
//   - Stage 2: t.Fatalf with the (-want +got) diff.
//
// AI-Hints:
//   - Use CompareExact for permutation-only operations (Transpose).
func CompareClose(t *testing.T, want, got any, atol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, atol)); diff != "" {
		t.Fatalf("mismatch beyond %g (-want +got):\n%s", atol, diff)
	}
}

// CompareExact FAILS the test unless want == got bit for bit.
func CompareExact(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// AssertErrorIs ASSERTS errors.Is(err, target); fatal on mismatch.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// fillDominant streams n×n values in [-1, 1) to set, adding n+1 on the
// diagonal so the result is strictly diagonally dominant (hence invertible).
// Deterministic for a given seed.
func fillDominant(seed int64, n int, set func(i, j int, v float64)) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 2*rng.Float64() - 1
			if i == j {
				v += float64(n + 1)
			}
			set(i, j, v)
		}
	}
}

// RandMat2 RETURNS a seeded, well-conditioned 2×2 matrix.
func RandMat2(seed int64) matrix.Mat2 {
	var m matrix.Mat2
	fillDominant(seed, 2, func(i, j int, v float64) { m[i][j] = v })
	return m
}

// RandMat3 RETURNS a seeded, well-conditioned 3×3 matrix.
func RandMat3(seed int64) matrix.Mat3 {
	var m matrix.Mat3
	fillDominant(seed, 3, func(i, j int, v float64) { m[i][j] = v })
	return m
}

// RandMat4 RETURNS a seeded, well-conditioned 4×4 matrix.
func RandMat4(seed int64) matrix.Mat4 {
	var m matrix.Mat4
	fillDominant(seed, 4, func(i, j int, v float64) { m[i][j] = v })
	return m
}

// RandMat5 RETURNS a seeded, well-conditioned 5×5 matrix.
func RandMat5(seed int64) matrix.Mat5 {
	var m matrix.Mat5
	fillDominant(seed, 5, func(i, j int, v float64) { m[i][j] = v })
	return m
}

// RandMat6 RETURNS a seeded, well-conditioned 6×6 matrix.
func RandMat6(seed int64) matrix.Mat6 {
	var m matrix.Mat6
	fillDominant(seed, 6, func(i, j int, v float64) { m[i][j] = v })
	return m
}

// fillUniform streams n×n values in [-5, 5) to set. No dominance: the result is
// generic but may be poorly conditioned.
func fillUniform(seed int64, n int, set func(i, j int, v float64)) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			set(i, j, 10*rng.Float64()-5)
		}
	}
}

// RandUniformMat4 RETURNS a seeded 4×4 matrix with entries in [-5, 5).
func RandUniformMat4(seed int64) matrix.Mat4 {
	var m matrix.Mat4
	fillUniform(seed, 4, func(i, j int, v float64) { m[i][j] = v })
	return m
}

// RandUniformMat5 RETURNS a seeded 5×5 matrix with entries in [-5, 5).
func RandUniformMat5(seed int64) matrix.Mat5 {
	var m matrix.Mat5
	fillUniform(seed, 5, func(i, j int, v float64) { m[i][j] = v })
	return m
}

// RandUniformMat6 RETURNS a seeded 6×6 matrix with entries in [-5, 5).
func RandUniformMat6(seed int64) matrix.Mat6 {
	var m matrix.Mat6
	fillUniform(seed, 6, func(i, j int, v float64) { m[i][j] = v })
	return m
}

// Reference matrices with exact integer determinants (computed with rational
// arithmetic).
var (
	// det −2
	refMat2 = matrix.Mat2{{1, 2}, {3, 4}}
	// det 6
	refMat3 = matrix.Mat3{{1, 0, 3}, {2, 1, 6}, {1, 0, 9}}
	refMat4 = matrix.Mat4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{2, 6, 4, 8},
		{3, 1, 1, 2},
	} // det 72
	refMat5 = matrix.Mat5{
		{2, 0, 1, 3, 1},
		{1, 4, 0, 2, 2},
		{0, 1, 5, 1, 0},
		{3, 2, 1, 6, 1},
		{1, 0, 2, 1, 3},
	} // det 99
	refMat6 = matrix.Mat6{
		{4, 1, 0, 2, 1, 0},
		{1, 5, 1, 0, 2, 1},
		{0, 1, 6, 1, 0, 2},
		{2, 0, 1, 7, 1, 0},
		{1, 2, 0, 1, 8, 1},
		{0, 1, 2, 0, 1, 9},
	} // det 35866
	seq4 = matrix.Mat4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	} // rank 2, det 0
)
