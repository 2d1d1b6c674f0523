// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the few runtime checks a
//    fixed-size algebra still needs: index bounds, slice lengths, the
//    singularity threshold.
//  - Return plain sentinels / typed carriers so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on the error path.
//
// Note:
//  - Shapes of MatN/VecN are type-level constants; no validator re-checks them.

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateIndex ensures (i, j) addresses a cell of an n×n matrix.
//
// Returns: nil or ErrOutOfRange wrapped with the offending indices.
// Complexity: O(1).
// AI-Hints: SubMatrix calls this first; kernels that build minors from loop
// indices skip it because those indices are in range by construction.
func ValidateIndex(i, j, n int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return matrixErrorf(opValidateIdx, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, n, n, ErrOutOfRange))
	}

	return nil
}

// ValidateVecLen ensures a slice has exactly n components.
//
// Returns: nil or *VectorDimError{Len: len(x), Want: [n]}.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return &VectorDimError{Len: len(x), Want: []int{n}}
	}

	return nil
}

// invertible reports whether det is resolvably non-zero relative to bound,
// the Hadamard bound of the matrix it came from (|det| <= bound always holds).
func invertible(det, bound float64) bool {
	return math.Abs(det) > MachineEpsilon*bound
}

// hadamardBound returns Π_i ‖row_i‖, the Hadamard upper bound on |det(m)|.
// Rounding in the cofactor expansion is proportional to it, so it scales the
// singularity threshold. The zero matrix yields 0.
func hadamardBound[M Square](m M) float64 {
	n := m.Rows()
	bound := 1.0
	for i := 0; i < n; i++ {
		row := ZeroSum
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			row += v * v
		}
		bound *= math.Sqrt(row)
	}

	return bound
}

// cofactorSign returns (−1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}
