// SPDX-License-Identifier: MIT
// Package matrix: error taxonomy (closed set, unified, consistent).
// This file defines the package-level sentinel errors and the typed carriers
// that attach the offending dimensions. Kernels return these values; tests
// MUST check them via errors.Is / errors.As. No kernel panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so a log line can be traced to
// this package. Typed carriers unwrap to exactly one sentinel, therefore
// errors.Is(err, ErrX) keeps working after any amount of %w wrapping.

var (
	// ErrDimensionMismatch indicates two vectors that must share a dimension do not.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidVectorDim indicates a vector length outside the set supported by
	// an operation (e.g. skew construction accepts only 1 or 3 components).
	ErrInvalidVectorDim = errors.New("matrix: invalid vector dimension")

	// ErrBadShape indicates a matrix shape outside the range an operation supports.
	ErrBadShape = errors.New("matrix: invalid matrix shape")

	// ErrSingular is returned by Inverse when |det| does not exceed
	// MachineEpsilon times the Hadamard bound Π‖row_i‖.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrVector3OrScalar indicates an input that is neither a scalar nor a 3-vector.
	ErrVector3OrScalar = errors.New("matrix: input must be a Vec3 or a scalar")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// LengthMismatchError reports two vector lengths that were required to agree.
// It unwraps to ErrDimensionMismatch.
type LengthMismatchError struct {
	LenU int // length of the first operand
	LenV int // length of the second operand
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("matrix: operands must be 3-vectors of equal length: len(u)=%d, len(v)=%d", e.LenU, e.LenV)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *LengthMismatchError) Unwrap() error { return ErrDimensionMismatch }

// VectorDimError reports a vector whose length is not accepted by an operation.
// It unwraps to ErrInvalidVectorDim.
type VectorDimError struct {
	Len  int   // observed length
	Want []int // accepted lengths, ascending
}

func (e *VectorDimError) Error() string {
	return fmt.Sprintf("matrix: vector length %d not in %v", e.Len, e.Want)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *VectorDimError) Unwrap() error { return ErrInvalidVectorDim }

// ShapeError reports a matrix shape outside the accepted range.
// It unwraps to ErrBadShape.
type ShapeError struct {
	Rows int
	Cols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix: unsupported shape %dx%d", e.Rows, e.Cols)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ShapeError) Unwrap() error { return ErrBadShape }
