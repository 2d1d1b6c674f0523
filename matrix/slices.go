// SPDX-License-Identifier: MIT
// Package matrix — slice boundary.
//
// Purpose:
//   - Convert runtime-length []float64 input into the fixed-size vector types,
//     which is the only place a length can be wrong.
//   - Errors carry the observed lengths (VectorDimError, LengthMismatchError).

package matrix

// Vec2FromSlice copies s into a Vec2. Fails with *VectorDimError when len(s) != 2.
func Vec2FromSlice(s []float64) (Vec2, error) {
	var v Vec2
	if err := ValidateVecLen(s, len(v)); err != nil {
		return v, matrixErrorf(opFromSlice, err)
	}
	copy(v[:], s)

	return v, nil
}

// Vec3FromSlice copies s into a Vec3. Fails with *VectorDimError when len(s) != 3.
func Vec3FromSlice(s []float64) (Vec3, error) {
	var v Vec3
	if err := ValidateVecLen(s, len(v)); err != nil {
		return v, matrixErrorf(opFromSlice, err)
	}
	copy(v[:], s)

	return v, nil
}

// Vec4FromSlice copies s into a Vec4.
func Vec4FromSlice(s []float64) (Vec4, error) {
	var v Vec4
	if err := ValidateVecLen(s, len(v)); err != nil {
		return v, matrixErrorf(opFromSlice, err)
	}
	copy(v[:], s)

	return v, nil
}

// Vec5FromSlice copies s into a Vec5.
func Vec5FromSlice(s []float64) (Vec5, error) {
	var v Vec5
	if err := ValidateVecLen(s, len(v)); err != nil {
		return v, matrixErrorf(opFromSlice, err)
	}
	copy(v[:], s)

	return v, nil
}

// Vec6FromSlice copies s into a Vec6.
func Vec6FromSlice(s []float64) (Vec6, error) {
	var v Vec6
	if err := ValidateVecLen(s, len(v)); err != nil {
		return v, matrixErrorf(opFromSlice, err)
	}
	copy(v[:], s)

	return v, nil
}

// CrossSlices returns u × v for two runtime-length slices.
//
// Errors:
//   - *LengthMismatchError (unwraps to ErrDimensionMismatch) when the lengths
//     differ or are not 3. Both lengths are reported.
//
// AI-Hints:
//   - With values already typed as Vec3, call Vec3.Cross; it cannot fail.
func CrossSlices(u, v []float64) (Vec3, error) {
	if len(u) != 3 || len(v) != 3 {
		return Vec3{}, matrixErrorf(opCross, &LengthMismatchError{LenU: len(u), LenV: len(v)})
	}

	return Vec3{u[0], u[1], u[2]}.Cross(Vec3{v[0], v[1], v[2]}), nil
}
