package wide

import "math"

// F64x8 represents 8 float64 values for SIMD-style operations.
// Used for the floating-point tail of smooth coloring, after the fixed-point
// iterates have been converted.
type F64x8 [8]float64

// SplatF64 creates F64x8 with all elements set to n.
func SplatF64(n float64) F64x8 {
	return Splat[F64x8](n)
}

// Add performs element-wise addition.
func (v F64x8) Add(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F64x8) Sub(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F64x8) Mul(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs element-wise division.
// Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
func (v F64x8) Div(other F64x8) F64x8 {
	var result F64x8
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Log computes the natural logarithm of each element.
// Non-positive values result in -Inf or NaN according to IEEE 754.
func (v F64x8) Log() F64x8 {
	var result F64x8
	for i := range v {
		result[i] = math.Log(v[i])
	}
	return result
}

// InRange returns the lanes whose value lies in [minVal, maxVal].
// NaN lanes are never in range.
func (v F64x8) InRange(minVal, maxVal float64) Mask8 {
	var result Mask8
	for i := range v {
		result[i] = v[i] >= minVal && v[i] <= maxVal
	}
	return result
}

// Round rounds each element half away from zero.
func (v F64x8) Round() F64x8 {
	var result F64x8
	for i := range v {
		result[i] = math.Round(v[i])
	}
	return result
}
