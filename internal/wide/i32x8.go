package wide

// I32x8 represents 8 int32 values.
// Used for per-lane iteration counts and signed limb comparisons.
type I32x8 [8]int32

// SplatI32 creates I32x8 with all elements set to n.
func SplatI32(n int32) I32x8 {
	return Splat[I32x8](n)
}

// Add performs element-wise addition.
func (v I32x8) Add(other I32x8) I32x8 {
	var result I32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v I32x8) Sub(other I32x8) I32x8 {
	var result I32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Greater returns the lanes where v[i] > other[i].
func (v I32x8) Greater(other I32x8) Mask8 {
	var result Mask8
	for i := range v {
		result[i] = v[i] > other[i]
	}
	return result
}

// GreaterEqual returns the lanes where v[i] >= other[i].
func (v I32x8) GreaterEqual(other I32x8) Mask8 {
	var result Mask8
	for i := range v {
		result[i] = v[i] >= other[i]
	}
	return result
}
