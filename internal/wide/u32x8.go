package wide

// U32x8 represents 8 uint32 values for SIMD-style operations.
// It is the storage type of one limb position across eight lanes.
type U32x8 [8]uint32

// SplatU32 creates U32x8 with all elements set to n.
func SplatU32(n uint32) U32x8 {
	return Splat[U32x8](n)
}

// Add performs element-wise addition with 32-bit wraparound.
func (v U32x8) Add(other U32x8) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// And performs element-wise bitwise AND.
func (v U32x8) And(other U32x8) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// Or performs element-wise bitwise OR.
func (v U32x8) Or(other U32x8) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] | other[i]
	}
	return result
}

// Not performs element-wise bitwise complement.
func (v U32x8) Not() U32x8 {
	var result U32x8
	for i := range v {
		result[i] = ^v[i]
	}
	return result
}

// Shl shifts every element left by n bits.
func (v U32x8) Shl(n uint) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] << n
	}
	return result
}

// Shr shifts every element right by n bits (logical shift).
func (v U32x8) Shr(n uint) U32x8 {
	var result U32x8
	for i := range v {
		result[i] = v[i] >> n
	}
	return result
}

// TestBit returns a mask of the lanes in which bit n is set.
func (v U32x8) TestBit(n uint) Mask8 {
	var result Mask8
	for i := range v {
		result[i] = v[i]&(1<<n) != 0
	}
	return result
}

// Widen zero-extends every element to 64 bits.
func (v U32x8) Widen() U64x8 {
	var result U64x8
	for i := range v {
		result[i] = uint64(v[i])
	}
	return result
}

// MulWide multiplies element-wise into 64-bit products.
// The products of two 31-bit limbs never exceed 62 bits.
func (v U32x8) MulWide(other U32x8) U64x8 {
	var result U64x8
	for i := range v {
		result[i] = uint64(v[i]) * uint64(other[i])
	}
	return result
}

// Signed reinterprets every element as int32.
//
//nolint:gosec // reinterpretation is intended; callers mask bit 31 first
func (v U32x8) Signed() I32x8 {
	var result I32x8
	for i := range v {
		result[i] = int32(v[i])
	}
	return result
}

// IsZero reports whether every lane is zero.
func (v U32x8) IsZero() bool {
	return v == U32x8{}
}
