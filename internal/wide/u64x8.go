package wide

// U64x8 represents 8 uint64 values.
// It holds the double-width accumulators of a widening multiplication, where
// several 31-bit partial results are summed into one slot before the carries
// are propagated.
type U64x8 [8]uint64

// SplatU64 creates U64x8 with all elements set to n.
func SplatU64(n uint64) U64x8 {
	return Splat[U64x8](n)
}

// Add performs element-wise addition.
func (v U64x8) Add(other U64x8) U64x8 {
	var result U64x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// And performs element-wise bitwise AND.
func (v U64x8) And(other U64x8) U64x8 {
	var result U64x8
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// Or performs element-wise bitwise OR.
func (v U64x8) Or(other U64x8) U64x8 {
	var result U64x8
	for i := range v {
		result[i] = v[i] | other[i]
	}
	return result
}

// Shl shifts every element left by n bits.
func (v U64x8) Shl(n uint) U64x8 {
	var result U64x8
	for i := range v {
		result[i] = v[i] << n
	}
	return result
}

// Shr shifts every element right by n bits.
func (v U64x8) Shr(n uint) U64x8 {
	var result U64x8
	for i := range v {
		result[i] = v[i] >> n
	}
	return result
}

// Narrow truncates every element to its low 32 bits.
//
//nolint:gosec // truncation is intended; callers mask to 31 bits first
func (v U64x8) Narrow() U32x8 {
	var result U32x8
	for i := range v {
		result[i] = uint32(v[i])
	}
	return result
}

// IsZero reports whether every lane is zero.
func (v U64x8) IsZero() bool {
	return v == U64x8{}
}
