package wide

// U16x8 represents 8 uint16 values.
// Used for escape-velocity scale values (0-10000) of a lane batch.
type U16x8 [8]uint16

// SplatU16 creates U16x8 with all elements set to n.
func SplatU16(n uint16) U16x8 {
	return Splat[U16x8](n)
}

// Clamp clamps each element to [0, maxVal].
func (v U16x8) Clamp(maxVal uint16) U16x8 {
	var result U16x8
	for i := range v {
		result[i] = min(v[i], maxVal)
	}
	return result
}
