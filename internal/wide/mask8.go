package wide

// Mask8 holds one boolean per lane.
// Comparisons produce masks; blends consume them so that per-lane control
// flow never turns into branches inside the arithmetic loops.
type Mask8 [8]bool

// Or performs element-wise logical OR.
func (m Mask8) Or(other Mask8) Mask8 {
	var result Mask8
	for i := range m {
		result[i] = m[i] || other[i]
	}
	return result
}

// And performs element-wise logical AND.
func (m Mask8) And(other Mask8) Mask8 {
	var result Mask8
	for i := range m {
		result[i] = m[i] && other[i]
	}
	return result
}

// AndNot returns m AND NOT other.
func (m Mask8) AndNot(other Mask8) Mask8 {
	var result Mask8
	for i := range m {
		result[i] = m[i] && !other[i]
	}
	return result
}

// Xor performs element-wise exclusive OR.
func (m Mask8) Xor(other Mask8) Mask8 {
	var result Mask8
	for i := range m {
		result[i] = m[i] != other[i]
	}
	return result
}

// Not inverts every lane.
func (m Mask8) Not() Mask8 {
	var result Mask8
	for i := range m {
		result[i] = !m[i]
	}
	return result
}

// Any reports whether at least one lane is set.
func (m Mask8) Any() bool {
	return m != Mask8{}
}

// All reports whether every lane is set.
func (m Mask8) All() bool {
	return m == Mask8{true, true, true, true, true, true, true, true}
}

// Count returns the number of set lanes.
func (m Mask8) Count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

// SelectU32 returns a[i] where the mask is set and b[i] elsewhere.
func (m Mask8) SelectU32(a, b U32x8) U32x8 {
	var result U32x8
	for i := range m {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// SelectI32 returns a[i] where the mask is set and b[i] elsewhere.
func (m Mask8) SelectI32(a, b I32x8) I32x8 {
	var result I32x8
	for i := range m {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// SelectU16 returns a[i] where the mask is set and b[i] elsewhere.
func (m Mask8) SelectU16(a, b U16x8) U16x8 {
	var result U16x8
	for i := range m {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// SelectF64 returns a[i] where the mask is set and b[i] elsewhere.
func (m Mask8) SelectF64(a, b F64x8) F64x8 {
	var result F64x8
	for i := range m {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// Lanes returns the indices of the set lanes in ascending order.
func (m Mask8) Lanes() []int {
	out := make([]int, 0, Lanes)
	for i, b := range m {
		if b {
			out = append(out, i)
		}
	}
	return out
}
