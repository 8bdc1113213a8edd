package wide

import "testing"

// Benchmark the lane primitives used by the limb carry chain.

func BenchmarkU32x8_AddMaskShift(b *testing.B) {
	a := SplatU32(0x7FFFFFFF)
	c := SplatU32(12345)
	mask := SplatU32(0x7FFFFFFF)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := a.Add(c)
		_ = s.And(mask)
		_ = s.Shr(31)
	}
}

func BenchmarkU32x8_MulWide(b *testing.B) {
	a := SplatU32(0x7FFFFFFF)
	c := SplatU32(0x12345678)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.MulWide(c)
	}
}

func BenchmarkMask8_SelectU32(b *testing.B) {
	m := Mask8{true, false, true, false, true, false, true, false}
	x := SplatU32(1)
	y := SplatU32(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.SelectU32(x, y)
	}
}

// Compare wide operations with scalar loops

func BenchmarkScalar_AddMaskShift(b *testing.B) {
	var a, c, digit, carry [8]uint32
	for i := range a {
		a[i] = 0x7FFFFFFF
		c[i] = 12345
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range a {
			s := a[j] + c[j]
			digit[j] = s & 0x7FFFFFFF
			carry[j] = s >> 31
		}
	}
}
