package vecmath

import (
	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/wide"
)

func addN(dst, a, b LimbSet) {
	var carry wide.U32x8
	for i := range dst {
		s := a[i].Add(b[i]).Add(carry)
		dst[i] = s.And(limbMask)
		carry = s.Shr(fixed.LimbBits)
	}
}

func subN(dst, a, b LimbSet) {
	carry := one
	for i := range dst {
		s := a[i].Add(b[i].Not().And(limbMask)).Add(carry)
		dst[i] = s.And(limbMask)
		carry = s.Shr(fixed.LimbBits)
	}
}

func negateN(dst, src LimbSet) {
	carry := one
	for i := range dst {
		s := src[i].Not().And(limbMask).Add(carry)
		dst[i] = s.And(limbMask)
		carry = s.Shr(fixed.LimbBits)
	}
}

func add1(dst, a, b LimbSet) {
	dst[0] = a[0].Add(b[0]).And(limbMask)
}

func sub1(dst, a, b LimbSet) {
	dst[0] = a[0].Add(b[0].Not().And(limbMask)).Add(one).And(limbMask)
}

func negate1(dst, src LimbSet) {
	dst[0] = src[0].Not().And(limbMask).Add(one).And(limbMask)
}

func add2(dst, a, b LimbSet) {
	s0 := a[0].Add(b[0])
	s1 := a[1].Add(b[1]).Add(s0.Shr(fixed.LimbBits))
	dst[0] = s0.And(limbMask)
	dst[1] = s1.And(limbMask)
}

func sub2(dst, a, b LimbSet) {
	s0 := a[0].Add(b[0].Not().And(limbMask)).Add(one)
	s1 := a[1].Add(b[1].Not().And(limbMask)).Add(s0.Shr(fixed.LimbBits))
	dst[0] = s0.And(limbMask)
	dst[1] = s1.And(limbMask)
}

func negate2(dst, src LimbSet) {
	s0 := src[0].Not().And(limbMask).Add(one)
	s1 := src[1].Not().And(limbMask).Add(s0.Shr(fixed.LimbBits))
	dst[0] = s0.And(limbMask)
	dst[1] = s1.And(limbMask)
}
