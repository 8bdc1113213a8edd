package vecmath

import (
	"math"

	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/wide"
)

var (
	limbMask   = wide.SplatU32(fixed.LimbMask)
	limbMask64 = wide.SplatU64(uint64(fixed.LimbMask))
	one        = wide.SplatU32(1)
)

// toSignMagnitudeN tests bit 30 of the top limb, negates the negative lanes
// with a complement-plus-one carry chain and blends the result.
func toSignMagnitudeN(dst, src LimbSet) wide.Mask8 {
	n := len(src)
	sign := src[n-1].TestBit(fixed.SignBit)
	if !sign.Any() {
		copy(dst, src)
		return sign
	}

	carry := one
	for i := range n {
		s := src[i].Not().And(limbMask).Add(carry)
		carry = s.Shr(fixed.LimbBits)
		dst[i] = sign.SelectU32(s.And(limbMask), src[i])
	}
	return sign
}

func toSignMagnitude1(dst, src LimbSet) wide.Mask8 {
	x := src[0]
	sign := x.TestBit(fixed.SignBit)
	if !sign.Any() {
		dst[0] = x
		return sign
	}
	dst[0] = sign.SelectU32(x.Not().And(limbMask).Add(one).And(limbMask), x)
	return sign
}

func toSignMagnitude2(dst, src LimbSet) wide.Mask8 {
	x0, x1 := src[0], src[1]
	sign := x1.TestBit(fixed.SignBit)
	if !sign.Any() {
		dst[0], dst[1] = x0, x1
		return sign
	}

	s0 := x0.Not().And(limbMask).Add(one)
	s1 := x1.Not().And(limbMask).Add(s0.Shr(fixed.LimbBits))
	dst[0] = sign.SelectU32(s0.And(limbMask), x0)
	dst[1] = sign.SelectU32(s1.And(limbMask), x1)
	return sign
}

func ldexp(limb uint32, exp int) float64 {
	return math.Ldexp(float64(limb), exp)
}
