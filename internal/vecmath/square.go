package vecmath

import (
	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/wide"
)

func (e *Engine) squareN(dst, src LimbSet) {
	n := e.n
	mag := e.mag
	toSignMagnitudeN(mag, src)

	prod := e.prod
	clear(prod)
	for j := range n {
		for i := j; i < n; i++ {
			p := mag[j].MulWide(mag[i])
			if i != j {
				p = p.Shl(1)
			}
			prod[i+j] = prod[i+j].Add(p.And(limbMask64))
			prod[i+j+1] = prod[i+j+1].Add(p.Shr(fixed.LimbBits))
		}
	}

	sumThePartials(prod)
	e.shiftAndTrim(dst, prod)
}

// sumThePartials propagates the accumulated carries from the least to the
// most significant slot, leaving 31 bits per slot.
func sumThePartials(prod []wide.U64x8) {
	var carry wide.U64x8
	for i := range prod {
		s := prod[i].Add(carry)
		prod[i] = s.And(limbMask64)
		carry = s.Shr(fixed.LimbBits)
	}
	assertNoCarry(carry)
}

// shiftAndTrim drops the low FractionalBits bits of the double-width square
// and keeps LimbCount limbs: each destination limb joins the upper bits of
// one product limb with the lower bits of the next.
func (e *Engine) shiftAndTrim(dst LimbSet, prod []wide.U64x8) {
	n := e.n
	for i := range n {
		lo := prod[i+n-1].Shr(e.fractionShift)
		hi := prod[i+n].Shl(e.integerBits)
		dst[i] = hi.Or(lo).And(limbMask64).Narrow()
	}
}

func (e *Engine) square1(dst, src LimbSet) {
	m := src[0]
	if sign := m.TestBit(fixed.SignBit); sign.Any() {
		m = sign.SelectU32(m.Not().And(limbMask).Add(one).And(limbMask), m)
	}

	p := m.MulWide(m)
	r0 := p.And(limbMask64)
	r1 := p.Shr(fixed.LimbBits)

	dst[0] = r1.Shl(e.integerBits).Or(r0.Shr(e.fractionShift)).And(limbMask64).Narrow()
}

func (e *Engine) square2(dst, src LimbSet) {
	var mag [2]wide.U32x8
	toSignMagnitude2(mag[:], src)
	m0, m1 := mag[0], mag[1]

	p00 := m0.MulWide(m0)
	p01 := m0.MulWide(m1).Shl(1)
	p11 := m1.MulWide(m1)

	r0 := p00.And(limbMask64)
	r1 := p00.Shr(fixed.LimbBits).Add(p01.And(limbMask64))
	r2 := p01.Shr(fixed.LimbBits).Add(p11.And(limbMask64))
	r3 := p11.Shr(fixed.LimbBits)

	c := r0.Shr(fixed.LimbBits)
	r1 = r1.Add(c)
	c = r1.Shr(fixed.LimbBits)
	r1 = r1.And(limbMask64)
	r2 = r2.Add(c)
	c = r2.Shr(fixed.LimbBits)
	r2 = r2.And(limbMask64)
	r3 = r3.Add(c)
	assertNoCarry(r3.Shr(fixed.LimbBits))
	r3 = r3.And(limbMask64)

	dst[0] = r2.Shl(e.integerBits).Or(r1.Shr(e.fractionShift)).And(limbMask64).Narrow()
	dst[1] = r3.Shl(e.integerBits).Or(r2.Shr(e.fractionShift)).And(limbMask64).Narrow()
}
