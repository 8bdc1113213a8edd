package vecmath

import (
	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/wide"
)

// LimbSet holds eight fixed-point numbers, one per lane.
// Index 0 is the least significant limb.
type LimbSet []wide.U32x8

// Select copies src into dst in the lanes where m is set.
// Lanes where m is clear keep their value.
func Select(dst LimbSet, m wide.Mask8, src LimbSet) {
	for i := range dst {
		dst[i] = m.SelectU32(src[i], dst[i])
	}
}

// IsZero reports whether every lane of every limb is zero.
func (s LimbSet) IsZero() bool {
	for i := range s {
		if !s[i].IsZero() {
			return false
		}
	}
	return true
}

// NewLimbSet allocates a zeroed LimbSet sized for the engine's format.
func (e *Engine) NewLimbSet() LimbSet {
	return make(LimbSet, e.n)
}

// Broadcast sets every lane of dst to v.
func (e *Engine) Broadcast(dst LimbSet, v fixed.Value) {
	for i := range dst {
		dst[i] = wide.SplatU32(v.Limb(i))
	}
}

// SetLane sets one lane of dst to v.
func (e *Engine) SetLane(dst LimbSet, lane int, v fixed.Value) {
	for i := range dst {
		dst[i][lane] = v.Limb(i)
	}
}

// SetLaneLimbs sets one lane of dst from raw limbs, least significant first.
func (e *Engine) SetLaneLimbs(dst LimbSet, lane int, limbs []uint32) {
	for i := range dst {
		dst[i][lane] = limbs[i]
	}
}

// LaneLimbs appends the limbs of one lane of src to out.
func (e *Engine) LaneLimbs(out []uint32, src LimbSet, lane int) []uint32 {
	for i := range src {
		out = append(out, src[i][lane])
	}
	return out
}

// Lane returns one lane of src as a scalar value.
func (e *Engine) Lane(src LimbSet, lane int) fixed.Value {
	limbs := make([]uint32, e.n)
	for i := range src {
		limbs[i] = src[i][lane]
	}
	v, err := fixed.FromLimbs(e.format, limbs)
	if err != nil {
		// Limbs leaving the engine always have bit 31 clear.
		panic(err)
	}
	return v
}

// Float64s converts every lane of src to the nearest float64.
// Only the three most significant limbs contribute; they carry more bits
// than a float64 mantissa.
func (e *Engine) Float64s(src LimbSet) wide.F64x8 {
	mag := e.conv
	sign := e.toSignMagnitude(mag, src)

	frac := e.format.FractionalBits()
	lowest := max(0, e.n-3)

	var result wide.F64x8
	for i := e.n - 1; i >= lowest; i-- {
		for l := range result {
			result[l] += ldexp(mag[i][l], fixed.LimbBits*i-frac)
		}
	}
	return sign.SelectF64(result.Mul(wide.SplatF64(-1)), result)
}
