// Package fixed implements the multi-limb fixed-point number format.
//
// A number is a two's complement integer of 31*LimbCount bits stored in
// 31-bit limbs, least significant limb first. Bit 31 of every limb is
// reserved headroom for carries and must be zero between operations, so the
// sign of the whole number is bit 30 of the most significant limb.
//
// The top IntegerBits bits (sign included) hold the integer part and the
// remaining FractionalBits bits hold the fraction:
//
//	value = int(limbs) / 2^FractionalBits
//
// With IntegerBits = 8 and two limbs the format covers [-128, 128) with a
// resolution of 2^-54.
package fixed

import (
	"fmt"
	"math"
)

// Limb layout constants.
const (
	// LimbBits is the number of significant bits per limb.
	LimbBits = 31

	// LimbMask selects the significant bits of a limb.
	LimbMask uint32 = 1<<LimbBits - 1

	// SignBit is the bit of the most significant limb that carries the sign.
	SignBit = LimbBits - 1

	// MaxLimbs bounds the precision a format may request.
	MaxLimbs = 64

	// MinIntegerBits and MaxIntegerBits bound the integer part width.
	MinIntegerBits = 2
	MaxIntegerBits = 30
)

// Format describes the shape of a fixed-point number: how many limbs it has
// and how many of its top bits belong to the integer part.
//
// Format is an immutable value type; the zero Format is invalid.
type Format struct {
	limbCount   uint32
	integerBits uint8
}

// NewFormat returns the format with the given limb count and integer width.
func NewFormat(limbCount, integerBits int) (Format, error) {
	if limbCount < 1 || limbCount > MaxLimbs {
		return Format{}, fmt.Errorf("%w: limb count %d not in [1, %d]", ErrInvalidFormat, limbCount, MaxLimbs)
	}
	if integerBits < MinIntegerBits || integerBits > MaxIntegerBits {
		return Format{}, fmt.Errorf("%w: integer bits %d not in [%d, %d]",
			ErrInvalidFormat, integerBits, MinIntegerBits, MaxIntegerBits)
	}
	return Format{
		limbCount:   uint32(limbCount),   //nolint:gosec // bounded above
		integerBits: uint8(integerBits), //nolint:gosec // bounded above
	}, nil
}

// MustFormat is like NewFormat but panics on invalid arguments.
// Intended for package-level variables and tests.
func MustFormat(limbCount, integerBits int) Format {
	f, err := NewFormat(limbCount, integerBits)
	if err != nil {
		panic(err)
	}
	return f
}

// IsValid reports whether f was produced by NewFormat.
func (f Format) IsValid() bool {
	return f.limbCount != 0
}

// LimbCount returns the number of limbs.
func (f Format) LimbCount() int {
	return int(f.limbCount)
}

// IntegerBits returns the width of the integer part, sign bit included.
func (f Format) IntegerBits() int {
	return int(f.integerBits)
}

// FractionShift is the shift that renormalizes a squared value:
// 31 - IntegerBits.
func (f Format) FractionShift() uint {
	return uint(LimbBits - int(f.integerBits)) //nolint:gosec // always positive
}

// TotalBits returns 31 * LimbCount.
func (f Format) TotalBits() int {
	return LimbBits * int(f.limbCount)
}

// FractionalBits returns the number of bits below the binary point.
func (f Format) FractionalBits() int {
	return f.TotalBits() - int(f.integerBits)
}

// Resolution returns the value of one unit in the last place.
func (f Format) Resolution() float64 {
	return math.Ldexp(1, -f.FractionalBits())
}

// Bound returns the exclusive magnitude bound 2^(IntegerBits-1).
// Representable values lie in [-Bound, Bound).
func (f Format) Bound() float64 {
	return math.Ldexp(1, int(f.integerBits)-1)
}

// MaxThreshold returns the largest integer escape threshold t for which an
// iterate that has not yet escaped (|z|^2 < t) can be stepped and squared
// again without leaving the format: (t+2)^2 < 2^(IntegerBits-1).
// It returns 0 when no threshold is safe.
func (f Format) MaxThreshold() uint32 {
	limit := uint64(1) << (f.integerBits - 1)
	if limit <= 4 {
		return 0
	}
	t := uint64(0)
	for (t+3)*(t+3) < limit {
		t++
	}
	return uint32(t) //nolint:gosec // t < 2^15
}

// String returns the format as "integer:fraction" bits, e.g. "8:54".
func (f Format) String() string {
	if !f.IsValid() {
		return "invalid"
	}
	return fmt.Sprintf("%d:%d", f.integerBits, f.FractionalBits())
}
