package fixed

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Value is a scalar fixed-point number in a given Format.
//
// Arithmetic on Values wraps modulo 2^TotalBits, exactly like the lane-batched
// arithmetic in vecmath. Values are used for coordinates supplied by callers,
// for deriving per-pixel sample points and for reading back single lanes.
type Value struct {
	format Format
	limbs  []uint32 // two's complement, least significant first
}

// Zero returns the zero value of f.
func Zero(f Format) Value {
	return Value{format: f, limbs: make([]uint32, f.LimbCount())}
}

// FromLimbs builds a Value from raw two's complement limbs.
// The limbs are copied; each must have bit 31 clear.
func FromLimbs(f Format, limbs []uint32) (Value, error) {
	if len(limbs) != f.LimbCount() {
		return Value{}, fmt.Errorf("%w: got %d limbs, format %s needs %d", ErrLimbs, len(limbs), f, f.LimbCount())
	}
	for i, l := range limbs {
		if l&^LimbMask != 0 {
			return Value{}, fmt.Errorf("%w: limb %d has reserved bit set", ErrLimbs, i)
		}
	}
	v := Zero(f)
	copy(v.limbs, limbs)
	return v, nil
}

// FromFloat64 converts x to f, truncating toward zero.
func FromFloat64(f Format, x float64) (Value, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrOutOfRange, x)
	}
	return FromBig(f, new(big.Float).SetFloat64(x))
}

// MustFloat64 is like FromFloat64 but panics if x does not fit.
func MustFloat64(f Format, x float64) Value {
	v, err := FromFloat64(f, x)
	if err != nil {
		panic(err)
	}
	return v
}

// FromBig converts x to f, truncating toward zero.
func FromBig(f Format, x *big.Float) (Value, error) {
	if x.IsInf() {
		return Value{}, fmt.Errorf("%w: %v", ErrOutOfRange, x)
	}
	scaled := new(big.Float).SetPrec(x.Prec() + uint(f.TotalBits()))
	scaled.SetMantExp(x, f.FractionalBits())
	i, _ := scaled.Int(nil)

	half := new(big.Int).Lsh(big.NewInt(1), uint(f.TotalBits()-1))
	if i.Cmp(half) >= 0 || i.Cmp(new(big.Int).Neg(half)) < 0 {
		return Value{}, fmt.Errorf("%w: %s does not fit %s", ErrOutOfRange, x.Text('g', 20), f)
	}
	if i.Sign() < 0 {
		i.Add(i, new(big.Int).Lsh(half, 1))
	}

	v := Zero(f)
	mask := big.NewInt(int64(LimbMask))
	limb := new(big.Int)
	for k := range v.limbs {
		limb.And(i, mask)
		v.limbs[k] = uint32(limb.Uint64()) //nolint:gosec // masked to 31 bits
		i.Rsh(i, LimbBits)
	}
	return v, nil
}

// Parse converts a decimal (or any big.Float syntax) string to f.
// Precision is not limited by float64: every digit that f can resolve is kept.
func Parse(f Format, s string) (Value, error) {
	s = strings.TrimSpace(s)
	x, ok := new(big.Float).SetPrec(uint(f.TotalBits()) + 64).SetString(s)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return FromBig(f, x)
}

// Format returns the format of v.
func (v Value) Format() Format {
	return v.format
}

// Limbs returns a copy of the two's complement limbs.
func (v Value) Limbs() []uint32 {
	return append([]uint32(nil), v.limbs...)
}

// Limb returns limb i without copying.
func (v Value) Limb(i int) uint32 {
	return v.limbs[i]
}

// IsNegative reports whether the sign bit is set.
func (v Value) IsNegative() bool {
	return v.limbs[len(v.limbs)-1]&(1<<SignBit) != 0
}

// IsZero reports whether every limb is zero.
func (v Value) IsZero() bool {
	for _, l := range v.limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether v and o have the same format and limbs.
func (v Value) Equal(o Value) bool {
	if v.format != o.format || len(v.limbs) != len(o.limbs) {
		return false
	}
	for i := range v.limbs {
		if v.limbs[i] != o.limbs[i] {
			return false
		}
	}
	return true
}

// Add returns v + o modulo 2^TotalBits.
func (v Value) Add(o Value) Value {
	v.mustMatch(o)
	r := Zero(v.format)
	var carry uint32
	for i := range r.limbs {
		sum := v.limbs[i] + o.limbs[i] + carry
		r.limbs[i] = sum & LimbMask
		carry = sum >> LimbBits
	}
	return r
}

// Neg returns -v modulo 2^TotalBits.
func (v Value) Neg() Value {
	r := Zero(v.format)
	carry := uint32(1)
	for i := range r.limbs {
		sum := (^v.limbs[i] & LimbMask) + carry
		r.limbs[i] = sum & LimbMask
		carry = sum >> LimbBits
	}
	return r
}

// Sub returns v - o modulo 2^TotalBits.
func (v Value) Sub(o Value) Value {
	return v.Add(o.Neg())
}

// MulInt returns v * k modulo 2^TotalBits.
// Used to derive the sample coordinate of column or row k from a delta.
func (v Value) MulInt(k int) Value {
	if k < 0 {
		return v.Neg().MulInt(-k)
	}
	r := Zero(v.format)
	var carry uint64
	for i := range r.limbs {
		p := uint64(v.limbs[i])*uint64(k) + carry //nolint:gosec // k >= 0
		r.limbs[i] = uint32(p) & LimbMask     //nolint:gosec // masked
		carry = p >> LimbBits
	}
	return r
}

// Abs returns the magnitude of v as limbs of the same format.
// The most negative value maps to itself, as in two's complement.
func (v Value) Abs() Value {
	if v.IsNegative() {
		return v.Neg()
	}
	return v
}

// Float64 returns the nearest float64 to v.
func (v Value) Float64() float64 {
	m := v.Abs()
	var x float64
	for i := len(m.limbs) - 1; i >= 0; i-- {
		x += math.Ldexp(float64(m.limbs[i]), LimbBits*i-v.format.FractionalBits())
	}
	if v.IsNegative() {
		return -x
	}
	return x
}

// BigFloat returns v exactly.
func (v Value) BigFloat() *big.Float {
	i := new(big.Int)
	for k := len(v.limbs) - 1; k >= 0; k-- {
		i.Lsh(i, LimbBits)
		i.Or(i, big.NewInt(int64(v.limbs[k])))
	}
	if v.IsNegative() {
		i.Sub(i, new(big.Int).Lsh(big.NewInt(1), uint(v.format.TotalBits())))
	}
	x := new(big.Float).SetPrec(uint(v.format.TotalBits()) + 1).SetInt(i)
	return x.SetMantExp(x, -v.format.FractionalBits())
}

// String returns v in decimal with enough digits to identify it.
func (v Value) String() string {
	digits := int(float64(v.format.FractionalBits())*math.Log10(2)) + 2
	return v.BigFloat().Text('g', digits)
}

func (v Value) mustMatch(o Value) {
	if v.format != o.format {
		panic(fmt.Sprintf("fixed: format mismatch %s vs %s", v.format, o.format))
	}
}
