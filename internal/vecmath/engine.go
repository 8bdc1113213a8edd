package vecmath

import (
	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/wide"
)

// Kind identifies the arithmetic implementation an Engine uses.
type Kind uint8

const (
	// KindGeneric loops over any number of limbs.
	KindGeneric Kind = iota

	// KindOne is unrolled for single-limb formats.
	KindOne

	// KindTwo is unrolled for two-limb formats.
	KindTwo
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOne:
		return "one-limb"
	case KindTwo:
		return "two-limb"
	default:
		return "generic"
	}
}

// KindFor returns the implementation New selects for f.
func KindFor(f fixed.Format) Kind {
	switch f.LimbCount() {
	case 1:
		return KindOne
	case 2:
		return KindTwo
	default:
		return KindGeneric
	}
}

// Engine performs lane-batched arithmetic for one fixed.Format.
//
// The implementation kind is fixed at construction and every method switches
// on it, so the unrolled paths are reached without an interface call.
// Destination LimbSets may alias sources in every operation.
//
// Thread safety: Engine is NOT safe for concurrent use.
type Engine struct {
	kind   Kind
	format fixed.Format
	n      int

	integerBits   uint
	fractionShift uint

	// Scratch reused by every call.
	mag  LimbSet
	conv LimbSet
	prod []wide.U64x8
}

// New returns an engine for f using the implementation chosen by KindFor.
// f must be valid.
func New(f fixed.Format) *Engine {
	return newEngine(f, KindFor(f))
}

func newEngine(f fixed.Format, kind Kind) *Engine {
	if !f.IsValid() {
		panic("vecmath: invalid format")
	}
	n := f.LimbCount()
	return &Engine{
		kind:          kind,
		format:        f,
		n:             n,
		integerBits:   uint(f.IntegerBits()), //nolint:gosec // 2..30
		fractionShift: f.FractionShift(),
		mag:           make(LimbSet, n),
		conv:          make(LimbSet, n),
		prod:          make([]wide.U64x8, 2*n),
	}
}

// Kind returns the implementation in use.
func (e *Engine) Kind() Kind {
	return e.kind
}

// Format returns the engine's format.
func (e *Engine) Format() fixed.Format {
	return e.format
}

// ToSignMagnitude writes the magnitude of every lane of src to dst and
// returns the mask of lanes that were negative.
func (e *Engine) ToSignMagnitude(dst, src LimbSet) wide.Mask8 {
	assertLen(dst, e.n)
	assertLen(src, e.n)
	return e.toSignMagnitude(dst, src)
}

func (e *Engine) toSignMagnitude(dst, src LimbSet) wide.Mask8 {
	switch e.kind {
	case KindOne:
		return toSignMagnitude1(dst, src)
	case KindTwo:
		return toSignMagnitude2(dst, src)
	default:
		return toSignMagnitudeN(dst, src)
	}
}

// Square writes src*src to dst, renormalized to the engine's format.
// Results are exact (truncated) as long as the square fits the format;
// bits above the integer part are discarded otherwise.
func (e *Engine) Square(dst, src LimbSet) {
	assertLen(dst, e.n)
	assertLen(src, e.n)
	switch e.kind {
	case KindOne:
		e.square1(dst, src)
	case KindTwo:
		e.square2(dst, src)
	default:
		e.squareN(dst, src)
	}
}

// Add writes a+b to dst. The carry out of the top limb is dropped.
func (e *Engine) Add(dst, a, b LimbSet) {
	assertLen(dst, e.n)
	switch e.kind {
	case KindOne:
		add1(dst, a, b)
	case KindTwo:
		add2(dst, a, b)
	default:
		addN(dst, a, b)
	}
}

// Sub writes a-b to dst, computed as a + ^b + 1 in one carry chain, which
// equals Add(a, Negate(b)).
func (e *Engine) Sub(dst, a, b LimbSet) {
	assertLen(dst, e.n)
	switch e.kind {
	case KindOne:
		sub1(dst, a, b)
	case KindTwo:
		sub2(dst, a, b)
	default:
		subN(dst, a, b)
	}
}

// Negate writes -src to dst.
func (e *Engine) Negate(dst, src LimbSet) {
	assertLen(dst, e.n)
	switch e.kind {
	case KindOne:
		negate1(dst, src)
	case KindTwo:
		negate2(dst, src)
	default:
		negateN(dst, src)
	}
}
