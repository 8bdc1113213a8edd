package vecmath

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/wide"
)

// randomLimbs fills n 31-bit limbs from r.
func randomLimbs(r *rand.Rand, n int) []uint32 {
	limbs := make([]uint32, n)
	for i := range limbs {
		limbs[i] = r.Uint32() & fixed.LimbMask
	}
	return limbs
}

// loadRandom fills every lane of a fresh LimbSet with random limbs and
// returns the per-lane limbs as well.
func loadRandom(e *Engine, r *rand.Rand) (LimbSet, [][]uint32) {
	s := e.NewLimbSet()
	lanes := make([][]uint32, wide.Lanes)
	for l := range lanes {
		lanes[l] = randomLimbs(r, e.Format().LimbCount())
		e.SetLaneLimbs(s, l, lanes[l])
	}
	return s, lanes
}

// signedInt decodes limbs as a 31n-bit two's complement integer.
func signedInt(limbs []uint32) *big.Int {
	v := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		v.Lsh(v, fixed.LimbBits)
		v.Or(v, big.NewInt(int64(limbs[i])))
	}
	bits := uint(fixed.LimbBits * len(limbs))
	if v.Bit(int(bits-1)) == 1 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), bits))
	}
	return v
}

// encode reduces v modulo 2^(31n) and splits it into limbs.
func encode(v *big.Int, n int) []uint32 {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(fixed.LimbBits*n))
	u := new(big.Int).Mod(v, mod)
	limbs := make([]uint32, n)
	mask := big.NewInt(int64(fixed.LimbMask))
	for i := range limbs {
		limbs[i] = uint32(new(big.Int).And(u, mask).Uint64())
		u.Rsh(u, fixed.LimbBits)
	}
	return limbs
}

// referenceSquare is |v|^2 truncated to the format's fraction bits.
func referenceSquare(f fixed.Format, limbs []uint32) []uint32 {
	v := signedInt(limbs)
	v.Abs(v)
	sq := new(big.Int).Mul(v, v)
	sq.Rsh(sq, uint(f.FractionalBits()))
	return encode(sq, f.LimbCount())
}

func equalLimbs(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		limbs int
		want  Kind
	}{
		{1, KindOne},
		{2, KindTwo},
		{3, KindGeneric},
		{8, KindGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := KindFor(fixed.MustFormat(tt.limbs, 8)); got != tt.want {
				t.Errorf("KindFor(%d limbs) = %v, want %v", tt.limbs, got, tt.want)
			}
		})
	}
}

func TestNew_InvalidFormatPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(zero Format) did not panic")
		}
	}()
	New(fixed.Format{})
}

func TestSquare_MatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{1, 2, 3, 4, 7} {
		for _, ib := range []int{2, 8, 17, 30} {
			f := fixed.MustFormat(n, ib)
			t.Run(f.String(), func(t *testing.T) {
				e := New(f)
				for range 50 {
					src, lanes := loadRandom(e, r)
					dst := e.NewLimbSet()
					e.Square(dst, src)
					for l, limbs := range lanes {
						want := referenceSquare(f, limbs)
						got := e.LaneLimbs(nil, dst, l)
						if !equalLimbs(got, want) {
							t.Fatalf("lane %d: Square(%x) = %x, want %x", l, limbs, got, want)
						}
					}
				}
			})
		}
	}
}

func TestSquare_Values(t *testing.T) {
	f := fixed.MustFormat(2, 8)
	e := New(f)

	tests := []struct {
		input, want float64
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{1.5, 2.25},
		{-0.75, 0.5625},
		{2, 4},
		{-11, 121},
	}

	src := e.NewLimbSet()
	for l, tt := range tests {
		e.SetLane(src, l, fixed.MustFloat64(f, tt.input))
	}
	dst := e.NewLimbSet()
	e.Square(dst, src)

	got := e.Float64s(dst)
	for l, tt := range tests {
		if got[l] != tt.want {
			t.Errorf("Square(%g) = %g, want %g", tt.input, got[l], tt.want)
		}
	}
}

func TestSquare_Aliasing(t *testing.T) {
	f := fixed.MustFormat(3, 8)
	e := New(f)

	s := e.NewLimbSet()
	e.Broadcast(s, fixed.MustFloat64(f, -3))
	e.Square(s, s)

	if got := e.Lane(s, 5).Float64(); got != 9 {
		t.Errorf("in-place Square(-3) = %g, want 9", got)
	}
}

func TestKinds_BitIdentical(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for _, n := range []int{1, 2} {
		for _, ib := range []int{2, 8, 30} {
			f := fixed.MustFormat(n, ib)
			t.Run(f.String(), func(t *testing.T) {
				special := New(f)
				generic := newEngine(f, KindGeneric)

				for range 200 {
					a, _ := loadRandom(special, r)
					b, _ := loadRandom(special, r)

					ops := []struct {
						name string
						run  func(e *Engine, dst LimbSet)
					}{
						{"Square", func(e *Engine, dst LimbSet) { e.Square(dst, a) }},
						{"Add", func(e *Engine, dst LimbSet) { e.Add(dst, a, b) }},
						{"Sub", func(e *Engine, dst LimbSet) { e.Sub(dst, a, b) }},
						{"Negate", func(e *Engine, dst LimbSet) { e.Negate(dst, a) }},
						{"ToSignMagnitude", func(e *Engine, dst LimbSet) { e.ToSignMagnitude(dst, a) }},
					}
					for _, op := range ops {
						want := generic.NewLimbSet()
						got := special.NewLimbSet()
						op.run(generic, want)
						op.run(special, got)
						for i := range want {
							if got[i] != want[i] {
								t.Fatalf("%s limb %d: %v = %x, generic = %x", op.name, i, special.Kind(), got[i], want[i])
							}
						}
					}
				}
			})
		}
	}
}

func TestAddSub_Identities(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))

	for _, n := range []int{1, 2, 5} {
		f := fixed.MustFormat(n, 8)
		t.Run(f.String(), func(t *testing.T) {
			e := New(f)
			for range 50 {
				a, _ := loadRandom(e, r)
				b, _ := loadRandom(e, r)

				sum := e.NewLimbSet()
				diff := e.NewLimbSet()
				neg := e.NewLimbSet()
				viaNeg := e.NewLimbSet()

				e.Add(sum, a, b)
				e.Sub(diff, sum, b)
				for i := range a {
					if diff[i] != a[i] {
						t.Fatalf("(a+b)-b limb %d = %x, want %x", i, diff[i], a[i])
					}
				}

				e.Negate(neg, b)
				e.Add(viaNeg, a, neg)
				e.Sub(diff, a, b)
				for i := range a {
					if viaNeg[i] != diff[i] {
						t.Fatalf("a+(-b) limb %d = %x, a-b = %x", i, viaNeg[i], diff[i])
					}
				}

				e.Sub(diff, a, a)
				if !diff.IsZero() {
					t.Fatalf("a-a = %x, want zero", diff)
				}
			}
		})
	}
}

func TestAdd_MatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 17))
	f := fixed.MustFormat(4, 8)
	e := New(f)

	for range 50 {
		a, la := loadRandom(e, r)
		b, lb := loadRandom(e, r)
		dst := e.NewLimbSet()
		e.Add(dst, a, b)
		for l := range wide.Lanes {
			want := encode(new(big.Int).Add(signedInt(la[l]), signedInt(lb[l])), 4)
			if got := e.LaneLimbs(nil, dst, l); !equalLimbs(got, want) {
				t.Fatalf("lane %d: Add = %x, want %x", l, got, want)
			}
		}
	}
}

func TestToSignMagnitude(t *testing.T) {
	f := fixed.MustFormat(2, 8)
	e := New(f)

	inputs := []float64{0, 1, -1, 3.25, -3.25, -128, 127.5, -0.000001}
	src := e.NewLimbSet()
	for l, x := range inputs {
		e.SetLane(src, l, fixed.MustFloat64(f, x))
	}

	mag := e.NewLimbSet()
	neg := e.ToSignMagnitude(mag, src)

	for l, x := range inputs {
		if neg[l] != (x < 0) {
			t.Errorf("lane %d (%g): negative = %v", l, x, neg[l])
		}
		want := new(big.Int).Abs(signedInt(e.LaneLimbs(nil, src, l)))
		got := new(big.Int)
		limbs := e.LaneLimbs(nil, mag, l)
		for i := len(limbs) - 1; i >= 0; i-- {
			got.Lsh(got, fixed.LimbBits)
			got.Or(got, big.NewInt(int64(limbs[i])))
		}
		if got.Cmp(want) != 0 {
			t.Errorf("lane %d (%g): magnitude = %v, want %v", l, x, got, want)
		}
	}
}

func TestIsGreaterOrEqual(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		f := fixed.MustFormat(n, 8)
		t.Run(f.String(), func(t *testing.T) {
			e := New(f)
			// -5 stands in for a sum that wrapped past the integer range.
			inputs := []float64{0, 3.99999, 4, 4.5, 8, 100, -5, 127}
			want := wide.Mask8{false, false, true, true, true, true, true, true}

			s := e.NewLimbSet()
			for l, x := range inputs {
				e.SetLane(s, l, fixed.MustFloat64(f, x))
			}
			if got := e.IsGreaterOrEqual(s, e.ThresholdVector(4)); got != want {
				t.Errorf("IsGreaterOrEqual(%v, 4) = %v, want %v", inputs, got, want)
			}
		})
	}
}

func TestThresholdVector(t *testing.T) {
	e := New(fixed.MustFormat(2, 8))
	if got, want := e.ThresholdVector(4), wide.SplatI32(4<<23); got != want {
		t.Errorf("ThresholdVector(4) = %v, want %v", got, want)
	}
}

func TestFloat64s(t *testing.T) {
	f := fixed.MustFormat(4, 8)
	e := New(f)

	inputs := []float64{0, 1, -1, math.Pi, -math.E, 127.25, -128, math.Ldexp(1, -80)}
	s := e.NewLimbSet()
	for l, x := range inputs {
		e.SetLane(s, l, fixed.MustFloat64(f, x))
	}

	got := e.Float64s(s)
	for l, x := range inputs {
		if got[l] != x {
			t.Errorf("lane %d: Float64s = %g, want %g", l, got[l], x)
		}
	}
}

func TestSelect(t *testing.T) {
	e := New(fixed.MustFormat(2, 8))
	dst := e.NewLimbSet()
	src := e.NewLimbSet()
	e.Broadcast(src, fixed.MustFloat64(e.Format(), 2))

	m := wide.Mask8{true, false, true, false, false, false, false, true}
	Select(dst, m, src)

	got := e.Float64s(dst)
	for l := range got {
		want := 0.0
		if m[l] {
			want = 2
		}
		if got[l] != want {
			t.Errorf("lane %d = %g, want %g", l, got[l], want)
		}
	}
}

func TestCapabilities(t *testing.T) {
	if Capabilities() == "" {
		t.Error("Capabilities() is empty")
	}
}
