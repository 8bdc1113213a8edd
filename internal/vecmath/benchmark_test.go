package vecmath

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/deepzoom/fixed"
)

func BenchmarkSquare(b *testing.B) {
	for _, n := range []int{1, 2, 4, 8} {
		f := fixed.MustFormat(n, 8)
		b.Run(f.String(), func(b *testing.B) {
			e := New(f)
			src, _ := loadRandom(e, rand.New(rand.NewPCG(1, 1)))
			dst := e.NewLimbSet()
			b.ResetTimer()
			for range b.N {
				e.Square(dst, src)
			}
		})
	}
}

func BenchmarkSquare_Generic(b *testing.B) {
	for _, n := range []int{1, 2} {
		f := fixed.MustFormat(n, 8)
		b.Run(f.String(), func(b *testing.B) {
			e := newEngine(f, KindGeneric)
			src, _ := loadRandom(e, rand.New(rand.NewPCG(1, 1)))
			dst := e.NewLimbSet()
			b.ResetTimer()
			for range b.N {
				e.Square(dst, src)
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	f := fixed.MustFormat(4, 8)
	e := New(f)
	r := rand.New(rand.NewPCG(2, 2))
	x, _ := loadRandom(e, r)
	y, _ := loadRandom(e, r)
	dst := e.NewLimbSet()
	b.ResetTimer()
	for range b.N {
		e.Add(dst, x, y)
	}
}
