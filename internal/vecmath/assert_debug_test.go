//go:build deepzoomdebug

package vecmath

import (
	"testing"

	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/wide"
)

// panicMessage runs fn and returns what it panicked with, or nil.
func panicMessage(fn func()) (msg any) {
	defer func() { msg = recover() }()
	fn()
	return nil
}

func TestAssertLen(t *testing.T) {
	e := New(fixed.MustFormat(2, 8))
	short := make(LimbSet, 1)

	tests := []struct {
		name string
		fn   func()
	}{
		{"ToSignMagnitude", func() { e.ToSignMagnitude(short, e.NewLimbSet()) }},
		{"Square", func() { e.Square(e.NewLimbSet(), short) }},
		{"Add", func() { e.Add(short, e.NewLimbSet(), e.NewLimbSet()) }},
	}
	const want = "vecmath: limb set has 1 limbs, engine expects 2"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := panicMessage(tt.fn); got != want {
				t.Errorf("panic = %v, want %q", got, want)
			}
		})
	}

	if got := panicMessage(func() { e.Square(e.NewLimbSet(), e.NewLimbSet()) }); got != nil {
		t.Errorf("Square with matching limb sets panicked: %v", got)
	}
}

func TestAssertNoCarry(t *testing.T) {
	if got := panicMessage(func() { assertNoCarry(wide.U64x8{}) }); got != nil {
		t.Errorf("zero carry panicked: %v", got)
	}

	var carry wide.U64x8
	carry[5] = 1
	const want = "vecmath: carry out of most significant limb"
	if got := panicMessage(func() { assertNoCarry(carry) }); got != want {
		t.Errorf("panic = %v, want %q", got, want)
	}
}
