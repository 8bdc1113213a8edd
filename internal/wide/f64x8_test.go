package wide

import (
	"math"
	"testing"
)

func TestF64x8_Arithmetic(t *testing.T) {
	a := SplatF64(6)
	b := SplatF64(3)

	tests := []struct {
		name string
		got  F64x8
		want F64x8
	}{
		{"Add", a.Add(b), SplatF64(9)},
		{"Sub", a.Sub(b), SplatF64(3)},
		{"Mul", a.Mul(b), SplatF64(18)},
		{"Div", a.Div(b), SplatF64(2)},
		{"Round", SplatF64(2.5).Round(), SplatF64(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestF64x8_Log(t *testing.T) {
	v := F64x8{1, math.E, math.E * math.E, 0, -1, 10, 100, 0.5}
	got := v.Log()

	if got[0] != 0 {
		t.Errorf("Log(1) = %f, want 0", got[0])
	}
	if math.Abs(got[1]-1) > 1e-15 {
		t.Errorf("Log(e) = %f, want 1", got[1])
	}
	if math.Abs(got[2]-2) > 1e-15 {
		t.Errorf("Log(e^2) = %f, want 2", got[2])
	}
	if !math.IsInf(got[3], -1) {
		t.Errorf("Log(0) = %f, want -Inf", got[3])
	}
	if !math.IsNaN(got[4]) {
		t.Errorf("Log(-1) = %f, want NaN", got[4])
	}
}

func TestF64x8_InRange(t *testing.T) {
	v := F64x8{-0.1, 0, 0.5, 1, 1.1, math.NaN(), math.Inf(1), math.Inf(-1)}
	want := Mask8{false, true, true, true, false, false, false, false}
	if got := v.InRange(0, 1); got != want {
		t.Errorf("InRange(0, 1) = %v, want %v", got, want)
	}
}

func TestU16x8_Clamp(t *testing.T) {
	v := U16x8{0, 5000, 10000, 10001, 65535, 1, 9999, 20000}
	want := U16x8{0, 5000, 10000, 10000, 10000, 1, 9999, 10000}
	if got := v.Clamp(10000); got != want {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
}

func TestSplatGeneric(t *testing.T) {
	if got, want := Splat[I32x8](int32(-4)), SplatI32(-4); got != want {
		t.Errorf("Splat[I32x8]() = %v, want %v", got, want)
	}
	if got, want := Splat[U64x8](uint64(1)<<40), SplatU64(1<<40); got != want {
		t.Errorf("Splat[U64x8]() = %v, want %v", got, want)
	}
}
