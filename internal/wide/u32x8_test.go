package wide

import "testing"

func TestSplatU32(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
	}{
		{"zero", 0},
		{"one", 1},
		{"limb max", 0x7FFFFFFF},
		{"all bits", 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatU32(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %d, want %d", i, v, tt.value)
				}
			}
		})
	}
}

func TestU32x8_AddCarry(t *testing.T) {
	const mask = 0x7FFFFFFF
	a := SplatU32(mask)
	b := U32x8{0, 1, 2, 3, 4, 5, 6, 7}

	sum := a.Add(b)
	digit := sum.And(SplatU32(mask))
	carry := sum.Shr(31)

	for i := range sum {
		wantCarry := uint32(0)
		wantDigit := mask + b[i]
		if b[i] > 0 {
			wantCarry = 1
			wantDigit = b[i] - 1
		}
		if carry[i] != wantCarry {
			t.Errorf("lane %d carry = %d, want %d", i, carry[i], wantCarry)
		}
		if digit[i] != wantDigit {
			t.Errorf("lane %d digit = %#x, want %#x", i, digit[i], wantDigit)
		}
	}
}

func TestU32x8_Bitwise(t *testing.T) {
	a := SplatU32(0xF0F0F0F0)
	b := SplatU32(0x0FF00FF0)

	if got, want := a.And(b), SplatU32(0x00F000F0); got != want {
		t.Errorf("And() = %#x, want %#x", got, want)
	}
	if got, want := a.Or(b), SplatU32(0xFFF0FFF0); got != want {
		t.Errorf("Or() = %#x, want %#x", got, want)
	}
	if got, want := a.Not(), SplatU32(0x0F0F0F0F); got != want {
		t.Errorf("Not() = %#x, want %#x", got, want)
	}
	if got, want := SplatU32(1).Shl(30), SplatU32(1<<30); got != want {
		t.Errorf("Shl() = %#x, want %#x", got, want)
	}
}

func TestU32x8_TestBit(t *testing.T) {
	v := U32x8{1 << 30, 0, 1 << 30, 1, 0x7FFFFFFF, 0x3FFFFFFF, 0, 1 << 30}
	want := Mask8{true, false, true, false, true, false, false, true}
	if got := v.TestBit(30); got != want {
		t.Errorf("TestBit(30) = %v, want %v", got, want)
	}
}

func TestU32x8_MulWide(t *testing.T) {
	v := SplatU32(0x7FFFFFFF)
	got := v.MulWide(v)
	want := uint64(0x7FFFFFFF) * uint64(0x7FFFFFFF)
	for i := range got {
		if got[i] != want {
			t.Errorf("lane %d = %#x, want %#x", i, got[i], want)
		}
	}
}

func TestU64x8_Narrow(t *testing.T) {
	v := SplatU64(0x1_2345_6789)
	if got, want := v.Narrow(), SplatU32(0x2345_6789); got != want {
		t.Errorf("Narrow() = %#x, want %#x", got, want)
	}
	if got, want := v.Shr(32).Narrow(), SplatU32(1); got != want {
		t.Errorf("Shr(32).Narrow() = %#x, want %#x", got, want)
	}
}

func TestI32x8_Compare(t *testing.T) {
	a := I32x8{-1, 0, 1, 2, 3, 4, 5, 6}
	b := SplatI32(3)

	wantGE := Mask8{false, false, false, false, true, true, true, true}
	if got := a.GreaterEqual(b); got != wantGE {
		t.Errorf("GreaterEqual() = %v, want %v", got, wantGE)
	}
	wantGT := Mask8{false, false, false, false, false, true, true, true}
	if got := a.Greater(b); got != wantGT {
		t.Errorf("Greater() = %v, want %v", got, wantGT)
	}
}
