//go:build deepzoomdebug

package vecmath

import (
	"fmt"

	"github.com/gogpu/deepzoom/internal/wide"
)

// assertNoCarry panics when a squaring left a carry out of the most
// significant product limb. The carry is zero for every 31-bit input.
func assertNoCarry(carry wide.U64x8) {
	if !carry.IsZero() {
		panic("vecmath: carry out of most significant limb")
	}
}

func assertLen(s LimbSet, n int) {
	if len(s) != n {
		panic(fmt.Sprintf("vecmath: limb set has %d limbs, engine expects %d", len(s), n))
	}
}
