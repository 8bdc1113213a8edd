//go:build !deepzoomdebug

package vecmath

import "github.com/gogpu/deepzoom/internal/wide"

func assertNoCarry(wide.U64x8) {}

func assertLen(LimbSet, int) {}
