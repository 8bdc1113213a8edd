package vecmath

import "github.com/gogpu/deepzoom/internal/wide"

// IsGreaterOrEqual reports, per lane, whether the most significant limb of
// sum, read as a signed 32-bit integer, is at least threshold.
//
// Only the top limb is inspected, so the comparison is exact for thresholds
// that are whole multiples of the top limb's resolution, which every
// integer threshold is. The limb is read without its two's complement
// sign, so a sum that wrapped past the integer range reads as large and
// compares greater.
func (e *Engine) IsGreaterOrEqual(sum LimbSet, threshold wide.I32x8) wide.Mask8 {
	top := sum[e.n-1].And(limbMask).Signed()
	return top.GreaterEqual(threshold)
}

// ThresholdVector returns the comparison operand for an integer threshold t:
// t placed at the integer position of the top limb in every lane.
func (e *Engine) ThresholdVector(t uint32) wide.I32x8 {
	return wide.SplatI32(int32(t << e.fractionShift)) //nolint:gosec // t <= Format.MaxThreshold
}
