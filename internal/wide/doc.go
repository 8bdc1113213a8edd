// Package wide provides SIMD-friendly wide types for lane-batched fixed-point
// arithmetic.
//
// Every type holds exactly [Lanes] values. Eight independent pixels are
// processed together: a multi-limb number is stored as one U32x8 per limb
// position (Structure-of-Arrays), so a single loop over the lanes touches the
// same limb of all eight pixels at once.
//
// # Wide Types
//
// U32x8: 31-bit limbs, one per lane.
// U64x8: double-width accumulators used during widening multiplication.
// I32x8: per-lane iteration counts and comparison thresholds.
// U16x8: per-lane escape-velocity scale values.
// F64x8: floating-point lanes for smooth-coloring math.
// Mask8: per-lane booleans produced by comparisons and consumed by blends.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Replace per-lane branches with masks and blends
//
// # Usage Example
//
//	// Add two limbs lane-wise and split off the carry
//	sum := a.Add(b).Add(carry)
//	digit := sum.And(wide.SplatU32(0x7FFFFFFF))
//	carry = sum.Shr(31)
package wide

// Lanes is the number of values processed together by every wide type.
const Lanes = 8
