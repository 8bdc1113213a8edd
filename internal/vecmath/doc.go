// Package vecmath implements lane-batched arithmetic on multi-limb
// fixed-point numbers.
//
// A LimbSet holds eight numbers of the same fixed.Format, one per lane, as one
// wide.U32x8 per limb position (index 0 least significant). Carries only ever
// travel along the limb dimension; lanes never interact.
//
// # Engines
//
// An Engine is bound to one format for its whole life. New picks the
// implementation once from the limb count:
//
//   - KindOne: unrolled single-limb arithmetic
//   - KindTwo: unrolled two-limb arithmetic
//   - KindGeneric: loops over any number of limbs
//
// The specialized kinds are bit-identical to the generic one. Every Engine
// owns its scratch buffers, so an Engine must not be shared between
// goroutines; give each worker its own.
//
// # Squaring
//
// Square converts its operand to sign-magnitude, accumulates the limb-wise
// partial products (cross terms doubled) into a double-width buffer of 64-bit
// lanes, propagates the carries (SumThePartials) and finally drops the
// surplus fraction bits and keeps LimbCount limbs (ShiftAndTrim).
//
// Building with the deepzoomdebug tag turns on assertions that catch carries
// leaving the most significant limb.
package vecmath
