// Package iteration runs the Mandelbrot escape-time recurrence on batches of
// eight pixels held in vecmath lane sets.
//
// A PixelBatch carries the live iterate of its lanes plus the values frozen
// the first time each lane finished. A RowState groups the batches of one
// block row with their sample coordinates, and an Iterator advances them.
//
// Lanes never branch individually: every per-lane decision is a wide.Mask8
// and every conditional update is a blend, so a batch keeps stepping until
// its slowest lane is done.
package iteration
