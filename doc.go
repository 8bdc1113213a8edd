// Package deepzoom computes Mandelbrot escape times at arbitrary precision.
//
// # Overview
//
// Double precision runs out of resolution a few dozen zoom levels into the
// Mandelbrot set. deepzoom represents coordinates as fixed-point numbers of
// one or more 31-bit limbs and iterates eight pixels at a time, so the
// precision of a request is a choice rather than a limit.
//
// # Quick Start
//
//	f, _ := deepzoom.DefaultFormat(2) // 8 integer bits, 54 fraction bits
//	re, _ := fixed.Parse(f, "-0.7436438870371587")
//	im, _ := fixed.Parse(f, "0.1318259042053")
//	delta, _ := fixed.Parse(f, "0.0000000001")
//
//	g := deepzoom.NewGenerator()
//	block, err := g.Generate(ctx, &deepzoom.Request{
//	    Format: f, Real: re, Imag: im, Delta: delta,
//	    Width: 128, Height: 128, Target: 5000,
//	})
//
// # Results
//
// Every pixel gets an iteration count, an escaped flag and an escape
// velocity in [0, 10000] for smooth colouring. Pixels that do not escape
// report Target+1.
//
// # Increasing Iterations
//
// A Request with Resumable set returns a Snapshot holding the iterate every
// pixel finished with. Passing it as Prior in a request with a higher
// Target continues the pixels that had not escaped instead of starting
// over; rows that had fully escaped are copied. The result is identical to
// generating the higher target directly. The same mechanism finishes a run
// that was cancelled part way.
//
// # Concurrency
//
// A Generator is single-threaded and owns its scratch buffers.
// RenderSection splits a larger area into blocks and runs them on a worker
// pool with one Generator per worker.
//
// # Logging
//
// deepzoom is silent by default. See SetLogger.
package deepzoom
