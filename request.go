package deepzoom

import (
	"fmt"
	"math"

	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/wide"
)

// MaxCoordinate bounds the magnitude of every sample coordinate. The whole
// set lies inside it, and the overflow bound on thresholds assumes it.
const MaxCoordinate = 2

// Request describes one block to generate.
//
// Pixel (x, y) samples c = (Real + x*Delta) + (Imag + y*Delta)i.
type Request struct {
	// Format is the precision of every coordinate and iterate.
	Format fixed.Format

	// Real and Imag are the coordinates of pixel (0, 0); Delta is the
	// distance between adjacent pixels. All three must use Format.
	Real, Imag, Delta fixed.Value

	// Width must be a positive multiple of 8.
	Width, Height int

	// Target is the iteration count a pixel must exceed to count as inside
	// the set.
	Target int32

	// Threshold is the escape radius squared. Zero means DefaultThreshold.
	Threshold uint32

	// Resumable asks for a Snapshot that a later request can extend.
	Resumable bool

	// Prior continues a previous resumable run of the same block.
	Prior *Snapshot

	// sampled is the number of leading columns that are sampled; the rest
	// pad the block to whole lanes and repeat the last one. Zero means all.
	sampled int
}

func (r *Request) sampledColumns() int {
	if r.sampled <= 0 || r.sampled > r.Width {
		return r.Width
	}
	return r.sampled
}

func (r *Request) threshold() uint32 {
	if r.Threshold == 0 {
		return DefaultThreshold
	}
	return r.Threshold
}

// Validate checks the request for errors. It does not inspect Prior.
func (r *Request) Validate() error {
	f := r.Format
	switch {
	case !f.IsValid():
		return &RequestError{Field: "Format", Reason: "invalid fixed-point format"}
	case r.Width <= 0 || r.Width%wide.Lanes != 0:
		return &RequestError{Field: "Width", Reason: fmt.Sprintf("%d is not a positive multiple of %d", r.Width, wide.Lanes)}
	case r.Height <= 0:
		return &RequestError{Field: "Height", Reason: fmt.Sprintf("%d is not positive", r.Height)}
	case r.Target < 1 || r.Target == math.MaxInt32:
		return &RequestError{Field: "Target", Reason: fmt.Sprintf("%d outside [1, %d)", r.Target, math.MaxInt32)}
	case r.threshold() > f.MaxThreshold():
		return &RequestError{Field: "Threshold", Reason: fmt.Sprintf("%d exceeds %d for format %v", r.threshold(), f.MaxThreshold(), f)}
	}

	for _, v := range []struct {
		name  string
		value fixed.Value
	}{{"Real", r.Real}, {"Imag", r.Imag}, {"Delta", r.Delta}} {
		if v.value.Format() != f {
			return &RequestError{Field: v.name, Reason: fmt.Sprintf("format %v, want %v", v.value.Format(), f)}
		}
	}
	if r.Delta.IsNegative() || r.Delta.IsZero() {
		return &RequestError{Field: "Delta", Reason: "not positive"}
	}

	// Corners are checked in float64; Delta*(n-1) can wrap in fixed point.
	// Padding columns repeat the last sampled one and need no check.
	delta := r.Delta.Float64()
	for _, c := range []struct {
		name        string
		start, span float64
	}{
		{"Real", r.Real.Float64(), delta * float64(r.sampledColumns()-1)},
		{"Imag", r.Imag.Float64(), delta * float64(r.Height-1)},
	} {
		if c.start < -MaxCoordinate || c.start+c.span > MaxCoordinate {
			return &RequestError{Field: c.name, Reason: fmt.Sprintf("samples [%g, %g] leave [-%d, %d]",
				c.start, c.start+c.span, MaxCoordinate, MaxCoordinate)}
		}
	}
	return nil
}
