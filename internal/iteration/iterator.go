package iteration

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/deepzoom/internal/vecmath"
	"github.com/gogpu/deepzoom/internal/wide"
)

// SecondaryGrace is the number of steps a lane keeps its secondary pass
// running after the primary escape. It bounds the pass for points whose
// orbit settles between the two thresholds, such as c = -2.
const SecondaryGrace = 16

// ErrInvalidConfig is returned by NewIterator for unusable settings.
var ErrInvalidConfig = errors.New("iteration: invalid config")

// Config controls an Iterator.
type Config struct {
	// Target is the iteration count a lane must exceed to be done
	// without escaping.
	Target int32

	// Threshold is the escape radius squared.
	Threshold uint32

	// EscapeVelocity enables the secondary pass.
	EscapeVelocity bool

	// SecondaryThreshold is the radius squared of the secondary pass.
	SecondaryThreshold uint32
}

// Stats counts the work done by an Iterator.
type Stats struct {
	// Steps is the number of batch steps, each advancing eight lanes.
	Steps int64

	// ClampedVelocities counts escaped lanes whose smoothing term fell
	// outside [0, 1].
	ClampedVelocities int64
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Steps += o.Steps
	s.ClampedVelocities += o.ClampedVelocities
}

// Iterator advances pixel batches with one engine.
//
// Thread safety: Iterator is NOT safe for concurrent use.
type Iterator struct {
	engine *vecmath.Engine
	cfg    Config

	target     wide.I32x8
	threshold  wide.I32x8
	threshold2 wide.I32x8
	grace      wide.I32x8
	one        wide.I32x8

	sum, tmp vecmath.LimbSet

	stats Stats
}

// NewIterator returns an iterator for e's format.
func NewIterator(e *vecmath.Engine, cfg Config) (*Iterator, error) {
	it := &Iterator{
		engine: e,
		grace:  wide.SplatI32(SecondaryGrace),
		one:    wide.SplatI32(1),
		sum:    e.NewLimbSet(),
		tmp:    e.NewLimbSet(),
	}
	if err := it.Configure(cfg); err != nil {
		return nil, err
	}
	return it, nil
}

// Configure replaces the iterator's settings. Statistics are kept.
func (it *Iterator) Configure(cfg Config) error {
	limit := it.engine.Format().MaxThreshold()
	switch {
	case cfg.Target < 1:
		return fmt.Errorf("%w: target %d is not positive", ErrInvalidConfig, cfg.Target)
	case cfg.Threshold == 0 || cfg.Threshold > limit:
		return fmt.Errorf("%w: threshold %d outside [1, %d] for format %v",
			ErrInvalidConfig, cfg.Threshold, limit, it.engine.Format())
	case cfg.EscapeVelocity && (cfg.SecondaryThreshold <= cfg.Threshold || cfg.SecondaryThreshold > limit):
		return fmt.Errorf("%w: secondary threshold %d outside (%d, %d] for format %v",
			ErrInvalidConfig, cfg.SecondaryThreshold, cfg.Threshold, limit, it.engine.Format())
	}

	it.cfg = cfg
	it.target = wide.SplatI32(cfg.Target)
	it.threshold = it.engine.ThresholdVector(cfg.Threshold)
	if cfg.EscapeVelocity {
		it.threshold2 = it.engine.ThresholdVector(cfg.SecondaryThreshold)
	}
	return nil
}

// Config returns the current settings.
func (it *Iterator) Config() Config {
	return it.cfg
}

// Stats returns the work counted since the last ResetStats.
func (it *Iterator) Stats() Stats {
	return it.stats
}

// ResetStats zeroes the counters.
func (it *Iterator) ResetStats() {
	it.stats = Stats{}
}

// Step advances every lane of b by one iteration of z = z^2 + c.
//
// The first step after Reset sets z to c. Later steps use
// Zi' = (Zr+Zi)^2 - Zr^2 - Zi^2 + Ci and Zr' = Zr^2 - Zi^2 + Cr with the
// squares kept from the previous step. Lanes that are already done keep
// stepping; their results stay frozen.
func (it *Iterator) Step(b *PixelBatch, cr, ci vecmath.LimbSet) {
	e := it.engine

	if b.fresh {
		copy(b.Zr, cr)
		copy(b.Zi, ci)
		b.fresh = false
	} else {
		e.Add(it.tmp, b.Zr, b.Zi)
		e.Square(it.tmp, it.tmp)
		e.Sub(it.tmp, it.tmp, b.ZrSq)
		e.Sub(it.tmp, it.tmp, b.ZiSq)

		e.Sub(b.Zr, b.ZrSq, b.ZiSq)
		e.Add(b.Zr, b.Zr, cr)
		e.Add(b.Zi, it.tmp, ci)
	}

	e.Square(b.ZrSq, b.Zr)
	e.Square(b.ZiSq, b.Zi)
	e.Add(it.sum, b.ZrSq, b.ZiSq)

	// A lane that reached the target is never reported as escaped later.
	escaped := e.IsGreaterOrEqual(it.sum, it.threshold)
	b.HasEscaped = b.HasEscaped.Or(escaped.AndNot(b.Done))
	b.Count = b.Count.Add(it.one)
	targetReached := b.Count.Greater(it.target)

	done := b.HasEscaped.Or(targetReached)
	justNowDone := b.Done.Xor(done)
	b.ResultCount = justNowDone.SelectI32(b.Count, b.ResultCount)
	if b.Resume != nil {
		vecmath.Select(b.Resume.Zr, justNowDone, b.Zr)
		vecmath.Select(b.Resume.Zi, justNowDone, b.Zi)
	}
	b.Done = done

	if it.cfg.EscapeVelocity {
		escaped2 := e.IsGreaterOrEqual(it.sum, it.threshold2)
		b.HasEscaped2 = b.HasEscaped2.Or(escaped2.AndNot(b.Done2))
		graceOver := b.HasEscaped.And(b.Count.Sub(b.ResultCount).GreaterEqual(it.grace))
		done2 := b.Done2.
			Or(b.HasEscaped2).
			Or(targetReached.AndNot(b.HasEscaped)).
			Or(graceOver)
		justNowDone2 := b.Done2.Xor(done2)
		vecmath.Select(b.ResultZr2, justNowDone2, b.Zr)
		vecmath.Select(b.ResultZi2, justNowDone2, b.Zi)
		b.Done2 = done2
	}

	it.stats.Steps++
}

// RunBatch steps b until all of its lanes are done.
func (it *Iterator) RunBatch(b *PixelBatch, cr, ci vecmath.LimbSet) {
	for !b.Finished(it.cfg.EscapeVelocity) {
		it.Step(b, cr, ci)
	}
}

// RunRow runs every batch of r that is still in play.
func (it *Iterator) RunRow(r *RowState) {
	for _, i := range r.InPlay {
		it.RunBatch(r.Batches[i], r.Cr[i], r.Ci)
	}
}

// EscapeVelocities returns the smooth-colouring value of every lane of a
// finished batch: round((1-nu)*10000) with nu = log2(log2|Z|)/2 taken at
// the secondary escape. Lanes that did not escape get 0, as do all lanes
// when the secondary pass is off.
//
// A nu outside [0, 1], or NaN, is treated as 0 rather than saturated at the
// nearer bound: such a lane gets 10000 even when nu > 1. Each one is
// counted in Stats.ClampedVelocities.
func (it *Iterator) EscapeVelocities(b *PixelBatch) wide.U16x8 {
	var result wide.U16x8
	if !it.cfg.EscapeVelocity {
		return result
	}

	e := it.engine
	zr := e.Float64s(b.ResultZr2)
	zi := e.Float64s(b.ResultZi2)
	magSq := zr.Mul(zr).Add(zi.Mul(zi))

	nu := smoothingTerms(magSq)
	inRange := nu.InRange(0, 1)
	live := b.HasEscaped.AndNot(b.Frozen)
	it.stats.ClampedVelocities += int64(live.AndNot(inRange).Count())

	nu = inRange.SelectF64(nu, wide.F64x8{})
	scaled := wide.SplatF64(1).Sub(nu).Mul(wide.SplatF64(VelocityScale)).Round()
	for lane := range result {
		switch {
		case b.Frozen[lane]:
			result[lane] = b.FrozenVelocity[lane]
		case b.HasEscaped[lane]:
			result[lane] = uint16(scaled[lane])
		}
	}
	return result
}

// VelocityScale is the escape velocity of a lane with nu = 0.
const VelocityScale = 10000

// smoothingTerms computes nu = ln(ln(|Z|^2)/2/ln2)/ln2/2 per lane.
func smoothingTerms(magSq wide.F64x8) wide.F64x8 {
	logZn := magSq.Log().Mul(wide.SplatF64(0.5))
	return logZn.Div(wide.SplatF64(math.Ln2)).Log().Div(wide.SplatF64(2 * math.Ln2))
}
