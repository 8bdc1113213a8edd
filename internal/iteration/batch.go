package iteration

import (
	"github.com/gogpu/deepzoom/internal/vecmath"
	"github.com/gogpu/deepzoom/internal/wide"
)

// FrozenIterate holds the iterate captured when a lane finished.
// Only resumable state allocates one.
type FrozenIterate struct {
	Zr, Zi vecmath.LimbSet
}

// PixelBatch is the iteration state of eight horizontally adjacent pixels.
type PixelBatch struct {
	// Live iterate and its squares, kept from the previous step.
	Zr, Zi     vecmath.LimbSet
	ZrSq, ZiSq vecmath.LimbSet

	Count      wide.I32x8
	HasEscaped wide.Mask8
	Done       wide.Mask8

	// ResultCount is the count at the step a lane became done.
	ResultCount wide.I32x8

	// Secondary pass used for escape velocity.
	HasEscaped2          wide.Mask8
	Done2                wide.Mask8
	ResultZr2, ResultZi2 vecmath.LimbSet

	// Frozen lanes were loaded already done; their velocity is carried over.
	Frozen         wide.Mask8
	FrozenVelocity wide.U16x8

	// Resume is nil unless the batch belongs to resumable state.
	Resume *FrozenIterate

	fresh bool
}

func newPixelBatch(e *vecmath.Engine, resumable bool) *PixelBatch {
	b := &PixelBatch{
		Zr:        e.NewLimbSet(),
		Zi:        e.NewLimbSet(),
		ZrSq:      e.NewLimbSet(),
		ZiSq:      e.NewLimbSet(),
		ResultZr2: e.NewLimbSet(),
		ResultZi2: e.NewLimbSet(),
		fresh:     true,
	}
	if resumable {
		b.Resume = &FrozenIterate{
			Zr: e.NewLimbSet(),
			Zi: e.NewLimbSet(),
		}
	}
	return b
}

// Reset returns the batch to the zero iterate with nothing done.
// The next step sets Z to C.
func (b *PixelBatch) Reset() {
	clear(b.Zr)
	clear(b.Zi)
	clear(b.ZrSq)
	clear(b.ZiSq)
	clear(b.ResultZr2)
	clear(b.ResultZi2)
	b.Count = wide.I32x8{}
	b.ResultCount = wide.I32x8{}
	b.HasEscaped = wide.Mask8{}
	b.Done = wide.Mask8{}
	b.HasEscaped2 = wide.Mask8{}
	b.Done2 = wide.Mask8{}
	b.Frozen = wide.Mask8{}
	b.FrozenVelocity = wide.U16x8{}
	if b.Resume != nil {
		clear(b.Resume.Zr)
		clear(b.Resume.Zi)
	}
	b.fresh = true
}

// Prior is one pixel of a previous run, as stored in a snapshot.
type Prior struct {
	Count    int32
	Escaped  bool
	Velocity uint16

	// Zr and Zi are the frozen iterate, least significant limb first.
	Zr, Zi []uint32
}

// loadLane restores one lane from a previous run. Escaped lanes start done
// with their results frozen; the others continue from their iterate.
// The batch must have been Reset first and finishLoad called afterwards.
func (b *PixelBatch) loadLane(e *vecmath.Engine, lane int, p Prior) {
	b.fresh = false
	b.Count[lane] = p.Count
	b.ResultCount[lane] = p.Count
	e.SetLaneLimbs(b.Zr, lane, p.Zr)
	e.SetLaneLimbs(b.Zi, lane, p.Zi)
	if b.Resume != nil {
		e.SetLaneLimbs(b.Resume.Zr, lane, p.Zr)
		e.SetLaneLimbs(b.Resume.Zi, lane, p.Zi)
	}
	if !p.Escaped {
		return
	}
	b.HasEscaped[lane] = true
	b.Done[lane] = true
	b.HasEscaped2[lane] = true
	b.Done2[lane] = true
	b.Frozen[lane] = true
	b.FrozenVelocity[lane] = p.Velocity
}

// finishLoad recomputes the squares of the restored iterate.
func (b *PixelBatch) finishLoad(e *vecmath.Engine) {
	if b.fresh {
		return
	}
	e.Square(b.ZrSq, b.Zr)
	e.Square(b.ZiSq, b.Zi)
}

// Finished reports whether every lane is done. With velocity set the
// secondary pass must be done as well.
func (b *PixelBatch) Finished(velocity bool) bool {
	if velocity {
		return b.Done.All() && b.Done2.All()
	}
	return b.Done.All()
}

// Fresh reports whether the batch has not stepped since Reset.
func (b *PixelBatch) Fresh() bool {
	return b.fresh
}
