package iteration

import (
	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/vecmath"
	"github.com/gogpu/deepzoom/internal/wide"
)

// RowState is the iteration state of one block row.
//
// The real coordinates are set once per block and shared by every row; the
// imaginary coordinate is broadcast per row. Batches are reused from row to
// row, so a RowState allocates only when it is created.
type RowState struct {
	engine *vecmath.Engine

	// Cr holds the real sample coordinate of every lane, one set per batch.
	Cr []vecmath.LimbSet

	// Ci is the row's imaginary coordinate in every lane.
	Ci vecmath.LimbSet

	Batches []*PixelBatch

	// InPlay lists the batches that still have work after loading.
	InPlay []int

	resumable bool
}

// NewRowState allocates state for rows of the given number of batches.
// Resumable state also records the iterate each lane finished with.
func NewRowState(e *vecmath.Engine, batches int, resumable bool) *RowState {
	r := &RowState{
		engine:    e,
		Cr:        make([]vecmath.LimbSet, batches),
		Ci:        e.NewLimbSet(),
		Batches:   make([]*PixelBatch, batches),
		InPlay:    make([]int, 0, batches),
		resumable: resumable,
	}
	for i := range r.Batches {
		r.Cr[i] = e.NewLimbSet()
		r.Batches[i] = newPixelBatch(e, resumable)
	}
	return r
}

// Resumable reports whether the state records frozen iterates.
func (r *RowState) Resumable() bool {
	return r.resumable
}

// Width returns the number of pixels in a row.
func (r *RowState) Width() int {
	return len(r.Batches) * wide.Lanes
}

// SetColumns sets the real coordinate of column c to start + c*delta for
// the first columns columns. Later columns pad the row to whole batches and
// repeat the last sampled coordinate, so they stay inside the sampled area.
func (r *RowState) SetColumns(start, delta fixed.Value, columns int) {
	if columns <= 0 || columns > r.Width() {
		columns = r.Width()
	}
	for b, cr := range r.Cr {
		for lane := range wide.Lanes {
			col := min(b*wide.Lanes+lane, columns-1)
			r.engine.SetLane(cr, lane, start.Add(delta.MulInt(col)))
		}
	}
}

// SetRow sets the imaginary coordinate shared by the row.
func (r *RowState) SetRow(ci fixed.Value) {
	r.engine.Broadcast(r.Ci, ci)
}

// Reset starts every batch of the row from the zero iterate.
func (r *RowState) Reset() {
	r.InPlay = r.InPlay[:0]
	for i, b := range r.Batches {
		b.Reset()
		r.InPlay = append(r.InPlay, i)
	}
}

// Load starts the row from a previous run. prior is called once for every
// pixel of the row.
func (r *RowState) Load(prior func(col int) Prior) {
	r.InPlay = r.InPlay[:0]
	for i, b := range r.Batches {
		b.Reset()
		for lane := range wide.Lanes {
			b.loadLane(r.engine, lane, prior(i*wide.Lanes+lane))
		}
		b.finishLoad(r.engine)
		if !b.Done.All() {
			r.InPlay = append(r.InPlay, i)
		}
	}
}

// FullyEscaped reports whether every pixel of the row has escaped.
func (r *RowState) FullyEscaped() bool {
	for _, b := range r.Batches {
		if !b.HasEscaped.All() {
			return false
		}
	}
	return true
}
