package deepzoom

import (
	"fmt"

	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/iteration"
)

// Snapshot is the resumable state of a generated block: its results plus
// the iterate every pixel finished with. Pass it as Request.Prior to extend
// the block to a higher target, or to finish a cancelled run.
//
// A Snapshot shares its result arrays with the Block it came with.
// Snapshots are plain values; storing them is up to the caller.
type Snapshot struct {
	Format            fixed.Format
	Real, Imag, Delta fixed.Value
	Width, Height     int

	Target         int32
	Threshold      uint32
	EscapeVelocity bool

	// SecondaryThreshold is recorded only when EscapeVelocity is set.
	SecondaryThreshold uint32

	Counts           []int32
	Escaped          []bool
	EscapeVelocities []uint16

	// Zr and Zi hold Format.LimbCount() limbs per pixel, least
	// significant first, pixels in row-major order.
	Zr, Zi []uint32

	RowFullyEscaped []bool
	RowsCompleted   []bool
}

func newSnapshot(r *Request, o *options, b *Block) *Snapshot {
	n := r.Width * r.Height * r.Format.LimbCount()
	s := &Snapshot{
		Format:           r.Format,
		Real:             r.Real,
		Imag:             r.Imag,
		Delta:            r.Delta,
		Width:            r.Width,
		Height:           r.Height,
		Target:           r.Target,
		Threshold:        r.threshold(),
		EscapeVelocity:   o.escapeVelocity,
		Counts:           b.Counts,
		Escaped:          b.Escaped,
		EscapeVelocities: b.EscapeVelocities,
		Zr:               make([]uint32, n),
		Zi:               make([]uint32, n),
		RowFullyEscaped:  b.RowFullyEscaped,
		RowsCompleted:    b.RowsCompleted,
	}
	if o.escapeVelocity {
		s.SecondaryThreshold = o.secondaryThreshold
	}
	return s
}

// check reports whether s can seed r.
func (s *Snapshot) check(r *Request, o *options) error {
	if s.Format != r.Format {
		return fmt.Errorf("%w: snapshot %v, request %v", ErrSnapshotFormat, s.Format, r.Format)
	}
	if s.Width != r.Width || s.Height != r.Height ||
		!s.Real.Equal(r.Real) || !s.Imag.Equal(r.Imag) || !s.Delta.Equal(r.Delta) {
		return fmt.Errorf("%w: snapshot covers a different region", ErrSnapshotShape)
	}

	pixels := s.Width * s.Height
	limbs := pixels * s.Format.LimbCount()
	if len(s.Counts) != pixels || len(s.Escaped) != pixels || len(s.EscapeVelocities) != pixels ||
		len(s.Zr) != limbs || len(s.Zi) != limbs ||
		len(s.RowFullyEscaped) != s.Height || len(s.RowsCompleted) != s.Height {
		return fmt.Errorf("%w: arrays do not match %dx%d", ErrSnapshotShape, s.Width, s.Height)
	}

	secondary := uint32(0)
	if o.escapeVelocity {
		secondary = o.secondaryThreshold
	}
	if s.Threshold != r.threshold() || s.EscapeVelocity != o.escapeVelocity || s.SecondaryThreshold != secondary {
		return fmt.Errorf("%w: threshold %d/%d velocity %v, request threshold %d/%d velocity %v",
			ErrSnapshotSettings, s.Threshold, s.SecondaryThreshold, s.EscapeVelocity,
			r.threshold(), secondary, o.escapeVelocity)
	}

	switch {
	case r.Target < s.Target:
		return fmt.Errorf("%w: %d below snapshot target %d", ErrTargetNotIncreased, r.Target, s.Target)
	case r.Target == s.Target && s.Complete():
		return fmt.Errorf("%w: snapshot is complete at %d", ErrTargetNotIncreased, s.Target)
	}
	return nil
}

// Complete reports whether every row of the snapshot was generated.
func (s *Snapshot) Complete() bool {
	for _, done := range s.RowsCompleted {
		if !done {
			return false
		}
	}
	return true
}

// reusable reports whether row y can be copied unchanged into a run with
// the given target: its pixels all escaped, or it was generated with the
// same target already.
func (s *Snapshot) reusable(y int, target int32) bool {
	if !s.RowsCompleted[y] {
		return false
	}
	return s.RowFullyEscaped[y] || s.Target == target
}

// prior returns the state of pixel i for loading into a row.
func (s *Snapshot) prior(i int) iteration.Prior {
	n := s.Format.LimbCount()
	return iteration.Prior{
		Count:    s.Counts[i],
		Escaped:  s.Escaped[i],
		Velocity: s.EscapeVelocities[i],
		Zr:       s.Zr[i*n : (i+1)*n],
		Zi:       s.Zi[i*n : (i+1)*n],
	}
}

// copyRow copies row y of s into b and, when set, into the snapshot next.
func (s *Snapshot) copyRow(y int, b *Block, next *Snapshot) {
	lo, hi := y*s.Width, (y+1)*s.Width
	copy(b.Counts[lo:hi], s.Counts[lo:hi])
	copy(b.Escaped[lo:hi], s.Escaped[lo:hi])
	copy(b.EscapeVelocities[lo:hi], s.EscapeVelocities[lo:hi])
	b.RowFullyEscaped[y] = s.RowFullyEscaped[y]
	if next != nil {
		n := s.Format.LimbCount()
		copy(next.Zr[lo*n:hi*n], s.Zr[lo*n:hi*n])
		copy(next.Zi[lo*n:hi*n], s.Zi[lo*n:hi*n])
	}
}
