package deepzoom

import (
	"context"
	"sync"

	"github.com/gogpu/deepzoom/fixed"
	"github.com/gogpu/deepzoom/internal/parallel"
)

// SectionRequest describes an area of any size, generated as a grid of
// blocks in parallel.
type SectionRequest struct {
	Format            fixed.Format
	Real, Imag, Delta fixed.Value
	Width, Height     int
	Target            int32
	Threshold         uint32

	// BlockWidth and BlockHeight bound the blocks the section is split
	// into. Zero means 128. BlockWidth is rounded up to a multiple of 8.
	BlockWidth, BlockHeight int
}

// Section is the merged result of a SectionRequest. Pixel arrays are
// row-major over Width x Height.
type Section struct {
	Width, Height int

	Counts           []int32
	Escaped          []bool
	EscapeVelocities []uint16

	// BlocksCompleted reports, per block of the grid in row-major order,
	// whether the block finished before cancellation. Unfinished blocks may
	// be partially filled. BlocksX is the number of blocks per grid row.
	BlocksCompleted []bool
	BlocksX         int
	Complete        bool

	Stats Stats
}

// At returns pixel (x, y).
func (s *Section) At(x, y int) Pixel {
	i := y*s.Width + x
	return Pixel{Count: s.Counts[i], Escaped: s.Escaped[i], Velocity: s.EscapeVelocities[i]}
}

// RenderSection generates a section on a pool of workers, each with a
// private Generator. Cancellation behaves as in Generator.Generate: the
// section comes back partial with a nil error.
func RenderSection(ctx context.Context, r SectionRequest, opts ...Option) (*Section, error) {
	o := applyOptions(opts)

	bw, bh := r.BlockWidth, r.BlockHeight
	if bw == 0 {
		bw = parallel.BlockWidth
	}
	if bh == 0 {
		bh = parallel.BlockHeight
	}
	if bw < 0 || bh < 0 {
		return nil, &RequestError{Field: "BlockWidth", Reason: "negative block size"}
	}
	if r.Width <= 0 || r.Height <= 0 {
		return nil, &RequestError{Field: "Width", Reason: "section is empty"}
	}

	grid := parallel.NewBlockGrid(r.Width, r.Height, bw, bh)
	requests := make([]*Request, grid.Count())
	for i, blk := range grid.Blocks() {
		req, err := blockRequest(&r, blk)
		if err != nil {
			return nil, err
		}
		requests[i] = req
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	generators := make([]*Generator, pool.Workers())
	for i := range generators {
		generators[i] = NewGenerator(opts...)
	}

	n := r.Width * r.Height
	s := &Section{
		Width:            r.Width,
		Height:           r.Height,
		Counts:           make([]int32, n),
		Escaped:          make([]bool, n),
		EscapeVelocities: make([]uint16, n),
	}
	completed := parallel.NewCompletionSet(grid.Count())

	var (
		mu       sync.Mutex
		firstErr error
	)
	tasks := make([]parallel.Task, grid.Count())
	for i, blk := range grid.Blocks() {
		tasks[i] = func(worker int) {
			b, err := generators[worker].Generate(ctx, requests[i])
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			s.merge(blk, b)
			if b.Complete {
				completed.Mark(blk.Index)
			}
			mu.Lock()
			s.Stats.Add(b.Stats)
			mu.Unlock()
		}
	}
	pool.ExecuteAll(tasks)

	if firstErr != nil {
		return nil, firstErr
	}
	s.BlocksCompleted = completed.Bools()
	s.BlocksX = grid.BlocksX()
	s.Complete = completed.All()
	if !s.Complete {
		Logger().Info("section incomplete",
			"blocks", completed.Count(), "total", completed.Len())
	}
	return s, nil
}

// blockRequest derives the request of one grid block.
func blockRequest(r *SectionRequest, blk parallel.Block) (*Request, error) {
	if !r.Format.IsValid() {
		return nil, &RequestError{Field: "Format", Reason: "invalid fixed-point format"}
	}
	for _, v := range []struct {
		name  string
		value fixed.Value
	}{{"Real", r.Real}, {"Imag", r.Imag}, {"Delta", r.Delta}} {
		if v.value.Format() != r.Format {
			return nil, &RequestError{Field: v.name, Reason: "format does not match section format"}
		}
	}
	req := &Request{
		Format:    r.Format,
		Real:      r.Real.Add(r.Delta.MulInt(blk.X)),
		Imag:      r.Imag.Add(r.Delta.MulInt(blk.Y)),
		Delta:     r.Delta,
		Width:     blk.PaddedWidth,
		Height:    blk.Height,
		Target:    r.Target,
		Threshold: r.Threshold,
		sampled:   blk.Width,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// merge copies the visible columns of block result b into the section.
// Blocks cover disjoint pixels, so concurrent merges do not overlap.
func (s *Section) merge(blk parallel.Block, b *Block) {
	for y := range blk.Height {
		src := y * b.Width
		dst := (blk.Y+y)*s.Width + blk.X
		copy(s.Counts[dst:dst+blk.Width], b.Counts[src:src+blk.Width])
		copy(s.Escaped[dst:dst+blk.Width], b.Escaped[src:src+blk.Width])
		copy(s.EscapeVelocities[dst:dst+blk.Width], b.EscapeVelocities[src:src+blk.Width])
	}
}
