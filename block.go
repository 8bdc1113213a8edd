package deepzoom

import "github.com/gogpu/deepzoom/internal/iteration"

// Stats describes the work behind a Block or Section.
type Stats struct {
	// Steps counts batch iteration steps; each advances eight pixels.
	Steps int64

	// ClampedVelocities counts escaped pixels whose smoothing term fell
	// outside [0, 1]; their velocity was computed as if it were 0.
	ClampedVelocities int64

	// RowsReused counts rows copied unchanged from a prior snapshot.
	RowsReused int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Steps += o.Steps
	s.ClampedVelocities += o.ClampedVelocities
	s.RowsReused += o.RowsReused
}

func (s *Stats) addIteration(o iteration.Stats) {
	s.Steps += o.Steps
	s.ClampedVelocities += o.ClampedVelocities
}

// Block is the result of one Request. Pixel arrays are row-major.
type Block struct {
	Width, Height int

	// Counts holds each pixel's iteration count: the step at which it
	// escaped, or Target+1 for pixels that did not.
	Counts []int32

	// Escaped reports whether each pixel escaped within the target.
	Escaped []bool

	// EscapeVelocities holds smooth-colouring values in [0, 10000];
	// 0 for pixels that did not escape.
	EscapeVelocities []uint16

	// RowFullyEscaped reports rows in which every pixel escaped.
	RowFullyEscaped []bool

	// RowsCompleted reports rows that were generated. Rows after a
	// cancellation are left zero.
	RowsCompleted []bool

	// Complete is true when every row was generated.
	Complete bool

	Stats Stats

	// Snapshot is set for resumable requests.
	Snapshot *Snapshot
}

func newBlock(width, height int) *Block {
	n := width * height
	return &Block{
		Width:            width,
		Height:           height,
		Counts:           make([]int32, n),
		Escaped:          make([]bool, n),
		EscapeVelocities: make([]uint16, n),
		RowFullyEscaped:  make([]bool, height),
		RowsCompleted:    make([]bool, height),
	}
}

// Pixel is one pixel of a block or section.
type Pixel struct {
	Count    int32
	Escaped  bool
	Velocity uint16
}

// At returns pixel (x, y).
func (b *Block) At(x, y int) Pixel {
	i := y*b.Width + x
	return Pixel{Count: b.Counts[i], Escaped: b.Escaped[i], Velocity: b.EscapeVelocities[i]}
}
