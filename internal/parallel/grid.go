package parallel

// Lanes is the pixel granularity of block widths.
const Lanes = 8

// Default block dimensions in pixels.
const (
	BlockWidth  = 128
	BlockHeight = 128
)

// Block is one rectangle of a BlockGrid, in pixels of the section.
//
// PaddedWidth rounds Width up to a whole number of lanes; generation covers
// the padded width and the surplus columns are dropped when merging.
type Block struct {
	Index       int
	X, Y        int
	Width       int
	Height      int
	PaddedWidth int
}

// BlockGrid divides a section into blocks. Edge blocks are smaller when the
// section is not evenly divisible by the block size. Blocks are stored in
// row-major order: index = by*BlocksX + bx.
//
// Thread safety: BlockGrid is immutable after construction.
type BlockGrid struct {
	blocks  []Block
	blocksX int
}

// NewBlockGrid creates a grid covering width x height pixels with blocks of
// at most blockWidth x blockHeight. blockWidth is rounded up to a multiple
// of Lanes. Non-positive dimensions give an empty grid.
func NewBlockGrid(width, height, blockWidth, blockHeight int) *BlockGrid {
	if width <= 0 || height <= 0 || blockWidth <= 0 || blockHeight <= 0 {
		return &BlockGrid{}
	}
	blockWidth = roundUp(blockWidth, Lanes)

	blocksY := (height + blockHeight - 1) / blockHeight
	g := &BlockGrid{blocksX: (width + blockWidth - 1) / blockWidth}
	g.blocks = make([]Block, 0, g.blocksX*blocksY)

	for by := range blocksY {
		for bx := range g.blocksX {
			b := Block{
				Index:  len(g.blocks),
				X:      bx * blockWidth,
				Y:      by * blockHeight,
				Width:  min(blockWidth, width-bx*blockWidth),
				Height: min(blockHeight, height-by*blockHeight),
			}
			b.PaddedWidth = roundUp(b.Width, Lanes)
			g.blocks = append(g.blocks, b)
		}
	}
	return g
}

func roundUp(n, m int) int {
	return (n + m - 1) / m * m
}

// Blocks returns all blocks in row-major order.
// The returned slice should not be modified.
func (g *BlockGrid) Blocks() []Block {
	return g.blocks
}

// Count returns the number of blocks.
func (g *BlockGrid) Count() int {
	return len(g.blocks)
}

// BlocksX returns the number of blocks horizontally.
func (g *BlockGrid) BlocksX() int {
	return g.blocksX
}
