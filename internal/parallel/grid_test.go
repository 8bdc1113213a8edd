package parallel

import "testing"

func TestNewBlockGrid(t *testing.T) {
	tests := []struct {
		name             string
		width, height    int
		bw, bh           int
		blocksX, blocksY int
	}{
		{"exact", 256, 128, 128, 64, 2, 2},
		{"ragged", 300, 130, 128, 128, 3, 2},
		{"block width rounded to lanes", 40, 8, 12, 8, 3, 1},
		{"single", 8, 1, 128, 128, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewBlockGrid(tt.width, tt.height, tt.bw, tt.bh)
			if g.BlocksX() != tt.blocksX || g.Count() != tt.blocksX*tt.blocksY {
				t.Fatalf("grid = %d blocks, %d across, want %dx%d", g.Count(), g.BlocksX(), tt.blocksX, tt.blocksY)
			}

			// Every pixel is covered exactly once.
			covered := make([]int, tt.width*tt.height)
			for i, b := range g.Blocks() {
				if b.Index != i {
					t.Errorf("block %d has Index %d", i, b.Index)
				}
				if b.PaddedWidth%Lanes != 0 || b.PaddedWidth < b.Width {
					t.Errorf("block %d PaddedWidth = %d for Width %d", i, b.PaddedWidth, b.Width)
				}
				for y := b.Y; y < b.Y+b.Height; y++ {
					for x := b.X; x < b.X+b.Width; x++ {
						covered[y*tt.width+x]++
					}
				}
			}
			for i, c := range covered {
				if c != 1 {
					t.Fatalf("pixel %d covered %d times", i, c)
				}
			}
		})
	}
}

func TestNewBlockGrid_Empty(t *testing.T) {
	for _, dims := range [][4]int{{0, 10, 8, 8}, {10, -1, 8, 8}, {10, 10, 0, 8}} {
		g := NewBlockGrid(dims[0], dims[1], dims[2], dims[3])
		if g.Count() != 0 {
			t.Errorf("NewBlockGrid(%v).Count() = %d, want 0", dims, g.Count())
		}
	}
}

func TestBlockGrid_EdgeBlock(t *testing.T) {
	g := NewBlockGrid(300, 130, 128, 128)

	b := g.Blocks()[1*g.BlocksX()+2]
	if b.X != 256 || b.Y != 128 || b.Width != 44 || b.Height != 2 || b.PaddedWidth != 48 {
		t.Errorf("edge block = %+v", b)
	}
}
