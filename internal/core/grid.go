package core

import "fmt"

const (
	// DefaultCount is the side length of the grid in cells.
	DefaultCount = 128
	// DefaultSize is the pixel edge length of one cell.
	DefaultSize = 5
)

// Grid stores a square grid of binary cells in row-major order. Cells outside
// [0, count) on either axis are permanently dead.
type Grid struct {
	count int
	size  int
	data  []uint8
}

// NewGrid allocates a grid with every cell dead.
func NewGrid(count, size int) (*Grid, error) {
	if count <= 0 {
		return nil, fmt.Errorf("grid count %d: %w", count, ErrInvalidArgument)
	}
	if size <= 0 {
		return nil, fmt.Errorf("cell size %d: %w", size, ErrInvalidArgument)
	}
	return &Grid{count: count, size: size, data: make([]uint8, count*count)}, nil
}

// Count returns the side length in cells.
func (g *Grid) Count() int { return g.count }

// Size returns the pixel edge length of one cell.
func (g *Grid) Size() int { return g.size }

// PixelExtent returns the edge length of the rendered grid in pixels.
func (g *Grid) PixelExtent() int { return g.count * g.size }

// Cells exposes the backing slice. Callers must keep every value 0 or 1.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.count + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.count && y < g.count
}

// Lives reports whether the cell at (x, y) is alive.
func (g *Grid) Lives(x, y int) bool {
	if !g.In(x, y) {
		return false
	}
	return g.data[g.Index(x, y)] == 1
}

// Set writes v to the cell at (x, y).
func (g *Grid) Set(x, y int, v uint8) error {
	if !g.In(x, y) {
		return fmt.Errorf("set (%d,%d) on %dx%d grid: %w", x, y, g.count, g.count, ErrInvalidArgument)
	}
	if v > 1 {
		return fmt.Errorf("cell value %d: %w", v, ErrInvalidArgument)
	}
	g.data[g.Index(x, y)] = v
	return nil
}

// Replace installs buf as the cell buffer and returns the previous one so the
// caller can reuse it for the next generation.
func (g *Grid) Replace(buf []uint8) ([]uint8, error) {
	if len(buf) != len(g.data) {
		return nil, fmt.Errorf("replace buffer of %d cells, want %d: %w", len(buf), len(g.data), ErrInvalidArgument)
	}
	for i, v := range buf {
		if v > 1 {
			return nil, fmt.Errorf("cell %d value %d: %w", i, v, ErrInvalidArgument)
		}
	}
	prev := g.data
	g.data = buf
	return prev, nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{count: g.count, size: g.size, data: append([]uint8(nil), g.data...)}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.count != o.count || g.size != o.size {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
