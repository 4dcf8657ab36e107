// Package life implements Conway's Game of Life (B3/S23) on a finite grid with
// dead borders, plus random seeding.
package life

import "gol-canvas/internal/core"

// Neighbors counts live cells in the Moore neighborhood of (x, y). Positions
// outside the grid count as dead, so edge and corner cells see fewer than
// eight candidates.
func Neighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Lives(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Rule applies B3/S23 to a cell's current state and neighbor count.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Next returns the following generation of g as a new grid. g is not modified.
func Next(g *core.Grid) *core.Grid {
	out := g.Clone()
	fill(g, out.Cells())
	return out
}

// Stepper advances a grid in place, reusing the buffer of the previous
// generation as scratch space for the next one.
type Stepper struct {
	scratch []uint8
}

// Step advances g by one generation.
func (s *Stepper) Step(g *core.Grid) {
	if len(s.scratch) != len(g.Cells()) {
		s.scratch = make([]uint8, len(g.Cells()))
	}
	fill(g, s.scratch)
	prev, err := g.Replace(s.scratch)
	if err != nil {
		// fill only writes 0/1 into a buffer of matching length.
		panic(err)
	}
	s.scratch = prev
}

// fill writes the next generation of g into dst, which must not alias g's cells.
func fill(g *core.Grid, dst []uint8) {
	count := g.Count()
	for y := 0; y < count; y++ {
		for x := 0; x < count; x++ {
			idx := g.Index(x, y)
			dst[idx] = 0
			if Rule(g.Lives(x, y), Neighbors(g, x, y)) {
				dst[idx] = 1
			}
		}
	}
}
