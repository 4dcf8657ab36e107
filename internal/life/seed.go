package life

import (
	"fmt"

	"gol-canvas/internal/core"
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Seeder scatters live cells at uniformly random positions.
type Seeder struct {
	RNG *core.RNG
}

// NewSeeder returns a Seeder drawing from rng.
func NewSeeder(rng *core.RNG) *Seeder {
	return &Seeder{RNG: rng}
}

// DefaultRange returns the inclusive placement range used when no counter is
// given: [floor(0.3*N), floor(0.5*N)] with N = count*count.
func DefaultRange(count int) (lo, hi int) {
	n := count * count
	return n * 3 / 10, n / 2
}

// DefaultCounter draws a placement count from DefaultRange.
func (s *Seeder) DefaultCounter(count int) int {
	lo, hi := DefaultRange(count)
	return s.RNG.IntRange(lo, hi)
}

// Placements draws counter independent coordinates in [0, count)². The
// sequence may contain duplicates.
func (s *Seeder) Placements(count, counter int) ([]Point, error) {
	if counter < 0 {
		return nil, fmt.Errorf("seed counter %d: %w", counter, core.ErrInvalidArgument)
	}
	if count <= 0 {
		return nil, fmt.Errorf("seed grid count %d: %w", count, core.ErrInvalidArgument)
	}
	pts := make([]Point, counter)
	for i := range pts {
		pts[i] = Point{X: s.RNG.IntN(count), Y: s.RNG.IntN(count)}
	}
	return pts, nil
}

// Seed scatters a default number of placements over g and returns that number.
// Duplicate positions collapse, so the resulting population may be smaller.
func (s *Seeder) Seed(g *core.Grid) (int, error) {
	return s.SeedN(g, s.DefaultCounter(g.Count()))
}

// SeedN scatters exactly counter placements over g.
func (s *Seeder) SeedN(g *core.Grid, counter int) (int, error) {
	pts, err := s.Placements(g.Count(), counter)
	if err != nil {
		return 0, err
	}
	if err := Apply(g, pts); err != nil {
		return 0, err
	}
	return counter, nil
}

// Apply marks every listed coordinate alive. Listing a coordinate more than
// once has the same effect as listing it once.
func Apply(g *core.Grid, pts []Point) error {
	for _, p := range pts {
		if err := g.Set(p.X, p.Y, 1); err != nil {
			return err
		}
	}
	return nil
}

// Live returns the live cells of g in row-major order.
func Live(g *core.Grid) []Point {
	var pts []Point
	count := g.Count()
	for y := 0; y < count; y++ {
		for x := 0; x < count; x++ {
			if g.Lives(x, y) {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}
