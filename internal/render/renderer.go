package render

import "gol-canvas/internal/core"

// Renderer paints a grid: live cells are filled with the alive color, dead
// cells are outlined with the dead color. Cell (x, y) covers the pixel square
// at (x*size, y*size) with y growing downwards.
type Renderer struct {
	Palette   Palette
	LineWidth float64

	// Counter, when set, receives the generation count after every frame.
	Counter func(generations int)
}

// NewRenderer returns a Renderer with the default palette and line width.
func NewRenderer() *Renderer {
	return &Renderer{Palette: DefaultPalette(), LineWidth: DefaultLineWidth}
}

// Prepare sizes s to the grid's pixel extent and installs the drawing styles.
func (r *Renderer) Prepare(g *core.Grid, s Surface) error {
	extent := g.PixelExtent()
	if err := s.SetSize(extent, extent); err != nil {
		return err
	}
	s.SetStrokeColor(r.Palette.Dead)
	s.SetFillColor(r.Palette.Alive)
	s.SetLineWidth(r.LineWidth)
	return nil
}

// Render clears s and draws every cell of g. Surface errors are returned as is.
func (r *Renderer) Render(g *core.Grid, s Surface, generations int) error {
	extent := float64(g.PixelExtent())
	if err := s.ClearRect(0, 0, extent, extent); err != nil {
		return err
	}
	count, size := g.Count(), float64(g.Size())
	for x := 0; x < count; x++ {
		for y := 0; y < count; y++ {
			s.BeginPath()
			s.Rect(float64(x)*size, float64(y)*size, size, size)
			var err error
			if g.Lives(x, y) {
				err = s.Fill()
			} else {
				err = s.Stroke()
			}
			if err != nil {
				return err
			}
		}
	}
	if r.Counter != nil {
		r.Counter(generations)
	}
	return nil
}
