// Package term hosts the engine in a terminal using gocui, drawing one
// character per cell.
package term

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/logrusorgru/aurora"

	"gol-canvas/internal/core"
)

const (
	blank byte = iota
	filled
	stroked
)

// Surface is a render.Surface that maps every pixel rectangle onto the
// character cell under its origin. Filled cells print as a solid block,
// stroked cells as a dot.
type Surface struct {
	cellSize   int
	cols, rows int
	cells      []byte
	path       [][2]int

	au          aurora.Aurora
	alive, dead uint8
}

// NewSurface returns a surface for cells of cellSize pixels. au controls
// whether output carries ANSI colors.
func NewSurface(cellSize int, au aurora.Aurora) *Surface {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Surface{cellSize: cellSize, au: au, alive: 241, dead: 252}
}

// Dims returns the canvas size in characters.
func (s *Surface) Dims() (cols, rows int) { return s.cols, s.rows }

func (s *Surface) SetSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("terminal surface %dx%d: %w", w, h, core.ErrInvalidArgument)
	}
	s.cols = (w + s.cellSize - 1) / s.cellSize
	s.rows = (h + s.cellSize - 1) / s.cellSize
	s.cells = make([]byte, s.cols*s.rows)
	return nil
}

func (s *Surface) SetStrokeColor(c color.Color) { s.dead = xterm256(c) }
func (s *Surface) SetFillColor(c color.Color)   { s.alive = xterm256(c) }

// SetLineWidth is ignored; a character has no sub-cell outline.
func (s *Surface) SetLineWidth(float64) {}

func (s *Surface) ClearRect(x, y, w, h float64) error {
	if s.cells == nil {
		return errNoCanvas
	}
	c0, r0 := s.cell(x, y)
	c1, r1 := s.cell(x+w-1, y+h-1)
	for r := max(r0, 0); r <= min(r1, s.rows-1); r++ {
		for c := max(c0, 0); c <= min(c1, s.cols-1); c++ {
			s.cells[r*s.cols+c] = blank
		}
	}
	return nil
}

func (s *Surface) BeginPath() { s.path = s.path[:0] }

func (s *Surface) Rect(x, y, w, h float64) {
	c, r := s.cell(x, y)
	s.path = append(s.path, [2]int{c, r})
}

func (s *Surface) Fill() error   { return s.mark(filled) }
func (s *Surface) Stroke() error { return s.mark(stroked) }

func (s *Surface) mark(v byte) error {
	if s.cells == nil {
		return errNoCanvas
	}
	for _, p := range s.path {
		if p[0] < 0 || p[1] < 0 || p[0] >= s.cols || p[1] >= s.rows {
			continue
		}
		s.cells[p[1]*s.cols+p[0]] = v
	}
	return nil
}

func (s *Surface) cell(x, y float64) (int, int) {
	return int(x) / s.cellSize, int(y) / s.cellSize
}

// Lines returns the canvas as printable rows.
func (s *Surface) Lines() []string {
	lines := make([]string, s.rows)
	var b strings.Builder
	for r := 0; r < s.rows; r++ {
		b.Reset()
		for _, v := range s.cells[r*s.cols : (r+1)*s.cols] {
			switch v {
			case filled:
				b.WriteString(s.au.Index(s.alive, "█").String())
			case stroked:
				b.WriteString(s.au.Index(s.dead, "·").String())
			default:
				b.WriteByte(' ')
			}
		}
		lines[r] = b.String()
	}
	return lines
}

// xterm256 maps c onto the xterm 256-color palette: grays onto the 24-step
// ramp, everything else onto the 6x6x6 cube.
func xterm256(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	r, g, b = r>>8, g>>8, b>>8
	if r == g && g == b {
		switch {
		case r < 8:
			return 16
		case r > 238:
			return 231
		}
		return uint8(232 + (r-8)/10)
	}
	q := func(v uint32) uint32 { return (v*5 + 127) / 255 }
	return uint8(16 + 36*q(r) + 6*q(g) + q(b))
}
