//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gol-canvas/internal/core"
)

var errNoCanvas = errors.New("surface: canvas not sized")

// Surface draws onto an offscreen ebiten image that the game blits each frame.
type Surface struct {
	Background color.Color

	img       *ebiten.Image
	stroke    color.Color
	fill      color.Color
	lineWidth float32
	path      [][4]float32
}

// NewSurface returns a surface whose ClearRect paints background.
func NewSurface(background color.Color) *Surface {
	return &Surface{Background: background, stroke: color.Black, fill: color.Black, lineWidth: 1}
}

// Image returns the canvas, nil until SetSize.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) SetSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("ebiten surface %dx%d: %w", w, h, core.ErrInvalidArgument)
	}
	if s.img != nil {
		s.img.Dispose()
	}
	s.img = ebiten.NewImage(w, h)
	return nil
}

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *Surface) SetFillColor(c color.Color)   { s.fill = c }
func (s *Surface) SetLineWidth(w float64)       { s.lineWidth = float32(w) }

func (s *Surface) ClearRect(x, y, w, h float64) error {
	if s.img == nil {
		return errNoCanvas
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), s.Background, false)
	return nil
}

func (s *Surface) BeginPath() { s.path = s.path[:0] }

func (s *Surface) Rect(x, y, w, h float64) {
	s.path = append(s.path, [4]float32{float32(x), float32(y), float32(w), float32(h)})
}

func (s *Surface) Fill() error {
	if s.img == nil {
		return errNoCanvas
	}
	for _, r := range s.path {
		vector.DrawFilledRect(s.img, r[0], r[1], r[2], r[3], s.fill, false)
	}
	return nil
}

func (s *Surface) Stroke() error {
	if s.img == nil {
		return errNoCanvas
	}
	for _, r := range s.path {
		vector.StrokeRect(s.img, r[0], r[1], r[2], r[3], s.lineWidth, s.stroke, true)
	}
	return nil
}
