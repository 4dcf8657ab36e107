package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"gol-canvas/internal/core"
)

// errNoCanvas is returned when drawing before SetSize.
var errNoCanvas = errors.New("raster surface: canvas not sized")

type rectF struct {
	x0, y0, x1, y1 float64
}

func (r rectF) inset(d float64) rectF {
	return rectF{r.x0 + d, r.y0 + d, r.x1 - d, r.y1 - d}
}

func (r rectF) empty() bool { return r.x0 >= r.x1 || r.y0 >= r.y1 }

func (r rectF) clamp(b rectF) rectF {
	return rectF{
		math.Max(r.x0, b.x0), math.Max(r.y0, b.y0),
		math.Min(r.x1, b.x1), math.Min(r.y1, b.y1),
	}
}

// RasterSurface is a Surface backed by an in-memory RGBA image, rasterised
// with anti-aliasing by golang.org/x/image/vector.
type RasterSurface struct {
	Background color.Color

	img       *image.RGBA
	stroke    color.Color
	fill      color.Color
	lineWidth float64
	path      []rectF
	z         vector.Rasterizer
}

// NewRasterSurface returns a surface whose ClearRect paints background.
func NewRasterSurface(background color.Color) *RasterSurface {
	return &RasterSurface{
		Background: background,
		stroke:     color.Black,
		fill:       color.Black,
		lineWidth:  1,
	}
}

// Image exposes the backing image; nil until SetSize.
func (s *RasterSurface) Image() *image.RGBA { return s.img }

func (s *RasterSurface) SetSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster surface %dx%d: %w", w, h, core.ErrInvalidArgument)
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	return nil
}

func (s *RasterSurface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *RasterSurface) SetFillColor(c color.Color)   { s.fill = c }
func (s *RasterSurface) SetLineWidth(w float64)       { s.lineWidth = w }

func (s *RasterSurface) ClearRect(x, y, w, h float64) error {
	if s.img == nil {
		return errNoCanvas
	}
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(s.Background), image.Point{}, draw.Src)
	return nil
}

func (s *RasterSurface) BeginPath() { s.path = s.path[:0] }

func (s *RasterSurface) Rect(x, y, w, h float64) {
	s.path = append(s.path, rectF{x, y, x + w, y + h})
}

func (s *RasterSurface) Fill() error {
	if s.img == nil {
		return errNoCanvas
	}
	for _, r := range s.path {
		s.paint(s.fill, r, rectF{})
	}
	return nil
}

// Stroke outlines each path rectangle with a band of lineWidth centred on its edge.
func (s *RasterSurface) Stroke() error {
	if s.img == nil {
		return errNoCanvas
	}
	half := s.lineWidth / 2
	for _, r := range s.path {
		s.paint(s.stroke, r.inset(-half), r.inset(half))
	}
	return nil
}

// paint covers outer minus hole with c. An empty hole paints all of outer.
func (s *RasterSurface) paint(c color.Color, outer, hole rectF) {
	b := s.img.Bounds()
	box := image.Rect(
		int(math.Floor(outer.x0)), int(math.Floor(outer.y0)),
		int(math.Ceil(outer.x1)), int(math.Ceil(outer.y1)),
	).Intersect(b)
	if box.Empty() {
		return
	}
	clip := rectF{float64(box.Min.X), float64(box.Min.Y), float64(box.Max.X), float64(box.Max.Y)}
	outer = outer.clamp(clip)
	if outer.empty() {
		return
	}
	s.z.Reset(box.Dx(), box.Dy())
	ox, oy := clip.x0, clip.y0
	s.trace(outer, ox, oy, false)
	if !hole.empty() {
		if hole = hole.clamp(clip); !hole.empty() {
			s.trace(hole, ox, oy, true)
		}
	}
	s.z.Draw(s.img, box, image.NewUniform(c), image.Point{})
}

// trace adds r to the rasteriser relative to (ox, oy). Reversed winding
// subtracts the rectangle from what has been traced so far.
func (s *RasterSurface) trace(r rectF, ox, oy float64, reverse bool) {
	x0, y0 := float32(r.x0-ox), float32(r.y0-oy)
	x1, y1 := float32(r.x1-ox), float32(r.y1-oy)
	s.z.MoveTo(x0, y0)
	if reverse {
		s.z.LineTo(x0, y1)
		s.z.LineTo(x1, y1)
		s.z.LineTo(x1, y0)
	} else {
		s.z.LineTo(x1, y0)
		s.z.LineTo(x1, y1)
		s.z.LineTo(x0, y1)
	}
	s.z.ClosePath()
}

// WritePNG encodes the current canvas as PNG.
func (s *RasterSurface) WritePNG(w io.Writer) error {
	if s.img == nil {
		return errNoCanvas
	}
	return png.Encode(w, s.img)
}
