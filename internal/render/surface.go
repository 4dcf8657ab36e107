// Package render draws a grid onto a 2-D surface, one axis-aligned rectangle
// per cell.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gol-canvas/internal/core"
)

// Surface is the drawing capability the renderer needs: a resizable canvas
// with stroke and fill styles, rectangle clearing and a single rectangular path.
type Surface interface {
	SetSize(w, h int) error
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	ClearRect(x, y, w, h float64) error
	BeginPath()
	Rect(x, y, w, h float64)
	Fill() error
	Stroke() error
}

// Palette holds the colors of live and dead cells. Dead doubles as background.
type Palette struct {
	Alive color.Color
	Dead  color.Color
}

// DefaultLineWidth is the outline width of dead cells in pixels.
const DefaultLineWidth = 0.25

// DefaultPalette returns the standard gray palette.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
		Dead:  color.RGBA{R: 0xd1, G: 0xd1, B: 0xd1, A: 0xff},
	}
}

// ParseHex parses a #rrggbb or #rgb color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, core.ErrInvalidArgument)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, core.ErrInvalidArgument)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
