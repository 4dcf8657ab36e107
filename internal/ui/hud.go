//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gol-canvas/internal/core"
	"gol-canvas/internal/engine"
)

// PanelWidth is the width of the HUD column right of the grid.
const PanelWidth = 160

type engineStatus interface {
	Running() bool
	Grid() *core.Grid
}

// HUD renders the control column: generation counter, population and the
// start-n-stop, step and reset buttons.
type HUD struct {
	status     engineStatus
	panel      *engine.Panel
	width      int
	canvas     *ebiten.Image
	lastHeight int

	buttons      []hudButton
	panelOffsetX int

	pixel *ebiten.Image
}

type hudButton struct {
	control string
	rect    image.Rectangle
}

// NewHUD constructs a HUD pressing buttons on panel.
func NewHUD(status engineStatus, panel *engine.Panel, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{status: status, panel: panel, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layoutButtons()
	return h
}

// Update handles clicks on the HUD buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for _, b := range h.buttons {
		if pointInRect(px, my, b.rect) {
			h.panel.Press(b.control)
			return
		}
	}
}

// Draw paints the HUD panel anchored to the right edge of the grid.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.canvas == nil || h.lastHeight != height {
		h.canvas = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.canvas.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	for _, b := range h.buttons {
		h.drawButton(b.rect, h.label(b.control))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.canvas, op)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.canvas, "Game of Life", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	generations, _ := h.panel.Value(engine.DisplayGenerations)
	population := 0
	if g := h.status.Grid(); g != nil {
		population = g.Population()
	}
	state := "stopped"
	if h.status.Running() {
		state = "running"
	}
	lines := []string{
		fmt.Sprintf("Generation %d", generations),
		fmt.Sprintf("Population %d", population),
		state,
	}
	for _, line := range lines {
		y += infoSpacing
		text.Draw(h.canvas, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

func (h *HUD) label(control string) string {
	switch control {
	case engine.ControlStartStop:
		if h.status.Running() {
			return "Stop"
		}
		return "Start"
	case engine.ControlStep:
		return "Step"
	case engine.ControlReset:
		return "Reset"
	default:
		return control
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.canvas.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(h.canvas, label, face, x, y, fg)
}

func (h *HUD) layoutButtons() {
	if h.width <= 0 {
		return
	}
	controls := []string{engine.ControlStartStop, engine.ControlStep, engine.ControlReset}
	h.buttons = h.buttons[:0]
	for i, control := range controls {
		top := buttonsTop + i*(buttonHeight+buttonGap)
		h.buttons = append(h.buttons, hudButton{
			control: control,
			rect:    image.Rect(panelPadding, top, h.width-panelPadding, top+buttonHeight),
		})
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	buttonHeight   = 24
	buttonGap      = 8
	headerBaseline = 18
	infoSpacing    = 20
	buttonsTop     = panelPadding + headerBaseline + 4*infoSpacing
)
