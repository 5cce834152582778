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

	"tileworld/internal/core"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

const (
	pad        = 12
	row        = 16
	ctrlRow    = 30
	btn        = 20
	gap        = 4
	swatch     = 10
	sectionGap = 10
)

// HUD is the side panel to the right of the world view: adjustable
// controls, a tile legend for the visible area and the read-only session
// parameters. It is drawn at panel scale and stretched by the device scale.
type HUD struct {
	src   parameterProvider
	width int

	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	legend   []LegendRow
	ratio    float64

	controls []control
	offsetX  int
	scale    float64
}

// NewHUD constructs a HUD of the given panel width in device-independent
// pixels. src may also provide controls, setters and session statistics.
func NewHUD(src parameterProvider, width int) *HUD {
	h := &HUD{src: src, width: max(width, 0), scale: 1, controls: newControls(src)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update reads the parameters and statistics of the last frame and handles
// clicks on the control buttons. offsetX is the panel's left edge in screen
// pixels and scale the device scale factor.
func (h *HUD) Update(offsetX int, scale float64) {
	if h == nil || h.src == nil {
		return
	}
	h.offsetX = offsetX
	h.scale = max(scale, 1e-3)
	h.snapshot = h.src.Parameters()
	refresh(h.controls, h.snapshot)
	if sp, ok := h.src.(statsProvider); ok {
		st := sp.Stats()
		h.legend = Legend(st)
		h.ratio = st.Compression()
	}
	h.click()
}

func (h *HUD) click() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(int(float64(mx-h.offsetX)/h.scale), int(float64(my)/h.scale))
	for i, c := range h.controls {
		minus, plus := buttonRects(h.width, i)
		dir := 0
		switch {
		case p.In(minus):
			dir = -1
		case p.In(plus):
			dir = 1
		default:
			continue
		}
		if v, ok := c.next(dir); ok && c.apply(h.src, v) {
			h.controls[i].value = v
		}
		return
	}
}

// Draw paints the panel at offsetX on a screen of the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	ph := int(float64(height) / h.scale)
	if h.panel == nil || h.panel.Bounds().Dy() != ph {
		h.panel = ebiten.NewImage(h.width, max(ph, 1))
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := pad + 12
	text.Draw(h.panel, "Tileworld", face, pad, y, headerColor)
	y = h.drawControls(y + row)
	y = h.drawLegend(y + sectionGap)
	h.drawParameters(y + sectionGap)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(h.scale, h.scale)
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls(top int) int {
	face := basicfont.Face7x13
	for i, c := range h.controls {
		minus, plus := buttonRects(h.width, i)
		base := minus.Min.Y + 14
		text.Draw(h.panel, c.Label, face, pad, base, valueColor)
		v := c.format()
		vw := text.BoundString(face, v).Dx()
		text.Draw(h.panel, v, face, minus.Min.X-gap-vw, base, valueColor)
		_, down := c.next(-1)
		_, up := c.next(1)
		h.button(minus, "-", down)
		h.button(plus, "+", up)
	}
	return max(top, controlsTop+len(h.controls)*ctrlRow)
}

func (h *HUD) drawLegend(top int) int {
	if len(h.legend) == 0 {
		return top
	}
	face := basicfont.Face7x13
	y := top + row
	text.Draw(h.panel, fmt.Sprintf("Visible tiles  %.1f/rect", h.ratio), face, pad, y, headerColor)
	for _, r := range h.legend {
		y += row
		h.fill(image.Rect(pad, y-swatch, pad+swatch, y), r.Color)
		text.Draw(h.panel, r.Type.String(), face, pad+swatch+gap*2, y, dimColor)
		v := fmt.Sprintf("%d  %4.1f%%", r.Count, 100*r.Share)
		text.Draw(h.panel, v, face, h.width-pad-text.BoundString(face, v).Dx(), y, valueColor)
	}
	return y
}

func (h *HUD) drawParameters(top int) {
	face := basicfont.Face7x13
	limit := h.panel.Bounds().Dy() - pad
	y := top
	for _, g := range h.snapshot.Groups {
		y += row
		if y > limit {
			return
		}
		text.Draw(h.panel, g.Name, face, pad, y, headerColor)
		for _, p := range g.Params {
			y += row
			if y > limit {
				return
			}
			text.Draw(h.panel, p.Label, face, pad+8, y, dimColor)
			text.Draw(h.panel, p.Value, face, h.width-pad-text.BoundString(face, p.Value).Dx(), y, valueColor)
		}
	}
}

func (h *HUD) button(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, valueColor
	if !enabled {
		bg, fg = buttonOff, dimColor
	}
	h.fill(r, bg)
	b := text.BoundString(basicfont.Face7x13, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()+b.Dy())/2
	text.Draw(h.panel, label, basicfont.Face7x13, x, y, fg)
}

func (h *HUD) fill(r image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

const controlsTop = pad + 12 + row

// buttonRects lays out the -/+ buttons of control i in panel coordinates.
func buttonRects(width, i int) (minus, plus image.Rectangle) {
	y := controlsTop + i*ctrlRow + (ctrlRow-btn)/2
	plus = image.Rect(width-pad-btn, y, width-pad, y+btn)
	minus = plus.Sub(image.Pt(btn+gap, 0))
	return minus, plus
}
