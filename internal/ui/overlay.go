//go:build ebiten

package ui

import (
	"image/color"

	"tileworld/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	cursorColor    = color.RGBA{R: 255, G: 255, B: 255, A: 128}
	highlightColor = color.RGBA{R: 0, G: 174, B: 255, A: 128}
	seamColor      = color.RGBA{R: 255, G: 60, B: 60, A: 160}
)

// Overlay draws pointer feedback and optional debugging visuals on top of
// the painted world.
type Overlay struct {
	showCursor    bool
	showHighlight bool
	showRuns      bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay with the cursor square and hover
// highlight enabled.
func NewOverlay() *Overlay {
	o := &Overlay{showCursor: true, showHighlight: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCursor = !o.showCursor
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHighlight = !o.showHighlight
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showRuns = !o.showRuns
	}
}

// Draw renders the overlay for frame onto screen. px and py are the pointer
// position in screen pixels; inView reports whether it is over the world.
func (o *Overlay) Draw(screen *ebiten.Image, frame session.Frame, px, py int, inView bool) {
	cam := frame.Camera
	tw, th := cam.TileW(), cam.TileH()

	if o.showRuns {
		// One line per batched run start, so long runs read as a single block.
		for _, r := range frame.Rects {
			o.fill(screen, r.X, r.Y, r.Width, 1, seamColor)
		}
	}

	if o.showHighlight && frame.HoverOK {
		n := frame.Hovered
		o.fill(screen, cam.ScreenX(n.X), cam.ScreenY(n.Y), tw, th, highlightColor)
	}

	if o.showCursor && inView {
		o.fill(screen, float64(px)-tw/2, float64(py)-th/2, tw, th, cursorColor)
	}
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
