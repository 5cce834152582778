//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log"
	"math"
	"time"

	"tileworld/internal/core"
	"tileworld/internal/render"
	"tileworld/internal/session"
	"tileworld/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{A: 255}

// Game adapts a world session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	clock   *core.FrameClock
	seeds   *core.RNG
	hud     *ui.HUD
	overlay *ui.Overlay
	pixel   *ebiten.Image

	hudWidth int
	showHUD  bool

	frame         session.Frame
	screen        core.Size
	deviceScale   float64
	pointerX      int
	pointerY      int
	pointerInView bool
}

// New constructs a Game for the provided session.
func New(s *session.Session, tps, hudWidth int) *Game {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Game{
		session:  s,
		clock:    core.NewFrameClock(tps),
		seeds:    core.NewRNG(time.Now().UnixNano()),
		hud:      ui.NewHUD(s, hudWidth),
		overlay:  ui.NewOverlay(),
		pixel:    pixel,
		hudWidth: hudWidth,
		showHUD:  hudWidth > 0,

		deviceScale: 1,
	}
}

// Reset regenerates the world from seed, discarding edits.
func (g *Game) Reset(seed int64) {
	if err := g.session.Reseed(seed); err != nil {
		log.Printf("tileworld: reseed %d: %v", seed, err)
		return
	}
	g.clock.Reset()
}

// Update samples input and advances the session one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seeds.Int64())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && g.hudWidth > 0 {
		g.showHUD = !g.showHUD
	}

	viewW := g.viewWidth()
	// The screen is laid out in backing pixels; pointer input is reported
	// to the session in display pixels.
	ratio := 1 / g.deviceScale
	g.session.SetViewport(core.Size{W: viewW, H: g.screen.H})
	g.session.SetPixelRatio(ratio)
	g.overlay.Update()
	if g.showHUD {
		g.hud.Update(viewW, g.deviceScale)
	}

	g.pointerX, g.pointerY = ebiten.CursorPosition()
	g.pointerInView = g.pointerX >= 0 && g.pointerX < viewW && g.pointerY >= 0 && g.pointerY < g.screen.H
	in := session.Input{
		Up:          ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ZoomSteps:   wheelSteps(),
		PointerX:    float64(g.pointerX) * ratio,
		PointerY:    float64(g.pointerY) * ratio,
		PointerDown: g.pointerInView && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	if !g.pointerInView {
		// Park the pointer off-grid so nothing is hovered under the HUD.
		in.PointerX, in.PointerY = -1e9, -1e9
	}
	g.frame = g.session.Tick(g.clock.Tick(), in)
	return nil
}

// Draw paints the culled world, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	viewW := g.viewWidth()
	world := screen.SubImage(image.Rect(0, 0, viewW, g.screen.H)).(*ebiten.Image)
	render.Paint(screenSink{dst: world, pixel: g.pixel}, g.frame.Rects)
	g.overlay.Draw(world, g.frame, g.pointerX, g.pointerY, g.pointerInView)
	if g.showHUD {
		g.hud.Draw(screen, viewW, g.screen.H)
	}
}

// Layout sizes the screen in backing pixels, the window size times the
// device scale factor.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.deviceScale = ebiten.DeviceScaleFactor()
	if g.deviceScale <= 0 {
		g.deviceScale = 1
	}
	g.screen = core.Size{
		W: int(math.Ceil(float64(outsideWidth) * g.deviceScale)),
		H: int(math.Ceil(float64(outsideHeight) * g.deviceScale)),
	}
	return g.screen.W, g.screen.H
}

func (g *Game) viewWidth() int {
	w := g.screen.W
	if g.showHUD {
		w -= int(math.Ceil(float64(g.hudWidth) * g.deviceScale))
	}
	return max(w, 1)
}

func wheelSteps() int {
	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		return 1
	case dy < 0:
		return -1
	}
	return 0
}

// screenSink paints rectangles by stretching a single white pixel.
type screenSink struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
}

func (s screenSink) Clear() { s.dst.Fill(background) }

// FillRect snaps the rectangle to whole pixels so columns at fractional
// tile sizes leave no seams between them.
func (s screenSink) FillRect(x, y, w, h float64, c color.RGBA) {
	r := render.Snap(x, y, w, h)
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(s.pixel, op)
}
