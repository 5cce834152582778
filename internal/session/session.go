// Package session drives one world instance frame by frame: it owns the
// camera and input state, grows the world as the camera approaches the
// unexplored edge and produces the paint rectangles and hovered node for
// every tick.
package session

import (
	"fmt"
	"log"
	"time"

	"tileworld/internal/core"
	"tileworld/internal/noise"
	"tileworld/internal/terrain"
	"tileworld/internal/view"
	"tileworld/internal/world"
)

// Input is the logical input state sampled for one tick.
type Input struct {
	Up, Down, Left, Right bool

	// ZoomSteps is the number of wheel ticks this frame; positive zooms in.
	ZoomSteps int

	PointerX, PointerY float64
	// PointerDown marks the hovered tile on every tick it is held.
	PointerDown bool
}

// Frame is what the rendering side needs after a tick. Rects is reused by the
// next Tick and must not be retained.
type Frame struct {
	Camera  view.Camera
	Rects   []view.RenderRect
	Hovered world.Node
	HoverOK bool
	Tiles   int
}

// Session owns one world instance and its camera.
type Session struct {
	cfg    Config
	logger *log.Logger

	classifier *terrain.Classifier
	grid       *world.Grid

	camera view.Camera

	culled  view.CulledView
	rects   []view.RenderRect
	hovered *world.Node
	dirty   bool

	lastPointerX, lastPointerY float64
	pointerSeen                bool
}

// New builds a session and generates the initial block of the world.
func New(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		cfg:    cfg,
		logger: logger,
		camera: view.Camera{
			Scale:      cfg.Scale,
			Viewport:   cfg.Viewport,
			TileWidth:  cfg.TileSize,
			TileHeight: cfg.TileSize,
			PixelRatio: cfg.PixelRatio,
		},
	}
	if err := s.build(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) build(seed int64) error {
	field := s.cfg.Sampler
	if field == nil {
		field = noise.New(seed)
	}
	classifier, err := terrain.NewClassifier(field, s.cfg.Terrain)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	grid, err := world.New(classifier, world.Config{
		InitialColumns: s.cfg.initialColumns(),
		Rows:           s.cfg.Rows,
		Columns:        s.cfg.Columns,
	})
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if s.cfg.Sampler == nil {
		s.cfg.Seed = seed
	}
	s.classifier = classifier
	s.grid = grid
	s.hovered = nil
	s.dirty = true
	if s.cfg.Verbose {
		s.logger.Printf("tileworld: world seed=%d generated %d columns x %d rows", seed, grid.Width(), grid.Rows()+1)
	}
	return nil
}

// Reseed discards the current world, edits included, and generates a new one.
// With a fixed Sampler the seed is ignored and the reported seed is kept.
func (s *Session) Reseed(seed int64) error {
	return s.build(seed)
}

// Grid exposes the world grid.
func (s *Session) Grid() *world.Grid { return s.grid }

// Camera returns the current camera.
func (s *Session) Camera() view.Camera { return s.camera }

// SetViewport resizes the visible area in backing-buffer pixels.
func (s *Session) SetViewport(size core.Size) {
	if size.Empty() || size == s.camera.Viewport {
		return
	}
	s.camera.Viewport = size
	s.dirty = true
}

// SetPixelRatio sets the display-to-backing-buffer pixel ratio used for
// pointer hit testing.
func (s *Session) SetPixelRatio(r float64) {
	if r == s.camera.PixelRatio {
		return
	}
	s.camera.PixelRatio = r
	s.pointerSeen = false
}

// Tick advances one frame: apply pan and zoom, grow the world if the view
// reaches past the generated edge, recompute the culled view and batch when
// anything changed, then update the hovered node and apply edits.
func (s *Session) Tick(dt time.Duration, in Input) Frame {
	s.applyCamera(dt, in)
	s.growIfNeeded()

	if s.dirty {
		s.culled = view.Cull(s.grid, s.camera)
		s.rects = view.AppendBatch(s.rects[:0], s.culled)
		s.pointerSeen = false
		s.dirty = false
	}

	if !s.pointerSeen || in.PointerX != s.lastPointerX || in.PointerY != s.lastPointerY {
		s.hovered, _ = view.HitTest(s.culled, in.PointerX, in.PointerY, s.camera)
		s.lastPointerX, s.lastPointerY = in.PointerX, in.PointerY
		s.pointerSeen = true
	}

	if in.PointerDown && s.hovered != nil {
		s.mark(s.hovered.X, s.hovered.Y)
	}

	f := Frame{Camera: s.camera, Rects: s.rects, Tiles: s.culled.NodeCount()}
	if s.hovered != nil {
		f.Hovered, f.HoverOK = *s.hovered, true
	}
	return f
}

func (s *Session) applyCamera(dt time.Duration, in Input) {
	if in.ZoomSteps != 0 {
		zoomed := s.camera.Zoom(in.ZoomSteps)
		if zoomed.Scale != s.camera.Scale {
			s.camera = zoomed
			s.dirty = true
		}
	}

	step := s.cfg.PanSpeed * dt.Seconds() / s.camera.Scale
	if step <= 0 {
		return
	}
	var dx, dy float64
	if in.Right {
		dx -= step
	}
	if in.Left {
		dx += step
	}
	if in.Down {
		dy -= step
	}
	if in.Up {
		dy += step
	}
	if dx != 0 || dy != 0 {
		s.camera.XOffset += dx
		s.camera.YOffset += dy
		s.dirty = true
	}
}

// growIfNeeded appends one batch of columns when the right edge of the view,
// plus one tile of margin, reaches past the generated width.
func (s *Session) growIfNeeded() {
	if s.grid.Width() >= s.grid.MaxColumns() {
		return
	}
	if s.camera.VisibleRight()+1 <= s.grid.Width() {
		return
	}
	added, err := s.grid.GrowRight(s.cfg.GrowBatch)
	if err != nil {
		s.logger.Printf("tileworld: %v", err)
		return
	}
	if added > 0 {
		s.dirty = true
		if s.cfg.Verbose {
			s.logger.Printf("tileworld: grew %d columns, width now %d", added, s.grid.Width())
		}
	}
}

func (s *Session) mark(x, y int) {
	before, _ := s.grid.Node(x, y)
	if err := s.grid.MutateNode(x, y, terrain.Marked); err != nil {
		s.logger.Printf("tileworld: edit rejected: %v", err)
		return
	}
	if before.Type != terrain.Marked {
		s.rects = view.AppendBatch(s.rects[:0], s.culled)
	}
}
