// Package world owns the generated tile grid and grows it to the right on
// demand.
package world

import (
	"fmt"
	"sync/atomic"

	"tileworld/internal/core"
	"tileworld/internal/terrain"
)

// Node is one grid cell.
type Node struct {
	X, Y int
	Type terrain.TileType
}

// Column is a vertical strip of nodes with strictly increasing Y.
type Column struct {
	X     int
	Nodes []Node
}

// Classifier yields the generated tile type of a coordinate.
type Classifier interface {
	Classify(x, y int) terrain.TileType
}

// Config sizes a Grid.
type Config struct {
	// InitialColumns is the block generated at construction.
	InitialColumns int
	// Rows is the highest row index; every column holds Rows+1 nodes.
	Rows int
	// Columns caps the total width the grid may grow to.
	Columns int
}

// Validate reports whether the configuration describes a usable grid.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("rows %d must be positive: %w", c.Rows, core.ErrConfiguration)
	case c.InitialColumns <= 0:
		return fmt.Errorf("initial columns %d must be positive: %w", c.InitialColumns, core.ErrConfiguration)
	case c.Columns <= 0:
		return fmt.Errorf("columns %d must be positive: %w", c.Columns, core.ErrConfiguration)
	case c.InitialColumns > c.Columns:
		return fmt.Errorf("initial columns %d exceed column limit %d: %w", c.InitialColumns, c.Columns, core.ErrConfiguration)
	}
	return nil
}

// Grid is the dense, append-only world. Column i always has X == i, columns
// are only ever appended on the right, and node types change only through
// MutateNode.
//
// Grid expects a single writer. Hosts that call GrowRight or MutateNode from
// more than one goroutine must serialize those calls themselves.
type Grid struct {
	classifier Classifier
	rows       int
	maxColumns int
	columns    []Column

	growing atomic.Bool
}

// New generates the initial block of columns [0, cfg.InitialColumns).
func New(classifier Classifier, cfg Config) (*Grid, error) {
	if classifier == nil {
		return nil, fmt.Errorf("world: nil classifier: %w", core.ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	g := &Grid{
		classifier: classifier,
		rows:       cfg.Rows,
		maxColumns: cfg.Columns,
		columns:    make([]Column, 0, cfg.InitialColumns),
	}
	for x := 0; x < cfg.InitialColumns; x++ {
		g.columns = append(g.columns, g.generateColumn(x))
	}
	return g, nil
}

// Rows returns the configured row count. Columns hold Rows()+1 nodes.
func (g *Grid) Rows() int { return g.rows }

// Width returns the number of generated columns.
func (g *Grid) Width() int { return len(g.columns) }

// MaxColumns returns the width the grid stops growing at.
func (g *Grid) MaxColumns() int { return g.maxColumns }

// Columns exposes the generated columns in ascending X order. Callers must
// treat the result as read-only.
func (g *Grid) Columns() []Column { return g.columns }

// Growing reports whether a GrowRight call is currently in flight.
func (g *Grid) Growing() bool { return g.growing.Load() }

// Node returns the node at (x, y) if it has been generated.
func (g *Grid) Node(x, y int) (Node, bool) {
	n := g.lookup(x, y)
	if n == nil {
		return Node{}, false
	}
	return *n, true
}

// GrowRight appends up to maxColumns new columns to the right of the current
// rightmost column and returns how many were added. It does nothing when a
// growth call is already running or the grid has reached its width limit.
// A missing or empty rightmost column aborts the call with ErrCorruptedGrid
// and leaves the grid unchanged.
func (g *Grid) GrowRight(maxColumns int) (int, error) {
	if maxColumns <= 0 {
		return 0, nil
	}
	if !g.growing.CompareAndSwap(false, true) {
		return 0, nil
	}
	defer g.growing.Store(false)

	if len(g.columns) >= g.maxColumns {
		return 0, nil
	}
	if len(g.columns) == 0 {
		return 0, fmt.Errorf("world: grow right: no rightmost column: %w", core.ErrCorruptedGrid)
	}
	last := g.columns[len(g.columns)-1]
	if len(last.Nodes) == 0 {
		return 0, fmt.Errorf("world: grow right: column %d is empty: %w", last.X, core.ErrCorruptedGrid)
	}
	if last.X != len(g.columns)-1 {
		return 0, fmt.Errorf("world: grow right: rightmost column has x=%d, want %d: %w", last.X, len(g.columns)-1, core.ErrCorruptedGrid)
	}

	n := min(maxColumns, g.maxColumns-len(g.columns))
	fresh := make([]Column, 0, n)
	for i := 1; i <= n; i++ {
		fresh = append(fresh, g.generateColumn(last.X+i))
	}
	g.columns = append(g.columns, fresh...)
	return n, nil
}

// MutateNode sets the tile type of an existing node. It never grows the grid.
func (g *Grid) MutateNode(x, y int, t terrain.TileType) error {
	n := g.lookup(x, y)
	if n == nil {
		return fmt.Errorf("world: mutate (%d,%d): %w", x, y, core.ErrOutOfBounds)
	}
	n.Type = t
	return nil
}

func (g *Grid) lookup(x, y int) *Node {
	if x < 0 || x >= len(g.columns) {
		return nil
	}
	col := g.columns[x].Nodes
	if y < 0 || y >= len(col) {
		return nil
	}
	return &col[y]
}

func (g *Grid) generateColumn(x int) Column {
	nodes := make([]Node, g.rows+1)
	for y := range nodes {
		nodes[y] = Node{X: x, Y: y, Type: g.classifier.Classify(x, y)}
	}
	return Column{X: x, Nodes: nodes}
}
