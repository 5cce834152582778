package world

import (
	"errors"
	"slices"
	"testing"

	"tileworld/internal/core"
	"tileworld/internal/noise"
	"tileworld/internal/terrain"
)

func newTestGrid(t *testing.T, cfg Config) *Grid {
	t.Helper()
	c, err := terrain.NewClassifier(noise.New(21), terrain.DefaultConfig())
	if err != nil {
		t.Fatalf("classifier: %v", err)
	}
	g, err := New(c, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewGeneratesDenseBlock(t *testing.T) {
	g := newTestGrid(t, Config{InitialColumns: 12, Rows: 7, Columns: 40})
	if g.Width() != 12 {
		t.Fatalf("expected 12 columns, got %d", g.Width())
	}
	for i, col := range g.Columns() {
		if col.X != i {
			t.Fatalf("column %d has x=%d", i, col.X)
		}
		if len(col.Nodes) != 8 {
			t.Fatalf("column %d has %d nodes, want rows+1=8", i, len(col.Nodes))
		}
		for y, n := range col.Nodes {
			if n.X != i || n.Y != y {
				t.Fatalf("node at column %d index %d has coordinate (%d,%d)", i, y, n.X, n.Y)
			}
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	c := constClassifier(terrain.Grass)
	bad := []Config{
		{InitialColumns: 1, Rows: 0, Columns: 10},
		{InitialColumns: 0, Rows: 5, Columns: 10},
		{InitialColumns: 1, Rows: 5, Columns: 0},
		{InitialColumns: 11, Rows: 5, Columns: 10},
		{InitialColumns: -3, Rows: -1, Columns: 10},
	}
	for _, cfg := range bad {
		if _, err := New(c, cfg); !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("%+v: expected configuration error, got %v", cfg, err)
		}
	}
	if _, err := New(nil, Config{InitialColumns: 1, Rows: 1, Columns: 1}); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("nil classifier: expected configuration error, got %v", err)
	}
}

func TestGrowRightAddsUpToLimit(t *testing.T) {
	g := newTestGrid(t, Config{InitialColumns: 3, Rows: 4, Columns: 10})
	wantAdded := []int{3, 3, 1, 0, 0}
	width := 3
	for i, want := range wantAdded {
		added, err := g.GrowRight(3)
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if added != want {
			t.Fatalf("call %d added %d, want %d", i, added, want)
		}
		width += want
		if g.Width() != width {
			t.Fatalf("call %d: width %d, want %d", i, g.Width(), width)
		}
	}
	for i, col := range g.Columns() {
		if col.X != i {
			t.Fatalf("column %d has x=%d after growth", i, col.X)
		}
	}
}

func TestGrowRightKeepsExistingColumns(t *testing.T) {
	g := newTestGrid(t, Config{InitialColumns: 5, Rows: 9, Columns: 50})
	if err := g.MutateNode(2, 3, terrain.Marked); err != nil {
		t.Fatalf("MutateNode: %v", err)
	}
	before := snapshotTypes(g)
	if _, err := g.GrowRight(20); err != nil {
		t.Fatalf("GrowRight: %v", err)
	}
	after := snapshotTypes(g)
	for x := range before {
		if !slices.Equal(before[x], after[x]) {
			t.Fatalf("column %d changed during growth", x)
		}
	}
	if n, _ := g.Node(2, 3); n.Type != terrain.Marked {
		t.Fatalf("edit lost after growth: %v", n.Type)
	}
}

func TestGrowRightMatchesFreshGeneration(t *testing.T) {
	grown := newTestGrid(t, Config{InitialColumns: 2, Rows: 6, Columns: 30})
	for grown.Width() < 30 {
		if _, err := grown.GrowRight(4); err != nil {
			t.Fatalf("GrowRight: %v", err)
		}
	}
	whole := newTestGrid(t, Config{InitialColumns: 30, Rows: 6, Columns: 30})
	if !slices.EqualFunc(snapshotTypes(grown), snapshotTypes(whole), slices.Equal[[]terrain.TileType]) {
		t.Fatal("incremental growth should generate the same world as a single block")
	}
}

func TestGrowRightIsSingleFlight(t *testing.T) {
	rc := &reentrantClassifier{}
	g, err := New(rc, Config{InitialColumns: 2, Rows: 3, Columns: 100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rc.grid = g

	added, err := g.GrowRight(2)
	if err != nil {
		t.Fatalf("GrowRight: %v", err)
	}
	if added != 2 {
		t.Fatalf("outer call added %d, want 2", added)
	}
	if len(rc.nested) == 0 {
		t.Fatal("classifier never issued a nested growth call")
	}
	for i, r := range rc.nested {
		if r.added != 0 || r.err != nil {
			t.Fatalf("nested call %d added %d err=%v, want no-op", i, r.added, r.err)
		}
		if r.widthAfter != 2 {
			t.Fatalf("nested call %d changed width to %d", i, r.widthAfter)
		}
	}
	if g.Growing() {
		t.Fatal("guard still held after growth returned")
	}
	if g.Width() != 4 {
		t.Fatalf("width %d, want 4", g.Width())
	}
}

func TestGrowRightReportsCorruptionAndReleasesGuard(t *testing.T) {
	g := newTestGrid(t, Config{InitialColumns: 4, Rows: 3, Columns: 20})
	last := g.columns[3].Nodes
	g.columns[3].Nodes = nil

	added, err := g.GrowRight(5)
	if !errors.Is(err, core.ErrCorruptedGrid) {
		t.Fatalf("expected corrupted grid error, got %v", err)
	}
	if added != 0 || g.Width() != 4 {
		t.Fatalf("corrupted growth changed the grid: added=%d width=%d", added, g.Width())
	}
	if g.Growing() {
		t.Fatal("guard not released after failed growth")
	}

	g.columns[3].Nodes = last
	if added, err := g.GrowRight(5); err != nil || added != 5 {
		t.Fatalf("retry after repair: added=%d err=%v", added, err)
	}
}

func TestGrowRightOnEmptyGridIsCorruption(t *testing.T) {
	g := newTestGrid(t, Config{InitialColumns: 1, Rows: 3, Columns: 20})
	g.columns = g.columns[:0]
	if _, err := g.GrowRight(1); !errors.Is(err, core.ErrCorruptedGrid) {
		t.Fatalf("expected corrupted grid error, got %v", err)
	}
}

func TestMutateNode(t *testing.T) {
	g := newTestGrid(t, Config{InitialColumns: 4, Rows: 4, Columns: 20})
	if err := g.MutateNode(3, 4, terrain.Marked); err != nil {
		t.Fatalf("MutateNode on last row: %v", err)
	}
	if n, ok := g.Node(3, 4); !ok || n.Type != terrain.Marked {
		t.Fatalf("node (3,4) = %+v ok=%v, want marked", n, ok)
	}
	for _, p := range [][2]int{{4, 0}, {-1, 0}, {0, 5}, {0, -1}, {100, 100}} {
		err := g.MutateNode(p[0], p[1], terrain.Marked)
		if !errors.Is(err, core.ErrOutOfBounds) {
			t.Fatalf("(%d,%d): expected out of bounds, got %v", p[0], p[1], err)
		}
	}
	if g.Width() != 4 {
		t.Fatalf("edits must not grow the grid, width=%d", g.Width())
	}
}

func snapshotTypes(g *Grid) [][]terrain.TileType {
	out := make([][]terrain.TileType, 0, g.Width())
	for _, col := range g.Columns() {
		types := make([]terrain.TileType, len(col.Nodes))
		for i, n := range col.Nodes {
			types[i] = n.Type
		}
		out = append(out, types)
	}
	return out
}

type constClassifier terrain.TileType

func (c constClassifier) Classify(int, int) terrain.TileType { return terrain.TileType(c) }

type nestedResult struct {
	added      int
	err        error
	widthAfter int
}

type reentrantClassifier struct {
	grid   *Grid
	nested []nestedResult
}

func (r *reentrantClassifier) Classify(x, y int) terrain.TileType {
	if r.grid != nil && y == 0 {
		added, err := r.grid.GrowRight(10)
		r.nested = append(r.nested, nestedResult{added: added, err: err, widthAfter: r.grid.Width()})
	}
	return terrain.Grass
}
