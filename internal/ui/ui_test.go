package ui

import (
	"strconv"
	"testing"

	"tileworld/internal/core"
	"tileworld/internal/session"
	"tileworld/internal/terrain"
)

type fakeSource struct {
	zoom  float64
	batch int
}

func (f *fakeSource) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			{Key: "zoom", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(f.zoom, 'f', -1, 64)},
			{Key: "grow_batch", Type: core.ParamTypeInt, Value: strconv.Itoa(f.batch)},
		},
	}}}
}

func (f *fakeSource) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "zoom", Type: core.ParamTypeFloat, Step: 0.2, Min: 0.4, Max: 10, HasMin: true, HasMax: true},
		{Key: "grow_batch", Type: core.ParamTypeInt, Step: 4, Min: 1, HasMin: true},
		{Key: "missing", Type: core.ParamTypeInt},
	}
}

func (f *fakeSource) SetFloatParameter(key string, v float64) bool {
	if key != "zoom" {
		return false
	}
	f.zoom = v
	return true
}

func (f *fakeSource) SetIntParameter(key string, v int) bool {
	if key != "grow_batch" {
		return false
	}
	f.batch = v
	return true
}

func TestControlsReadValuesFromSnapshot(t *testing.T) {
	src := &fakeSource{zoom: 1.4, batch: 16}
	cs := newControls(src)
	if len(cs) != 3 {
		t.Fatalf("got %d controls", len(cs))
	}
	refresh(cs, src.Parameters())
	if !cs[0].known || cs[0].value != 1.4 || cs[0].format() != "1.4" {
		t.Fatalf("zoom control %+v %q", cs[0], cs[0].format())
	}
	if !cs[1].known || cs[1].format() != "16" {
		t.Fatalf("grow batch control %+v", cs[1])
	}
	if cs[2].known || cs[2].format() != "--" {
		t.Fatalf("missing parameter should be unknown: %+v", cs[2])
	}
	if _, ok := cs[2].next(1); ok {
		t.Fatal("unknown control must not step")
	}
}

func TestControlStepsAndClamps(t *testing.T) {
	src := &fakeSource{zoom: 0.5, batch: 3}
	cs := newControls(src)
	refresh(cs, src.Parameters())

	if v, ok := cs[0].next(-1); !ok || v != 0.4 {
		t.Fatalf("zoom down = %v, %v; want clamp to 0.4", v, ok)
	}
	if v, ok := cs[1].next(-1); !ok || v != 1 {
		t.Fatalf("batch down = %v, %v; want clamp to 1", v, ok)
	}
	if v, ok := cs[1].next(1); !ok || v != 7 {
		t.Fatalf("batch up = %v, %v; want 7", v, ok)
	}

	src.zoom, src.batch = 0.4, 1
	refresh(cs, src.Parameters())
	if _, ok := cs[0].next(-1); ok {
		t.Fatal("zoom at its minimum must not step down")
	}
	if _, ok := cs[1].next(-1); ok {
		t.Fatal("batch at its minimum must not step down")
	}
}

func TestControlApplyUsesMatchingSetter(t *testing.T) {
	src := &fakeSource{zoom: 1, batch: 16}
	cs := newControls(src)
	refresh(cs, src.Parameters())

	v, _ := cs[0].next(1)
	if !cs[0].apply(src, v) || src.zoom != 1.2 {
		t.Fatalf("zoom not applied: %v", src.zoom)
	}
	v, _ = cs[1].next(1)
	if !cs[1].apply(src, v) || src.batch != 20 {
		t.Fatalf("batch not applied: %v", src.batch)
	}
	if cs[0].apply(struct{}{}, 2) {
		t.Fatal("source without setters accepted a value")
	}
}

func TestNewControlsWithoutProvider(t *testing.T) {
	if cs := newControls(struct{}{}); cs != nil {
		t.Fatalf("expected no controls, got %v", cs)
	}
}

func TestLegendFromStats(t *testing.T) {
	var st session.Stats
	st.Tiles = 40
	st.TileCounts[terrain.Water] = 30
	st.TileCounts[terrain.Sand] = 10
	rows := Legend(st)
	if len(rows) != len(terrain.TileTypes) {
		t.Fatalf("got %d rows", len(rows))
	}
	for i, r := range rows {
		if r.Type != terrain.TileTypes[i] || r.Color != terrain.Color(r.Type) {
			t.Fatalf("row %d = %+v", i, r)
		}
	}
	if w := rows[terrain.Water]; w.Count != 30 || w.Share != 0.75 {
		t.Fatalf("water row %+v", w)
	}
	if g := rows[terrain.Grass]; g.Count != 0 || g.Share != 0 {
		t.Fatalf("grass row %+v", g)
	}
}

func TestLegendOfEmptyFrame(t *testing.T) {
	for _, r := range Legend(session.Stats{}) {
		if r.Share != 0 {
			t.Fatalf("empty frame row %+v", r)
		}
	}
}
