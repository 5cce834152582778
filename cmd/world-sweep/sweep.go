package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"tileworld/internal/core"
	"tileworld/internal/render"
	"tileworld/internal/session"
	"tileworld/internal/terrain"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the overrides keyed by name; later values win.
func (l kvList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}

type scenario struct {
	seed int64
	zoom float64
}

type scenarioResult struct {
	scenario
	stats    session.Stats
	peakRect int
	elapsed  time.Duration
	err      error
	frame    []byte
}

type sweepConfig struct {
	base     session.Config
	ticks    int
	workers  int
	snapshot bool
}

// runScenario pans one session right for cfg.ticks frames at a fixed 60 Hz
// step and reports the batching statistics of the last frame.
func runScenario(cfg sweepConfig, sc scenario) scenarioResult {
	res := scenarioResult{scenario: sc}
	start := time.Now()

	sessCfg := cfg.base
	sessCfg.Seed = sc.seed
	sessCfg.Scale = sc.zoom
	s, err := session.New(sessCfg)
	if err != nil {
		res.err = err
		return res
	}

	step := time.Second / 60
	frame := s.Tick(step, session.Input{})
	for i := 0; i < cfg.ticks; i++ {
		frame = s.Tick(step, session.Input{Right: true})
		res.peakRect = max(res.peakRect, len(frame.Rects))
	}
	res.stats = s.Stats()

	if cfg.snapshot {
		vp := frame.Camera.Viewport
		canvas := render.NewCanvas(vp.W, vp.H, color.RGBA{A: 255})
		render.Paint(canvas, frame.Rects)
		var buf bytes.Buffer
		if err := png.Encode(&buf, canvas.Image()); err != nil {
			res.err = err
			return res
		}
		res.frame = buf.Bytes()
	}
	res.elapsed = time.Since(start)
	return res
}

// sweep runs every scenario on a pool of workers and returns the results
// ordered by seed and zoom. Only the first scenario records a snapshot.
func sweep(cfg sweepConfig, scenarios []scenario) []scenarioResult {
	type job struct {
		idx int
		sc  scenario
	}
	jobs := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	workers := max(cfg.workers, 1)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				c := cfg
				c.snapshot = cfg.snapshot && j.idx == 0
				results <- runScenario(c, j.sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i, sc := range scenarios {
			jobs <- job{idx: i, sc: sc}
		}
		close(jobs)
	}()

	all := make([]scenarioResult, 0, len(scenarios))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].seed != all[j].seed {
			return all[i].seed < all[j].seed
		}
		return all[i].zoom < all[j].zoom
	})
	return all
}

func buildScenarios(seedBase int64, seeds int, zooms []float64) []scenario {
	out := make([]scenario, 0, seeds*len(zooms))
	for i := 0; i < seeds; i++ {
		for _, z := range zooms {
			out = append(out, scenario{seed: seedBase + int64(i), zoom: z})
		}
	}
	return out
}

func report(w io.Writer, all []scenarioResult) {
	var totals [len(terrain.TileTypes)]int
	var tiles, rects int
	failed := 0
	fmt.Fprintf(w, "%8s %5s %8s %8s %6s %7s %6s %s\n", "seed", "zoom", "columns", "tiles", "rects", "ratio", "peak", "elapsed")
	for _, r := range all {
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "%8d %5.1f error: %v\n", r.seed, r.zoom, r.err)
			continue
		}
		st := r.stats
		fmt.Fprintf(w, "%8d %5.1f %8d %8d %6d %7.2f %6d %s\n",
			r.seed, r.zoom, st.Columns, st.Tiles, st.Rects, st.Compression(), r.peakRect, r.elapsed.Round(time.Millisecond))
		tiles += st.Tiles
		rects += st.Rects
		for i, n := range st.TileCounts {
			totals[i] += n
		}
	}
	if failed == len(all) {
		return
	}
	ratio := 0.0
	if rects > 0 {
		ratio = float64(tiles) / float64(rects)
	}
	fmt.Fprintf(w, "\nTotal: %d tiles in %d rects (%.2f tiles/rect)\n", tiles, rects, ratio)
	for _, t := range terrain.TileTypes {
		share := 0.0
		if tiles > 0 {
			share = 100 * float64(totals[t]) / float64(tiles)
		}
		fmt.Fprintf(w, "  %-6s %9d %6.2f%%\n", t, totals[t], share)
	}
}

func writeSnapshot(path string, all []scenarioResult) error {
	for _, r := range all {
		if r.frame != nil {
			return os.WriteFile(path, r.frame, 0o644)
		}
	}
	return fmt.Errorf("no snapshot recorded: %w", core.ErrConfiguration)
}
