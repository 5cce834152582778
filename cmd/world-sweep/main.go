package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"tileworld/internal/core"
	"tileworld/internal/session"
	"tileworld/internal/terrain"
)

func main() {
	seeds := flag.Int("seeds", 8, "number of consecutive seeds to sweep")
	seedBase := flag.Int64("seed", 1, "first seed")
	zoomList := flag.String("zooms", "0.4,1,2.5", "comma separated zoom levels")
	ticks := flag.Int("ticks", 240, "frames to pan right per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	rows := flag.Int("rows", 120, "highest row index")
	columns := flag.Int("columns", 4000, "maximum world width")
	width := flag.Int("width", 960, "viewport width in pixels")
	height := flag.Int("height", 640, "viewport height in pixels")
	pngPath := flag.String("png", "", "write the last frame of the first scenario as PNG")
	verbose := flag.Bool("v", false, "log world growth")
	var overrides kvList
	flag.Var(&overrides, "set", "terrain override in key=value form (repeatable)")
	flag.Parse()

	zooms, err := parseZooms(*zoomList)
	if err != nil {
		log.Fatalf("world-sweep: %v", err)
	}

	base := session.DefaultConfig()
	base.Terrain = terrain.FromMap(overrides.Map())
	base.Rows = *rows
	base.Columns = *columns
	base.Viewport = core.Size{W: *width, H: *height}
	base.Verbose = *verbose
	if err := base.Validate(); err != nil {
		log.Fatalf("world-sweep: %v", err)
	}

	cfg := sweepConfig{base: base, ticks: *ticks, workers: *workers, snapshot: *pngPath != ""}
	scenarios := buildScenarios(*seedBase, *seeds, zooms)
	fmt.Printf("Sweeping %d scenarios (%d workers, %d ticks, noise scale %.3f)\n",
		len(scenarios), *workers, *ticks, base.Terrain.Scale)

	all := sweep(cfg, scenarios)
	report(os.Stdout, all)

	if *pngPath != "" {
		if err := writeSnapshot(*pngPath, all); err != nil {
			log.Fatalf("world-sweep: %v", err)
		}
		fmt.Printf("\nSnapshot written to %s\n", *pngPath)
	}
}

func parseZooms(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		z, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("zoom %q: %v: %w", part, err, core.ErrConfiguration)
		}
		out = append(out, z)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no zoom levels: %w", core.ErrConfiguration)
	}
	return out, nil
}
