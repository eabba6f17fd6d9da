// Command tileprobe drops a body into a Tiled level and reports every map
// collision it makes over a number of fixed ticks.
//
//	tileprobe -map levels/level1.tmx -x 40 -y 0 -vx 2 -gravity 0.5 -ticks 120
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/phanxgames/tilekit"
	"github.com/phanxgames/tilekit/tiled"
)

type probeConfig struct {
	Ticks         int
	X, Y          float64
	Width, Height float64
	VX, VY        float64
	Gravity       float64
	MaxFall       float64
}

func main() {
	mapPath := flag.String("map", "", "TMX level to load (required)")
	layer := flag.String("layer", tiled.DefaultLayerName, "Collision tile layer name")
	logFile := flag.String("log", "", "Also write JSON logs to this file (rotated)")
	debug := flag.Bool("debug", false, "Log every probe")
	cfg := probeConfig{}
	flag.IntVar(&cfg.Ticks, "ticks", 120, "Number of ticks to simulate")
	flag.Float64Var(&cfg.X, "x", 0, "Body start X in pixels")
	flag.Float64Var(&cfg.Y, "y", 0, "Body start Y in pixels")
	flag.Float64Var(&cfg.Width, "w", 16, "Body width")
	flag.Float64Var(&cfg.Height, "h", 16, "Body height")
	flag.Float64Var(&cfg.VX, "vx", 0, "Horizontal speed per tick")
	flag.Float64Var(&cfg.VY, "vy", 0, "Initial vertical speed per tick")
	flag.Float64Var(&cfg.Gravity, "gravity", 0.5, "Vertical acceleration per tick")
	flag.Float64Var(&cfg.MaxFall, "maxfall", 8, "Terminal fall speed per tick")
	flag.Parse()

	if *mapPath == "" {
		fmt.Fprintln(os.Stderr, "tileprobe: -map is required")
		flag.Usage()
		os.Exit(2)
	}

	log := newLogger(*logFile, *debug)
	defer func() { _ = log.Sync() }()
	tilekit.SetLogger(log)
	tilekit.SetDebug(*debug)

	dir, name := filepath.Split(*mapPath)
	if dir == "" {
		dir = "."
	}
	level, err := tiled.LoadLevel(os.DirFS(dir), name, *layer)
	if err != nil {
		log.Fatal("load level", zap.String("map", *mapPath), zap.Error(err))
	}
	manager, err := level.NewManager()
	if err != nil {
		log.Fatal("configure collisions", zap.Error(err))
	}

	w, h := level.Layer.Size()
	log.Info("level loaded",
		zap.String("map", *mapPath),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("tileSize", manager.TileSize()),
		zap.Int("blockKinds", len(level.Blocks)))

	hits, err := run(level.Layer, manager, cfg, log)
	if err != nil {
		log.Fatal("simulation stopped", zap.Error(err))
	}
	log.Info("done", zap.Int("ticks", cfg.Ticks), zap.Int("collisions", hits))
}

// run simulates cfg.Ticks ticks and returns the number of ticks that
// collided.
func run(grid tilekit.TileGrid, m *tilekit.TileCollisionManager, cfg probeConfig, log *zap.Logger) (int, error) {
	body := tilekit.NewBody(cfg.X, cfg.Y, cfg.Width, cfg.Height)
	vy := cfg.VY
	tick := 0
	body.OnCollide = func(id, gx, gy int) {
		log.Info("collision",
			zap.Int("tick", tick),
			zap.Int("tile", id),
			zap.Int("gridX", gx),
			zap.Int("gridY", gy),
			zap.Float64("x", body.X),
			zap.Float64("y", body.Y))
	}

	hits := 0
	for tick = 0; tick < cfg.Ticks; tick++ {
		vy = min(vy+cfg.Gravity, cfg.MaxFall)
		body.Move(cfg.VX, vy)

		hit, err := m.CheckCollision(grid, body, true)
		if err != nil {
			return hits, fmt.Errorf("tick %d: %w", tick, err)
		}
		if hit {
			hits++
			// Landing or bumping a ceiling stops vertical motion.
			_, dy := body.Delta()
			if dy != 0 && landedOrBumped(grid, m, body, dy) {
				vy = 0
			}
		}
		body.ResetDelta()
	}
	return hits, nil
}

// landedOrBumped reports whether the cell just past the body's leading
// vertical edge is occupied.
func landedOrBumped(grid tilekit.TileGrid, m *tilekit.TileCollisionManager, body *tilekit.Body, dy float64) bool {
	box := tilekit.CollisionBox(body)
	y := box.Bottom()
	if dy < 0 {
		y = box.Y - 1
	}
	res := m.Probe(grid, int(box.X), int(y), int(box.Right())-1, int(y))
	return res.Found
}
