package tilekit

import (
	"fmt"

	"go.uber.org/zap"
)

// CollisionConfig configures a TileCollisionManager.
type CollisionConfig struct {
	// TileSize is the width and height of one grid cell in pixels.
	TileSize int
}

// DefaultCollisionConfig returns the configuration used for zero-valued
// fields: 32 pixel tiles.
func DefaultCollisionConfig() CollisionConfig {
	return CollisionConfig{TileSize: 32}
}

// ProbeResult is the first non-empty cell found along a probe line.
type ProbeResult struct {
	Found  bool
	TileID int

	// X, Y is the pixel where the tile was hit.
	X, Y int

	// GridX, GridY is the cell containing that pixel.
	GridX, GridY int
}

// TileCollisionManager detects and resolves collisions between moving
// entities and a tile grid. Each tile id is resolved by the BlockResolver
// registered for it.
//
// A manager holds no per-call state; the same manager may serve several
// grids and entities.
type TileCollisionManager struct {
	cfg       CollisionConfig
	resolvers map[int]BlockResolver
}

// NewTileCollisionManager creates a manager with no resolvers registered.
func NewTileCollisionManager(cfg CollisionConfig) *TileCollisionManager {
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultCollisionConfig().TileSize
	}
	return &TileCollisionManager{
		cfg:       cfg,
		resolvers: make(map[int]BlockResolver),
	}
}

// TileSize returns the configured tile size in pixels.
func (m *TileCollisionManager) TileSize() int {
	return m.cfg.TileSize
}

// Register sets the resolver for tile id. A nil resolver removes the
// registration. Negative ids are empty cells and are ignored.
func (m *TileCollisionManager) Register(id int, r BlockResolver) {
	if id < 0 {
		return
	}
	if r == nil {
		delete(m.resolvers, id)
		return
	}
	m.resolvers[id] = r
}

// RegisterRange sets r for every id in [from, to].
func (m *TileCollisionManager) RegisterRange(from, to int, r BlockResolver) {
	for id := from; id <= to; id++ {
		m.Register(id, r)
	}
}

// Resolver returns the resolver registered for id.
func (m *TileCollisionManager) Resolver(id int) (BlockResolver, bool) {
	r, ok := m.resolvers[id]
	return r, ok
}

// Probe rasterizes the pixel line (x0, y0)-(x1, y1) and returns the first
// pixel that falls in a non-empty cell of grid. Pixels outside the grid are
// non-colliding.
func (m *TileCollisionManager) Probe(grid TileGrid, x0, y0, x1, y1 int) ProbeResult {
	ts := m.cfg.TileSize
	gw, gh := grid.Size()

	line := NewLine(x0, y0, x1, y1)
	for line.Next() {
		px, py := line.Pos()
		gx, gy := floorDiv(px, ts), floorDiv(py, ts)
		if gx < 0 || gy < 0 || gx >= gw || gy >= gh {
			continue
		}
		cell := grid.TileAt(gx, gy)
		if cell.Empty() {
			continue
		}
		return ProbeResult{
			Found:  true,
			TileID: cell.ID,
			X:      px,
			Y:      py,
			GridX:  gx,
			GridY:  gy,
		}
	}
	return ProbeResult{TileID: EmptyTile}
}

// probeEdge probes the one-pixel-thin leading edge of box for movement in
// dir, spanning the full height (horizontal) or width (vertical) of the box.
func (m *TileCollisionManager) probeEdge(grid TileGrid, box Rect, dir Direction) ProbeResult {
	left, right := pixelSpan(box.X, box.Right())
	top, bottom := pixelSpan(box.Y, box.Bottom())
	switch dir {
	case DirLeft:
		return m.Probe(grid, left, top, left, bottom)
	case DirRight:
		return m.Probe(grid, right, top, right, bottom)
	case DirUp:
		return m.Probe(grid, left, top, right, top)
	default:
		return m.Probe(grid, left, bottom, right, bottom)
	}
}

// resolveAxis probes one axis and hands a hit to its resolver.
func (m *TileCollisionManager) resolveAxis(grid TileGrid, e Entity, box Rect, dir Direction) (bool, ProbeResult, error) {
	res := m.probeEdge(grid, box, dir)
	if !res.Found {
		return false, res, nil
	}

	r, ok := m.resolvers[res.TileID]
	if !ok {
		logger.Warn("no resolver for tile",
			zap.Int("tile", res.TileID),
			zap.Int("gridX", res.GridX),
			zap.Int("gridY", res.GridY))
		return false, res, fmt.Errorf("tilekit: tile %d at (%d, %d): %w",
			res.TileID, res.GridX, res.GridY, ErrUnsupportedTileID)
	}

	ts := m.cfg.TileSize
	tileRect := Rect{
		X:      float64(res.GridX * ts),
		Y:      float64(res.GridY * ts),
		Width:  float64(ts),
		Height: float64(ts),
	}
	confirmed := r.CheckAndPosition(grid, e, tileRect, Point{X: res.X, Y: res.Y}, dir, ts)

	if globalDebug {
		logger.Debug("probe hit",
			zap.Stringer("dir", dir),
			zap.Int("tile", res.TileID),
			zap.Int("x", res.X),
			zap.Int("y", res.Y),
			zap.Bool("confirmed", confirmed))
	}
	return confirmed, res, nil
}

// CheckCollision probes e against grid along each axis it moved on this
// tick and lets the matching resolvers reposition it. The horizontal axis
// is resolved first from the box as it was before vertical movement; the
// vertical probe then uses the resolved X.
//
// When any axis confirms a collision and invokeCallback is set,
// e.OnMapCollision is called once with the last confirmed tile. The
// returned bool reports whether any axis confirmed.
//
// A probe that hits a tile id with no resolver stops the check and returns
// an error wrapping ErrUnsupportedTileID. Repositioning already done by an
// earlier axis is kept and the callback is not invoked.
func (m *TileCollisionManager) CheckCollision(grid TileGrid, e Entity, invokeCallback bool) (bool, error) {
	if !e.CanCollide() {
		return false, nil
	}

	dx, dy := e.Delta()
	collided := false
	var last ProbeResult

	if dx != 0 {
		box := CollisionBox(e)
		box.Y -= dy
		dir := DirRight
		if dx < 0 {
			dir = DirLeft
		}
		ok, res, err := m.resolveAxis(grid, e, box, dir)
		if err != nil {
			return collided, err
		}
		if ok {
			collided = true
			last = res
		}
	}

	if dy != 0 {
		box := CollisionBox(e)
		dir := DirDown
		if dy < 0 {
			dir = DirUp
		}
		ok, res, err := m.resolveAxis(grid, e, box, dir)
		if err != nil {
			return collided, err
		}
		if ok {
			collided = true
			last = res
		}
	}

	if collided && invokeCallback {
		e.OnMapCollision(last.TileID, last.GridX, last.GridY)
	}
	return collided, nil
}
