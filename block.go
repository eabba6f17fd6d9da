package tilekit

// Direction is the axis direction of a probe. The numeric values are stable;
// resolvers switch on them.
type Direction uint8

const (
	DirLeft  Direction = 0 // moving toward -X
	DirRight Direction = 1 // moving toward +X
	DirUp    Direction = 2 // moving toward -Y
	DirDown  Direction = 3 // moving toward +Y
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Horizontal reports whether d is DirLeft or DirRight.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// BlockResolver decides how one kind of tile responds to a collision
// candidate. tileRect is the pixel rectangle of the tile that was hit and
// found the pixel where the probe hit it.
//
// CheckAndPosition returns true when the candidate is a real collision. Only
// then may it reposition the entity.
type BlockResolver interface {
	CheckAndPosition(tiles TileGrid, e Entity, tileRect Rect, found Point, dir Direction, tileSize int) bool
}

// ResolverFunc adapts a function to the BlockResolver interface.
type ResolverFunc func(tiles TileGrid, e Entity, tileRect Rect, found Point, dir Direction, tileSize int) bool

// CheckAndPosition calls f.
func (f ResolverFunc) CheckAndPosition(tiles TileGrid, e Entity, tileRect Rect, found Point, dir Direction, tileSize int) bool {
	return f(tiles, e, tileRect, found, dir, tileSize)
}

// SolidBlock blocks from every direction.
type SolidBlock struct{}

// CheckAndPosition always confirms and moves the entity flush against the
// tile edge facing it.
func (SolidBlock) CheckAndPosition(_ TileGrid, e Entity, tileRect Rect, _ Point, dir Direction, _ int) bool {
	PlaceFlush(e, tileRect, dir)
	return true
}

// PlaceFlush moves e so that the leading edge of its collision box touches
// the near edge of tileRect for a probe travelling in dir.
func PlaceFlush(e Entity, tileRect Rect, dir Direction) {
	w, h := e.CollisionSize()
	ox, oy := e.CollisionOffset()
	switch dir {
	case DirLeft:
		e.SetPositionX(tileRect.Right() - ox)
	case DirRight:
		e.SetPositionX(tileRect.X - w - ox)
	case DirUp:
		e.SetPositionY(tileRect.Bottom() - oy)
	case DirDown:
		e.SetPositionY(tileRect.Y - h - oy)
	}
}

// DefaultPlatformTolerance is how far below a platform's top, in pixels, an
// entity's feet may have been last tick and still land on it.
const DefaultPlatformTolerance = 4

// PlatformBlock is a one-way platform: it can be landed on from above and
// passed through from every other direction.
type PlatformBlock struct {
	Tolerance float64
}

// CheckAndPosition confirms only downward probes whose box bottom was at or
// above the platform top (plus Tolerance) before this tick's movement.
func (p PlatformBlock) CheckAndPosition(_ TileGrid, e Entity, tileRect Rect, _ Point, dir Direction, _ int) bool {
	if dir != DirDown {
		return false
	}
	_, dy := e.Delta()
	prevBottom := CollisionBox(e).Bottom() - dy
	if prevBottom > tileRect.Y+p.Tolerance {
		return false
	}
	PlaceFlush(e, tileRect, DirDown)
	return true
}

// SlopeBlock is a 45° ramp filling the lower half-triangle of its tile.
// Rising ramps climb toward +X (surface runs from bottom-left to top-right);
// otherwise the surface runs from top-left to bottom-right.
type SlopeBlock struct {
	Rising bool
}

// SurfaceY returns the ramp surface height under pixel column x, clamped to
// the tile.
func (s SlopeBlock) SurfaceY(tileRect Rect, x float64) float64 {
	rel := (x - tileRect.X) / tileRect.Width
	if rel < 0 {
		rel = 0
	} else if rel > 1 {
		rel = 1
	}
	if s.Rising {
		return tileRect.Y + tileRect.Height*(1-rel)
	}
	return tileRect.Y + tileRect.Height*rel
}

// CheckAndPosition walks a horizontally moving entity up the ramp once its
// centre is over the tile, snaps a descending entity onto the surface under
// its centre, and treats the ramp's underside as solid. The tall side of the
// ramp blocks like a wall when the entity's feet are in its lower half.
func (s SlopeBlock) CheckAndPosition(_ TileGrid, e Entity, tileRect Rect, _ Point, dir Direction, _ int) bool {
	if dir.Horizontal() {
		return s.checkHorizontal(e, tileRect, dir)
	}
	if dir == DirUp {
		PlaceFlush(e, tileRect, DirUp)
		return true
	}
	return s.snapOnto(e, tileRect)
}

func (s SlopeBlock) checkHorizontal(e Entity, tileRect Rect, dir Direction) bool {
	box := CollisionBox(e)
	centre := box.X + box.Width/2
	if centre >= tileRect.X && centre <= tileRect.Right() {
		_, dy := e.Delta()
		// feet below the ramp's tile row: passing underneath
		if box.Bottom()-dy > tileRect.Bottom() {
			return false
		}
		if box.Bottom() <= s.SurfaceY(tileRect, centre) {
			return false
		}
		return s.snapOnto(e, tileRect)
	}

	lowSide := (s.Rising && dir == DirRight) || (!s.Rising && dir == DirLeft)
	if lowSide {
		return false
	}
	_, dy := e.Delta()
	if box.Bottom()-dy <= tileRect.Y+tileRect.Height/2 {
		return false
	}
	PlaceFlush(e, tileRect, dir)
	return true
}

// snapOnto lifts the entity so its box bottom rests on the surface under its
// centre. It declines when the box is already above the surface.
func (s SlopeBlock) snapOnto(e Entity, tileRect Rect) bool {
	box := CollisionBox(e)
	surface := s.SurfaceY(tileRect, box.X+box.Width/2)
	if box.Bottom() < surface {
		return false
	}
	_, oy := e.CollisionOffset()
	e.SetPositionY(surface - box.Height - oy)
	return true
}
