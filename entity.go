package tilekit

// Entity is anything the collision manager can probe and reposition.
// Positions are in pixels. The collision box sits at Position()+CollisionOffset()
// with size CollisionSize().
type Entity interface {
	Position() (x, y float64)
	SetPositionX(x float64)
	SetPositionY(y float64)

	// Delta returns the movement applied since the last tick. A zero
	// component skips the probe on that axis.
	Delta() (dx, dy float64)

	CollisionSize() (w, h float64)
	CollisionOffset() (ox, oy float64)

	// CanCollide reports whether the entity takes part in map collision.
	CanCollide() bool

	// OnMapCollision is called at most once per CheckCollision with the
	// last confirmed tile.
	OnMapCollision(tileID, gridX, gridY int)
}

// CollisionBox returns the entity's collision rectangle in pixels.
func CollisionBox(e Entity) Rect {
	x, y := e.Position()
	ox, oy := e.CollisionOffset()
	w, h := e.CollisionSize()
	return Rect{X: x + ox, Y: y + oy, Width: w, Height: h}
}

// Body is a plain Entity implementation for games that do not need their
// own entity type.
type Body struct {
	X, Y   float64
	DX, DY float64 // movement since the last ResetDelta

	Width, Height    float64 // collision box size
	OffsetX, OffsetY float64 // collision box offset from X, Y

	// Disabled removes the body from map collision.
	Disabled bool

	// OnCollide, if set, receives OnMapCollision calls.
	OnCollide func(tileID, gridX, gridY int)
}

// NewBody creates a body at (x, y) with a w×h collision box and no offset.
func NewBody(x, y, w, h float64) *Body {
	return &Body{X: x, Y: y, Width: w, Height: h}
}

// Move translates the body and accumulates the movement delta.
func (b *Body) Move(dx, dy float64) {
	b.X += dx
	b.Y += dy
	b.DX += dx
	b.DY += dy
}

// ResetDelta clears the accumulated movement. Call once per tick after
// collision has been resolved.
func (b *Body) ResetDelta() {
	b.DX, b.DY = 0, 0
}

// Position returns the body's top-left position.
func (b *Body) Position() (x, y float64) { return b.X, b.Y }

// SetPositionX sets X without touching the delta.
func (b *Body) SetPositionX(x float64) { b.X = x }

// SetPositionY sets Y without touching the delta.
func (b *Body) SetPositionY(y float64) { b.Y = y }

// Delta returns the movement accumulated since the last ResetDelta.
func (b *Body) Delta() (dx, dy float64) { return b.DX, b.DY }

// CollisionSize returns the collision box size.
func (b *Body) CollisionSize() (w, h float64) { return b.Width, b.Height }

// CollisionOffset returns the collision box offset from the position.
func (b *Body) CollisionOffset() (ox, oy float64) { return b.OffsetX, b.OffsetY }

// CanCollide reports whether the body is enabled.
func (b *Body) CanCollide() bool { return !b.Disabled }

// OnMapCollision forwards a confirmed collision to OnCollide, if set.
func (b *Body) OnMapCollision(tileID, gridX, gridY int) {
	if b.OnCollide != nil {
		b.OnCollide(tileID, gridX, gridY)
	}
}
