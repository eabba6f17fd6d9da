package tilekit

// GID flag bits (same convention as Tiled TMX format).
const (
	tileFlipH    uint32 = 1 << 31 // horizontal flip
	tileFlipV    uint32 = 1 << 30 // vertical flip
	tileFlipD    uint32 = 1 << 29 // diagonal flip (90° rotation)
	tileFlagMask uint32 = tileFlipH | tileFlipV | tileFlipD
)

// EmptyTile is the id of a cell that never collides.
const EmptyTile = -1

// TileCell is one cell of a collision layer. An ID below zero means empty;
// zero and above selects the BlockResolver registered for that id.
type TileCell struct {
	ID int
}

// Empty reports whether the cell is non-colliding.
func (c TileCell) Empty() bool {
	return c.ID < 0
}

// TileGrid is the read-only view of a collision layer that the collision
// manager scans. Coordinates are in tiles, not pixels.
type TileGrid interface {
	// Size returns the grid dimensions in tiles.
	Size() (w, h int)
	// TileAt returns the cell at column x, row y. Implementations return an
	// empty cell for coordinates outside the grid.
	TileAt(x, y int) TileCell
}

// CollisionLayer is a TileGrid backed by a row-major slice of cells.
type CollisionLayer struct {
	cells  []TileCell
	width  int
	height int
}

// NewCollisionLayer creates a w×h layer with every cell empty.
func NewCollisionLayer(w, h int) *CollisionLayer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	l := &CollisionLayer{
		cells:  make([]TileCell, w*h),
		width:  w,
		height: h,
	}
	for i := range l.cells {
		l.cells[i].ID = EmptyTile
	}
	return l
}

// NewCollisionLayerFromGIDs builds a layer from row-major Tiled GIDs. GID 0
// is empty; any other GID has its flip flags masked off and becomes tile id
// gid-1, so the first tile of the first tileset is id 0.
func NewCollisionLayerFromGIDs(w, h int, data []uint32) *CollisionLayer {
	l := NewCollisionLayer(w, h)
	for i, gid := range data {
		if i >= len(l.cells) {
			break
		}
		base := gid &^ tileFlagMask
		if base == 0 {
			continue
		}
		l.cells[i].ID = int(base) - 1
	}
	return l
}

// Size returns the layer dimensions in tiles.
func (l *CollisionLayer) Size() (w, h int) {
	return l.width, l.height
}

// InBounds reports whether (x, y) addresses a cell of the layer.
func (l *CollisionLayer) InBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// TileAt returns the cell at (x, y), or an empty cell when out of bounds.
func (l *CollisionLayer) TileAt(x, y int) TileCell {
	if !l.InBounds(x, y) {
		return TileCell{ID: EmptyTile}
	}
	return l.cells[y*l.width+x]
}

// SetTile updates a single cell. Out-of-bounds coordinates are ignored.
func (l *CollisionLayer) SetTile(x, y, id int) {
	if !l.InBounds(x, y) {
		return
	}
	if id < 0 {
		id = EmptyTile
	}
	l.cells[y*l.width+x].ID = id
}

// Fill sets every cell in the rectangle of tiles starting at (x, y) with
// size w×h. Cells outside the layer are skipped.
func (l *CollisionLayer) Fill(x, y, w, h, id int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			l.SetTile(col, row, id)
		}
	}
}

// Tiles returns a copy of the layer indexed [x][y].
func (l *CollisionLayer) Tiles() [][]TileCell {
	out := make([][]TileCell, l.width)
	for x := range out {
		out[x] = make([]TileCell, l.height)
		for y := 0; y < l.height; y++ {
			out[x][y] = l.cells[y*l.width+x]
		}
	}
	return out
}
