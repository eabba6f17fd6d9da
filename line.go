package tilekit

// Line is a zero-allocation iterator over the integer cells of a line
// segment, produced with Bresenham's algorithm. Both endpoints are included
// and successive cells are 8-connected.
//
// A Line is a value type. Each probe builds its own, so no iteration state
// is shared between callers.
//
//	l := NewLine(0, 0, 5, 2)
//	for l.Next() {
//		x, y := l.Pos()
//		...
//	}
type Line struct {
	x0, y0 int
	x1, y1 int

	dx, dy int // dx >= 0, dy <= 0
	sx, sy int

	x, y int
	err  int

	started bool
	done    bool
}

// NewLine creates an iterator from (x0, y0) to (x1, y1).
func NewLine(x0, y0, x1, y1 int) Line {
	l := Line{x0: x0, y0: y0, x1: x1, y1: y1}

	l.dx = x1 - x0
	l.sx = 1
	if l.dx < 0 {
		l.dx = -l.dx
		l.sx = -1
	}
	l.dy = y1 - y0
	l.sy = 1
	if l.dy < 0 {
		l.sy = -1
	} else {
		l.dy = -l.dy
	}

	l.Reset()
	return l
}

// Reset rewinds the iterator to the first endpoint.
func (l *Line) Reset() {
	l.x, l.y = l.x0, l.y0
	l.err = l.dx + l.dy
	l.started = false
	l.done = false
}

// Next advances to the next cell. It returns false once the far endpoint has
// been produced.
func (l *Line) Next() bool {
	if l.done {
		return false
	}
	if !l.started {
		l.started = true
		return true
	}
	if l.x == l.x1 && l.y == l.y1 {
		l.done = true
		return false
	}

	e2 := 2 * l.err
	if e2 >= l.dy {
		l.err += l.dy
		l.x += l.sx
	}
	if e2 <= l.dx {
		l.err += l.dx
		l.y += l.sy
	}
	return true
}

// Pos returns the current cell.
func (l *Line) Pos() (x, y int) {
	return l.x, l.y
}

// Len returns the number of cells the full line produces.
func (l *Line) Len() int {
	return max(l.dx, -l.dy) + 1
}
