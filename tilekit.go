package tilekit

import "math"

// Point is an integer pixel or grid coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// pixelSpan returns the first and last pixel covered by the interval
// [lo, hi). An interval ending exactly on a pixel boundary does not cover
// the pixel that starts there.
func pixelSpan(lo, hi float64) (first, last int) {
	first = int(math.Floor(lo))
	last = int(math.Ceil(hi)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// floorDiv divides rounding toward negative infinity so that negative pixel
// coordinates map to negative grid indices.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
