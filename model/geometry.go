package model

// Point represents a 2D point on a page.
type Point struct {
	X, Y float64
}

// Rect represents a bounding rectangle in page coordinates. The origin is the
// top-left corner of the page with Y increasing downward (reading order), so
// Y0 is the top edge and Y1 the bottom edge.
type Rect struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// NewRect creates a rectangle from edge coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Area returns width times height.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// AspectRatio returns width divided by height, or 0 for a zero-height rect.
func (r Rect) AspectRatio() float64 {
	h := r.Height()
	if h <= 0 {
		return 0
	}
	return r.Width() / h
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{
		X: (r.X0 + r.X1) / 2,
		Y: (r.Y0 + r.Y1) / 2,
	}
}

// Union returns the smallest rectangle enclosing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: min2(r.X0, other.X0),
		Y0: min2(r.Y0, other.Y0),
		X1: max2(r.X1, other.X1),
		Y1: max2(r.Y1, other.Y1),
	}
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 ||
		r.X0 > other.X1 ||
		r.Y1 < other.Y0 ||
		r.Y0 > other.Y1)
}

// Contains reports whether a point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 &&
		p.Y >= r.Y0 && p.Y <= r.Y1
}

// HorizontalOverlap returns the horizontal overlap with another rectangle as a
// fraction of the narrower rectangle's width. Returns a value in [0, 1].
func (r Rect) HorizontalOverlap(other Rect) float64 {
	start := max2(r.X0, other.X0)
	end := min2(r.X1, other.X1)
	if end <= start {
		return 0
	}

	minWidth := min2(r.Width(), other.Width())
	if minWidth <= 0 {
		return 0
	}

	return (end - start) / minWidth
}

// IsEmpty returns true if the rectangle has no positive extent.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
