package vg

import "math"

// Rect is an axis-aligned rectangle given by its minimum (X0, Y0) and
// maximum (X1, Y1) corners.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from two corner points.
// The result is not normalized; use Abs if the corners may be swapped.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// RectFromOrigin creates a rectangle from an origin point and a size.
func RectFromOrigin(origin Point, size Size) Rect {
	return Rect{
		X0: origin.X,
		Y0: origin.Y,
		X1: origin.X + size.Width,
		Y1: origin.Y + size.Height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the minimum corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Abs returns the rectangle with corners swapped as needed so that
// X0 <= X1 and Y0 <= Y1.
func (r Rect) Abs() Rect {
	return Rect{
		X0: math.Min(r.X0, r.X1),
		Y0: math.Min(r.Y0, r.Y1),
		X1: math.Max(r.X0, r.X1),
		Y1: math.Max(r.Y0, r.Y1),
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// PathElements implements Shape. The tolerance is unused; a rectangle is
// already a sequence of line segments.
func (r Rect) PathElements(_ float64) []PathElement {
	return []PathElement{
		MoveTo{Point: Point{X: r.X0, Y: r.Y0}},
		LineTo{Point: Point{X: r.X1, Y: r.Y0}},
		LineTo{Point: Point{X: r.X1, Y: r.Y1}},
		LineTo{Point: Point{X: r.X0, Y: r.Y1}},
		Close{},
	}
}

// BoundingBox implements Shape.
func (r Rect) BoundingBox() Rect {
	return r.Abs()
}
