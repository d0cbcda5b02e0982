package vg

import "math"

// Shape is anything that can be described as a sequence of path segments.
// Backends replay the segments into their native path representation.
type Shape interface {
	// PathElements returns the shape as move/line/quadratic/cubic/close
	// segments. tolerance is the maximum deviation allowed when a shape
	// has to approximate curved geometry; shapes that are already exact
	// in segment form ignore it.
	PathElements(tolerance float64) []PathElement

	// BoundingBox returns the axis-aligned bounding box of the shape.
	// Brushes are resolved against it before a draw call.
	BoundingBox() Rect
}

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Arc adds a circular arc to the path.
// The arc is drawn from angle1 to angle2 (in radians) around center (cx, cy).
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	// Split into cubic Bezier curves, at most 90 degrees per segment.
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		a2 := a1 + angleStep
		p.arcSegment(cx, cy, r, a1, a2)
	}
}

// arcSegment adds a single arc segment (<=90 degrees).
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if len(p.elements) == 0 {
		p.MoveTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// PathElements implements Shape. The stored segments are returned as-is;
// curves are passed to the backend unflattened.
func (p *Path) PathElements(_ float64) []PathElement {
	return p.elements
}

// BoundingBox implements Shape. Control points are included, so the box
// is conservative for curved segments.
func (p *Path) BoundingBox() Rect {
	first := true
	var box Rect
	grow := func(pt Point) {
		if first {
			box = Rect{X0: pt.X, Y0: pt.Y, X1: pt.X, Y1: pt.Y}
			first = false
			return
		}
		box.X0 = math.Min(box.X0, pt.X)
		box.Y0 = math.Min(box.Y0, pt.Y)
		box.X1 = math.Max(box.X1, pt.X)
		box.Y1 = math.Max(box.Y1, pt.Y)
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}
	return box
}

// Line is a straight line segment between two points.
type Line struct {
	Start, End Point
}

// NewLine creates a line from (x0, y0) to (x1, y1).
func NewLine(x0, y0, x1, y1 float64) Line {
	return Line{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// PathElements implements Shape.
func (l Line) PathElements(_ float64) []PathElement {
	return []PathElement{
		MoveTo{Point: l.Start},
		LineTo{Point: l.End},
	}
}

// BoundingBox implements Shape.
func (l Line) BoundingBox() Rect {
	return Rect{
		X0: math.Min(l.Start.X, l.End.X),
		Y0: math.Min(l.Start.Y, l.End.Y),
		X1: math.Max(l.Start.X, l.End.X),
		Y1: math.Max(l.Start.Y, l.End.Y),
	}
}

// Circle is a circle given by center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle creates a circle centered at (cx, cy).
func NewCircle(cx, cy, r float64) Circle {
	return Circle{Center: Pt(cx, cy), Radius: r}
}

// PathElements implements Shape. The circle is emitted as four cubic
// Bezier segments; the approximation is well within any tolerance a
// backend passes.
func (c Circle) PathElements(_ float64) []PathElement {
	// Magic constant for circle approximation with cubic Beziers:
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	cx, cy, r := c.Center.X, c.Center.Y, c.Radius
	offset := r * k

	return []PathElement{
		MoveTo{Point: Pt(cx+r, cy)},
		CubicTo{Control1: Pt(cx+r, cy+offset), Control2: Pt(cx+offset, cy+r), Point: Pt(cx, cy+r)},
		CubicTo{Control1: Pt(cx-offset, cy+r), Control2: Pt(cx-r, cy+offset), Point: Pt(cx-r, cy)},
		CubicTo{Control1: Pt(cx-r, cy-offset), Control2: Pt(cx-offset, cy-r), Point: Pt(cx, cy-r)},
		CubicTo{Control1: Pt(cx+offset, cy-r), Control2: Pt(cx+r, cy-offset), Point: Pt(cx+r, cy)},
		Close{},
	}
}

// BoundingBox implements Shape.
func (c Circle) BoundingBox() Rect {
	return Rect{
		X0: c.Center.X - c.Radius,
		Y0: c.Center.Y - c.Radius,
		X1: c.Center.X + c.Radius,
		Y1: c.Center.Y + c.Radius,
	}
}
