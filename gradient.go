package vg

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// GradientSpec describes a gradient in backend-independent terms.
// This is a sealed interface - only LinearGradient and RadialGradient
// implement it. Backends translate a spec into their native gradient
// representation via RenderContext.Gradient.
type GradientSpec interface {
	// gradientMarker is an unexported method that seals this interface.
	gradientMarker()

	// Stops returns the ordered color stops of the gradient.
	Stops() []ColorStop
}

// LinearGradient is a linear color transition between two points.
// Stops are interpreted in order; offsets are in [0, 1] along the line
// from Start to End.
type LinearGradient struct {
	Start     Point
	End       Point
	ColorStop []ColorStop
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// AddStop appends a color stop and returns the gradient for chaining.
func (g *LinearGradient) AddStop(offset float64, c RGBA) *LinearGradient {
	g.ColorStop = append(g.ColorStop, ColorStop{Offset: offset, Color: c})
	return g
}

// gradientMarker implements the sealed GradientSpec interface.
func (*LinearGradient) gradientMarker() {}

// Stops implements GradientSpec.
func (g *LinearGradient) Stops() []ColorStop {
	return g.ColorStop
}

// RadialGradient is a radial color transition within a circle of the
// given radius around Center. OriginOffset displaces the gradient origin
// from the center, producing a spotlight effect; leave it zero for a
// symmetric gradient.
type RadialGradient struct {
	Center       Point
	OriginOffset Point
	Radius       float64
	ColorStop    []ColorStop
}

// NewRadialGradient creates a radial gradient centered at (cx, cy).
func NewRadialGradient(cx, cy, radius float64) *RadialGradient {
	return &RadialGradient{Center: Pt(cx, cy), Radius: radius}
}

// WithOriginOffset sets the origin offset and returns the gradient.
func (g *RadialGradient) WithOriginOffset(dx, dy float64) *RadialGradient {
	g.OriginOffset = Pt(dx, dy)
	return g
}

// AddStop appends a color stop and returns the gradient for chaining.
func (g *RadialGradient) AddStop(offset float64, c RGBA) *RadialGradient {
	g.ColorStop = append(g.ColorStop, ColorStop{Offset: offset, Color: c})
	return g
}

// gradientMarker implements the sealed GradientSpec interface.
func (*RadialGradient) gradientMarker() {}

// Stops implements GradientSpec.
func (g *RadialGradient) Stops() []ColorStop {
	return g.ColorStop
}
