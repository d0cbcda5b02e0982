package htmlcanvas

// Paint is a resolved native fill or stroke style: either a CSS color
// string or a gradient handle created by the same surface. Exactly one
// of the two fields is set.
type Paint struct {
	Color    string
	Gradient GradientHandle
}

// SolidPaint returns a Paint for a CSS color string.
func SolidPaint(css string) Paint {
	return Paint{Color: css}
}

// GradientPaint returns a Paint for a surface gradient handle.
func GradientPaint(h GradientHandle) Paint {
	return Paint{Gradient: h}
}

// GradientHandle is a native gradient object owned by a Surface. Stops
// are added after creation; the handle is then used as a Paint.
type GradientHandle interface {
	// AddColorStop adds a stop at offset in [0, 1] with a CSS color.
	AddColorStop(offset float64, css string) error
}

// Drawable is an opaque off-screen image owned by a Surface. Its
// concrete type belongs to the surface implementation; the render
// context only passes it back to DrawDrawable.
type Drawable interface{}

// Surface is the native 2D canvas a RenderContext draws on. The
// js/wasm implementation forwards each method to a
// CanvasRenderingContext2D; tests implement it with an in-memory
// recorder.
//
// Methods returning error surface native exceptions. Methods without an
// error result cannot fail on the real canvas.
type Surface interface {
	// Path construction and painting.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cx, cy, x, y float64)
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	Fill(rule string)
	Clip(rule string)
	Stroke()
	FillRect(x, y, width, height float64)

	// Fill and stroke style.
	SetFillPaint(p Paint)
	SetStrokePaint(p Paint)
	CreateLinearGradient(x0, y0, x1, y1 float64) (GradientHandle, error)
	CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (GradientHandle, error)

	// Stroke state.
	SetLineWidth(width float64)
	SetLineCap(cap string)
	SetLineJoin(join string)
	SetMiterLimit(limit float64)
	SetLineDash(pattern []float64) error
	SetLineDashOffset(offset float64)

	// State stack and transform.
	Save()
	Restore()
	Transform(a, b, c, d, e, f float64)
	GetTransform() ([6]float64, error)

	// Size reports the CSS pixel size of the backing canvas element.
	// ok is false when the surface has no measurable element, for
	// example a canvas detached from the document.
	Size() (width, height float64, ok bool)

	// Shadow state, used for blurred fills.
	SetShadowBlur(radius float64)
	SetShadowColor(css string)

	// Image smoothing toggles bilinear filtering for image draws.
	SetImageSmoothing(enabled bool)

	// Text.
	SetFont(font string)
	FillText(text string, x, y float64) error
	MeasureText(text string) float64

	// Off-screen images. MakeDrawable uploads straight-alpha RGBA8
	// pixels; DrawDrawable copies the src sub-rectangle of a drawable
	// into the dst rectangle, scaled.
	MakeDrawable(width, height int, rgba []byte) (Drawable, error)
	DrawDrawable(d Drawable, srcX, srcY, srcW, srcH, dstX, dstY, dstW, dstH float64) error
}
