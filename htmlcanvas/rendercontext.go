package htmlcanvas

import (
	"fmt"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/text"
)

// defaultTolerance is the curve flattening tolerance handed to shapes
// that have to approximate their geometry with path segments.
const defaultTolerance = 1e-3

// strokeState snapshots the stroke parameters of one level of the
// native save/restore stack. Draw calls diff against the top entry to
// skip redundant writes to the canvas state machine.
type strokeState struct {
	lineWidth  float64
	lineCap    vg.LineCap
	lineJoin   vg.LineJoin
	miterLimit float64
	dashArray  []float64
	dashOffset float64
}

// defaultStrokeState mirrors the canvas element defaults: solid
// 1-pixel lines with butt caps and miter joins at limit 10.
func defaultStrokeState() strokeState {
	return strokeState{
		lineWidth:  1,
		lineCap:    vg.LineCapButt,
		lineJoin:   vg.LineJoinMiter,
		miterLimit: 10,
	}
}

func (s strokeState) clone() strokeState {
	s.dashArray = append([]float64(nil), s.dashArray...)
	return s
}

// Option configures a RenderContext.
type Option func(*RenderContext)

// WithTolerance overrides the curve flattening tolerance.
func WithTolerance(tolerance float64) Option {
	return func(rc *RenderContext) {
		if tolerance > 0 {
			rc.tolerance = tolerance
		}
	}
}

// WithShaper supplies a shared text shaper for layouts built through
// this context. Without one, loaded fonts are measured with unshaped
// per-rune advances.
func WithShaper(shaper *text.Shaper) Option {
	return func(rc *RenderContext) {
		rc.text.shaper = shaper
	}
}

// RenderContext implements vg.RenderContext on a canvas Surface.
//
// The canvas is stateful where the drawing contract is mostly
// stateless; the stroke-state stack is the impedance matching between
// the two.
type RenderContext struct {
	surface   Surface
	text      *Text
	states    []strokeState
	err       error
	tolerance float64
}

var _ vg.RenderContext = (*RenderContext)(nil)

// NewRenderContext creates a render context drawing on surface.
func NewRenderContext(surface Surface, opts ...Option) *RenderContext {
	rc := &RenderContext{
		surface:   surface,
		states:    []strokeState{defaultStrokeState()},
		tolerance: defaultTolerance,
	}
	rc.text = newText(surface)
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// Status takes and clears the deferred error.
func (rc *RenderContext) Status() error {
	err := rc.err
	rc.err = nil
	return err
}

// Finish finalizes the context, reporting any deferred error.
func (rc *RenderContext) Finish() error {
	return rc.Status()
}

// SolidBrush creates a brush painting a single color.
func (rc *RenderContext) SolidBrush(c vg.RGBA) vg.Brush {
	return &SolidBrush{rgba: c.Packed()}
}

// Gradient constructs a native canvas gradient from a descriptor.
func (rc *RenderContext) Gradient(g vg.GradientSpec) (vg.Brush, error) {
	var handle GradientHandle
	var err error
	switch spec := g.(type) {
	case *vg.LinearGradient:
		handle, err = rc.surface.CreateLinearGradient(
			spec.Start.X, spec.Start.Y, spec.End.X, spec.End.Y)
		if err != nil {
			return nil, vg.WrapBackend("createLinearGradient", err)
		}
	case *vg.RadialGradient:
		// The native gradient runs from a zero-radius circle at the
		// displaced origin out to the full circle around the center.
		origin := spec.Center.Add(spec.OriginOffset)
		handle, err = rc.surface.CreateRadialGradient(
			origin.X, origin.Y, 0, spec.Center.X, spec.Center.Y, spec.Radius)
		if err != nil {
			return nil, vg.WrapBackend("createRadialGradient", err)
		}
	default:
		return nil, fmt.Errorf("htmlcanvas: unknown gradient spec %T", g)
	}
	for _, stop := range g.Stops() {
		if err := handle.AddColorStop(stop.Offset, cssColor(stop.Color.Packed())); err != nil {
			return nil, vg.WrapBackend("addColorStop", err)
		}
	}
	return &GradientBrush{handle: handle}, nil
}

// Clear fills region, or the whole canvas if region is nil, with a
// solid color. A canvas detached from the document has no measurable
// size; clearing it does nothing.
func (rc *RenderContext) Clear(region *vg.Rect, c vg.RGBA) {
	width, height, ok := rc.surface.Size()
	if !ok {
		vg.Logger().Debug("htmlcanvas: clear on detached canvas ignored")
		return
	}
	rect := vg.NewRect(0, 0, width, height)
	if region != nil {
		rect = *region
	}
	rc.Fill(rect, rc.SolidBrush(c))
}

// Fill fills the shape using the non-zero winding rule.
func (rc *RenderContext) Fill(shape vg.Shape, brush vg.Brush) {
	paint, ok := rc.resolvePaint(brush)
	if !ok {
		return
	}
	rc.setPath(shape)
	rc.surface.SetFillPaint(paint)
	rc.surface.Fill(vg.FillRuleNonZero.String())
}

// FillEvenOdd fills the shape using the even-odd rule.
func (rc *RenderContext) FillEvenOdd(shape vg.Shape, brush vg.Brush) {
	paint, ok := rc.resolvePaint(brush)
	if !ok {
		return
	}
	rc.setPath(shape)
	rc.surface.SetFillPaint(paint)
	rc.surface.Fill(vg.FillRuleEvenOdd.String())
}

// Stroke strokes the shape outline with the default stroke style.
func (rc *RenderContext) Stroke(shape vg.Shape, brush vg.Brush, width float64) {
	rc.strokeShape(shape, brush, width, nil)
}

// StrokeStyled strokes the shape outline with a full stroke style. The
// style's Width field is ignored in favor of width.
func (rc *RenderContext) StrokeStyled(shape vg.Shape, brush vg.Brush, width float64, style vg.Stroke) {
	rc.strokeShape(shape, brush, width, &style)
}

func (rc *RenderContext) strokeShape(shape vg.Shape, brush vg.Brush, width float64, style *vg.Stroke) {
	paint, ok := rc.resolvePaint(brush)
	if !ok {
		return
	}
	rc.setPath(shape)
	rc.setStroke(width, style)
	rc.surface.SetStrokePaint(paint)
	rc.surface.Stroke()
}

// Clip intersects the current clip with the shape, non-zero rule.
func (rc *RenderContext) Clip(shape vg.Shape) {
	rc.setPath(shape)
	rc.surface.Clip(vg.FillRuleNonZero.String())
}

// Save pushes the current state onto the native and shadow stacks.
func (rc *RenderContext) Save() error {
	rc.surface.Save()
	rc.states = append(rc.states, rc.top().clone())
	return nil
}

// Restore pops the state stacks. The base entry is never popped, so
// restoring past it is a no-op.
func (rc *RenderContext) Restore() error {
	if len(rc.states) > 1 {
		rc.states = rc.states[:len(rc.states)-1]
		rc.surface.Restore()
	}
	return nil
}

// Transform composes the affine onto the current canvas transform.
func (rc *RenderContext) Transform(m vg.Matrix) {
	c := m.Coeffs()
	rc.surface.Transform(c[0], c[1], c[2], c[3], c[4], c[5])
}

// CurrentTransform reads back the canvas transform.
func (rc *RenderContext) CurrentTransform() vg.Matrix {
	c, err := rc.surface.GetTransform()
	if err != nil {
		rc.recordErr(vg.WrapBackend("getTransform", err))
		return vg.Identity()
	}
	return vg.MatrixFromCoeffs(c)
}

// Text returns the context's text layout factory.
func (rc *RenderContext) Text() vg.Text {
	return rc.text
}

// DrawText draws a layout with its top-left corner at pos. The native
// state is bracketed with save/restore so the font and fill style do
// not leak into later draws.
func (rc *RenderContext) DrawText(layout vg.TextLayout, pos vg.Point) {
	tl, ok := layout.(*TextLayout)
	if !ok {
		rc.recordErr(fmt.Errorf("htmlcanvas: layout %T was not built by this context", layout))
		return
	}
	rc.surface.Save()
	rc.surface.SetFont(tl.fontString)
	rc.surface.SetFillPaint(SolidPaint(cssColor(tl.color)))
	for i := range tl.metrics {
		lm := &tl.metrics[i]
		start, end := lm.Range()
		lineY := pos.Y + lm.YOffset + lm.Baseline
		lineX := pos.X + tl.xOffsets[i]
		if err := rc.surface.FillText(tl.text[start:end], lineX, lineY); err != nil {
			rc.recordErr(vg.WrapBackend("fillText", err))
		}
	}
	rc.surface.Restore()
}

// MakeImage uploads a pixel buffer as an off-screen drawable,
// reformatting it to straight RGBA8 first.
func (rc *RenderContext) MakeImage(width, height int, buf []byte, format vg.ImageFormat) (vg.Image, error) {
	rgba, err := vg.ToRGBASeparate(width, height, buf, format)
	if err != nil {
		return nil, err
	}
	drawable, err := rc.surface.MakeDrawable(width, height, rgba)
	if err != nil {
		return nil, vg.WrapBackend("putImageData", err)
	}
	return &Image{drawable: drawable, width: width, height: height}, nil
}

// DrawImage draws the whole image into dst, scaled.
func (rc *RenderContext) DrawImage(img vg.Image, dst vg.Rect, interp vg.InterpolationMode) {
	rc.drawImage(img, nil, dst, interp)
}

// DrawImageArea draws the src sub-rectangle of the image into dst,
// scaled.
func (rc *RenderContext) DrawImageArea(img vg.Image, src, dst vg.Rect, interp vg.InterpolationMode) {
	rc.drawImage(img, &src, dst, interp)
}

func (rc *RenderContext) drawImage(img vg.Image, src *vg.Rect, dst vg.Rect, interp vg.InterpolationMode) {
	native, ok := img.(*Image)
	if !ok {
		rc.recordErr(fmt.Errorf("htmlcanvas: image %T was not created by this context", img))
		return
	}
	srcRect := vg.NewRect(0, 0, float64(native.width), float64(native.height))
	if src != nil {
		srcRect = *src
	}
	err := rc.withSave(func() error {
		rc.surface.SetImageSmoothing(interp != vg.InterpNearestNeighbor)
		return rc.surface.DrawDrawable(native.drawable,
			srcRect.X0, srcRect.Y0, srcRect.Width(), srcRect.Height(),
			dst.X0, dst.Y0, dst.Width(), dst.Height())
	})
	if err != nil {
		rc.recordErr(vg.WrapBackend("drawImage", err))
	}
}

// CaptureImageArea is not supported on the canvas backend.
func (rc *RenderContext) CaptureImageArea(_ vg.Rect) (vg.Image, error) {
	return nil, vg.ErrUnsupported
}

// BlurredRect fills rect with the brush blurred by blurRadius, using
// the canvas shadow machinery. Gradient brushes have no shadow-color
// equivalent; they fall back to a fixed placeholder color and record a
// deferred error.
func (rc *RenderContext) BlurredRect(rect vg.Rect, blurRadius float64, brush vg.Brush) {
	rc.surface.SetShadowBlur(blurRadius)
	var color string
	switch b := brush.(type) {
	case *SolidBrush:
		color = cssColor(b.rgba)
	default:
		color = "#f0f"
		rc.recordErr(fmt.Errorf("htmlcanvas: blurred rect with %T brush: %w", brush, vg.ErrUnsupported))
	}
	rc.surface.SetShadowColor(color)
	rc.surface.FillRect(rect.X0, rect.Y0, rect.Width(), rect.Height())
	rc.surface.SetShadowColor("none")
}

// top returns the active stroke-state snapshot.
func (rc *RenderContext) top() *strokeState {
	return &rc.states[len(rc.states)-1]
}

// recordErr stores err in the deferred slot, overwriting an earlier
// unread failure.
func (rc *RenderContext) recordErr(err error) {
	if err == nil {
		return
	}
	vg.Logger().Warn("htmlcanvas: deferred draw error", "err", err)
	rc.err = err
}

// withSave brackets f with a state push and pop.
func (rc *RenderContext) withSave(f func() error) error {
	if err := rc.Save(); err != nil {
		return err
	}
	err := f()
	if rerr := rc.Restore(); rerr != nil && err == nil {
		err = rerr
	}
	return err
}

// setPath replays the shape into the current canvas path. The context
// is always left in no-path state, but beginPath is harmless anyway.
func (rc *RenderContext) setPath(shape vg.Shape) {
	rc.surface.BeginPath()
	for _, el := range shape.PathElements(rc.tolerance) {
		switch e := el.(type) {
		case vg.MoveTo:
			rc.surface.MoveTo(e.Point.X, e.Point.Y)
		case vg.LineTo:
			rc.surface.LineTo(e.Point.X, e.Point.Y)
		case vg.QuadTo:
			rc.surface.QuadraticCurveTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case vg.CubicTo:
			rc.surface.BezierCurveTo(e.Control1.X, e.Control1.Y,
				e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case vg.Close:
			rc.surface.ClosePath()
		}
	}
}

// setStroke applies the stroke parameters, diffing against the current
// snapshot so unchanged parameters do not touch the canvas.
func (rc *RenderContext) setStroke(width float64, style *vg.Stroke) {
	defaultStyle := vg.DefaultStroke()
	if style == nil {
		style = &defaultStyle
	}
	st := rc.top()

	if width != st.lineWidth {
		rc.surface.SetLineWidth(width)
		st.lineWidth = width
	}

	if style.Join != st.lineJoin ||
		(style.Join == vg.LineJoinMiter && style.MiterLimit != st.miterLimit) {
		rc.surface.SetLineJoin(style.Join.String())
		if style.Join == vg.LineJoinMiter {
			rc.surface.SetMiterLimit(style.MiterLimit)
			st.miterLimit = style.MiterLimit
		}
		st.lineJoin = style.Join
	}

	if style.Cap != st.lineCap {
		rc.surface.SetLineCap(style.Cap.String())
		st.lineCap = style.Cap
	}

	pattern, offset := dashParams(style.Dash)
	if !floatsEqual(pattern, st.dashArray) {
		if err := rc.surface.SetLineDash(pattern); err != nil {
			rc.recordErr(vg.WrapBackend("setLineDash", err))
		}
		st.dashArray = append([]float64(nil), pattern...)
	}
	if offset != st.dashOffset {
		rc.surface.SetLineDashOffset(offset)
		st.dashOffset = offset
	}
}

// resolvePaint derives the native paint from a brush. A brush created
// by a different backend records a deferred error and skips the draw.
func (rc *RenderContext) resolvePaint(brush vg.Brush) (Paint, bool) {
	switch b := brush.(type) {
	case *SolidBrush:
		return b.paint(), true
	case *GradientBrush:
		return b.paint(), true
	}
	rc.recordErr(fmt.Errorf("htmlcanvas: brush %T was not created by this context", brush))
	return Paint{}, false
}

// dashParams flattens a dash into the native pattern and offset. A nil
// or non-dashed pattern maps to an empty array, restoring solid lines.
func dashParams(d *vg.Dash) (pattern []float64, offset float64) {
	if !d.IsDashed() {
		return nil, 0
	}
	return d.Array, d.Offset
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
