package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/vg"
)

const defaultTolerance = 1e-3

// state is one level of the context's transform and clip stack.
type state struct {
	transform vg.Matrix
	clipID    string
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

// RenderContext implements vg.RenderContext by building an SVG
// document. Call Write after drawing to serialize it.
type RenderContext struct {
	size      vg.Size
	defs      []*element
	body      []*element
	states    []state
	nextID    int
	err       error
	text      *Text
	tolerance float64
}

var _ vg.RenderContext = (*RenderContext)(nil)

// NewRenderContext creates a context for a document of the given size
// in user units.
func NewRenderContext(width, height float64, opts ...Option) *RenderContext {
	rc := &RenderContext{
		size:      vg.Size{Width: width, Height: height},
		states:    []state{{transform: vg.Identity()}},
		text:      &Text{},
		tolerance: defaultTolerance,
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// Write serializes the accumulated document.
func (rc *RenderContext) Write(w io.Writer) error {
	root := newElement("svg").
		attr("xmlns", "http://www.w3.org/2000/svg").
		floatAttr("width", rc.size.Width).
		floatAttr("height", rc.size.Height).
		attr("viewBox", fmt.Sprintf("0 0 %s %s", ftoa(rc.size.Width), ftoa(rc.size.Height)))
	if len(rc.defs) > 0 {
		defs := newElement("defs")
		defs.children = rc.defs
		root.add(defs)
	}
	root.children = append(root.children, rc.body...)
	return writeDocument(w, root)
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

// Gradient registers a gradient def and returns a brush referencing it.
func (rc *RenderContext) Gradient(g vg.GradientSpec) (vg.Brush, error) {
	var def *element
	switch spec := g.(type) {
	case *vg.LinearGradient:
		def = newElement("linearGradient").
			floatAttr("x1", spec.Start.X).
			floatAttr("y1", spec.Start.Y).
			floatAttr("x2", spec.End.X).
			floatAttr("y2", spec.End.Y)
	case *vg.RadialGradient:
		if spec.Radius < 0 {
			return nil, vg.WrapBackend("radialGradient",
				fmt.Errorf("negative radius %g", spec.Radius))
		}
		origin := spec.Center.Add(spec.OriginOffset)
		def = newElement("radialGradient").
			floatAttr("cx", spec.Center.X).
			floatAttr("cy", spec.Center.Y).
			floatAttr("r", spec.Radius).
			floatAttr("fx", origin.X).
			floatAttr("fy", origin.Y)
	default:
		return nil, fmt.Errorf("svg: unknown gradient spec %T", g)
	}

	id := rc.newID("grad")
	def.attrs = append([]attribute{{key: "id", value: id}}, def.attrs...)
	def.attr("gradientUnits", "userSpaceOnUse")
	for _, stop := range g.Stops() {
		packed := stop.Color.Packed()
		s := newElement("stop").
			floatAttr("offset", stop.Offset).
			attr("stop-color", hexColor(packed))
		if a := opacity(packed); a < 1 {
			s.floatAttr("stop-opacity", a)
		}
		def.add(s)
	}
	rc.defs = append(rc.defs, def)
	return &GradientBrush{id: id}, nil
}

// Clear fills region, or the whole document if region is nil, ignoring
// the current transform and clip.
func (rc *RenderContext) Clear(region *vg.Rect, c vg.RGBA) {
	rect := rc.size.ToRect()
	if region != nil {
		rect = region.Abs()
	}
	el := newElement("rect").
		floatAttr("x", rect.X0).
		floatAttr("y", rect.Y0).
		floatAttr("width", rect.Width()).
		floatAttr("height", rect.Height())
	packed := c.Packed()
	el.attr("fill", hexColor(packed))
	if a := opacity(packed); a < 1 {
		el.floatAttr("fill-opacity", a)
	}
	rc.body = append(rc.body, el)
}

// Fill fills the shape using the non-zero winding rule.
func (rc *RenderContext) Fill(shape vg.Shape, brush vg.Brush) {
	rc.fill(shape, brush, vg.FillRuleNonZero)
}

// FillEvenOdd fills the shape using the even-odd rule.
func (rc *RenderContext) FillEvenOdd(shape vg.Shape, brush vg.Brush) {
	rc.fill(shape, brush, vg.FillRuleEvenOdd)
}

func (rc *RenderContext) fill(shape vg.Shape, brush vg.Brush, rule vg.FillRule) {
	el := rc.pathElement(shape)
	if !rc.applyPaint(el, "fill", brush) {
		return
	}
	if rule == vg.FillRuleEvenOdd {
		el.attr("fill-rule", rule.String())
	}
	rc.body = append(rc.body, el)
}

// Stroke strokes the shape outline with the default stroke style.
func (rc *RenderContext) Stroke(shape vg.Shape, brush vg.Brush, width float64) {
	rc.strokeShape(shape, brush, width, vg.DefaultStroke())
}

// StrokeStyled strokes the shape outline with a full stroke style. The
// style's Width field is ignored in favor of width.
func (rc *RenderContext) StrokeStyled(shape vg.Shape, brush vg.Brush, width float64, style vg.Stroke) {
	rc.strokeShape(shape, brush, width, style)
}

func (rc *RenderContext) strokeShape(shape vg.Shape, brush vg.Brush, width float64, style vg.Stroke) {
	el := rc.pathElement(shape)
	el.attr("fill", "none")
	if !rc.applyPaint(el, "stroke", brush) {
		return
	}
	el.floatAttr("stroke-width", width)
	if style.Cap != vg.LineCapButt {
		el.attr("stroke-linecap", style.Cap.String())
	}
	if style.Join != vg.LineJoinMiter {
		el.attr("stroke-linejoin", style.Join.String())
	} else if style.MiterLimit != 4 {
		// 4 is the SVG default.
		el.floatAttr("stroke-miterlimit", style.MiterLimit)
	}
	if style.IsDashed() {
		var sb []byte
		for i, v := range style.Dash.Array {
			if i > 0 {
				sb = append(sb, ' ')
			}
			sb = append(sb, ftoa(v)...)
		}
		el.attr("stroke-dasharray", string(sb))
		if style.Dash.Offset != 0 {
			el.floatAttr("stroke-dashoffset", style.Dash.Offset)
		}
	}
	rc.body = append(rc.body, el)
}

// Clip intersects the current clip with the shape. The new clip path
// carries the previous one, so nested clips compose.
func (rc *RenderContext) Clip(shape vg.Shape) {
	st := rc.top()
	id := rc.newID("clip")

	path := newElement("path").attr("d", pathData(shape, rc.tolerance))
	if !st.transform.IsIdentity() {
		path.attr("transform", matrixAttr(st.transform))
	}
	if st.clipID != "" {
		path.attr("clip-path", clipRef(st.clipID))
	}
	rc.defs = append(rc.defs, newElement("clipPath").attr("id", id).add(path))
	st.clipID = id
}

// Save pushes the current transform and clip.
func (rc *RenderContext) Save() error {
	rc.states = append(rc.states, *rc.top())
	return nil
}

// Restore pops the state stack. The base entry is never popped.
func (rc *RenderContext) Restore() error {
	if len(rc.states) > 1 {
		rc.states = rc.states[:len(rc.states)-1]
	}
	return nil
}

// Transform composes the affine onto the current transform.
func (rc *RenderContext) Transform(m vg.Matrix) {
	st := rc.top()
	st.transform = st.transform.Multiply(m)
}

// CurrentTransform reads back the current transform.
func (rc *RenderContext) CurrentTransform() vg.Matrix {
	return rc.top().transform
}

// Text returns the context's text factory.
func (rc *RenderContext) Text() vg.Text {
	return rc.text
}

// DrawText records the unimplemented-text error; no layout can have
// been built by this backend.
func (rc *RenderContext) DrawText(_ vg.TextLayout, _ vg.Point) {
	rc.recordErr(vg.ErrTextNotImplemented)
}

// MakeImage reformats a pixel buffer to straight RGBA8 and keeps it
// for PNG-encoding at draw time.
func (rc *RenderContext) MakeImage(width, height int, buf []byte, format vg.ImageFormat) (vg.Image, error) {
	rgba, err := vg.ToRGBASeparate(width, height, buf, format)
	if err != nil {
		return nil, err
	}
	return &Image{
		rgba:   append([]byte(nil), rgba...),
		width:  width,
		height: height,
	}, nil
}

// DrawImage draws the whole image into dst, scaled.
func (rc *RenderContext) DrawImage(img vg.Image, dst vg.Rect, interp vg.InterpolationMode) {
	native, ok := img.(*Image)
	if !ok {
		rc.recordErr(fmt.Errorf("svg: image %T was not created by this context", img))
		return
	}
	src := vg.NewRect(0, 0, float64(native.width), float64(native.height))
	rc.drawImage(native, src, dst, interp)
}

// DrawImageArea draws the src sub-rectangle of the image into dst,
// scaled.
func (rc *RenderContext) DrawImageArea(img vg.Image, src, dst vg.Rect, interp vg.InterpolationMode) {
	native, ok := img.(*Image)
	if !ok {
		rc.recordErr(fmt.Errorf("svg: image %T was not created by this context", img))
		return
	}
	rc.drawImage(native, src, dst, interp)
}

func (rc *RenderContext) drawImage(img *Image, src, dst vg.Rect, interp vg.InterpolationMode) {
	href, err := img.dataURI()
	if err != nil {
		rc.recordErr(vg.WrapBackend("encodePNG", err))
		return
	}

	// Scale the full image so that src lands exactly on dst, then clip
	// to dst to discard the rest.
	scaleX := dst.Width() / src.Width()
	scaleY := dst.Height() / src.Height()
	el := newElement("image").
		attr("href", href).
		floatAttr("x", dst.X0-src.X0*scaleX).
		floatAttr("y", dst.Y0-src.Y0*scaleY).
		floatAttr("width", float64(img.width)*scaleX).
		floatAttr("height", float64(img.height)*scaleY).
		attr("preserveAspectRatio", "none")
	if interp == vg.InterpNearestNeighbor {
		el.attr("image-rendering", "pixelated")
	}

	clip := newElement("clipPath").attr("id", rc.newID("clip")).add(
		newElement("rect").
			floatAttr("x", dst.X0).
			floatAttr("y", dst.Y0).
			floatAttr("width", dst.Width()).
			floatAttr("height", dst.Height()))
	rc.defs = append(rc.defs, clip)

	group := newElement("g").attr("clip-path", clipRef(clip.attrs[0].value))
	rc.decorate(group)
	group.add(el)
	rc.body = append(rc.body, group)
}

// CaptureImageArea is not supported; the document has no pixels.
func (rc *RenderContext) CaptureImageArea(_ vg.Rect) (vg.Image, error) {
	return nil, vg.ErrUnsupported
}

// BlurredRect fills rect with the brush through a Gaussian blur filter.
// A shadow blur radius of r corresponds to a standard deviation of r/2.
func (rc *RenderContext) BlurredRect(rect vg.Rect, blurRadius float64, brush vg.Brush) {
	id := rc.newID("blur")
	margin := 3 * blurRadius
	rc.defs = append(rc.defs, newElement("filter").
		attr("id", id).
		attr("filterUnits", "userSpaceOnUse").
		floatAttr("x", rect.X0-margin).
		floatAttr("y", rect.Y0-margin).
		floatAttr("width", rect.Width()+2*margin).
		floatAttr("height", rect.Height()+2*margin).
		add(newElement("feGaussianBlur").floatAttr("stdDeviation", blurRadius/2)))

	el := newElement("rect").
		floatAttr("x", rect.X0).
		floatAttr("y", rect.Y0).
		floatAttr("width", rect.Width()).
		floatAttr("height", rect.Height()).
		attr("filter", "url(#"+id+")")
	if !rc.applyPaint(el, "fill", brush) {
		return
	}
	rc.body = append(rc.body, el)
}

func (rc *RenderContext) top() *state {
	return &rc.states[len(rc.states)-1]
}

func (rc *RenderContext) newID(prefix string) string {
	rc.nextID++
	return fmt.Sprintf("%s%d", prefix, rc.nextID)
}

func (rc *RenderContext) recordErr(err error) {
	if err == nil {
		return
	}
	vg.Logger().Warn("svg: deferred draw error", "err", err)
	rc.err = err
}

// pathElement builds a path carrying the current transform and clip.
func (rc *RenderContext) pathElement(shape vg.Shape) *element {
	el := newElement("path").attr("d", pathData(shape, rc.tolerance))
	rc.decorate(el)
	return el
}

// decorate stamps the current transform and clip onto an element.
func (rc *RenderContext) decorate(el *element) {
	st := rc.top()
	if !st.transform.IsIdentity() {
		el.attr("transform", matrixAttr(st.transform))
	}
	if st.clipID != "" {
		el.attr("clip-path", clipRef(st.clipID))
	}
}

// applyPaint sets the fill or stroke attributes from a brush. A brush
// from another backend records a deferred error and skips the draw.
func (rc *RenderContext) applyPaint(el *element, attr string, brush vg.Brush) bool {
	switch b := brush.(type) {
	case *SolidBrush:
		el.attr(attr, hexColor(b.rgba))
		if a := opacity(b.rgba); a < 1 {
			el.floatAttr(attr+"-opacity", a)
		}
		return true
	case *GradientBrush:
		el.attr(attr, "url(#"+b.id+")")
		return true
	}
	rc.recordErr(fmt.Errorf("svg: brush %T was not created by this context", brush))
	return false
}

func clipRef(id string) string {
	return "url(#" + id + ")"
}

// brushes

const backendName = "svg"

// SolidBrush paints a single color.
type SolidBrush struct {
	rgba uint32
}

// Backend implements vg.Brush.
func (*SolidBrush) Backend() string { return backendName }

// Color returns the brush color.
func (b *SolidBrush) Color() vg.RGBA { return vg.FromPacked(b.rgba) }

// GradientBrush references a gradient def by id.
type GradientBrush struct {
	id string
}

// Backend implements vg.Brush.
func (*GradientBrush) Backend() string { return backendName }

// Image holds straight-alpha RGBA8 pixels awaiting PNG encoding.
type Image struct {
	rgba   []byte
	width  int
	height int
}

// Size implements vg.Image.
func (img *Image) Size() vg.Size {
	return vg.Size{Width: float64(img.width), Height: float64(img.height)}
}

// dataURI encodes the pixels as a base64 PNG data URI.
func (img *Image) dataURI() (string, error) {
	nrgba := &image.NRGBA{
		Pix:    img.rgba,
		Stride: img.width * 4,
		Rect:   image.Rect(0, 0, img.width, img.height),
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, nrgba); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
