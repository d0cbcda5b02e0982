package htmlcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/vg"
)

// fakeSurface records every canvas call as a formatted op string and
// keeps a transform stack so GetTransform reads back composed values.
type fakeSurface struct {
	ops      []string
	width    float64
	height   float64
	detached bool

	transforms []vg.Matrix

	fillTextErr error
	textWidth   func(s string) float64
}

func newFakeSurface(width, height float64) *fakeSurface {
	return &fakeSurface{
		width:      width,
		height:     height,
		transforms: []vg.Matrix{vg.Identity()},
	}
}

func (f *fakeSurface) record(format string, args ...any) {
	f.ops = append(f.ops, fmt.Sprintf(format, args...))
}

// countOps returns how many recorded ops start with prefix.
func (f *fakeSurface) countOps(prefix string) int {
	n := 0
	for _, op := range f.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (f *fakeSurface) hasOp(op string) bool {
	for _, o := range f.ops {
		if o == op {
			return true
		}
	}
	return false
}

func (f *fakeSurface) BeginPath()          { f.record("beginPath") }
func (f *fakeSurface) MoveTo(x, y float64) { f.record("moveTo(%g,%g)", x, y) }
func (f *fakeSurface) LineTo(x, y float64) { f.record("lineTo(%g,%g)", x, y) }

func (f *fakeSurface) QuadraticCurveTo(cx, cy, x, y float64) {
	f.record("quadraticCurveTo(%g,%g,%g,%g)", cx, cy, x, y)
}

func (f *fakeSurface) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	f.record("bezierCurveTo(%g,%g,%g,%g,%g,%g)", c1x, c1y, c2x, c2y, x, y)
}

func (f *fakeSurface) ClosePath()       { f.record("closePath") }
func (f *fakeSurface) Fill(rule string) { f.record("fill(%s)", rule) }
func (f *fakeSurface) Clip(rule string) { f.record("clip(%s)", rule) }
func (f *fakeSurface) Stroke()          { f.record("stroke()") }

func (f *fakeSurface) FillRect(x, y, w, h float64) {
	f.record("fillRect(%g,%g,%g,%g)", x, y, w, h)
}

func (f *fakeSurface) SetFillPaint(p Paint) {
	if p.Gradient != nil {
		f.record("fillStyle=gradient")
		return
	}
	f.record("fillStyle=%s", p.Color)
}

func (f *fakeSurface) SetStrokePaint(p Paint) {
	if p.Gradient != nil {
		f.record("strokeStyle=gradient")
		return
	}
	f.record("strokeStyle=%s", p.Color)
}

func (f *fakeSurface) CreateLinearGradient(x0, y0, x1, y1 float64) (GradientHandle, error) {
	f.record("createLinearGradient(%g,%g,%g,%g)", x0, y0, x1, y1)
	return &fakeGradient{}, nil
}

func (f *fakeSurface) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (GradientHandle, error) {
	if r0 < 0 || r1 < 0 {
		return nil, errors.New("IndexSizeError: the radius provided is negative")
	}
	f.record("createRadialGradient(%g,%g,%g,%g,%g,%g)", x0, y0, r0, x1, y1, r1)
	return &fakeGradient{}, nil
}

func (f *fakeSurface) SetLineWidth(w float64)      { f.record("lineWidth=%g", w) }
func (f *fakeSurface) SetLineCap(cap string)       { f.record("lineCap=%s", cap) }
func (f *fakeSurface) SetLineJoin(join string)     { f.record("lineJoin=%s", join) }
func (f *fakeSurface) SetMiterLimit(limit float64) { f.record("miterLimit=%g", limit) }

func (f *fakeSurface) SetLineDash(pattern []float64) error {
	f.record("setLineDash(%v)", pattern)
	return nil
}

func (f *fakeSurface) SetLineDashOffset(offset float64) {
	f.record("lineDashOffset=%g", offset)
}

func (f *fakeSurface) Save() {
	f.record("save")
	f.transforms = append(f.transforms, f.top())
}

func (f *fakeSurface) Restore() {
	f.record("restore")
	if len(f.transforms) > 1 {
		f.transforms = f.transforms[:len(f.transforms)-1]
	}
}

func (f *fakeSurface) top() vg.Matrix {
	return f.transforms[len(f.transforms)-1]
}

func (f *fakeSurface) Transform(a, b, c, d, e, g float64) {
	f.record("transform(%g,%g,%g,%g,%g,%g)", a, b, c, d, e, g)
	m := vg.MatrixFromCoeffs([6]float64{a, b, c, d, e, g})
	f.transforms[len(f.transforms)-1] = f.top().Multiply(m)
}

func (f *fakeSurface) GetTransform() ([6]float64, error) {
	return f.top().Coeffs(), nil
}

func (f *fakeSurface) Size() (float64, float64, bool) {
	if f.detached {
		return 0, 0, false
	}
	return f.width, f.height, true
}

func (f *fakeSurface) SetShadowBlur(radius float64) { f.record("shadowBlur=%g", radius) }
func (f *fakeSurface) SetShadowColor(css string)    { f.record("shadowColor=%s", css) }

func (f *fakeSurface) SetImageSmoothing(enabled bool) {
	f.record("imageSmoothingEnabled=%t", enabled)
}

func (f *fakeSurface) SetFont(font string) { f.record("font=%s", font) }

func (f *fakeSurface) FillText(text string, x, y float64) error {
	if f.fillTextErr != nil {
		return f.fillTextErr
	}
	f.record("fillText(%q,%g,%g)", text, x, y)
	return nil
}

func (f *fakeSurface) MeasureText(text string) float64 {
	if f.textWidth != nil {
		return f.textWidth(text)
	}
	return float64(len(text)) * 10
}

func (f *fakeSurface) MakeDrawable(width, height int, rgba []byte) (Drawable, error) {
	f.record("makeDrawable(%dx%d)", width, height)
	pixels := append([]byte(nil), rgba...)
	return &fakeDrawable{width: width, height: height, rgba: pixels}, nil
}

func (f *fakeSurface) DrawDrawable(d Drawable, sx, sy, sw, sh, dx, dy, dw, dh float64) error {
	fd, ok := d.(*fakeDrawable)
	if !ok {
		return fmt.Errorf("drawImage: drawable %T does not belong to this surface", d)
	}
	f.record("drawImage(%dx%d,%g,%g,%g,%g,%g,%g,%g,%g)",
		fd.width, fd.height, sx, sy, sw, sh, dx, dy, dw, dh)
	return nil
}

type fakeDrawable struct {
	width, height int
	rgba          []byte
}

// fakeGradient records added stops as "offset:color" strings.
type fakeGradient struct {
	stops   []string
	stopErr error
}

func (g *fakeGradient) AddColorStop(offset float64, css string) error {
	if g.stopErr != nil {
		return g.stopErr
	}
	g.stops = append(g.stops, fmt.Sprintf("%g:%s", offset, css))
	return nil
}
