//go:build js && wasm

package htmlcanvas

import (
	"fmt"
	"syscall/js"
)

// CanvasSurface implements Surface on a CanvasRenderingContext2D.
type CanvasSurface struct {
	ctx      js.Value
	document js.Value
}

var _ Surface = (*CanvasSurface)(nil)

// NewCanvasSurface wraps a CanvasRenderingContext2D value.
func NewCanvasSurface(ctx js.Value) *CanvasSurface {
	return &CanvasSurface{
		ctx:      ctx,
		document: js.Global().Get("document"),
	}
}

// catch converts a thrown javascript exception into an error. syscall/js
// surfaces exceptions as panics.
func catch(op string, f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", op, r)
		}
	}()
	f()
	return nil
}

func (s *CanvasSurface) BeginPath() { s.ctx.Call("beginPath") }

func (s *CanvasSurface) MoveTo(x, y float64) { s.ctx.Call("moveTo", x, y) }

func (s *CanvasSurface) LineTo(x, y float64) { s.ctx.Call("lineTo", x, y) }

func (s *CanvasSurface) QuadraticCurveTo(cx, cy, x, y float64) {
	s.ctx.Call("quadraticCurveTo", cx, cy, x, y)
}

func (s *CanvasSurface) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.ctx.Call("bezierCurveTo", c1x, c1y, c2x, c2y, x, y)
}

func (s *CanvasSurface) ClosePath() { s.ctx.Call("closePath") }

func (s *CanvasSurface) Fill(rule string) { s.ctx.Call("fill", rule) }

func (s *CanvasSurface) Clip(rule string) { s.ctx.Call("clip", rule) }

func (s *CanvasSurface) Stroke() { s.ctx.Call("stroke") }

func (s *CanvasSurface) FillRect(x, y, width, height float64) {
	s.ctx.Call("fillRect", x, y, width, height)
}

func (s *CanvasSurface) SetFillPaint(p Paint) {
	s.ctx.Set("fillStyle", paintValue(p))
}

func (s *CanvasSurface) SetStrokePaint(p Paint) {
	s.ctx.Set("strokeStyle", paintValue(p))
}

func paintValue(p Paint) any {
	if p.Gradient != nil {
		return p.Gradient.(*jsGradient).value
	}
	return p.Color
}

func (s *CanvasSurface) CreateLinearGradient(x0, y0, x1, y1 float64) (GradientHandle, error) {
	var g js.Value
	err := catch("createLinearGradient", func() {
		g = s.ctx.Call("createLinearGradient", x0, y0, x1, y1)
	})
	if err != nil {
		return nil, err
	}
	return &jsGradient{value: g}, nil
}

func (s *CanvasSurface) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (GradientHandle, error) {
	var g js.Value
	err := catch("createRadialGradient", func() {
		g = s.ctx.Call("createRadialGradient", x0, y0, r0, x1, y1, r1)
	})
	if err != nil {
		return nil, err
	}
	return &jsGradient{value: g}, nil
}

// jsGradient is a native CanvasGradient.
type jsGradient struct {
	value js.Value
}

func (g *jsGradient) AddColorStop(offset float64, css string) error {
	return catch("addColorStop", func() {
		g.value.Call("addColorStop", offset, css)
	})
}

func (s *CanvasSurface) SetLineWidth(width float64) { s.ctx.Set("lineWidth", width) }

func (s *CanvasSurface) SetLineCap(cap string) { s.ctx.Set("lineCap", cap) }

func (s *CanvasSurface) SetLineJoin(join string) { s.ctx.Set("lineJoin", join) }

func (s *CanvasSurface) SetMiterLimit(limit float64) { s.ctx.Set("miterLimit", limit) }

func (s *CanvasSurface) SetLineDash(pattern []float64) error {
	arr := js.Global().Get("Array").New(len(pattern))
	for i, v := range pattern {
		arr.SetIndex(i, v)
	}
	return catch("setLineDash", func() {
		s.ctx.Call("setLineDash", arr)
	})
}

func (s *CanvasSurface) SetLineDashOffset(offset float64) {
	s.ctx.Set("lineDashOffset", offset)
}

func (s *CanvasSurface) Save() { s.ctx.Call("save") }

func (s *CanvasSurface) Restore() { s.ctx.Call("restore") }

func (s *CanvasSurface) Transform(a, b, c, d, e, f float64) {
	s.ctx.Call("transform", a, b, c, d, e, f)
}

func (s *CanvasSurface) GetTransform() ([6]float64, error) {
	var m js.Value
	err := catch("getTransform", func() {
		m = s.ctx.Call("getTransform")
	})
	if err != nil {
		return [6]float64{}, err
	}
	return [6]float64{
		m.Get("a").Float(), m.Get("b").Float(),
		m.Get("c").Float(), m.Get("d").Float(),
		m.Get("e").Float(), m.Get("f").Float(),
	}, nil
}

// Size reports the CSS pixel size of the canvas element. A canvas that
// is not in the document has no layout size.
func (s *CanvasSurface) Size() (width, height float64, ok bool) {
	canvas := s.ctx.Get("canvas")
	if canvas.IsNull() || canvas.IsUndefined() {
		return 0, 0, false
	}
	return canvas.Get("offsetWidth").Float(), canvas.Get("offsetHeight").Float(), true
}

func (s *CanvasSurface) SetShadowBlur(radius float64) { s.ctx.Set("shadowBlur", radius) }

func (s *CanvasSurface) SetShadowColor(css string) { s.ctx.Set("shadowColor", css) }

func (s *CanvasSurface) SetImageSmoothing(enabled bool) {
	s.ctx.Set("imageSmoothingEnabled", enabled)
}

func (s *CanvasSurface) SetFont(font string) { s.ctx.Set("font", font) }

func (s *CanvasSurface) FillText(text string, x, y float64) error {
	return catch("fillText", func() {
		s.ctx.Call("fillText", text, x, y)
	})
}

func (s *CanvasSurface) MeasureText(text string) float64 {
	return s.ctx.Call("measureText", text).Get("width").Float()
}

// MakeDrawable uploads straight-alpha RGBA8 pixels into a detached
// canvas element.
func (s *CanvasSurface) MakeDrawable(width, height int, rgba []byte) (Drawable, error) {
	canvas := s.document.Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)

	clamped := js.Global().Get("Uint8ClampedArray").New(len(rgba))
	js.CopyBytesToJS(clamped, rgba)

	var imageData js.Value
	if err := catch("ImageData", func() {
		imageData = js.Global().Get("ImageData").New(clamped, width, height)
	}); err != nil {
		return nil, err
	}

	ctx := canvas.Call("getContext", "2d")
	if err := catch("putImageData", func() {
		ctx.Call("putImageData", imageData, 0, 0)
	}); err != nil {
		return nil, err
	}
	return canvas, nil
}

func (s *CanvasSurface) DrawDrawable(d Drawable, srcX, srcY, srcW, srcH, dstX, dstY, dstW, dstH float64) error {
	canvas, ok := d.(js.Value)
	if !ok {
		return fmt.Errorf("drawImage: drawable %T does not belong to this surface", d)
	}
	return catch("drawImage", func() {
		s.ctx.Call("drawImage", canvas, srcX, srcY, srcW, srcH, dstX, dstY, dstW, dstH)
	})
}
