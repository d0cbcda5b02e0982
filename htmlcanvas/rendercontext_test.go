package htmlcanvas

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/vg"
)

func TestFillUsesNonZeroRule(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.Fill(vg.NewRect(10, 10, 50, 40), rc.SolidBrush(vg.Red))

	if !surface.hasOp("fill(nonzero)") {
		t.Errorf("ops = %v, want fill(nonzero)", surface.ops)
	}
	if !surface.hasOp("fillStyle=#ff0000") {
		t.Errorf("ops = %v, want fillStyle=#ff0000", surface.ops)
	}
}

func TestFillEvenOdd(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.FillEvenOdd(vg.NewRect(0, 0, 10, 10), rc.SolidBrush(vg.Black))

	if !surface.hasOp("fill(evenodd)") {
		t.Errorf("ops = %v, want fill(evenodd)", surface.ops)
	}
}

func TestFillTranslucentColorFormatsRGBA(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.Fill(vg.NewRect(0, 0, 10, 10), rc.SolidBrush(vg.RGBA2(1, 0, 0, 0.5)))

	found := false
	for _, op := range surface.ops {
		if strings.HasPrefix(op, "fillStyle=rgba(255,0,0,") {
			found = true
		}
	}
	if !found {
		t.Errorf("ops = %v, want rgba fill style", surface.ops)
	}
}

func TestClearWholeSurface(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.Clear(nil, vg.White)

	wantPath := []string{
		"beginPath",
		"moveTo(0,0)",
		"lineTo(200,0)",
		"lineTo(200,100)",
		"lineTo(0,100)",
		"closePath",
		"fillStyle=#ffffff",
		"fill(nonzero)",
	}
	for _, op := range wantPath {
		if !surface.hasOp(op) {
			t.Errorf("ops = %v, missing %s", surface.ops, op)
		}
	}
}

func TestClearRegion(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	region := vg.NewRect(10, 20, 30, 40)
	rc.Clear(&region, vg.Black)

	if !surface.hasOp("moveTo(10,20)") || !surface.hasOp("lineTo(30,40)") {
		t.Errorf("ops = %v, want region path", surface.ops)
	}
}

func TestClearDetachedCanvasIsNoop(t *testing.T) {
	surface := newFakeSurface(0, 0)
	surface.detached = true
	rc := NewRenderContext(surface)

	rc.Clear(nil, vg.White)

	if len(surface.ops) != 0 {
		t.Errorf("ops = %v, want none on a detached canvas", surface.ops)
	}
	if err := rc.Status(); err != nil {
		t.Errorf("Status() = %v, want nil", err)
	}
}

func TestStrokeAppliesWidthOnce(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)
	brush := rc.SolidBrush(vg.Black)
	line := vg.NewLine(0, 0, 100, 0)

	rc.Stroke(line, brush, 5)
	rc.Stroke(line, brush, 5)

	if n := surface.countOps("lineWidth="); n != 1 {
		t.Errorf("lineWidth written %d times, want 1", n)
	}
	if n := surface.countOps("stroke()"); n != 2 {
		t.Errorf("stroke called %d times, want 2", n)
	}
}

func TestStrokeStyledDiffsEachParameter(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)
	brush := rc.SolidBrush(vg.Black)
	line := vg.NewLine(0, 0, 100, 0)
	style := vg.RoundStroke()

	rc.StrokeStyled(line, brush, 2, style)
	before := len(surface.ops)
	rc.StrokeStyled(line, brush, 2, style)

	for _, op := range surface.ops[before:] {
		if strings.HasPrefix(op, "lineCap=") || strings.HasPrefix(op, "lineJoin=") ||
			strings.HasPrefix(op, "lineWidth=") {
			t.Errorf("second identical stroke rewrote state: %s", op)
		}
	}
}

func TestStrokeStyledDashPattern(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)
	brush := rc.SolidBrush(vg.Black)
	line := vg.NewLine(0, 0, 100, 0)

	rc.StrokeStyled(line, brush, 1, vg.DashedStroke(5, 3).WithDashOffset(2))

	if !surface.hasOp("setLineDash([5 3])") {
		t.Errorf("ops = %v, want setLineDash([5 3])", surface.ops)
	}
	if !surface.hasOp("lineDashOffset=2") {
		t.Errorf("ops = %v, want lineDashOffset=2", surface.ops)
	}

	// Returning to the default style clears the dash.
	rc.Stroke(line, brush, 1)
	if !surface.hasOp("setLineDash([])") {
		t.Errorf("ops = %v, want dash cleared", surface.ops)
	}
}

func TestStrokeAfterStyledRestoresDefaults(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)
	brush := rc.SolidBrush(vg.Black)
	line := vg.NewLine(0, 0, 100, 0)

	rc.StrokeStyled(line, brush, 2, vg.RoundStroke())
	rc.Stroke(line, brush, 2)

	if !surface.hasOp("lineCap=butt") {
		t.Errorf("ops = %v, want cap reset to butt", surface.ops)
	}
	if !surface.hasOp("lineJoin=miter") {
		t.Errorf("ops = %v, want join reset to miter", surface.ops)
	}
}

func TestSaveRestoreTracksStrokeState(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)
	brush := rc.SolidBrush(vg.Black)
	line := vg.NewLine(0, 0, 100, 0)

	rc.StrokeStyled(line, brush, 5, vg.RoundStroke())
	if err := rc.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	rc.StrokeStyled(line, brush, 5, vg.RoundStroke())
	if err := rc.Restore(); err != nil {
		t.Fatalf("Restore() = %v", err)
	}

	// The inner stroke used the inherited snapshot, so the style was
	// written exactly once.
	if n := surface.countOps("lineCap="); n != 1 {
		t.Errorf("lineCap written %d times, want 1", n)
	}
}

func TestRestoreNeverDrainsBaseState(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	if err := rc.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := rc.Restore(); err != nil {
			t.Fatalf("Restore() = %v", err)
		}
	}

	if n := surface.countOps("restore"); n != 1 {
		t.Errorf("native restore called %d times, want 1", n)
	}

	// The base state is intact and still diffable.
	rc.Stroke(vg.NewLine(0, 0, 1, 1), rc.SolidBrush(vg.Black), 7)
	if !surface.hasOp("lineWidth=7") {
		t.Errorf("ops = %v, want stroke after over-restore to work", surface.ops)
	}
}

func TestStatusTakesAndClears(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	// A brush from another backend cannot be resolved and becomes the
	// deferred error.
	rc.Fill(vg.NewRect(0, 0, 1, 1), foreignBrush{})

	if err := rc.Status(); err == nil {
		t.Fatal("Status() = nil, want deferred error")
	}
	if err := rc.Status(); err != nil {
		t.Errorf("second Status() = %v, want nil", err)
	}
}

func TestFinishReportsDeferredError(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.Fill(vg.NewRect(0, 0, 1, 1), foreignBrush{})

	if err := rc.Finish(); err == nil {
		t.Fatal("Finish() = nil, want deferred error")
	}
	if err := rc.Finish(); err != nil {
		t.Errorf("second Finish() = %v, want nil", err)
	}
}

func TestDeferredErrorLastWriteWins(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.Fill(vg.NewRect(0, 0, 1, 1), foreignBrush{})
	rc.BlurredRect(vg.NewRect(0, 0, 1, 1), 2, &GradientBrush{})

	err := rc.Status()
	if !errors.Is(err, vg.ErrUnsupported) {
		t.Errorf("Status() = %v, want the later blurred-rect error", err)
	}
}

type foreignBrush struct{}

func (foreignBrush) Backend() string { return "other" }

func TestGradientLinear(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	spec := vg.NewLinearGradient(0, 0, 100, 0).
		AddStop(0, vg.Red).
		AddStop(1, vg.RGBA2(0, 0, 1, 0.5))
	brush, err := rc.Gradient(spec)
	if err != nil {
		t.Fatalf("Gradient() = %v", err)
	}

	gb, ok := brush.(*GradientBrush)
	if !ok {
		t.Fatalf("Gradient() returned %T, want *GradientBrush", brush)
	}
	fg := gb.handle.(*fakeGradient)
	if len(fg.stops) != 2 {
		t.Fatalf("stops = %v, want 2", fg.stops)
	}
	if fg.stops[0] != "0:#ff0000" {
		t.Errorf("stops[0] = %s, want 0:#ff0000", fg.stops[0])
	}
	if !strings.HasPrefix(fg.stops[1], "1:rgba(0,0,255,") {
		t.Errorf("stops[1] = %s, want rgba stop", fg.stops[1])
	}
}

func TestGradientRadialOriginOffset(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	spec := vg.NewRadialGradient(50, 50, 20).
		WithOriginOffset(5, -5).
		AddStop(0, vg.White).
		AddStop(1, vg.Black)
	if _, err := rc.Gradient(spec); err != nil {
		t.Fatalf("Gradient() = %v", err)
	}

	if !surface.hasOp("createRadialGradient(55,45,0,50,50,20)") {
		t.Errorf("ops = %v, want displaced zero-radius inner circle", surface.ops)
	}
}

func TestGradientRadialNegativeRadius(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	spec := vg.NewRadialGradient(50, 50, -1).AddStop(0, vg.White)
	_, err := rc.Gradient(spec)
	if err == nil {
		t.Fatal("Gradient() = nil, want error for negative radius")
	}
	var be *vg.BackendError
	if !errors.As(err, &be) {
		t.Fatalf("Gradient() error = %T, want *vg.BackendError", err)
	}
	if be.Op != "createRadialGradient" {
		t.Errorf("Op = %s, want createRadialGradient", be.Op)
	}
}

func TestClipUsesNonZeroRule(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.Clip(vg.NewCircle(50, 50, 10))

	if !surface.hasOp("clip(nonzero)") {
		t.Errorf("ops = %v, want clip(nonzero)", surface.ops)
	}
}

func TestTransformComposition(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.Transform(vg.Translate(10, 20))
	rc.Transform(vg.Scale(2, 3))

	got := rc.CurrentTransform()
	want := vg.Translate(10, 20).Multiply(vg.Scale(2, 3))
	if got != want {
		t.Errorf("CurrentTransform() = %+v, want %+v", got, want)
	}
}

func TestSaveRestoreTransform(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.Transform(vg.Scale(2, 2))
	if err := rc.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	rc.Transform(vg.Translate(5, 5))
	if err := rc.Restore(); err != nil {
		t.Fatalf("Restore() = %v", err)
	}

	if got, want := rc.CurrentTransform(), vg.Scale(2, 2); got != want {
		t.Errorf("CurrentTransform() = %+v, want %+v", got, want)
	}
}

func TestBlurredRectSolid(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.BlurredRect(vg.NewRect(10, 10, 60, 40), 8, rc.SolidBrush(vg.Red))

	want := []string{
		"shadowBlur=8",
		"shadowColor=#ff0000",
		"fillRect(10,10,50,30)",
		"shadowColor=none",
	}
	for _, op := range want {
		if !surface.hasOp(op) {
			t.Errorf("ops = %v, missing %s", surface.ops, op)
		}
	}
	if err := rc.Status(); err != nil {
		t.Errorf("Status() = %v, want nil", err)
	}
}

func TestBlurredRectGradientPlaceholder(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	spec := vg.NewLinearGradient(0, 0, 10, 0).AddStop(0, vg.Red)
	brush, err := rc.Gradient(spec)
	if err != nil {
		t.Fatalf("Gradient() = %v", err)
	}
	rc.BlurredRect(vg.NewRect(0, 0, 10, 10), 4, brush)

	if !surface.hasOp("shadowColor=#f0f") {
		t.Errorf("ops = %v, want placeholder shadow color", surface.ops)
	}
	if err := rc.Status(); !errors.Is(err, vg.ErrUnsupported) {
		t.Errorf("Status() = %v, want ErrUnsupported", err)
	}
}

func TestCaptureImageAreaUnsupported(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	if _, err := rc.CaptureImageArea(vg.NewRect(0, 0, 10, 10)); !errors.Is(err, vg.ErrUnsupported) {
		t.Errorf("CaptureImageArea() = %v, want ErrUnsupported", err)
	}
}

func TestCirclePathUsesBezierSegments(t *testing.T) {
	surface := newFakeSurface(200, 100)
	rc := NewRenderContext(surface)

	rc.Fill(vg.NewCircle(50, 50, 10), rc.SolidBrush(vg.Black))

	if n := surface.countOps("bezierCurveTo("); n != 4 {
		t.Errorf("bezierCurveTo called %d times, want 4", n)
	}
	if !surface.hasOp("closePath") {
		t.Errorf("ops = %v, want closed circle path", surface.ops)
	}
}
