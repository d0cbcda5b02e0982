package vg

// Brush is an opaque paint source (solid color or gradient) created by a
// RenderContext. A brush must only be used with the context that created
// it; it is immutable once constructed and borrowed by draw calls to
// derive the native paint value.
type Brush interface {
	// Backend returns the name of the backend that created the brush.
	Backend() string
}

// Image is an opaque drawable created by RenderContext.MakeImage.
// Images are immutable after creation.
type Image interface {
	// Size returns the image dimensions in pixels.
	Size() Size
}

// RenderContext is the drawing-command contract implemented by each
// backend. Callers are unaware of the concrete target; the context
// translates every command into native operations of its surface.
//
// Two error channels exist. Operations declared with an error result
// (Gradient, MakeImage, Save, Restore, CaptureImageArea) fail
// immediately. Drawing operations without an error result record any
// native failure into a single-slot deferred error, overwriting an
// earlier unread failure, to be observed by the next Status or Finish
// call. A caller that never checks Status silently loses draw failures;
// this is a documented property of the contract, not a defect.
type RenderContext interface {
	// Status takes and clears the deferred error, returning it if one
	// was recorded since the previous check.
	Status() error

	// SolidBrush creates a brush painting a single color. It cannot fail.
	SolidBrush(c RGBA) Brush

	// Gradient constructs a native gradient from a descriptor. Stops are
	// added in order. Fails with a wrapped native error if the surface
	// rejects the parameters (for example a negative radius).
	Gradient(g GradientSpec) (Brush, error)

	// Clear fills region, or the whole surface if region is nil, with a
	// solid color. The current transform and clip still apply on
	// surfaces that cannot bypass them.
	Clear(region *Rect, c RGBA)

	// Fill fills the shape with the brush using the non-zero winding rule.
	Fill(shape Shape, brush Brush)

	// FillEvenOdd fills the shape with the brush using the even-odd rule.
	FillEvenOdd(shape Shape, brush Brush)

	// Stroke strokes the outline of the shape with the default stroke
	// style at the given width.
	Stroke(shape Shape, brush Brush, width float64)

	// StrokeStyled strokes the outline of the shape with a full stroke
	// style. The style's Width field is ignored in favor of width.
	StrokeStyled(shape Shape, brush Brush, width float64, style Stroke)

	// Clip intersects the current clip region with the shape, using the
	// non-zero winding rule.
	Clip(shape Shape)

	// Save pushes a copy of the current state (transform, clip, stroke
	// parameters) onto the state stack.
	Save() error

	// Restore pops the state stack. Restoring past the base state is a
	// no-op, so the default state can never be drained.
	Restore() error

	// Finish finalizes the context and reports any deferred error, like
	// Status.
	Finish() error

	// Transform composes the affine onto the current transform
	// (post-multiply, matching the native canvas convention).
	Transform(m Matrix)

	// CurrentTransform reads back the current transform.
	CurrentTransform() Matrix

	// Text returns the context's text layout factory.
	Text() Text

	// DrawText draws a layout with its top-left corner at pos. Native
	// failures become the deferred error.
	DrawText(layout TextLayout, pos Point)

	// MakeImage creates an image from a pixel buffer, reformatting it to
	// straight RGBA8 as needed for the native upload.
	MakeImage(width, height int, buf []byte, format ImageFormat) (Image, error)

	// DrawImage draws the whole image into dst, scaled.
	DrawImage(img Image, dst Rect, interp InterpolationMode)

	// DrawImageArea draws the src sub-rectangle of the image into dst,
	// scaled.
	DrawImageArea(img Image, src, dst Rect, interp InterpolationMode)

	// CaptureImageArea snapshots an area of the surface into an image.
	// Backends without native support return ErrUnsupported.
	CaptureImageArea(r Rect) (Image, error)

	// BlurredRect fills rect with the brush, blurred by blurRadius.
	BlurredRect(rect Rect, blurRadius float64, brush Brush)
}
